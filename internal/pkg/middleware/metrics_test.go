package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetricsBuilder_Build(t *testing.T) {
	reg := prometheus.NewRegistry()
	builder := newMetricsBuilder(reg, "test")

	server := gin.New()
	server.Use(builder.Build())
	server.GET("/comment/:id", func(ctx *gin.Context) {
		ctx.Status(http.StatusOK)
	})

	for _, path := range []string{"/comment/1", "/comment/2", "/missing"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		server.ServeHTTP(httptest.NewRecorder(), req)
	}

	assert.Equal(t, float64(2),
		testutil.ToFloat64(builder.counterVec.WithLabelValues(http.MethodGet, "/comment/:id", "200")))
	assert.Equal(t, float64(1),
		testutil.ToFloat64(builder.counterVec.WithLabelValues(http.MethodGet, "unknown", "404")))
	assert.Equal(t, 2, testutil.CollectAndCount(builder.durationVec))
}
