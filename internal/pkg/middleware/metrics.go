package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// MetricsBuilder 统计 HTTP 接口的耗时和次数。同一个进程里只能创建一个
type MetricsBuilder struct {
	durationVec *prometheus.HistogramVec
	counterVec  *prometheus.CounterVec
}

func NewMetricsBuilder(namespace string) *MetricsBuilder {
	return newMetricsBuilder(prometheus.DefaultRegisterer, namespace)
}

func newMetricsBuilder(reg prometheus.Registerer, namespace string) *MetricsBuilder {
	factory := promauto.With(reg)
	labels := []string{"method", "path", "status_code"}
	return &MetricsBuilder{
		durationVec: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request duration in seconds",
			Buckets:   []float64{0.005, 0.01, 0.05, 0.1, 0.3, 0.5, 1, 3},
		}, labels),
		counterVec: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests",
		}, labels),
	}
}

func (b *MetricsBuilder) Build() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		start := time.Now()
		ctx.Next()

		// 没有匹配到路由的请求统一归到一个 path 下，避免 label 爆炸
		path := ctx.FullPath()
		if path == "" {
			path = "unknown"
		}
		status := strconv.Itoa(ctx.Writer.Status())
		b.durationVec.WithLabelValues(ctx.Request.Method, path, status).Observe(time.Since(start).Seconds())
		b.counterVec.WithLabelValues(ctx.Request.Method, path, status).Inc()
	}
}
