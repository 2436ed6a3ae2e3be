// Copyright 2023 ecodeclub
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package ioc

import (
	"net/http"
	"strings"

	"github.com/ecodeclub/chatter/config"
	"github.com/ecodeclub/chatter/internal/comment"
	"github.com/ecodeclub/chatter/internal/interactive"
	"github.com/ecodeclub/chatter/internal/pkg/middleware"
	"github.com/ecodeclub/chatter/internal/user"
	"github.com/ecodeclub/ginx/session"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/econf"
	"github.com/gotomicro/ego/server/egin"
)

func initGinxServer(sp session.Provider,
	metrics *middleware.MetricsBuilder,
	userHdl *user.Handler,
	commentHdl *comment.Handler,
	intrHdl *interactive.Handler,
) *egin.Component {
	session.SetDefaultProvider(sp)
	res := egin.Load("web").Build()
	res.Use(corsMiddleware([]string{"Authorization", "Content-Type"}))
	res.Use(metrics.Build())
	res.GET("/hello", func(ctx *gin.Context) {
		ctx.String(http.StatusOK, "hello, world!")
	})
	userHdl.PublicRoutes(res.Engine)
	commentHdl.PublicRoutes(res.Engine)
	intrHdl.PublicRoutes(res.Engine)
	// 登录校验
	res.Use(middleware.NewCheckLoginBuilder(sp).Build())
	userHdl.PrivateRoutes(res.Engine)
	commentHdl.PrivateRoutes(res.Engine)
	intrHdl.PrivateRoutes(res.Engine)
	return res
}

func initMetricsBuilder() *middleware.MetricsBuilder {
	return middleware.NewMetricsBuilder("chatter")
}

func corsMiddleware(allowHeaders []string) gin.HandlerFunc {
	var cfg config.CORSConfig
	err := econf.UnmarshalKey("cors", &cfg)
	if err != nil {
		panic(err)
	}
	return cors.New(cors.Config{
		ExposeHeaders:    []string{"X-Refresh-Token", "X-Access-Token", middleware.LoginURLHeader},
		AllowCredentials: true,
		AllowHeaders:     allowHeaders,
		AllowOriginFunc: func(origin string) bool {
			if strings.HasPrefix(origin, "http://localhost") {
				return true
			}
			for _, o := range cfg.AllowedOrigins {
				if strings.Contains(origin, o) {
					return true
				}
			}
			return false
		},
	})
}
