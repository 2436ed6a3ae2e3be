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

	"github.com/ecodeclub/chatter/internal/comment"
	"github.com/ecodeclub/chatter/internal/pkg/actor"
	"github.com/ecodeclub/chatter/internal/pkg/middleware"
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/elog"
	"github.com/gotomicro/ego/server/egin"
)

type AdminServer *egin.Component

func InitAdminServer(sp session.Provider, metrics *middleware.MetricsBuilder, commentHdl *comment.AdminHandler) AdminServer {
	res := egin.Load("admin").Build()
	res.Use(corsMiddleware([]string{"X-Timestamp", "Authorization", "Content-Type"}))
	res.Use(metrics.Build())
	res.GET("/hello", func(ctx *gin.Context) {
		ctx.String(http.StatusOK, "hello, world!")
	})
	// 登录校验
	res.Use(middleware.NewCheckLoginBuilder(sp).Build())
	res.Use(AdminPermission())
	commentHdl.PrivateRoutes(res.Engine)
	return res
}

// AdminPermission 只有会话里带管理员标记的用户才能访问
func AdminPermission() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		sess, err := session.Get(&ginx.Context{Context: ctx})
		if err != nil {
			ctx.AbortWithStatus(http.StatusUnauthorized)
			elog.Error("非法访问 admin 接口", elog.FieldErr(err))
			return
		}
		a := actor.FromSession(sess)
		if !a.Admin {
			ctx.AbortWithStatus(http.StatusForbidden)
			elog.Warn("非法访问 admin 接口，不是管理员", elog.Int64("uid", a.Uid))
			return
		}
	}
}
