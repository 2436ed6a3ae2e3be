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

package middleware

import (
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/ecodeclub/chatter/internal/pkg/redirect"
	"github.com/ecodeclub/ginx/gctx"
	"github.com/ecodeclub/ginx/session"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/elog"
)

// LoginURLHeader 未登录的接口请求通过这个头告诉前端登录地址
const LoginURLHeader = "X-Login-URL"

// CheckLoginBuilder 登录校验。未登录的时候页面请求直接跳到登录页，接口请求返回 401，
// 两种情况都会带上 return_to，登录完成之后回到原来的页面
type CheckLoginBuilder struct {
	sp session.Provider
	// token 剩余有效时间少于这个值的时候刷新
	threshold time.Duration
	logger    *elog.Component
}

func NewCheckLoginBuilder(sp session.Provider) *CheckLoginBuilder {
	return &CheckLoginBuilder{
		sp:        sp,
		threshold: 30 * time.Minute,
		logger:    elog.DefaultLogger.With(elog.FieldComponent("middleware.login")),
	}
}

func (b *CheckLoginBuilder) Build() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		gc := &gctx.Context{Context: ctx}
		sess, err := b.sp.Get(gc)
		if err != nil {
			b.unauthorized(ctx)
			return
		}
		if sess.Claims().Expiration-time.Now().UnixMilli() < b.threshold.Milliseconds() {
			if err = b.sp.RenewAccessToken(gc); err != nil {
				b.logger.Warn("刷新 token 失败", elog.FieldErr(err))
			}
		}
		ctx.Set(session.CtxSessionKey, sess)
	}
}

func (b *CheckLoginBuilder) unauthorized(ctx *gin.Context) {
	if isPageRequest(ctx.Request) {
		ctx.Redirect(http.StatusFound, redirect.LoginURL(ctx.Request.URL.RequestURI()))
		ctx.Abort()
		return
	}
	ctx.Header(LoginURLHeader, redirect.LoginURL(refererPath(ctx.Request)))
	ctx.AbortWithStatus(http.StatusUnauthorized)
}

// isPageRequest 浏览器直接打开的页面
func isPageRequest(req *http.Request) bool {
	return req.Method == http.MethodGet &&
		strings.Contains(req.Header.Get("Accept"), "text/html")
}

// refererPath 接口请求回到发起请求的页面
func refererPath(req *http.Request) string {
	ref, err := url.Parse(req.Referer())
	if err != nil || ref.Path == "" {
		return ""
	}
	return ref.RequestURI()
}
