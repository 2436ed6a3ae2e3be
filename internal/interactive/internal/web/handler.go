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

package web

import (
	"errors"
	"strconv"
	"strings"

	"github.com/ecodeclub/chatter/internal/interactive/internal/domain"
	"github.com/ecodeclub/chatter/internal/interactive/internal/errs"
	"github.com/ecodeclub/chatter/internal/interactive/internal/service"
	"github.com/ecodeclub/chatter/internal/pkg/actor"
	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/gin-gonic/gin"
)

var _ ginx.Handler = &Handler{}

type Handler struct {
	svc   service.InteractiveService
	views service.PageViewService
}

func NewHandler(svc service.InteractiveService, views service.PageViewService) *Handler {
	return &Handler{
		svc:   svc,
		views: views,
	}
}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/intr")
	g.POST("/like", ginx.BS[LikeReq](h.Like))
}

func (h *Handler) PublicRoutes(server *gin.Engine) {
	g := server.Group("/intr")
	// 匿名用户也能看点赞数
	g.POST("/like/info", ginx.B[LikeReq](h.LikeInfo))
	g.GET("/like/popular", ginx.W(h.MostLiked))

	v := server.Group("/views")
	v.POST("", ginx.B[ViewReq](h.RecordView))
	v.GET("/stats", ginx.W(h.ViewStats))
	v.GET("/popular", ginx.W(h.MostViewed))
}

func (h *Handler) Like(ctx *ginx.Context, req LikeReq, sess session.Session) (ginx.Result, error) {
	t, err := req.toDomain()
	if err != nil {
		return errorResult(service.ErrInvalidTarget)
	}
	res, err := h.svc.Like(ctx.Request.Context(), actor.FromSession(sess), t)
	if err != nil {
		return errorResult(err)
	}
	return ginx.Result{
		Data: LikeResult{Liked: res.Liked, LikeCount: res.LikeCount},
	}, nil
}

func (h *Handler) LikeInfo(ctx *ginx.Context, req LikeReq) (ginx.Result, error) {
	t, err := req.toDomain()
	if err != nil {
		return errorResult(service.ErrInvalidTarget)
	}
	info, err := h.svc.LikeInfo(ctx.Request.Context(), actor.FromContext(ctx), t)
	if err != nil {
		return errorResult(err)
	}
	return ginx.Result{
		Data: LikeInfo{Liked: info.Liked, LikeCount: info.LikeCount},
	}, nil
}

func (h *Handler) MostLiked(ctx *ginx.Context) (ginx.Result, error) {
	ranks, err := h.svc.MostLiked(ctx.Request.Context(), queryLimit(ctx))
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: slice.Map(ranks, func(idx int, src domain.LikeRank) LikeRank {
			return LikeRank{Target: newTarget(src.Target), LikeCount: src.LikeCount}
		}),
	}, nil
}

func (h *Handler) RecordView(ctx *ginx.Context, req ViewReq) (ginx.Result, error) {
	url, err := h.views.Record(ctx.Request.Context(), domain.PageView{
		URL:       req.URL,
		IP:        clientIP(ctx),
		UserAgent: ctx.Request.UserAgent(),
		Uid:       actor.FromContext(ctx).Uid,
	})
	switch {
	case err == nil:
		return ginx.Result{Msg: "OK", Data: url}, nil
	case errors.Is(err, service.ErrInvalidTarget):
		return ginx.Result{Code: errs.InvalidViewURL.Code, Msg: errs.InvalidViewURL.Msg}, nil
	default:
		return systemErrorResult, err
	}
}

func (h *Handler) ViewStats(ctx *ginx.Context) (ginx.Result, error) {
	stats, err := h.views.Stats(ctx.Request.Context(), ctx.Context.Query("url"))
	switch {
	case err == nil:
		return ginx.Result{Data: newViewStats(stats)}, nil
	case errors.Is(err, service.ErrInvalidTarget):
		return ginx.Result{Code: errs.InvalidViewURL.Code, Msg: errs.InvalidViewURL.Msg}, nil
	default:
		return systemErrorResult, err
	}
}

func (h *Handler) MostViewed(ctx *ginx.Context) (ginx.Result, error) {
	stats, err := h.views.MostViewed(ctx.Request.Context(), queryLimit(ctx))
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: slice.Map(stats, func(idx int, src domain.PageViewStats) ViewStats {
			return newViewStats(src)
		}),
	}, nil
}

// clientIP 优先取代理转发过来的第一个地址
func clientIP(ctx *ginx.Context) string {
	if fwd := ctx.Request.Header.Get("X-Forwarded-For"); fwd != "" {
		first, _, _ := strings.Cut(fwd, ",")
		if ip := strings.TrimSpace(first); ip != "" {
			return ip
		}
	}
	return ctx.Context.ClientIP()
}

func queryLimit(ctx *ginx.Context) int {
	limit, _ := strconv.Atoi(ctx.Context.Query("limit"))
	return limit
}
