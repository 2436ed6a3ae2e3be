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
	"context"

	"github.com/ecodeclub/chatter/internal/comment/internal/domain"
	"github.com/ecodeclub/chatter/internal/comment/internal/service"
	"github.com/ecodeclub/chatter/internal/pkg/actor"
	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/gin-gonic/gin"
)

// AdminHandler 注册在 admin 服务上，外层已经有管理员中间件，service 里面还会再校验一次
type AdminHandler struct {
	svc service.ModerationService
	hdl *Handler
}

func NewAdminHandler(svc service.ModerationService, hdl *Handler) *AdminHandler {
	return &AdminHandler{
		svc: svc,
		hdl: hdl,
	}
}

func (h *AdminHandler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/comment")
	g.POST("/flagged", ginx.BS[Page](h.Flagged))
	g.POST("/hide", ginx.BS[IDReq](h.Hide))
	g.POST("/unhide", ginx.BS[IDReq](h.Unhide))
	g.POST("/clear-flags", ginx.BS[IDReq](h.ClearFlags))
	g.POST("/versions", ginx.BS[IDReq](h.Versions))
}

func (h *AdminHandler) Flagged(ctx *ginx.Context, req Page, sess session.Session) (ginx.Result, error) {
	comments, total, err := h.svc.ListFlagged(ctx.Request.Context(), actor.FromSession(sess), req.Offset, req.Limit)
	if err != nil {
		return errorResult(err)
	}
	return ginx.Result{
		Data: FlaggedList{
			List: slice.Map(comments, func(idx int, src domain.Comment) FlaggedComment {
				return h.toFlaggedVO(src)
			}),
			Total: total,
		},
	}, nil
}

func (h *AdminHandler) Hide(ctx *ginx.Context, req IDReq, sess session.Session) (ginx.Result, error) {
	return h.moderate(ctx, req.ID, sess, h.svc.Hide)
}

func (h *AdminHandler) Unhide(ctx *ginx.Context, req IDReq, sess session.Session) (ginx.Result, error) {
	return h.moderate(ctx, req.ID, sess, h.svc.Unhide)
}

func (h *AdminHandler) ClearFlags(ctx *ginx.Context, req IDReq, sess session.Session) (ginx.Result, error) {
	return h.moderate(ctx, req.ID, sess, h.svc.ClearFlags)
}

func (h *AdminHandler) Versions(ctx *ginx.Context, req IDReq, sess session.Session) (ginx.Result, error) {
	return h.hdl.Versions(ctx, req, sess)
}

func (h *AdminHandler) moderate(ctx *ginx.Context, id int64, sess session.Session,
	fn func(ctx context.Context, a actor.Actor, id int64) (domain.Comment, error)) (ginx.Result, error) {
	c, err := fn(ctx.Request.Context(), actor.FromSession(sess), id)
	if err != nil {
		return errorResult(err)
	}
	return ginx.Result{
		Data: h.toFlaggedVO(c),
	}, nil
}

// toFlaggedVO 管理员需要看到被隐藏评论的原文
func (h *AdminHandler) toFlaggedVO(c domain.Comment) FlaggedComment {
	vo := h.hdl.toVO(domain.Comment{
		ID:         c.ID,
		User:       c.User,
		Target:     c.Target,
		ParentID:   c.ParentID,
		Content:    c.Content,
		Ctime:      c.Ctime,
		Utime:      c.Utime,
		EditedAt:   c.EditedAt,
		LikeCount:  c.LikeCount,
		ReplyCount: c.ReplyCount,
	})
	return FlaggedComment{
		Comment:   vo,
		Removed:   c.Removed,
		Hidden:    c.Hidden,
		Flagged:   c.Flagged,
		FlagCount: c.FlagCount,
		FlagReasons: slice.Map(c.FlagReasons, func(idx int, src domain.FlagReason) FlagReason {
			return FlagReason{
				Reason:   src.Reason,
				Reporter: src.Reporter,
				At:       src.At,
			}
		}),
		ReviewedAt: c.ReviewedAt,
		ReviewedBy: c.ReviewedBy,
	}
}
