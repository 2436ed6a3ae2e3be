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
	"github.com/ecodeclub/chatter/internal/comment/internal/domain"
	"github.com/ecodeclub/chatter/internal/comment/internal/service"
	"github.com/ecodeclub/chatter/internal/pkg/actor"
	"github.com/ecodeclub/chatter/internal/pkg/content"
	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/gin-gonic/gin"
)

var _ ginx.Handler = &Handler{}

type Handler struct {
	svc      service.CommentService
	renderer *content.Renderer
}

func NewHandler(svc service.CommentService, renderer *content.Renderer) *Handler {
	return &Handler{
		svc:      svc,
		renderer: renderer,
	}
}

// PublicRoutes 匿名用户也可以看评论
func (h *Handler) PublicRoutes(server *gin.Engine) {
	g := server.Group("/comment")
	g.POST("/list", ginx.B[ListReq](h.List))
	g.POST("/count", ginx.B[CountReq](h.Count))
	g.POST("/user", ginx.B[UserCommentsReq](h.UserComments))
}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/comment")
	g.POST("/create", ginx.BS[CreateReq](h.Create))
	g.POST("/edit", ginx.BS[EditReq](h.Edit))
	g.POST("/delete", ginx.BS[IDReq](h.Delete))
	g.POST("/versions", ginx.BS[IDReq](h.Versions))
	g.POST("/report", ginx.BS[ReportReq](h.Report))
	g.POST("/like", ginx.BS[IDReq](h.Like))
}

func (h *Handler) List(ctx *ginx.Context, req ListReq) (ginx.Result, error) {
	t, err := req.Target.toDomain()
	if err != nil {
		return errorResult(err)
	}
	comments, err := h.svc.ListByTarget(ctx.Request.Context(), actor.FromContext(ctx), t, domain.Sort(req.Sort).OrDefault())
	if err != nil {
		return errorResult(err)
	}
	return ginx.Result{
		Data: CommentList{
			List:  h.toVOs(comments),
			Total: int64(len(comments)),
		},
	}, nil
}

func (h *Handler) Count(ctx *ginx.Context, req CountReq) (ginx.Result, error) {
	t, err := req.Target.toDomain()
	if err != nil {
		return errorResult(err)
	}
	cnt, err := h.svc.CountByTarget(ctx.Request.Context(), t)
	if err != nil {
		return errorResult(err)
	}
	return ginx.Result{
		Data: Count{Count: cnt},
	}, nil
}

func (h *Handler) UserComments(ctx *ginx.Context, req UserCommentsReq) (ginx.Result, error) {
	comments, total, err := h.svc.ListByUser(ctx.Request.Context(), actor.FromContext(ctx), req.Uid, req.Offset, req.Limit)
	if err != nil {
		return errorResult(err)
	}
	return ginx.Result{
		Data: CommentList{
			List:  h.toVOs(comments),
			Total: total,
		},
	}, nil
}

func (h *Handler) Create(ctx *ginx.Context, req CreateReq, sess session.Session) (ginx.Result, error) {
	t, err := req.Target.toDomain()
	if err != nil {
		return errorResult(err)
	}
	c, err := h.svc.Create(ctx.Request.Context(), actor.FromSession(sess), t, req.Content, req.ParentID)
	if err != nil {
		return errorResult(err)
	}
	return ginx.Result{
		Data: h.toVO(c),
	}, nil
}

func (h *Handler) Edit(ctx *ginx.Context, req EditReq, sess session.Session) (ginx.Result, error) {
	c, err := h.svc.Edit(ctx.Request.Context(), actor.FromSession(sess), req.ID, req.Content)
	if err != nil {
		return errorResult(err)
	}
	return ginx.Result{
		Data: h.toVO(c),
	}, nil
}

func (h *Handler) Delete(ctx *ginx.Context, req IDReq, sess session.Session) (ginx.Result, error) {
	err := h.svc.Delete(ctx.Request.Context(), actor.FromSession(sess), req.ID)
	if err != nil {
		return errorResult(err)
	}
	return ginx.Result{
		Msg: "OK",
	}, nil
}

func (h *Handler) Versions(ctx *ginx.Context, req IDReq, sess session.Session) (ginx.Result, error) {
	versions, err := h.svc.Versions(ctx.Request.Context(), actor.FromSession(sess), req.ID)
	if err != nil {
		return errorResult(err)
	}
	return ginx.Result{
		Data: slice.Map(versions, func(idx int, src domain.Version) Version {
			return newVersion(src)
		}),
	}, nil
}

func (h *Handler) Report(ctx *ginx.Context, req ReportReq, sess session.Session) (ginx.Result, error) {
	_, err := h.svc.Report(ctx.Request.Context(), actor.FromSession(sess), req.ID, req.Reason)
	if err != nil {
		return errorResult(err)
	}
	return ginx.Result{
		Msg: "OK",
	}, nil
}

func (h *Handler) Like(ctx *ginx.Context, req IDReq, sess session.Session) (ginx.Result, error) {
	res, err := h.svc.ToggleLike(ctx.Request.Context(), actor.FromSession(sess), req.ID)
	if err != nil {
		return errorResult(err)
	}
	return ginx.Result{
		Data: LikeResult{
			Liked:     res.Liked,
			LikeCount: res.LikeCount,
		},
	}, nil
}

func (h *Handler) toVOs(comments []domain.Comment) []Comment {
	return slice.Map(comments, func(idx int, src domain.Comment) Comment {
		return h.toVO(src)
	})
}

// toVO 占位评论不带作者和内容
func (h *Handler) toVO(c domain.Comment) Comment {
	res := Comment{
		ID:          c.ID,
		ParentID:    c.ParentID,
		Target:      newTarget(c.Target),
		Ctime:       c.Ctime,
		Utime:       c.Utime,
		ReplyCount:  c.ReplyCount,
		Placeholder: c.Placeholder,
		Replies:     h.toVOs(c.Replies),
	}
	if c.Placeholder {
		return res
	}
	res.User = User{
		ID:       c.User.ID,
		Nickname: c.User.NickName,
		Avatar:   c.User.Avatar,
	}
	res.Content = c.Content
	res.HTML = h.renderer.Render(c.Content)
	res.EditedAt = c.EditedAt
	res.LikeCount = c.LikeCount
	res.Liked = c.Liked
	return res
}

func newVersion(v domain.Version) Version {
	return Version{
		ID:       v.ID,
		Content:  v.Content,
		EditedAt: v.EditedAt,
	}
}
