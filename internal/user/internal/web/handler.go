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

	"github.com/ecodeclub/chatter/internal/pkg/actor"
	"github.com/ecodeclub/chatter/internal/pkg/redirect"
	"github.com/ecodeclub/chatter/internal/user/internal/domain"
	"github.com/ecodeclub/chatter/internal/user/internal/errs"
	"github.com/ecodeclub/chatter/internal/user/internal/repository"
	"github.com/ecodeclub/chatter/internal/user/internal/service"
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/gin-gonic/gin"
)

var _ ginx.Handler = &Handler{}

type Handler struct {
	userSvc service.UserService
}

func NewHandler(userSvc service.UserService) *Handler {
	return &Handler{
		userSvc: userSvc,
	}
}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	users := server.Group("/users")
	users.GET("/profile", ginx.S(h.Profile))
	users.POST("/profile", ginx.BS[EditReq](h.Edit))
}

func (h *Handler) PublicRoutes(server *gin.Engine) {
	users := server.Group("/users")
	// 登录、注册页面用来决定登录完成之后跳到哪里
	users.GET("/return-to", ginx.W(h.ReturnTo))
	users.Any("/token/refresh", ginx.W(h.RefreshAccessToken))
}

func (h *Handler) ReturnTo(ctx *ginx.Context) (ginx.Result, error) {
	raw := ctx.Context.Query("return_to")
	return ginx.Result{
		Data: ReturnTo{
			Path:  redirect.SafeOrDefault(raw, "/"),
			Login: redirect.LoginURL(raw),
		},
	}, nil
}

func (h *Handler) RefreshAccessToken(ctx *ginx.Context) (ginx.Result, error) {
	err := session.RenewAccessToken(ctx)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Msg: "OK"}, nil
}

func (h *Handler) Profile(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	a := actor.FromSession(sess)
	u, err := h.userSvc.Profile(ctx, a.Uid)
	if errors.Is(err, repository.ErrUserNotFound) {
		return ginx.Result{
			Code: errs.UserNotFound.Code,
			Msg:  errs.UserNotFound.Msg,
		}, nil
	}
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: Profile{
			Id:       u.Id,
			Nickname: u.Nickname,
			Avatar:   u.Avatar,
			IsAdmin:  a.Admin || u.Admin,
		},
	}, nil
}

func (h *Handler) Edit(ctx *ginx.Context, req EditReq, sess session.Session) (ginx.Result, error) {
	err := h.userSvc.UpdateNonSensitiveInfo(ctx, domain.User{
		Id:       sess.Claims().Uid,
		Nickname: req.Nickname,
		Avatar:   req.Avatar,
	})
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Msg: "OK",
	}, nil
}
