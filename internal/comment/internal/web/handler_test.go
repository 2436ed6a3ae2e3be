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
	"net/http"
	"testing"

	"github.com/ecodeclub/chatter/internal/comment/internal/domain"
	"github.com/ecodeclub/chatter/internal/comment/internal/errs"
	"github.com/ecodeclub/chatter/internal/comment/internal/service"
	svcmocks "github.com/ecodeclub/chatter/internal/comment/mocks"
	"github.com/ecodeclub/chatter/internal/pkg/actor"
	"github.com/ecodeclub/chatter/internal/pkg/content"
	"github.com/ecodeclub/chatter/internal/pkg/target"
	"github.com/ecodeclub/chatter/internal/test"
	"github.com/ecodeclub/ekit/iox"
	"github.com/ecodeclub/ginx/session"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestHandler(t *testing.T) {
	testCases := []struct {
		name     string
		mock     func(ctrl *gomock.Controller) service.CommentService
		path     string
		login    bool
		req      any
		wantHTTP int
		wantCode int
	}{
		{
			name: "对象非法不会调用服务",
			mock: func(ctrl *gomock.Controller) service.CommentService {
				return svcmocks.NewMockCommentService(ctrl)
			},
			path:     "/comment/list",
			req:      ListReq{Target: Target{URL: "/a", EntityType: "project", EntityID: 1}},
			wantHTTP: http.StatusOK,
			wantCode: errs.InvalidTarget.Code,
		},
		{
			name: "匿名查看",
			mock: func(ctrl *gomock.Controller) service.CommentService {
				svc := svcmocks.NewMockCommentService(ctrl)
				u, _ := target.URL("a")
				svc.EXPECT().ListByTarget(gomock.Any(), actor.Actor{}, u, domain.SortRecent).
					Return([]domain.Comment{{ID: 1, Content: "hi"}}, nil)
				return svc
			},
			path:     "/comment/list",
			req:      ListReq{Target: Target{URL: "/a"}, Sort: "unknown"},
			wantHTTP: http.StatusOK,
		},
		{
			name: "内容校验失败",
			mock: func(ctrl *gomock.Controller) service.CommentService {
				svc := svcmocks.NewMockCommentService(ctrl)
				svc.EXPECT().Create(gomock.Any(), actor.Actor{Uid: 1}, gomock.Any(), "www.evil.com", int64(0)).
					Return(domain.Comment{}, &content.ValidationError{Kind: content.ErrContainsURL})
				return svc
			},
			path:     "/comment/create",
			login:    true,
			req:      CreateReq{Target: Target{URL: "/a"}, Content: "www.evil.com"},
			wantHTTP: http.StatusOK,
			wantCode: errs.ValidationError.Code,
		},
		{
			name: "点赞冲突",
			mock: func(ctrl *gomock.Controller) service.CommentService {
				svc := svcmocks.NewMockCommentService(ctrl)
				svc.EXPECT().ToggleLike(gomock.Any(), actor.Actor{Uid: 1}, int64(3)).
					Return(domain.LikeResult{}, service.ErrConflict)
				return svc
			},
			path:     "/comment/like",
			login:    true,
			req:      IDReq{ID: 3},
			wantHTTP: http.StatusOK,
			wantCode: errs.ConflictError.Code,
		},
		{
			name: "不是作者",
			mock: func(ctrl *gomock.Controller) service.CommentService {
				svc := svcmocks.NewMockCommentService(ctrl)
				svc.EXPECT().Delete(gomock.Any(), actor.Actor{Uid: 1}, int64(3)).Return(service.ErrNotAuthor)
				return svc
			},
			path:     "/comment/delete",
			login:    true,
			req:      IDReq{ID: 3},
			wantHTTP: http.StatusOK,
			wantCode: errs.ForbiddenError.Code,
		},
		{
			name: "系统错误",
			mock: func(ctrl *gomock.Controller) service.CommentService {
				svc := svcmocks.NewMockCommentService(ctrl)
				svc.EXPECT().Delete(gomock.Any(), actor.Actor{Uid: 1}, int64(3)).Return(errors.New("db error"))
				return svc
			},
			path:     "/comment/delete",
			login:    true,
			req:      IDReq{ID: 3},
			wantHTTP: http.StatusInternalServerError,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			hdl := NewHandler(tc.mock(ctrl), content.NewRenderer())

			server := gin.New()
			server.Use(func(ctx *gin.Context) {
				if tc.login {
					ctx.Set("_session", session.NewMemorySession(session.Claims{Uid: 1}))
				}
			})
			hdl.PublicRoutes(server)
			hdl.PrivateRoutes(server)

			req, err := http.NewRequest(http.MethodPost, tc.path, iox.NewJSONReader(tc.req))
			require.NoError(t, err)
			req.Header.Set("Content-Type", "application/json")
			recorder := test.NewJSONResponseRecorder[any]()
			server.ServeHTTP(recorder, req)
			require.Equal(t, tc.wantHTTP, recorder.Code)
			if tc.wantHTTP != http.StatusOK {
				return
			}
			assert.Equal(t, tc.wantCode, recorder.MustScan().Code)
		})
	}
}

func TestHandler_toVO(t *testing.T) {
	hdl := NewHandler(nil, content.NewRenderer())
	u, err := target.URL("posts/1")
	require.NoError(t, err)
	vo := hdl.toVO(domain.Comment{
		ID:          1,
		Target:      u,
		ReplyCount:  1,
		Placeholder: true,
		Replies: []domain.Comment{
			{ID: 2, ParentID: 1, Target: u, Content: "**粗体**", User: domain.User{ID: 7, NickName: "B"}, LikeCount: 3},
		},
	})
	assert.True(t, vo.Placeholder)
	assert.Empty(t, vo.Content)
	assert.Empty(t, vo.HTML)
	assert.Equal(t, Target{URL: "posts/1"}, vo.Target)
	require.Len(t, vo.Replies, 1)
	reply := vo.Replies[0]
	assert.Equal(t, "<p><strong>粗体</strong></p>\n", reply.HTML)
	assert.Equal(t, User{ID: 7, Nickname: "B"}, reply.User)
	assert.Equal(t, int64(3), reply.LikeCount)
}
