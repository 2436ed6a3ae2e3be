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

//go:build e2e

package integration

import (
	"context"
	"database/sql"
	"net/http"
	"strconv"
	"testing"

	"github.com/ecodeclub/chatter/internal/comment/internal/errs"
	"github.com/ecodeclub/chatter/internal/comment/internal/integration/startup"
	"github.com/ecodeclub/chatter/internal/comment/internal/repository/cache"
	"github.com/ecodeclub/chatter/internal/comment/internal/repository/dao"
	"github.com/ecodeclub/chatter/internal/comment/internal/web"
	"github.com/ecodeclub/chatter/internal/pkg/actor"
	"github.com/ecodeclub/chatter/internal/pkg/target"
	"github.com/ecodeclub/chatter/internal/test"
	testioc "github.com/ecodeclub/chatter/internal/test/ioc"
	"github.com/ecodeclub/chatter/internal/user"
	usermocks "github.com/ecodeclub/chatter/internal/user/mocks"
	"github.com/ecodeclub/ekit/iox"
	"github.com/ecodeclub/ginx/session"
	"github.com/ego-component/egorm"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/econf"
	"github.com/gotomicro/ego/server/egin"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

const (
	uidA     = int64(101)
	uidB     = int64(102)
	uidC     = int64(103)
	adminUid = int64(900)

	headerUid   = "X-Test-Uid"
	headerAdmin = "X-Test-Admin"
)

type HandlerTestSuite struct {
	suite.Suite
	server      *egin.Component
	adminServer *egin.Component
	db          *egorm.Component
	cache       cache.CommentCache
}

func TestCommentHandler(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}

func (s *HandlerTestSuite) SetupSuite() {
	econf.Set("server", map[string]any{"contextTimeout": "1s"})
	s.db = testioc.InitDB()
	s.cache = cache.NewCommentECache(testioc.InitCache())

	ctrl := gomock.NewController(s.T())
	userSvc := usermocks.NewMockUserService(ctrl)
	profiles := map[int64]user.User{
		uidA: {Id: uidA, Nickname: "A", Avatar: "a.png"},
		uidB: {Id: uidB, Nickname: "B", Avatar: "b.png"},
		uidC: {Id: uidC, Nickname: "C", Avatar: "c.png"},
	}
	userSvc.EXPECT().BatchProfile(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, ids []int64) ([]user.User, error) {
			res := make([]user.User, 0, len(ids))
			for _, id := range ids {
				if u, ok := profiles[id]; ok {
					res = append(res, u)
				}
			}
			return res, nil
		}).AnyTimes()

	module, err := startup.InitModule(&user.Module{Svc: userSvc})
	require.NoError(s.T(), err)

	server := egin.Load("server").Build()
	server.Use(testSession)
	module.Hdl.PublicRoutes(server.Engine)
	server.Use(session.CheckLoginMiddleware())
	module.Hdl.PrivateRoutes(server.Engine)
	s.server = server

	adminServer := egin.Load("server").Build()
	adminServer.Use(testSession)
	adminServer.Use(session.CheckLoginMiddleware())
	module.AdminHdl.PrivateRoutes(adminServer.Engine)
	s.adminServer = adminServer
}

// testSession 用请求头模拟登录用户，没有请求头就是匿名用户
func testSession(ctx *gin.Context) {
	uid, err := strconv.ParseInt(ctx.GetHeader(headerUid), 10, 64)
	if err != nil {
		return
	}
	ctx.Set("_session", session.NewMemorySession(session.Claims{
		Uid: uid,
		Data: map[string]string{
			actor.AdminClaim: ctx.GetHeader(headerAdmin),
		},
	}))
}

// SetupTest 测试数据是直接写库的，要先清掉上一次留下的评论缓存
func (s *HandlerTestSuite) SetupTest() {
	urls := []string{"projects/robot-1", "a", "posts/1", "posts/2", "posts/3", "posts/4"}
	for _, u := range urls {
		t, err := target.URL(u)
		s.Require().NoError(err)
		s.NoError(s.cache.DelThread(context.Background(), t))
	}
	for _, id := range []int64{1, 2, 9} {
		t, err := target.Entity("project", id)
		s.Require().NoError(err)
		s.NoError(s.cache.DelThread(context.Background(), t))
	}
}

func (s *HandlerTestSuite) TearDownTest() {
	s.NoError(s.db.Exec("TRUNCATE TABLE `comments`").Error)
	s.NoError(s.db.Exec("TRUNCATE TABLE `comment_versions`").Error)
	s.NoError(s.db.Exec("TRUNCATE TABLE `comment_likes`").Error)
}

func (s *HandlerTestSuite) TestEndToEnd() {
	projectURL := web.Target{URL: "projects/robot-1"}

	root := call[web.Comment](s, s.server, "/comment/create", uidA, web.CreateReq{
		Target:  projectURL,
		Content: "Nice build!",
	})
	s.Equal(0, root.Code)
	s.Equal("Nice build!", root.Data.Content)
	s.Equal(uidA, root.Data.User.ID)

	list := s.list(0, web.ListReq{Target: projectURL})
	s.Require().Len(list.List, 1)
	s.Equal(root.Data.ID, list.List[0].ID)

	reply := call[web.Comment](s, s.server, "/comment/create", uidB, web.CreateReq{
		Target:   projectURL,
		Content:  "Thanks!",
		ParentID: root.Data.ID,
	})
	s.Equal(0, reply.Code)

	list = s.list(0, web.ListReq{Target: projectURL})
	s.Require().Len(list.List, 1)
	s.Equal(int64(1), list.List[0].ReplyCount)
	s.Require().Len(list.List[0].Replies, 1)
	s.Equal("Thanks!", list.List[0].Replies[0].Content)
	s.Equal(uidB, list.List[0].Replies[0].User.ID)

	hidden := callAdmin[web.FlaggedComment](s, "/comment/hide", web.IDReq{ID: reply.Data.ID})
	s.Equal(0, hidden.Code)
	s.True(hidden.Data.Hidden)
	s.Equal(adminUid, hidden.Data.ReviewedBy)

	list = s.list(0, web.ListReq{Target: projectURL})
	s.Require().Len(list.List, 1)
	s.Equal("Nice build!", list.List[0].Content)
	s.Require().Len(list.List[0].Replies, 1)
	placeholder := list.List[0].Replies[0]
	s.True(placeholder.Placeholder)
	s.Equal(reply.Data.ID, placeholder.ID)
	s.Empty(placeholder.Content)
	s.Zero(placeholder.User.ID)
}

func (s *HandlerTestSuite) TestCreate() {
	parent := s.seed(dao.Comment{Uid: uidA, EntityType: "project", EntityID: 1, Content: "根评论"})
	testCases := []struct {
		name     string
		uid      int64
		req      web.CreateReq
		wantHTTP int
		wantCode int
	}{
		{
			name:     "未登录",
			req:      web.CreateReq{Target: web.Target{URL: "/a"}, Content: "hello"},
			wantHTTP: http.StatusUnauthorized,
		},
		{
			name:     "包含链接",
			uid:      uidA,
			req:      web.CreateReq{Target: web.Target{URL: "/a"}, Content: "check http://evil.com"},
			wantHTTP: http.StatusOK,
			wantCode: errs.ValidationError.Code,
		},
		{
			name:     "包含违禁词",
			uid:      uidA,
			req:      web.CreateReq{Target: web.Target{URL: "/a"}, Content: "you idiot"},
			wantHTTP: http.StatusOK,
			wantCode: errs.ValidationError.Code,
		},
		{
			name:     "对象同时有URL和实体",
			uid:      uidA,
			req:      web.CreateReq{Target: web.Target{URL: "/a", EntityType: "project", EntityID: 1}, Content: "hello"},
			wantHTTP: http.StatusOK,
			wantCode: errs.InvalidTarget.Code,
		},
		{
			name:     "父评论不存在",
			uid:      uidA,
			req:      web.CreateReq{Target: web.Target{URL: "/a"}, Content: "hello", ParentID: 99999},
			wantHTTP: http.StatusOK,
			wantCode: errs.NotFoundError.Code,
		},
		{
			name: "回复挂在别的对象上",
			uid:  uidB,
			req: web.CreateReq{
				Target:   web.Target{EntityType: "project", EntityID: 2},
				Content:  "hello",
				ParentID: parent.ID,
			},
			wantHTTP: http.StatusOK,
			wantCode: errs.InvalidTarget.Code,
		},
		{
			name: "回复成功",
			uid:  uidB,
			req: web.CreateReq{
				Target:   web.Target{EntityType: "project", EntityID: 1},
				Content:  "<b>回复</b>",
				ParentID: parent.ID,
			},
			wantHTTP: http.StatusOK,
		},
	}
	for _, tc := range testCases {
		s.Run(tc.name, func() {
			recorder := s.post(s.server, "/comment/create", tc.uid, false, tc.req)
			s.Equal(tc.wantHTTP, recorder.Code)
			if tc.wantHTTP != http.StatusOK {
				return
			}
			res := scan[web.Comment](s, recorder)
			s.Equal(tc.wantCode, res.Code)
		})
	}

	var p dao.Comment
	s.NoError(s.db.First(&p, parent.ID).Error)
	s.Equal(int64(1), p.ReplyCount)
	var r dao.Comment
	s.NoError(s.db.Where("parent_id = ?", parent.ID).First(&r).Error)
	s.Equal("回复", r.Content)
}

func (s *HandlerTestSuite) TestEditAndVersions() {
	c := s.seed(dao.Comment{Uid: uidA, URL: "posts/1", Content: "第一版"})

	res := call[web.Comment](s, s.server, "/comment/edit", uidB, web.EditReq{ID: c.ID, Content: "别人改的"})
	s.Equal(errs.ForbiddenError.Code, res.Code)

	res = call[web.Comment](s, s.server, "/comment/edit", uidA, web.EditReq{ID: c.ID, Content: "第二版"})
	s.Equal(0, res.Code)
	s.Equal("第二版", res.Data.Content)
	s.NotZero(res.Data.EditedAt)

	versions := call[[]web.Version](s, s.server, "/comment/versions", uidA, web.IDReq{ID: c.ID})
	s.Equal(0, versions.Code)
	s.Require().Len(versions.Data, 1)
	s.Equal("第一版", versions.Data[0].Content)

	others := call[[]web.Version](s, s.server, "/comment/versions", uidB, web.IDReq{ID: c.ID})
	s.Equal(errs.ForbiddenError.Code, others.Code)

	admin := callAdmin[[]web.Version](s, "/comment/versions", web.IDReq{ID: c.ID})
	s.Equal(0, admin.Code)
	s.Len(admin.Data, 1)
}

func (s *HandlerTestSuite) TestDeleteKeepsReplies() {
	root := s.seed(dao.Comment{Uid: uidA, URL: "posts/2", Content: "根评论", ReplyCount: 3})
	for i := 0; i < 3; i++ {
		s.seed(dao.Comment{Uid: uidB, URL: "posts/2", Content: "回复" + strconv.Itoa(i), ParentID: parentID(root.ID)})
	}

	res := call[any](s, s.server, "/comment/delete", uidB, web.IDReq{ID: root.ID})
	s.Equal(errs.ForbiddenError.Code, res.Code)

	res = call[any](s, s.server, "/comment/delete", uidA, web.IDReq{ID: root.ID})
	s.Equal(0, res.Code)

	list := s.list(0, web.ListReq{Target: web.Target{URL: "/posts/2"}})
	s.Require().Len(list.List, 1)
	s.True(list.List[0].Placeholder)
	s.Equal(int64(3), list.List[0].ReplyCount)
	s.Len(list.List[0].Replies, 3)

	var replies []dao.Comment
	s.NoError(s.db.Where("parent_id = ?", root.ID).Order("id").Find(&replies).Error)
	s.Len(replies, 3)

	// 删掉一个回复之后计数不变，多出一个占位
	res = call[any](s, s.server, "/comment/delete", uidB, web.IDReq{ID: replies[0].ID})
	s.Equal(0, res.Code)
	list = s.list(0, web.ListReq{Target: web.Target{URL: "posts/2"}})
	s.Equal(int64(3), list.List[0].ReplyCount)
	s.True(list.List[0].Replies[0].Placeholder)
	s.False(list.List[0].Replies[1].Placeholder)

	cnt := call[web.Count](s, s.server, "/comment/count", 0, web.CountReq{Target: web.Target{URL: "posts/2"}})
	s.Equal(int64(2), cnt.Data.Count)
}

func (s *HandlerTestSuite) TestReportAndModeration() {
	c := s.seed(dao.Comment{Uid: uidA, URL: "posts/3", Content: "有问题的评论"})

	res := call[any](s, s.server, "/comment/report", uidB, web.ReportReq{ID: c.ID, Reason: " "})
	s.Equal(errs.ValidationError.Code, res.Code)
	res = call[any](s, s.server, "/comment/report", uidB, web.ReportReq{ID: c.ID, Reason: "广告"})
	s.Equal(0, res.Code)
	res = call[any](s, s.server, "/comment/report", uidB, web.ReportReq{ID: c.ID, Reason: "还是广告"})
	s.Equal(0, res.Code)

	// 普通用户不能审核
	forbidden := s.post(s.adminServer, "/comment/hide", uidB, false, web.IDReq{ID: c.ID})
	s.Equal(errs.ForbiddenError.Code, scan[web.FlaggedComment](s, forbidden).Code)

	flagged := callAdmin[web.FlaggedList](s, "/comment/flagged", web.Page{Limit: 10})
	s.Equal(0, flagged.Code)
	s.Equal(int64(1), flagged.Data.Total)
	s.Require().Len(flagged.Data.List, 1)
	got := flagged.Data.List[0]
	s.Equal(int64(2), got.FlagCount)
	s.Require().Len(got.FlagReasons, 2)
	s.Equal("广告", got.FlagReasons[0].Reason)
	s.Equal(uidB, got.FlagReasons[0].Reporter)

	for i := 0; i < 2; i++ {
		hidden := callAdmin[web.FlaggedComment](s, "/comment/hide", web.IDReq{ID: c.ID})
		s.Equal(0, hidden.Code)
		s.True(hidden.Data.Hidden)
	}

	cleared := callAdmin[web.FlaggedComment](s, "/comment/clear-flags", web.IDReq{ID: c.ID})
	s.Equal(0, cleared.Code)
	s.True(cleared.Data.Hidden)
	s.False(cleared.Data.Flagged)
	s.Zero(cleared.Data.FlagCount)
	s.Empty(cleared.Data.FlagReasons)

	list := s.list(0, web.ListReq{Target: web.Target{URL: "posts/3"}})
	s.Empty(list.List)

	unhidden := callAdmin[web.FlaggedComment](s, "/comment/unhide", web.IDReq{ID: c.ID})
	s.Equal(0, unhidden.Code)
	s.False(unhidden.Data.Hidden)
	list = s.list(0, web.ListReq{Target: web.Target{URL: "posts/3"}})
	s.Len(list.List, 1)
}

func (s *HandlerTestSuite) TestToggleLike() {
	c := s.seed(dao.Comment{Uid: uidA, URL: "posts/4", Content: "点赞我"})

	liked := call[web.LikeResult](s, s.server, "/comment/like", uidB, web.IDReq{ID: c.ID})
	s.Equal(web.LikeResult{Liked: true, LikeCount: 1}, liked.Data)
	liked = call[web.LikeResult](s, s.server, "/comment/like", uidC, web.IDReq{ID: c.ID})
	s.Equal(web.LikeResult{Liked: true, LikeCount: 2}, liked.Data)

	list := s.list(uidB, web.ListReq{Target: web.Target{URL: "posts/4"}})
	s.Require().Len(list.List, 1)
	s.True(list.List[0].Liked)
	s.Equal(int64(2), list.List[0].LikeCount)
	list = s.list(0, web.ListReq{Target: web.Target{URL: "posts/4"}})
	s.False(list.List[0].Liked)

	unliked := call[web.LikeResult](s, s.server, "/comment/like", uidB, web.IDReq{ID: c.ID})
	s.Equal(web.LikeResult{Liked: false, LikeCount: 1}, unliked.Data)

	missing := call[web.LikeResult](s, s.server, "/comment/like", uidB, web.IDReq{ID: c.ID + 1000})
	s.Equal(errs.NotFoundError.Code, missing.Code)
}

func (s *HandlerTestSuite) TestListPopularAndUser() {
	older := s.seed(dao.Comment{Uid: uidA, EntityType: "project", EntityID: 9, Content: "旧的但是很多赞", LikeCount: 10})
	newer := s.seed(dao.Comment{Uid: uidA, EntityType: "project", EntityID: 9, Content: "新的"})
	s.seed(dao.Comment{Uid: uidA, EntityType: "project", EntityID: 9, Content: "被删了", IsRemoved: true})

	target := web.Target{EntityType: "project", EntityID: 9}
	recent := s.list(0, web.ListReq{Target: target})
	s.Require().Len(recent.List, 2)
	s.Equal(newer.ID, recent.List[0].ID)

	popular := s.list(0, web.ListReq{Target: target, Sort: "popular"})
	s.Require().Len(popular.List, 2)
	s.Equal(older.ID, popular.List[0].ID)
	s.Equal("<p>旧的但是很多赞</p>\n", popular.List[0].HTML)

	mine := call[web.CommentList](s, s.server, "/comment/user", 0, web.UserCommentsReq{Uid: uidA, Limit: 10})
	s.Equal(0, mine.Code)
	s.Equal(int64(2), mine.Data.Total)
	s.Len(mine.Data.List, 2)
}

func (s *HandlerTestSuite) list(uid int64, req web.ListReq) web.CommentList {
	res := call[web.CommentList](s, s.server, "/comment/list", uid, req)
	s.Require().Equal(0, res.Code, res.Msg)
	return res.Data
}

func (s *HandlerTestSuite) seed(c dao.Comment) dao.Comment {
	c.Ctime, c.Utime = 1, 1
	s.Require().NoError(s.db.Create(&c).Error)
	return c
}

func (s *HandlerTestSuite) post(server *egin.Component, path string, uid int64, admin bool, body any) test.JSONResponseRecorder[any] {
	req, err := http.NewRequest(http.MethodPost, path, iox.NewJSONReader(body))
	s.Require().NoError(err)
	req.Header.Set("Content-Type", "application/json")
	if uid > 0 {
		req.Header.Set(headerUid, strconv.FormatInt(uid, 10))
	}
	if admin {
		req.Header.Set(headerAdmin, "true")
	}
	recorder := test.NewJSONResponseRecorder[any]()
	server.ServeHTTP(recorder, req)
	return recorder
}

func scan[T any](s *HandlerTestSuite, recorder test.JSONResponseRecorder[any]) test.Result[T] {
	res, err := test.JSONResponseRecorder[T](recorder).Scan()
	s.Require().NoError(err, recorder.Body.String())
	return res
}

func call[T any](s *HandlerTestSuite, server *egin.Component, path string, uid int64, body any) test.Result[T] {
	recorder := s.post(server, path, uid, false, body)
	s.Require().Equal(http.StatusOK, recorder.Code, recorder.Body.String())
	return scan[T](s, recorder)
}

func callAdmin[T any](s *HandlerTestSuite, path string, body any) test.Result[T] {
	recorder := s.post(s.adminServer, path, adminUid, true, body)
	s.Require().Equal(http.StatusOK, recorder.Code, recorder.Body.String())
	return scan[T](s, recorder)
}

func parentID(id int64) sql.Null[int64] {
	return sql.Null[int64]{V: id, Valid: true}
}
