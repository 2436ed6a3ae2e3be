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

package service

import (
	"context"
	"testing"

	"github.com/ecodeclub/chatter/internal/comment/internal/domain"
	"github.com/ecodeclub/chatter/internal/comment/internal/repository"
	repomocks "github.com/ecodeclub/chatter/internal/comment/internal/repository/mocks"
	"github.com/ecodeclub/chatter/internal/pkg/actor"
	"github.com/ecodeclub/chatter/internal/user"
	usermocks "github.com/ecodeclub/chatter/internal/user/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestModerationService_Moderate(t *testing.T) {
	admin := actor.Actor{Uid: 1, Admin: true}
	testCases := []struct {
		name    string
		mock    func(repo *repomocks.MockCommentRepository)
		actor   actor.Actor
		call    func(ModerationService, context.Context, actor.Actor, int64) (domain.Comment, error)
		want    domain.Comment
		wantErr error
	}{
		{
			name:    "未登录",
			mock:    func(repo *repomocks.MockCommentRepository) {},
			call:    ModerationService.Hide,
			wantErr: ErrUnauthenticated,
		},
		{
			name:    "普通用户不能隐藏",
			mock:    func(repo *repomocks.MockCommentRepository) {},
			actor:   actor.Actor{Uid: 2},
			call:    ModerationService.Hide,
			wantErr: ErrForbidden,
		},
		{
			name:    "普通用户不能清除举报",
			mock:    func(repo *repomocks.MockCommentRepository) {},
			actor:   actor.Actor{Uid: 2},
			call:    ModerationService.ClearFlags,
			wantErr: ErrForbidden,
		},
		{
			name: "隐藏",
			mock: func(repo *repomocks.MockCommentRepository) {
				repo.EXPECT().Moderate(gomock.Any(), int64(10), domain.ModerationHide, int64(1)).
					Return(domain.Comment{ID: 10, Hidden: true, ReviewedBy: 1}, nil)
			},
			actor: admin,
			call:  ModerationService.Hide,
			want:  domain.Comment{ID: 10, Hidden: true, ReviewedBy: 1},
		},
		{
			name: "取消隐藏",
			mock: func(repo *repomocks.MockCommentRepository) {
				repo.EXPECT().Moderate(gomock.Any(), int64(10), domain.ModerationUnhide, int64(1)).
					Return(domain.Comment{ID: 10, ReviewedBy: 1}, nil)
			},
			actor: admin,
			call:  ModerationService.Unhide,
			want:  domain.Comment{ID: 10, ReviewedBy: 1},
		},
		{
			name: "清除举报不影响隐藏状态",
			mock: func(repo *repomocks.MockCommentRepository) {
				repo.EXPECT().Moderate(gomock.Any(), int64(10), domain.ModerationClearFlags, int64(1)).
					Return(domain.Comment{ID: 10, Hidden: true, ReviewedBy: 1}, nil)
			},
			actor: admin,
			call:  ModerationService.ClearFlags,
			want:  domain.Comment{ID: 10, Hidden: true, ReviewedBy: 1},
		},
		{
			name: "评论不存在",
			mock: func(repo *repomocks.MockCommentRepository) {
				repo.EXPECT().Moderate(gomock.Any(), int64(10), domain.ModerationHide, int64(1)).
					Return(domain.Comment{}, repository.ErrCommentNotFound)
			},
			actor:   admin,
			call:    ModerationService.Hide,
			wantErr: ErrNotFound,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			repo := repomocks.NewMockCommentRepository(ctrl)
			tc.mock(repo)
			svc := NewModerationService(repo, usermocks.NewMockUserService(ctrl))
			got, err := tc.call(svc, context.Background(), tc.actor, 10)
			assert.ErrorIs(t, err, tc.wantErr)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestModerationService_ListFlagged(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := repomocks.NewMockCommentRepository(ctrl)
	userSvc := usermocks.NewMockUserService(ctrl)
	svc := NewModerationService(repo, userSvc)

	_, _, err := svc.ListFlagged(context.Background(), actor.Actor{Uid: 2}, 0, 10)
	assert.ErrorIs(t, err, ErrForbidden)

	repo.EXPECT().FindFlagged(gomock.Any(), 0, 20).Return([]domain.Comment{
		{ID: 3, User: domain.User{ID: 7}, Flagged: true, FlagCount: 2},
	}, int64(1), nil)
	userSvc.EXPECT().BatchProfile(gomock.Any(), []int64{7}).Return([]user.User{{Id: 7, Nickname: "alice"}}, nil)

	got, total, err := svc.ListFlagged(context.Background(), actor.Actor{Uid: 1, Admin: true}, -1, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, got, 1)
	assert.Equal(t, "alice", got[0].User.NickName)
}
