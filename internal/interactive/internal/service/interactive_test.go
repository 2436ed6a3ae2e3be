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
	"errors"
	"testing"

	"github.com/ecodeclub/chatter/internal/interactive/internal/domain"
	"github.com/ecodeclub/chatter/internal/interactive/internal/repository"
	repomocks "github.com/ecodeclub/chatter/internal/interactive/internal/repository/mocks"
	"github.com/ecodeclub/chatter/internal/pkg/actor"
	"github.com/ecodeclub/chatter/internal/pkg/target"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestInteractiveService_Like(t *testing.T) {
	page, err := target.URL("/projects/1")
	require.NoError(t, err)

	testCases := []struct {
		name    string
		mock    func(ctrl *gomock.Controller) repository.InteractiveRepository
		actor   actor.Actor
		target  domain.Target
		want    domain.LikeResult
		wantErr error
	}{
		{
			name: "点赞成功",
			mock: func(ctrl *gomock.Controller) repository.InteractiveRepository {
				repo := repomocks.NewMockInteractiveRepository(ctrl)
				repo.EXPECT().LikeToggle(gomock.Any(), int64(1), page).
					Return(domain.LikeResult{Liked: true, LikeCount: 3}, nil)
				return repo
			},
			actor:  actor.Actor{Uid: 1},
			target: page,
			want:   domain.LikeResult{Liked: true, LikeCount: 3},
		},
		{
			name: "未登录",
			mock: func(ctrl *gomock.Controller) repository.InteractiveRepository {
				return repomocks.NewMockInteractiveRepository(ctrl)
			},
			target:  page,
			wantErr: ErrUnauthenticated,
		},
		{
			name: "对象非法",
			mock: func(ctrl *gomock.Controller) repository.InteractiveRepository {
				return repomocks.NewMockInteractiveRepository(ctrl)
			},
			actor:   actor.Actor{Uid: 1},
			target:  domain.Target{Kind: target.KindEntity, EntityType: "Bad"},
			wantErr: ErrInvalidTarget,
		},
		{
			name: "冲突后重试成功",
			mock: func(ctrl *gomock.Controller) repository.InteractiveRepository {
				repo := repomocks.NewMockInteractiveRepository(ctrl)
				gomock.InOrder(
					repo.EXPECT().LikeToggle(gomock.Any(), int64(2), page).
						Return(domain.LikeResult{}, repository.ErrLikeConflict),
					repo.EXPECT().LikeToggle(gomock.Any(), int64(2), page).
						Return(domain.LikeResult{Liked: false, LikeCount: 0}, nil),
				)
				return repo
			},
			actor:  actor.Actor{Uid: 2},
			target: page,
			want:   domain.LikeResult{},
		},
		{
			name: "连续冲突",
			mock: func(ctrl *gomock.Controller) repository.InteractiveRepository {
				repo := repomocks.NewMockInteractiveRepository(ctrl)
				repo.EXPECT().LikeToggle(gomock.Any(), int64(2), page).
					Return(domain.LikeResult{}, repository.ErrLikeConflict).Times(2)
				return repo
			},
			actor:   actor.Actor{Uid: 2},
			target:  page,
			wantErr: ErrConflict,
		},
		{
			name: "数据库错误",
			mock: func(ctrl *gomock.Controller) repository.InteractiveRepository {
				repo := repomocks.NewMockInteractiveRepository(ctrl)
				repo.EXPECT().LikeToggle(gomock.Any(), int64(2), page).
					Return(domain.LikeResult{}, errors.New("mock db error"))
				return repo
			},
			actor:   actor.Actor{Uid: 2},
			target:  page,
			wantErr: errors.New("mock db error"),
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			svc := NewService(tc.mock(ctrl))
			res, err := svc.Like(context.Background(), tc.actor, tc.target)
			if tc.wantErr != nil {
				assert.Error(t, err)
				assert.Equal(t, tc.wantErr.Error(), err.Error())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, res)
		})
	}
}

func TestInteractiveService_LikeInfo(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	entity, err := target.Entity("project", 9)
	require.NoError(t, err)

	repo := repomocks.NewMockInteractiveRepository(ctrl)
	repo.EXPECT().LikeInfo(gomock.Any(), int64(0), entity).
		Return(domain.LikeInfo{LikeCount: 7}, nil)
	svc := NewService(repo)

	info, err := svc.LikeInfo(context.Background(), actor.Actor{}, entity)
	require.NoError(t, err)
	assert.Equal(t, domain.LikeInfo{LikeCount: 7}, info)

	_, err = svc.LikeInfo(context.Background(), actor.Actor{}, domain.Target{})
	assert.ErrorIs(t, err, ErrInvalidTarget)
}

func TestInteractiveService_MostLiked(t *testing.T) {
	testCases := []struct {
		name      string
		limit     int
		wantLimit int
	}{
		{name: "默认", limit: 0, wantLimit: defaultRankLimit},
		{name: "负数", limit: -3, wantLimit: defaultRankLimit},
		{name: "正常", limit: 20, wantLimit: 20},
		{name: "超过上限", limit: 1000, wantLimit: maxRankLimit},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			repo := repomocks.NewMockInteractiveRepository(ctrl)
			repo.EXPECT().MostLiked(gomock.Any(), tc.wantLimit).Return(nil, nil)
			_, err := NewService(repo).MostLiked(context.Background(), tc.limit)
			assert.NoError(t, err)
		})
	}
}
