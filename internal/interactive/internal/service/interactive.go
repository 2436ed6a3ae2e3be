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

	"github.com/ecodeclub/chatter/internal/interactive/internal/domain"
	"github.com/ecodeclub/chatter/internal/interactive/internal/repository"
	"github.com/ecodeclub/chatter/internal/pkg/actor"
	"github.com/gotomicro/ego/core/elog"
)

const (
	defaultRankLimit = 10
	maxRankLimit     = 100
)

//go:generate mockgen -source=./interactive.go -package=svcmocks -destination=../../mocks/interactive.mock.go InteractiveService
type InteractiveService interface {
	// Like 点赞或者取消点赞
	Like(ctx context.Context, a actor.Actor, t domain.Target) (domain.LikeResult, error)
	// LikeInfo 匿名用户只返回点赞数
	LikeInfo(ctx context.Context, a actor.Actor, t domain.Target) (domain.LikeInfo, error)
	MostLiked(ctx context.Context, limit int) ([]domain.LikeRank, error)
}

type interactiveService struct {
	repo   repository.InteractiveRepository
	logger *elog.Component
}

func NewService(repo repository.InteractiveRepository) InteractiveService {
	return &interactiveService{
		repo:   repo,
		logger: elog.DefaultLogger.With(elog.FieldComponent("interactive.service")),
	}
}

func (i *interactiveService) Like(ctx context.Context, a actor.Actor, t domain.Target) (domain.LikeResult, error) {
	if !a.Authenticated() {
		return domain.LikeResult{}, ErrUnauthenticated
	}
	if !t.Valid() {
		return domain.LikeResult{}, ErrInvalidTarget
	}
	res, err := i.repo.LikeToggle(ctx, a.Uid, t)
	if errors.Is(err, repository.ErrLikeConflict) {
		// 并发点赞，重新执行一次就会走相反的分支
		i.logger.Warn("点赞冲突，重试", elog.Int64("uid", a.Uid), elog.String("target", t.String()))
		res, err = i.repo.LikeToggle(ctx, a.Uid, t)
		if errors.Is(err, repository.ErrLikeConflict) {
			return domain.LikeResult{}, ErrConflict
		}
	}
	return res, err
}

func (i *interactiveService) LikeInfo(ctx context.Context, a actor.Actor, t domain.Target) (domain.LikeInfo, error) {
	if !t.Valid() {
		return domain.LikeInfo{}, ErrInvalidTarget
	}
	return i.repo.LikeInfo(ctx, a.Uid, t)
}

func (i *interactiveService) MostLiked(ctx context.Context, limit int) ([]domain.LikeRank, error) {
	return i.repo.MostLiked(ctx, rankLimit(limit))
}

func rankLimit(limit int) int {
	if limit <= 0 {
		return defaultRankLimit
	}
	return min(limit, maxRankLimit)
}
