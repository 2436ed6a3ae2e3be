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

package repository

import (
	"context"
	"errors"

	"github.com/ecodeclub/chatter/internal/interactive/internal/domain"
	"github.com/ecodeclub/chatter/internal/interactive/internal/repository/dao"
	"github.com/ecodeclub/chatter/internal/pkg/target"
	"github.com/ecodeclub/ekit/slice"
	"golang.org/x/sync/errgroup"
)

var (
	ErrRecordNotFound = dao.ErrRecordNotFound
	ErrLikeConflict   = dao.ErrLikeConflict
)

//go:generate mockgen -source=./interactive.go -package=repomocks -destination=./mocks/interactive.mock.go InteractiveRepository
type InteractiveRepository interface {
	LikeToggle(ctx context.Context, uid int64, t domain.Target) (domain.LikeResult, error)
	LikeInfo(ctx context.Context, uid int64, t domain.Target) (domain.LikeInfo, error)
	MostLiked(ctx context.Context, limit int) ([]domain.LikeRank, error)
}

type interactiveRepository struct {
	interactiveDao dao.InteractiveDAO
}

func NewInteractiveRepository(d dao.InteractiveDAO) InteractiveRepository {
	return &interactiveRepository{
		interactiveDao: d,
	}
}

func (i *interactiveRepository) LikeToggle(ctx context.Context, uid int64, t domain.Target) (domain.LikeResult, error) {
	liked, cnt, err := i.interactiveDao.LikeToggle(ctx, uid, toTarget(t))
	return domain.LikeResult{Liked: liked, LikeCount: cnt}, err
}

func (i *interactiveRepository) LikeInfo(ctx context.Context, uid int64, t domain.Target) (domain.LikeInfo, error) {
	var (
		res domain.LikeInfo
		eg  errgroup.Group
		dt  = toTarget(t)
	)
	eg.Go(func() error {
		counter, err := i.interactiveDao.GetLikeCounter(ctx, dt)
		if errors.Is(err, dao.ErrRecordNotFound) {
			return nil
		}
		res.LikeCount = counter.LikeCnt
		return err
	})
	if uid > 0 {
		eg.Go(func() error {
			like, err := i.interactiveDao.GetLike(ctx, uid, dt)
			if errors.Is(err, dao.ErrRecordNotFound) {
				return nil
			}
			res.Liked = err == nil
			res.LikeID = like.ID
			return err
		})
	}
	return res, eg.Wait()
}

func (i *interactiveRepository) MostLiked(ctx context.Context, limit int) ([]domain.LikeRank, error) {
	counters, err := i.interactiveDao.MostLiked(ctx, limit)
	if err != nil {
		return nil, err
	}
	return slice.Map(counters, func(idx int, src dao.LikeCounter) domain.LikeRank {
		return domain.LikeRank{
			Target:    toDomainTarget(src.URL, src.EntityType, src.EntityID),
			LikeCount: src.LikeCnt,
		}
	}), nil
}

func toTarget(t domain.Target) dao.Target {
	if t.Kind == target.KindURL {
		return dao.Target{URL: t.URL}
	}
	return dao.Target{EntityType: t.EntityType, EntityID: t.EntityID}
}

func toDomainTarget(url, entityType string, entityID int64) domain.Target {
	if url != "" {
		return domain.Target{Kind: target.KindURL, URL: url}
	}
	return domain.Target{Kind: target.KindEntity, EntityType: entityType, EntityID: entityID}
}
