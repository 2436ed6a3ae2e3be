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
	"github.com/ecodeclub/ekit/slice"
)

//go:generate mockgen -source=./page_view.go -package=repomocks -destination=./mocks/page_view.mock.go PageViewRepository
type PageViewRepository interface {
	Save(ctx context.Context, pv domain.PageView) error
	RefreshStats(ctx context.Context) error
	Stats(ctx context.Context, url string) (domain.PageViewStats, error)
	MostViewed(ctx context.Context, limit int) ([]domain.PageViewStats, error)
}

type pageViewRepository struct {
	dao dao.PageViewDAO
}

func NewPageViewRepository(d dao.PageViewDAO) PageViewRepository {
	return &pageViewRepository{dao: d}
}

func (r *pageViewRepository) Save(ctx context.Context, pv domain.PageView) error {
	return r.dao.Insert(ctx, dao.PageView{
		ID:        pv.ID,
		URL:       pv.URL,
		IPAddress: pv.IP,
		UserAgent: pv.UserAgent,
		Uid:       pv.Uid,
		ViewedAt:  pv.ViewedAt,
	})
}

func (r *pageViewRepository) RefreshStats(ctx context.Context) error {
	return r.dao.RefreshStats(ctx)
}

// Stats 汇总表还没有这个 url 的时候退化成实时统计
func (r *pageViewRepository) Stats(ctx context.Context, url string) (domain.PageViewStats, error) {
	stats, err := r.dao.GetStats(ctx, url)
	if errors.Is(err, dao.ErrRecordNotFound) {
		stats, err = r.dao.LiveStats(ctx, url)
	}
	if err != nil {
		return domain.PageViewStats{}, err
	}
	stats.URL = url
	return r.toDomain(stats), nil
}

func (r *pageViewRepository) MostViewed(ctx context.Context, limit int) ([]domain.PageViewStats, error) {
	stats, err := r.dao.MostViewed(ctx, limit)
	if err != nil {
		return nil, err
	}
	return slice.Map(stats, func(idx int, src dao.PageViewStats) domain.PageViewStats {
		return r.toDomain(src)
	}), nil
}

func (r *pageViewRepository) toDomain(s dao.PageViewStats) domain.PageViewStats {
	return domain.PageViewStats{
		URL:            s.URL,
		ViewCount:      s.ViewCnt,
		UniqueVisitors: s.UniqueVisitors,
		LastViewedAt:   s.LastViewedAt,
	}
}
