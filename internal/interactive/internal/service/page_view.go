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
	"fmt"
	"time"

	"github.com/ecodeclub/chatter/internal/interactive/internal/domain"
	"github.com/ecodeclub/chatter/internal/interactive/internal/events"
	"github.com/ecodeclub/chatter/internal/interactive/internal/repository"
	"github.com/ecodeclub/chatter/internal/pkg/snowflake"
	"github.com/ecodeclub/chatter/internal/pkg/target"
)

const maxUserAgentLength = 512

//go:generate mockgen -source=./page_view.go -package=svcmocks -destination=../../mocks/page_view.mock.go PageViewService
type PageViewService interface {
	// Record 异步记录一次访问，返回规范化之后的 url
	Record(ctx context.Context, pv domain.PageView) (string, error)
	Stats(ctx context.Context, url string) (domain.PageViewStats, error)
	MostViewed(ctx context.Context, limit int) ([]domain.PageViewStats, error)
	RefreshStats(ctx context.Context) error
}

type pageViewService struct {
	repo     repository.PageViewRepository
	producer events.PageViewEventProducer
	ids      snowflake.Generator
}

func NewPageViewService(repo repository.PageViewRepository,
	producer events.PageViewEventProducer,
	ids snowflake.Generator) PageViewService {
	return &pageViewService{
		repo:     repo,
		producer: producer,
		ids:      ids,
	}
}

func (s *pageViewService) Record(ctx context.Context, pv domain.PageView) (string, error) {
	url, err := normalizeURL(pv.URL)
	if err != nil {
		return "", err
	}
	id, err := s.ids.Generate(snowflake.AppPageView)
	if err != nil {
		return "", fmt.Errorf("生成访问记录ID失败: %w", err)
	}
	pv.ID = id.Int64()
	pv.URL = url
	if len(pv.UserAgent) > maxUserAgentLength {
		pv.UserAgent = pv.UserAgent[:maxUserAgentLength]
	}
	if pv.ViewedAt == 0 {
		pv.ViewedAt = time.Now().UnixMilli()
	}
	return url, s.producer.Produce(ctx, events.NewPageViewEvent(pv))
}

func (s *pageViewService) Stats(ctx context.Context, url string) (domain.PageViewStats, error) {
	url, err := normalizeURL(url)
	if err != nil {
		return domain.PageViewStats{}, err
	}
	return s.repo.Stats(ctx, url)
}

func (s *pageViewService) MostViewed(ctx context.Context, limit int) ([]domain.PageViewStats, error) {
	return s.repo.MostViewed(ctx, rankLimit(limit))
}

func (s *pageViewService) RefreshStats(ctx context.Context) error {
	return s.repo.RefreshStats(ctx)
}

// normalizeURL 和评论对象使用同一套规则
func normalizeURL(url string) (string, error) {
	t, err := target.URL(url)
	if err != nil {
		return "", err
	}
	return t.URL, nil
}
