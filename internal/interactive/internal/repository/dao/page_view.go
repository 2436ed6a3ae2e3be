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

package dao

import (
	"context"
	"time"

	"github.com/ego-component/egorm"
	"gorm.io/gorm/clause"
)

type PageViewDAO interface {
	// Insert 主键冲突说明消息重复投递了，直接忽略
	Insert(ctx context.Context, pv PageView) error
	// RefreshStats 用 page_views 重建 page_view_stats
	RefreshStats(ctx context.Context) error
	GetStats(ctx context.Context, url string) (PageViewStats, error)
	// LiveStats 汇总表里面还没有的时候直接统计明细
	LiveStats(ctx context.Context, url string) (PageViewStats, error)
	MostViewed(ctx context.Context, limit int) ([]PageViewStats, error)
}

type GORMPageViewDAO struct {
	db *egorm.Component
}

func NewPageViewDAO(db *egorm.Component) PageViewDAO {
	return &GORMPageViewDAO{db: db}
}

func (g *GORMPageViewDAO) Insert(ctx context.Context, pv PageView) error {
	return g.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&pv).Error
}

func (g *GORMPageViewDAO) RefreshStats(ctx context.Context) error {
	return g.db.WithContext(ctx).Exec("INSERT INTO `page_view_stats` (`url`, `view_cnt`, `unique_visitors`, `last_viewed_at`, `utime`) "+
		"SELECT `url`, COUNT(*), COUNT(DISTINCT `ip_address`), MAX(`viewed_at`), ? FROM `page_views` GROUP BY `url` "+
		"ON DUPLICATE KEY UPDATE `view_cnt` = VALUES(`view_cnt`), `unique_visitors` = VALUES(`unique_visitors`), "+
		"`last_viewed_at` = VALUES(`last_viewed_at`), `utime` = VALUES(`utime`)", time.Now().UnixMilli()).Error
}

func (g *GORMPageViewDAO) GetStats(ctx context.Context, url string) (PageViewStats, error) {
	var res PageViewStats
	err := g.db.WithContext(ctx).Where("url = ?", url).First(&res).Error
	return res, err
}

func (g *GORMPageViewDAO) LiveStats(ctx context.Context, url string) (PageViewStats, error) {
	res := PageViewStats{URL: url}
	err := g.db.WithContext(ctx).Model(&PageView{}).
		Select("COUNT(*) AS view_cnt, COUNT(DISTINCT ip_address) AS unique_visitors, COALESCE(MAX(viewed_at), 0) AS last_viewed_at").
		Where("url = ?", url).
		Scan(&res).Error
	return res, err
}

func (g *GORMPageViewDAO) MostViewed(ctx context.Context, limit int) ([]PageViewStats, error) {
	var res []PageViewStats
	err := g.db.WithContext(ctx).
		Order("view_cnt DESC, url ASC").
		Limit(limit).
		Find(&res).Error
	return res, err
}
