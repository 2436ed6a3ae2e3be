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

// Like 内容点赞明细，对象的列和评论表一致，URL 和实体二选一
type Like struct {
	ID         int64  `gorm:"primaryKey;autoIncrement"`
	Uid        int64  `gorm:"not null;uniqueIndex:uniq_uid_target,priority:1"`
	EntityType string `gorm:"type:varchar(64);not null;default:'';uniqueIndex:uniq_uid_target,priority:2"`
	EntityID   int64  `gorm:"not null;default:0;uniqueIndex:uniq_uid_target,priority:3"`
	URL        string `gorm:"type:varchar(512);not null;default:'';uniqueIndex:uniq_uid_target,priority:4"`
	Ctime      int64
}

func (Like) TableName() string {
	return "likes"
}

// LikeCounter 点赞计数汇总表
type LikeCounter struct {
	ID         int64  `gorm:"primaryKey;autoIncrement"`
	EntityType string `gorm:"type:varchar(64);not null;default:'';uniqueIndex:uniq_target,priority:1"`
	EntityID   int64  `gorm:"not null;default:0;uniqueIndex:uniq_target,priority:2"`
	URL        string `gorm:"type:varchar(512);not null;default:'';uniqueIndex:uniq_target,priority:3"`
	LikeCnt    int64  `gorm:"not null;default:0;index:idx_like_cnt"`
	Utime      int64
	Ctime      int64
}

func (LikeCounter) TableName() string {
	return "like_counters"
}

// PageView 访问日志，只追加。ID 由雪花算法在入口处生成，重复投递的消息会被忽略
type PageView struct {
	ID        int64  `gorm:"primaryKey;autoIncrement:false"`
	URL       string `gorm:"type:varchar(512);not null;index:idx_url_viewed_at,priority:1"`
	IPAddress string `gorm:"type:varchar(64);not null;default:''"`
	UserAgent string `gorm:"type:varchar(512);not null;default:''"`
	Uid       int64  `gorm:"not null;default:0"`
	ViewedAt  int64  `gorm:"not null;index:idx_url_viewed_at,priority:2"`
}

func (PageView) TableName() string {
	return "page_views"
}

// PageViewStats 由定时任务从 page_views 汇总出来
type PageViewStats struct {
	URL            string `gorm:"type:varchar(512);primaryKey"`
	ViewCnt        int64  `gorm:"not null;default:0;index:idx_view_cnt"`
	UniqueVisitors int64  `gorm:"not null;default:0"`
	LastViewedAt   int64  `gorm:"not null;default:0"`
	Utime          int64
}

func (PageViewStats) TableName() string {
	return "page_view_stats"
}
