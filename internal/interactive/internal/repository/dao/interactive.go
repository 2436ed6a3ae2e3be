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
	"errors"
	"time"

	"github.com/ego-component/egorm"
	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	ErrRecordNotFound = gorm.ErrRecordNotFound
	ErrLikeConflict   = errors.New("点赞记录并发冲突")
)

// Target 点赞对象在表里面的三列，没有用到的列保持零值
type Target struct {
	EntityType string
	EntityID   int64
	URL        string
}

func (t Target) where(db *gorm.DB) *gorm.DB {
	return db.Where("entity_type = ? AND entity_id = ? AND url = ?", t.EntityType, t.EntityID, t.URL)
}

type InteractiveDAO interface {
	// LikeToggle 返回切换之后是否点赞，以及最新的点赞数
	LikeToggle(ctx context.Context, uid int64, t Target) (bool, int64, error)
	GetLike(ctx context.Context, uid int64, t Target) (Like, error)
	GetLikeCounter(ctx context.Context, t Target) (LikeCounter, error)
	MostLiked(ctx context.Context, limit int) ([]LikeCounter, error)
}

type GORMInteractiveDAO struct {
	db *egorm.Component
}

func NewInteractiveDAO(db *egorm.Component) InteractiveDAO {
	return &GORMInteractiveDAO{
		db: db,
	}
}

func (g *GORMInteractiveDAO) LikeToggle(ctx context.Context, uid int64, t Target) (bool, int64, error) {
	var (
		liked   bool
		counter LikeCounter
	)
	err := g.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := t.where(tx.Where("uid = ?", uid)).Delete(&Like{})
		if res.Error != nil {
			return res.Error
		}
		var err error
		if res.RowsAffected > 0 {
			liked = false
			err = g.decrLikeCnt(tx, t)
		} else {
			liked = true
			err = g.insertLike(tx, uid, t)
		}
		if err != nil {
			return err
		}
		err = t.where(tx.Select("like_cnt")).First(&counter).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return err
	})
	if likeConflict(err) {
		return false, 0, ErrLikeConflict
	}
	return liked, counter.LikeCnt, err
}

// likeConflict 并发点赞的几种表现：唯一索引冲突，或者两个事务在同一个间隙锁上死锁、等锁超时。
// 事务已经被 MySQL 回滚，重试一次就可以
func likeConflict(err error) bool {
	var me *mysql.MySQLError
	if !errors.As(err, &me) {
		return false
	}
	const (
		duplicateEntry  uint16 = 1062
		lockWaitTimeout uint16 = 1205
		deadlock        uint16 = 1213
	)
	switch me.Number {
	case duplicateEntry, lockWaitTimeout, deadlock:
		return true
	default:
		return false
	}
}

func (g *GORMInteractiveDAO) decrLikeCnt(tx *gorm.DB, t Target) error {
	return t.where(tx.Model(&LikeCounter{})).
		Where("like_cnt > 0").
		Updates(map[string]any{
			"like_cnt": gorm.Expr("`like_cnt` - 1"),
			"utime":    time.Now().UnixMilli(),
		}).Error
}

func (g *GORMInteractiveDAO) insertLike(tx *gorm.DB, uid int64, t Target) error {
	now := time.Now().UnixMilli()
	err := tx.Create(&Like{
		Uid:        uid,
		EntityType: t.EntityType,
		EntityID:   t.EntityID,
		URL:        t.URL,
		Ctime:      now,
	}).Error
	if err != nil {
		return err
	}
	return tx.Clauses(clause.OnConflict{
		DoUpdates: clause.Assignments(map[string]any{
			"like_cnt": gorm.Expr("`like_cnt` + 1"),
			"utime":    now,
		}),
	}).Create(&LikeCounter{
		EntityType: t.EntityType,
		EntityID:   t.EntityID,
		URL:        t.URL,
		LikeCnt:    1,
		Ctime:      now,
		Utime:      now,
	}).Error
}

func (g *GORMInteractiveDAO) GetLike(ctx context.Context, uid int64, t Target) (Like, error) {
	var res Like
	err := t.where(g.db.WithContext(ctx).Where("uid = ?", uid)).First(&res).Error
	return res, err
}

func (g *GORMInteractiveDAO) GetLikeCounter(ctx context.Context, t Target) (LikeCounter, error) {
	var res LikeCounter
	err := t.where(g.db.WithContext(ctx)).First(&res).Error
	return res, err
}

func (g *GORMInteractiveDAO) MostLiked(ctx context.Context, limit int) ([]LikeCounter, error) {
	var res []LikeCounter
	err := g.db.WithContext(ctx).
		Where("like_cnt > 0").
		Order("like_cnt DESC, id ASC").
		Limit(limit).
		Find(&res).Error
	return res, err
}
