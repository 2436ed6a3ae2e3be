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
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/ecodeclub/ekit/sqlx"
	"github.com/ego-component/egorm"
	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	ErrRecordNotFound  = gorm.ErrRecordNotFound
	ErrInvalidParentID = errors.New("父评论ID非法")
	ErrTargetMismatch  = errors.New("回复和父评论不属于同一个对象")
	ErrLikeConflict    = errors.New("点赞记录并发冲突")
)

type Comment struct {
	ID  int64 `gorm:"primaryKey;autoIncrement;index:idx_flagged,priority:2;comment:'评论自增ID'"`
	Uid int64 `gorm:"not null;index;comment:'评论者'"`

	// 评论的对象，URL 和实体二选一，没有用到的列保持默认值
	URL        string `gorm:"type:varchar(512);not null;default:'';index:idx_target,priority:3"`
	EntityType string `gorm:"type:varchar(64);not null;default:'';index:idx_target,priority:1"`
	EntityID   int64  `gorm:"not null;default:0;index:idx_target,priority:2"`

	// NULL 表示直接评论
	ParentID sql.Null[int64] `gorm:"index:idx_parent_id;comment:'父评论ID'"`

	Content  string          `gorm:"type:text;not null"`
	EditedAt sql.Null[int64] `gorm:"comment:'最后一次编辑时间'"`

	IsRemoved bool `gorm:"not null;default:false"`
	RemovedAt sql.Null[int64]

	IsFlagged   bool                          `gorm:"not null;default:false;index:idx_flagged,priority:1"`
	FlagCount   int64                         `gorm:"not null;default:0"`
	FlagReasons sqlx.JsonColumn[[]FlagReason] `gorm:"type:json"`

	IsHidden   bool `gorm:"not null;default:false"`
	ReviewedAt sql.Null[int64]
	ReviewedBy sql.Null[int64]

	LikeCount  int64 `gorm:"not null;default:0"`
	ReplyCount int64 `gorm:"not null;default:0"`

	Ctime int64
	Utime int64
}

func (Comment) TableName() string {
	return "comments"
}

type FlagReason struct {
	Reason   string `json:"reason"`
	Reporter int64  `json:"reporter"`
	At       int64  `json:"at"`
}

// CommentVersion 只追加，记录的是编辑前的内容
type CommentVersion struct {
	ID        int64  `gorm:"primaryKey;autoIncrement"`
	CommentID int64  `gorm:"not null;index:idx_comment_id"`
	Content   string `gorm:"type:text;not null"`
	EditedAt  int64  `gorm:"not null"`
}

func (CommentVersion) TableName() string {
	return "comment_versions"
}

type CommentLike struct {
	ID        int64 `gorm:"primaryKey;autoIncrement"`
	CommentID int64 `gorm:"not null;uniqueIndex:uniq_comment_uid,priority:1"`
	Uid       int64 `gorm:"not null;uniqueIndex:uniq_comment_uid,priority:2;index:idx_uid"`
	Ctime     int64
}

func (CommentLike) TableName() string {
	return "comment_likes"
}

type CommentDAO interface {
	// Create 创建评论，回复会在同一个事务里给父评论的 reply_count + 1
	Create(ctx context.Context, c Comment) (Comment, error)
	FindByID(ctx context.Context, id int64) (Comment, error)
	// FindByTarget 返回某个对象下的全部评论，包括已删除和已隐藏的，按照 id 升序
	FindByTarget(ctx context.Context, url, entityType string, entityID int64) ([]Comment, error)
	CountVisibleByTarget(ctx context.Context, url, entityType string, entityID int64) (int64, error)
	FindVisibleByUid(ctx context.Context, uid int64, offset, limit int) ([]Comment, error)
	CountVisibleByUid(ctx context.Context, uid int64) (int64, error)
	// Edit 保存旧版本并更新内容
	Edit(ctx context.Context, id, uid int64, content string) (Comment, error)
	SoftDelete(ctx context.Context, id, uid int64) (Comment, error)
	Report(ctx context.Context, id int64, reason FlagReason) (Comment, error)
	// Moderate 管理员操作，columns 是要更新的列
	Moderate(ctx context.Context, id int64, columns map[string]any) (Comment, error)
	FindFlagged(ctx context.Context, offset, limit int) ([]Comment, error)
	CountFlagged(ctx context.Context) (int64, error)
	FindVersions(ctx context.Context, commentID int64) ([]CommentVersion, error)
	// ToggleLike 已点赞就取消，否则点赞。返回最新的点赞状态和点赞数
	ToggleLike(ctx context.Context, commentID, uid int64) (bool, int64, error)
	FindLikedIDs(ctx context.Context, uid int64, commentIDs []int64) ([]int64, error)
}

type commentDAO struct {
	db *egorm.Component
}

func NewCommentGORMDAO(db *egorm.Component) CommentDAO {
	return &commentDAO{db: db}
}

func (d *commentDAO) Create(ctx context.Context, c Comment) (Comment, error) {
	now := time.Now().UnixMilli()
	c.Ctime, c.Utime = now, now
	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if c.ParentID.Valid {
			var parent Comment
			err := tx.Where("id = ? AND is_removed = ? AND is_hidden = ?", c.ParentID.V, false, false).
				First(&parent).Error
			if err != nil {
				return fmt.Errorf("%w: %w", ErrInvalidParentID, err)
			}
			if parent.URL != c.URL || parent.EntityType != c.EntityType || parent.EntityID != c.EntityID {
				return ErrTargetMismatch
			}
		}
		if err := tx.Create(&c).Error; err != nil {
			return err
		}
		if !c.ParentID.Valid {
			return nil
		}
		return tx.Model(&Comment{}).Where("id = ?", c.ParentID.V).Updates(map[string]any{
			"reply_count": gorm.Expr("`reply_count` + 1"),
			"utime":       now,
		}).Error
	})
	return c, err
}

func (d *commentDAO) FindByID(ctx context.Context, id int64) (Comment, error) {
	var c Comment
	err := d.db.WithContext(ctx).Where("id = ?", id).First(&c).Error
	return c, err
}

func (d *commentDAO) FindByTarget(ctx context.Context, url, entityType string, entityID int64) ([]Comment, error) {
	var res []Comment
	err := d.db.WithContext(ctx).
		Where("entity_type = ? AND entity_id = ? AND url = ?", entityType, entityID, url).
		Order("id ASC").
		Find(&res).Error
	return res, err
}

func (d *commentDAO) CountVisibleByTarget(ctx context.Context, url, entityType string, entityID int64) (int64, error) {
	var cnt int64
	err := d.db.WithContext(ctx).Model(&Comment{}).
		Where("entity_type = ? AND entity_id = ? AND url = ?", entityType, entityID, url).
		Where("is_removed = ? AND is_hidden = ?", false, false).
		Count(&cnt).Error
	return cnt, err
}

func (d *commentDAO) FindVisibleByUid(ctx context.Context, uid int64, offset, limit int) ([]Comment, error) {
	var res []Comment
	err := d.db.WithContext(ctx).
		Where("uid = ? AND is_removed = ? AND is_hidden = ?", uid, false, false).
		Order("id DESC").
		Offset(offset).Limit(limit).
		Find(&res).Error
	return res, err
}

func (d *commentDAO) CountVisibleByUid(ctx context.Context, uid int64) (int64, error) {
	var cnt int64
	err := d.db.WithContext(ctx).Model(&Comment{}).
		Where("uid = ? AND is_removed = ? AND is_hidden = ?", uid, false, false).
		Count(&cnt).Error
	return cnt, err
}

func (d *commentDAO) Edit(ctx context.Context, id, uid int64, content string) (Comment, error) {
	var c Comment
	now := time.Now().UnixMilli()
	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ? AND uid = ? AND is_removed = ?", id, uid, false).
			First(&c).Error
		if err != nil {
			return err
		}
		err = tx.Create(&CommentVersion{
			CommentID: id,
			Content:   c.Content,
			EditedAt:  now,
		}).Error
		if err != nil {
			return err
		}
		c.Content = content
		c.EditedAt = sql.Null[int64]{V: now, Valid: true}
		c.Utime = now
		return tx.Model(&Comment{}).Where("id = ?", id).Updates(map[string]any{
			"content":   content,
			"edited_at": now,
			"utime":     now,
		}).Error
	})
	return c, err
}

func (d *commentDAO) SoftDelete(ctx context.Context, id, uid int64) (Comment, error) {
	var c Comment
	now := time.Now().UnixMilli()
	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&Comment{}).
			Where("id = ? AND uid = ? AND is_removed = ?", id, uid, false).
			Updates(map[string]any{
				"is_removed": true,
				"removed_at": now,
				"utime":      now,
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrRecordNotFound
		}
		return tx.Where("id = ?", id).First(&c).Error
	})
	return c, err
}

func (d *commentDAO) Report(ctx context.Context, id int64, reason FlagReason) (Comment, error) {
	var c Comment
	val, err := json.Marshal(reason)
	if err != nil {
		return c, err
	}
	err = d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&Comment{}).
			Where("id = ? AND is_removed = ?", id, false).
			Updates(map[string]any{
				"flag_reasons": gorm.Expr("JSON_ARRAY_APPEND(COALESCE(`flag_reasons`, JSON_ARRAY()), '$', CAST(? AS JSON))", string(val)),
				"flag_count":   gorm.Expr("`flag_count` + 1"),
				"is_flagged":   true,
				"utime":        reason.At,
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrRecordNotFound
		}
		return tx.Where("id = ?", id).First(&c).Error
	})
	return c, err
}

func (d *commentDAO) Moderate(ctx context.Context, id int64, columns map[string]any) (Comment, error) {
	var c Comment
	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Where("id = ?", id).First(&c).Error
		if err != nil {
			return err
		}
		err = tx.Model(&Comment{}).Where("id = ?", id).Updates(columns).Error
		if err != nil {
			return err
		}
		return tx.Where("id = ?", id).First(&c).Error
	})
	return c, err
}

func (d *commentDAO) FindFlagged(ctx context.Context, offset, limit int) ([]Comment, error) {
	var res []Comment
	err := d.db.WithContext(ctx).
		Where("is_flagged = ?", true).
		Order("id DESC").
		Offset(offset).Limit(limit).
		Find(&res).Error
	return res, err
}

func (d *commentDAO) CountFlagged(ctx context.Context) (int64, error) {
	var cnt int64
	err := d.db.WithContext(ctx).Model(&Comment{}).
		Where("is_flagged = ?", true).
		Count(&cnt).Error
	return cnt, err
}

func (d *commentDAO) FindVersions(ctx context.Context, commentID int64) ([]CommentVersion, error) {
	var res []CommentVersion
	err := d.db.WithContext(ctx).
		Where("comment_id = ?", commentID).
		Order("id DESC").
		Find(&res).Error
	return res, err
}

func (d *commentDAO) ToggleLike(ctx context.Context, commentID, uid int64) (bool, int64, error) {
	var (
		liked bool
		c     Comment
	)
	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Select("id").
			Where("id = ? AND is_removed = ? AND is_hidden = ?", commentID, false, false).
			First(&c).Error
		if err != nil {
			return err
		}
		res := tx.Where("comment_id = ? AND uid = ?", commentID, uid).Delete(&CommentLike{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected > 0 {
			liked = false
			err = tx.Model(&Comment{}).
				Where("id = ? AND like_count > 0", commentID).
				Update("like_count", gorm.Expr("`like_count` - 1")).Error
		} else {
			liked = true
			err = tx.Create(&CommentLike{
				CommentID: commentID,
				Uid:       uid,
				Ctime:     time.Now().UnixMilli(),
			}).Error
			if err != nil {
				return err
			}
			err = tx.Model(&Comment{}).
				Where("id = ?", commentID).
				Update("like_count", gorm.Expr("`like_count` + 1")).Error
		}
		if err != nil {
			return err
		}
		return tx.Select("like_count").Where("id = ?", commentID).First(&c).Error
	})
	if likeConflict(err) {
		return false, 0, ErrLikeConflict
	}
	return liked, c.LikeCount, err
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

func (d *commentDAO) FindLikedIDs(ctx context.Context, uid int64, commentIDs []int64) ([]int64, error) {
	if uid <= 0 || len(commentIDs) == 0 {
		return []int64{}, nil
	}
	var res []int64
	err := d.db.WithContext(ctx).Model(&CommentLike{}).
		Where("uid = ? AND comment_id IN ?", uid, commentIDs).
		Pluck("comment_id", &res).Error
	return res, err
}
