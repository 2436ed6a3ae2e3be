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
	"database/sql"
	"time"

	"github.com/ecodeclub/chatter/internal/comment/internal/domain"
	"github.com/ecodeclub/chatter/internal/comment/internal/repository/cache"
	"github.com/ecodeclub/chatter/internal/comment/internal/repository/dao"
	"github.com/ecodeclub/chatter/internal/pkg/target"
	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ekit/sqlx"
	"github.com/gotomicro/ego/core/elog"
	"golang.org/x/sync/errgroup"
)

var (
	ErrCommentNotFound = dao.ErrRecordNotFound
	ErrInvalidParentID = dao.ErrInvalidParentID
	ErrTargetMismatch  = dao.ErrTargetMismatch
	ErrLikeConflict    = dao.ErrLikeConflict
)

//go:generate mockgen -source=./comment.go -package=repomocks -destination=./mocks/comment.mock.go CommentRepository
type CommentRepository interface {
	// Create 创建评论或者回复
	Create(ctx context.Context, c domain.Comment) (domain.Comment, error)
	FindByID(ctx context.Context, id int64) (domain.Comment, error)
	// FindByTarget 某个对象下的全部评论，包括已删除和已隐藏的，按照 id 升序
	FindByTarget(ctx context.Context, t domain.Target) ([]domain.Comment, error)
	CountByTarget(ctx context.Context, t domain.Target) (int64, error)
	FindByUser(ctx context.Context, uid int64, offset, limit int) ([]domain.Comment, int64, error)
	Edit(ctx context.Context, id, uid int64, content string) (domain.Comment, error)
	Delete(ctx context.Context, id, uid int64) (domain.Comment, error)
	Report(ctx context.Context, id int64, reason domain.FlagReason) (domain.Comment, error)
	Moderate(ctx context.Context, id int64, action domain.ModerationAction, admin int64) (domain.Comment, error)
	FindFlagged(ctx context.Context, offset, limit int) ([]domain.Comment, int64, error)
	FindVersions(ctx context.Context, id int64) ([]domain.Version, error)
	ToggleLike(ctx context.Context, id, uid int64) (domain.LikeResult, error)
	// FindLiked 返回 uid 点赞过的评论 ID
	FindLiked(ctx context.Context, uid int64, ids []int64) (map[int64]struct{}, error)
}

// redeleteDelay 写操作之后第二次删除缓存的延迟
const redeleteDelay = 500 * time.Millisecond

type CachedCommentRepository struct {
	dao    dao.CommentDAO
	cache  cache.CommentCache
	logger *elog.Component
	// 在写操作之前读到旧数据的请求可能在第一次删除之后才回写缓存，延迟再删一次
	redelete time.Duration
}

func NewCommentRepository(d dao.CommentDAO, c cache.CommentCache) CommentRepository {
	return &CachedCommentRepository{
		dao:      d,
		cache:    c,
		logger:   elog.DefaultLogger.With(elog.FieldComponent("comment.repository")),
		redelete: redeleteDelay,
	}
}

func (r *CachedCommentRepository) Create(ctx context.Context, c domain.Comment) (domain.Comment, error) {
	entity, err := r.dao.Create(ctx, r.toEntity(c))
	if err != nil {
		return domain.Comment{}, err
	}
	res := r.toDomain(entity)
	r.invalidate(ctx, res.Target)
	return res, nil
}

func (r *CachedCommentRepository) FindByID(ctx context.Context, id int64) (domain.Comment, error) {
	c, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Comment{}, err
	}
	return r.toDomain(c), nil
}

func (r *CachedCommentRepository) FindByTarget(ctx context.Context, t domain.Target) ([]domain.Comment, error) {
	res, err := r.cache.GetThread(ctx, t)
	if err == nil {
		return res, nil
	}
	url, typ, id := r.targetColumns(t)
	found, err := r.dao.FindByTarget(ctx, url, typ, id)
	if err != nil {
		return nil, err
	}
	res = slice.Map(found, func(_ int, src dao.Comment) domain.Comment {
		return r.toDomain(src)
	})
	if err = r.cache.SetThread(ctx, t, res); err != nil {
		r.logger.Warn("回写评论缓存失败", elog.String("target", t.String()), elog.FieldErr(err))
	}
	return res, nil
}

func (r *CachedCommentRepository) CountByTarget(ctx context.Context, t domain.Target) (int64, error) {
	url, typ, id := r.targetColumns(t)
	return r.dao.CountVisibleByTarget(ctx, url, typ, id)
}

func (r *CachedCommentRepository) FindByUser(ctx context.Context, uid int64, offset, limit int) ([]domain.Comment, int64, error) {
	var (
		eg    errgroup.Group
		found []dao.Comment
		total int64
	)
	eg.Go(func() error {
		var err error
		found, err = r.dao.FindVisibleByUid(ctx, uid, offset, limit)
		return err
	})
	eg.Go(func() error {
		var err error
		total, err = r.dao.CountVisibleByUid(ctx, uid)
		return err
	})
	if err := eg.Wait(); err != nil {
		return nil, 0, err
	}
	return slice.Map(found, func(_ int, src dao.Comment) domain.Comment {
		return r.toDomain(src)
	}), total, nil
}

func (r *CachedCommentRepository) Edit(ctx context.Context, id, uid int64, content string) (domain.Comment, error) {
	return r.mutate(ctx, func() (dao.Comment, error) {
		return r.dao.Edit(ctx, id, uid, content)
	})
}

func (r *CachedCommentRepository) Delete(ctx context.Context, id, uid int64) (domain.Comment, error) {
	return r.mutate(ctx, func() (dao.Comment, error) {
		return r.dao.SoftDelete(ctx, id, uid)
	})
}

func (r *CachedCommentRepository) Report(ctx context.Context, id int64, reason domain.FlagReason) (domain.Comment, error) {
	// 举报信息不出现在公开列表里，不需要清理缓存
	c, err := r.dao.Report(ctx, id, dao.FlagReason{
		Reason:   reason.Reason,
		Reporter: reason.Reporter,
		At:       reason.At,
	})
	if err != nil {
		return domain.Comment{}, err
	}
	return r.toDomain(c), nil
}

func (r *CachedCommentRepository) Moderate(ctx context.Context, id int64, action domain.ModerationAction, admin int64) (domain.Comment, error) {
	now := time.Now().UnixMilli()
	columns := map[string]any{
		"reviewed_at": now,
		"reviewed_by": admin,
		"utime":       now,
	}
	switch action {
	case domain.ModerationHide:
		columns["is_hidden"] = true
	case domain.ModerationUnhide:
		columns["is_hidden"] = false
	case domain.ModerationClearFlags:
		columns["is_flagged"] = false
		columns["flag_count"] = 0
		columns["flag_reasons"] = sqlx.JsonColumn[[]dao.FlagReason]{Val: []dao.FlagReason{}, Valid: true}
	}
	return r.mutate(ctx, func() (dao.Comment, error) {
		return r.dao.Moderate(ctx, id, columns)
	})
}

func (r *CachedCommentRepository) FindFlagged(ctx context.Context, offset, limit int) ([]domain.Comment, int64, error) {
	var (
		eg    errgroup.Group
		found []dao.Comment
		total int64
	)
	eg.Go(func() error {
		var err error
		found, err = r.dao.FindFlagged(ctx, offset, limit)
		return err
	})
	eg.Go(func() error {
		var err error
		total, err = r.dao.CountFlagged(ctx)
		return err
	})
	if err := eg.Wait(); err != nil {
		return nil, 0, err
	}
	return slice.Map(found, func(_ int, src dao.Comment) domain.Comment {
		return r.toDomain(src)
	}), total, nil
}

func (r *CachedCommentRepository) FindVersions(ctx context.Context, id int64) ([]domain.Version, error) {
	vs, err := r.dao.FindVersions(ctx, id)
	if err != nil {
		return nil, err
	}
	return slice.Map(vs, func(_ int, src dao.CommentVersion) domain.Version {
		return domain.Version{
			ID:        src.ID,
			CommentID: src.CommentID,
			Content:   src.Content,
			EditedAt:  src.EditedAt,
		}
	}), nil
}

func (r *CachedCommentRepository) ToggleLike(ctx context.Context, id, uid int64) (domain.LikeResult, error) {
	liked, cnt, err := r.dao.ToggleLike(ctx, id, uid)
	if err != nil {
		return domain.LikeResult{}, err
	}
	// 点赞数在列表里展示，需要清理
	if c, err1 := r.dao.FindByID(ctx, id); err1 == nil {
		r.invalidate(ctx, r.toDomain(c).Target)
	}
	return domain.LikeResult{Liked: liked, LikeCount: cnt}, nil
}

func (r *CachedCommentRepository) FindLiked(ctx context.Context, uid int64, ids []int64) (map[int64]struct{}, error) {
	liked, err := r.dao.FindLikedIDs(ctx, uid, ids)
	if err != nil {
		return nil, err
	}
	res := make(map[int64]struct{}, len(liked))
	for _, id := range liked {
		res[id] = struct{}{}
	}
	return res, nil
}

func (r *CachedCommentRepository) mutate(ctx context.Context, fn func() (dao.Comment, error)) (domain.Comment, error) {
	c, err := fn()
	if err != nil {
		return domain.Comment{}, err
	}
	res := r.toDomain(c)
	r.invalidate(ctx, res.Target)
	return res, nil
}

func (r *CachedCommentRepository) invalidate(ctx context.Context, t domain.Target) {
	r.delThread(ctx, t)
	time.AfterFunc(r.redelete, func() {
		// 请求可能已经结束，不能再用它的 ctx
		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		r.delThread(ctx, t)
	})
}

func (r *CachedCommentRepository) delThread(ctx context.Context, t domain.Target) {
	if err := r.cache.DelThread(ctx, t); err != nil {
		r.logger.Warn("清理评论缓存失败", elog.String("target", t.String()), elog.FieldErr(err))
	}
}

func (r *CachedCommentRepository) targetColumns(t domain.Target) (string, string, int64) {
	if t.Kind == target.KindURL {
		return t.URL, "", 0
	}
	return "", t.EntityType, t.EntityID
}

func (r *CachedCommentRepository) toEntity(c domain.Comment) dao.Comment {
	url, typ, id := r.targetColumns(c.Target)
	return dao.Comment{
		ID:         c.ID,
		Uid:        c.User.ID,
		URL:        url,
		EntityType: typ,
		EntityID:   id,
		ParentID:   sql.Null[int64]{V: c.ParentID, Valid: c.ParentID > 0},
		Content:    c.Content,
	}
}

func (r *CachedCommentRepository) toDomain(c dao.Comment) domain.Comment {
	t := domain.Target{Kind: target.KindURL, URL: c.URL}
	if c.EntityType != "" {
		t = domain.Target{Kind: target.KindEntity, EntityType: c.EntityType, EntityID: c.EntityID}
	}
	reasons := slice.Map(c.FlagReasons.Val, func(_ int, src dao.FlagReason) domain.FlagReason {
		return domain.FlagReason{Reason: src.Reason, Reporter: src.Reporter, At: src.At}
	})
	return domain.Comment{
		ID:          c.ID,
		User:        domain.User{ID: c.Uid},
		Target:      t,
		ParentID:    c.ParentID.V,
		Content:     c.Content,
		Ctime:       c.Ctime,
		Utime:       c.Utime,
		EditedAt:    c.EditedAt.V,
		Removed:     c.IsRemoved,
		RemovedAt:   c.RemovedAt.V,
		Flagged:     c.IsFlagged,
		FlagCount:   c.FlagCount,
		FlagReasons: reasons,
		Hidden:      c.IsHidden,
		ReviewedAt:  c.ReviewedAt.V,
		ReviewedBy:  c.ReviewedBy.V,
		LikeCount:   c.LikeCount,
		ReplyCount:  c.ReplyCount,
	}
}
