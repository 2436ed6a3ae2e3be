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
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/ecodeclub/chatter/internal/comment/internal/domain"
	"github.com/ecodeclub/chatter/internal/comment/internal/event"
	"github.com/ecodeclub/chatter/internal/comment/internal/repository"
	"github.com/ecodeclub/chatter/internal/pkg/actor"
	"github.com/ecodeclub/chatter/internal/pkg/content"
	"github.com/ecodeclub/chatter/internal/user"
	"github.com/gotomicro/ego/core/elog"
)

const (
	maxReasonRunes = 500
	defaultLimit   = 20
	maxLimit       = 100
)

//go:generate mockgen -source=./comment.go -package=svcmocks -destination=../../mocks/comment.mock.go CommentService
type CommentService interface {
	// Create 创建直接评论或者回复，parentID 为 0 表示直接评论
	Create(ctx context.Context, a actor.Actor, t domain.Target, text string, parentID int64) (domain.Comment, error)
	// Edit 只有作者可以编辑，旧内容会保存为历史版本
	Edit(ctx context.Context, a actor.Actor, id int64, text string) (domain.Comment, error)
	// Delete 软删除，不会删除回复
	Delete(ctx context.Context, a actor.Actor, id int64) error
	// ListByTarget 某个对象下的评论树
	ListByTarget(ctx context.Context, viewer actor.Actor, t domain.Target, s domain.Sort) ([]domain.Comment, error)
	CountByTarget(ctx context.Context, t domain.Target) (int64, error)
	// ListByUser 某个用户发表过的评论，不包含已删除和已隐藏的
	ListByUser(ctx context.Context, viewer actor.Actor, uid int64, offset, limit int) ([]domain.Comment, int64, error)
	// Versions 编辑历史，作者本人和管理员可以查看
	Versions(ctx context.Context, a actor.Actor, id int64) ([]domain.Version, error)
	Report(ctx context.Context, a actor.Actor, id int64, reason string) (domain.Comment, error)
	ToggleLike(ctx context.Context, a actor.Actor, id int64) (domain.LikeResult, error)
}

type commentService struct {
	repo      repository.CommentRepository
	validator *content.Validator
	producer  event.WechatRobotEventProducer
	authors   authors
	logger    *elog.Component
}

func NewCommentService(repo repository.CommentRepository,
	userSvc user.UserService,
	validator *content.Validator,
	producer event.WechatRobotEventProducer) CommentService {
	return &commentService{
		repo:      repo,
		validator: validator,
		producer:  producer,
		authors:   authors{userSvc: userSvc},
		logger:    elog.DefaultLogger.With(elog.FieldComponent("comment.service")),
	}
}

func (s *commentService) Create(ctx context.Context, a actor.Actor, t domain.Target, text string, parentID int64) (domain.Comment, error) {
	if !a.Authenticated() {
		return domain.Comment{}, ErrUnauthenticated
	}
	if !t.Valid() {
		return domain.Comment{}, ErrInvalidTarget
	}
	if parentID < 0 {
		return domain.Comment{}, ErrParentNotFound
	}
	cleaned, err := s.validator.Validate(text)
	if err != nil {
		return domain.Comment{}, err
	}
	c, err := s.repo.Create(ctx, domain.Comment{
		User:     domain.User{ID: a.Uid},
		Target:   t,
		ParentID: parentID,
		Content:  cleaned,
	})
	record("create", err)
	switch {
	case errors.Is(err, repository.ErrInvalidParentID):
		return domain.Comment{}, ErrParentNotFound
	case errors.Is(err, repository.ErrTargetMismatch):
		return domain.Comment{}, ErrInvalidTarget
	case err != nil:
		return domain.Comment{}, fmt.Errorf("创建评论失败: %w", err)
	}
	res := []domain.Comment{c}
	if err = s.authors.fill(ctx, res); err != nil {
		s.logger.Warn("填充评论作者失败", elog.Int64("cid", c.ID), elog.FieldErr(err))
	}
	return res[0], nil
}

func (s *commentService) Edit(ctx context.Context, a actor.Actor, id int64, text string) (domain.Comment, error) {
	if err := s.authorized(ctx, a, id, "edit"); err != nil {
		return domain.Comment{}, err
	}
	cleaned, err := s.validator.Validate(text)
	if err != nil {
		return domain.Comment{}, err
	}
	c, err := s.repo.Edit(ctx, id, a.Uid, cleaned)
	record("edit", err)
	if errors.Is(err, repository.ErrCommentNotFound) {
		return domain.Comment{}, ErrNotFound
	}
	if err != nil {
		return domain.Comment{}, fmt.Errorf("编辑评论失败: %w", err)
	}
	return c, nil
}

func (s *commentService) Delete(ctx context.Context, a actor.Actor, id int64) error {
	if err := s.authorized(ctx, a, id, "delete"); err != nil {
		return err
	}
	_, err := s.repo.Delete(ctx, id, a.Uid)
	record("delete", err)
	if errors.Is(err, repository.ErrCommentNotFound) {
		return ErrNotFound
	}
	return err
}

// authorized 评论存在、没有被删除，并且 a 是作者
func (s *commentService) authorized(ctx context.Context, a actor.Actor, id int64, op string) error {
	if !a.Authenticated() {
		return ErrUnauthenticated
	}
	c, err := s.repo.FindByID(ctx, id)
	if errors.Is(err, repository.ErrCommentNotFound) {
		return ErrNotFound
	}
	if err != nil {
		return err
	}
	if c.Removed {
		return ErrNotFound
	}
	if c.User.ID != a.Uid {
		s.logger.Warn("非作者尝试修改评论",
			elog.String("op", op),
			elog.Int64("uid", a.Uid),
			elog.Int64("cid", id))
		return ErrNotAuthor
	}
	return nil
}

func (s *commentService) ListByTarget(ctx context.Context, viewer actor.Actor, t domain.Target, sort domain.Sort) ([]domain.Comment, error) {
	if !t.Valid() {
		return nil, ErrInvalidTarget
	}
	rows, err := s.repo.FindByTarget(ctx, t)
	if err != nil {
		return nil, err
	}
	thread := BuildThread(rows, sort)
	if err = s.decorate(ctx, viewer, thread); err != nil {
		return nil, err
	}
	return thread, nil
}

func (s *commentService) CountByTarget(ctx context.Context, t domain.Target) (int64, error) {
	if !t.Valid() {
		return 0, ErrInvalidTarget
	}
	return s.repo.CountByTarget(ctx, t)
}

func (s *commentService) ListByUser(ctx context.Context, viewer actor.Actor, uid int64, offset, limit int) ([]domain.Comment, int64, error) {
	if uid <= 0 {
		return []domain.Comment{}, 0, nil
	}
	offset, limit = page(offset, limit)
	comments, total, err := s.repo.FindByUser(ctx, uid, offset, limit)
	if err != nil {
		return nil, 0, err
	}
	return comments, total, s.decorate(ctx, viewer, comments)
}

// decorate 填充作者信息和当前查看者的点赞状态
func (s *commentService) decorate(ctx context.Context, viewer actor.Actor, comments []domain.Comment) error {
	if len(comments) == 0 {
		return nil
	}
	if viewer.Authenticated() {
		ids := make([]int64, 0, len(comments))
		walk(comments, func(c *domain.Comment) {
			if !c.Placeholder {
				ids = append(ids, c.ID)
			}
		})
		liked, err := s.repo.FindLiked(ctx, viewer.Uid, ids)
		if err != nil {
			return err
		}
		walk(comments, func(c *domain.Comment) {
			_, c.Liked = liked[c.ID]
		})
	}
	return s.authors.fill(ctx, comments)
}

func (s *commentService) Versions(ctx context.Context, a actor.Actor, id int64) ([]domain.Version, error) {
	if !a.Authenticated() {
		return nil, ErrUnauthenticated
	}
	c, err := s.repo.FindByID(ctx, id)
	if errors.Is(err, repository.ErrCommentNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	if !a.Admin && c.User.ID != a.Uid {
		s.logger.Warn("无权查看评论历史", elog.Int64("uid", a.Uid), elog.Int64("cid", id))
		return nil, ErrNotAuthor
	}
	return s.repo.FindVersions(ctx, id)
}

func (s *commentService) Report(ctx context.Context, a actor.Actor, id int64, reason string) (domain.Comment, error) {
	if !a.Authenticated() {
		return domain.Comment{}, ErrUnauthenticated
	}
	reason = strings.TrimSpace(reason)
	if reason == "" || utf8.RuneCountInString(reason) > maxReasonRunes {
		return domain.Comment{}, ErrInvalidReason
	}
	fr := domain.FlagReason{
		Reason:   reason,
		Reporter: a.Uid,
		At:       time.Now().UnixMilli(),
	}
	c, err := s.repo.Report(ctx, id, fr)
	record("report", err)
	if errors.Is(err, repository.ErrCommentNotFound) {
		return domain.Comment{}, ErrNotFound
	}
	if err != nil {
		return domain.Comment{}, fmt.Errorf("举报评论失败: %w", err)
	}
	if er := s.producer.Produce(ctx, event.NewReportedEvent(c, fr)); er != nil {
		s.logger.Error("发送举报通知失败", elog.Int64("cid", id), elog.FieldErr(er))
	}
	return c, nil
}

func (s *commentService) ToggleLike(ctx context.Context, a actor.Actor, id int64) (domain.LikeResult, error) {
	if !a.Authenticated() {
		return domain.LikeResult{}, ErrUnauthenticated
	}
	// 并发的重复点赞会触发唯一索引冲突，重试一次就会走到取消点赞的分支
	const maxAttempts = 2
	for i := 0; i < maxAttempts; i++ {
		res, err := s.repo.ToggleLike(ctx, id, a.Uid)
		if errors.Is(err, repository.ErrLikeConflict) {
			continue
		}
		record("like", err)
		if errors.Is(err, repository.ErrCommentNotFound) {
			return domain.LikeResult{}, ErrNotFound
		}
		if err != nil {
			return domain.LikeResult{}, fmt.Errorf("点赞失败: %w", err)
		}
		return res, nil
	}
	record("like", ErrConflict)
	return domain.LikeResult{}, ErrConflict
}

func page(offset, limit int) (int, int) {
	if offset < 0 {
		offset = 0
	}
	if limit <= 0 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}
	return offset, limit
}
