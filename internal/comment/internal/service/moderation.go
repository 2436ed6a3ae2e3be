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

	"github.com/ecodeclub/chatter/internal/comment/internal/domain"
	"github.com/ecodeclub/chatter/internal/comment/internal/repository"
	"github.com/ecodeclub/chatter/internal/pkg/actor"
	"github.com/ecodeclub/chatter/internal/user"
	"github.com/gotomicro/ego/core/elog"
)

// ModerationService 管理员审核，所有操作都是幂等的
//
//go:generate mockgen -source=./moderation.go -package=svcmocks -destination=../../mocks/moderation.mock.go ModerationService
type ModerationService interface {
	Hide(ctx context.Context, a actor.Actor, id int64) (domain.Comment, error)
	Unhide(ctx context.Context, a actor.Actor, id int64) (domain.Comment, error)
	// ClearFlags 清空举报记录，不影响隐藏状态
	ClearFlags(ctx context.Context, a actor.Actor, id int64) (domain.Comment, error)
	// ListFlagged 被举报的评论，新的在前
	ListFlagged(ctx context.Context, a actor.Actor, offset, limit int) ([]domain.Comment, int64, error)
}

type moderationService struct {
	repo    repository.CommentRepository
	authors authors
	logger  *elog.Component
}

func NewModerationService(repo repository.CommentRepository, userSvc user.UserService) ModerationService {
	return &moderationService{
		repo:    repo,
		authors: authors{userSvc: userSvc},
		logger:  elog.DefaultLogger.With(elog.FieldComponent("comment.moderation")),
	}
}

func (s *moderationService) Hide(ctx context.Context, a actor.Actor, id int64) (domain.Comment, error) {
	return s.moderate(ctx, a, id, domain.ModerationHide)
}

func (s *moderationService) Unhide(ctx context.Context, a actor.Actor, id int64) (domain.Comment, error) {
	return s.moderate(ctx, a, id, domain.ModerationUnhide)
}

func (s *moderationService) ClearFlags(ctx context.Context, a actor.Actor, id int64) (domain.Comment, error) {
	return s.moderate(ctx, a, id, domain.ModerationClearFlags)
}

func (s *moderationService) moderate(ctx context.Context, a actor.Actor, id int64, action domain.ModerationAction) (domain.Comment, error) {
	if err := s.requireAdmin(a, action.String(), id); err != nil {
		return domain.Comment{}, err
	}
	c, err := s.repo.Moderate(ctx, id, action, a.Uid)
	record(action.String(), err)
	if errors.Is(err, repository.ErrCommentNotFound) {
		return domain.Comment{}, ErrNotFound
	}
	if err != nil {
		return domain.Comment{}, fmt.Errorf("审核评论失败: %w", err)
	}
	s.logger.Info("审核评论",
		elog.String("action", action.String()),
		elog.Int64("admin", a.Uid),
		elog.Int64("cid", id))
	return c, nil
}

func (s *moderationService) ListFlagged(ctx context.Context, a actor.Actor, offset, limit int) ([]domain.Comment, int64, error) {
	if err := s.requireAdmin(a, "list_flagged", 0); err != nil {
		return nil, 0, err
	}
	offset, limit = page(offset, limit)
	comments, total, err := s.repo.FindFlagged(ctx, offset, limit)
	if err != nil {
		return nil, 0, err
	}
	return comments, total, s.authors.fill(ctx, comments)
}

func (s *moderationService) requireAdmin(a actor.Actor, op string, id int64) error {
	if !a.Authenticated() {
		return ErrUnauthenticated
	}
	if !a.Admin {
		s.logger.Warn("非管理员尝试审核评论",
			elog.String("op", op),
			elog.Int64("uid", a.Uid),
			elog.Int64("cid", id))
		return ErrForbidden
	}
	return nil
}
