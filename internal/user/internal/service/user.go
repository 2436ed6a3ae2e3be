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

	"github.com/ecodeclub/chatter/internal/user/internal/domain"
	"github.com/ecodeclub/chatter/internal/user/internal/repository"
)

//go:generate mockgen -source=./user.go -package=usermocks -destination=../../mocks/user.mock.go UserService

type UserService interface {
	Profile(ctx context.Context, id int64) (domain.User, error)
	// BatchProfile 评论列表之类的场景批量获取作者信息，找不到的用户直接忽略
	BatchProfile(ctx context.Context, ids []int64) ([]domain.User, error)
	// UpdateNonSensitiveInfo 更新非敏感数据，目前只有昵称和头像
	UpdateNonSensitiveInfo(ctx context.Context, user domain.User) error
}

type userService struct {
	repo repository.UserRepository
}

func NewUserService(repo repository.UserRepository) UserService {
	return &userService{
		repo: repo,
	}
}

func (svc *userService) UpdateNonSensitiveInfo(ctx context.Context, user domain.User) error {
	user.Admin = false
	return svc.repo.Update(ctx, user)
}

func (svc *userService) Profile(ctx context.Context,
	id int64) (domain.User, error) {
	return svc.repo.FindById(ctx, id)
}

func (svc *userService) BatchProfile(ctx context.Context, ids []int64) ([]domain.User, error) {
	seen := make(map[int64]struct{}, len(ids))
	uniq := make([]int64, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok || id <= 0 {
			continue
		}
		seen[id] = struct{}{}
		uniq = append(uniq, id)
	}
	if len(uniq) == 0 {
		return []domain.User{}, nil
	}
	return svc.repo.FindByIds(ctx, uniq)
}
