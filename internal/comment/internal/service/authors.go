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

	"github.com/ecodeclub/chatter/internal/comment/internal/domain"
	"github.com/ecodeclub/chatter/internal/user"
)

// authors 批量填充评论的作者信息
type authors struct {
	userSvc user.UserService
}

func (a authors) fill(ctx context.Context, comments []domain.Comment) error {
	uids := make([]int64, 0, len(comments))
	walk(comments, func(c *domain.Comment) {
		if !c.Placeholder && c.User.ID > 0 {
			uids = append(uids, c.User.ID)
		}
	})
	if len(uids) == 0 {
		return nil
	}
	profiles, err := a.userSvc.BatchProfile(ctx, uids)
	if err != nil {
		return err
	}
	users := make(map[int64]domain.User, len(profiles))
	for _, p := range profiles {
		users[p.Id] = domain.User{
			ID:       p.Id,
			NickName: p.Nickname,
			Avatar:   p.Avatar,
		}
	}
	walk(comments, func(c *domain.Comment) {
		if u, ok := users[c.User.ID]; ok && !c.Placeholder {
			c.User = u
		}
	})
	return nil
}
