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

package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/ecodeclub/chatter/internal/comment/internal/domain"
	"github.com/ecodeclub/ecache"
	"github.com/pkg/errors"
)

var ErrKeyNotFound = errors.New("key not found")

// CommentCache 缓存某个对象下的全部评论，和查看者无关
type CommentCache interface {
	GetThread(ctx context.Context, t domain.Target) ([]domain.Comment, error)
	SetThread(ctx context.Context, t domain.Target, comments []domain.Comment) error
	DelThread(ctx context.Context, t domain.Target) error
}

type CommentECache struct {
	cache      ecache.Cache
	expiration time.Duration
}

func NewCommentECache(c ecache.Cache) CommentCache {
	return &CommentECache{
		cache: &ecache.NamespaceCache{
			Namespace: "comment:",
			C:         c,
		},
		expiration: time.Minute,
	}
}

func (c *CommentECache) GetThread(ctx context.Context, t domain.Target) ([]domain.Comment, error) {
	var res []domain.Comment
	val := c.cache.Get(ctx, c.threadKey(t))
	if val.KeyNotFound() {
		return nil, ErrKeyNotFound
	}
	if val.Err != nil {
		return nil, val.Err
	}
	err := val.JSONScan(&res)
	return res, errors.Wrap(err, "解析评论缓存失败")
}

func (c *CommentECache) SetThread(ctx context.Context, t domain.Target, comments []domain.Comment) error {
	data, err := json.Marshal(comments)
	if err != nil {
		return errors.Wrap(err, "序列化评论失败")
	}
	return c.cache.Set(ctx, c.threadKey(t), data, c.expiration)
}

func (c *CommentECache) DelThread(ctx context.Context, t domain.Target) error {
	_, err := c.cache.Delete(ctx, c.threadKey(t))
	return err
}

func (c *CommentECache) threadKey(t domain.Target) string {
	return "thread:" + t.Key()
}
