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
	"sort"

	"github.com/ecodeclub/chatter/internal/comment/internal/domain"
)

// BuildThread 把某个对象下的全部评论组装成树。
// 被删除或者被隐藏的回复总是以占位的形式出现，保证 reply_count 和展示的子节点数量一致；
// 被删除或者被隐藏的直接评论只有在还有可见的后代时才以占位的形式出现。
func BuildThread(rows []domain.Comment, s domain.Sort) []domain.Comment {
	children := make(map[int64][]domain.Comment, len(rows))
	roots := make([]domain.Comment, 0, len(rows))
	for _, c := range rows {
		if c.IsReply() {
			children[c.ParentID] = append(children[c.ParentID], c)
			continue
		}
		roots = append(roots, c)
	}

	var build func(c domain.Comment) (domain.Comment, bool)
	build = func(c domain.Comment) (domain.Comment, bool) {
		kids := children[c.ID]
		sort.Slice(kids, func(i, j int) bool {
			return kids[i].ID < kids[j].ID
		})
		visible := c.Visible()
		c.Replies = make([]domain.Comment, 0, len(kids))
		for _, k := range kids {
			node, ok := build(k)
			c.Replies = append(c.Replies, node)
			visible = visible || ok
		}
		if !c.Visible() {
			c = placeholder(c)
		}
		return c, visible
	}

	res := make([]domain.Comment, 0, len(roots))
	for _, r := range roots {
		node, ok := build(r)
		if !ok {
			continue
		}
		res = append(res, node)
	}

	if s.OrDefault() == domain.SortPopular {
		sort.SliceStable(res, func(i, j int) bool {
			if res[i].LikeCount != res[j].LikeCount {
				return res[i].LikeCount > res[j].LikeCount
			}
			return res[i].ID > res[j].ID
		})
		return res
	}
	sort.SliceStable(res, func(i, j int) bool {
		return res[i].ID > res[j].ID
	})
	return res
}

// placeholder 只保留树结构需要的字段
func placeholder(c domain.Comment) domain.Comment {
	return domain.Comment{
		ID:          c.ID,
		Target:      c.Target,
		ParentID:    c.ParentID,
		Ctime:       c.Ctime,
		Removed:     c.Removed,
		Hidden:      c.Hidden,
		ReplyCount:  c.ReplyCount,
		Placeholder: true,
		Replies:     c.Replies,
	}
}

// walk 深度优先遍历，fn 可以修改节点
func walk(nodes []domain.Comment, fn func(c *domain.Comment)) {
	for i := range nodes {
		fn(&nodes[i])
		walk(nodes[i].Replies, fn)
	}
}
