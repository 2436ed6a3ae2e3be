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
	"testing"

	"github.com/ecodeclub/chatter/internal/comment/internal/domain"
	"github.com/ecodeclub/ekit/slice"
	"github.com/stretchr/testify/assert"
)

func TestBuildThread(t *testing.T) {
	// 每个节点用 ID 表示，负数表示占位
	testCases := []struct {
		name string
		rows []domain.Comment
		sort domain.Sort
		want []node
	}{
		{
			name: "空",
			want: []node{},
		},
		{
			name: "直接评论新的在前，回复按时间顺序",
			rows: []domain.Comment{
				{ID: 1, Content: "a"},
				{ID: 2, Content: "b"},
				{ID: 3, ParentID: 1, Content: "c"},
				{ID: 4, ParentID: 1, Content: "d"},
				{ID: 5, ParentID: 3, Content: "e"},
			},
			want: []node{
				{ID: 2, Replies: []node{}},
				{ID: 1, Replies: []node{
					{ID: 3, Replies: []node{{ID: 5, Replies: []node{}}}},
					{ID: 4, Replies: []node{}},
				}},
			},
		},
		{
			name: "被隐藏的回复显示为占位",
			rows: []domain.Comment{
				{ID: 1, Content: "Nice build!", ReplyCount: 1},
				{ID: 2, ParentID: 1, Content: "Thanks!", Hidden: true},
			},
			want: []node{
				{ID: 1, Replies: []node{{ID: -2, Replies: []node{}}}},
			},
		},
		{
			name: "被删除的直接评论，没有可见的回复，不展示",
			rows: []domain.Comment{
				{ID: 1, Content: "a", Removed: true},
				{ID: 2, Content: "b"},
			},
			want: []node{
				{ID: 2, Replies: []node{}},
			},
		},
		{
			name: "被删除的直接评论，回复也被删除，不展示",
			rows: []domain.Comment{
				{ID: 1, Content: "a", Removed: true},
				{ID: 2, ParentID: 1, Content: "b", Removed: true},
			},
			want: []node{},
		},
		{
			name: "被删除的直接评论，还有可见的回复，显示为占位",
			rows: []domain.Comment{
				{ID: 1, Content: "a", Removed: true},
				{ID: 2, ParentID: 1, Content: "b", Hidden: true},
				{ID: 3, ParentID: 2, Content: "c"},
			},
			want: []node{
				{ID: -1, Replies: []node{
					{ID: -2, Replies: []node{{ID: 3, Replies: []node{}}}},
				}},
			},
		},
		{
			name: "按热度排序",
			sort: domain.SortPopular,
			rows: []domain.Comment{
				{ID: 1, Content: "a", LikeCount: 3},
				{ID: 2, Content: "b", LikeCount: 10},
				{ID: 3, Content: "c", LikeCount: 3},
				{ID: 4, ParentID: 1, Content: "d", LikeCount: 100},
			},
			want: []node{
				{ID: 2, Replies: []node{}},
				{ID: 3, Replies: []node{}},
				{ID: 1, Replies: []node{{ID: 4, Replies: []node{}}}},
			},
		},
		{
			name: "未知排序方式按时间",
			sort: domain.Sort("whatever"),
			rows: []domain.Comment{
				{ID: 1, Content: "a", LikeCount: 3},
				{ID: 2, Content: "b"},
			},
			want: []node{
				{ID: 2, Replies: []node{}},
				{ID: 1, Replies: []node{}},
			},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := BuildThread(tc.rows, tc.sort)
			assert.Equal(t, tc.want, toNodes(got))
		})
	}
}

func TestBuildThread_Placeholder(t *testing.T) {
	rows := []domain.Comment{
		{ID: 1, User: domain.User{ID: 7}, Content: "parent", ReplyCount: 3},
		{ID: 2, User: domain.User{ID: 8}, ParentID: 1, Content: "first"},
		{ID: 3, User: domain.User{ID: 9}, ParentID: 1, Content: "second", Removed: true, LikeCount: 2},
		{ID: 4, User: domain.User{ID: 8}, ParentID: 1, Content: "third", Hidden: true},
	}
	got := BuildThread(rows, domain.SortRecent)
	assert.Len(t, got, 1)
	parent := got[0]
	// 回复数和展示出来的子节点数量一致
	assert.Equal(t, int(parent.ReplyCount), len(parent.Replies))
	visible := slice.FindAll(parent.Replies, func(src domain.Comment) bool {
		return !src.Placeholder
	})
	assert.Len(t, visible, 1)

	removed := parent.Replies[1]
	assert.True(t, removed.Placeholder)
	assert.Empty(t, removed.Content)
	assert.Zero(t, removed.User.ID)
	assert.Zero(t, removed.LikeCount)
	assert.Equal(t, int64(1), removed.ParentID)
}

type node struct {
	ID      int64
	Replies []node
}

func toNodes(cs []domain.Comment) []node {
	res := make([]node, 0, len(cs))
	for _, c := range cs {
		id := c.ID
		if c.Placeholder {
			id = -id
		}
		res = append(res, node{ID: id, Replies: toNodes(c.Replies)})
	}
	return res
}
