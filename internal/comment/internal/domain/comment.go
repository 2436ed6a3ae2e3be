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

package domain

import "github.com/ecodeclub/chatter/internal/pkg/target"

type Target = target.Target

type User struct {
	ID       int64
	NickName string
	Avatar   string
}

type FlagReason struct {
	Reason   string `json:"reason"`
	Reporter int64  `json:"reporter"`
	At       int64  `json:"at"`
}

type Comment struct {
	ID int64
	// 评论的人
	User User
	// 评论的对象，回复和父评论一定是同一个对象
	Target Target

	// 0 表示直接评论
	ParentID int64

	Content string

	Ctime int64
	Utime int64
	// 0 表示从未编辑过
	EditedAt int64

	Removed   bool
	RemovedAt int64

	Flagged     bool
	FlagCount   int64
	FlagReasons []FlagReason

	Hidden     bool
	ReviewedAt int64
	ReviewedBy int64

	LikeCount  int64
	ReplyCount int64

	// 以下是展示用的字段，和查看者相关
	Liked       bool
	Placeholder bool
	Replies     []Comment
}

// Visible 被作者删除或者被管理员隐藏的评论，普通用户看不到
func (c Comment) Visible() bool {
	return !c.Removed && !c.Hidden
}

func (c Comment) IsReply() bool {
	return c.ParentID > 0
}

type Version struct {
	ID        int64
	CommentID int64
	// 编辑前的内容
	Content  string
	EditedAt int64
}

type LikeResult struct {
	Liked     bool
	LikeCount int64
}

type Sort string

const (
	SortRecent  Sort = "recent"
	SortPopular Sort = "popular"
)

func (s Sort) OrDefault() Sort {
	if s == SortPopular {
		return SortPopular
	}
	return SortRecent
}

type ModerationAction uint8

const (
	ModerationHide ModerationAction = iota + 1
	ModerationUnhide
	ModerationClearFlags
)

func (a ModerationAction) String() string {
	switch a {
	case ModerationHide:
		return "hide"
	case ModerationUnhide:
		return "unhide"
	case ModerationClearFlags:
		return "clear_flags"
	default:
		return "unknown"
	}
}
