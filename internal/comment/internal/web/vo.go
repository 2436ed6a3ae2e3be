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

package web

import (
	"github.com/ecodeclub/chatter/internal/comment/internal/domain"
	"github.com/ecodeclub/chatter/internal/pkg/target"
)

// Target URL 和实体二选一
type Target struct {
	URL        string `json:"url,omitempty"`
	EntityType string `json:"entityType,omitempty"`
	EntityID   int64  `json:"entityID,omitempty"`
}

func (t Target) toDomain() (domain.Target, error) {
	return target.Parse(t.URL, t.EntityType, t.EntityID)
}

func newTarget(t domain.Target) Target {
	if t.Kind == target.KindURL {
		return Target{URL: t.URL}
	}
	return Target{EntityType: t.EntityType, EntityID: t.EntityID}
}

type ListReq struct {
	Target
	// recent 或者 popular
	Sort string `json:"sort"`
}

type CountReq struct {
	Target
}

type UserCommentsReq struct {
	Uid    int64 `json:"uid"`
	Offset int   `json:"offset"`
	Limit  int   `json:"limit"`
}

type CreateReq struct {
	Target
	Content  string `json:"content"`
	ParentID int64  `json:"parentID"`
}

type EditReq struct {
	ID      int64  `json:"id"`
	Content string `json:"content"`
}

type IDReq struct {
	ID int64 `json:"id"`
}

type ReportReq struct {
	ID     int64  `json:"id"`
	Reason string `json:"reason"`
}

type Page struct {
	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

type User struct {
	ID       int64  `json:"id"`
	Nickname string `json:"nickname"`
	Avatar   string `json:"avatar"`
}

type Comment struct {
	ID       int64  `json:"id"`
	ParentID int64  `json:"parentID"`
	Target   Target `json:"target"`
	User     User   `json:"user"`
	// 清理过的纯文本
	Content string `json:"content"`
	// 渲染之后的 HTML
	HTML        string    `json:"html"`
	Ctime       int64     `json:"ctime"`
	Utime       int64     `json:"utime"`
	EditedAt    int64     `json:"editedAt"`
	LikeCount   int64     `json:"likeCount"`
	ReplyCount  int64     `json:"replyCount"`
	Liked       bool      `json:"liked"`
	Placeholder bool      `json:"placeholder"`
	Replies     []Comment `json:"replies"`
}

type CommentList struct {
	List  []Comment `json:"list"`
	Total int64     `json:"total"`
}

type Count struct {
	Count int64 `json:"count"`
}

type LikeResult struct {
	Liked     bool  `json:"liked"`
	LikeCount int64 `json:"likeCount"`
}

type Version struct {
	ID       int64  `json:"id"`
	Content  string `json:"content"`
	EditedAt int64  `json:"editedAt"`
}

type FlagReason struct {
	Reason   string `json:"reason"`
	Reporter int64  `json:"reporter"`
	At       int64  `json:"at"`
}

// FlaggedComment 管理后台看到的评论，带上审核信息
type FlaggedComment struct {
	Comment
	Removed     bool         `json:"removed"`
	Hidden      bool         `json:"hidden"`
	Flagged     bool         `json:"flagged"`
	FlagCount   int64        `json:"flagCount"`
	FlagReasons []FlagReason `json:"flagReasons"`
	ReviewedAt  int64        `json:"reviewedAt"`
	ReviewedBy  int64        `json:"reviewedBy"`
}

type FlaggedList struct {
	List  []FlaggedComment `json:"list"`
	Total int64            `json:"total"`
}
