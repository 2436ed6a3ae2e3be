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

import (
	"strconv"

	"github.com/ecodeclub/chatter/internal/pkg/target"
)

type Target = target.Target

type LikeResult struct {
	Liked     bool
	LikeCount int64
}

type LikeInfo struct {
	LikeCount int64
	Liked     bool
	// 没有点赞的时候为 0
	LikeID int64
}

// LikeRank 点赞排行
type LikeRank struct {
	Target    Target
	LikeCount int64
}

type PageView struct {
	ID        int64
	URL       string
	IP        string
	UserAgent string
	// 0 表示匿名用户
	Uid      int64
	ViewedAt int64
}

type PageViewStats struct {
	URL            string
	ViewCount      int64
	UniqueVisitors int64
	LastViewedAt   int64
}

func (s PageViewStats) Formatted() string {
	return FormatCount(s.ViewCount)
}

// FormatCount 1234 => 1.2k，12345 => 12k，1234567 => 1.2M
func FormatCount(n int64) string {
	switch {
	case n < 1000:
		return strconv.FormatInt(n, 10)
	case n < 10_000:
		return strconv.FormatFloat(float64(n)/1000, 'f', 1, 64) + "k"
	case n < 1_000_000:
		return strconv.FormatInt(n/1000, 10) + "k"
	case n < 10_000_000:
		return strconv.FormatFloat(float64(n)/1_000_000, 'f', 1, 64) + "M"
	default:
		return strconv.FormatInt(n/1_000_000, 10) + "M"
	}
}
