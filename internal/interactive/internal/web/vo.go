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
	"github.com/ecodeclub/chatter/internal/interactive/internal/domain"
	"github.com/ecodeclub/chatter/internal/pkg/target"
)

// Target URL 和 EntityType + EntityID 二选一
type Target struct {
	URL        string `json:"url,omitempty"`
	EntityType string `json:"entityType,omitempty"`
	EntityID   int64  `json:"entityId,omitempty"`
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

type LikeReq struct {
	Target
}

type LikeResult struct {
	Liked     bool  `json:"liked"`
	LikeCount int64 `json:"likeCount"`
}

type LikeInfo struct {
	Liked     bool  `json:"liked"`
	LikeCount int64 `json:"likeCount"`
}

type LikeRank struct {
	Target    Target `json:"target"`
	LikeCount int64  `json:"likeCount"`
}

type ViewReq struct {
	URL string `json:"url"`
}

type ViewStats struct {
	URL            string `json:"url"`
	ViewCount      int64  `json:"viewCount"`
	Formatted      string `json:"formatted"`
	UniqueVisitors int64  `json:"uniqueVisitors"`
	LastViewedAt   int64  `json:"lastViewedAt"`
}

func newViewStats(s domain.PageViewStats) ViewStats {
	return ViewStats{
		URL:            s.URL,
		ViewCount:      s.ViewCount,
		Formatted:      s.Formatted(),
		UniqueVisitors: s.UniqueVisitors,
		LastViewedAt:   s.LastViewedAt,
	}
}
