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

package events

import "github.com/ecodeclub/chatter/internal/interactive/internal/domain"

const PageViewEventName = "page_view_events"

// PageViewEvent ID 在发送之前生成，消费端依赖它去重
type PageViewEvent struct {
	ID        int64  `json:"id"`
	URL       string `json:"url"`
	IP        string `json:"ip"`
	UserAgent string `json:"userAgent"`
	Uid       int64  `json:"uid"`
	ViewedAt  int64  `json:"viewedAt"`
}

func NewPageViewEvent(pv domain.PageView) PageViewEvent {
	return PageViewEvent{
		ID:        pv.ID,
		URL:       pv.URL,
		IP:        pv.IP,
		UserAgent: pv.UserAgent,
		Uid:       pv.Uid,
		ViewedAt:  pv.ViewedAt,
	}
}

func (e PageViewEvent) ToDomain() domain.PageView {
	return domain.PageView{
		ID:        e.ID,
		URL:       e.URL,
		IP:        e.IP,
		UserAgent: e.UserAgent,
		Uid:       e.Uid,
		ViewedAt:  e.ViewedAt,
	}
}
