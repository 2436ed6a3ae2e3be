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

package interactive

import (
	"github.com/ecodeclub/chatter/internal/interactive/internal/events"
	"github.com/ecodeclub/chatter/internal/interactive/internal/job"
	"github.com/ecodeclub/chatter/internal/interactive/internal/service"
	"github.com/ecodeclub/chatter/internal/interactive/internal/web"
)

type Handler = web.Handler

type Service = service.InteractiveService
type PageViewService = service.PageViewService

type PageViewConsumer = events.PageViewConsumer

type RefreshStatsJob = job.RefreshStatsJob

type Module struct {
	Hdl         *Handler
	Svc         Service
	PageViewSvc PageViewService
	// 消费者由 main 启动
	Consumer *PageViewConsumer
	StatsJob *RefreshStatsJob
}
