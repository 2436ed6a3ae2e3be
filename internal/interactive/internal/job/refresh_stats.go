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

package job

import (
	"context"
	"fmt"
	"time"

	"github.com/ecodeclub/chatter/internal/interactive/internal/service"
	"github.com/gotomicro/ego/task/ecron"
)

var _ ecron.NamedJob = (*RefreshStatsJob)(nil)

// RefreshStatsJob 重建访问统计表
type RefreshStatsJob struct {
	svc     service.PageViewService
	timeout time.Duration
}

func NewRefreshStatsJob(svc service.PageViewService) *RefreshStatsJob {
	return &RefreshStatsJob{
		svc:     svc,
		timeout: time.Minute,
	}
}

func (j *RefreshStatsJob) Name() string {
	return "page_view_stats"
}

func (j *RefreshStatsJob) Run(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, j.timeout)
	defer cancel()
	if err := j.svc.RefreshStats(ctx); err != nil {
		return fmt.Errorf("重建访问统计失败: %w", err)
	}
	return nil
}
