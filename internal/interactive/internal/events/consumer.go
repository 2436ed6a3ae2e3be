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

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/ecodeclub/chatter/internal/interactive/internal/repository"
	"github.com/ecodeclub/mq-api"
	"github.com/gotomicro/ego/core/elog"
)

// PageViewConsumer 把访问日志落库，写入按 ID 幂等
type PageViewConsumer struct {
	consumer mq.Consumer
	repo     repository.PageViewRepository
	logger   *elog.Component
}

func NewPageViewConsumer(repo repository.PageViewRepository, q mq.MQ) (*PageViewConsumer, error) {
	const groupID = "interactive_group"
	consumer, err := q.Consumer(PageViewEventName, groupID)
	if err != nil {
		return nil, err
	}
	return &PageViewConsumer{
		consumer: consumer,
		repo:     repo,
		logger:   elog.DefaultLogger.With(elog.FieldComponent("interactive.consumer")),
	}, nil
}

func (s *PageViewConsumer) Consume(ctx context.Context) error {
	msg, err := s.consumer.Consume(ctx)
	if err != nil {
		return fmt.Errorf("获取消息失败: %w", err)
	}
	var evt PageViewEvent
	err = json.Unmarshal(msg.Value, &evt)
	if err != nil {
		return fmt.Errorf("解析消息失败: %w", err)
	}
	err = s.repo.Save(ctx, evt.ToDomain())
	if err != nil {
		s.logger.Error("保存访问记录失败", elog.Any("page_view_event", evt))
	}
	return err
}

func (s *PageViewConsumer) Start(ctx context.Context) {
	go func() {
		for {
			err := s.Consume(ctx)
			if ctx.Err() != nil {
				return
			}
			if err != nil {
				s.logger.Error("同步访问事件失败", elog.FieldErr(err))
			}
		}
	}()
}

func (s *PageViewConsumer) Stop(_ context.Context) error {
	return s.consumer.Close()
}
