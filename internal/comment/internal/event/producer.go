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

package event

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/ecodeclub/chatter/internal/comment/internal/domain"
	"github.com/ecodeclub/chatter/internal/notification/event"
	"github.com/ecodeclub/chatter/internal/pkg/mqx"
	"github.com/ecodeclub/mq-api"
)

// 通知里最多带多少个字的评论内容
const excerptRunes = 80

//go:generate mockgen -source=./producer.go -package=evtmocks -destination=./mocks/producer.mock.go WechatRobotEventProducer
type WechatRobotEventProducer interface {
	Produce(ctx context.Context, evt event.WechatRobotEvent) error
}

func NewQYWeChatEventProducer(q mq.MQ) (WechatRobotEventProducer, error) {
	return mqx.NewGeneralProducer[event.WechatRobotEvent](q, event.WechatRobotEventName)
}

// NewReportedEvent 评论被举报后发给审核群的消息
func NewReportedEvent(c domain.Comment, reason domain.FlagReason) event.WechatRobotEvent {
	var sb strings.Builder
	sb.WriteString("评论被举报\n")
	sb.WriteString(fmt.Sprintf("评论ID: %d\n", c.ID))
	sb.WriteString(fmt.Sprintf("对象: %s\n", c.Target.String()))
	sb.WriteString(fmt.Sprintf("举报次数: %d\n", c.FlagCount))
	sb.WriteString(fmt.Sprintf("举报人: %d\n", reason.Reporter))
	sb.WriteString(fmt.Sprintf("原因: %s\n", reason.Reason))
	sb.WriteString(fmt.Sprintf("内容: %s", excerpt(c.Content, excerptRunes)))
	return event.WechatRobotEvent{
		Robot:      event.RobotModeration,
		RawContent: sb.String(),
	}
}

func excerpt(content string, n int) string {
	if utf8.RuneCountInString(content) <= n {
		return content
	}
	runes := []rune(content)
	return string(runes[:n]) + "..."
}
