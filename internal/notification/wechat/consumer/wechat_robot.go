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

package consumer

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"
	"unicode/utf8"

	"github.com/ecodeclub/chatter/internal/notification/event"
	"github.com/ecodeclub/mq-api"
	"github.com/gotomicro/ego/core/elog"
)

// 企业微信文本消息最长 2048 字节
const maxContentBytes = 2048

var ErrUnknownRobot = errors.New("未知Robot消息")

type Text struct {
	Content string `json:"content"`
}

type WechatRobotMessage struct {
	MsgType string `json:"msgtype"`
	Text    Text   `json:"text"`
}

type WechatRobotConfig struct {
	ChatRobots map[string]string `yaml:"chatRobots"`
}

type WechatRobotEventConsumer struct {
	consumer mq.Consumer
	config   *WechatRobotConfig
	client   *http.Client
	logger   *elog.Component
}

func NewWechatRobotEventConsumer(q mq.MQ, config *WechatRobotConfig) (*WechatRobotEventConsumer, error) {
	const groupID = "notification.wechat"
	c, err := q.Consumer(event.WechatRobotEventName, groupID)
	if err != nil {
		return nil, err
	}
	return &WechatRobotEventConsumer{
		consumer: c,
		config:   config,
		client:   &http.Client{Timeout: 5 * time.Second},
		logger:   elog.DefaultLogger.With(elog.FieldComponent("notification.wechat.consumer")),
	}, nil
}

func (c *WechatRobotEventConsumer) Start(ctx context.Context) {
	go func() {
		for {
			err := c.Consume(ctx)
			if ctx.Err() != nil {
				return
			}
			if err != nil {
				c.logger.Error("消费微信机器人事件失败", elog.FieldErr(err))
			}
		}
	}()
}

func (c *WechatRobotEventConsumer) Consume(ctx context.Context) error {
	msg, err := c.consumer.Consume(ctx)
	if err != nil {
		return fmt.Errorf("获取消息失败: %w", err)
	}
	var evt event.WechatRobotEvent
	err = json.Unmarshal(msg.Value, &evt)
	if err != nil {
		return fmt.Errorf("解析消息失败: %w", err)
	}
	webhookURL, ok := c.config.ChatRobots[evt.Robot]
	if !ok {
		c.logger.Warn("未知Robot消息", elog.String("robot", evt.Robot))
		return fmt.Errorf("%w: %s", ErrUnknownRobot, evt.Robot)
	}
	data, err := json.Marshal(&WechatRobotMessage{
		MsgType: "text",
		Text:    Text{Content: truncate(evt.RawContent, maxContentBytes)},
	})
	if err != nil {
		return fmt.Errorf("序列化微信Robot消息失败: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, webhookURL, bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("构造微信请求失败: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("向微信发送请求失败: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("微信处理请求失败: %s", http.StatusText(resp.StatusCode))
	}
	return nil
}

// truncate 按字节截断，不会切断多字节字符。limit 为负数时 panic
func truncate(content string, limit int) string {
	if len(content) <= limit {
		return content
	}
	for limit > 0 && !utf8.RuneStart(content[limit]) {
		limit--
	}
	return content[:limit]
}
