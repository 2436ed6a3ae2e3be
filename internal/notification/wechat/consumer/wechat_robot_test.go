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
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/ecodeclub/chatter/internal/notification/event"
	"github.com/ecodeclub/mq-api"
	"github.com/ecodeclub/mq-api/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWechatRobotEventConsumer_Consume(t *testing.T) {
	received := make(chan WechatRobotMessage, 1)
	okServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		var msg WechatRobotMessage
		_ = json.Unmarshal(body, &msg)
		received <- msg
		w.WriteHeader(http.StatusOK)
	}))
	defer okServer.Close()
	badServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer badServer.Close()

	testCases := []struct {
		name    string
		payload []byte
		cfg     *WechatRobotConfig
		wantErr assert.ErrorAssertionFunc
		after   func(t *testing.T)
	}{
		{
			name:    "发送成功",
			payload: mustMarshal(t, event.WechatRobotEvent{Robot: event.RobotModeration, RawContent: "评论 12 被举报"}),
			cfg:     &WechatRobotConfig{ChatRobots: map[string]string{event.RobotModeration: okServer.URL}},
			wantErr: assert.NoError,
			after: func(t *testing.T) {
				select {
				case msg := <-received:
					assert.Equal(t, "text", msg.MsgType)
					assert.Equal(t, "评论 12 被举报", msg.Text.Content)
				case <-time.After(time.Second):
					t.Fatal("没有收到消息")
				}
			},
		},
		{
			name:    "消息体非法",
			payload: []byte("invalid msg"),
			cfg:     &WechatRobotConfig{ChatRobots: map[string]string{event.RobotModeration: okServer.URL}},
			wantErr: assert.Error,
		},
		{
			name:    "未知机器人",
			payload: mustMarshal(t, event.WechatRobotEvent{Robot: "unknown", RawContent: "hello"}),
			cfg:     &WechatRobotConfig{ChatRobots: map[string]string{event.RobotModeration: okServer.URL}},
			wantErr: func(t assert.TestingT, err error, i ...interface{}) bool {
				return assert.ErrorIs(t, err, ErrUnknownRobot, i...)
			},
		},
		{
			name:    "微信返回非200",
			payload: mustMarshal(t, event.WechatRobotEvent{Robot: event.RobotModeration, RawContent: "hello"}),
			cfg:     &WechatRobotConfig{ChatRobots: map[string]string{event.RobotModeration: badServer.URL}},
			wantErr: assert.Error,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
			defer cancel()
			q := memory.NewMQ()
			require.NoError(t, q.CreateTopic(ctx, event.WechatRobotEventName, 1))
			c, err := NewWechatRobotEventConsumer(q, tc.cfg)
			require.NoError(t, err)
			p, err := q.Producer(event.WechatRobotEventName)
			require.NoError(t, err)
			_, err = p.Produce(ctx, &mq.Message{Value: tc.payload})
			require.NoError(t, err)

			tc.wantErr(t, c.Consume(ctx))
			if tc.after != nil {
				tc.after(t)
			}
		})
	}
}

func TestWechatRobotEventConsumer_ConsumeTruncates(t *testing.T) {
	received := make(chan WechatRobotMessage, 1)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var msg WechatRobotMessage
		_ = json.NewDecoder(r.Body).Decode(&msg)
		received <- msg
	}))
	defer server.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	q := memory.NewMQ()
	require.NoError(t, q.CreateTopic(ctx, event.WechatRobotEventName, 1))
	c, err := NewWechatRobotEventConsumer(q, &WechatRobotConfig{ChatRobots: map[string]string{event.RobotModeration: server.URL}})
	require.NoError(t, err)
	p, err := q.Producer(event.WechatRobotEventName)
	require.NoError(t, err)

	long := make([]byte, 0, 3000)
	for len(long) < 3000 {
		long = append(long, "评论"...)
	}
	_, err = p.Produce(ctx, &mq.Message{Value: mustMarshal(t, event.WechatRobotEvent{Robot: event.RobotModeration, RawContent: string(long)})})
	require.NoError(t, err)

	require.NoError(t, c.Consume(ctx))
	msg := <-received
	assert.LessOrEqual(t, len(msg.Text.Content), maxContentBytes)
	assert.Equal(t, string(long[:2046]), msg.Text.Content)
}

func mustMarshal(t *testing.T, evt event.WechatRobotEvent) []byte {
	t.Helper()
	data, err := json.Marshal(evt)
	require.NoError(t, err)
	return data
}
