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

const WechatRobotEventName = "wechat_robot_events"

// 机器人名称，对应配置 qywechat.chatRobots 中的 key
const (
	RobotModeration = "moderation"
)

type WechatRobotEvent struct {
	Robot      string `json:"robot"`
	RawContent string `json:"rawContent"`
}
