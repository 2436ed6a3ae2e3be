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

// Package snowflake 生成全局唯一 ID，用于在消息发送前就确定主键，消费端据此去重
package snowflake

import (
	"errors"
	"fmt"

	"github.com/bwmarrin/snowflake"
	"github.com/ecodeclub/ekit/syncx"
)

// App 不同业务使用不同的 app 段，互不干扰
type App uint

const (
	AppPageView App = iota
	appCount
)

type Generator interface {
	Generate(app App) (ID, error)
}

type NodeGenerator struct {
	// 键为 app
	nodes syncx.Map[App, *snowflake.Node]
}

const (
	maxNode uint = 31
	maxApp  uint = 31
)

var (
	ErrExceedNode = errors.New("node超出限制")
	ErrExceedApp  = errors.New("app超出限制")
	ErrUnknownApp = errors.New("未知的app")
)

// +---------------------------------------------------------------------------------------+
// | 1 Bit Unused | 41 Bit Timestamp |  5 Bit APPID | 5 Bit NodeID  |   12 Bit Sequence ID |
// +---------------------------------------------------------------------------------------+

// NewGenerator nodeID 是部署的节点编号，apps 是需要的 app 段数量，都从 0 开始
func NewGenerator(nodeID uint, apps uint) (*NodeGenerator, error) {
	if nodeID > maxNode {
		return nil, fmt.Errorf("%w: %d", ErrExceedNode, nodeID)
	}
	if apps > maxApp+1 {
		return nil, fmt.Errorf("%w: %d", ErrExceedApp, apps)
	}
	res := &NodeGenerator{}
	for i := uint(0); i < apps; i++ {
		n, err := snowflake.NewNode(int64(i<<5 | nodeID))
		if err != nil {
			return nil, err
		}
		res.nodes.Store(App(i), n)
	}
	return res, nil
}

// NewDefaultGenerator 覆盖当前所有的 app
func NewDefaultGenerator(nodeID uint) (*NodeGenerator, error) {
	return NewGenerator(nodeID, uint(appCount))
}

type ID int64

func (g *NodeGenerator) Generate(app App) (ID, error) {
	n, ok := g.nodes.Load(app)
	if !ok {
		return 0, fmt.Errorf("%w: %d", ErrUnknownApp, app)
	}
	return ID(n.Generate()), nil
}

func (f ID) App() App {
	node := snowflake.ID(f).Node()
	return App(node >> 5)
}

func (f ID) Int64() int64 {
	return int64(f)
}
