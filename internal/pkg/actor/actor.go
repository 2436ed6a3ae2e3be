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

// Package actor 显式的调用者身份，业务方法不再从请求里面隐式读取当前用户
package actor

import (
	"strconv"

	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
)

// AdminClaim 登录服务在 JWT 里面写入的管理员标记
const AdminClaim = "admin"

type Actor struct {
	Uid   int64
	Admin bool
}

func (a Actor) Authenticated() bool {
	return a.Uid > 0
}

func FromSession(sess session.Session) Actor {
	if sess == nil {
		return Actor{}
	}
	claims := sess.Claims()
	return Actor{
		Uid:   claims.Uid,
		Admin: claims.Get(AdminClaim).StringOrDefault("") == strconv.FormatBool(true),
	}
}

// FromContext 用在公开接口上，没有登录就是匿名用户
func FromContext(ctx *ginx.Context) Actor {
	sess, err := session.Get(ctx)
	if err != nil {
		return Actor{}
	}
	return FromSession(sess)
}
