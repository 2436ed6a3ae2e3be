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

package service

import (
	"errors"

	"github.com/ecodeclub/chatter/internal/pkg/target"
)

var (
	ErrNotFound        = errors.New("评论不存在")
	ErrNotAuthor       = errors.New("只有作者本人可以操作")
	ErrForbidden       = errors.New("没有权限")
	ErrConflict        = errors.New("操作冲突，请稍后重试")
	ErrParentNotFound  = errors.New("回复的评论不存在")
	ErrUnauthenticated = errors.New("请先登录")
	ErrInvalidReason   = errors.New("举报原因不能为空，且不能超过500个字")
	ErrInvalidTarget   = target.ErrInvalidTarget
)
