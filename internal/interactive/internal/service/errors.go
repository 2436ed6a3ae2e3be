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
	ErrUnauthenticated = errors.New("需要登录")
	ErrConflict        = errors.New("点赞冲突，请稍后再试")
	ErrInvalidTarget   = target.ErrInvalidTarget
)
