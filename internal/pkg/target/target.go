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

// Package target 描述评论和点赞挂载的对象：要么是一个页面 URL，要么是一个业务实体
package target

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"unicode"
)

const (
	MaxURLLength        = 512
	MaxEntityTypeLength = 64
)

var (
	ErrInvalidTarget = errors.New("非法的评论对象")

	entityTypePattern = regexp.MustCompile(`^[a-z][a-z0-9_]{0,63}$`)
)

type Kind uint8

const (
	KindUnknown Kind = iota
	KindURL
	KindEntity
)

func (k Kind) String() string {
	switch k {
	case KindURL:
		return "url"
	case KindEntity:
		return "entity"
	default:
		return "unknown"
	}
}

// Target 两种形态互斥，Kind 决定哪些字段有效
type Target struct {
	Kind       Kind
	URL        string
	EntityType string
	EntityID   int64
}

// URL 去掉首尾空白和一个前导 /，"/projects/1" 与 "projects/1" 是同一个对象
func URL(u string) (Target, error) {
	u = strings.TrimPrefix(strings.TrimSpace(u), "/")
	if u == "" || len(u) > MaxURLLength || strings.IndexFunc(u, unicode.IsSpace) >= 0 {
		return Target{}, ErrInvalidTarget
	}
	return Target{Kind: KindURL, URL: u}, nil
}

func Entity(typ string, id int64) (Target, error) {
	typ = strings.TrimSpace(typ)
	if !entityTypePattern.MatchString(typ) || id <= 0 {
		return Target{}, ErrInvalidTarget
	}
	return Target{Kind: KindEntity, EntityType: typ, EntityID: id}, nil
}

// Parse 从请求参数构造 Target，URL 和实体必须且只能给一个
func Parse(u, typ string, id int64) (Target, error) {
	hasURL := strings.TrimSpace(u) != ""
	hasEntity := strings.TrimSpace(typ) != "" || id != 0
	switch {
	case hasURL && !hasEntity:
		return URL(u)
	case hasEntity && !hasURL:
		return Entity(typ, id)
	default:
		return Target{}, ErrInvalidTarget
	}
}

func (t Target) Valid() bool {
	switch t.Kind {
	case KindURL:
		return t.URL != "" && len(t.URL) <= MaxURLLength
	case KindEntity:
		return entityTypePattern.MatchString(t.EntityType) && t.EntityID > 0
	default:
		return false
	}
}

func (t Target) Equal(other Target) bool {
	return t.Kind == other.Kind && t.URL == other.URL &&
		t.EntityType == other.EntityType && t.EntityID == other.EntityID
}

// Key 用作缓存键，两种形态用不同的前缀，实体类型叫 url 也不会和 URL 冲突
func (t Target) Key() string {
	if t.Kind == KindURL {
		return "url:" + t.URL
	}
	return fmt.Sprintf("entity:%s:%d", t.EntityType, t.EntityID)
}

func (t Target) String() string {
	if t.Kind == KindURL {
		return t.URL
	}
	return fmt.Sprintf("%s#%d", t.EntityType, t.EntityID)
}
