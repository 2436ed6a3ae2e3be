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

// Package redirect 处理登录、注册页面上的 return_to 参数
package redirect

import (
	"net/url"
	"strings"
	"unicode"
)

const (
	MaxLength = 500

	LoginPath    = "/login"
	RegisterPath = "/register"
)

var schemes = []string{"http://", "https://", "//", "ftp://", "file://"}

// 以这些路径开头的跳转会在登录和注册之间来回跳
var loopPaths = []string{LoginPath, RegisterPath}

// Sanitize 返回站内的相对路径。false 表示 candidate 不能用来跳转
func Sanitize(candidate string) (string, bool) {
	path := strings.TrimSpace(candidate)
	if path == "" {
		return "", false
	}
	lower := strings.ToLower(path)
	for _, s := range schemes {
		if strings.HasPrefix(lower, s) {
			return "", false
		}
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
		lower = "/" + lower
	}
	// 浏览器会把 /\host 当成 //host，也会忽略路径里的制表符和换行
	if len(path) > 1 && (path[1] == '/' || path[1] == '\\') {
		return "", false
	}
	if strings.IndexFunc(path, unicode.IsControl) >= 0 {
		return "", false
	}
	for _, p := range loopPaths {
		if strings.HasPrefix(lower, p) {
			return "", false
		}
	}
	if len(path) > MaxLength {
		return "", false
	}
	return path, true
}

func SafeOrDefault(candidate, fallback string) string {
	if path, ok := Sanitize(candidate); ok {
		return path
	}
	return fallback
}

// LoginURL 构造带 return_to 的登录地址
func LoginURL(returnTo string) string {
	path, ok := Sanitize(returnTo)
	if !ok {
		return LoginPath
	}
	return LoginPath + "?return_to=" + url.QueryEscape(path)
}
