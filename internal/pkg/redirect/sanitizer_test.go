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

package redirect

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitize(t *testing.T) {
	testCases := []struct {
		name      string
		candidate string
		wantPath  string
		wantOK    bool
	}{
		{name: "空字符串", candidate: ""},
		{name: "只有空白", candidate: "   "},
		{name: "登录页", candidate: "/login"},
		{name: "登录注册互相跳转", candidate: "/login?return_to=/register?return_to=/login"},
		{name: "注册页", candidate: "/register"},
		{name: "没有斜杠的登录页", candidate: "login"},
		{name: "大写的登录页", candidate: "/LOGIN"},
		{name: "http", candidate: "http://evil.com"},
		{name: "https", candidate: "https://evil.com/account"},
		{name: "大写的scheme", candidate: "HTTPS://evil.com"},
		{name: "协议相对地址", candidate: "//evil.com"},
		{name: "反斜杠", candidate: `\evil.com`},
		{name: "斜杠加反斜杠", candidate: `/\evil.com`},
		{name: "两个反斜杠", candidate: `\\evil.com`},
		{name: "斜杠中间夹着制表符", candidate: "/\t/evil.com"},
		{name: "换行", candidate: "/account\nSet-Cookie: a=b"},
		{name: "ftp", candidate: "ftp://evil.com/a"},
		{name: "file", candidate: "file:///etc/passwd"},
		{name: "超长", candidate: "/" + strings.Repeat("a", 599)},
		{name: "正常路径", candidate: "/account", wantPath: "/account", wantOK: true},
		{name: "去掉空白", candidate: " /resources/page.html ", wantPath: "/resources/page.html", wantOK: true},
		{name: "补上斜杠", candidate: "projects/robot-1", wantPath: "/projects/robot-1", wantOK: true},
		{name: "路径中间的反斜杠", candidate: `/docs\page`, wantPath: `/docs\page`, wantOK: true},
		{name: "带查询参数", candidate: "/projects?page=2", wantPath: "/projects?page=2", wantOK: true},
		{name: "刚好500", candidate: "/" + strings.Repeat("a", 499), wantPath: "/" + strings.Repeat("a", 499), wantOK: true},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			path, ok := Sanitize(tc.candidate)
			assert.Equal(t, tc.wantOK, ok)
			assert.Equal(t, tc.wantPath, path)
		})
	}
}

func TestSafeOrDefault(t *testing.T) {
	assert.Equal(t, "/", SafeOrDefault("/login", "/"))
	assert.Equal(t, "/account", SafeOrDefault("account", "/"))
}

func TestLoginURL(t *testing.T) {
	assert.Equal(t, "/login", LoginURL("/register"))
	assert.Equal(t, "/login", LoginURL(""))
	assert.Equal(t, "/login?return_to=%2Fprojects%3Fpage%3D2", LoginURL("/projects?page=2"))
}
