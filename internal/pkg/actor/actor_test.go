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

package actor

import (
	"testing"

	"github.com/ecodeclub/ginx/session"
	"github.com/stretchr/testify/assert"
)

func TestFromSession(t *testing.T) {
	testCases := []struct {
		name string
		sess session.Session
		want Actor
	}{
		{
			name: "没有session",
			want: Actor{},
		},
		{
			name: "普通用户",
			sess: session.NewMemorySession(session.Claims{Uid: 12, Data: map[string]string{}}),
			want: Actor{Uid: 12},
		},
		{
			name: "管理员",
			sess: session.NewMemorySession(session.Claims{Uid: 13, Data: map[string]string{AdminClaim: "true"}}),
			want: Actor{Uid: 13, Admin: true},
		},
		{
			name: "管理员标记不是true",
			sess: session.NewMemorySession(session.Claims{Uid: 14, Data: map[string]string{AdminClaim: "yes"}}),
			want: Actor{Uid: 14},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := FromSession(tc.sess)
			assert.Equal(t, tc.want, got)
			assert.Equal(t, tc.want.Uid > 0, got.Authenticated())
		})
	}
}
