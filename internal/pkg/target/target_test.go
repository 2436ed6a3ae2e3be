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

package target

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParse(t *testing.T) {
	testCases := []struct {
		name    string
		url     string
		typ     string
		id      int64
		want    Target
		wantErr error
	}{
		{
			name: "URL",
			url:  " /resources/page.html ",
			want: Target{Kind: KindURL, URL: "resources/page.html"},
		},
		{
			name:    "URL包含空白",
			url:     "a b",
			wantErr: ErrInvalidTarget,
		},
		{
			name:    "只有斜杠",
			url:     "/",
			wantErr: ErrInvalidTarget,
		},
		{
			name:    "实体类型非法",
			typ:     "Project",
			id:      1,
			wantErr: ErrInvalidTarget,
		},
		{
			name: "实体",
			typ:  "project",
			id:   12,
			want: Target{Kind: KindEntity, EntityType: "project", EntityID: 12},
		},
		{
			name:    "都没有",
			wantErr: ErrInvalidTarget,
		},
		{
			name:    "两个都有",
			url:     "/a",
			typ:     "project",
			id:      1,
			wantErr: ErrInvalidTarget,
		},
		{
			name:    "实体缺少ID",
			typ:     "project",
			wantErr: ErrInvalidTarget,
		},
		{
			name:    "实体缺少类型",
			id:      3,
			wantErr: ErrInvalidTarget,
		},
		{
			name:    "负数ID",
			typ:     "project",
			id:      -1,
			wantErr: ErrInvalidTarget,
		},
		{
			name:    "URL过长",
			url:     strings.Repeat("a", MaxURLLength+1),
			wantErr: ErrInvalidTarget,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Parse(tc.url, tc.typ, tc.id)
			assert.ErrorIs(t, err, tc.wantErr)
			if err != nil {
				return
			}
			assert.Equal(t, tc.want, got)
			assert.True(t, got.Valid())
		})
	}
}

func TestTarget_Key(t *testing.T) {
	u, err := URL("/projects/1")
	assert.NoError(t, err)
	e, err := Entity("project", 1)
	assert.NoError(t, err)
	assert.Equal(t, "url:projects/1", u.Key())
	assert.Equal(t, "entity:project:1", e.Key())
	assert.False(t, u.Equal(e))
	assert.False(t, Target{}.Valid())
}

func TestTarget_KeyDistinct(t *testing.T) {
	u, err := URL("5")
	assert.NoError(t, err)
	e, err := Entity("url", 5)
	assert.NoError(t, err)
	assert.NotEqual(t, u.Key(), e.Key())
}
