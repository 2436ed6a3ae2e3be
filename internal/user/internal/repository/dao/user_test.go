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

package dao

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gormMysql "gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T, mockDB *sql.DB) *gorm.DB {
	db, err := gorm.Open(gormMysql.New(gormMysql.Config{
		Conn: mockDB,
		// 如果为 false ，则GORM在初始化时，会先调用 show version
		SkipInitializeWithVersion: true,
	}), &gorm.Config{
		// 如果为 true ，则不允许 Ping数据库
		DisableAutomaticPing: true,
		// 如果为 false ，则即使是单一语句，也会开启事务
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)
	return db
}

func TestGORMUserDAO_FindById(t *testing.T) {
	testCases := []struct {
		name     string
		mock     func(t *testing.T) *sql.DB
		id       int64
		wantUser User
		wantErr  error
	}{
		{
			name: "查找成功",
			mock: func(t *testing.T) *sql.DB {
				mockDB, mock, err := sqlmock.New()
				require.NoError(t, err)
				rows := sqlmock.NewRows([]string{"id", "nickname", "avatar", "is_admin", "ctime", "utime"}).
					AddRow(1, "tom", "a.png", true, 10, 11)
				mock.ExpectQuery("SELECT \\* FROM `users` WHERE id = .*").
					WillReturnRows(rows)
				return mockDB
			},
			id: 1,
			wantUser: User{
				Id:       1,
				Nickname: "tom",
				Avatar:   "a.png",
				IsAdmin:  true,
				Ctime:    10,
				Utime:    11,
			},
		},
		{
			name: "用户不存在",
			mock: func(t *testing.T) *sql.DB {
				mockDB, mock, err := sqlmock.New()
				require.NoError(t, err)
				mock.ExpectQuery("SELECT \\* FROM `users` WHERE id = .*").
					WillReturnRows(sqlmock.NewRows([]string{"id"}))
				return mockDB
			},
			id:      2,
			wantErr: ErrDataNotFound,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			d := NewGORMUserDAO(newTestDB(t, tc.mock(t)))
			u, err := d.FindById(context.Background(), tc.id)
			assert.Equal(t, tc.wantErr, err)
			assert.Equal(t, tc.wantUser, u)
		})
	}
}

func TestGORMUserDAO_FindByIds(t *testing.T) {
	testCases := []struct {
		name    string
		mock    func(t *testing.T) *sql.DB
		ids     []int64
		wantLen int
		wantErr error
	}{
		{
			name: "空ID列表不查数据库",
			mock: func(t *testing.T) *sql.DB {
				mockDB, _, err := sqlmock.New()
				require.NoError(t, err)
				return mockDB
			},
		},
		{
			name: "批量查找",
			mock: func(t *testing.T) *sql.DB {
				mockDB, mock, err := sqlmock.New()
				require.NoError(t, err)
				rows := sqlmock.NewRows([]string{"id", "nickname"}).
					AddRow(1, "tom").
					AddRow(2, "jerry")
				mock.ExpectQuery("SELECT \\* FROM `users` WHERE id IN .*").
					WillReturnRows(rows)
				return mockDB
			},
			ids:     []int64{1, 2},
			wantLen: 2,
		},
		{
			name: "数据库错误",
			mock: func(t *testing.T) *sql.DB {
				mockDB, mock, err := sqlmock.New()
				require.NoError(t, err)
				mock.ExpectQuery("SELECT \\* FROM `users` WHERE id IN .*").
					WillReturnError(errors.New("数据库错误"))
				return mockDB
			},
			ids:     []int64{1},
			wantErr: errors.New("数据库错误"),
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			d := NewGORMUserDAO(newTestDB(t, tc.mock(t)))
			us, err := d.FindByIds(context.Background(), tc.ids)
			assert.Equal(t, tc.wantErr, err)
			assert.Len(t, us, tc.wantLen)
		})
	}
}

func TestGORMUserDAO_UpdateNonZeroFields(t *testing.T) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	mock.ExpectExec("UPDATE `users` SET .*").
		WillReturnResult(sqlmock.NewResult(0, 1))
	d := NewGORMUserDAO(newTestDB(t, mockDB))
	err = d.UpdateNonZeroFields(context.Background(), User{Id: 1, Nickname: "tom", IsAdmin: true})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
