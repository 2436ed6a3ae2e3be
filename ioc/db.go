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

package ioc

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/ecodeclub/chatter/internal/pkg/database"
	"github.com/ecodeclub/ekit/retry"
	"github.com/ego-component/egorm"
	"github.com/gotomicro/ego/core/econf"
	"github.com/gotomicro/ego/core/elog"
)

func InitDB() *egorm.Component {
	if err := WaitForDBSetup(context.Background(), econf.GetString("mysql.dsn")); err != nil {
		panic(err)
	}
	db := egorm.Load("mysql").Build()
	err := database.NewGormTracingPlugin().Initialize(db)
	if err != nil {
		panic(err)
	}
	return db
}

// WaitForDBSetup 本地和 CI 里 MySQL 往往比应用晚起来，按指数退避一直 ping 到通为止
func WaitForDBSetup(ctx context.Context, dsn string) error {
	sqlDB, err := sql.Open("mysql", dsn)
	if err != nil {
		return fmt.Errorf("打开数据库连接失败: %w", err)
	}
	defer sqlDB.Close()

	const (
		maxInterval = 10 * time.Second
		maxRetries  = 10
		pingTimeout = 5 * time.Second
	)
	strategy, err := retry.NewExponentialBackoffRetryStrategy(time.Second, maxInterval, maxRetries)
	if err != nil {
		return err
	}
	logger := elog.DefaultLogger.With(elog.FieldComponent("ioc.db"))
	for {
		pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
		err = sqlDB.PingContext(pingCtx)
		cancel()
		if err == nil {
			return nil
		}
		next, ok := strategy.Next()
		if !ok {
			return fmt.Errorf("等待数据库就绪超过重试次数: %w", err)
		}
		logger.Warn("数据库还没有就绪", elog.FieldErr(err), elog.Duration("retryAfter", next))
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(next):
		}
	}
}
