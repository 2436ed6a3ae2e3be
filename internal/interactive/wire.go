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

//go:build wireinject

package interactive

import (
	"sync"

	"github.com/ecodeclub/chatter/internal/interactive/internal/events"
	"github.com/ecodeclub/chatter/internal/interactive/internal/job"
	"github.com/ecodeclub/chatter/internal/interactive/internal/repository"
	"github.com/ecodeclub/chatter/internal/interactive/internal/repository/dao"
	"github.com/ecodeclub/chatter/internal/interactive/internal/service"
	"github.com/ecodeclub/chatter/internal/interactive/internal/web"
	"github.com/ecodeclub/chatter/internal/pkg/snowflake"
	"github.com/ecodeclub/mq-api"
	"github.com/ego-component/egorm"
	"github.com/google/wire"
)

func InitModule(db *egorm.Component, q mq.MQ, ids snowflake.Generator) (*Module, error) {
	wire.Build(
		initInteractiveDAO,
		initPageViewDAO,
		repository.NewInteractiveRepository,
		repository.NewPageViewRepository,
		events.NewPageViewEventProducer,
		events.NewPageViewConsumer,
		service.NewService,
		service.NewPageViewService,
		job.NewRefreshStatsJob,
		web.NewHandler,
		wire.Struct(new(Module), "*"),
	)
	return new(Module), nil
}

var once = &sync.Once{}

func initTables(db *egorm.Component) error {
	var err error
	once.Do(func() {
		err = dao.InitTables(db)
	})
	return err
}

func initInteractiveDAO(db *egorm.Component) (dao.InteractiveDAO, error) {
	if err := initTables(db); err != nil {
		return nil, err
	}
	return dao.NewInteractiveDAO(db), nil
}

func initPageViewDAO(db *egorm.Component) (dao.PageViewDAO, error) {
	if err := initTables(db); err != nil {
		return nil, err
	}
	return dao.NewPageViewDAO(db), nil
}
