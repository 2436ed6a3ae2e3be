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

package user

import (
	"sync"

	"github.com/ecodeclub/chatter/internal/user/internal/repository"
	"github.com/ecodeclub/chatter/internal/user/internal/repository/cache"
	"github.com/ecodeclub/chatter/internal/user/internal/repository/dao"
	"github.com/ecodeclub/chatter/internal/user/internal/service"
	"github.com/ecodeclub/chatter/internal/user/internal/web"
	"github.com/ecodeclub/ecache"
	"github.com/ego-component/egorm"
	"github.com/google/wire"
)

var ProviderSet = wire.NewSet(
	web.NewHandler,
	cache.NewUserECache,
	initUserDAO,
	service.NewUserService,
	repository.NewCachedUserRepository)

func InitModule(db *egorm.Component, ec ecache.Cache) *Module {
	wire.Build(
		ProviderSet,
		wire.Struct(new(Module), "*"),
	)
	return new(Module)
}

var once = &sync.Once{}

func initUserDAO(db *egorm.Component) dao.UserDAO {
	once.Do(func() {
		err := dao.InitTables(db)
		if err != nil {
			panic(err)
		}
	})
	return dao.NewGORMUserDAO(db)
}
