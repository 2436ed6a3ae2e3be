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

package startup

import (
	"github.com/ecodeclub/chatter/internal/comment"
	"github.com/ecodeclub/chatter/internal/pkg/content"
	testioc "github.com/ecodeclub/chatter/internal/test/ioc"
	"github.com/ecodeclub/chatter/internal/user"
	"github.com/google/wire"
)

func InitModule(userModule *user.Module) (*comment.Module, error) {
	wire.Build(
		testioc.BaseSet,
		initValidator,
		comment.InitModule,
	)
	return new(comment.Module), nil
}

// initValidator 测试用的违禁词表
func initValidator() *content.Validator {
	return content.NewValidator(content.Config{
		MaxLength:   200,
		BannedWords: []string{"spam", "idiot"},
	})
}
