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

package web

import (
	"errors"

	"github.com/ecodeclub/chatter/internal/interactive/internal/errs"
	"github.com/ecodeclub/chatter/internal/interactive/internal/service"
	"github.com/ecodeclub/ginx"
)

var systemErrorResult = ginx.Result{
	Code: errs.SystemError.Code,
	Msg:  errs.SystemError.Msg,
}

func errorResult(err error) (ginx.Result, error) {
	switch {
	case errors.Is(err, service.ErrInvalidTarget):
		return ginx.Result{Code: errs.InvalidTarget.Code, Msg: errs.InvalidTarget.Msg}, nil
	case errors.Is(err, service.ErrUnauthenticated):
		return ginx.Result{Code: errs.Unauthorized.Code, Msg: errs.Unauthorized.Msg}, nil
	case errors.Is(err, service.ErrConflict):
		return ginx.Result{Code: errs.ConflictError.Code, Msg: errs.ConflictError.Msg}, nil
	default:
		return systemErrorResult, err
	}
}
