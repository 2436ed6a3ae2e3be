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

	"github.com/ecodeclub/chatter/internal/comment/internal/errs"
	"github.com/ecodeclub/chatter/internal/comment/internal/service"
	"github.com/ecodeclub/chatter/internal/pkg/content"
	"github.com/ecodeclub/ginx"
)

var systemErrorResult = ginx.Result{
	Code: errs.SystemError.Code,
	Msg:  errs.SystemError.Msg,
}

// errorResult 业务错误直接返回给前端，其余的交给 ginx 记录日志
func errorResult(err error) (ginx.Result, error) {
	var ve *content.ValidationError
	switch {
	case errors.As(err, &ve), errors.Is(err, service.ErrInvalidReason):
		return result(errs.ValidationError, err), nil
	case errors.Is(err, service.ErrNotFound), errors.Is(err, service.ErrParentNotFound):
		return result(errs.NotFoundError, err), nil
	case errors.Is(err, service.ErrNotAuthor),
		errors.Is(err, service.ErrForbidden),
		errors.Is(err, service.ErrUnauthenticated):
		return result(errs.ForbiddenError, err), nil
	case errors.Is(err, service.ErrInvalidTarget):
		return result(errs.InvalidTarget, err), nil
	case errors.Is(err, service.ErrConflict):
		return result(errs.ConflictError, err), nil
	default:
		return systemErrorResult, err
	}
}

func result(code errs.ErrorCode, err error) ginx.Result {
	return ginx.Result{
		Code: code.Code,
		Msg:  err.Error(),
	}
}
