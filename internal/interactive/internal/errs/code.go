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

package errs

var (
	SystemError    = ErrorCode{Code: 520001, Msg: "系统错误"}
	InvalidTarget  = ErrorCode{Code: 520002, Msg: "点赞对象不合法"}
	Unauthorized   = ErrorCode{Code: 520003, Msg: "需要登录"}
	ConflictError  = ErrorCode{Code: 520004, Msg: "操作冲突，请稍后重试"}
	InvalidViewURL = ErrorCode{Code: 520005, Msg: "访问地址不合法"}
)

type ErrorCode struct {
	Code int
	Msg  string
}
