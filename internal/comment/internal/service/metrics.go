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

package service

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var operationCounter = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: "chatter",
		Subsystem: "comment",
		Name:      "operations_total",
		Help:      "评论相关操作的次数",
	},
	[]string{"op", "result"},
)

func record(op string, err error) {
	result := "ok"
	if err != nil {
		result = "error"
	}
	operationCounter.WithLabelValues(op, result).Inc()
}
