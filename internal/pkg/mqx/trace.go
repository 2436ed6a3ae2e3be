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

package mqx

import (
	"context"

	"github.com/ecodeclub/mq-api"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const instrumentationName = "github.com/ecodeclub/chatter/internal/pkg/mqx"

// TraceMq 只给发送打点，消费端在各自的业务日志里记录
type TraceMq struct {
	mq.MQ
	tracer trace.Tracer
}

func NewTraceMq(q mq.MQ) *TraceMq {
	return newTraceMq(q, otel.GetTracerProvider().Tracer(instrumentationName))
}

func newTraceMq(q mq.MQ, tracer trace.Tracer) *TraceMq {
	return &TraceMq{MQ: q, tracer: tracer}
}

func (t *TraceMq) Producer(topic string) (mq.Producer, error) {
	p, err := t.MQ.Producer(topic)
	if err != nil {
		return nil, err
	}
	return &traceProducer{Producer: p, topic: topic, tracer: t.tracer}, nil
}

type traceProducer struct {
	mq.Producer
	topic  string
	tracer trace.Tracer
}

func (t *traceProducer) Produce(ctx context.Context, m *mq.Message) (*mq.ProducerResult, error) {
	ctx, span := t.start(ctx, m, -1)
	defer span.End()
	res, err := t.Producer.Produce(ctx, m)
	t.end(span, err)
	return res, err
}

func (t *traceProducer) ProduceWithPartition(ctx context.Context, m *mq.Message, partition int) (*mq.ProducerResult, error) {
	ctx, span := t.start(ctx, m, partition)
	defer span.End()
	res, err := t.Producer.ProduceWithPartition(ctx, m, partition)
	t.end(span, err)
	return res, err
}

// start partition 小于 0 表示由 MQ 自己选分区
func (t *traceProducer) start(ctx context.Context, m *mq.Message, partition int) (context.Context, trace.Span) {
	attrs := []attribute.KeyValue{
		attribute.String("messaging.operation", "publish"),
		attribute.String("messaging.destination.name", t.topic),
	}
	if partition >= 0 {
		attrs = append(attrs, attribute.Int("messaging.destination.partition.id", partition))
	}
	if m != nil {
		attrs = append(attrs, attribute.Int("messaging.message.body.size", len(m.Value)))
	}
	return t.tracer.Start(ctx, t.topic+" publish",
		trace.WithSpanKind(trace.SpanKindProducer),
		trace.WithAttributes(attrs...))
}

func (t *traceProducer) end(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return
	}
	span.SetStatus(codes.Ok, "")
}
