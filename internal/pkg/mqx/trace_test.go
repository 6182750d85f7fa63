package mqx

import (
	"context"
	"testing"

	mq "github.com/ecodeclub/mq-api"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

type fakeMQ struct {
	producer *fakeMQProducer
}

func (f *fakeMQ) CreateTopic(ctx context.Context, topic string, partitions int) error {
	return nil
}

func (f *fakeMQ) DeleteTopics(ctx context.Context, topics ...string) error {
	return nil
}

func (f *fakeMQ) Producer(topic string) (mq.Producer, error) {
	return f.producer, nil
}

func (f *fakeMQ) Consumer(topic string, groupID string) (mq.Consumer, error) {
	return nil, nil
}

func (f *fakeMQ) Close() error {
	return nil
}

type fakeMQProducer struct {
	msgs []*mq.Message
}

func (f *fakeMQProducer) Produce(ctx context.Context, m *mq.Message) (*mq.ProducerResult, error) {
	f.msgs = append(f.msgs, m)
	return &mq.ProducerResult{}, nil
}

func (f *fakeMQProducer) ProduceWithPartition(ctx context.Context, m *mq.Message, partition int) (*mq.ProducerResult, error) {
	f.msgs = append(f.msgs, m)
	return &mq.ProducerResult{}, nil
}

func (f *fakeMQProducer) Close() error {
	return nil
}

func TestTraceMQ_Produce(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	old := otel.GetTracerProvider()
	otel.SetTracerProvider(tp)
	t.Cleanup(func() {
		otel.SetTracerProvider(old)
	})

	fp := &fakeMQProducer{}
	q := NewTraceMQ(&fakeMQ{producer: fp})
	p, err := q.Producer("email_processed_events")
	require.NoError(t, err)

	_, err = p.Produce(context.Background(), &mq.Message{Value: []byte("hello")})
	require.NoError(t, err)

	require.Len(t, fp.msgs, 1)
	spans := recorder.Ended()
	require.Len(t, spans, 1)
	assert.Equal(t, "mq.produce", spans[0].Name())
	assert.Contains(t, spans[0].Attributes(),
		attribute.String("messaging.topic", "email_processed_events"))
	assert.Contains(t, spans[0].Attributes(),
		attribute.Int("messaging.message_length", 5))
}
