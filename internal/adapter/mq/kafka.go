package mq

import (
	"context"
	"encoding/json"
	"time"

	"github.com/openex/ordergate/internal/core/domain"
	"github.com/segmentio/kafka-go"
)

// Queue publishes engine commands over kafka topics. Internal queues map to
// their topic name directly; third-party engine channels use the driver id as
// the topic. Two writers: acked for commands that must reach the broker,
// unacked for transient ones the engine reconciles from persisted state.
type Queue struct {
	acked   *kafka.Writer
	unacked *kafka.Writer
}

func NewQueue(brokers []string) *Queue {
	return &Queue{
		acked: &kafka.Writer{
			Addr:         kafka.TCP(brokers...),
			RequiredAcks: kafka.RequireAll,
			Async:        false,
			BatchTimeout: 10 * time.Millisecond,
		},
		unacked: &kafka.Writer{
			Addr:         kafka.TCP(brokers...),
			RequiredAcks: kafka.RequireNone,
			Async:        false,
			BatchTimeout: 10 * time.Millisecond,
		},
	}
}

func (q *Queue) write(ctx context.Context, w *kafka.Writer, topic string, key []byte, payload any) error {
	value, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	return w.WriteMessages(ctx, kafka.Message{
		Topic: topic,
		Key:   key,
		Value: value,
	})
}

func commandKey(cmd domain.Command) []byte {
	if id, ok := cmd.Order["uuid"].(string); ok {
		return []byte(id)
	}
	return nil
}

func (q *Queue) Enqueue(ctx context.Context, queue string, cmd domain.Command) error {
	return q.write(ctx, q.acked, queue, commandKey(cmd), cmd)
}

func (q *Queue) EnqueueTransient(ctx context.Context, queue string, cmd domain.Command) error {
	return q.write(ctx, q.unacked, queue, commandKey(cmd), cmd)
}

func (q *Queue) Publish(ctx context.Context, driver string, cmd domain.EngineCommand) error {
	return q.write(ctx, q.acked, driver, nil, cmd)
}

func (q *Queue) Close() error {
	if err := q.acked.Close(); err != nil {
		return err
	}
	return q.unacked.Close()
}
