package events

import (
	"context"
	"encoding/json"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// KafkaForwarder mirrors every dispatched event onto a Kafka topic as
// JSON, keyed by entity id so per-entity ordering is preserved.
type KafkaForwarder struct {
	writer *kafka.Writer
	logger *zap.Logger
}

// NewKafkaForwarder builds the forwarder. Returns nil when no brokers
// are configured; callers treat a nil forwarder as disabled.
func NewKafkaForwarder(brokers []string, topic string, logger *zap.Logger) *KafkaForwarder {
	if len(brokers) == 0 {
		return nil
	}
	writer := &kafka.Writer{
		Addr:     kafka.TCP(brokers...),
		Topic:    topic,
		Balancer: &kafka.Hash{},
	}
	return &KafkaForwarder{writer: writer, logger: logger}
}

// Register subscribes the forwarder to every event type.
func (f *KafkaForwarder) Register(dispatcher Dispatcher) {
	if f == nil || dispatcher == nil {
		return
	}
	for _, eventType := range AllEventTypes() {
		dispatcher.Subscribe(eventType, f.forward)
	}
}

func (f *KafkaForwarder) forward(ctx context.Context, event Event) error {
	data, err := json.Marshal(event)
	if err != nil {
		return err
	}
	err = f.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(event.EntityID),
		Value: data,
	})
	if err != nil {
		f.logger.Warn("kafka publish failed",
			zap.String("event_type", string(event.Type)),
			zap.Error(err))
	}
	return err
}

// Close flushes and closes the underlying writer.
func (f *KafkaForwarder) Close() error {
	if f == nil || f.writer == nil {
		return nil
	}
	return f.writer.Close()
}
