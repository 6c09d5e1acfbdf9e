package event

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"reputation/config"
)

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// Producer publishes rating events to Kafka. A nil *Producer drops events,
// which is how the service runs without brokers configured.
type Producer struct {
	writer messageWriter
	topic  string
	logger *zap.Logger
}

func NewProducer(cfg config.KafkaConfig, logger *zap.Logger) *Producer {
	w := &kafka.Writer{
		Addr:         kafka.TCP(cfg.Brokers...),
		Balancer:     &kafka.Hash{},
		BatchTimeout: 10 * time.Millisecond,
		RequiredAcks: kafka.RequireAll,
	}

	return &Producer{
		writer: w,
		topic:  cfg.Topic,
		logger: logger,
	}
}

// Publish keys messages by provider so one provider's events stay ordered.
func (p *Producer) Publish(ctx context.Context, evt *Event) error {
	if p == nil || p.writer == nil {
		return nil
	}

	data, err := json.Marshal(evt)
	if err != nil {
		return fmt.Errorf("ошибка сериализации события: %w", err)
	}

	msg := kafka.Message{
		Topic: p.topic,
		Key:   []byte(fmt.Sprintf("provider-%d", evt.ProviderID)),
		Value: data,
		Headers: []kafka.Header{
			{Key: "event_type", Value: []byte(evt.Type)},
			{Key: "source", Value: []byte(evt.Source)},
		},
	}

	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("ошибка публикации события %s: %w", evt.Type, err)
	}

	p.logger.Debug("событие опубликовано",
		zap.String("topic", p.topic),
		zap.String("type", evt.Type),
		zap.String("id", evt.ID))

	return nil
}

func (p *Producer) Close() error {
	if p == nil || p.writer == nil {
		return nil
	}
	return p.writer.Close()
}
