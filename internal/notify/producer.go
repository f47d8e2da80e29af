//go:generate mockgen -source ./producer.go -destination=./mocks/producer.go -package=mock_notify
package notify

import (
	"context"
	"fmt"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

type Producer interface {
	SendMessage(ctx context.Context, topic string, key []byte, value []byte) error
	Close() error
}

// KafkaProducer writes notification payloads to the broker.
type KafkaProducer struct {
	writer *kafka.Writer
}

func NewKafkaProducer(brokers []string) *KafkaProducer {
	return &KafkaProducer{
		writer: &kafka.Writer{
			Addr:     kafka.TCP(brokers...),
			Balancer: &kafka.LeastBytes{},
		},
	}
}

func (p *KafkaProducer) SendMessage(ctx context.Context, topic string, key []byte, value []byte) error {
	err := p.writer.WriteMessages(ctx, kafka.Message{
		Topic: topic,
		Key:   key,
		Value: value,
	})
	if err != nil {
		return fmt.Errorf("failed to write message to topic %s: %w", topic, err)
	}
	return nil
}

func (p *KafkaProducer) Close() error {
	return p.writer.Close()
}

// ConsoleProducer stands in for Kafka during local development.
type ConsoleProducer struct {
	logger *zap.Logger
}

func NewConsoleProducer(logger *zap.Logger) *ConsoleProducer {
	return &ConsoleProducer{logger: logger}
}

func (p *ConsoleProducer) SendMessage(ctx context.Context, topic string, key []byte, value []byte) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}
	p.logger.Info("Notification (console producer)",
		zap.String("topic", topic),
		zap.ByteString("key", key),
		zap.ByteString("value", value))
	return nil
}

func (p *ConsoleProducer) Close() error {
	return nil
}
