package main

import (
	"context"
	"encoding/json"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/veloria/warranty-portal/internal/db"
	"github.com/veloria/warranty-portal/internal/logger"
	"github.com/veloria/warranty-portal/internal/notify"
	"github.com/veloria/warranty-portal/internal/repository"
)

const groupID = "claim-mail-worker"

func main() {
	log := logger.New()
	defer func() { _ = log.Sync() }()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	db.LoadEnv()

	brokers := os.Getenv("KAFKA_BROKERS")
	if brokers == "" {
		brokers = "localhost:9092"
	}
	topic := os.Getenv("KAFKA_TOPIC")
	if topic == "" {
		topic = "claim-notifications"
	}

	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers:        strings.Split(brokers, ","),
		GroupID:        groupID,
		Topic:          topic,
		MinBytes:       10e3,
		MaxBytes:       10e6,
		CommitInterval: time.Second,
		MaxWait:        3 * time.Second,
	})
	defer func() {
		if err := reader.Close(); err != nil {
			log.Error("Error closing Kafka reader", zap.Error(err))
		}
	}()

	mailer := notify.NewMailer(
		os.Getenv("SMTP_HOST"),
		os.Getenv("SMTP_PORT"),
		os.Getenv("SMTP_FROM"),
		log,
	)

	log.Info("Mail worker started",
		zap.String("brokers", brokers),
		zap.String("topic", topic))

	for {
		select {
		case <-ctx.Done():
			log.Info("Shutdown signal received, stopping mail worker")
			return
		default:
			m, err := reader.ReadMessage(ctx)
			if err != nil {
				if ctx.Err() != nil {
					return
				}
				log.Error("Error reading message", zap.Error(err))
				time.Sleep(5 * time.Second)
				continue
			}

			var payload repository.NotificationPayload
			if err := json.Unmarshal(m.Value, &payload); err != nil {
				log.Error("Skipping malformed notification",
					zap.String("key", string(m.Key)),
					zap.Error(err))
				continue
			}

			if err := mailer.Send(payload); err != nil {
				log.Error("Failed to deliver notification",
					zap.String("kind", payload.Kind),
					zap.String("recipient", payload.Recipient),
					zap.Error(err))
				continue
			}

			log.Info("Notification delivered",
				zap.String("kind", payload.Kind),
				zap.String("recipient", payload.Recipient),
				zap.String("claim_id", payload.ClaimID))
		}
	}
}
