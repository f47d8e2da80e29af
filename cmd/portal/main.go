package main

import (
	"context"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/veloria/warranty-portal/internal/db"
	"github.com/veloria/warranty-portal/internal/logger"
	"github.com/veloria/warranty-portal/internal/notify"
	"github.com/veloria/warranty-portal/internal/repository/postgresql"
	"github.com/veloria/warranty-portal/internal/server"
	"github.com/veloria/warranty-portal/internal/storage"
)

func main() {
	log := logger.New()
	defer func() { _ = log.Sync() }()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	db.LoadEnv()

	port := envOr("SERVER_PORT", "9000")
	distDir := envOr("DIST_DIR", "dist")
	topic := envOr("KAFKA_TOPIC", "claim-notifications")

	var (
		store     server.Storage
		publisher *notify.Publisher
	)

	if path := os.Getenv("FILE_STORAGE"); path != "" {
		// Local development mode: single JSON file, no broker, no outbox.
		fileStore, err := storage.NewFileStorage(path)
		if err != nil {
			log.Fatal("Failed to open file storage", zap.String("path", path), zap.Error(err))
		}
		store = fileStore
		log.Info("Using file storage", zap.String("path", path))
	} else {
		database, err := db.NewDb(ctx)
		if err != nil {
			log.Fatal("Database init error", zap.Error(err))
		}
		defer database.Close()

		claimRepo := postgresql.NewClaimRepo(database)
		returnRepo := postgresql.NewReturnRepo(database)
		outboxRepo := postgresql.NewOutboxTaskRepo()

		store = storage.NewPostgresStorage(database, claimRepo, returnRepo, outboxRepo, topic, log)

		var producer notify.Producer
		if brokers := os.Getenv("KAFKA_BROKERS"); brokers != "" {
			producer = notify.NewKafkaProducer(strings.Split(brokers, ","))
			log.Info("Using Kafka producer", zap.String("brokers", brokers), zap.String("topic", topic))
		} else {
			producer = notify.NewConsoleProducer(log)
			log.Info("KAFKA_BROKERS not set, notifications are logged only")
		}

		publisher = notify.NewPublisher(database, outboxRepo, producer, notify.PublisherConfig{
			PollInterval: 2 * time.Second,
			BatchSize:    20,
			MaxAttempts:  5,
		}, log)
	}

	srv := server.New(store, distDir, log)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return srv.Run(port)
	})
	if publisher != nil {
		g.Go(func() error {
			publisher.Run(gctx)
			return nil
		})
	}
	g.Go(func() error {
		<-gctx.Done()
		log.Info("Shutting down...")

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer shutdownCancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Error("Server shutdown failed", zap.Error(err))
		}
		if publisher != nil {
			publisher.Shutdown()
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		log.Fatal("Portal exited with error", zap.Error(err))
	}
	log.Info("Stopped")
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
