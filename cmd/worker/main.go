package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/khoahotran/portfolio-api/adapters/event"
	"github.com/khoahotran/portfolio-api/adapters/media_storage"
	"github.com/khoahotran/portfolio-api/adapters/persistence"
	assetUC "github.com/khoahotran/portfolio-api/internal/application/usecase/asset"
	"github.com/khoahotran/portfolio-api/internal/config"
	"github.com/khoahotran/portfolio-api/pkg/logger"
)

func main() {
	fmt.Println("Starting Portfolio Asset Worker...")

	// Configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "FATAL: cannot load config: %v\n", err)
		os.Exit(1)
	}

	appLogger := logger.NewZapLogger(cfg.App.Env)
	defer appLogger.Sync()

	if len(cfg.Kafka.Brokers) == 0 {
		appLogger.Fatal("Kafka brokers are required for the worker", errors.New("kafka.brokers is empty"))
	}

	// Database
	dbPool, err := persistence.NewPostgresPool(cfg, appLogger)
	if err != nil {
		appLogger.Fatal("Cannot connect Postgres", err)
	}
	defer dbPool.Close()

	// Storage
	uploader, err := media_storage.NewUploader(cfg, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to initialize uploader", err)
	}

	// Repositories
	aboutRepo := persistence.NewPostgresAboutRepo(dbPool, appLogger)

	// Worker Use Case
	cleanupUC := assetUC.NewCleanupAssetUseCase(aboutRepo, uploader, appLogger)

	// Kafka Consumer
	consumer := kafka.NewReader(kafka.ReaderConfig{
		Brokers:  cfg.Kafka.Brokers,
		Topic:    event.TopicAssetEvents,
		GroupID:  cfg.Kafka.GroupID,
		MinBytes: 10e3,
		MaxBytes: 10e6,
	})
	defer consumer.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	appLogger.Info("Worker listening", zap.String("topic", event.TopicAssetEvents), zap.String("group_id", cfg.Kafka.GroupID))

	for {
		msg, err := consumer.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				appLogger.Info("Worker stopping")
				return
			}
			appLogger.Error("Failed to read message from Kafka", err)
			continue
		}

		l := appLogger.With(zap.String("topic", msg.Topic), zap.String("key", string(msg.Key)))

		var payload event.AssetEventPayload
		if err := json.Unmarshal(msg.Value, &payload); err != nil {
			l.Error("Failed to unmarshal event, skipping", err)
			commitMessage(consumer, msg, l)
			continue
		}

		if err := cleanupUC.Execute(ctx, payload); err != nil {
			l.Error("Failed to process asset event", err, zap.String("event_type", string(payload.EventType)))
			continue
		}

		commitMessage(consumer, msg, l)
	}
}

func commitMessage(consumer *kafka.Reader, msg kafka.Message, log logger.Logger) {
	if err := consumer.CommitMessages(context.Background(), msg); err != nil {
		log.Error("Failed to commit message", err)
	}
}
