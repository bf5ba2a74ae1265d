package event

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/segmentio/kafka-go"

	"github.com/khoahotran/portfolio-api/internal/config"
	"github.com/khoahotran/portfolio-api/pkg/logger"
)

const (
	TopicAssetEvents = "asset.events"
)

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type KafkaProducerClient struct {
	AssetEventsWriter messageWriter
	logger            logger.Logger
}

func NewKafkaProducerClient(cfg config.Config, log logger.Logger) (*KafkaProducerClient, error) {
	brokers := cfg.Kafka.Brokers
	if len(brokers) == 0 {
		return nil, fmt.Errorf("config Kafka brokers not found")
	}

	assetWriter := &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  TopicAssetEvents,
		Balancer:               &kafka.LeastBytes{},
		AllowAutoTopicCreation: true,
	}

	log.Info("Initialize Kafka Producers successfully.")

	return &KafkaProducerClient{
		AssetEventsWriter: assetWriter,
		logger:            log,
	}, nil
}

// PublishAssetEvent writes one event keyed by the object's public id so all
// events for the same object land on the same partition.
func (c *KafkaProducerClient) PublishAssetEvent(ctx context.Context, payload AssetEventPayload) error {
	value, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal asset event: %w", err)
	}

	msg := kafka.Message{
		Key:   []byte(payload.PublicID),
		Value: value,
	}
	if err := c.AssetEventsWriter.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("write asset event: %w", err)
	}
	return nil
}

func (c *KafkaProducerClient) Close() {
	if c.AssetEventsWriter != nil {
		c.AssetEventsWriter.Close()
	}
	c.logger.Info("Closed Kafka Producers")
}

// NopPublisher drops every event. Used when no brokers are configured.
type NopPublisher struct{}

func (NopPublisher) PublishAssetEvent(context.Context, AssetEventPayload) error { return nil }
