package messaging

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/segmentio/kafka-go"

	"github.com/cypherlabdev/edge-finder-service/internal/models"
	"github.com/cypherlabdev/edge-finder-service/internal/service"
)

// KafkaConsumer consumes offer snapshots from Kafka and runs edge detection on them
type KafkaConsumer struct {
	reader    *kafka.Reader
	processor service.SnapshotProcessor
	logger    zerolog.Logger
}

// KafkaConsumerConfig holds Kafka consumer configuration
type KafkaConsumerConfig struct {
	Brokers []string // e.g., ["localhost:9092"]
	Topic   string   // e.g., "offer_snapshots"
	GroupID string   // e.g., "edge-finder"
}

// NewKafkaConsumer creates a new Kafka consumer
func NewKafkaConsumer(
	config KafkaConsumerConfig,
	processor service.SnapshotProcessor,
	logger zerolog.Logger,
) *KafkaConsumer {
	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers:        config.Brokers,
		Topic:          config.Topic,
		GroupID:        config.GroupID,
		MinBytes:       1e3,  // 1KB
		MaxBytes:       10e6, // 10MB
		CommitInterval: 1000, // Commit every 1 second
	})

	return &KafkaConsumer{
		reader:    reader,
		processor: processor,
		logger:    logger.With().Str("component", "kafka_consumer").Logger(),
	}
}

// Start begins consuming messages from Kafka
func (c *KafkaConsumer) Start(ctx context.Context) error {
	c.logger.Info().
		Str("topic", c.reader.Config().Topic).
		Str("group_id", c.reader.Config().GroupID).
		Msg("started consuming from Kafka")

	for {
		select {
		case <-ctx.Done():
			c.logger.Info().Msg("stopping Kafka consumer")
			return nil

		default:
			msg, err := c.reader.FetchMessage(ctx)
			if err != nil {
				if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
					return nil
				}
				c.logger.Error().Err(err).Msg("failed to fetch message")
				continue
			}

			if err := c.processMessage(ctx, msg); err != nil {
				c.logger.Error().
					Err(err).
					Int64("offset", msg.Offset).
					Str("key", string(msg.Key)).
					Msg("failed to process message")
				// Don't commit if processing failed
				continue
			}

			if err := c.reader.CommitMessages(ctx, msg); err != nil {
				c.logger.Error().Err(err).Msg("failed to commit message")
			}
		}
	}
}

// processMessage decodes one snapshot and runs a computation pass over it
func (c *KafkaConsumer) processMessage(ctx context.Context, msg kafka.Message) error {
	var snapshot models.OfferSnapshot
	if err := json.Unmarshal(msg.Value, &snapshot); err != nil {
		return fmt.Errorf("failed to unmarshal message: %w", err)
	}

	c.logger.Debug().
		Int("offer_count", len(snapshot.Offers)).
		Int("match_count", len(snapshot.Matches)).
		Str("batch_id", snapshot.BatchID).
		Msg("processing offer snapshot")

	report, err := c.processor.ProcessSnapshot(ctx, &snapshot)
	if err != nil {
		return fmt.Errorf("failed to process snapshot: %w", err)
	}

	c.logger.Info().
		Int("offer_count", len(snapshot.Offers)).
		Int("edge_count", len(report.Edges)).
		Str("batch_id", report.BatchID).
		Msg("processed offer snapshot")

	return nil
}

// Close closes the Kafka reader
func (c *KafkaConsumer) Close() error {
	return c.reader.Close()
}
