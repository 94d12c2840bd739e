package messaging

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"

	"github.com/rs/zerolog"
	"github.com/segmentio/kafka-go"

	"github.com/cypherlabdev/edge-finder-service/internal/models"
	"github.com/cypherlabdev/edge-finder-service/internal/service"
)

// batchIDHeader carries the computation pass an edge message belongs to
const batchIDHeader = "batch_id"

// messageWriter is the subset of *kafka.Writer used by the producer
type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// KafkaProducer publishes detected edges to Kafka, one message per edge
type KafkaProducer struct {
	writer messageWriter
	topic  string
	logger zerolog.Logger
}

// KafkaProducerConfig holds Kafka producer configuration
type KafkaProducerConfig struct {
	Brokers []string // e.g., ["localhost:9092"]
	Topic   string   // e.g., "edges"
}

// NewKafkaProducer creates a new Kafka producer. Messages are keyed by edge id
// so repeated detections of the same edge land on the same partition.
func NewKafkaProducer(config KafkaProducerConfig, logger zerolog.Logger) *KafkaProducer {
	writer := &kafka.Writer{
		Addr:         kafka.TCP(config.Brokers...),
		Topic:        config.Topic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireAll,
	}

	return &KafkaProducer{
		writer: writer,
		topic:  config.Topic,
		logger: logger.With().Str("component", "kafka_producer").Logger(),
	}
}

// Publish writes every edge of a pass. An empty pass writes nothing.
func (p *KafkaProducer) Publish(ctx context.Context, batchID string, edges models.Edges) error {
	if len(edges) == 0 {
		return nil
	}

	msgs, err := buildMessages(batchID, edges)
	if err != nil {
		return err
	}

	if err := p.writer.WriteMessages(ctx, msgs...); err != nil {
		return fmt.Errorf("failed to write edges to %s: %w", p.topic, err)
	}

	p.logger.Debug().
		Str("topic", p.topic).
		Str("batch_id", batchID).
		Int("count", len(msgs)).
		Msg("published edges")

	return nil
}

// buildMessages encodes edges as Kafka messages ordered by edge id
func buildMessages(batchID string, edges models.Edges) ([]kafka.Message, error) {
	ids := make([]string, 0, len(edges))
	for id := range edges {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	msgs := make([]kafka.Message, 0, len(ids))
	for _, id := range ids {
		value, err := json.Marshal(edges[id])
		if err != nil {
			return nil, fmt.Errorf("failed to marshal edge %s: %w", id, err)
		}
		msgs = append(msgs, kafka.Message{
			Key:   []byte(id),
			Value: value,
			Headers: []kafka.Header{
				{Key: batchIDHeader, Value: []byte(batchID)},
			},
		})
	}
	return msgs, nil
}

// Close flushes and closes the Kafka writer
func (p *KafkaProducer) Close() error {
	return p.writer.Close()
}

var _ service.Publisher = (*KafkaProducer)(nil)
