package analytics

import (
	"context"
	"encoding/json"
	"time"

	"github.com/segmentio/kafka-go"
)

// SearchEvent is a compact record of one search interaction.
type SearchEvent struct {
	Query       string    `json:"query"`
	Mode        string    `json:"mode"`
	City        string    `json:"city"`
	ResultCount int       `json:"result_count"`
	LatencyMs   int64     `json:"latency_ms"`
	CreatedAt   time.Time `json:"created_at"`
}

type Publisher interface {
	PublishSearch(ctx context.Context, event SearchEvent) error
}

type KafkaPublisher struct {
	Writer *kafka.Writer
}

func NewKafkaPublisher(writer *kafka.Writer) *KafkaPublisher {
	return &KafkaPublisher{Writer: writer}
}

func (p *KafkaPublisher) PublishSearch(ctx context.Context, event SearchEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}
	return p.Writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(event.Mode),
		Value: payload,
	})
}

// NopPublisher is used when no broker is configured.
type NopPublisher struct{}

func (NopPublisher) PublishSearch(context.Context, SearchEvent) error { return nil }
