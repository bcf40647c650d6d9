package events

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/vendyafrica/vendly-sub001/internal/config"
	"github.com/vendyafrica/vendly-sub001/internal/entities"

	"github.com/segmentio/kafka-go"
)

// Event is the fire-and-forget handoff between a reconciler deciding to
// notify and the dispatcher actually notifying. It carries references, not
// the order itself; the consumer reloads the authoritative row.
type Event struct {
	Kind     entities.EventKind `json:"kind" validate:"required"`
	Role     entities.Role      `json:"role" validate:"required,oneof=seller buyer"`
	OrderID  string             `json:"order_id" validate:"required"`
	TenantID string             `json:"tenant_id" validate:"required"`
	Params   map[string]string  `json:"params,omitempty"`
}

// Sink accepts order events. The Kafka publisher below is the asynchronous
// implementation; the notification dispatcher itself is the in-line one
// used when no brokers are configured.
type Sink interface {
	Emit(ctx context.Context, evt Event) error
}

type KafkaPublisher struct {
	writer *kafka.Writer
	topic  string
}

func NewKafkaPublisher(cfg config.Kafka) *KafkaPublisher {
	return &KafkaPublisher{
		writer: &kafka.Writer{
			Addr:         kafka.TCP(cfg.Brokers...),
			Topic:        cfg.Topic,
			Balancer:     &kafka.LeastBytes{},
			BatchTimeout: cfg.BatchTimeout,
		},
		topic: cfg.Topic,
	}
}

func (p *KafkaPublisher) Emit(ctx context.Context, evt Event) error {
	value, err := json.Marshal(evt)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	// Keyed by order id so events for one order stay ordered per partition.
	err = p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(evt.OrderID),
		Value: value,
	})
	if err != nil {
		return fmt.Errorf("failed to publish event: %w", err)
	}
	return nil
}

func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}
