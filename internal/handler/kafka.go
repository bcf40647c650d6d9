package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/vendyafrica/vendly-sub001/internal/config"
	"github.com/vendyafrica/vendly-sub001/internal/events"

	"github.com/go-playground/validator/v10"
	"github.com/segmentio/kafka-go"
)

type EventDispatcher interface {
	Emit(ctx context.Context, evt events.Event) error
}

type kafkaHandler struct {
	dlq        *kafka.Writer
	reader     *kafka.Reader
	logger     *slog.Logger
	validate   *validator.Validate
	dispatcher EventDispatcher
}

func NewKafkaHandler(logger *slog.Logger, cfg config.Kafka, dispatcher EventDispatcher) *kafkaHandler {
	return &kafkaHandler{
		logger: logger.With(slog.String("handler", "kafka")),
		reader: kafka.NewReader(kafka.ReaderConfig{
			Brokers: cfg.Brokers,
			GroupID: cfg.GroupID,
			Topic:   cfg.Topic,
			MaxWait: cfg.ReaderMaxWait,
		}),
		dlq: &kafka.Writer{
			Addr:         kafka.TCP(cfg.Brokers...),
			Balancer:     &kafka.LeastBytes{},
			BatchTimeout: cfg.BatchTimeout,
		},
		validate:   validator.New(),
		dispatcher: dispatcher,
	}
}

func (h *kafkaHandler) Consume(ctx context.Context) {
	for {
		m, err := h.reader.FetchMessage(ctx)
		if err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, context.Canceled) {
				break
			}
			h.logger.Error("failed to fetch message", slog.Any("error", err))
			continue
		}

		if err := h.handleEvent(ctx, m); err != nil {
			h.logger.Error("failed to handle event", slog.Any("error", err))
			eventsFailed.Inc()

			// The writer library retries internally.
			if err := h.writeToDLQ(ctx, m); err != nil {
				h.logger.Error("failed to write event to DLQ", slog.Any("error", err))
				continue
			}
			eventsDLQ.Inc()
		} else {
			eventsProcessed.Inc()
		}

		if err := h.reader.CommitMessages(ctx, m); err != nil {
			h.logger.Error("failed to commit message", slog.Any("error", err))
			commitErrors.Inc()
		}
	}
}

func (h *kafkaHandler) handleEvent(ctx context.Context, m kafka.Message) error {
	var evt events.Event
	if err := json.Unmarshal(m.Value, &evt); err != nil {
		return fmt.Errorf("failed to unmarshal event: %w", err)
	}

	if err := h.validate.Struct(evt); err != nil {
		return fmt.Errorf("invalid event data: %w", err)
	}

	return h.dispatcher.Emit(ctx, evt)
}

func (h *kafkaHandler) writeToDLQ(ctx context.Context, m kafka.Message) error {
	m.Topic = fmt.Sprintf("%s-dlq", m.Topic)
	return h.dlq.WriteMessages(ctx, m)
}

func (h *kafkaHandler) Close() error {
	if err := h.reader.Close(); err != nil {
		return err
	}
	return h.dlq.Close()
}
