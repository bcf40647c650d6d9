package handler

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"

	"github.com/vendyafrica/vendly-sub001/internal/whatsapp"
	"github.com/vendyafrica/vendly-sub001/pkg/utils"

	"github.com/go-chi/chi/v5"
)

type QueueVerifier interface {
	Verify(signatureHeader string, body []byte) error
}

type MessageSender interface {
	Send(ctx context.Context, msg whatsapp.OutboundMessage) error
}

// QueueHandler is the delivery queue's own callback: the broker posts each
// queued send job back here, signed, and the handler performs the actual
// provider call.
type QueueHandler struct {
	logger   *slog.Logger
	verifier QueueVerifier
	sender   MessageSender
}

func NewQueueHandler(logger *slog.Logger, verifier QueueVerifier, sender MessageSender) *QueueHandler {
	return &QueueHandler{
		logger:   logger.With(slog.String("handler", "queue")),
		verifier: verifier,
		sender:   sender,
	}
}

func (h *QueueHandler) Init(r chi.Router) {
	r.Post("/webhooks/queue/whatsapp", h.Deliver)
}

func (h *QueueHandler) Deliver(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	body, err := io.ReadAll(r.Body)
	if err != nil {
		utils.WriteError(w, "failed to read body", http.StatusBadRequest)
		return
	}

	if err := h.verifier.Verify(r.Header.Get("Upstash-Signature"), body); err != nil {
		h.logger.WarnContext(ctx, "rejected queue delivery", slog.Any("error", err))
		webhooksTotal.WithLabelValues("queue", outcomeRejected).Inc()
		utils.WriteError(w, "invalid signature", http.StatusForbidden)
		return
	}

	var msg whatsapp.OutboundMessage
	if err := json.Unmarshal(body, &msg); err != nil || msg.To == "" {
		webhooksTotal.WithLabelValues("queue", outcomeMalformed).Inc()
		utils.WriteError(w, "invalid payload", http.StatusBadRequest)
		return
	}

	// A failed send answers non-2xx on purpose: the broker owns the retry
	// and backoff policy for deliveries.
	if err := h.sender.Send(ctx, msg); err != nil {
		h.logger.ErrorContext(ctx, "failed to deliver queued message", slog.String("to", msg.To), slog.Any("error", err))
		webhooksTotal.WithLabelValues("queue", outcomeError).Inc()
		utils.WriteError(w, "delivery failed", http.StatusBadGateway)
		return
	}

	webhooksTotal.WithLabelValues("queue", outcomeOK).Inc()
	utils.WriteJSON(w, map[string]string{"status": "delivered"}, http.StatusOK)
}
