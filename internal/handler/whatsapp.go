package handler

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"

	"github.com/vendyafrica/vendly-sub001/internal/config"
	"github.com/vendyafrica/vendly-sub001/pkg/signature"
	"github.com/vendyafrica/vendly-sub001/pkg/utils"

	"github.com/go-chi/chi/v5"
)

type ChatService interface {
	HandleMessage(ctx context.Context, sender, text string)
}

type WhatsAppHandler struct {
	logger *slog.Logger
	cfg    config.WhatsApp
	svc    ChatService
}

func NewWhatsAppHandler(logger *slog.Logger, cfg config.WhatsApp, svc ChatService) *WhatsAppHandler {
	return &WhatsAppHandler{
		logger: logger.With(slog.String("handler", "whatsapp")),
		cfg:    cfg,
		svc:    svc,
	}
}

func (h *WhatsAppHandler) Init(r chi.Router) {
	r.Get("/webhooks/whatsapp", h.Verify)
	r.Post("/webhooks/whatsapp", h.Webhook)
}

// Verify answers the provider's subscription handshake by echoing
// hub.challenge when the verify token matches.
func (h *WhatsAppHandler) Verify(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	if q.Get("hub.mode") == "subscribe" && h.cfg.VerifyToken != "" && q.Get("hub.verify_token") == h.cfg.VerifyToken {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(q.Get("hub.challenge")))
		return
	}
	utils.WriteError(w, "verification failed", http.StatusForbidden)
}

// Webhook handles inbound chat messages. Signature failures are absorbed
// with a 200: a non-2xx here makes the provider hammer the endpoint with
// retries, which is worse than dropping a forged payload.
func (h *WhatsAppHandler) Webhook(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	body, err := io.ReadAll(r.Body)
	if err != nil {
		webhooksTotal.WithLabelValues("whatsapp", outcomeMalformed).Inc()
		w.WriteHeader(http.StatusOK)
		return
	}

	if !h.cfg.SkipSignatureCheck {
		if !signature.Verify(body, r.Header.Get("X-Hub-Signature-256"), h.cfg.AppSecret, signature.SHA256) {
			h.logger.WarnContext(ctx, "dropping webhook with invalid signature")
			webhooksTotal.WithLabelValues("whatsapp", outcomeRejected).Inc()
			w.WriteHeader(http.StatusOK)
			return
		}
	}

	var envelope WhatsAppEnvelope
	if err := json.Unmarshal(body, &envelope); err != nil {
		h.logger.WarnContext(ctx, "unparseable webhook envelope", slog.Any("error", err))
		webhooksTotal.WithLabelValues("whatsapp", outcomeMalformed).Inc()
		w.WriteHeader(http.StatusOK)
		return
	}

	for _, msg := range envelope.TextMessages() {
		h.svc.HandleMessage(ctx, msg.From, msg.Body)
	}

	webhooksTotal.WithLabelValues("whatsapp", outcomeOK).Inc()
	w.WriteHeader(http.StatusOK)
}
