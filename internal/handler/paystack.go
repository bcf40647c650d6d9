package handler

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/vendyafrica/vendly-sub001/internal/entities"
	"github.com/vendyafrica/vendly-sub001/internal/service"
	"github.com/vendyafrica/vendly-sub001/pkg/signature"
	"github.com/vendyafrica/vendly-sub001/pkg/utils"

	"github.com/go-chi/chi/v5"
)

type PaymentConfirmer interface {
	ConfirmPayment(ctx context.Context, in service.ConfirmPaymentInput) (entities.Order, bool, error)
}

type PaystackHandler struct {
	logger *slog.Logger
	secret string
	svc    PaymentConfirmer
}

func NewPaystackHandler(logger *slog.Logger, secret string, svc PaymentConfirmer) *PaystackHandler {
	return &PaystackHandler{
		logger: logger.With(slog.String("handler", "paystack")),
		secret: secret,
		svc:    svc,
	}
}

func (h *PaystackHandler) Init(r chi.Router) {
	r.Post("/webhooks/paystack", h.Webhook)
}

// Webhook reconciles card-payment events. Once the payload is
// authenticated the response is always 200: provider retries must never
// cascade into duplicate side effects, which the idempotent transition and
// the notification dedupe already guarantee.
func (h *PaystackHandler) Webhook(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	body, err := io.ReadAll(r.Body)
	if err != nil {
		webhooksTotal.WithLabelValues("paystack", outcomeMalformed).Inc()
		utils.WriteError(w, "failed to read body", http.StatusBadRequest)
		return
	}

	// The HMAC is computed over the exact raw body, hence verify before
	// any JSON parsing.
	if !signature.Verify(body, r.Header.Get("X-Paystack-Signature"), h.secret, signature.SHA512) {
		h.logger.WarnContext(ctx, "rejected webhook with invalid signature")
		webhooksTotal.WithLabelValues("paystack", outcomeRejected).Inc()
		utils.WriteError(w, "invalid signature", http.StatusForbidden)
		return
	}

	var event PaystackEvent
	if err := json.Unmarshal(body, &event); err != nil {
		h.logger.WarnContext(ctx, "unparseable webhook payload", slog.Any("error", err))
		webhooksTotal.WithLabelValues("paystack", outcomeMalformed).Inc()
		utils.WriteJSON(w, map[string]string{"status": "ok"}, http.StatusOK)
		return
	}

	if event.Event != "charge.success" {
		webhooksTotal.WithLabelValues("paystack", outcomeIgnored).Inc()
		utils.WriteJSON(w, map[string]string{"status": "ok"}, http.StatusOK)
		return
	}

	orderID, tenantID, ok := event.OrderRef()
	if !ok {
		h.logger.WarnContext(ctx, "charge without order reference", slog.String("reference", event.Data.Reference))
		webhooksTotal.WithLabelValues("paystack", outcomeMalformed).Inc()
		utils.WriteJSON(w, map[string]string{"status": "ok"}, http.StatusOK)
		return
	}

	_, applied, err := h.svc.ConfirmPayment(ctx, service.ConfirmPaymentInput{
		OrderID:     orderID,
		TenantID:    tenantID,
		Provider:    "paystack",
		ReferenceID: event.Data.Reference,
		Amount:      event.Data.Amount,
		Currency:    event.Data.Currency,
	})

	switch {
	case errors.Is(err, entities.ErrOrderNotFound):
		// Possibly a stale or forged reference; acknowledged, logged.
		h.logger.WarnContext(ctx, "charge for unknown order", slog.String("order_id", orderID))
		webhooksTotal.WithLabelValues("paystack", outcomeNotFound).Inc()
	case errors.Is(err, entities.ErrPaymentMismatch):
		webhooksTotal.WithLabelValues("paystack", outcomeAnomaly).Inc()
		reconciliationAnomalies.WithLabelValues("paystack").Inc()
	case err != nil:
		h.logger.ErrorContext(ctx, "failed to confirm payment", slog.String("order_id", orderID), slog.Any("error", err))
		webhooksTotal.WithLabelValues("paystack", outcomeError).Inc()
	case !applied:
		webhooksTotal.WithLabelValues("paystack", outcomeDuplicate).Inc()
	default:
		webhooksTotal.WithLabelValues("paystack", outcomeOK).Inc()
	}

	utils.WriteJSON(w, map[string]string{"status": "ok"}, http.StatusOK)
}
