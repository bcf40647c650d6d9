package handler

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/vendyafrica/vendly-sub001/internal/entities"
	"github.com/vendyafrica/vendly-sub001/internal/momo"
	"github.com/vendyafrica/vendly-sub001/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

type MomoService interface {
	Initiate(ctx context.Context, slug, orderID, payerMSISDN, payerMessage string) (entities.Payment, error)
	Reconcile(ctx context.Context, referenceID string) (momo.StatusResult, entities.PaymentStatus, error)
}

type MomoHandler struct {
	logger   *slog.Logger
	validate *validator.Validate
	svc      MomoService
}

func NewMomoHandler(logger *slog.Logger, svc MomoService) *MomoHandler {
	return &MomoHandler{
		logger:   logger.With(slog.String("handler", "momo")),
		validate: validator.New(),
		svc:      svc,
	}
}

func (h *MomoHandler) Init(r chi.Router) {
	r.Post("/storefront/{slug}/payments/momo/initiate", h.Initiate)
	r.Get("/storefront/{slug}/payments/momo/request-to-pay/{referenceId}", h.Status)
	// Provider callback delivery is unreliable and its payload untrusted;
	// both verbs only trigger a re-poll of the status endpoint.
	r.Post("/webhooks/momo", h.Webhook)
	r.Put("/webhooks/momo", h.Webhook)
}

// Initiate starts a mobile-money request-to-pay for an order.
// @Summary      Initiate a mobile money payment
// @Tags         payments
// @Param        slug  path  string  true  "Storefront slug"
// @Param        body  body  InitiatePaymentRequest  true  "Payment request"
// @Success      202  {object}  InitiatePaymentResponse
// @Failure      400  {object}  utils.ValidationErrorResponse
// @Failure      404  {object}  utils.ErrorResponse
// @Router       /storefront/{slug}/payments/momo/initiate [post]
func (h *MomoHandler) Initiate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	slug := chi.URLParam(r, "slug")

	var req InitiatePaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	payment, err := h.svc.Initiate(ctx, slug, req.OrderID, req.PayerMsisdn, req.PayerMessage)
	if errors.Is(err, entities.ErrStoreNotFound) || errors.Is(err, entities.ErrOrderNotFound) {
		utils.WriteError(w, "order not found", http.StatusNotFound)
		return
	}
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to initiate payment", slog.String("order_id", req.OrderID), slog.Any("error", err))
		utils.WriteError(w, "failed to initiate payment", http.StatusBadGateway)
		return
	}

	utils.WriteJSON(w, InitiatePaymentResponse{
		ReferenceID:   payment.ReferenceID,
		OrderID:       payment.OrderID,
		PaymentStatus: string(entities.PaymentStatusPending),
	}, http.StatusAccepted)
}

// Status polls the authoritative provider status for a reference id and
// applies any resulting transition.
// @Summary      Poll a request-to-pay status
// @Tags         payments
// @Param        slug         path  string  true  "Storefront slug"
// @Param        referenceId  path  string  true  "Payment reference id"
// @Success      200  {object}  PaymentStatusResponse
// @Failure      404  {object}  utils.ErrorResponse
// @Router       /storefront/{slug}/payments/momo/request-to-pay/{referenceId} [get]
func (h *MomoHandler) Status(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	referenceID := chi.URLParam(r, "referenceId")

	res, normalized, err := h.svc.Reconcile(ctx, referenceID)
	if errors.Is(err, entities.ErrOrderNotFound) {
		utils.WriteError(w, "payment not found", http.StatusNotFound)
		return
	}
	if errors.Is(err, entities.ErrPaymentMismatch) {
		// Transition aborted; the caller still gets the provider's answer.
		reconciliationAnomalies.WithLabelValues("momo").Inc()
		webhooksTotal.WithLabelValues("momo", outcomeAnomaly).Inc()
	} else if err != nil {
		h.logger.ErrorContext(ctx, "failed to reconcile payment", slog.String("reference_id", referenceID), slog.Any("error", err))
		utils.WriteError(w, "failed to poll payment status", http.StatusBadGateway)
		return
	}

	utils.WriteJSON(w, PaymentStatusResponse{
		ReferenceID:   referenceID,
		OrderID:       res.ExternalID,
		Status:        res.Status,
		PaymentStatus: string(normalized),
	}, http.StatusOK)
}

func (h *MomoHandler) Webhook(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var cb MomoCallback
	if err := json.NewDecoder(r.Body).Decode(&cb); err != nil {
		webhooksTotal.WithLabelValues("momo", outcomeMalformed).Inc()
		utils.WriteJSON(w, map[string]string{"status": "ok"}, http.StatusOK)
		return
	}

	referenceID := cb.ReferenceID
	if referenceID == "" {
		referenceID = r.Header.Get("X-Reference-Id")
	}
	if referenceID == "" {
		webhooksTotal.WithLabelValues("momo", outcomeMalformed).Inc()
		utils.WriteJSON(w, map[string]string{"status": "ok"}, http.StatusOK)
		return
	}

	if _, _, err := h.svc.Reconcile(ctx, referenceID); err != nil && !errors.Is(err, entities.ErrPaymentMismatch) {
		h.logger.WarnContext(ctx, "callback-triggered reconcile failed",
			slog.String("reference_id", referenceID), slog.Any("error", err))
		webhooksTotal.WithLabelValues("momo", outcomeError).Inc()
	} else {
		webhooksTotal.WithLabelValues("momo", outcomeOK).Inc()
	}

	utils.WriteJSON(w, map[string]string{"status": "ok"}, http.StatusOK)
}
