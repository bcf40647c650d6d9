package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/vendyafrica/vendly-sub001/internal/entities"
	"github.com/vendyafrica/vendly-sub001/internal/events"
	"github.com/vendyafrica/vendly-sub001/internal/momo"
	"github.com/vendyafrica/vendly-sub001/pkg/trm"
	"github.com/vendyafrica/vendly-sub001/pkg/utils"
)

type OrderRepo interface {
	GetOrder(ctx context.Context, orderID, tenantID string) (entities.Order, error)
	GetOrderByNumber(ctx context.Context, tenantID, orderNumber string) (entities.Order, error)
	LatestOrderByStatus(ctx context.Context, tenantID string, status entities.OrderStatus) (entities.Order, error)
	UpdateOrderStatus(ctx context.Context, orderID, tenantID string, patch entities.StatusPatch) (entities.Order, error)

	SavePayment(ctx context.Context, p entities.Payment) error
	GetPaymentByReference(ctx context.Context, referenceID string) (entities.Payment, error)
	UpdatePaymentStatus(ctx context.Context, referenceID string, status entities.PaymentStatus) error

	GetStoreBySlug(ctx context.Context, slug string) (entities.Store, error)
	GetStoreByPhone(ctx context.Context, phone string) (entities.Store, error)
}

var dbRetry = utils.RetryConfig{
	InitialDelay: 100 * time.Millisecond,
	MaxAttempts:  5,
	Multiplier:   2,
}

type orderService struct {
	logger    *slog.Logger
	txManager trm.Manager
	repo      OrderRepo
	sink      events.Sink
}

func NewOrderService(logger *slog.Logger, txManager trm.Manager, repo OrderRepo, sink events.Sink) *orderService {
	return &orderService{
		logger:    logger.With(slog.String("service", "orders")),
		txManager: txManager,
		repo:      repo,
		sink:      sink,
	}
}

// ApplyTransition merges the provided status fields into the order in a
// single conditional update. Concurrent reconcilers racing on the same
// order resolve last-writer-wins at the storage layer; transitions are
// monotonic in practice, which keeps that window acceptable.
func (s *orderService) ApplyTransition(ctx context.Context, orderID, tenantID string, patch entities.StatusPatch) (entities.Order, error) {
	if patch.Empty() {
		return s.repo.GetOrder(ctx, orderID, tenantID)
	}

	var order entities.Order
	fn := func() error {
		var err error
		order, err = s.repo.UpdateOrderStatus(ctx, orderID, tenantID, patch)
		return err
	}
	if err := utils.Retry(dbRetry, fn, entities.ErrOrderNotFound); err != nil {
		return entities.Order{}, err
	}

	s.logger.DebugContext(ctx, "order transition applied",
		slog.String("order_id", orderID),
		slog.Any("status", patch.Status),
		slog.Any("payment_status", patch.PaymentStatus))
	return order, nil
}

type ConfirmPaymentInput struct {
	OrderID     string
	TenantID    string
	Provider    string
	ReferenceID string
	// Amount is the provider-reported paid amount in minor units.
	Amount   int64
	Currency string
}

// ConfirmPayment applies the paid transition, guarded by amount and
// currency equality against the stored order. Re-confirmation of an
// already-paid order is an idempotent no-op (applied=false). On success the
// buyer and seller notifications are emitted best-effort: their failure
// never rolls back the state change.
func (s *orderService) ConfirmPayment(ctx context.Context, in ConfirmPaymentInput) (entities.Order, bool, error) {
	order, err := s.repo.GetOrder(ctx, in.OrderID, in.TenantID)
	if err != nil {
		return entities.Order{}, false, err
	}

	if order.PaymentStatus == entities.PaymentStatusPaid {
		return order, false, nil
	}

	if order.TotalAmount != in.Amount || !strings.EqualFold(order.Currency, in.Currency) {
		s.logger.ErrorContext(ctx, "payment reconciliation anomaly",
			slog.String("order_id", order.ID),
			slog.String("provider", in.Provider),
			slog.Int64("expected_amount", order.TotalAmount),
			slog.Int64("reported_amount", in.Amount),
			slog.String("expected_currency", order.Currency),
			slog.String("reported_currency", in.Currency))
		return order, false, entities.ErrPaymentMismatch
	}

	paid := entities.PaymentStatusPaid
	processing := entities.OrderStatusProcessing

	fn := func() error {
		return s.txManager.Do(ctx, func(ctx context.Context) error {
			updated, err := s.repo.UpdateOrderStatus(ctx, order.ID, order.TenantID, entities.StatusPatch{
				Status:        &processing,
				PaymentStatus: &paid,
			})
			if err != nil {
				return fmt.Errorf("failed to update order: %w", err)
			}
			order = updated

			payment := entities.Payment{
				ReferenceID: in.ReferenceID,
				OrderID:     order.ID,
				TenantID:    order.TenantID,
				Provider:    in.Provider,
				Amount:      in.Amount,
				Currency:    in.Currency,
				Status:      entities.PaymentStatusPaid,
			}
			if err := s.repo.SavePayment(ctx, payment); err != nil {
				return fmt.Errorf("failed to save payment: %w", err)
			}
			if err := s.repo.UpdatePaymentStatus(ctx, in.ReferenceID, entities.PaymentStatusPaid); err != nil {
				return fmt.Errorf("failed to update payment status: %w", err)
			}
			return nil
		})
	}
	if err := utils.Retry(dbRetry, fn, entities.ErrOrderNotFound); err != nil {
		return entities.Order{}, false, err
	}

	s.emit(ctx, order, entities.RoleBuyer, entities.EventBuyerReceived, nil)
	s.emit(ctx, order, entities.RoleBuyer, entities.EventBuyerPreparing, nil)
	s.emit(ctx, order, entities.RoleSeller, entities.EventSellerNewOrder, nil)

	return order, true, nil
}

func (s *orderService) emit(ctx context.Context, order entities.Order, role entities.Role, kind entities.EventKind, params map[string]string) {
	evt := events.Event{
		Kind:     kind,
		Role:     role,
		OrderID:  order.ID,
		TenantID: order.TenantID,
		Params:   params,
	}
	if err := s.sink.Emit(ctx, evt); err != nil {
		s.logger.ErrorContext(ctx, "failed to emit order event",
			slog.String("kind", string(kind)),
			slog.String("order_id", order.ID),
			slog.Any("error", err))
	}
}

type MomoClient interface {
	RequestToPay(ctx context.Context, in momo.RequestToPayInput) (string, error)
	Status(ctx context.Context, referenceID string) (momo.StatusResult, error)
}

type momoService struct {
	logger *slog.Logger
	repo   OrderRepo
	client MomoClient
	orders *orderService
}

func NewMomoService(logger *slog.Logger, repo OrderRepo, client MomoClient, orders *orderService) *momoService {
	return &momoService{
		logger: logger.With(slog.String("service", "momo")),
		repo:   repo,
		client: client,
		orders: orders,
	}
}

// Initiate starts a request-to-pay for a storefront order and records the
// pending payment so the reference id can later be reconciled.
func (s *momoService) Initiate(ctx context.Context, slug, orderID, payerMSISDN, payerMessage string) (entities.Payment, error) {
	store, err := s.repo.GetStoreBySlug(ctx, slug)
	if err != nil {
		return entities.Payment{}, err
	}

	order, err := s.repo.GetOrder(ctx, orderID, store.TenantID)
	if err != nil {
		return entities.Payment{}, err
	}

	msisdn := payerMSISDN
	if msisdn == "" {
		msisdn = order.CustomerPhone
	}

	referenceID, err := s.client.RequestToPay(ctx, momo.RequestToPayInput{
		ExternalID:   order.ID,
		Amount:       order.TotalAmount,
		Currency:     order.Currency,
		PayerMSISDN:  msisdn,
		PayerMessage: payerMessage,
		PayeeNote:    "Payment for " + order.OrderNumber,
	})
	if err != nil {
		return entities.Payment{}, fmt.Errorf("failed to initiate payment: %w", err)
	}

	payment := entities.Payment{
		ReferenceID: referenceID,
		OrderID:     order.ID,
		TenantID:    order.TenantID,
		Provider:    "momo",
		Amount:      order.TotalAmount,
		Currency:    order.Currency,
		Status:      entities.PaymentStatusPending,
	}
	if err := s.repo.SavePayment(ctx, payment); err != nil {
		return entities.Payment{}, err
	}

	return payment, nil
}

// Reconcile polls the authoritative status endpoint for a reference id and
// applies the resulting transition. Callback payloads are never trusted:
// they only trigger this poll.
func (s *momoService) Reconcile(ctx context.Context, referenceID string) (momo.StatusResult, entities.PaymentStatus, error) {
	payment, err := s.repo.GetPaymentByReference(ctx, referenceID)
	if err != nil {
		return momo.StatusResult{}, "", err
	}

	var res momo.StatusResult
	fn := func() error {
		var err error
		res, err = s.client.Status(ctx, referenceID)
		return err
	}
	if err := utils.Retry(utils.RetryConfig{MaxAttempts: 3, InitialDelay: 200 * time.Millisecond}, fn); err != nil {
		return momo.StatusResult{}, "", fmt.Errorf("failed to poll payment status: %w", err)
	}

	normalized := momo.NormalizeStatus(res.Status)

	// By convention externalId == order id; fall back to the recorded one.
	orderID := res.ExternalID
	if orderID == "" {
		orderID = payment.OrderID
	}

	switch normalized {
	case entities.PaymentStatusPaid:
		_, _, err := s.orders.ConfirmPayment(ctx, ConfirmPaymentInput{
			OrderID:     orderID,
			TenantID:    payment.TenantID,
			Provider:    "momo",
			ReferenceID: referenceID,
			Amount:      res.Amount,
			Currency:    res.Currency,
		})
		if errors.Is(err, entities.ErrPaymentMismatch) {
			return res, normalized, err
		}
		if err != nil {
			return res, normalized, err
		}
	case entities.PaymentStatusFailed:
		failed := entities.PaymentStatusFailed
		if _, err := s.orders.ApplyTransition(ctx, orderID, payment.TenantID, entities.StatusPatch{PaymentStatus: &failed}); err != nil && !errors.Is(err, entities.ErrOrderNotFound) {
			return res, normalized, err
		}
		if err := s.repo.UpdatePaymentStatus(ctx, referenceID, entities.PaymentStatusFailed); err != nil {
			return res, normalized, err
		}
	}

	return res, normalized, nil
}
