package service_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/vendyafrica/vendly-sub001/internal/entities"
	eventMocks "github.com/vendyafrica/vendly-sub001/internal/events/mocks"
	"github.com/vendyafrica/vendly-sub001/internal/service"
	mocks "github.com/vendyafrica/vendly-sub001/internal/service/mocks"
	txMocks "github.com/vendyafrica/vendly-sub001/pkg/trm/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var testLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

func newTxManager(t *testing.T) *txMocks.MockManager {
	t.Helper()

	tx := txMocks.NewMockManager(t)
	tx.EXPECT().
		Do(mock.Anything, mock.Anything).
		RunAndReturn(
			func(ctx context.Context, cb func(ctx context.Context) error) error {
				return cb(ctx)
			}).Maybe()
	return tx
}

func TestOrderService_ConfirmPayment(t *testing.T) {
	type MockBehavior func(orderRepo *mocks.MockOrderRepo, sink *eventMocks.MockSink)

	pendingOrder := entities.Order{
		ID:            "order-1",
		OrderNumber:   "ORD-0007",
		TenantID:      "tenant-1",
		StoreID:       "store-1",
		Status:        entities.OrderStatusPending,
		PaymentStatus: entities.PaymentStatusPending,
		TotalAmount:   5000,
		Currency:      "UGX",
	}
	paidOrder := pendingOrder
	paidOrder.Status = entities.OrderStatusProcessing
	paidOrder.PaymentStatus = entities.PaymentStatusPaid

	input := service.ConfirmPaymentInput{
		OrderID:     "order-1",
		TenantID:    "tenant-1",
		Provider:    "paystack",
		ReferenceID: "ref-1",
		Amount:      5000,
		Currency:    "UGX",
	}

	expectFullConfirmation := func(orderRepo *mocks.MockOrderRepo, sink *eventMocks.MockSink) {
		orderRepo.EXPECT().
			UpdateOrderStatus(mock.Anything, "order-1", "tenant-1", mock.Anything).
			Return(paidOrder, nil).Once()
		orderRepo.EXPECT().
			SavePayment(mock.Anything, mock.Anything).
			Return(nil).Once()
		orderRepo.EXPECT().
			UpdatePaymentStatus(mock.Anything, "ref-1", entities.PaymentStatusPaid).
			Return(nil).Once()
		sink.EXPECT().
			Emit(mock.Anything, mock.Anything).
			Return(nil).Times(3)
	}

	testCases := []struct {
		name         string
		in           service.ConfirmPaymentInput
		mockBehavior MockBehavior
		wantApplied  bool
		wantErr      error
	}{
		{
			name: "confirms pending order",
			in:   input,
			mockBehavior: func(orderRepo *mocks.MockOrderRepo, sink *eventMocks.MockSink) {
				orderRepo.EXPECT().
					GetOrder(mock.Anything, "order-1", "tenant-1").
					Return(pendingOrder, nil).Once()
				expectFullConfirmation(orderRepo, sink)
			},
			wantApplied: true,
		},
		{
			name: "already paid is an idempotent no-op",
			in:   input,
			mockBehavior: func(orderRepo *mocks.MockOrderRepo, _ *eventMocks.MockSink) {
				orderRepo.EXPECT().
					GetOrder(mock.Anything, "order-1", "tenant-1").
					Return(paidOrder, nil).Once()
			},
			wantApplied: false,
		},
		{
			name: "amount mismatch aborts the transition",
			in: service.ConfirmPaymentInput{
				OrderID: "order-1", TenantID: "tenant-1", Provider: "paystack",
				ReferenceID: "ref-1", Amount: 4000, Currency: "UGX",
			},
			mockBehavior: func(orderRepo *mocks.MockOrderRepo, _ *eventMocks.MockSink) {
				orderRepo.EXPECT().
					GetOrder(mock.Anything, "order-1", "tenant-1").
					Return(pendingOrder, nil).Once()
			},
			wantErr: entities.ErrPaymentMismatch,
		},
		{
			name: "currency mismatch aborts the transition",
			in: service.ConfirmPaymentInput{
				OrderID: "order-1", TenantID: "tenant-1", Provider: "paystack",
				ReferenceID: "ref-1", Amount: 5000, Currency: "KES",
			},
			mockBehavior: func(orderRepo *mocks.MockOrderRepo, _ *eventMocks.MockSink) {
				orderRepo.EXPECT().
					GetOrder(mock.Anything, "order-1", "tenant-1").
					Return(pendingOrder, nil).Once()
			},
			wantErr: entities.ErrPaymentMismatch,
		},
		{
			name: "currency comparison is case insensitive",
			in: service.ConfirmPaymentInput{
				OrderID: "order-1", TenantID: "tenant-1", Provider: "paystack",
				ReferenceID: "ref-1", Amount: 5000, Currency: "ugx",
			},
			mockBehavior: func(orderRepo *mocks.MockOrderRepo, sink *eventMocks.MockSink) {
				orderRepo.EXPECT().
					GetOrder(mock.Anything, "order-1", "tenant-1").
					Return(pendingOrder, nil).Once()
				expectFullConfirmation(orderRepo, sink)
			},
			wantApplied: true,
		},
		{
			name: "order not found",
			in:   input,
			mockBehavior: func(orderRepo *mocks.MockOrderRepo, _ *eventMocks.MockSink) {
				orderRepo.EXPECT().
					GetOrder(mock.Anything, "order-1", "tenant-1").
					Return(entities.Order{}, entities.ErrOrderNotFound).Once()
			},
			wantErr: entities.ErrOrderNotFound,
		},
		{
			name: "transient update error is retried",
			in:   input,
			mockBehavior: func(orderRepo *mocks.MockOrderRepo, sink *eventMocks.MockSink) {
				orderRepo.EXPECT().
					GetOrder(mock.Anything, "order-1", "tenant-1").
					Return(pendingOrder, nil).Once()
				orderRepo.EXPECT().
					UpdateOrderStatus(mock.Anything, "order-1", "tenant-1", mock.Anything).
					Once().Return(entities.Order{}, errors.New("temporary error"))
				orderRepo.EXPECT().
					UpdateOrderStatus(mock.Anything, "order-1", "tenant-1", mock.Anything).
					Once().Return(paidOrder, nil)
				orderRepo.EXPECT().
					SavePayment(mock.Anything, mock.Anything).
					Return(nil).Once()
				orderRepo.EXPECT().
					UpdatePaymentStatus(mock.Anything, "ref-1", entities.PaymentStatusPaid).
					Return(nil).Once()
				sink.EXPECT().
					Emit(mock.Anything, mock.Anything).
					Return(nil).Times(3)
			},
			wantApplied: true,
		},
		{
			name: "emit failure does not fail the confirmation",
			in:   input,
			mockBehavior: func(orderRepo *mocks.MockOrderRepo, sink *eventMocks.MockSink) {
				orderRepo.EXPECT().
					GetOrder(mock.Anything, "order-1", "tenant-1").
					Return(pendingOrder, nil).Once()
				orderRepo.EXPECT().
					UpdateOrderStatus(mock.Anything, "order-1", "tenant-1", mock.Anything).
					Return(paidOrder, nil).Once()
				orderRepo.EXPECT().
					SavePayment(mock.Anything, mock.Anything).
					Return(nil).Once()
				orderRepo.EXPECT().
					UpdatePaymentStatus(mock.Anything, "ref-1", entities.PaymentStatusPaid).
					Return(nil).Once()
				sink.EXPECT().
					Emit(mock.Anything, mock.Anything).
					Return(errors.New("broker down")).Times(3)
			},
			wantApplied: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			orderRepo := mocks.NewMockOrderRepo(t)
			sink := eventMocks.NewMockSink(t)
			tc.mockBehavior(orderRepo, sink)

			svc := service.NewOrderService(testLogger, newTxManager(t), orderRepo, sink)

			order, applied, err := svc.ConfirmPayment(context.Background(), tc.in)

			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.wantApplied, applied)
			if applied {
				assert.Equal(t, entities.PaymentStatusPaid, order.PaymentStatus)
				assert.Equal(t, entities.OrderStatusProcessing, order.Status)
			}
		})
	}
}

func TestOrderService_ApplyTransition(t *testing.T) {
	processing := entities.OrderStatusProcessing
	order := entities.Order{ID: "order-1", TenantID: "tenant-1", Status: entities.OrderStatusPending}

	t.Run("empty patch reads without writing", func(t *testing.T) {
		orderRepo := mocks.NewMockOrderRepo(t)
		orderRepo.EXPECT().
			GetOrder(mock.Anything, "order-1", "tenant-1").
			Return(order, nil).Once()

		svc := service.NewOrderService(testLogger, newTxManager(t), orderRepo, eventMocks.NewMockSink(t))

		got, err := svc.ApplyTransition(context.Background(), "order-1", "tenant-1", entities.StatusPatch{})
		require.NoError(t, err)
		assert.Equal(t, order, got)
	})

	t.Run("patch updates the order", func(t *testing.T) {
		updated := order
		updated.Status = processing

		orderRepo := mocks.NewMockOrderRepo(t)
		orderRepo.EXPECT().
			UpdateOrderStatus(mock.Anything, "order-1", "tenant-1", entities.StatusPatch{Status: &processing}).
			Return(updated, nil).Once()

		svc := service.NewOrderService(testLogger, newTxManager(t), orderRepo, eventMocks.NewMockSink(t))

		got, err := svc.ApplyTransition(context.Background(), "order-1", "tenant-1", entities.StatusPatch{Status: &processing})
		require.NoError(t, err)
		assert.Equal(t, entities.OrderStatusProcessing, got.Status)
	})

	t.Run("not found is not retried", func(t *testing.T) {
		orderRepo := mocks.NewMockOrderRepo(t)
		orderRepo.EXPECT().
			UpdateOrderStatus(mock.Anything, "missing", "tenant-1", mock.Anything).
			Return(entities.Order{}, entities.ErrOrderNotFound).Once()

		svc := service.NewOrderService(testLogger, newTxManager(t), orderRepo, eventMocks.NewMockSink(t))

		_, err := svc.ApplyTransition(context.Background(), "missing", "tenant-1", entities.StatusPatch{Status: &processing})
		assert.ErrorIs(t, err, entities.ErrOrderNotFound)
	})
}
