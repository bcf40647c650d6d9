package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/vendyafrica/vendly-sub001/internal/entities"
	eventMocks "github.com/vendyafrica/vendly-sub001/internal/events/mocks"
	"github.com/vendyafrica/vendly-sub001/internal/momo"
	"github.com/vendyafrica/vendly-sub001/internal/service"
	mocks "github.com/vendyafrica/vendly-sub001/internal/service/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestMomoService_Initiate(t *testing.T) {
	store := entities.Store{ID: "store-1", TenantID: "tenant-1", Slug: "demo-store"}
	order := entities.Order{
		ID:            "order-1",
		OrderNumber:   "ORD-0007",
		TenantID:      "tenant-1",
		StoreID:       "store-1",
		TotalAmount:   5000,
		Currency:      "UGX",
		CustomerPhone: "+256780000000",
	}

	t.Run("initiates and records a pending payment", func(t *testing.T) {
		orderRepo := mocks.NewMockOrderRepo(t)
		client := mocks.NewMockMomoClient(t)

		orderRepo.EXPECT().
			GetStoreBySlug(mock.Anything, "demo-store").
			Return(store, nil).Once()
		orderRepo.EXPECT().
			GetOrder(mock.Anything, "order-1", "tenant-1").
			Return(order, nil).Once()
		client.EXPECT().
			RequestToPay(mock.Anything, momo.RequestToPayInput{
				ExternalID:  "order-1",
				Amount:      5000,
				Currency:    "UGX",
				PayerMSISDN: "+256781111111",
				PayeeNote:   "Payment for ORD-0007",
			}).
			Return("ref-1", nil).Once()
		orderRepo.EXPECT().
			SavePayment(mock.Anything, mock.MatchedBy(func(p entities.Payment) bool {
				return p.ReferenceID == "ref-1" &&
					p.Provider == "momo" &&
					p.Status == entities.PaymentStatusPending
			})).
			Return(nil).Once()

		orders := service.NewOrderService(testLogger, newTxManager(t), orderRepo, eventMocks.NewMockSink(t))
		svc := service.NewMomoService(testLogger, orderRepo, client, orders)

		payment, err := svc.Initiate(context.Background(), "demo-store", "order-1", "+256781111111", "")
		require.NoError(t, err)

		assert.Equal(t, "ref-1", payment.ReferenceID)
		assert.Equal(t, entities.PaymentStatusPending, payment.Status)
	})

	t.Run("falls back to the order's customer phone", func(t *testing.T) {
		orderRepo := mocks.NewMockOrderRepo(t)
		client := mocks.NewMockMomoClient(t)

		orderRepo.EXPECT().
			GetStoreBySlug(mock.Anything, "demo-store").
			Return(store, nil).Once()
		orderRepo.EXPECT().
			GetOrder(mock.Anything, "order-1", "tenant-1").
			Return(order, nil).Once()
		client.EXPECT().
			RequestToPay(mock.Anything, mock.MatchedBy(func(in momo.RequestToPayInput) bool {
				return in.PayerMSISDN == "+256780000000"
			})).
			Return("ref-1", nil).Once()
		orderRepo.EXPECT().
			SavePayment(mock.Anything, mock.Anything).
			Return(nil).Once()

		orders := service.NewOrderService(testLogger, newTxManager(t), orderRepo, eventMocks.NewMockSink(t))
		svc := service.NewMomoService(testLogger, orderRepo, client, orders)

		_, err := svc.Initiate(context.Background(), "demo-store", "order-1", "", "")
		require.NoError(t, err)
	})

	t.Run("unknown storefront", func(t *testing.T) {
		orderRepo := mocks.NewMockOrderRepo(t)
		client := mocks.NewMockMomoClient(t)

		orderRepo.EXPECT().
			GetStoreBySlug(mock.Anything, "nope").
			Return(entities.Store{}, entities.ErrStoreNotFound).Once()

		orders := service.NewOrderService(testLogger, newTxManager(t), orderRepo, eventMocks.NewMockSink(t))
		svc := service.NewMomoService(testLogger, orderRepo, client, orders)

		_, err := svc.Initiate(context.Background(), "nope", "order-1", "", "")
		assert.ErrorIs(t, err, entities.ErrStoreNotFound)
	})
}

func TestMomoService_Reconcile(t *testing.T) {
	payment := entities.Payment{
		ReferenceID: "ref-1",
		OrderID:     "order-1",
		TenantID:    "tenant-1",
		Provider:    "momo",
		Amount:      5000,
		Currency:    "UGX",
		Status:      entities.PaymentStatusPending,
	}
	pendingOrder := entities.Order{
		ID:            "order-1",
		TenantID:      "tenant-1",
		Status:        entities.OrderStatusPending,
		PaymentStatus: entities.PaymentStatusPending,
		TotalAmount:   5000,
		Currency:      "UGX",
	}
	paidOrder := pendingOrder
	paidOrder.Status = entities.OrderStatusProcessing
	paidOrder.PaymentStatus = entities.PaymentStatusPaid

	t.Run("successful poll confirms the order", func(t *testing.T) {
		orderRepo := mocks.NewMockOrderRepo(t)
		client := mocks.NewMockMomoClient(t)
		sink := eventMocks.NewMockSink(t)

		orderRepo.EXPECT().
			GetPaymentByReference(mock.Anything, "ref-1").
			Return(payment, nil).Once()
		client.EXPECT().
			Status(mock.Anything, "ref-1").
			Return(momo.StatusResult{
				ReferenceID: "ref-1",
				ExternalID:  "order-1",
				Amount:      5000,
				Currency:    "UGX",
				Status:      "SUCCESSFUL",
			}, nil).Once()
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
			Return(nil).Times(3)

		orders := service.NewOrderService(testLogger, newTxManager(t), orderRepo, sink)
		svc := service.NewMomoService(testLogger, orderRepo, client, orders)

		res, normalized, err := svc.Reconcile(context.Background(), "ref-1")
		require.NoError(t, err)

		assert.Equal(t, "SUCCESSFUL", res.Status)
		assert.Equal(t, entities.PaymentStatusPaid, normalized)
	})

	t.Run("failed poll marks the payment failed", func(t *testing.T) {
		orderRepo := mocks.NewMockOrderRepo(t)
		client := mocks.NewMockMomoClient(t)

		orderRepo.EXPECT().
			GetPaymentByReference(mock.Anything, "ref-1").
			Return(payment, nil).Once()
		client.EXPECT().
			Status(mock.Anything, "ref-1").
			Return(momo.StatusResult{ReferenceID: "ref-1", ExternalID: "order-1", Status: "REJECTED"}, nil).Once()
		orderRepo.EXPECT().
			UpdateOrderStatus(mock.Anything, "order-1", "tenant-1", mock.MatchedBy(func(p entities.StatusPatch) bool {
				return p.Status == nil && p.PaymentStatus != nil && *p.PaymentStatus == entities.PaymentStatusFailed
			})).
			Return(pendingOrder, nil).Once()
		orderRepo.EXPECT().
			UpdatePaymentStatus(mock.Anything, "ref-1", entities.PaymentStatusFailed).
			Return(nil).Once()

		orders := service.NewOrderService(testLogger, newTxManager(t), orderRepo, eventMocks.NewMockSink(t))
		svc := service.NewMomoService(testLogger, orderRepo, client, orders)

		_, normalized, err := svc.Reconcile(context.Background(), "ref-1")
		require.NoError(t, err)
		assert.Equal(t, entities.PaymentStatusFailed, normalized)
	})

	t.Run("pending poll changes nothing", func(t *testing.T) {
		orderRepo := mocks.NewMockOrderRepo(t)
		client := mocks.NewMockMomoClient(t)

		orderRepo.EXPECT().
			GetPaymentByReference(mock.Anything, "ref-1").
			Return(payment, nil).Once()
		client.EXPECT().
			Status(mock.Anything, "ref-1").
			Return(momo.StatusResult{ReferenceID: "ref-1", Status: "PENDING"}, nil).Once()

		orders := service.NewOrderService(testLogger, newTxManager(t), orderRepo, eventMocks.NewMockSink(t))
		svc := service.NewMomoService(testLogger, orderRepo, client, orders)

		_, normalized, err := svc.Reconcile(context.Background(), "ref-1")
		require.NoError(t, err)
		assert.Equal(t, entities.PaymentStatusPending, normalized)
	})

	t.Run("amount mismatch surfaces the anomaly", func(t *testing.T) {
		orderRepo := mocks.NewMockOrderRepo(t)
		client := mocks.NewMockMomoClient(t)

		orderRepo.EXPECT().
			GetPaymentByReference(mock.Anything, "ref-1").
			Return(payment, nil).Once()
		client.EXPECT().
			Status(mock.Anything, "ref-1").
			Return(momo.StatusResult{
				ReferenceID: "ref-1",
				ExternalID:  "order-1",
				Amount:      4000,
				Currency:    "UGX",
				Status:      "SUCCESSFUL",
			}, nil).Once()
		orderRepo.EXPECT().
			GetOrder(mock.Anything, "order-1", "tenant-1").
			Return(pendingOrder, nil).Once()

		orders := service.NewOrderService(testLogger, newTxManager(t), orderRepo, eventMocks.NewMockSink(t))
		svc := service.NewMomoService(testLogger, orderRepo, client, orders)

		_, _, err := svc.Reconcile(context.Background(), "ref-1")
		assert.ErrorIs(t, err, entities.ErrPaymentMismatch)
	})

	t.Run("unknown reference id", func(t *testing.T) {
		orderRepo := mocks.NewMockOrderRepo(t)
		client := mocks.NewMockMomoClient(t)

		orderRepo.EXPECT().
			GetPaymentByReference(mock.Anything, "nope").
			Return(entities.Payment{}, entities.ErrOrderNotFound).Once()

		orders := service.NewOrderService(testLogger, newTxManager(t), orderRepo, eventMocks.NewMockSink(t))
		svc := service.NewMomoService(testLogger, orderRepo, client, orders)

		_, _, err := svc.Reconcile(context.Background(), "nope")
		assert.ErrorIs(t, err, entities.ErrOrderNotFound)
	})

	t.Run("transient poll error is retried", func(t *testing.T) {
		orderRepo := mocks.NewMockOrderRepo(t)
		client := mocks.NewMockMomoClient(t)

		orderRepo.EXPECT().
			GetPaymentByReference(mock.Anything, "ref-1").
			Return(payment, nil).Once()
		client.EXPECT().
			Status(mock.Anything, "ref-1").
			Once().Return(momo.StatusResult{}, errors.New("gateway timeout"))
		client.EXPECT().
			Status(mock.Anything, "ref-1").
			Once().Return(momo.StatusResult{ReferenceID: "ref-1", Status: "PENDING"}, nil)

		orders := service.NewOrderService(testLogger, newTxManager(t), orderRepo, eventMocks.NewMockSink(t))
		svc := service.NewMomoService(testLogger, orderRepo, client, orders)

		_, normalized, err := svc.Reconcile(context.Background(), "ref-1")
		require.NoError(t, err)
		assert.Equal(t, entities.PaymentStatusPending, normalized)
	})
}
