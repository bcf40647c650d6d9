package handler_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/vendyafrica/vendly-sub001/internal/entities"
	"github.com/vendyafrica/vendly-sub001/internal/handler"
	mocks "github.com/vendyafrica/vendly-sub001/internal/handler/mocks"
	"github.com/vendyafrica/vendly-sub001/internal/momo"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newMomoRouter(t *testing.T, mockBehavior func(svc *mocks.MockMomoService)) chi.Router {
	t.Helper()

	svc := mocks.NewMockMomoService(t)
	mockBehavior(svc)

	h := handler.NewMomoHandler(testLogger, svc)
	r := chi.NewRouter()
	h.Init(r)
	return r
}

func TestMomoHandler_Initiate(t *testing.T) {
	pendingPayment := entities.Payment{
		ReferenceID: "ref-1",
		OrderID:     "order-1",
		Status:      entities.PaymentStatusPending,
	}

	testCases := []struct {
		name         string
		body         string
		mockBehavior func(svc *mocks.MockMomoService)
		wantStatus   int
		wantBody     string
	}{
		{
			name: "accepted",
			body: `{"orderId":"order-1","payerMsisdn":"+256780000000"}`,
			mockBehavior: func(svc *mocks.MockMomoService) {
				svc.EXPECT().
					Initiate(mock.Anything, "demo-store", "order-1", "+256780000000", "").
					Return(pendingPayment, nil).Once()
			},
			wantStatus: http.StatusAccepted,
			wantBody:   `"referenceId":"ref-1"`,
		},
		{
			name:         "missing order id fails validation",
			body:         `{"payerMsisdn":"+256780000000"}`,
			mockBehavior: func(svc *mocks.MockMomoService) {},
			wantStatus:   http.StatusBadRequest,
		},
		{
			name:         "invalid json",
			body:         `{`,
			mockBehavior: func(svc *mocks.MockMomoService) {},
			wantStatus:   http.StatusBadRequest,
		},
		{
			name: "unknown storefront",
			body: `{"orderId":"order-1"}`,
			mockBehavior: func(svc *mocks.MockMomoService) {
				svc.EXPECT().
					Initiate(mock.Anything, "demo-store", "order-1", "", "").
					Return(entities.Payment{}, entities.ErrStoreNotFound).Once()
			},
			wantStatus: http.StatusNotFound,
		},
		{
			name: "provider rejection",
			body: `{"orderId":"order-1"}`,
			mockBehavior: func(svc *mocks.MockMomoService) {
				svc.EXPECT().
					Initiate(mock.Anything, "demo-store", "order-1", "", "").
					Return(entities.Payment{}, assert.AnError).Once()
			},
			wantStatus: http.StatusBadGateway,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			r := newMomoRouter(t, tc.mockBehavior)

			req := httptest.NewRequest(http.MethodPost, "/storefront/demo-store/payments/momo/initiate", strings.NewReader(tc.body))
			rr := httptest.NewRecorder()

			r.ServeHTTP(rr, req)

			assert.Equal(t, tc.wantStatus, rr.Code)
			if tc.wantBody != "" {
				assert.Contains(t, rr.Body.String(), tc.wantBody)
			}
		})
	}
}

func TestMomoHandler_Status(t *testing.T) {
	t.Run("returns provider status and normalized form", func(t *testing.T) {
		r := newMomoRouter(t, func(svc *mocks.MockMomoService) {
			svc.EXPECT().
				Reconcile(mock.Anything, "ref-1").
				Return(momo.StatusResult{
					ReferenceID: "ref-1",
					ExternalID:  "order-1",
					Status:      "SUCCESSFUL",
				}, entities.PaymentStatusPaid, nil).Once()
		})

		req := httptest.NewRequest(http.MethodGet, "/storefront/demo-store/payments/momo/request-to-pay/ref-1", nil)
		rr := httptest.NewRecorder()

		r.ServeHTTP(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)

		var resp handler.PaymentStatusResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Equal(t, "SUCCESSFUL", resp.Status)
		assert.Equal(t, "paid", resp.PaymentStatus)
		assert.Equal(t, "order-1", resp.OrderID)
	})

	t.Run("unknown reference id", func(t *testing.T) {
		r := newMomoRouter(t, func(svc *mocks.MockMomoService) {
			svc.EXPECT().
				Reconcile(mock.Anything, "nope").
				Return(momo.StatusResult{}, entities.PaymentStatus(""), entities.ErrOrderNotFound).Once()
		})

		req := httptest.NewRequest(http.MethodGet, "/storefront/demo-store/payments/momo/request-to-pay/nope", nil)
		rr := httptest.NewRecorder()

		r.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})

	t.Run("anomaly still answers with the provider status", func(t *testing.T) {
		r := newMomoRouter(t, func(svc *mocks.MockMomoService) {
			svc.EXPECT().
				Reconcile(mock.Anything, "ref-1").
				Return(momo.StatusResult{ReferenceID: "ref-1", Status: "SUCCESSFUL"},
					entities.PaymentStatusPaid, entities.ErrPaymentMismatch).Once()
		})

		req := httptest.NewRequest(http.MethodGet, "/storefront/demo-store/payments/momo/request-to-pay/ref-1", nil)
		rr := httptest.NewRecorder()

		r.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
	})
}

func TestMomoHandler_Webhook(t *testing.T) {
	t.Run("callback triggers a re-poll", func(t *testing.T) {
		r := newMomoRouter(t, func(svc *mocks.MockMomoService) {
			svc.EXPECT().
				Reconcile(mock.Anything, "ref-1").
				Return(momo.StatusResult{ReferenceID: "ref-1", Status: "SUCCESSFUL"},
					entities.PaymentStatusPaid, nil).Once()
		})

		body := `{"referenceId":"ref-1","status":"SUCCESSFUL"}`
		req := httptest.NewRequest(http.MethodPut, "/webhooks/momo", strings.NewReader(body))
		rr := httptest.NewRecorder()

		r.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("reference id can come from the header", func(t *testing.T) {
		r := newMomoRouter(t, func(svc *mocks.MockMomoService) {
			svc.EXPECT().
				Reconcile(mock.Anything, "ref-2").
				Return(momo.StatusResult{}, entities.PaymentStatusPending, nil).Once()
		})

		req := httptest.NewRequest(http.MethodPost, "/webhooks/momo", bytes.NewReader([]byte(`{}`)))
		req.Header.Set("X-Reference-Id", "ref-2")
		rr := httptest.NewRecorder()

		r.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("callback without a reference is acknowledged", func(t *testing.T) {
		r := newMomoRouter(t, func(svc *mocks.MockMomoService) {})

		req := httptest.NewRequest(http.MethodPost, "/webhooks/momo", strings.NewReader(`{}`))
		rr := httptest.NewRecorder()

		r.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("reconcile failure is still acknowledged", func(t *testing.T) {
		r := newMomoRouter(t, func(svc *mocks.MockMomoService) {
			svc.EXPECT().
				Reconcile(mock.Anything, "ref-1").
				Return(momo.StatusResult{}, entities.PaymentStatus(""), assert.AnError).Once()
		})

		body := `{"referenceId":"ref-1"}`
		req := httptest.NewRequest(http.MethodPost, "/webhooks/momo", strings.NewReader(body))
		rr := httptest.NewRecorder()

		r.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
	})
}
