package momo_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/vendyafrica/vendly-sub001/internal/config"
	"github.com/vendyafrica/vendly-sub001/internal/entities"
	"github.com/vendyafrica/vendly-sub001/internal/momo"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newClient(baseURL string) *momo.Client {
	c := momo.New(config.Momo{
		SubscriptionKey: "sub-key",
		APIUser:         "api-user",
		APIKey:          "api-key",
		TargetEnv:       "sandbox",
		Timeout:         time.Second,
	})
	c.BaseURL = baseURL
	return c
}

func TestClient_RequestToPay(t *testing.T) {
	var gotBody map[string]any
	var gotReferenceID string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/collection/v1_0/requesttopay", r.URL.Path)
		assert.Equal(t, "sub-key", r.Header.Get("Ocp-Apim-Subscription-Key"))
		assert.Equal(t, "sandbox", r.Header.Get("X-Target-Environment"))

		gotReferenceID = r.Header.Get("X-Reference-Id")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.WriteHeader(http.StatusAccepted)
	}))
	defer srv.Close()

	c := newClient(srv.URL)

	referenceID, err := c.RequestToPay(context.Background(), momo.RequestToPayInput{
		ExternalID:  "order-1",
		Amount:      5000,
		Currency:    "UGX",
		PayerMSISDN: "+256780000000",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, referenceID)
	assert.Equal(t, referenceID, gotReferenceID)
	assert.Equal(t, "5000", gotBody["amount"])
	assert.Equal(t, "UGX", gotBody["currency"])
	assert.Equal(t, "order-1", gotBody["externalId"])
}

func TestClient_RequestToPay_Rejected(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "bad request", http.StatusBadRequest)
	}))
	defer srv.Close()

	c := newClient(srv.URL)

	_, err := c.RequestToPay(context.Background(), momo.RequestToPayInput{Amount: 100, Currency: "UGX"})
	assert.Error(t, err)
}

func TestClient_Status(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/collection/v1_0/requesttopay/ref-1", r.URL.Path)
		json.NewEncoder(w).Encode(map[string]any{
			"amount":     "5000",
			"currency":   "UGX",
			"externalId": "order-1",
			"status":     "SUCCESSFUL",
		})
	}))
	defer srv.Close()

	c := newClient(srv.URL)

	res, err := c.Status(context.Background(), "ref-1")
	require.NoError(t, err)

	assert.Equal(t, momo.StatusResult{
		ReferenceID: "ref-1",
		ExternalID:  "order-1",
		Amount:      5000,
		Currency:    "UGX",
		Status:      "SUCCESSFUL",
	}, res)
}

func TestNormalizeStatus(t *testing.T) {
	testCases := []struct {
		status string
		want   entities.PaymentStatus
	}{
		{"SUCCESSFUL", entities.PaymentStatusPaid},
		{"successful", entities.PaymentStatusPaid},
		{" Successful ", entities.PaymentStatusPaid},
		{"FAILED", entities.PaymentStatusFailed},
		{"REJECTED", entities.PaymentStatusFailed},
		{"TIMEOUT", entities.PaymentStatusFailed},
		{"PENDING", entities.PaymentStatusPending},
		{"ONGOING", entities.PaymentStatusPending},
		{"", entities.PaymentStatusPending},
		{"garbage", entities.PaymentStatusPending},
	}

	for _, tc := range testCases {
		t.Run(tc.status, func(t *testing.T) {
			assert.Equal(t, tc.want, momo.NormalizeStatus(tc.status))
		})
	}
}
