package qstash_test

import (
	"context"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/vendyafrica/vendly-sub001/internal/config"
	"github.com/vendyafrica/vendly-sub001/internal/qstash"
	"github.com/vendyafrica/vendly-sub001/internal/whatsapp"
	"github.com/vendyafrica/vendly-sub001/pkg/dedupe"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

func newQueueClient(baseURL string, cfg config.QStash) *qstash.Client {
	c := qstash.New(testLogger, cfg, dedupe.NewMemoryStore(), time.Minute)
	if baseURL != "" {
		c.BaseURL = baseURL
	}
	return c
}

func TestClient_EnqueueSend(t *testing.T) {
	cfg := config.QStash{
		Token:       "qstash-token",
		DeliveryURL: "https://api.example.com",
		Timeout:     time.Second,
	}
	msg := whatsapp.OutboundMessage{To: "+256780000000", Template: "seller_new_order"}

	t.Run("publishes the job with a deduplication id", func(t *testing.T) {
		var gotPath, gotAuth, gotDedupID string
		var gotMsg whatsapp.OutboundMessage

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotPath = r.URL.Path
			gotAuth = r.Header.Get("Authorization")
			gotDedupID = r.Header.Get("Upstash-Deduplication-Id")
			require.NoError(t, json.NewDecoder(r.Body).Decode(&gotMsg))
			w.WriteHeader(http.StatusCreated)
		}))
		defer srv.Close()

		c := newQueueClient(srv.URL, cfg)

		enqueued, err := c.EnqueueSend(context.Background(), msg, "seller:new:order-1")
		require.NoError(t, err)
		assert.True(t, enqueued)

		assert.Equal(t, "/v2/publish/https://api.example.com/webhooks/queue/whatsapp", gotPath)
		assert.Equal(t, "Bearer qstash-token", gotAuth)
		assert.Equal(t, "seller:new:order-1", gotDedupID)
		assert.Equal(t, msg, gotMsg)
	})

	t.Run("duplicate enqueue is suppressed", func(t *testing.T) {
		calls := 0
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			calls++
			w.WriteHeader(http.StatusCreated)
		}))
		defer srv.Close()

		c := newQueueClient(srv.URL, cfg)

		enqueued, err := c.EnqueueSend(context.Background(), msg, "key-1")
		require.NoError(t, err)
		assert.True(t, enqueued)

		enqueued, err = c.EnqueueSend(context.Background(), msg, "key-1")
		require.NoError(t, err)
		assert.False(t, enqueued)
		assert.Equal(t, 1, calls)
	})

	t.Run("failed publish releases the reservation", func(t *testing.T) {
		calls := 0
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			calls++
			if calls == 1 {
				http.Error(w, "server error", http.StatusInternalServerError)
				return
			}
			w.WriteHeader(http.StatusCreated)
		}))
		defer srv.Close()

		c := newQueueClient(srv.URL, cfg)

		_, err := c.EnqueueSend(context.Background(), msg, "key-1")
		assert.Error(t, err)

		enqueued, err := c.EnqueueSend(context.Background(), msg, "key-1")
		require.NoError(t, err)
		assert.True(t, enqueued)
	})

	t.Run("not configured degrades to a no-op", func(t *testing.T) {
		c := newQueueClient("", config.QStash{Timeout: time.Second})

		assert.False(t, c.Enabled())

		enqueued, err := c.EnqueueSend(context.Background(), msg, "key-1")
		require.NoError(t, err)
		assert.False(t, enqueued)
	})
}

func signDelivery(t *testing.T, key string, body []byte) string {
	t.Helper()

	sum := sha256.Sum256(body)
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"iss":  "Upstash",
		"body": base64.URLEncoding.EncodeToString(sum[:]),
		"exp":  time.Now().Add(time.Minute).Unix(),
	})
	signed, err := token.SignedString([]byte(key))
	require.NoError(t, err)
	return signed
}

func TestReceiver_Verify(t *testing.T) {
	body := []byte(`{"to":"+256780000000"}`)
	receiver := qstash.NewReceiver(config.QStash{
		CurrentSigningKey: "current-key",
		NextSigningKey:    "next-key",
	})

	t.Run("accepts a token signed with the current key", func(t *testing.T) {
		assert.NoError(t, receiver.Verify(signDelivery(t, "current-key", body), body))
	})

	t.Run("accepts a token signed with the next key", func(t *testing.T) {
		assert.NoError(t, receiver.Verify(signDelivery(t, "next-key", body), body))
	})

	t.Run("rejects a token signed with an unknown key", func(t *testing.T) {
		assert.Error(t, receiver.Verify(signDelivery(t, "forged-key", body), body))
	})

	t.Run("rejects a token whose body hash does not match", func(t *testing.T) {
		signature := signDelivery(t, "current-key", []byte("other body"))
		assert.Error(t, receiver.Verify(signature, body))
	})

	t.Run("rejects a missing signature", func(t *testing.T) {
		assert.Error(t, receiver.Verify("", body))
	})

	t.Run("rejects when no keys are configured", func(t *testing.T) {
		empty := qstash.NewReceiver(config.QStash{})
		assert.Error(t, empty.Verify(signDelivery(t, "current-key", body), body))
	})
}
