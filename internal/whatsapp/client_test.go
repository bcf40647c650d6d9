package whatsapp_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/vendyafrica/vendly-sub001/internal/config"
	"github.com/vendyafrica/vendly-sub001/internal/whatsapp"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newClient(baseURL string) *whatsapp.Client {
	c := whatsapp.New(config.WhatsApp{
		AccessToken:   "token",
		PhoneNumberID: "12345",
		Timeout:       time.Second,
	})
	c.BaseURL = baseURL
	return c
}

func TestClient_SendTemplate(t *testing.T) {
	var gotPath, gotAuth string
	var gotBody map[string]any

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	c := newClient(srv.URL)

	err := c.Send(context.Background(), whatsapp.OutboundMessage{
		To:       "+256780000000",
		Template: "seller_new_order",
		Params:   []string{"ORD-0007", "UGX 50.00"},
	})
	require.NoError(t, err)

	assert.Equal(t, "/12345/messages", gotPath)
	assert.Equal(t, "Bearer token", gotAuth)
	assert.Equal(t, "whatsapp", gotBody["messaging_product"])
	assert.Equal(t, "template", gotBody["type"])

	tmpl, ok := gotBody["template"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "seller_new_order", tmpl["name"])
}

func TestClient_SendText(t *testing.T) {
	var gotBody map[string]any

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	c := newClient(srv.URL)

	err := c.Send(context.Background(), whatsapp.OutboundMessage{To: "+256780000000", Text: "hello"})
	require.NoError(t, err)

	assert.Equal(t, "text", gotBody["type"])
	text, ok := gotBody["text"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "hello", text["body"])
}

func TestClient_SendRejected(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"invalid token"}`, http.StatusUnauthorized)
	}))
	defer srv.Close()

	c := newClient(srv.URL)

	err := c.SendText(context.Background(), "+256780000000", "hello")
	assert.ErrorContains(t, err, "status 401")
}

func TestClient_NotConfigured(t *testing.T) {
	c := whatsapp.New(config.WhatsApp{Timeout: time.Second})

	assert.False(t, c.Configured())
	assert.Error(t, c.SendText(context.Background(), "+256780000000", "hello"))
}
