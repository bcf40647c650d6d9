package qstash

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/vendyafrica/vendly-sub001/internal/config"
	"github.com/vendyafrica/vendly-sub001/internal/whatsapp"
	"github.com/vendyafrica/vendly-sub001/pkg/dedupe"

	"github.com/golang-jwt/jwt/v5"
)

// Client publishes outbound send jobs to the QStash delivery queue. With no
// token configured every enqueue degrades to a logged no-op so callers
// never fail on a missing broker.
type Client struct {
	// BaseURL is overridable for tests.
	BaseURL string

	httpc  *http.Client
	cfg    config.QStash
	store  dedupe.Store
	ttl    time.Duration
	logger *slog.Logger
}

func New(logger *slog.Logger, cfg config.QStash, store dedupe.Store, ttl time.Duration) *Client {
	return &Client{
		BaseURL: cfg.URL,
		httpc:   &http.Client{Timeout: cfg.Timeout},
		cfg:     cfg,
		store:   store,
		ttl:     ttl,
		logger:  logger.With(slog.String("component", "qstash")),
	}
}

func (c *Client) Enabled() bool {
	return c.cfg.Enabled() && c.cfg.DeliveryURL != ""
}

// EnqueueSend publishes a send job addressed at the queue delivery
// callback. The caller-supplied dedupe key is reserved before publishing as
// defense in depth against double-enqueue from retried HTTP calls; a failed
// publish releases it so the caller's retry can pass.
func (c *Client) EnqueueSend(ctx context.Context, msg whatsapp.OutboundMessage, dedupeKey string) (bool, error) {
	if !c.Enabled() {
		c.logger.InfoContext(ctx, "queue not configured, skipping enqueue", slog.String("to", msg.To))
		return false, nil
	}

	key := "queue:" + dedupeKey
	if !c.store.Reserve(key, c.ttl) {
		c.logger.DebugContext(ctx, "enqueue suppressed by dedupe", slog.String("key", key))
		return false, nil
	}

	body, err := json.Marshal(msg)
	if err != nil {
		c.store.Release(key)
		return false, fmt.Errorf("failed to marshal send job: %w", err)
	}

	destination := strings.TrimSuffix(c.cfg.DeliveryURL, "/") + "/webhooks/queue/whatsapp"
	url := strings.TrimSuffix(c.BaseURL, "/") + "/v2/publish/" + destination

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		c.store.Release(key)
		return false, fmt.Errorf("failed to build publish request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.cfg.Token)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Upstash-Deduplication-Id", dedupeKey)

	res, err := c.httpc.Do(req)
	if err != nil {
		c.store.Release(key)
		return false, fmt.Errorf("failed to publish: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode >= 300 {
		c.store.Release(key)
		data, _ := io.ReadAll(io.LimitReader(res.Body, 1024))
		return false, fmt.Errorf("publish rejected: status %d: %s", res.StatusCode, data)
	}

	return true, nil
}

// Receiver verifies the broker's delivery callback signature. QStash signs
// each delivery with a JWT whose body claim is the base64 sha256 of the raw
// request body; verification is tried with the current signing key, then
// the next one (keys rotate).
type Receiver struct {
	currentKey string
	nextKey    string
}

func NewReceiver(cfg config.QStash) Receiver {
	return Receiver{currentKey: cfg.CurrentSigningKey, nextKey: cfg.NextSigningKey}
}

func (r Receiver) Verify(signatureHeader string, body []byte) error {
	if signatureHeader == "" {
		return fmt.Errorf("missing signature")
	}
	if r.currentKey == "" && r.nextKey == "" {
		return fmt.Errorf("no signing keys configured")
	}

	err := r.verifyWithKey(signatureHeader, body, r.currentKey)
	if err != nil && r.nextKey != "" {
		err = r.verifyWithKey(signatureHeader, body, r.nextKey)
	}
	return err
}

func (r Receiver) verifyWithKey(signatureHeader string, body []byte, key string) error {
	if key == "" {
		return fmt.Errorf("empty signing key")
	}

	token, err := jwt.Parse(signatureHeader, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return []byte(key), nil
	}, jwt.WithIssuer("Upstash"))
	if err != nil {
		return fmt.Errorf("invalid signature token: %w", err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return fmt.Errorf("unexpected claims shape")
	}

	bodyClaim, _ := claims["body"].(string)
	sum := sha256.Sum256(body)
	expected := base64.URLEncoding.EncodeToString(sum[:])
	if strings.TrimRight(bodyClaim, "=") != strings.TrimRight(expected, "=") {
		return fmt.Errorf("body hash mismatch")
	}

	return nil
}
