package momo

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/vendyafrica/vendly-sub001/internal/config"
	"github.com/vendyafrica/vendly-sub001/internal/entities"

	"github.com/google/uuid"
)

// RequestToPayInput describes a payment-initiation request. ExternalID is
// by convention the order id, so the later status poll can be reconciled
// back to its order.
type RequestToPayInput struct {
	ExternalID   string
	Amount       int64
	Currency     string
	PayerMSISDN  string
	PayerMessage string
	PayeeNote    string
}

// StatusResult is the authoritative answer of the provider's status
// endpoint. Amounts are in minor units.
type StatusResult struct {
	ReferenceID string
	ExternalID  string
	Amount      int64
	Currency    string
	Status      string
	Reason      string
}

type Client struct {
	// BaseURL is overridable for tests.
	BaseURL string

	httpc *http.Client
	cfg   config.Momo
}

func New(cfg config.Momo) *Client {
	return &Client{
		BaseURL: cfg.BaseURL,
		httpc:   &http.Client{Timeout: cfg.Timeout},
		cfg:     cfg,
	}
}

// RequestToPay initiates a collection and returns the minted reference id
// used for all later status polls.
func (c *Client) RequestToPay(ctx context.Context, in RequestToPayInput) (string, error) {
	referenceID := uuid.NewString()

	payload := map[string]any{
		"amount":       strconv.FormatInt(in.Amount, 10),
		"currency":     in.Currency,
		"externalId":   in.ExternalID,
		"payer":        map[string]string{"partyIdType": "MSISDN", "partyId": in.PayerMSISDN},
		"payerMessage": in.PayerMessage,
		"payeeNote":    in.PayeeNote,
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request to pay: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+"/collection/v1_0/requesttopay", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("X-Reference-Id", referenceID)
	req.Header.Set("Content-Type", "application/json")
	c.auth(req)
	if c.cfg.CallbackURL != "" {
		req.Header.Set("X-Callback-Url", c.cfg.CallbackURL)
	}

	res, err := c.httpc.Do(req)
	if err != nil {
		return "", fmt.Errorf("request to pay failed: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusAccepted {
		data, _ := io.ReadAll(io.LimitReader(res.Body, 1024))
		return "", fmt.Errorf("request to pay rejected: status %d: %s", res.StatusCode, data)
	}

	return referenceID, nil
}

// Status polls the authoritative request-to-pay status for a reference id.
func (c *Client) Status(ctx context.Context, referenceID string) (StatusResult, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+"/collection/v1_0/requesttopay/"+referenceID, nil)
	if err != nil {
		return StatusResult{}, fmt.Errorf("failed to build request: %w", err)
	}
	c.auth(req)

	res, err := c.httpc.Do(req)
	if err != nil {
		return StatusResult{}, fmt.Errorf("status request failed: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		data, _ := io.ReadAll(io.LimitReader(res.Body, 1024))
		return StatusResult{}, fmt.Errorf("status request rejected: status %d: %s", res.StatusCode, data)
	}

	var raw struct {
		Amount     string `json:"amount"`
		Currency   string `json:"currency"`
		ExternalID string `json:"externalId"`
		Status     string `json:"status"`
		Reason     string `json:"reason"`
	}
	if err := json.NewDecoder(res.Body).Decode(&raw); err != nil {
		return StatusResult{}, fmt.Errorf("failed to decode status: %w", err)
	}

	amount, _ := strconv.ParseInt(raw.Amount, 10, 64)

	return StatusResult{
		ReferenceID: referenceID,
		ExternalID:  raw.ExternalID,
		Amount:      amount,
		Currency:    raw.Currency,
		Status:      raw.Status,
		Reason:      raw.Reason,
	}, nil
}

func (c *Client) auth(req *http.Request) {
	req.SetBasicAuth(c.cfg.APIUser, c.cfg.APIKey)
	req.Header.Set("Ocp-Apim-Subscription-Key", c.cfg.SubscriptionKey)
	req.Header.Set("X-Target-Environment", c.cfg.TargetEnv)
}

// NormalizeStatus maps the provider's free-text status onto the domain.
// Unknown statuses are pending, never paid.
func NormalizeStatus(s string) entities.PaymentStatus {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "SUCCESSFUL":
		return entities.PaymentStatusPaid
	case "FAILED", "REJECTED", "TIMEOUT":
		return entities.PaymentStatusFailed
	default:
		return entities.PaymentStatusPending
	}
}
