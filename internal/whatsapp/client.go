package whatsapp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/vendyafrica/vendly-sub001/internal/config"
)

const defaultBaseURL = "https://graph.facebook.com/v19.0"

// OutboundMessage is the rendered send job handed to the client, either
// directly or through the delivery queue callback.
type OutboundMessage struct {
	To       string   `json:"to" validate:"required"`
	Template string   `json:"template,omitempty"`
	Params   []string `json:"params,omitempty"`
	Text     string   `json:"text,omitempty"`
}

type Client struct {
	// BaseURL is overridable for tests.
	BaseURL string

	httpc         *http.Client
	token         string
	phoneNumberID string
}

func New(cfg config.WhatsApp) *Client {
	return &Client{
		BaseURL:       defaultBaseURL,
		httpc:         &http.Client{Timeout: cfg.Timeout},
		token:         cfg.AccessToken,
		phoneNumberID: cfg.PhoneNumberID,
	}
}

func (c *Client) Configured() bool {
	return c.token != "" && c.phoneNumberID != ""
}

// Send delivers an outbound message: template when msg.Template is set,
// plain text otherwise.
func (c *Client) Send(ctx context.Context, msg OutboundMessage) error {
	if msg.Template != "" {
		return c.SendTemplate(ctx, msg.To, msg.Template, msg.Params)
	}
	return c.SendText(ctx, msg.To, msg.Text)
}

func (c *Client) SendTemplate(ctx context.Context, to, template string, params []string) error {
	parameters := make([]map[string]string, 0, len(params))
	for _, p := range params {
		parameters = append(parameters, map[string]string{"type": "text", "text": p})
	}

	payload := map[string]any{
		"messaging_product": "whatsapp",
		"to":                to,
		"type":              "template",
		"template": map[string]any{
			"name":     template,
			"language": map[string]string{"code": "en"},
			"components": []map[string]any{
				{"type": "body", "parameters": parameters},
			},
		},
	}

	return c.post(ctx, payload)
}

func (c *Client) SendText(ctx context.Context, to, body string) error {
	payload := map[string]any{
		"messaging_product": "whatsapp",
		"to":                to,
		"type":              "text",
		"text":              map[string]string{"body": body},
	}

	return c.post(ctx, payload)
}

func (c *Client) post(ctx context.Context, payload any) error {
	if !c.Configured() {
		return fmt.Errorf("whatsapp client is not configured")
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal message: %w", err)
	}

	url := fmt.Sprintf("%s/%s/messages", c.BaseURL, c.phoneNumberID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Content-Type", "application/json")

	res, err := c.httpc.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send message: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode >= 300 {
		data, _ := io.ReadAll(io.LimitReader(res.Body, 1024))
		return fmt.Errorf("message send rejected: status %d: %s", res.StatusCode, data)
	}
	return nil
}
