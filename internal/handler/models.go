package handler

// Provider webhook payloads are weakly structured third-party JSON. The
// types below decode leniently and expose extraction helpers that report
// "not recognized" instead of failing on shape mismatches.

// PaystackEvent is the card-payment webhook envelope.
type PaystackEvent struct {
	Event string       `json:"event"`
	Data  PaystackData `json:"data"`
}

type PaystackData struct {
	Reference string         `json:"reference"`
	Amount    int64          `json:"amount"`
	Currency  string         `json:"currency"`
	Metadata  map[string]any `json:"metadata"`
}

// OrderRef digs the order and tenant ids out of the charge metadata.
func (e PaystackEvent) OrderRef() (orderID, tenantID string, ok bool) {
	orderID, okOrder := stringField(e.Data.Metadata, "order_id")
	tenantID, okTenant := stringField(e.Data.Metadata, "tenant_id")
	return orderID, tenantID, okOrder && okTenant
}

func stringField(m map[string]any, key string) (string, bool) {
	if m == nil {
		return "", false
	}
	v, ok := m[key].(string)
	return v, ok && v != ""
}

// WhatsAppEnvelope is the chat provider's webhook envelope. Only text
// messages are acted on; statuses and other change types are ignored.
type WhatsAppEnvelope struct {
	Entry []struct {
		Changes []struct {
			Field string `json:"field"`
			Value struct {
				Messages []struct {
					From string `json:"from"`
					ID   string `json:"id"`
					Type string `json:"type"`
					Text struct {
						Body string `json:"body"`
					} `json:"text"`
				} `json:"messages"`
			} `json:"value"`
		} `json:"changes"`
	} `json:"entry"`
}

type InboundText struct {
	MessageID string
	From      string
	Body      string
}

func (e WhatsAppEnvelope) TextMessages() []InboundText {
	var out []InboundText
	for _, entry := range e.Entry {
		for _, change := range entry.Changes {
			if change.Field != "" && change.Field != "messages" {
				continue
			}
			for _, m := range change.Value.Messages {
				if m.Type != "text" || m.From == "" {
					continue
				}
				out = append(out, InboundText{MessageID: m.ID, From: m.From, Body: m.Text.Body})
			}
		}
	}
	return out
}

// MomoCallback is the mobile-money webhook payload. It is never trusted as
// source of truth; only the reference id is taken, to trigger a re-poll.
type MomoCallback struct {
	ReferenceID string `json:"referenceId"`
	ExternalID  string `json:"externalId"`
	Status      string `json:"status"`
}

// InitiatePaymentRequest starts a mobile-money request-to-pay.
type InitiatePaymentRequest struct {
	OrderID      string `json:"orderId" validate:"required"`
	PayerMsisdn  string `json:"payerMsisdn,omitempty"`
	PayerMessage string `json:"payerMessage,omitempty"`
}

// InitiatePaymentResponse acknowledges an accepted request-to-pay.
type InitiatePaymentResponse struct {
	ReferenceID   string `json:"referenceId"`
	OrderID       string `json:"orderId"`
	PaymentStatus string `json:"paymentStatus"`
}

// PaymentStatusResponse carries the provider's live status plus its
// normalized domain form.
type PaymentStatusResponse struct {
	ReferenceID   string `json:"referenceId"`
	OrderID       string `json:"orderId"`
	Status        string `json:"status"`
	PaymentStatus string `json:"paymentStatus"`
}
