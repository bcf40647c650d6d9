package entities

import "time"

// Recipient role of a notification.
type Role string

const (
	RoleSeller Role = "seller"
	RoleBuyer  Role = "buyer"
)

// EventKind is the logical notification event name.
type EventKind string

const (
	EventSellerNewOrder      EventKind = "seller.order.new"
	EventSellerAccepted      EventKind = "seller.order.accepted"
	EventSellerDeclined      EventKind = "seller.order.declined"
	EventSellerCompleted     EventKind = "seller.order.completed"
	EventBuyerReceived       EventKind = "buyer.order.received"
	EventBuyerPreparing      EventKind = "buyer.order.preparing"
	EventBuyerReady          EventKind = "buyer.order.ready"
	EventBuyerDeclined       EventKind = "buyer.order.declined"
	EventBuyerOutForDelivery EventKind = "buyer.order.out_for_delivery"
	EventSellerOpening       EventKind = "seller.opening"
)

// NotificationEvent is the in-flight value handed to the dispatcher. It is
// never persisted.
type NotificationEvent struct {
	Kind  EventKind
	Role  Role
	Order Order
	// Params carries extra template substitutions (rider name, tracking
	// link, ...) on top of what the order itself provides.
	Params map[string]string
}

// Payment is the reconciliation audit record written next to a confirmed
// (or initiated) provider payment.
type Payment struct {
	ReferenceID string
	OrderID     string
	TenantID    string
	Provider    string
	Amount      int64
	Currency    string
	Status      PaymentStatus
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Store is the seller-side aggregate the reconcilers resolve senders and
// storefront slugs against. Owned by the catalog service; read-only here.
type Store struct {
	ID             string
	TenantID       string
	Slug           string
	Name           string
	WhatsAppNumber string
}

// RecipientPrefs is the per-recipient suppression preference consulted by
// the dispatcher, independent of the dedupe TTL.
type RecipientPrefs struct {
	Phone         string
	OneTimeEvents bool
}
