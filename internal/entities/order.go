package entities

import (
	"errors"
	"fmt"
	"time"
)

type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusCompleted  OrderStatus = "completed"
	OrderStatusCancelled  OrderStatus = "cancelled"
	OrderStatusRefunded   OrderStatus = "refunded"
)

type PaymentStatus string

const (
	PaymentStatusPending  PaymentStatus = "pending"
	PaymentStatusPaid     PaymentStatus = "paid"
	PaymentStatusFailed   PaymentStatus = "failed"
	PaymentStatusRefunded PaymentStatus = "refunded"
)

type Order struct {
	ID          string
	OrderNumber string
	TenantID    string
	StoreID     string

	// Status and PaymentStatus are independent axes: a refund can follow
	// completion, a cancellation can precede payment.
	Status        OrderStatus
	PaymentStatus PaymentStatus

	CustomerName  string
	CustomerEmail string
	CustomerPhone string

	// TotalAmount is in minor currency units (cents, kobo, ...).
	TotalAmount int64
	Currency    string

	Items []OrderItem

	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt *time.Time
}

type OrderItem struct {
	ID        string
	OrderID   string
	Name      string
	Quantity  int
	UnitPrice int64
}

// StatusPatch carries the fields a transition wants to change. Nil fields
// are left untouched by the conditional update.
type StatusPatch struct {
	Status        *OrderStatus
	PaymentStatus *PaymentStatus
}

func (p StatusPatch) Empty() bool {
	return p.Status == nil && p.PaymentStatus == nil
}

var (
	ErrOrderNotFound   = errors.New("order not found")
	ErrStoreNotFound   = errors.New("store not found")
	ErrPaymentMismatch = errors.New("payment amount or currency mismatch")
	ErrNotRecognized   = errors.New("payload shape not recognized")
)

// FormatOrderNumber renders the store-scoped sequential code, e.g. ORD-0007.
func FormatOrderNumber(seq int) string {
	return fmt.Sprintf("ORD-%04d", seq)
}

// FormatAmount renders a minor-unit amount as "KES 50.00".
func FormatAmount(amount int64, currency string) string {
	return fmt.Sprintf("%s %d.%02d", currency, amount/100, amount%100)
}

// ItemSummary renders the order lines as a single human-readable string
// for message templates, e.g. "2x Chapati, 1x Samosa".
func (o Order) ItemSummary() string {
	if len(o.Items) == 0 {
		return "your order"
	}
	s := ""
	for i, it := range o.Items {
		if i > 0 {
			s += ", "
		}
		s += fmt.Sprintf("%dx %s", it.Quantity, it.Name)
	}
	return s
}
