package repo

import (
	"database/sql"
	"time"

	"github.com/vendyafrica/vendly-sub001/internal/entities"
)

type Order struct {
	ID            string         `db:"id"`
	OrderNumber   string         `db:"order_number"`
	TenantID      string         `db:"tenant_id"`
	StoreID       string         `db:"store_id"`
	Status        string         `db:"status"`
	PaymentStatus string         `db:"payment_status"`
	CustomerName  string         `db:"customer_name"`
	CustomerEmail sql.NullString `db:"customer_email"`
	CustomerPhone sql.NullString `db:"customer_phone"`
	TotalAmount   int64          `db:"total_amount"`
	Currency      string         `db:"currency"`
	CreatedAt     time.Time      `db:"created_at"`
	UpdatedAt     time.Time      `db:"updated_at"`
	DeletedAt     sql.NullTime   `db:"deleted_at"`
}

type OrderItem struct {
	ID        string `db:"id"`
	OrderID   string `db:"order_id"`
	Name      string `db:"name"`
	Quantity  int    `db:"quantity"`
	UnitPrice int64  `db:"unit_price"`
}

type Payment struct {
	ReferenceID string    `db:"reference_id"`
	OrderID     string    `db:"order_id"`
	TenantID    string    `db:"tenant_id"`
	Provider    string    `db:"provider"`
	Amount      int64     `db:"amount"`
	Currency    string    `db:"currency"`
	Status      string    `db:"status"`
	CreatedAt   time.Time `db:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"`
}

type Store struct {
	ID             string         `db:"id"`
	TenantID       string         `db:"tenant_id"`
	Slug           string         `db:"slug"`
	Name           string         `db:"name"`
	WhatsAppNumber sql.NullString `db:"whatsapp_number"`
}

type RecipientPrefs struct {
	Phone         string `db:"phone"`
	OneTimeEvents bool   `db:"one_time_events"`
}

func OrderToEntity(o Order, items []OrderItem) entities.Order {
	order := entities.Order{
		ID:            o.ID,
		OrderNumber:   o.OrderNumber,
		TenantID:      o.TenantID,
		StoreID:       o.StoreID,
		Status:        entities.OrderStatus(o.Status),
		PaymentStatus: entities.PaymentStatus(o.PaymentStatus),
		CustomerName:  o.CustomerName,
		CustomerEmail: nullStringToString(o.CustomerEmail),
		CustomerPhone: nullStringToString(o.CustomerPhone),
		TotalAmount:   o.TotalAmount,
		Currency:      o.Currency,
		CreatedAt:     o.CreatedAt,
		UpdatedAt:     o.UpdatedAt,
	}

	if o.DeletedAt.Valid {
		t := o.DeletedAt.Time
		order.DeletedAt = &t
	}

	if len(items) > 0 {
		order.Items = make([]entities.OrderItem, 0, len(items))
		for _, it := range items {
			order.Items = append(order.Items, ItemToEntity(it))
		}
	}

	return order
}

func ItemToEntity(i OrderItem) entities.OrderItem {
	return entities.OrderItem{
		ID:        i.ID,
		OrderID:   i.OrderID,
		Name:      i.Name,
		Quantity:  i.Quantity,
		UnitPrice: i.UnitPrice,
	}
}

func PaymentToEntity(p Payment) entities.Payment {
	return entities.Payment{
		ReferenceID: p.ReferenceID,
		OrderID:     p.OrderID,
		TenantID:    p.TenantID,
		Provider:    p.Provider,
		Amount:      p.Amount,
		Currency:    p.Currency,
		Status:      entities.PaymentStatus(p.Status),
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func StoreToEntity(s Store) entities.Store {
	return entities.Store{
		ID:             s.ID,
		TenantID:       s.TenantID,
		Slug:           s.Slug,
		Name:           s.Name,
		WhatsAppNumber: nullStringToString(s.WhatsAppNumber),
	}
}

func nullStringToString(ns sql.NullString) string {
	if ns.Valid {
		return ns.String
	}
	return ""
}
