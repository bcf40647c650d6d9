package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/vendyafrica/vendly-sub001/internal/entities"
	"github.com/vendyafrica/vendly-sub001/pkg/trm"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
)

var orderColumns = []string{
	"id", "order_number", "tenant_id", "store_id",
	"status", "payment_status",
	"customer_name", "customer_email", "customer_phone",
	"total_amount", "currency",
	"created_at", "updated_at", "deleted_at",
}

type postgresRepo struct {
	db *sqlx.DB
	qb sq.StatementBuilderType
}

func NewPostgresRepo(db *sqlx.DB) *postgresRepo {
	return &postgresRepo{
		db: db,
		qb: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

// GetOrder returns the order scoped by id + tenant. Soft-deleted rows are
// treated as absent.
func (r *postgresRepo) GetOrder(ctx context.Context, orderID, tenantID string) (entities.Order, error) {
	query, args := r.qb.Select(orderColumns...).
		From("orders").
		Where(sq.Eq{"id": orderID, "tenant_id": tenantID, "deleted_at": nil}).
		MustSql()

	return r.getOrder(ctx, query, args)
}

func (r *postgresRepo) GetOrderByNumber(ctx context.Context, tenantID, orderNumber string) (entities.Order, error) {
	query, args := r.qb.Select(orderColumns...).
		From("orders").
		Where(sq.Eq{"order_number": orderNumber, "tenant_id": tenantID, "deleted_at": nil}).
		MustSql()

	return r.getOrder(ctx, query, args)
}

// LatestOrderByStatus returns the tenant's most recent order in the given
// state; used by chat commands that name no explicit order number.
func (r *postgresRepo) LatestOrderByStatus(ctx context.Context, tenantID string, status entities.OrderStatus) (entities.Order, error) {
	query, args := r.qb.Select(orderColumns...).
		From("orders").
		Where(sq.Eq{"tenant_id": tenantID, "status": string(status), "deleted_at": nil}).
		OrderBy("created_at DESC").
		Limit(1).
		MustSql()

	return r.getOrder(ctx, query, args)
}

// UpdateOrderStatus merges only the provided status fields in a single
// conditional UPDATE scoped by id + tenant + not-soft-deleted. Zero rows
// means the order is absent (or soft-deleted).
func (r *postgresRepo) UpdateOrderStatus(ctx context.Context, orderID, tenantID string, patch entities.StatusPatch) (entities.Order, error) {
	q := r.qb.Update("orders").
		Set("updated_at", time.Now()).
		Where(sq.Eq{"id": orderID, "tenant_id": tenantID, "deleted_at": nil})

	if patch.Status != nil {
		q = q.Set("status", string(*patch.Status))
	}
	if patch.PaymentStatus != nil {
		q = q.Set("payment_status", string(*patch.PaymentStatus))
	}

	query, args := q.Suffix("RETURNING " + joinColumns(orderColumns)).MustSql()

	return r.getOrder(ctx, query, args)
}

func (r *postgresRepo) getOrder(ctx context.Context, query string, args []any) (entities.Order, error) {
	var order Order
	err := r.getContext(ctx, &order, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Order{}, entities.ErrOrderNotFound
	}
	if err != nil {
		return entities.Order{}, fmt.Errorf("failed to get order: %w", err)
	}

	items, err := r.orderItems(ctx, order.ID)
	if err != nil {
		return entities.Order{}, err
	}

	return OrderToEntity(order, items), nil
}

func (r *postgresRepo) orderItems(ctx context.Context, orderID string) ([]OrderItem, error) {
	query, args := r.qb.Select("id", "order_id", "name", "quantity", "unit_price").
		From("order_items").
		Where(sq.Eq{"order_id": orderID}).
		OrderBy("id").
		MustSql()

	var items []OrderItem
	if err := r.selectContext(ctx, &items, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select order items: %w", err)
	}
	return items, nil
}

// SavePayment records a provider payment. Idempotent: a replayed reference
// id is a no-op via ON CONFLICT DO NOTHING.
func (r *postgresRepo) SavePayment(ctx context.Context, p entities.Payment) error {
	now := time.Now()
	query, args := r.qb.Insert("payments").
		Columns("reference_id", "order_id", "tenant_id", "provider", "amount", "currency", "status", "created_at", "updated_at").
		Values(p.ReferenceID, p.OrderID, p.TenantID, p.Provider, p.Amount, p.Currency, string(p.Status), now, now).
		Suffix("ON CONFLICT (reference_id) DO NOTHING").
		MustSql()

	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to save payment: %w", err)
	}
	return nil
}

func (r *postgresRepo) GetPaymentByReference(ctx context.Context, referenceID string) (entities.Payment, error) {
	query, args := r.qb.Select("reference_id", "order_id", "tenant_id", "provider", "amount", "currency", "status", "created_at", "updated_at").
		From("payments").
		Where(sq.Eq{"reference_id": referenceID}).
		MustSql()

	var payment Payment
	err := r.getContext(ctx, &payment, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Payment{}, entities.ErrOrderNotFound
	}
	if err != nil {
		return entities.Payment{}, fmt.Errorf("failed to get payment: %w", err)
	}
	return PaymentToEntity(payment), nil
}

func (r *postgresRepo) UpdatePaymentStatus(ctx context.Context, referenceID string, status entities.PaymentStatus) error {
	query, args := r.qb.Update("payments").
		Set("status", string(status)).
		Set("updated_at", time.Now()).
		Where(sq.Eq{"reference_id": referenceID}).
		MustSql()

	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to update payment status: %w", err)
	}
	return nil
}

func (r *postgresRepo) GetStoreBySlug(ctx context.Context, slug string) (entities.Store, error) {
	query, args := r.qb.Select("id", "tenant_id", "slug", "name", "whatsapp_number").
		From("stores").
		Where(sq.Eq{"slug": slug}).
		MustSql()

	return r.getStore(ctx, query, args)
}

func (r *postgresRepo) GetStoreByID(ctx context.Context, storeID string) (entities.Store, error) {
	query, args := r.qb.Select("id", "tenant_id", "slug", "name", "whatsapp_number").
		From("stores").
		Where(sq.Eq{"id": storeID}).
		MustSql()

	return r.getStore(ctx, query, args)
}

// GetStoreByPhone matches a WhatsApp number exactly; callers try the raw,
// E.164 and plus-less candidates in order.
func (r *postgresRepo) GetStoreByPhone(ctx context.Context, phone string) (entities.Store, error) {
	query, args := r.qb.Select("id", "tenant_id", "slug", "name", "whatsapp_number").
		From("stores").
		Where(sq.Eq{"whatsapp_number": phone}).
		MustSql()

	return r.getStore(ctx, query, args)
}

func (r *postgresRepo) getStore(ctx context.Context, query string, args []any) (entities.Store, error) {
	var store Store
	err := r.getContext(ctx, &store, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Store{}, entities.ErrStoreNotFound
	}
	if err != nil {
		return entities.Store{}, fmt.Errorf("failed to get store: %w", err)
	}
	return StoreToEntity(store), nil
}

// GetRecipientPrefs returns the per-recipient notification preferences;
// absent rows mean defaults (no suppression).
func (r *postgresRepo) GetRecipientPrefs(ctx context.Context, phone string) (entities.RecipientPrefs, error) {
	query, args := r.qb.Select("phone", "one_time_events").
		From("recipient_prefs").
		Where(sq.Eq{"phone": phone}).
		MustSql()

	var prefs RecipientPrefs
	err := r.getContext(ctx, &prefs, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.RecipientPrefs{Phone: phone}, nil
	}
	if err != nil {
		return entities.RecipientPrefs{}, fmt.Errorf("failed to get recipient prefs: %w", err)
	}
	return entities.RecipientPrefs{Phone: prefs.Phone, OneTimeEvents: prefs.OneTimeEvents}, nil
}

func joinColumns(cols []string) string {
	s := ""
	for i, c := range cols {
		if i > 0 {
			s += ", "
		}
		s += c
	}
	return s
}

func (r *postgresRepo) execContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	tx := trm.ExtractTx(ctx)
	if tx != nil {
		return tx.ExecContext(ctx, query, args...)
	}
	return r.db.ExecContext(ctx, query, args...)
}

func (r *postgresRepo) getContext(ctx context.Context, dest any, query string, args ...any) error {
	tx := trm.ExtractTx(ctx)
	if tx != nil {
		return tx.GetContext(ctx, dest, query, args...)
	}
	return r.db.GetContext(ctx, dest, query, args...)
}

func (r *postgresRepo) selectContext(ctx context.Context, dest any, query string, args ...any) error {
	tx := trm.ExtractTx(ctx)
	if tx != nil {
		return tx.SelectContext(ctx, dest, query, args...)
	}
	return r.db.SelectContext(ctx, dest, query, args...)
}
