package notify

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/vendyafrica/vendly-sub001/internal/entities"
	"github.com/vendyafrica/vendly-sub001/internal/events"
	"github.com/vendyafrica/vendly-sub001/internal/whatsapp"
	"github.com/vendyafrica/vendly-sub001/pkg/dedupe"
	"github.com/vendyafrica/vendly-sub001/pkg/phone"
)

type Repo interface {
	GetOrder(ctx context.Context, orderID, tenantID string) (entities.Order, error)
	GetStoreByID(ctx context.Context, storeID string) (entities.Store, error)
	GetRecipientPrefs(ctx context.Context, phone string) (entities.RecipientPrefs, error)
}

type Sender interface {
	Send(ctx context.Context, msg whatsapp.OutboundMessage) error
}

type Queue interface {
	Enabled() bool
	EnqueueSend(ctx context.Context, msg whatsapp.OutboundMessage, dedupeKey string) (bool, error)
}

type Config struct {
	DefaultCountryCode string
	TTL                time.Duration
	DailyTTL           time.Duration
}

// Dispatcher turns notification events into at-most-once provider sends.
// It is side-effect-only: nothing it does can fail its caller.
type Dispatcher struct {
	logger *slog.Logger
	repo   Repo
	store  dedupe.Store
	queue  Queue
	sender Sender
	cfg    Config
}

func NewDispatcher(logger *slog.Logger, repo Repo, store dedupe.Store, queue Queue, sender Sender, cfg Config) *Dispatcher {
	return &Dispatcher{
		logger: logger.With(slog.String("service", "notify")),
		repo:   repo,
		store:  store,
		queue:  queue,
		sender: sender,
		cfg:    cfg,
	}
}

// Emit satisfies events.Sink so the dispatcher doubles as the in-line
// handoff when no broker is configured. The order is reloaded so the
// notification always reflects the authoritative row.
func (d *Dispatcher) Emit(ctx context.Context, evt events.Event) error {
	order, err := d.repo.GetOrder(ctx, evt.OrderID, evt.TenantID)
	if errors.Is(err, entities.ErrOrderNotFound) {
		d.logger.WarnContext(ctx, "event for unknown order", slog.String("order_id", evt.OrderID), slog.String("kind", string(evt.Kind)))
		return nil
	}
	if err != nil {
		return err
	}

	d.Notify(ctx, entities.NotificationEvent{
		Kind:   evt.Kind,
		Role:   evt.Role,
		Order:  order,
		Params: evt.Params,
	})
	return nil
}

// Notify resolves the recipient, consults the dedupe cache and hands the
// rendered template to the delivery queue or the provider client. Errors
// are logged, never returned.
func (d *Dispatcher) Notify(ctx context.Context, evt entities.NotificationEvent) {
	kind := string(evt.Kind)

	store, err := d.repo.GetStoreByID(ctx, evt.Order.StoreID)
	if err != nil && evt.Role == entities.RoleSeller {
		d.logger.ErrorContext(ctx, "failed to resolve store for seller notification",
			slog.String("store_id", evt.Order.StoreID), slog.Any("error", err))
		notificationsFailed.WithLabelValues(kind).Inc()
		return
	}

	var raw string
	switch evt.Role {
	case entities.RoleSeller:
		raw = store.WhatsAppNumber
	default:
		raw = evt.Order.CustomerPhone
	}

	address := phone.Normalize(raw, d.cfg.DefaultCountryCode)
	if address == "" {
		d.logger.DebugContext(ctx, "no recipient address, skipping notification",
			slog.String("kind", kind), slog.String("order_id", evt.Order.ID))
		notificationsSuppressed.WithLabelValues(kind, "no_recipient").Inc()
		return
	}

	oneTime := false
	if evt.Role == entities.RoleBuyer && oneTimeKinds[evt.Kind] {
		prefs, err := d.repo.GetRecipientPrefs(ctx, address)
		if err != nil {
			d.logger.ErrorContext(ctx, "failed to load recipient prefs", slog.Any("error", err))
		} else {
			oneTime = prefs.OneTimeEvents
		}
	}

	ttl := d.cfg.TTL
	if dailyKinds[evt.Kind] || oneTime {
		ttl = d.cfg.DailyTTL
	}

	key := fmt.Sprintf("%s:%s:%s:%s", evt.Role, evt.Kind, evt.Order.ID, address)
	if !d.store.Reserve(key, ttl) {
		notificationsSuppressed.WithLabelValues(kind, "dedupe").Inc()
		return
	}

	tmpl, ok := Resolve(evt.Kind)
	if !ok {
		d.logger.ErrorContext(ctx, "no template registered for event", slog.String("kind", kind))
		return
	}

	name := tmpl.Name
	if oneTime && tmpl.OnceName != "" {
		name = tmpl.OnceName
	}

	msg := whatsapp.OutboundMessage{
		To:       address,
		Template: name,
		Params:   tmpl.Params(evt.Order, store, evt.Params),
	}

	if d.queue != nil && d.queue.Enabled() {
		if _, err := d.queue.EnqueueSend(ctx, msg, key); err != nil {
			d.logger.ErrorContext(ctx, "failed to enqueue notification",
				slog.String("kind", kind), slog.Any("error", err))
			notificationsFailed.WithLabelValues(kind).Inc()
			return
		}
		notificationsSent.WithLabelValues(kind, "queue").Inc()
		return
	}

	// The reservation is kept on failure: at-most-once within the window,
	// retries belong to the delivery queue.
	if err := d.sender.Send(ctx, msg); err != nil {
		d.logger.ErrorContext(ctx, "failed to send notification",
			slog.String("kind", kind), slog.Any("error", err))
		notificationsFailed.WithLabelValues(kind).Inc()
		return
	}
	notificationsSent.WithLabelValues(kind, "direct").Inc()
}
