package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/vendyafrica/vendly-sub001/internal/chatcmd"
	"github.com/vendyafrica/vendly-sub001/internal/entities"
	"github.com/vendyafrica/vendly-sub001/pkg/dedupe"
	"github.com/vendyafrica/vendly-sub001/pkg/phone"
)

// ChatReplier sends free-text replies back to the chat sender.
type ChatReplier interface {
	SendText(ctx context.Context, to, body string) error
}

type chatService struct {
	logger      *slog.Logger
	repo        OrderRepo
	orders      *orderService
	replier     ChatReplier
	dedupe      dedupe.Store
	countryCode string
	replyTTL    time.Duration
}

func NewChatService(logger *slog.Logger, repo OrderRepo, orders *orderService, replier ChatReplier, store dedupe.Store, countryCode string, replyTTL time.Duration) *chatService {
	return &chatService{
		logger:      logger.With(slog.String("service", "chat")),
		repo:        repo,
		orders:      orders,
		replier:     replier,
		dedupe:      store,
		countryCode: countryCode,
		replyTTL:    replyTTL,
	}
}

// HandleMessage interprets one inbound chat message from a seller and
// applies the resulting order transition. It never returns an error to the
// webhook: every outcome is acknowledged, at most with a help reply.
func (s *chatService) HandleMessage(ctx context.Context, sender, text string) {
	store, err := s.resolveStore(ctx, sender)
	if errors.Is(err, entities.ErrStoreNotFound) {
		s.logger.WarnContext(ctx, "chat message from unmapped sender", slog.String("sender", sender))
		s.reply(ctx, sender, "chat:help:"+sender, chatcmd.HelpText)
		return
	}
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to resolve chat sender", slog.String("sender", sender), slog.Any("error", err))
		return
	}

	act := chatcmd.Interpret(text)
	if act.Command == chatcmd.CommandUnknown {
		s.reply(ctx, sender, fmt.Sprintf("chat:help:%s:%s", store.TenantID, sender), chatcmd.HelpText)
		return
	}

	order, err := s.resolveOrder(ctx, store.TenantID, act)
	if errors.Is(err, entities.ErrOrderNotFound) {
		s.reply(ctx, sender, fmt.Sprintf("chat:nomatch:%s:%s", store.TenantID, act.Command),
			"No matching order found. "+chatcmd.HelpText)
		return
	}
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to resolve chat target order", slog.Any("error", err))
		return
	}

	switch act.Command {
	case chatcmd.CommandAccept:
		s.transitionAndAck(ctx, sender, order, entities.OrderStatusProcessing,
			entities.EventSellerAccepted, entities.EventBuyerPreparing)
	case chatcmd.CommandDecline:
		s.transitionAndAck(ctx, sender, order, entities.OrderStatusCancelled,
			entities.EventSellerDeclined, entities.EventBuyerDeclined)
	case chatcmd.CommandReady:
		s.transitionAndAck(ctx, sender, order, entities.OrderStatusCompleted,
			entities.EventSellerCompleted, entities.EventBuyerReady)
	case chatcmd.CommandOut:
		// No persisted state change: notify the buyer and echo the order
		// details back to the sender.
		s.orders.emit(ctx, order, entities.RoleBuyer, entities.EventBuyerOutForDelivery, nil)
		s.reply(ctx, sender, fmt.Sprintf("chat:out:%s:%s", order.ID, sender), orderDetailsText(order))
	}
}

// resolveStore maps the sender address to a store: exact match first, then
// E.164-normalized, then without the leading plus.
func (s *chatService) resolveStore(ctx context.Context, sender string) (entities.Store, error) {
	candidates := []string{sender}
	if normalized := phone.Normalize(sender, s.countryCode); normalized != "" {
		candidates = append(candidates, normalized, strings.TrimPrefix(normalized, "+"))
	}

	for _, candidate := range candidates {
		store, err := s.repo.GetStoreByPhone(ctx, candidate)
		if err == nil {
			return store, nil
		}
		if !errors.Is(err, entities.ErrStoreNotFound) {
			return entities.Store{}, err
		}
	}
	return entities.Store{}, entities.ErrStoreNotFound
}

// resolveOrder picks the target: the explicit order number when one was
// given, otherwise the tenant's most recent order in the state the command
// expects (pending for accept/decline, processing for ready/out).
func (s *chatService) resolveOrder(ctx context.Context, tenantID string, act chatcmd.Action) (entities.Order, error) {
	if act.OrderNumber != "" {
		return s.repo.GetOrderByNumber(ctx, tenantID, act.OrderNumber)
	}

	status := entities.OrderStatusPending
	if act.Command == chatcmd.CommandReady || act.Command == chatcmd.CommandOut {
		status = entities.OrderStatusProcessing
	}
	return s.repo.LatestOrderByStatus(ctx, tenantID, status)
}

func (s *chatService) transitionAndAck(ctx context.Context, sender string, order entities.Order, status entities.OrderStatus, sellerKind, buyerKind entities.EventKind) {
	updated, err := s.orders.ApplyTransition(ctx, order.ID, order.TenantID, entities.StatusPatch{Status: &status})
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to apply chat transition",
			slog.String("order_id", order.ID), slog.Any("error", err))
		return
	}

	s.orders.emit(ctx, updated, entities.RoleSeller, sellerKind, nil)
	s.orders.emit(ctx, updated, entities.RoleBuyer, buyerKind, nil)
}

// reply sends a text back to the sender, deduped so a replayed webhook does
// not resend the same acknowledgement.
func (s *chatService) reply(ctx context.Context, to, key, body string) {
	if !s.dedupe.Reserve(key, s.replyTTL) {
		return
	}
	if err := s.replier.SendText(ctx, to, body); err != nil {
		s.logger.ErrorContext(ctx, "failed to send chat reply", slog.String("to", to), slog.Any("error", err))
	}
}

func orderDetailsText(o entities.Order) string {
	return fmt.Sprintf("%s for %s\n%s\nTotal: %s\nStatus: %s / %s",
		o.OrderNumber, o.CustomerName, o.ItemSummary(),
		entities.FormatAmount(o.TotalAmount, o.Currency), o.Status, o.PaymentStatus)
}
