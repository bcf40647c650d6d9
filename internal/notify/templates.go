package notify

import (
	"github.com/vendyafrica/vendly-sub001/internal/entities"
)

// Template maps a logical notification event onto a provider message
// template and its ordered body parameters. OnceName, when set, is the
// variant used for recipients who opted out of repeat messages.
type Template struct {
	Name     string
	OnceName string
	Params   func(o entities.Order, store entities.Store, extra map[string]string) []string
}

var registry = map[entities.EventKind]Template{
	entities.EventSellerNewOrder: {
		Name: "seller_new_order",
		Params: func(o entities.Order, _ entities.Store, _ map[string]string) []string {
			return []string{o.OrderNumber, o.CustomerName, o.ItemSummary(), entities.FormatAmount(o.TotalAmount, o.Currency)}
		},
	},
	entities.EventSellerAccepted: {
		Name: "seller_order_accepted",
		Params: func(o entities.Order, _ entities.Store, _ map[string]string) []string {
			return []string{o.OrderNumber}
		},
	},
	entities.EventSellerDeclined: {
		Name: "seller_order_declined",
		Params: func(o entities.Order, _ entities.Store, _ map[string]string) []string {
			return []string{o.OrderNumber}
		},
	},
	entities.EventSellerCompleted: {
		Name: "seller_order_completed",
		Params: func(o entities.Order, _ entities.Store, _ map[string]string) []string {
			return []string{o.OrderNumber}
		},
	},
	entities.EventSellerOpening: {
		Name: "seller_opening",
		Params: func(_ entities.Order, store entities.Store, _ map[string]string) []string {
			return []string{store.Name}
		},
	},
	entities.EventBuyerReceived: {
		Name: "buyer_order_received",
		Params: func(o entities.Order, store entities.Store, _ map[string]string) []string {
			return []string{o.CustomerName, o.OrderNumber, entities.FormatAmount(o.TotalAmount, o.Currency), store.Name}
		},
	},
	entities.EventBuyerPreparing: {
		Name: "buyer_order_preparing",
		Params: func(o entities.Order, store entities.Store, _ map[string]string) []string {
			return []string{o.OrderNumber, store.Name}
		},
	},
	entities.EventBuyerReady: {
		Name:     "buyer_order_ready",
		OnceName: "buyer_order_ready_once",
		Params: func(o entities.Order, store entities.Store, _ map[string]string) []string {
			return []string{o.CustomerName, o.OrderNumber, store.Name}
		},
	},
	entities.EventBuyerDeclined: {
		Name:     "buyer_order_declined",
		OnceName: "buyer_order_declined_once",
		Params: func(o entities.Order, store entities.Store, _ map[string]string) []string {
			return []string{o.OrderNumber, store.Name}
		},
	},
	entities.EventBuyerOutForDelivery: {
		Name: "buyer_out_for_delivery",
		Params: func(o entities.Order, _ entities.Store, extra map[string]string) []string {
			return []string{o.OrderNumber, extra["rider_name"], extra["rider_phone"]}
		},
	},
}

// dailyKinds are sent at most once per day per recipient instead of the
// default dedupe window.
var dailyKinds = map[entities.EventKind]bool{
	entities.EventSellerOpening: true,
}

// oneTimeKinds are the events a recipient preference can force into the
// once-only variant.
var oneTimeKinds = map[entities.EventKind]bool{
	entities.EventBuyerReady:    true,
	entities.EventBuyerDeclined: true,
}

func Resolve(kind entities.EventKind) (Template, bool) {
	t, ok := registry[kind]
	return t, ok
}
