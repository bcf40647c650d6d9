package notify

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	notificationsSent = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "vendly",
		Subsystem: "notifier",
		Name:      "sent_total",
		Help:      "Notifications handed to the provider or the delivery queue.",
	}, []string{"kind", "via"})

	notificationsSuppressed = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "vendly",
		Subsystem: "notifier",
		Name:      "suppressed_total",
		Help:      "Notifications suppressed before sending.",
	}, []string{"kind", "reason"})

	notificationsFailed = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "vendly",
		Subsystem: "notifier",
		Name:      "failed_total",
		Help:      "Notification sends that failed downstream.",
	}, []string{"kind"})
)
