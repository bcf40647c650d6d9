package handler

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	webhooksTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "vendly",
		Subsystem: "webhooks",
		Name:      "received_total",
		Help:      "Webhook deliveries by provider and outcome.",
	}, []string{"provider", "outcome"})

	reconciliationAnomalies = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "vendly",
		Subsystem: "webhooks",
		Name:      "reconciliation_anomalies_total",
		Help:      "Payment confirmations aborted on amount or currency mismatch.",
	}, []string{"provider"})

	eventsProcessed = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "vendly",
		Subsystem: "kafka_consumer",
		Name:      "events_processed_total",
		Help:      "Order events successfully dispatched.",
	})

	eventsFailed = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "vendly",
		Subsystem: "kafka_consumer",
		Name:      "events_failed_total",
		Help:      "Order events that failed processing.",
	})

	eventsDLQ = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "vendly",
		Subsystem: "kafka_consumer",
		Name:      "events_dlq_total",
		Help:      "Order events written to the DLQ.",
	})

	commitErrors = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "vendly",
		Subsystem: "kafka_consumer",
		Name:      "commit_errors_total",
		Help:      "Kafka commit errors.",
	})
)

const (
	outcomeOK        = "ok"
	outcomeRejected  = "rejected"
	outcomeIgnored   = "ignored"
	outcomeNotFound  = "not_found"
	outcomeAnomaly   = "anomaly"
	outcomeDuplicate = "duplicate"
	outcomeMalformed = "malformed"
	outcomeError     = "error"
)
