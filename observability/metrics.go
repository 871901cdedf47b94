package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	OutcomeDelivered = "delivered"
	OutcomeCancelled = "cancelled"
	OutcomeFailed    = "failed"
)

var (
	NotificationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "chat_notifications_total",
			Help: "Notifications handed to the broadcaster, by event kind and outcome",
		},
		[]string{"kind", "outcome"},
	)

	ReconciledMessagesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "chat_reconciled_messages_total",
			Help: "Messages visited after a content item deletion, by outcome",
		},
		[]string{"outcome"},
	)

	ConnectedClients = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "chat_connected_clients",
			Help: "Current number of connected websocket clients",
		},
	)

	SinkFailuresTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "chat_sink_failures_total",
			Help: "Envelopes a single client sink failed to accept",
		},
	)

	RelayedEnvelopesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "chat_relayed_envelopes_total",
			Help: "Envelopes exchanged with other instances, by direction",
		},
		[]string{"direction"},
	)

	ContentQueueSize = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "chat_content_queue_size",
			Help: "Content deletion signals waiting for reconciliation",
		},
	)
)
