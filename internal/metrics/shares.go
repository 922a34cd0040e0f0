package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	NameShareGrantsCreated        = "share_grants_created"
	NameShareAccessDecisions      = "share_access_decisions"
	NameShareNotificationFailures = "share_notification_failures"
	LabelContentKind              = "content_kind"
	LabelDecision                 = "decision"
)

var ShareGrantsCreated = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name:      NameShareGrantsCreated,
		Help:      "Share grants created",
		Namespace: Namespace,
	},
	[]string{LabelContentKind},
)

var ShareAccessDecisions = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name:      NameShareAccessDecisions,
		Help:      "Share access decisions",
		Namespace: Namespace,
	},
	[]string{LabelDecision},
)

var ShareNotificationFailures = promauto.NewCounter(
	prometheus.CounterOpts{
		Name:      NameShareNotificationFailures,
		Help:      "Share notifications that could not be dispatched",
		Namespace: Namespace,
	},
)
