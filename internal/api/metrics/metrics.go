// Package metrics defines and registers all custom Prometheus metrics for the
// SFP-ACIM finance API. It is the single source of truth for metric names,
// labels, and help strings.
//
// Metrics are registered with the default Prometheus registry at import time
// via promauto; the /metrics endpoint is wired by the router.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "sfpacim"

// AuthEventsTotal counts audit events persisted by the dispatcher workers.
// Label:
//   - kind: "user_registered", "login_ok" or "login_failed"
var AuthEventsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_events_total",
		Help:      "Total number of authentication audit events recorded, by kind.",
	},
	[]string{"kind"},
)

// TokenValidationsTotal counts bearer-token validation outcomes.
// Label:
//   - result: "ok", "expired", "invalid_signature" or "malformed"
var TokenValidationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "token_validations_total",
		Help:      "Total number of JWT validations, by result.",
	},
	[]string{"result"},
)

// LoginThrottleRejectionsTotal counts logins rejected by the redis throttle
// before credential verification.
var LoginThrottleRejectionsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "login_throttle_rejections_total",
		Help:      "Total number of login attempts rejected by the failed-login throttle.",
	},
)

// EventsQueueDepth tracks the number of audit events waiting in each worker channel.
// Label:
//   - worker_id: numeric worker index (e.g. "0", "1", …)
var EventsQueueDepth = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "events_queue_depth",
		Help:      "Current number of audit events pending in each dispatcher worker channel.",
	},
	[]string{"worker_id"},
)
