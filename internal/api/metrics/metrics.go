// Package metrics defines and registers all custom Prometheus metrics for the
// events API. It is the single source of truth for metric names, labels, and
// help strings.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "events_api"

// UsersRegisteredTotal counts successful account registrations.
var UsersRegisteredTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "users_registered_total",
		Help:      "Total number of accounts registered.",
	},
)

// LoginsTotal counts login attempts.
// Label:
//   - result: "success", "failure", or "throttled"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// EventMutationsTotal counts admin event mutations.
// Label:
//   - action: "created", "updated", or "deleted"
var EventMutationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "event_mutations_total",
		Help:      "Total number of admin event mutations, by action.",
	},
	[]string{"action"},
)

// EventRegistrationsTotal counts user registrations for events.
var EventRegistrationsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "event_registrations_total",
		Help:      "Total number of user registrations for events.",
	},
)

// AuditQueueDepth tracks the number of audit entries waiting in each
// dispatcher worker channel.
// Label:
//   - worker_id: numeric worker index
var AuditQueueDepth = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "audit_queue_depth",
		Help:      "Current number of audit entries pending in each dispatcher worker channel.",
	},
	[]string{"worker_id"},
)

// AuditWritesTotal counts audit log writes.
// Label:
//   - result: "ok", "error", or "dropped" (enqueue with a full worker buffer)
var AuditWritesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "audit_writes_total",
		Help:      "Total number of audit log writes, by result.",
	},
	[]string{"result"},
)
