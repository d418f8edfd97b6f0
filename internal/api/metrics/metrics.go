// Package metrics defines and registers the custom Prometheus metrics for the
// restaurant API. It is the single source of truth for metric names, labels,
// and help strings. Metrics self-register with the default registry via
// promauto at package load.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "restaurant"

// LoginsTotal counts login attempts.
// Label:
//   - result: "success" or "failure"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// RegistrationsTotal counts successfully created accounts.
var RegistrationsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of user accounts registered.",
	},
)

// TokensRevokedTotal counts tokens added to the revocation registry.
var TokensRevokedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "tokens_revoked_total",
		Help:      "Total number of session tokens revoked via logout.",
	},
)

// RecordsMutatedTotal counts successful record mutations.
// Labels:
//   - entity: "dish" or "table"
//   - op: "create", "update", or "delete"
var RecordsMutatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "records_mutated_total",
		Help:      "Total number of successful record mutations, by entity and operation.",
	},
	[]string{"entity", "op"},
)
