// Package metrics defines and registers all custom Prometheus metrics for the
// users service. It is the single source of truth for metric names, labels,
// and help strings. Metrics register on the default registry at import time
// via promauto; HTTP-level metrics come from the echoprometheus middleware
// wired in the router.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "users"

// ── Auth metrics ──────────────────────────────────────────────────────────────

// RegistrationsTotal counts registration attempts.
// Label:
//   - outcome: "success", "conflict" (duplicate email), "rejected" (policy)
var RegistrationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of registration attempts, by outcome.",
	},
	[]string{"outcome"},
)

// LoginsTotal counts login attempts.
// Label:
//   - outcome: "success", "unknown_email", "bad_password", "throttled"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by outcome.",
	},
	[]string{"outcome"},
)

// PolicyRejectionsTotal counts passwords rejected by the strength policy.
var PolicyRejectionsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "password_policy_rejections_total",
		Help:      "Total number of passwords rejected by the strength policy.",
	},
)

// RoleRevalidationsTotal counts role revalidation checks on privileged routes.
// Label:
//   - result: "ok" (token role matches the store) or "stale" (role changed
//     after the token was issued)
var RoleRevalidationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "role_revalidations_total",
		Help:      "Total number of role revalidation checks, by result.",
	},
	[]string{"result"},
)

// ── Audit metrics ─────────────────────────────────────────────────────────────

// AuditDroppedTotal counts audit events dropped because the trail buffer was
// full. Recording is fire-and-forget, so a drop is the only observable loss.
var AuditDroppedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "audit_events_dropped_total",
		Help:      "Total number of audit events dropped due to a full buffer.",
	},
)

// ── Catalog metrics ───────────────────────────────────────────────────────────

// AppsCreatedTotal counts applications added to the catalog.
var AppsCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "apps_created_total",
		Help:      "Total number of applications created in the catalog.",
	},
)
