// Package metrics defines and registers all custom Prometheus metrics for the
// notary practice API. It is the single source of truth for metric names,
// labels, and help strings.
//
// Metrics register with the default Prometheus registry at package init; the
// router exposes them on /metrics together with the echoprometheus HTTP
// instrumentation.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "notary"

// ── Case workflow metrics ─────────────────────────────────────────────────────

// CasesCreatedTotal counts opened cases.
// Label:
//   - type: the case type supplied at intake (e.g. "Power of Attorney")
var CasesCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "cases_created_total",
		Help:      "Total number of cases created, by case type.",
	},
	[]string{"type"},
)

// CaseTransitionsTotal counts successful status transitions.
// Label:
//   - status: the status the case moved to
var CaseTransitionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "case_transitions_total",
		Help:      "Total number of case status transitions, by target status.",
	},
	[]string{"status"},
)

// ── Scheduling metrics ────────────────────────────────────────────────────────

// BookingsTotal counts appointments successfully booked.
var BookingsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "bookings_total",
		Help:      "Total number of appointments booked.",
	},
)

// BookingConflictsTotal counts bookings rejected by the overlap scan.
var BookingConflictsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "booking_conflicts_total",
		Help:      "Total number of booking attempts rejected because the slot overlapped an existing appointment.",
	},
)

// BookingDuration measures the booking sequence from lock acquisition to insert.
// Label:
//   - result: "booked", "conflict" or "error"
var BookingDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "booking_duration_seconds",
		Help:      "Duration of the lock/scan/insert booking sequence.",
		Buckets:   prometheus.DefBuckets, // .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10
	},
	[]string{"result"},
)

// ── Audit metrics ─────────────────────────────────────────────────────────────

// AuditWriteFailuresTotal counts audit inserts that failed after a successful
// business mutation. A non-zero rate means the trail has holes.
// Label:
//   - entity: the entity whose mutation lost its audit record
var AuditWriteFailuresTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "audit_write_failures_total",
		Help:      "Total number of audit records that could not be written, by entity.",
	},
	[]string{"entity"},
)
