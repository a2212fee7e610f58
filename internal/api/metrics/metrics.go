// Package metrics defines and registers all custom Prometheus metrics for the
// CRM API. It is the single source of truth for metric names, labels, and
// help strings.
//
// Metrics register with the default Prometheus registry at package load; the
// router exposes them on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "crm"

// ── Entity metrics ────────────────────────────────────────────────────────────

// RecordsCreatedTotal counts created CRM records.
// Label:
//   - entity: "lead", "contact", "client", "call", "meeting"
var RecordsCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "records_created_total",
		Help:      "Total number of CRM records created, by entity.",
	},
	[]string{"entity"},
)

// RecordsDeletedTotal counts deleted CRM records.
// Label:
//   - entity: "lead", "contact", "client", "call", "meeting"
var RecordsDeletedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "records_deleted_total",
		Help:      "Total number of CRM records deleted, by entity.",
	},
	[]string{"entity"},
)

// ── Social integration metrics ────────────────────────────────────────────────

// GraphRequestsTotal counts outbound Graph API requests.
// Labels:
//   - endpoint: "posts", "comments", "likes", "followers", "ig_account", "ig_insights"
//   - outcome: "ok" or "error"
var GraphRequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "graph_requests_total",
		Help:      "Total number of outbound Graph API requests, by endpoint and outcome.",
	},
	[]string{"endpoint", "outcome"},
)

// AnalyticsDuration measures how long a full page analytics aggregation takes,
// including the per-post fan-out.
var AnalyticsDuration = promauto.NewHistogram(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "page_analytics_duration_seconds",
		Help:      "Duration of a full page analytics aggregation.",
		Buckets:   prometheus.DefBuckets, // .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10
	},
)

// AnalyticsPartialFailuresTotal counts posts skipped from analytics totals
// because their engagement fetch failed.
var AnalyticsPartialFailuresTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "analytics_partial_failures_total",
		Help:      "Total number of posts excluded from analytics totals due to fetch failures.",
	},
)
