// Package metrics defines and registers the custom Prometheus metrics of the
// watchlist API. Request-level metrics (latency, status codes) come from the
// echoprometheus middleware; this package covers domain outcomes only.
//
// All metrics are registered on the default registry through promauto, so they
// appear on /metrics as soon as the package is imported.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "watchlist"

// Vote actions used as the "action" label of VotesTotal.
const (
	VoteCast      = "cast"
	VoteRetracted = "retracted"
)

// ── Item metrics ──────────────────────────────────────────────────────────────

// ItemsAddedTotal counts items created through POST /watchlist. Idempotent
// replays are counted too since the handler cannot tell them apart.
var ItemsAddedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "items_added_total",
		Help:      "Total number of watchlist items added.",
	},
)

// ItemsDeletedTotal counts successfully deleted items.
var ItemsDeletedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "items_deleted_total",
		Help:      "Total number of watchlist items deleted.",
	},
)

// ItemsWatchedTotal counts successful mark-as-watched calls.
var ItemsWatchedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "items_watched_total",
		Help:      "Total number of items marked as watched.",
	},
)

// ── Vote metrics ──────────────────────────────────────────────────────────────

// VotesTotal counts vote toggles.
// Label:
//   - action: "cast" or "retracted"
var VotesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "votes_total",
		Help:      "Total number of vote toggles, labelled by resulting action.",
	},
	[]string{"action"},
)

// RandomPicksTotal counts successful random picks.
var RandomPicksTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "random_picks_total",
		Help:      "Total number of random unwatched items picked.",
	},
)

// ── Error metrics ─────────────────────────────────────────────────────────────

// DomainErrorsTotal counts requests that ended in a mapped domain error.
// Label:
//   - reason: short error code (e.g. "item_not_found", "forbidden", "edit_conflict")
var DomainErrorsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "domain_errors_total",
		Help:      "Total number of requests rejected with a domain error, by reason.",
	},
	[]string{"reason"},
)
