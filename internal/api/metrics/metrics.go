// Package metrics defines and registers all custom Prometheus metrics for the
// tracking API. It is the single source of truth for metric names, labels,
// and help strings.
//
// Metrics are registered with the default registry via promauto at package
// init; the /metrics endpoint is mounted by the router.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "tracking"

// ── Geocoding metrics ─────────────────────────────────────────────────────────

// GeocodeLookupsTotal counts geocoding lookups against the provider.
// Label:
//   - result: "ok", "not_found", or "error"
var GeocodeLookupsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "geocode_lookups_total",
		Help:      "Total number of geocoding provider lookups, by result.",
	},
	[]string{"result"},
)

// GeocodeCacheTotal counts geocode cache decisions.
// Label:
//   - result: "hit" (served from cache) or "miss" (went to the provider)
var GeocodeCacheTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "geocode_cache_total",
		Help:      "Total number of geocode cache checks, labelled by result (hit/miss).",
	},
	[]string{"result"},
)

// ── Route resolution metrics ──────────────────────────────────────────────────

// RouteResolutionsTotal counts resolved routes by their source.
// Label:
//   - source: "provider" (fetched road route) or "fallback" (synthesized)
var RouteResolutionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "route_resolutions_total",
		Help:      "Total number of route resolutions, by source (provider/fallback).",
	},
	[]string{"source"},
)

// RouteResolveDuration measures end-to-end route resolution time, including
// the provider round trip or the fallback synthesis.
var RouteResolveDuration = promauto.NewHistogram(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "route_resolve_duration_seconds",
		Help:      "Duration of route resolution from request to final geometry.",
		Buckets:   prometheus.DefBuckets, // .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10
	},
)

// ── Tracking metrics ──────────────────────────────────────────────────────────

// TrackingLookupsTotal counts tracking number lookups.
// Label:
//   - result: "ok" or "not_found"
var TrackingLookupsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "lookups_total",
		Help:      "Total number of tracking lookups, by result.",
	},
	[]string{"result"},
)
