// Package metrics holds the process-wide prometheus collectors.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	HTTPRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "chessroyale_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "route", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "chessroyale_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "chessroyale_http_requests_in_flight",
			Help: "Number of HTTP requests currently being processed",
		},
	)

	// Board
	MovesApplied = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "chessroyale_moves_applied_total",
			Help: "Total number of legal moves applied to any board",
		},
	)

	GamesCreated = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "chessroyale_games_total",
			Help: "Games entered from the lobby, by how they were entered",
		},
		[]string{"via"},
	)

	ActiveSessions = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "chessroyale_sessions_active",
			Help: "Number of live lobby sessions",
		},
	)

	// Annotations
	CommentsCreated = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "chessroyale_comments_created_total",
			Help: "Total number of stored comments",
		},
	)

	StorageErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "chessroyale_storage_errors_total",
			Help: "Storage faults caught at the annotation boundary",
		},
		[]string{"op"},
	)
)

// Handler exposes the default registry.
func Handler() http.Handler {
	return promhttp.Handler()
}
