package api

import (
	"net/http"

	"github.com/vytor/chessroyale/internal/logger"
)

// handleHealth is the liveness probe; it always returns 200.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("OK"))
}

// handleReady returns 200 when the storage endpoint answers a ping, 503
// otherwise.
func (s *Server) handleReady(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromContext(ctx)

	if s.DB == nil {
		log.Warn("readiness check failed - database not configured")
		w.WriteHeader(http.StatusServiceUnavailable)
		w.Write([]byte("Database not configured"))
		return
	}
	if err := s.DB.PingContext(ctx); err != nil {
		log.Warn("readiness check failed - database: %v", err)
		w.WriteHeader(http.StatusServiceUnavailable)
		w.Write([]byte("Database unavailable"))
		return
	}

	w.WriteHeader(http.StatusOK)
	w.Write([]byte("Ready"))
}
