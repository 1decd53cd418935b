package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/vytor/chessroyale/internal/metrics"
)

func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(recoveryMiddleware)
	r.Use(loggingMiddleware)
	r.Use(metricsMiddleware)
	r.Use(securityHeadersMiddleware)

	r.Get("/healthz", s.handleHealth)
	r.Get("/readyz", s.handleReady)
	r.Handle("/metrics", metrics.Handler())

	r.Route("/api", func(r chi.Router) {
		r.Use(s.sessionMiddleware)

		r.Get("/session", s.handleSession)
		r.Post("/games", s.handleCreateGame)
		r.Post("/games/join", s.handleJoinGame)
		r.Post("/games/start", s.handleStartGame)

		r.Get("/board", s.handleBoard)
		r.Post("/board/activate", s.handleActivate)
		r.Post("/board/reset", s.handleReset)
		r.Get("/board/pgn", s.handlePGN)

		r.Post("/comments", s.handleAddComment)
		r.Get("/comments", s.handleListComments)
		r.Get("/games/{gameID}/moves/{moveNumber}/comments", s.handleMoveComments)
		r.Get("/games/{gameID}/stats", s.handleGameStats)
	})
	return r
}
