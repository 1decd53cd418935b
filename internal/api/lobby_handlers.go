package api

import (
	"net/http"

	"github.com/vytor/chessroyale/internal/logger"
)

type joinRequest struct {
	Code string `json:"code"`
}

func (s *Server) handleSession(w http.ResponseWriter, r *http.Request) {
	respond(w, r, http.StatusOK, sessionFromContext(r.Context()).View())
}

func (s *Server) handleCreateGame(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	view, err := sessionFromContext(r.Context()).CreateGame()
	if err != nil {
		handleError(w, r, err)
		return
	}
	log.Info("game created: code=%s", view.GameCode)
	respond(w, r, http.StatusCreated, view)
}

func (s *Server) handleJoinGame(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	var req joinRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(w, r, err)
		return
	}

	view, err := sessionFromContext(r.Context()).JoinGame(req.Code)
	if err != nil {
		handleError(w, r, err)
		return
	}
	log.Info("game joined: code=%s", view.GameCode)
	respond(w, r, http.StatusOK, view)
}

func (s *Server) handleStartGame(w http.ResponseWriter, r *http.Request) {
	view, err := sessionFromContext(r.Context()).StartGame()
	if err != nil {
		handleError(w, r, err)
		return
	}
	respond(w, r, http.StatusOK, view)
}
