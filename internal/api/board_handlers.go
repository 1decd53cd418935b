package api

import (
	"net/http"

	"github.com/vytor/chessroyale/internal/errors"
	"github.com/vytor/chessroyale/internal/logger"
)

type activateRequest struct {
	Row *int `json:"row"`
	Col *int `json:"col"`
}

func (s *Server) handleBoard(w http.ResponseWriter, r *http.Request) {
	respond(w, r, http.StatusOK, sessionFromContext(r.Context()).Board())
}

func (s *Server) handleActivate(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	var req activateRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(w, r, err)
		return
	}
	if req.Row == nil || req.Col == nil {
		handleError(w, r, errors.NewValidationError("row/col", "both are required"))
		return
	}

	view, err := sessionFromContext(r.Context()).Activate(*req.Row, *req.Col)
	if err != nil {
		handleError(w, r, err)
		return
	}
	log.Debug("square activated: row=%d, col=%d, status=%s", *req.Row, *req.Col, view.Status)
	respond(w, r, http.StatusOK, view)
}

func (s *Server) handleReset(w http.ResponseWriter, r *http.Request) {
	view, err := sessionFromContext(r.Context()).Reset()
	if err != nil {
		handleError(w, r, err)
		return
	}
	respond(w, r, http.StatusOK, view)
}

func (s *Server) handlePGN(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(sessionFromContext(r.Context()).PGN()))
}
