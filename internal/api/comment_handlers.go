package api

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/vytor/chessroyale/internal/errors"
	"github.com/vytor/chessroyale/internal/models"
)

func (s *Server) handleAddComment(w http.ResponseWriter, r *http.Request) {
	var input models.CommentInput
	if err := decodeJSON(w, r, &input); err != nil {
		handleError(w, r, err)
		return
	}

	comment, err := s.Annotations.AddComment(r.Context(), input)
	if err != nil {
		handleError(w, r, err)
		return
	}
	respond(w, r, http.StatusCreated, comment)
}

func (s *Server) handleListComments(w http.ResponseWriter, r *http.Request) {
	var gameID *string
	if q := r.URL.Query(); q.Has("game_id") {
		id := q.Get("game_id")
		gameID = &id
	}

	comments, err := s.Annotations.ListComments(r.Context(), gameID)
	if err != nil {
		handleError(w, r, err)
		return
	}
	respond(w, r, http.StatusOK, comments)
}

func (s *Server) handleMoveComments(w http.ResponseWriter, r *http.Request) {
	gameID := chi.URLParam(r, "gameID")
	moveStr := chi.URLParam(r, "moveNumber")
	moveNumber, err := strconv.Atoi(moveStr)
	if err != nil {
		handleError(w, r, errors.NewValidationError("move_number", "must be an integer"))
		return
	}

	comments, err := s.Annotations.ListMoveComments(r.Context(), gameID, moveNumber)
	if err != nil {
		handleError(w, r, err)
		return
	}
	respond(w, r, http.StatusOK, comments)
}

func (s *Server) handleGameStats(w http.ResponseWriter, r *http.Request) {
	stats, err := s.Annotations.GameStats(r.Context(), chi.URLParam(r, "gameID"))
	if err != nil {
		handleError(w, r, err)
		return
	}
	respond(w, r, http.StatusOK, stats)
}
