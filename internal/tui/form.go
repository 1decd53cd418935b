package tui

import (
	"strconv"
	"strings"

	"github.com/vytor/chessroyale/internal/errors"
	"github.com/vytor/chessroyale/internal/models"
)

// commentFields holds the raw comment form values. Empty strings are absent.
type commentFields struct {
	Comment      string
	MoveNumber   string
	Rating       string
	PlayerSide   string
	TacticalIdea string
	Evaluation   string
	TimeSpent    string
	Alternative  string
}

// toInput converts form values to a CommentInput. Blank optional fields stay
// nil.
func (f commentFields) toInput(gameID, position string) (models.CommentInput, error) {
	in := models.CommentInput{
		GameID:       optString(gameID),
		Comment:      strings.TrimSpace(f.Comment),
		PlayerSide:   optString(f.PlayerSide),
		TacticalIdea: optString(f.TacticalIdea),
		Position:     optString(position),
		Evaluation:   optString(f.Evaluation),
		Alternative:  optString(f.Alternative),
	}
	if in.Comment == "" {
		return in, errors.NewValidationError("comment", "cannot be empty")
	}

	var err error
	if in.MoveNumber, err = optInt(f.MoveNumber, "move number"); err != nil {
		return in, err
	}
	if in.Rating, err = optInt(f.Rating, "rating"); err != nil {
		return in, err
	}
	if in.Rating != nil && (*in.Rating < models.MinRating || *in.Rating > models.MaxRating) {
		return in, errors.NewValidationError("rating", "must be between 1 and 10")
	}
	if in.TimeSpent, err = optInt(f.TimeSpent, "time spent"); err != nil {
		return in, err
	}
	return in, nil
}

func optString(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}

func optInt(s, field string) (*int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return nil, errors.NewValidationError(field, "must be a whole number")
	}
	return &n, nil
}
