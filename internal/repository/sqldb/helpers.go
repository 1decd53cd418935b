package sqldb

import (
	"strconv"

	"github.com/vytor/chessroyale/internal/models"
)

type rowScanner interface {
	Scan(dest ...any) error
}

func scanComment(row rowScanner) (*models.Comment, error) {
	var c models.Comment
	err := row.Scan(&c.ID, &c.GameID, &c.MoveNumber, &c.Comment, &c.Rating, &c.PlayerSide, &c.TacticalIdea,
		&c.Position, &c.Evaluation, &c.TimeSpent, &c.Alternative, &c.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func strOrNil(s *string) string {
	if s == nil {
		return "<nil>"
	}
	return *s
}

func intOrNil(i *int) string {
	if i == nil {
		return "<nil>"
	}
	return strconv.Itoa(*i)
}
