package repository

import (
	"context"

	"github.com/vytor/chessroyale/internal/models"
)

// CommentRepository handles game comment data access
type CommentRepository interface {
	Insert(ctx context.Context, input models.CommentInput) (*models.Comment, error)
	ListByGame(ctx context.Context, gameID string) ([]models.Comment, error)
	ListRecent(ctx context.Context, limit int) ([]models.Comment, error)
	ListByMove(ctx context.Context, gameID string, moveNumber int) ([]models.Comment, error)
	GameStats(ctx context.Context, gameID string) (*models.GameStats, error)
}
