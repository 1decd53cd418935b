package services

import (
	"context"
	"strings"

	"github.com/vytor/chessroyale/internal/errors"
	"github.com/vytor/chessroyale/internal/logger"
	"github.com/vytor/chessroyale/internal/metrics"
	"github.com/vytor/chessroyale/internal/models"
	"github.com/vytor/chessroyale/internal/repository"
)

// AnnotationService is the operation boundary of the comment store. Every
// storage fault is logged here and returned as a STORAGE_ERROR AppError.
type AnnotationService interface {
	AddComment(ctx context.Context, input models.CommentInput) (*models.Comment, error)
	ListComments(ctx context.Context, gameID *string) ([]models.Comment, error)
	ListMoveComments(ctx context.Context, gameID string, moveNumber int) ([]models.Comment, error)
	GameStats(ctx context.Context, gameID string) (*models.GameStats, error)
}

type annotationService struct {
	commentRepo repository.CommentRepository
}

// NewAnnotationService creates a new AnnotationService
func NewAnnotationService(commentRepo repository.CommentRepository) AnnotationService {
	return &annotationService{commentRepo: commentRepo}
}

func (s *annotationService) AddComment(ctx context.Context, input models.CommentInput) (*models.Comment, error) {
	log := logger.FromContext(ctx).WithPrefix("annotations")

	input.Comment = strings.TrimSpace(input.Comment)
	if input.Comment == "" {
		return nil, errors.NewValidationError("comment", "cannot be empty")
	}
	log.Debug("adding comment: game_id=%s", deref(input.GameID))

	comment, err := s.commentRepo.Insert(ctx, input)
	if err != nil {
		log.WithField("op", "add_comment").Error("failed to add comment: game_id=%s: %v", deref(input.GameID), err)
		metrics.StorageErrors.WithLabelValues("add_comment").Inc()
		return nil, errors.NewStorageError("failed to add comment", err)
	}

	metrics.CommentsCreated.Inc()
	log.Info("comment added: id=%d", comment.ID)
	return comment, nil
}

func (s *annotationService) ListComments(ctx context.Context, gameID *string) ([]models.Comment, error) {
	log := logger.FromContext(ctx).WithPrefix("annotations")

	var (
		comments []models.Comment
		err      error
	)
	if gameID != nil && strings.TrimSpace(*gameID) != "" {
		id := strings.TrimSpace(*gameID)
		log.Debug("listing comments for game: game_id=%s", id)
		comments, err = s.commentRepo.ListByGame(ctx, id)
	} else {
		log.Debug("listing recent comments")
		comments, err = s.commentRepo.ListRecent(ctx, models.RecentCommentsLimit)
	}
	if err != nil {
		log.WithField("op", "list_comments").Error("failed to list comments: game_id=%s: %v", deref(gameID), err)
		metrics.StorageErrors.WithLabelValues("list_comments").Inc()
		return nil, errors.NewStorageError("failed to load comments", err)
	}
	return comments, nil
}

func (s *annotationService) ListMoveComments(ctx context.Context, gameID string, moveNumber int) ([]models.Comment, error) {
	log := logger.FromContext(ctx).WithPrefix("annotations")

	gameID = strings.TrimSpace(gameID)
	if gameID == "" {
		return nil, errors.NewValidationError("game_id", "is required")
	}
	log.Debug("listing move comments: game_id=%s, move_number=%d", gameID, moveNumber)

	comments, err := s.commentRepo.ListByMove(ctx, gameID, moveNumber)
	if err != nil {
		log.WithField("op", "list_move_comments").Error("failed to list move comments: game_id=%s, move_number=%d: %v", gameID, moveNumber, err)
		metrics.StorageErrors.WithLabelValues("list_move_comments").Inc()
		return nil, errors.NewStorageError("failed to load move comments", err)
	}
	return comments, nil
}

func (s *annotationService) GameStats(ctx context.Context, gameID string) (*models.GameStats, error) {
	log := logger.FromContext(ctx).WithPrefix("annotations")

	gameID = strings.TrimSpace(gameID)
	if gameID == "" {
		return nil, errors.NewValidationError("game_id", "is required")
	}
	log.Debug("computing game stats: game_id=%s", gameID)

	stats, err := s.commentRepo.GameStats(ctx, gameID)
	if err != nil {
		log.WithField("op", "game_stats").Error("failed to compute game stats: game_id=%s: %v", gameID, err)
		metrics.StorageErrors.WithLabelValues("game_stats").Inc()
		return nil, errors.NewStorageError("failed to load game statistics", err)
	}
	return stats, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
