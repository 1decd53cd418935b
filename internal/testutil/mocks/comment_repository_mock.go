package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
	"github.com/vytor/chessroyale/internal/models"
)

// MockCommentRepository is a mock implementation of repository.CommentRepository
type MockCommentRepository struct {
	mock.Mock
}

func (m *MockCommentRepository) Insert(ctx context.Context, input models.CommentInput) (*models.Comment, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Comment), args.Error(1)
}

func (m *MockCommentRepository) ListByGame(ctx context.Context, gameID string) ([]models.Comment, error) {
	args := m.Called(ctx, gameID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Comment), args.Error(1)
}

func (m *MockCommentRepository) ListRecent(ctx context.Context, limit int) ([]models.Comment, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Comment), args.Error(1)
}

func (m *MockCommentRepository) ListByMove(ctx context.Context, gameID string, moveNumber int) ([]models.Comment, error) {
	args := m.Called(ctx, gameID, moveNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Comment), args.Error(1)
}

func (m *MockCommentRepository) GameStats(ctx context.Context, gameID string) (*models.GameStats, error) {
	args := m.Called(ctx, gameID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.GameStats), args.Error(1)
}
