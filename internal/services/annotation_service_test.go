package services_test

import (
	"context"
	stderrors "errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/vytor/chessroyale/internal/errors"
	"github.com/vytor/chessroyale/internal/models"
	"github.com/vytor/chessroyale/internal/services"
	"github.com/vytor/chessroyale/internal/testutil"
	"github.com/vytor/chessroyale/internal/testutil/mocks"
)

func TestAddComment_Success(t *testing.T) {
	repo := new(mocks.MockCommentRepository)
	svc := services.NewAnnotationService(repo)
	ctx := context.Background()

	stored := &models.Comment{ID: 7, Comment: "Nice move", CreatedAt: time.Now()}
	repo.On("Insert", ctx, models.CommentInput{Comment: "Nice move"}).Return(stored, nil)

	got, err := svc.AddComment(ctx, models.CommentInput{Comment: "  Nice move \n"})
	require.NoError(t, err)
	assert.Equal(t, int64(7), got.ID)
	repo.AssertExpectations(t)
}

func TestAddComment_EmptyText(t *testing.T) {
	repo := new(mocks.MockCommentRepository)
	svc := services.NewAnnotationService(repo)

	_, err := svc.AddComment(context.Background(), models.CommentInput{Comment: "   ", Rating: testutil.Ptr(5)})
	require.Error(t, err)

	appErr := errors.As(err)
	assert.Equal(t, errors.ErrCodeValidation, appErr.Code)
	assert.Equal(t, http.StatusBadRequest, appErr.Status)
	repo.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
}

func TestAddComment_StorageFault(t *testing.T) {
	repo := new(mocks.MockCommentRepository)
	svc := services.NewAnnotationService(repo)
	ctx := context.Background()

	repo.On("Insert", ctx, mock.Anything).Return(nil, stderrors.New("connection reset"))

	_, err := svc.AddComment(ctx, models.CommentInput{Comment: "x"})
	require.Error(t, err)

	appErr := errors.As(err)
	assert.Equal(t, errors.ErrCodeStorage, appErr.Code)
	assert.Equal(t, "failed to add comment", appErr.Message)
	assert.NotContains(t, appErr.Message, "connection reset")
	assert.Equal(t, http.StatusInternalServerError, appErr.Status)
}

func TestAddComment_StorageUnconfigured(t *testing.T) {
	repo := new(mocks.MockCommentRepository)
	svc := services.NewAnnotationService(repo)
	ctx := context.Background()

	repo.On("Insert", ctx, mock.Anything).Return(nil, errors.ErrStorageUnavailable)

	_, err := svc.AddComment(ctx, models.CommentInput{Comment: "x"})
	appErr := errors.As(err)
	assert.Equal(t, errors.ErrCodeStorage, appErr.Code)
	assert.Equal(t, http.StatusServiceUnavailable, appErr.Status)
}

func TestListComments_ForGame(t *testing.T) {
	repo := new(mocks.MockCommentRepository)
	svc := services.NewAnnotationService(repo)
	ctx := context.Background()

	repo.On("ListByGame", ctx, "G1").Return([]models.Comment{{ID: 1}, {ID: 2}}, nil)

	got, err := svc.ListComments(ctx, testutil.Ptr(" G1 "))
	require.NoError(t, err)
	assert.Len(t, got, 2)
	repo.AssertNotCalled(t, "ListRecent", mock.Anything, mock.Anything)
}

func TestListComments_Recent(t *testing.T) {
	repo := new(mocks.MockCommentRepository)
	svc := services.NewAnnotationService(repo)
	ctx := context.Background()

	repo.On("ListRecent", ctx, models.RecentCommentsLimit).Return([]models.Comment{}, nil).Twice()

	got, err := svc.ListComments(ctx, nil)
	require.NoError(t, err)
	assert.Empty(t, got)

	_, err = svc.ListComments(ctx, testutil.Ptr(""))
	require.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestListComments_StorageFault(t *testing.T) {
	repo := new(mocks.MockCommentRepository)
	svc := services.NewAnnotationService(repo)
	ctx := context.Background()

	repo.On("ListByGame", ctx, "G1").Return(nil, stderrors.New("boom"))

	_, err := svc.ListComments(ctx, testutil.Ptr("G1"))
	assert.Equal(t, errors.ErrCodeStorage, errors.As(err).Code)
}

func TestListMoveComments(t *testing.T) {
	repo := new(mocks.MockCommentRepository)
	svc := services.NewAnnotationService(repo)
	ctx := context.Background()

	repo.On("ListByMove", ctx, "G1", 4).Return([]models.Comment{{ID: 3}}, nil)

	got, err := svc.ListMoveComments(ctx, "G1", 4)
	require.NoError(t, err)
	assert.Len(t, got, 1)

	_, err = svc.ListMoveComments(ctx, " ", 4)
	assert.Equal(t, errors.ErrCodeValidation, errors.As(err).Code)
}

func TestGameStats(t *testing.T) {
	repo := new(mocks.MockCommentRepository)
	svc := services.NewAnnotationService(repo)
	ctx := context.Background()

	avg := 5.0
	repo.On("GameStats", ctx, "G1").Return(&models.GameStats{TotalComments: 3, AvgRating: &avg, MovesWithComments: 2}, nil)
	repo.On("GameStats", ctx, "BAD").Return(nil, stderrors.New("timeout"))

	stats, err := svc.GameStats(ctx, "G1")
	require.NoError(t, err)
	assert.Equal(t, int64(3), stats.TotalComments)

	_, err = svc.GameStats(ctx, "BAD")
	appErr := errors.As(err)
	assert.Equal(t, errors.ErrCodeStorage, appErr.Code)
	assert.Equal(t, "failed to load game statistics", appErr.Message)

	_, err = svc.GameStats(ctx, "")
	assert.Equal(t, errors.ErrCodeValidation, errors.As(err).Code)
}
