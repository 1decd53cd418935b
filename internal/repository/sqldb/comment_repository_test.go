package sqldb_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"github.com/vytor/chessroyale/internal/db"
	apperrors "github.com/vytor/chessroyale/internal/errors"
	"github.com/vytor/chessroyale/internal/models"
	"github.com/vytor/chessroyale/internal/repository"
	"github.com/vytor/chessroyale/internal/repository/sqldb"
	"github.com/vytor/chessroyale/internal/testutil"
)

type CommentRepositorySuite struct {
	suite.Suite
	db   *db.DB
	repo repository.CommentRepository
}

func (s *CommentRepositorySuite) SetupTest() {
	s.db = testutil.NewTestDB(s.T())
	s.repo = sqldb.NewCommentRepository(s.db)
}

func (s *CommentRepositorySuite) TearDownTest() {
	testutil.MustClose(s.T(), s.db)
}

func (s *CommentRepositorySuite) insert(gameID *string, moveNumber *int, rating *int, text string) *models.Comment {
	c, err := s.repo.Insert(context.Background(), models.CommentInput{
		GameID:     gameID,
		MoveNumber: moveNumber,
		Rating:     rating,
		Comment:    text,
	})
	s.Require().NoError(err)
	return c
}

func (s *CommentRepositorySuite) TestInsert_CommentOnly() {
	ctx := context.Background()

	created, err := s.repo.Insert(ctx, models.CommentInput{Comment: "Nice move"})
	s.Require().NoError(err)
	s.Assert().Greater(created.ID, int64(0))
	s.Assert().Equal("Nice move", created.Comment)
	s.Assert().Nil(created.GameID)
	s.Assert().Nil(created.MoveNumber)
	s.Assert().Nil(created.Rating)
	s.Assert().Nil(created.PlayerSide)
	s.Assert().Nil(created.TacticalIdea)
	s.Assert().False(created.CreatedAt.IsZero())

	recent, err := s.repo.ListRecent(ctx, models.RecentCommentsLimit)
	s.Require().NoError(err)
	s.Require().Len(recent, 1)
	s.Assert().Equal(created.ID, recent[0].ID)
	s.Assert().Equal("Nice move", recent[0].Comment)
	s.Assert().Nil(recent[0].GameID)
}

func (s *CommentRepositorySuite) TestInsert_AllFields() {
	in := models.CommentInput{
		GameID:       testutil.Ptr("ABC123"),
		MoveNumber:   testutil.Ptr(12),
		Comment:      "Knight fork wins the exchange",
		Rating:       testutil.Ptr(8),
		PlayerSide:   testutil.Ptr("white"),
		TacticalIdea: testutil.Ptr("fork"),
		Position:     testutil.Ptr("r1bqkbnr/pppp1ppp/2n5/4p3/4P3/5N2/PPPP1PPP/RNBQKB1R w KQkq - 2 3"),
		Evaluation:   testutil.Ptr("+1.5"),
		TimeSpent:    testutil.Ptr(42),
		Alternative:  testutil.Ptr("Bc4"),
	}

	created, err := s.repo.Insert(context.Background(), in)
	s.Require().NoError(err)
	s.Require().NotNil(created.GameID)
	s.Assert().Equal("ABC123", *created.GameID)
	s.Assert().Equal(12, *created.MoveNumber)
	s.Assert().Equal(8, *created.Rating)
	s.Assert().Equal("white", *created.PlayerSide)
	s.Assert().Equal("fork", *created.TacticalIdea)
	s.Assert().Equal(*in.Position, *created.Position)
	s.Assert().Equal("+1.5", *created.Evaluation)
	s.Assert().Equal(42, *created.TimeSpent)
	s.Assert().Equal("Bc4", *created.Alternative)
}

func (s *CommentRepositorySuite) TestListByGame_Ordering() {
	game := testutil.Ptr("G1")
	s.insert(game, testutil.Ptr(3), nil, "older on 3")
	s.insert(game, nil, nil, "general")
	s.insert(game, testutil.Ptr(1), nil, "on 1")
	s.insert(game, testutil.Ptr(3), nil, "newer on 3")
	s.insert(testutil.Ptr("OTHER"), testutil.Ptr(1), nil, "elsewhere")

	comments, err := s.repo.ListByGame(context.Background(), "G1")
	s.Require().NoError(err)
	s.Require().Len(comments, 4)

	texts := make([]string, len(comments))
	for i, c := range comments {
		texts[i] = c.Comment
	}
	s.Assert().Equal([]string{"on 1", "newer on 3", "older on 3", "general"}, texts)
}

func (s *CommentRepositorySuite) TestListByGame_Empty() {
	comments, err := s.repo.ListByGame(context.Background(), "NOPE")
	s.Require().NoError(err)
	s.Assert().NotNil(comments)
	s.Assert().Empty(comments)
}

func (s *CommentRepositorySuite) TestListRecent_Limit() {
	for i := 0; i < 55; i++ {
		s.insert(nil, nil, nil, fmt.Sprintf("comment %d", i))
	}

	comments, err := s.repo.ListRecent(context.Background(), models.RecentCommentsLimit)
	s.Require().NoError(err)
	s.Require().Len(comments, 50)
	s.Assert().Equal("comment 54", comments[0].Comment)
	s.Assert().Equal("comment 5", comments[49].Comment)
}

func (s *CommentRepositorySuite) TestListRecent_DefaultLimit() {
	for i := 0; i < 3; i++ {
		s.insert(nil, nil, nil, fmt.Sprintf("comment %d", i))
	}
	comments, err := s.repo.ListRecent(context.Background(), 0)
	s.Require().NoError(err)
	s.Assert().Len(comments, 3)
}

func (s *CommentRepositorySuite) TestListByMove() {
	game := testutil.Ptr("G1")
	s.insert(game, testutil.Ptr(5), nil, "first")
	s.insert(game, testutil.Ptr(5), nil, "second")
	s.insert(game, testutil.Ptr(6), nil, "next move")
	s.insert(testutil.Ptr("G2"), testutil.Ptr(5), nil, "other game")

	comments, err := s.repo.ListByMove(context.Background(), "G1", 5)
	s.Require().NoError(err)
	s.Require().Len(comments, 2)
	s.Assert().Equal("second", comments[0].Comment)
	s.Assert().Equal("first", comments[1].Comment)
}

func (s *CommentRepositorySuite) TestGameStats() {
	game := testutil.Ptr("G1")
	s.insert(game, testutil.Ptr(1), testutil.Ptr(3), "a")
	s.insert(game, testutil.Ptr(1), testutil.Ptr(7), "b")
	s.insert(game, testutil.Ptr(2), nil, "c")
	s.insert(testutil.Ptr("G2"), testutil.Ptr(9), testutil.Ptr(10), "other")

	stats, err := s.repo.GameStats(context.Background(), "G1")
	s.Require().NoError(err)
	s.Assert().Equal(int64(3), stats.TotalComments)
	s.Require().NotNil(stats.AvgRating)
	s.Assert().InDelta(5.0, *stats.AvgRating, 0.0001)
	s.Assert().Equal(int64(2), stats.MovesWithComments)
}

func (s *CommentRepositorySuite) TestGameStats_NoComments() {
	stats, err := s.repo.GameStats(context.Background(), "EMPTY")
	s.Require().NoError(err)
	s.Assert().Equal(int64(0), stats.TotalComments)
	s.Assert().Nil(stats.AvgRating)
	s.Assert().Equal(int64(0), stats.MovesWithComments)
}

func (s *CommentRepositorySuite) TestGameStats_NoRatings() {
	s.insert(testutil.Ptr("G1"), nil, nil, "unrated")

	stats, err := s.repo.GameStats(context.Background(), "G1")
	s.Require().NoError(err)
	s.Assert().Equal(int64(1), stats.TotalComments)
	s.Assert().Nil(stats.AvgRating)
	s.Assert().Equal(int64(0), stats.MovesWithComments)
}

func TestCommentRepositorySuite(t *testing.T) {
	suite.Run(t, new(CommentRepositorySuite))
}

func TestCommentRepository_Unconfigured(t *testing.T) {
	repo := sqldb.NewCommentRepository(nil)
	ctx := context.Background()

	_, err := repo.Insert(ctx, models.CommentInput{Comment: "x"})
	assert.ErrorIs(t, err, apperrors.ErrStorageUnavailable)

	_, err = repo.ListByGame(ctx, "G1")
	assert.ErrorIs(t, err, apperrors.ErrStorageUnavailable)

	_, err = repo.ListRecent(ctx, 10)
	assert.ErrorIs(t, err, apperrors.ErrStorageUnavailable)

	_, err = repo.ListByMove(ctx, "G1", 1)
	assert.ErrorIs(t, err, apperrors.ErrStorageUnavailable)

	_, err = repo.GameStats(ctx, "G1")
	assert.ErrorIs(t, err, apperrors.ErrStorageUnavailable)
}
