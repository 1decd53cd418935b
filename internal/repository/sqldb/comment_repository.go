package sqldb

import (
	"context"
	"database/sql"

	"github.com/Masterminds/squirrel"
	"github.com/vytor/chessroyale/internal/db"
	apperrors "github.com/vytor/chessroyale/internal/errors"
	"github.com/vytor/chessroyale/internal/logger"
	"github.com/vytor/chessroyale/internal/models"
	"github.com/vytor/chessroyale/internal/repository"
)

var commentColumns = []string{
	"id", "game_id", "move_number", "comment", "rating", "player_side", "tactical_idea",
	"position", "evaluation", "time_spent", "alternative", "created_at",
}

type commentRepository struct {
	db *db.DB
}

// NewCommentRepository creates a CommentRepository over database. A nil
// database yields a repository whose every call fails with
// errors.ErrStorageUnavailable.
func NewCommentRepository(database *db.DB) repository.CommentRepository {
	return &commentRepository{db: database}
}

func (r *commentRepository) ready() error {
	if r.db == nil {
		return apperrors.ErrStorageUnavailable
	}
	return nil
}

func (r *commentRepository) Insert(ctx context.Context, in models.CommentInput) (*models.Comment, error) {
	log := logger.FromContext(ctx).WithPrefix("comment_repo")
	log.Debug("inserting comment: game_id=%s, move_number=%s", strOrNil(in.GameID), intOrNil(in.MoveNumber))

	if err := r.ready(); err != nil {
		log.Error("cannot insert comment: %v", err)
		return nil, err
	}

	query, args, err := r.db.Builder().
		Insert("game_comments").
		Columns("game_id", "move_number", "comment", "rating", "player_side", "tactical_idea",
			"position", "evaluation", "time_spent", "alternative").
		Values(in.GameID, in.MoveNumber, in.Comment, in.Rating, in.PlayerSide, in.TacticalIdea,
			in.Position, in.Evaluation, in.TimeSpent, in.Alternative).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		log.Error("failed to build query: %v", err)
		return nil, err
	}

	var id int64
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&id); err != nil {
		log.Error("failed to insert comment: %v", err)
		return nil, err
	}
	log.Debug("comment inserted: id=%d", id)

	return r.get(ctx, id)
}

func (r *commentRepository) get(ctx context.Context, id int64) (*models.Comment, error) {
	log := logger.FromContext(ctx).WithPrefix("comment_repo")

	query, args, err := r.db.Builder().Select(commentColumns...).From("game_comments").
		Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		log.Error("failed to build query: %v", err)
		return nil, err
	}

	c, err := scanComment(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		log.Error("failed to read back comment id=%d: %v", id, err)
		return nil, err
	}
	return c, nil
}

func (r *commentRepository) ListByGame(ctx context.Context, gameID string) ([]models.Comment, error) {
	log := logger.FromContext(ctx).WithPrefix("comment_repo")
	log.Debug("listing comments: game_id=%s", gameID)

	return r.list(ctx, r.selectComments().
		Where(squirrel.Eq{"game_id": gameID}).
		OrderBy("move_number ASC NULLS LAST", "created_at DESC", "id DESC"))
}

func (r *commentRepository) ListRecent(ctx context.Context, limit int) ([]models.Comment, error) {
	log := logger.FromContext(ctx).WithPrefix("comment_repo")
	log.Debug("listing recent comments: limit=%d", limit)

	if limit <= 0 {
		limit = models.RecentCommentsLimit
	}
	return r.list(ctx, r.selectComments().
		OrderBy("created_at DESC", "id DESC").
		Limit(uint64(limit)))
}

func (r *commentRepository) ListByMove(ctx context.Context, gameID string, moveNumber int) ([]models.Comment, error) {
	log := logger.FromContext(ctx).WithPrefix("comment_repo")
	log.Debug("listing move comments: game_id=%s, move_number=%d", gameID, moveNumber)

	return r.list(ctx, r.selectComments().
		Where(squirrel.Eq{"game_id": gameID, "move_number": moveNumber}).
		OrderBy("created_at DESC", "id DESC"))
}

func (r *commentRepository) GameStats(ctx context.Context, gameID string) (*models.GameStats, error) {
	log := logger.FromContext(ctx).WithPrefix("comment_repo")
	log.Debug("computing game stats: game_id=%s", gameID)

	if err := r.ready(); err != nil {
		log.Error("cannot compute stats: %v", err)
		return nil, err
	}

	query, args, err := r.db.Builder().
		Select("COUNT(*)", "AVG(rating)", "COUNT(DISTINCT move_number)").
		From("game_comments").
		Where(squirrel.Eq{"game_id": gameID}).
		ToSql()
	if err != nil {
		log.Error("failed to build query: %v", err)
		return nil, err
	}

	var (
		stats models.GameStats
		avg   sql.NullFloat64
	)
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&stats.TotalComments, &avg, &stats.MovesWithComments); err != nil {
		log.Error("failed to compute game stats: %v", err)
		return nil, err
	}
	if avg.Valid {
		v := avg.Float64
		stats.AvgRating = &v
	}
	log.Debug("game stats: total=%d, moves=%d", stats.TotalComments, stats.MovesWithComments)
	return &stats, nil
}

func (r *commentRepository) selectComments() squirrel.SelectBuilder {
	if r.db == nil {
		return squirrel.Select(commentColumns...).From("game_comments")
	}
	return r.db.Builder().Select(commentColumns...).From("game_comments")
}

func (r *commentRepository) list(ctx context.Context, q squirrel.SelectBuilder) ([]models.Comment, error) {
	log := logger.FromContext(ctx).WithPrefix("comment_repo")

	if err := r.ready(); err != nil {
		log.Error("cannot list comments: %v", err)
		return nil, err
	}

	query, args, err := q.ToSql()
	if err != nil {
		log.Error("failed to build query: %v", err)
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Error("failed to list comments: %v", err)
		return nil, err
	}
	defer rows.Close()

	comments := []models.Comment{}
	for rows.Next() {
		c, err := scanComment(rows)
		if err != nil {
			log.Error("failed to scan comment row: %v", err)
			return nil, err
		}
		comments = append(comments, *c)
	}
	log.Debug("found %d comments", len(comments))
	return comments, rows.Err()
}
