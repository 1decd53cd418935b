package worker

import (
	"context"

	"github.com/vytor/chessroyale/internal/models"
)

// AnnotationStore is the part of the annotation service the jobs need. It is
// declared here so this package does not import services.
type AnnotationStore interface {
	AddComment(ctx context.Context, input models.CommentInput) (*models.Comment, error)
	ListComments(ctx context.Context, gameID *string) ([]models.Comment, error)
	GameStats(ctx context.Context, gameID string) (*models.GameStats, error)
}

// CommentList is a fetched comment list plus, for a game, its statistics.
type CommentList struct {
	Comments []models.Comment
	Stats    *models.GameStats
	Err      error
}

// RefreshCommentsJob loads the comments for GameID (recent comments when
// empty) and hands the result to Done.
type RefreshCommentsJob struct {
	Store  AnnotationStore
	GameID string
	Done   func(CommentList)
}

func (j *RefreshCommentsJob) Name() string { return "refresh_comments" }

func (j *RefreshCommentsJob) Run(ctx context.Context) error {
	res := fetchComments(ctx, j.Store, j.GameID)
	if j.Done != nil {
		j.Done(res)
	}
	return res.Err
}

// AddCommentJob stores Input and, once the insert has completed, re-fetches
// the list for GameID. Done receives the stored comment and the new list;
// on insert failure it receives the error and no list.
type AddCommentJob struct {
	Store  AnnotationStore
	Input  models.CommentInput
	GameID string
	Done   func(created *models.Comment, list CommentList, err error)
}

func (j *AddCommentJob) Name() string { return "add_comment" }

func (j *AddCommentJob) Run(ctx context.Context) error {
	created, err := j.Store.AddComment(ctx, j.Input)
	if err != nil {
		if j.Done != nil {
			j.Done(nil, CommentList{}, err)
		}
		return err
	}

	list := fetchComments(ctx, j.Store, j.GameID)
	if j.Done != nil {
		j.Done(created, list, nil)
	}
	return list.Err
}

func fetchComments(ctx context.Context, store AnnotationStore, gameID string) CommentList {
	var id *string
	if gameID != "" {
		id = &gameID
	}
	comments, err := store.ListComments(ctx, id)
	if err != nil {
		return CommentList{Err: err}
	}
	res := CommentList{Comments: comments}
	if gameID != "" {
		stats, err := store.GameStats(ctx, gameID)
		if err != nil {
			res.Err = err
			return res
		}
		res.Stats = stats
	}
	return res
}
