package models

import "time"

// Comment is a stored annotation row. Optional columns are nil when absent.
type Comment struct {
	ID           int64     `json:"id"`
	GameID       *string   `json:"game_id"`
	MoveNumber   *int      `json:"move_number"`
	Comment      string    `json:"comment"`
	Rating       *int      `json:"rating"`
	PlayerSide   *string   `json:"player_side"`
	TacticalIdea *string   `json:"tactical_idea"`
	Position     *string   `json:"position"`
	Evaluation   *string   `json:"evaluation"`
	TimeSpent    *int      `json:"time_spent"`
	Alternative  *string   `json:"alternative"`
	CreatedAt    time.Time `json:"created_at"`
}

// CommentInput carries the caller-supplied fields of a new comment.
type CommentInput struct {
	GameID       *string `json:"game_id,omitempty"`
	MoveNumber   *int    `json:"move_number,omitempty"`
	Comment      string  `json:"comment"`
	Rating       *int    `json:"rating,omitempty"`
	PlayerSide   *string `json:"player_side,omitempty"`
	TacticalIdea *string `json:"tactical_idea,omitempty"`
	Position     *string `json:"position,omitempty"`
	Evaluation   *string `json:"evaluation,omitempty"`
	TimeSpent    *int    `json:"time_spent,omitempty"`
	Alternative  *string `json:"alternative,omitempty"`
}

// GameStats is derived per query for one game id.
type GameStats struct {
	TotalComments     int64    `json:"total_comments"`
	AvgRating         *float64 `json:"avg_rating"`
	MovesWithComments int64    `json:"moves_with_comments"`
}

// RecentCommentsLimit caps the unscoped comment listing.
const RecentCommentsLimit = 50

// Rating bounds offered by the comment form.
const (
	MinRating = 1
	MaxRating = 10
)
