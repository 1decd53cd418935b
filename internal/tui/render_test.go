package tui

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vytor/chessroyale/internal/board"
	"github.com/vytor/chessroyale/internal/models"
	"github.com/vytor/chessroyale/internal/testutil"
)

func TestGlyph(t *testing.T) {
	assert.Equal(t, '♔', glyph('K'))
	assert.Equal(t, '♟', glyph('p'))
	assert.Equal(t, ' ', glyph(board.NoPiece))
}

func TestFormatAvg(t *testing.T) {
	assert.Equal(t, "N/A", formatAvg(nil))
	assert.Equal(t, "6.7", formatAvg(testutil.Ptr(6.666)))
	assert.Equal(t, "5.0", formatAvg(testutil.Ptr(5.0)))
}

func TestFormatMoves(t *testing.T) {
	assert.Contains(t, formatMoves(nil), "(no moves)")

	out := formatMoves(board.MoveRows([]string{"e4", "e5", "Nf3"}))
	assert.Contains(t, out, "  1. e4       e5")
	assert.Contains(t, out, "  2. Nf3")
}

func TestFormatInfo(t *testing.T) {
	v := board.NewController().View()
	out := formatInfo(v, "ABC123")
	assert.Contains(t, out, "Code:[-:-:-] ABC123")
	assert.Contains(t, out, "White to move")
	assert.Contains(t, out, "(no moves)")
}

func TestFormatComments_Empty(t *testing.T) {
	out := formatComments(nil, &models.GameStats{})
	assert.Contains(t, out, "No comments yet.")
	assert.Contains(t, out, "Avg rating:[-] N/A")
}

func TestFormatComments(t *testing.T) {
	comments := []models.Comment{{
		ID:           1,
		MoveNumber:   testutil.Ptr(12),
		Comment:      "Strong [central] push",
		Rating:       testutil.Ptr(8),
		PlayerSide:   testutil.Ptr("white"),
		TacticalIdea: testutil.Ptr("doubleAttack"),
		Alternative:  testutil.Ptr("Nf3"),
		CreatedAt:    time.Date(2024, 5, 1, 10, 30, 0, 0, time.UTC),
	}}
	stats := &models.GameStats{TotalComments: 1, AvgRating: testutil.Ptr(8.0), MovesWithComments: 1}

	out := formatComments(comments, stats)
	assert.Contains(t, out, "Comments:[-] 1")
	assert.Contains(t, out, "Avg rating:[-] 8.0")
	assert.Contains(t, out, "move 12 · White · 8/10 · Double Attack")
	assert.Contains(t, out, "Strong [central[] push")
	assert.Contains(t, out, "alt: Nf3")
	assert.NotContains(t, out, "No comments yet.")
}
