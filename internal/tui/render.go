package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/rivo/tview"
	"github.com/vytor/chessroyale/internal/board"
	"github.com/vytor/chessroyale/internal/models"
)

// Player is a name plate shown above and below the board.
type Player struct {
	Name   string
	Rating int
	Clock  string
}

var (
	topPlayer    = Player{Name: "Magnus Carlsen", Rating: 2847, Clock: "05:00"}
	bottomPlayer = Player{Name: "Hikaru Nakamura", Rating: 2812, Clock: "05:00"}
)

var glyphs = map[board.Piece]rune{
	'K': '♔', 'Q': '♕', 'R': '♖', 'B': '♗', 'N': '♘', 'P': '♙',
	'k': '♚', 'q': '♛', 'r': '♜', 'b': '♝', 'n': '♞', 'p': '♟',
}

func glyph(p board.Piece) rune {
	if g, ok := glyphs[p]; ok {
		return g
	}
	return ' '
}

func formatPlayer(p Player) string {
	return fmt.Sprintf("[yellow::b]%s[-:-:-] [gray](%d)[-]  [white]⏱ %s[-]", tview.Escape(p.Name), p.Rating, p.Clock)
}

// formatInfo renders the side panel: status, opening and move list.
func formatInfo(v board.View, code string) string {
	var b strings.Builder
	b.WriteString("[white::b]Game[-:-:-]\n")
	b.WriteString("[dimgray]──────────────────────[-:-:-]\n")
	if code != "" {
		fmt.Fprintf(&b, "[white]Code:[-:-:-] %s\n", tview.Escape(code))
	}
	fmt.Fprintf(&b, "[white]Status:[-:-:-] %s\n", tview.Escape(v.Status))
	if v.Opening != nil {
		fmt.Fprintf(&b, "[white]Opening:[-:-:-] %s %s\n", v.Opening.ECO, tview.Escape(v.Opening.Name))
	}

	b.WriteString("\n[white::b]Moves[-:-:-]\n")
	b.WriteString("[dimgray]──────────────────────[-:-:-]\n")
	b.WriteString(formatMoves(v.Moves))
	return b.String()
}

func formatMoves(rows []board.MoveRow) string {
	if len(rows) == 0 {
		return "[dimgray]  (no moves)[-]\n"
	}
	var b strings.Builder
	for _, r := range rows {
		fmt.Fprintf(&b, "%3d. %-8s %s\n", r.Number, r.White, r.Black)
	}
	return b.String()
}

func formatAvg(avg *float64) string {
	if avg == nil {
		return "N/A"
	}
	return strconv.FormatFloat(*avg, 'f', 1, 64)
}

func formatStats(s *models.GameStats) string {
	if s == nil {
		return ""
	}
	return fmt.Sprintf("[white]Comments:[-] %d  [white]Avg rating:[-] %s  [white]Moves:[-] %d\n",
		s.TotalComments, formatAvg(s.AvgRating), s.MovesWithComments)
}

// formatComments renders the comment list with the game statistics on top.
func formatComments(comments []models.Comment, stats *models.GameStats) string {
	var b strings.Builder
	b.WriteString(formatStats(stats))
	if len(comments) == 0 {
		b.WriteString("[dimgray]No comments yet.[-]\n")
		return b.String()
	}
	for _, c := range comments {
		var meta []string
		if c.MoveNumber != nil {
			meta = append(meta, fmt.Sprintf("move %d", *c.MoveNumber))
		}
		if c.PlayerSide != nil {
			meta = append(meta, models.OptionLabel(models.PlayerSides, *c.PlayerSide))
		}
		if c.Rating != nil {
			meta = append(meta, fmt.Sprintf("%d/10", *c.Rating))
		}
		if c.TacticalIdea != nil {
			meta = append(meta, models.OptionLabel(models.TacticalIdeas, *c.TacticalIdea))
		}
		if c.Evaluation != nil {
			meta = append(meta, "eval "+*c.Evaluation)
		}
		if c.TimeSpent != nil {
			meta = append(meta, fmt.Sprintf("%ds", *c.TimeSpent))
		}
		fmt.Fprintf(&b, "[yellow]%s[-] [dimgray]%s[-]\n", c.CreatedAt.Local().Format("2006-01-02 15:04"), tview.Escape(strings.Join(meta, " · ")))
		fmt.Fprintf(&b, "  %s\n", tview.Escape(c.Comment))
		if c.Alternative != nil {
			fmt.Fprintf(&b, "  [gray]alt: %s[-]\n", tview.Escape(*c.Alternative))
		}
	}
	return b.String()
}
