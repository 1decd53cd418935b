package board

import (
	"fmt"
	"time"

	"github.com/vytor/chessroyale/internal/logger"
	"github.com/vytor/chessroyale/internal/pgn"
)

// View is the derived state pushed to observers after every operation.
type View struct {
	Grid         Grid      `json:"-"`
	Rows         []string  `json:"rows"`
	Selected     *Square   `json:"selected"`
	Destinations []Square  `json:"destinations"`
	Status       string    `json:"status"`
	Turn         Color     `json:"turn"`
	History      []string  `json:"history"`
	Moves        []MoveRow `json:"moves"`
	FEN          string    `json:"fen"`
	Opening      *Opening  `json:"opening,omitempty"`
	Result       string    `json:"result"`
}

// Observer receives every View the controller produces.
type Observer func(View)

type Option func(*Controller)

// WithObserver registers an observer. Observers run synchronously, in
// registration order, on the goroutine that mutated the controller.
func WithObserver(o Observer) Option {
	return func(c *Controller) {
		c.observers = append(c.observers, o)
	}
}

// WithRules replaces the default rules engine.
func WithRules(r Rules) Option {
	return func(c *Controller) {
		c.rules = r
	}
}

// Controller turns square activations into moves on a delegated rules
// engine and keeps a mirrored grid plus selection state. It is not safe for
// concurrent use.
type Controller struct {
	rules     Rules
	observers []Observer
	log       *logger.Logger

	selected     *Square
	destinations []Square

	grid    Grid
	status  string
	history []string
	fen     string
}

func NewController(opts ...Option) *Controller {
	c := &Controller{log: logger.Default().WithPrefix("board")}
	for _, opt := range opts {
		opt(c)
	}
	if c.rules == nil {
		c.rules = NewChessRules()
	}
	c.sync()
	return c
}

// Activate handles a click or key press on (row, col).
func (c *Controller) Activate(row, col int) View {
	sq, ok := NewSquare(row, col)
	if !ok {
		c.clearSelection()
		return c.notify()
	}

	if c.selected == nil {
		c.selectSquare(sq)
		return c.notify()
	}

	from := *c.selected
	if from == sq {
		c.clearSelection()
		return c.notify()
	}

	if err := c.rules.Apply(from, sq, 'q'); err != nil {
		c.log.Debug("move %s%s rejected: %v", from, sq, err)
		c.clearSelection()
		c.selectSquare(sq)
		return c.notify()
	}

	c.log.Debug("move %s%s applied", from, sq)
	c.clearSelection()
	c.sync()
	return c.notify()
}

// Reset restores the initial position and clears the selection.
func (c *Controller) Reset() View {
	c.rules.Reset()
	c.clearSelection()
	c.sync()
	return c.notify()
}

// View returns the current derived state without notifying observers.
func (c *Controller) View() View {
	v := View{
		Grid:         c.grid,
		Rows:         c.grid.Rows(),
		Destinations: append([]Square{}, c.destinations...),
		Status:       c.status,
		Turn:         c.rules.Turn(),
		History:      append([]string{}, c.history...),
		Moves:        MoveRows(c.history),
		FEN:          c.fen,
		Result:       c.Result(),
	}
	if c.selected != nil {
		sel := *c.selected
		v.Selected = &sel
	}
	if book, ok := c.rules.(OpeningBook); ok {
		v.Opening = book.Opening()
	}
	return v
}

// FullMoveNumber is the number of the move about to be played.
func (c *Controller) FullMoveNumber() int {
	return len(c.history)/2 + 1
}

// Result is the PGN result token for the current position.
func (c *Controller) Result() string {
	switch {
	case c.rules.IsCheckmate():
		if c.rules.Turn() == White {
			return "0-1"
		}
		return "1-0"
	case c.rules.IsDraw():
		return "1/2-1/2"
	}
	return "*"
}

// PGN exports the game so far. Event and Date are filled in unless given.
func (c *Controller) PGN(tags ...pgn.Tag) string {
	all := []pgn.Tag{
		{Name: "Event", Value: "Chess Royale"},
		{Name: "Date", Value: time.Now().Format("2006.01.02")},
	}
	all = append(all, tags...)
	if book, ok := c.rules.(OpeningBook); ok {
		if o := book.Opening(); o != nil {
			all = append(all, pgn.Tag{Name: "ECO", Value: o.ECO}, pgn.Tag{Name: "Opening", Value: o.Name})
		}
	}
	return pgn.Export(all, c.history, c.Result())
}

func (c *Controller) selectSquare(sq Square) {
	p := c.rules.PieceAt(sq)
	if p == NoPiece || p.Color() != c.rules.Turn() {
		return
	}
	seen := make(map[Square]bool)
	dests := []Square{}
	for _, m := range c.rules.LegalMoves(sq) {
		if seen[m.To] {
			continue
		}
		seen[m.To] = true
		dests = append(dests, m.To)
	}
	c.selected = &sq
	c.destinations = dests
}

func (c *Controller) clearSelection() {
	c.selected = nil
	c.destinations = nil
}

// sync rebuilds the mirrored grid and derived views from the engine.
func (c *Controller) sync() {
	for r := 0; r < 8; r++ {
		for col := 0; col < 8; col++ {
			c.grid[r][col] = c.rules.PieceAt(Square{Row: r, Col: col})
		}
	}
	c.history = c.rules.History()
	c.fen = c.rules.FEN()
	c.status = Status(c.rules)
}

func (c *Controller) notify() View {
	v := c.View()
	for _, o := range c.observers {
		o(v)
	}
	return v
}

// Status describes the position, checkmate first, then draw, then check.
func Status(r Rules) string {
	turn := r.Turn()
	switch {
	case r.IsCheckmate():
		return fmt.Sprintf("Checkmate! %s wins!", turn.Other().Name())
	case r.IsDraw():
		return "Draw!"
	case r.IsCheck():
		return fmt.Sprintf("%s is in check!", turn.Name())
	}
	return fmt.Sprintf("%s to move", turn.Name())
}
