package board

import "fmt"

// Square addresses a cell of the display grid.
type Square struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// NewSquare returns the square at (row, col) and whether it is on the board.
func NewSquare(row, col int) (Square, bool) {
	if row < 0 || row > 7 || col < 0 || col > 7 {
		return Square{}, false
	}
	return Square{Row: row, Col: col}, true
}

// ParseSquare reads algebraic notation such as "e4".
func ParseSquare(s string) (Square, error) {
	if len(s) != 2 || s[0] < 'a' || s[0] > 'h' || s[1] < '1' || s[1] > '8' {
		return Square{}, fmt.Errorf("invalid square %q", s)
	}
	return Square{Row: int('8' - s[1]), Col: int(s[0] - 'a')}, nil
}

// ToAlgebraic converts display coordinates to board notation: file is
// 'a'+col and rank is 8-row.
func ToAlgebraic(row, col int) (string, bool) {
	sq, ok := NewSquare(row, col)
	if !ok {
		return "", false
	}
	return sq.String(), true
}

func (s Square) String() string {
	return fmt.Sprintf("%c%d", 'a'+s.Col, 8-s.Row)
}
