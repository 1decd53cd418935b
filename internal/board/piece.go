package board

import "strings"

// Color is the side owning a piece or the side to move.
type Color byte

const (
	NoColor Color = 0
	White   Color = 'w'
	Black   Color = 'b'
)

// Name returns "White" or "Black".
func (c Color) Name() string {
	switch c {
	case White:
		return "White"
	case Black:
		return "Black"
	}
	return ""
}

// Other returns the opposing side.
func (c Color) Other() Color {
	if c == White {
		return Black
	}
	return White
}

func (c Color) MarshalText() ([]byte, error) {
	return []byte(strings.ToLower(c.Name())), nil
}

// Piece is a one-byte piece code: "PNBRQK" for white, lowercase for black,
// zero for an empty square.
type Piece byte

const NoPiece Piece = 0

// Color reports the owner of the piece, or NoColor for an empty square.
func (p Piece) Color() Color {
	switch {
	case p >= 'A' && p <= 'Z':
		return White
	case p >= 'a' && p <= 'z':
		return Black
	}
	return NoColor
}

// Kind returns the lowercase piece letter regardless of color.
func (p Piece) Kind() byte {
	if p >= 'A' && p <= 'Z' {
		return byte(p) + ('a' - 'A')
	}
	return byte(p)
}

func (p Piece) String() string {
	if p == NoPiece {
		return "."
	}
	return string(rune(p))
}

// Grid mirrors the engine position. Row 0 is rank 8, column 0 is file a.
type Grid [8][8]Piece

// Rows renders each rank as an 8-character string, '.' marking empty squares.
func (g Grid) Rows() []string {
	rows := make([]string, 8)
	for r := 0; r < 8; r++ {
		var b strings.Builder
		for c := 0; c < 8; c++ {
			b.WriteString(g[r][c].String())
		}
		rows[r] = b.String()
	}
	return rows
}

func (g Grid) At(sq Square) Piece {
	return g[sq.Row][sq.Col]
}

// InitialGrid is the standard starting arrangement.
func InitialGrid() Grid {
	var g Grid
	back := "rnbqkbnr"
	for c := 0; c < 8; c++ {
		g[0][c] = Piece(back[c])
		g[1][c] = 'p'
		g[6][c] = 'P'
		g[7][c] = Piece(back[c] - ('a' - 'A'))
	}
	return g
}
