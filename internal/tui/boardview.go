package tui

import (
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
	"github.com/vytor/chessroyale/internal/board"
)

const cellWidth = 3

var (
	lightSquare = tcell.NewRGBColor(240, 217, 181)
	darkSquare  = tcell.NewRGBColor(181, 136, 99)
	selectColor = tcell.NewRGBColor(246, 246, 105)
	destColor   = tcell.NewRGBColor(130, 151, 105)
	cursorColor = tcell.NewRGBColor(100, 140, 200)
)

// BoardView draws a board.View and tracks a keyboard cursor.
type BoardView struct {
	Box  *tview.Box
	view board.View
	row  int
	col  int
}

func NewBoardView() *BoardView {
	bv := &BoardView{Box: tview.NewBox(), row: 6, col: 4}
	bv.view.Grid = board.InitialGrid()
	bv.Box.SetDrawFunc(bv.draw)
	return bv
}

// SetView replaces the state being drawn.
func (bv *BoardView) SetView(v board.View) {
	bv.view = v
}

// Cursor returns the square under the cursor.
func (bv *BoardView) Cursor() (row, col int) {
	return bv.row, bv.col
}

// MoveCursor shifts the cursor, staying on the board.
func (bv *BoardView) MoveCursor(dRow, dCol int) {
	if r := bv.row + dRow; r >= 0 && r < 8 {
		bv.row = r
	}
	if c := bv.col + dCol; c >= 0 && c < 8 {
		bv.col = c
	}
}

func (bv *BoardView) isDestination(sq board.Square) bool {
	for _, d := range bv.view.Destinations {
		if d == sq {
			return true
		}
	}
	return false
}

func (bv *BoardView) draw(screen tcell.Screen, x, y, width, height int) (int, int, int, int) {
	// leave two columns for rank labels
	ox, oy := x+2, y

	for r := 0; r < 8; r++ {
		screen.SetContent(x, oy+r, rune('8'-r), nil, tcell.StyleDefault.Foreground(tcell.ColorGray))
		for c := 0; c < 8; c++ {
			sq := board.Square{Row: r, Col: c}
			bg := lightSquare
			if (r+c)%2 == 1 {
				bg = darkSquare
			}
			switch {
			case r == bv.row && c == bv.col:
				bg = cursorColor
			case bv.view.Selected != nil && *bv.view.Selected == sq:
				bg = selectColor
			case bv.isDestination(sq):
				bg = destColor
			}

			p := bv.view.Grid[r][c]
			fg := tcell.ColorBlack
			if p.Color() == board.White {
				fg = tcell.ColorWhite
			}
			style := tcell.StyleDefault.Background(bg).Foreground(fg)

			cx := ox + c*cellWidth
			screen.SetContent(cx, oy+r, ' ', nil, style)
			mark := glyph(p)
			if p == board.NoPiece && bv.isDestination(sq) {
				mark = '·'
			}
			screen.SetContent(cx+1, oy+r, mark, nil, style)
			screen.SetContent(cx+2, oy+r, ' ', nil, style)
		}
	}
	for c := 0; c < 8; c++ {
		screen.SetContent(ox+c*cellWidth+1, oy+8, rune('a'+c), nil, tcell.StyleDefault.Foreground(tcell.ColorGray))
	}
	return x, y, 8*cellWidth + 2, 9
}
