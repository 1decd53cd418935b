package board

import (
	"errors"
	"fmt"
	"sync"

	"github.com/corentings/chess/v2"
	"github.com/corentings/chess/v2/opening"
)

var ErrIllegalMove = errors.New("illegal move")

var ecoBook = sync.OnceValue(func() *opening.BookECO {
	return opening.NewBookECO()
})

type chessRules struct {
	game *chess.Game
}

// NewChessRules returns the default Rules backed by corentings/chess.
func NewChessRules() Rules {
	return &chessRules{game: chess.NewGame()}
}

func (r *chessRules) PieceAt(sq Square) Piece {
	return fromChessPiece(r.game.Position().Board().Piece(toChessSquare(sq)))
}

func (r *chessRules) LegalMoves(from Square) []Move {
	s1 := toChessSquare(from)
	var out []Move
	for _, m := range r.game.ValidMoves() {
		if m.S1() != s1 {
			continue
		}
		out = append(out, Move{
			From:      from,
			To:        fromChessSquare(m.S2()),
			Promotion: promoLetter(m.Promo()),
			Capture:   m.HasTag(chess.Capture),
			Castle:    m.HasTag(chess.KingSideCastle) || m.HasTag(chess.QueenSideCastle),
			EnPassant: m.HasTag(chess.EnPassant),
		})
	}
	return out
}

func (r *chessRules) Apply(from, to Square, promotion byte) error {
	pos := r.game.Position()
	uci := from.String() + to.String()
	if r.isPromotion(from, to) {
		if promotion == 0 {
			promotion = 'q'
		}
		uci += string(rune(promotion))
	}

	if !r.isLegal(uci) {
		return fmt.Errorf("%w: %s", ErrIllegalMove, uci)
	}
	mv, err := chess.UCINotation{}.Decode(pos, uci)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrIllegalMove, uci, err)
	}
	if err := r.game.Move(mv, nil); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrIllegalMove, uci, err)
	}
	return nil
}

func (r *chessRules) isPromotion(from, to Square) bool {
	p := r.PieceAt(from)
	if p.Kind() != 'p' {
		return false
	}
	return (p.Color() == White && to.Row == 0) || (p.Color() == Black && to.Row == 7)
}

func (r *chessRules) isLegal(uci string) bool {
	for _, m := range r.game.ValidMoves() {
		if moveToUCI(m.S1(), m.S2(), m.Promo()) == uci {
			return true
		}
	}
	return false
}

func (r *chessRules) History() []string {
	moves := r.game.Moves()
	positions := r.game.Positions()
	san := make([]string, 0, len(moves))
	notation := chess.AlgebraicNotation{}
	for i, mv := range moves {
		if i >= len(positions) {
			break
		}
		san = append(san, notation.Encode(positions[i], mv))
	}
	return san
}

func (r *chessRules) FEN() string {
	return r.game.FEN()
}

func (r *chessRules) Turn() Color {
	if r.game.Position().Turn() == chess.Black {
		return Black
	}
	return White
}

func (r *chessRules) IsCheckmate() bool {
	return r.game.Method() == chess.Checkmate
}

func (r *chessRules) IsDraw() bool {
	if r.game.Outcome() == chess.Draw {
		return true
	}
	for _, m := range r.game.EligibleDraws() {
		if m == chess.ThreefoldRepetition || m == chess.FiftyMoveRule {
			return true
		}
	}
	return false
}

func (r *chessRules) IsCheck() bool {
	moves := r.game.Moves()
	if len(moves) == 0 {
		return false
	}
	return moves[len(moves)-1].HasTag(chess.Check)
}

func (r *chessRules) Reset() {
	r.game = chess.NewGame()
}

func (r *chessRules) Opening() *Opening {
	moves := r.game.Moves()
	if len(moves) == 0 {
		return nil
	}
	book := ecoBook()
	if book == nil {
		return nil
	}
	o := book.Find(moves)
	if o == nil {
		return nil
	}
	return &Opening{ECO: o.Code(), Name: o.Title()}
}

func toChessSquare(sq Square) chess.Square {
	return chess.NewSquare(chess.File(sq.Col), chess.Rank(7-sq.Row))
}

func fromChessSquare(sq chess.Square) Square {
	return Square{Row: 7 - int(sq.Rank()), Col: int(sq.File())}
}

func fromChessPiece(p chess.Piece) Piece {
	if p == chess.NoPiece {
		return NoPiece
	}
	var letter byte
	switch p.Type() {
	case chess.King:
		letter = 'k'
	case chess.Queen:
		letter = 'q'
	case chess.Rook:
		letter = 'r'
	case chess.Bishop:
		letter = 'b'
	case chess.Knight:
		letter = 'n'
	case chess.Pawn:
		letter = 'p'
	default:
		return NoPiece
	}
	if p.Color() == chess.White {
		letter -= 'a' - 'A'
	}
	return Piece(letter)
}

// moveToUCI formats a move as UCI, e.g. "e2e4" or "e7e8q".
func moveToUCI(s1, s2 chess.Square, promo chess.PieceType) string {
	uci := fromChessSquare(s1).String() + fromChessSquare(s2).String()
	if l := promoLetter(promo); l != 0 {
		uci += string(rune(l))
	}
	return uci
}

func promoLetter(promo chess.PieceType) byte {
	switch promo {
	case chess.Queen:
		return 'q'
	case chess.Rook:
		return 'r'
	case chess.Bishop:
		return 'b'
	case chess.Knight:
		return 'n'
	}
	return 0
}
