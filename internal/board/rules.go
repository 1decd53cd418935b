package board

// Move is a legal move as reported by the rules engine.
type Move struct {
	From      Square
	To        Square
	Promotion byte // lowercase piece letter, 0 when not a promotion
	Capture   bool
	Castle    bool
	EnPassant bool
}

// Rules is the rules engine the controller delegates to. It owns the
// authoritative position; the controller only mirrors it.
type Rules interface {
	PieceAt(sq Square) Piece
	LegalMoves(from Square) []Move
	// Apply plays from->to. promotion is a hint used only when the move is a
	// pawn promotion. An illegal move returns an error and leaves the
	// position untouched.
	Apply(from, to Square, promotion byte) error
	History() []string
	FEN() string
	Turn() Color
	IsCheckmate() bool
	IsDraw() bool
	IsCheck() bool
	Reset()
}

// Opening is a named ECO line.
type Opening struct {
	ECO  string `json:"eco"`
	Name string `json:"name"`
}

// OpeningBook is implemented by engines that can name the current opening.
type OpeningBook interface {
	Opening() *Opening
}
