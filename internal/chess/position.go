package chess

// CastlingRights tracks which castling options remain. Rights are only ever
// cleared, never granted again.
type CastlingRights struct {
	WhiteKingSide  bool
	WhiteQueenSide bool
	BlackKingSide  bool
	BlackQueenSide bool
}

// AllCastlingRights returns rights for the standard starting position.
func AllCastlingRights() CastlingRights {
	return CastlingRights{
		WhiteKingSide:  true,
		WhiteQueenSide: true,
		BlackKingSide:  true,
		BlackQueenSide: true,
	}
}

// KingSide reports the king-side right for the colour.
func (c CastlingRights) KingSide(colour Colour) bool {
	if colour == White {
		return c.WhiteKingSide
	}
	return c.BlackKingSide
}

// QueenSide reports the queen-side right for the colour.
func (c CastlingRights) QueenSide(colour Colour) bool {
	if colour == White {
		return c.WhiteQueenSide
	}
	return c.BlackQueenSide
}

// ClearColour removes both rights of the colour.
func (c *CastlingRights) ClearColour(colour Colour) {
	if colour == White {
		c.WhiteKingSide = false
		c.WhiteQueenSide = false
	} else {
		c.BlackKingSide = false
		c.BlackQueenSide = false
	}
}

// ClearCorner removes the right tied to a rook corner. Other squares are ignored.
func (c *CastlingRights) ClearCorner(sq Square) {
	switch sq {
	case Square{File: 0, Rank: 0}:
		c.WhiteQueenSide = false
	case Square{File: 7, Rank: 0}:
		c.WhiteKingSide = false
	case Square{File: 0, Rank: 7}:
		c.BlackQueenSide = false
	case Square{File: 7, Rank: 7}:
		c.BlackKingSide = false
	}
}

// Any returns true if at least one right remains.
func (c CastlingRights) Any() bool {
	return c.WhiteKingSide || c.WhiteQueenSide || c.BlackKingSide || c.BlackQueenSide
}

// Position is the complete state needed to continue play.
// It is a value: assigning a Position copies the board.
type Position struct {
	Board Board

	// Who has the next move.
	ToMove Colour

	// Status as of the last transition.
	Status Status

	// The half-move clock since the last pawn move or capture.
	HalfmoveClock uint

	// The current move number, starting at 1 and incremented after Black moves.
	MoveNumber uint

	Castling CastlingRights

	// Is EnPassant capture possible? If so then EPSquare is the square
	// the double-pushed pawn skipped over.
	EnPassant bool
	EPSquare  Square
}

// InitialPosition returns the standard starting position.
func InitialPosition() Position {
	return Position{
		Board:      StandardBoard(),
		ToMove:     White,
		Status:     InProgress(),
		MoveNumber: 1,
		Castling:   AllCastlingRights(),
	}
}

// EmptyPosition returns a position with no pieces and no castling rights.
func EmptyPosition(toMove Colour) Position {
	return Position{
		ToMove:     toMove,
		Status:     InProgress(),
		MoveNumber: 1,
	}
}

// At returns the piece on the square.
func (p *Position) At(sq Square) Piece {
	return p.Board.At(sq)
}

// IsEnPassantTarget returns true if sq is the current en-passant target.
func (p *Position) IsEnPassantTarget(sq Square) bool {
	return p.EnPassant && p.EPSquare == sq
}
