// Package chess provides core chess types and operations.
package chess

// Colour represents the colour of a piece or player.
type Colour int

const (
	Black Colour = iota
	White
)

// String returns the string representation of a colour.
func (c Colour) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}

// Opposite returns the opposite colour.
func (c Colour) Opposite() Colour {
	if c == White {
		return Black
	}
	return White
}

// Forward returns +1 for White, -1 for Black (for pawn direction).
func (c Colour) Forward() int {
	if c == White {
		return 1
	}
	return -1
}

// HomeRank returns the rank index of the colour's back rank.
func (c Colour) HomeRank() int {
	if c == White {
		return 0
	}
	return BoardSize - 1
}

// PawnRank returns the rank index pawns of this colour start on.
func (c Colour) PawnRank() int {
	if c == White {
		return 1
	}
	return BoardSize - 2
}

// PromotionRank returns the rank index on which pawns of this colour promote.
func (c Colour) PromotionRank() int {
	return c.Opposite().HomeRank()
}

// PieceKind represents a chess piece type.
type PieceKind int

const (
	Empty PieceKind = iota // Empty square, or no promotion
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
)

// String returns the string representation of a piece kind.
func (k PieceKind) String() string {
	switch k {
	case Empty:
		return "Empty"
	case Pawn:
		return "Pawn"
	case Knight:
		return "Knight"
	case Bishop:
		return "Bishop"
	case Rook:
		return "Rook"
	case Queen:
		return "Queen"
	case King:
		return "King"
	}
	return "Unknown"
}

// Letter returns the single letter representation of a piece kind (uppercase).
func (k PieceKind) Letter() byte {
	switch k {
	case Pawn:
		return 'P'
	case Knight:
		return 'N'
	case Bishop:
		return 'B'
	case Rook:
		return 'R'
	case Queen:
		return 'Q'
	case King:
		return 'K'
	}
	return ' '
}

// IsPromotionTarget reports whether a pawn may promote to this kind.
func (k PieceKind) IsPromotionTarget() bool {
	switch k {
	case Queen, Rook, Bishop, Knight:
		return true
	}
	return false
}

// PromotionKinds lists promotion choices in generation order.
var PromotionKinds = [4]PieceKind{Queen, Rook, Bishop, Knight}

// Piece is a coloured piece. The zero value is an empty cell.
type Piece struct {
	Colour Colour
	Kind   PieceKind
}

// NoPiece is the empty cell.
var NoPiece = Piece{}

// W creates a white piece.
func W(kind PieceKind) Piece {
	return Piece{Colour: White, Kind: kind}
}

// B creates a black piece.
func B(kind PieceKind) Piece {
	return Piece{Colour: Black, Kind: kind}
}

// IsEmpty returns true if no piece occupies the cell.
func (p Piece) IsEmpty() bool {
	return p.Kind == Empty
}

// Is returns true if the piece has the given colour and kind.
func (p Piece) Is(colour Colour, kind PieceKind) bool {
	return p.Kind == kind && p.Kind != Empty && p.Colour == colour
}

// IsEnemyOf returns true if the cell holds a piece of the other colour.
func (p Piece) IsEnemyOf(colour Colour) bool {
	return p.Kind != Empty && p.Colour != colour
}

// Letter returns the FEN letter: uppercase for White, lowercase for Black.
func (p Piece) Letter() byte {
	if p.IsEmpty() {
		return '.'
	}
	l := p.Kind.Letter()
	if p.Colour == Black {
		l += 'a' - 'A'
	}
	return l
}

// String returns e.g. "White Knight".
func (p Piece) String() string {
	if p.IsEmpty() {
		return "Empty"
	}
	return p.Colour.String() + " " + p.Kind.String()
}

// BoardSize is the number of files and ranks.
const BoardSize = 8

// PieceFromLetter converts a FEN letter to a piece. Uppercase is White.
// It reports false for any other byte.
func PieceFromLetter(c byte) (Piece, bool) {
	colour := White
	if c >= 'a' && c <= 'z' {
		colour = Black
		c -= 'a' - 'A'
	}
	for kind := Pawn; kind <= King; kind++ {
		if kind.Letter() == c {
			return Piece{Colour: colour, Kind: kind}, true
		}
	}
	return NoPiece, false
}
