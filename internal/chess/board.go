package chess

// Board is an 8x8 grid indexed [rank][file]. It is a plain array, so
// assigning a Board copies every cell.
type Board struct {
	Squares [BoardSize][BoardSize]Piece
}

// At returns the piece on the square (NoPiece when empty).
func (b *Board) At(sq Square) Piece {
	return b.Squares[sq.Rank][sq.File]
}

// Set places a piece on the square.
func (b *Board) Set(sq Square, piece Piece) {
	b.Squares[sq.Rank][sq.File] = piece
}

// Clear empties the square.
func (b *Board) Clear(sq Square) {
	b.Squares[sq.Rank][sq.File] = NoPiece
}

// IsEmpty returns true if nothing stands on the square.
func (b *Board) IsEmpty(sq Square) bool {
	return b.At(sq).IsEmpty()
}

// FindKing returns the square of the colour's king by scanning the board.
func (b *Board) FindKing(colour Colour) (Square, bool) {
	for rank := 0; rank < BoardSize; rank++ {
		for file := 0; file < BoardSize; file++ {
			if b.Squares[rank][file].Is(colour, King) {
				return Square{File: uint8(file), Rank: uint8(rank)}, true
			}
		}
	}
	return Square{}, false
}

// backRank is the standard piece order from the a-file to the h-file.
var backRank = [BoardSize]PieceKind{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}

// StandardBoard returns the board of the standard starting position.
func StandardBoard() Board {
	var b Board
	for file := 0; file < BoardSize; file++ {
		b.Squares[0][file] = W(backRank[file])
		b.Squares[1][file] = W(Pawn)
		b.Squares[6][file] = B(Pawn)
		b.Squares[7][file] = B(backRank[file])
	}
	return b
}
