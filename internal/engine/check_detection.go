package engine

import "github.com/lgbarn/chess-core-go/internal/chess"

// IsInCheck returns true if the given colour's king is in check.
// A side with no king on the board is reported as not in check.
func IsInCheck(pos *chess.Position, colour chess.Colour) bool {
	kingSquare, ok := pos.Board.FindKing(colour)
	if !ok {
		return false
	}
	return IsSquareAttacked(pos, kingSquare, colour.Opposite())
}

// IsSquareAttacked returns true if any piece of byColour attacks the square.
// Sliding attacks stop at the first occupant on the ray.
func IsSquareAttacked(pos *chess.Position, target chess.Square, byColour chess.Colour) bool {
	board := &pos.Board
	for rank := 0; rank < chess.BoardSize; rank++ {
		for file := 0; file < chess.BoardSize; file++ {
			piece := board.Squares[rank][file]
			if piece.IsEmpty() || piece.Colour != byColour {
				continue
			}
			from := chess.Square{File: uint8(file), Rank: uint8(rank)}
			if pieceAttacks(board, piece, from, target) {
				return true
			}
		}
	}
	return false
}
