package engine

import "github.com/lgbarn/chess-core-go/internal/chess"

// LegalMoves returns the legal moves of the piece on the square.
// The result is empty when the square is empty or holds a piece of the
// side not to move.
func LegalMoves(pos *chess.Position, from chess.Square) []chess.Move {
	piece := pos.At(from)
	if piece.IsEmpty() || piece.Colour != pos.ToMove {
		return nil
	}

	candidates := PseudoLegalMoves(pos, from)
	legal := candidates[:0]
	for _, move := range candidates {
		if leavesKingSafe(pos, move, piece.Colour) {
			legal = append(legal, move)
		}
	}
	return legal
}

// AllLegalMoves returns every legal move of the side to move, square by
// square from a1 to h8.
func AllLegalMoves(pos *chess.Position) []chess.Move {
	var moves []chess.Move
	for rank := 0; rank < chess.BoardSize; rank++ {
		for file := 0; file < chess.BoardSize; file++ {
			sq := chess.Square{File: uint8(file), Rank: uint8(rank)}
			moves = append(moves, LegalMoves(pos, sq)...)
		}
	}
	return moves
}

// HasLegalMoves returns true if the side to move has at least one legal move.
func HasLegalMoves(pos *chess.Position) bool {
	for rank := 0; rank < chess.BoardSize; rank++ {
		for file := 0; file < chess.BoardSize; file++ {
			sq := chess.Square{File: uint8(file), Rank: uint8(rank)}
			if len(LegalMoves(pos, sq)) > 0 {
				return true
			}
		}
	}
	return false
}

// leavesKingSafe makes a move on a copied position and checks that it does
// not leave the mover's king in check.
func leavesKingSafe(pos *chess.Position, move chess.Move, colour chess.Colour) bool {
	next, _ := applyUnchecked(pos, move)
	return !IsInCheck(&next, colour)
}

// containsMove reports whether move is in moves.
func containsMove(moves []chess.Move, move chess.Move) bool {
	for _, m := range moves {
		if m == move {
			return true
		}
	}
	return false
}
