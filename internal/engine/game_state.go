package engine

import "github.com/lgbarn/chess-core-go/internal/chess"

// EvaluateStatus classifies the position for the side to move.
func EvaluateStatus(pos *chess.Position) chess.Status {
	colour := pos.ToMove
	if HasLegalMoves(pos) {
		return chess.InProgress()
	}
	if IsInCheck(pos, colour) {
		return chess.Checkmate(colour.Opposite())
	}
	return chess.Stalemate(colour)
}

// IsCheckmate returns true if the position is checkmate for the side to move.
func IsCheckmate(pos *chess.Position) bool {
	return IsInCheck(pos, pos.ToMove) && !HasLegalMoves(pos)
}

// IsStalemate returns true if the position is stalemate for the side to move.
func IsStalemate(pos *chess.Position) bool {
	return !IsInCheck(pos, pos.ToMove) && !HasLegalMoves(pos)
}
