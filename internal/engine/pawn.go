package engine

import "github.com/lgbarn/chess-core-go/internal/chess"

// appendPawnMoves adds pushes, captures and en-passant captures in that order.
func appendPawnMoves(moves []chess.Move, pos *chess.Position, from chess.Square, colour chess.Colour) []chess.Move {
	dir := colour.Forward()

	// Forward move
	if one, ok := from.Offset(0, dir); ok && pos.Board.IsEmpty(one) {
		moves = appendPawnMove(moves, from, one, colour)

		// Double push from starting rank
		if int(from.Rank) == colour.PawnRank() {
			if two, ok := from.Offset(0, 2*dir); ok && pos.Board.IsEmpty(two) {
				moves = append(moves, chess.Move{From: from, To: two})
			}
		}
	}

	// Captures
	for _, df := range [2]int{-1, 1} {
		to, ok := from.Offset(df, dir)
		if ok && pos.At(to).IsEnemyOf(colour) {
			moves = appendPawnMove(moves, from, to, colour)
		}
	}

	// En passant
	if pos.EnPassant {
		for _, df := range [2]int{-1, 1} {
			to, ok := from.Offset(df, dir)
			if !ok || to != pos.EPSquare {
				continue
			}
			beside, ok := from.Offset(df, 0)
			if ok && pos.At(beside).Is(colour.Opposite(), chess.Pawn) {
				moves = append(moves, chess.Move{From: from, To: to})
			}
		}
	}

	return moves
}

// appendPawnMove adds a single pawn move, expanded into one move per
// promotion kind when it lands on the last rank.
func appendPawnMove(moves []chess.Move, from, to chess.Square, colour chess.Colour) []chess.Move {
	if int(to.Rank) != colour.PromotionRank() {
		return append(moves, chess.Move{From: from, To: to})
	}
	for _, kind := range chess.PromotionKinds {
		moves = append(moves, chess.Move{From: from, To: to, Promotion: kind})
	}
	return moves
}

// enPassantVictim returns the square of the pawn captured en passant when a
// pawn of colour lands on to.
func enPassantVictim(to chess.Square, colour chess.Colour) (chess.Square, bool) {
	return to.Offset(0, -colour.Forward())
}
