package engine

import "github.com/lgbarn/chess-core-go/internal/chess"

// PseudoLegalMoves returns the moves the piece on the square could make
// by its movement pattern alone. Moves that leave the mover's own king in
// check are included; see LegalMoves for the filtered list.
func PseudoLegalMoves(pos *chess.Position, from chess.Square) []chess.Move {
	piece := pos.At(from)
	if piece.IsEmpty() {
		return nil
	}

	var moves []chess.Move
	switch piece.Kind {
	case chess.Pawn:
		moves = appendPawnMoves(moves, pos, from, piece.Colour)
	case chess.Knight:
		moves = appendOffsetMoves(moves, pos, from, piece.Colour, knightOffsets[:])
	case chess.Bishop:
		moves = appendSlidingMoves(moves, pos, from, piece.Colour, diagonalDirs)
	case chess.Rook:
		moves = appendSlidingMoves(moves, pos, from, piece.Colour, straightDirs)
	case chess.Queen:
		moves = appendSlidingMoves(moves, pos, from, piece.Colour, queenDirs)
	case chess.King:
		moves = appendOffsetMoves(moves, pos, from, piece.Colour, kingOffsets[:])
		moves = addCastlingMoves(moves, pos, from, piece.Colour)
	}
	return moves
}

// appendOffsetMoves adds knight or king steps onto empty or enemy squares.
func appendOffsetMoves(moves []chess.Move, pos *chess.Position, from chess.Square, colour chess.Colour, offsets [][2]int) []chess.Move {
	for _, offset := range offsets {
		to, ok := from.Offset(offset[0], offset[1])
		if !ok {
			continue
		}
		target := pos.At(to)
		if target.IsEmpty() || target.Colour != colour {
			moves = append(moves, chess.Move{From: from, To: to})
		}
	}
	return moves
}

// appendSlidingMoves walks each ray until blocked. The blocking square is
// included only when it holds an enemy piece.
func appendSlidingMoves(moves []chess.Move, pos *chess.Position, from chess.Square, colour chess.Colour, dirs [][2]int) []chess.Move {
	for _, dir := range dirs {
		to, ok := from.Offset(dir[0], dir[1])
		for ok {
			target := pos.At(to)
			if !target.IsEmpty() {
				if target.Colour != colour {
					moves = append(moves, chess.Move{From: from, To: to})
				}
				break // Blocked
			}
			moves = append(moves, chess.Move{From: from, To: to})
			to, ok = to.Offset(dir[0], dir[1])
		}
	}
	return moves
}
