package engine

import "github.com/lgbarn/chess-core-go/internal/chess"

// kingHomeFile is the e-file, where a king must stand to castle.
const kingHomeFile = 4

// castleWing describes one castling option by file indices on the home rank.
type castleWing struct {
	rookFile int
	kingTo   int
	rookTo   int
	between  []int // squares strictly between king and rook, must be empty
	transit  []int // squares the king crosses, including its destination
}

var (
	kingSideWing  = castleWing{rookFile: 7, kingTo: 6, rookTo: 5, between: []int{5, 6}, transit: []int{5, 6}}
	queenSideWing = castleWing{rookFile: 0, kingTo: 2, rookTo: 3, between: []int{1, 2, 3}, transit: []int{3, 2}}
)

// addCastlingMoves appends castling moves for a king on from. The move
// addresses only the king; the rook is relocated when the move is applied.
func addCastlingMoves(moves []chess.Move, pos *chess.Position, from chess.Square, colour chess.Colour) []chess.Move {
	if int(from.File) != kingHomeFile || int(from.Rank) != colour.HomeRank() {
		return moves
	}

	enemy := colour.Opposite()
	if IsSquareAttacked(pos, from, enemy) {
		return moves
	}

	if pos.Castling.KingSide(colour) && canCastle(pos, from, colour, kingSideWing) {
		moves = append(moves, chess.Move{From: from, To: homeSquare(from, kingSideWing.kingTo)})
	}
	if pos.Castling.QueenSide(colour) && canCastle(pos, from, colour, queenSideWing) {
		moves = append(moves, chess.Move{From: from, To: homeSquare(from, queenSideWing.kingTo)})
	}
	return moves
}

// canCastle checks rook presence, an empty path and unattacked transit squares.
func canCastle(pos *chess.Position, from chess.Square, colour chess.Colour, wing castleWing) bool {
	if !pos.At(homeSquare(from, wing.rookFile)).Is(colour, chess.Rook) {
		return false
	}
	for _, file := range wing.between {
		if !pos.Board.IsEmpty(homeSquare(from, file)) {
			return false
		}
	}
	enemy := colour.Opposite()
	for _, file := range wing.transit {
		if IsSquareAttacked(pos, homeSquare(from, file), enemy) {
			return false
		}
	}
	return true
}

// relocateCastlingRook moves the rook for a king that just moved two files.
func relocateCastlingRook(board *chess.Board, from, to chess.Square) {
	wing := queenSideWing
	if to.File > from.File {
		wing = kingSideWing
	}
	rookFrom := homeSquare(from, wing.rookFile)
	rook := board.At(rookFrom)
	board.Clear(rookFrom)
	board.Set(homeSquare(from, wing.rookTo), rook)
}

// homeSquare returns the square on the same rank as sq at the given file.
func homeSquare(sq chess.Square, file int) chess.Square {
	return chess.Square{File: uint8(file), Rank: sq.Rank}
}

// updateCastlingRights clears rights after a move: any king move clears both
// of the mover's rights, a rook leaving its own corner clears that wing, and a
// capture landing on an enemy corner clears the enemy's wing.
func updateCastlingRights(rights *chess.CastlingRights, moved chess.Piece, from, to chess.Square, capture bool) {
	switch moved.Kind {
	case chess.King:
		rights.ClearColour(moved.Colour)
	case chess.Rook:
		if int(from.Rank) == moved.Colour.HomeRank() {
			rights.ClearCorner(from)
		}
	}
	if capture && int(to.Rank) == moved.Colour.Opposite().HomeRank() {
		rights.ClearCorner(to)
	}
}
