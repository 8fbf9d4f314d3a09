package engine

import "github.com/lgbarn/chess-core-go/internal/chess"

// Direction tables shared by the generator and attack detection.
var (
	knightOffsets = [8][2]int{{-2, -1}, {-2, 1}, {-1, -2}, {-1, 2}, {1, -2}, {1, 2}, {2, -1}, {2, 1}}
	kingOffsets   = [8][2]int{{-1, -1}, {0, -1}, {1, -1}, {-1, 0}, {1, 0}, {-1, 1}, {0, 1}, {1, 1}}
	diagonalDirs  = [][2]int{{-1, -1}, {1, -1}, {-1, 1}, {1, 1}}
	straightDirs  = [][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
	queenDirs     = append(append([][2]int{}, diagonalDirs...), straightDirs...)
)

// pieceAttacks checks if a piece standing on from attacks the target square.
func pieceAttacks(board *chess.Board, piece chess.Piece, from, to chess.Square) bool {
	df := int(to.File) - int(from.File)
	dr := int(to.Rank) - int(from.Rank)
	colDiff := abs(df)
	rankDiff := abs(dr)
	if colDiff == 0 && rankDiff == 0 {
		return false
	}

	switch piece.Kind {
	case chess.Pawn:
		// Pawns attack only diagonally forward, never the push squares.
		return dr == piece.Colour.Forward() && colDiff == 1

	case chess.Knight:
		return (colDiff == 1 && rankDiff == 2) || (colDiff == 2 && rankDiff == 1)

	case chess.Bishop:
		if colDiff != rankDiff {
			return false
		}
		return isRayClear(board, from, to)

	case chess.Rook:
		if colDiff != 0 && rankDiff != 0 {
			return false
		}
		return isRayClear(board, from, to)

	case chess.Queen:
		if colDiff == rankDiff || colDiff == 0 || rankDiff == 0 {
			return isRayClear(board, from, to)
		}
		return false

	case chess.King:
		return colDiff <= 1 && rankDiff <= 1
	}

	return false
}

// isRayClear checks that every square strictly between from and to is empty.
// from and to must share a rank, file or diagonal.
func isRayClear(board *chess.Board, from, to chess.Square) bool {
	colDir := sign(int(to.File) - int(from.File))
	rankDir := sign(int(to.Rank) - int(from.Rank))

	file := int(from.File) + colDir
	rank := int(from.Rank) + rankDir

	for file != int(to.File) || rank != int(to.Rank) {
		if !board.Squares[rank][file].IsEmpty() {
			return false
		}
		file += colDir
		rank += rankDir
	}

	return true
}
