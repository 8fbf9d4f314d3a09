package testutil

import (
	"fmt"
	"testing"

	"github.com/lgbarn/chess-core-go/internal/chess"
)

// ParsePlacement builds a position from the piece-placement field of a FEN
// string, e.g. "7k/5Q2/6K1/8/8/8/8/8". The position has no castling rights,
// no en-passant target and move number 1.
func ParsePlacement(placement string, toMove chess.Colour) (chess.Position, error) {
	pos := chess.EmptyPosition(toMove)
	rank := chess.BoardSize - 1
	file := 0

	for i := 0; i < len(placement); i++ {
		c := placement[i]
		switch {
		case c == '/':
			if file != chess.BoardSize {
				return pos, fmt.Errorf("rank %d has %d files", rank+1, file)
			}
			rank--
			file = 0
		case c >= '1' && c <= '8':
			file += int(c - '0')
		default:
			piece, ok := chess.PieceFromLetter(c)
			if !ok {
				return pos, fmt.Errorf("invalid piece character: %c", c)
			}
			if file >= chess.BoardSize || rank < 0 {
				return pos, fmt.Errorf("position out of bounds at %c", c)
			}
			pos.Board.Set(chess.Square{File: uint8(file), Rank: uint8(rank)}, piece)
			file++
		}
		if file > chess.BoardSize || rank < 0 {
			return pos, fmt.Errorf("placement %q overflows the board", placement)
		}
	}
	if rank != 0 || file != chess.BoardSize {
		return pos, fmt.Errorf("placement %q does not describe 8 ranks", placement)
	}
	return pos, nil
}

// PositionFromPlacement is ParsePlacement that fails the test on error.
func PositionFromPlacement(t testing.TB, placement string, toMove chess.Colour) chess.Position {
	t.Helper()
	pos, err := ParsePlacement(placement, toMove)
	if err != nil {
		t.Fatalf("PositionFromPlacement(%q): %v", placement, err)
	}
	return pos
}

// Move builds a move from UCI text such as "e2e4" or "e7e8q", failing the
// test on malformed input.
func Move(t testing.TB, uci string) chess.Move {
	t.Helper()
	m, err := chess.ParseUCI(uci)
	if err != nil {
		t.Fatalf("Move(%q): %v", uci, err)
	}
	return m
}

// UCIs renders moves as UCI strings in order.
func UCIs(moves []chess.Move) []string {
	out := make([]string, len(moves))
	for i, m := range moves {
		out[i] = m.UCI()
	}
	return out
}
