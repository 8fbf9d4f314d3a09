package testutil

import (
	"testing"

	"github.com/lgbarn/chess-core-go/internal/chess"
)

func TestParsePlacement(t *testing.T) {
	pos, err := ParsePlacement("7k/5Q2/6K1/8/8/8/8/8", chess.Black)
	AssertNoError(t, err)
	AssertEqual(t, pos.At(chess.MustParseSquare("h8")), chess.B(chess.King))
	AssertEqual(t, pos.At(chess.MustParseSquare("f7")), chess.W(chess.Queen))
	AssertEqual(t, pos.At(chess.MustParseSquare("g6")), chess.W(chess.King))
	AssertEqual(t, pos.ToMove, chess.Black)
	AssertFalse(t, pos.Castling.Any(), "no castling rights")
}

func TestParsePlacement_StandardBoard(t *testing.T) {
	pos, err := ParsePlacement("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR", chess.White)
	AssertNoError(t, err)
	AssertEqual(t, pos.Board, chess.StandardBoard())
}

func TestParsePlacement_Invalid(t *testing.T) {
	tests := []string{
		"",
		"8/8/8/8/8/8/8",
		"8/8/8/8/8/8/8/8/8",
		"9/8/8/8/8/8/8/8",
		"7kk/8/8/8/8/8/8/8",
		"7x/8/8/8/8/8/8/8",
		"7/8/8/8/8/8/8/8",
	}
	for _, placement := range tests {
		if _, err := ParsePlacement(placement, chess.White); err == nil {
			t.Errorf("ParsePlacement(%q) succeeded, want error", placement)
		}
	}
}

func TestMoveAndUCIs(t *testing.T) {
	moves := []chess.Move{Move(t, "e2e4"), Move(t, "e7e8q")}
	AssertEqual(t, UCIs(moves), []string{"e2e4", "e7e8q"})
	AssertEqual(t, moves[1].Promotion, chess.Queen)
}
