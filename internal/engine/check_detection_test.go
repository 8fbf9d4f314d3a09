package engine

import (
	"testing"

	"github.com/lgbarn/chess-core-go/internal/chess"
	"github.com/lgbarn/chess-core-go/internal/testutil"
)

func TestIsSquareAttacked(t *testing.T) {
	tests := []struct {
		name      string
		placement string
		square    string
		by        chess.Colour
		want      bool
	}{
		{"white pawn attacks diagonally", "8/8/8/8/8/8/4P3/8", "d3", chess.White, true},
		{"white pawn does not attack push square", "8/8/8/8/8/8/4P3/8", "e3", chess.White, false},
		{"white pawn does not attack backwards", "8/8/8/8/8/8/4P3/8", "d1", chess.White, false},
		{"black pawn attacks downwards", "8/4p3/8/8/8/8/8/8", "f6", chess.Black, true},
		{"black pawn does not attack upwards", "8/4p3/8/8/8/8/8/8", "f8", chess.Black, false},
		{"knight jump", "8/8/8/8/8/8/8/6N1", "f3", chess.White, true},
		{"knight over pieces", "8/8/8/8/8/8/5PPP/6N1", "h3", chess.White, true},
		{"rook open file", "8/8/8/8/8/8/8/R7", "a8", chess.White, true},
		{"rook blocked", "8/8/8/8/8/P7/8/R7", "a5", chess.White, false},
		{"rook attacks blocker", "8/8/8/8/8/P7/8/R7", "a3", chess.White, true},
		{"bishop diagonal", "8/8/8/8/8/8/8/2B5", "h6", chess.White, true},
		{"bishop blocked by enemy", "8/8/8/8/8/4p3/8/2B5", "f4", chess.White, false},
		{"bishop attacks blocker", "8/8/8/8/8/4p3/8/2B5", "e3", chess.White, true},
		{"queen rank", "8/8/8/8/3q4/8/8/8", "h4", chess.Black, true},
		{"queen not knight-shaped", "8/8/8/8/3q4/8/8/8", "e6", chess.Black, false},
		{"king adjacent", "8/8/8/8/8/8/8/4K3", "f2", chess.White, true},
		{"king two away", "8/8/8/8/8/8/8/4K3", "g1", chess.White, false},
		{"wrong colour ignored", "8/8/8/8/8/8/8/R7", "a8", chess.Black, false},
		{"empty board", "8/8/8/8/8/8/8/8", "e4", chess.White, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			pos := testutil.PositionFromPlacement(t, tt.placement, chess.White)
			got := IsSquareAttacked(&pos, chess.MustParseSquare(tt.square), tt.by)
			if got != tt.want {
				t.Errorf("IsSquareAttacked(%s, %v) = %v, want %v", tt.square, tt.by, got, tt.want)
			}
		})
	}
}

func TestIsSquareAttacked_InitialPosition(t *testing.T) {
	pos := chess.InitialPosition()

	tests := []struct {
		square string
		by     chess.Colour
		want   bool
	}{
		{"f3", chess.White, true},
		{"e4", chess.White, false},
		{"e6", chess.Black, true},
		{"e5", chess.Black, false},
		{"d3", chess.Black, false},
	}
	for _, tt := range tests {
		if got := IsSquareAttacked(&pos, chess.MustParseSquare(tt.square), tt.by); got != tt.want {
			t.Errorf("IsSquareAttacked(%s, %v) = %v, want %v", tt.square, tt.by, got, tt.want)
		}
	}
}

func TestIsInCheck(t *testing.T) {
	tests := []struct {
		name      string
		placement string
		colour    chess.Colour
		want      bool
	}{
		{"rook on open file", "4k3/8/8/8/8/8/8/4R1K1", chess.Black, true},
		{"rook blocked", "4k3/4p3/8/8/8/8/8/4R1K1", chess.Black, false},
		{"knight check", "4k3/8/3N4/8/8/8/8/6K1", chess.Black, true},
		{"pawn check", "8/8/8/8/8/8/3p4/4K3", chess.White, true},
		{"pawn in front is no check", "8/8/8/8/8/8/4p3/4K3", chess.White, false},
		{"bishop check", "4k3/8/8/8/B7/8/8/6K1", chess.Black, true},
		{"missing king", "8/8/8/8/8/8/8/4R1K1", chess.Black, false},
		{"initial position", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR", chess.White, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			pos := testutil.PositionFromPlacement(t, tt.placement, tt.colour)
			if got := IsInCheck(&pos, tt.colour); got != tt.want {
				t.Errorf("IsInCheck(%v) = %v, want %v", tt.colour, got, tt.want)
			}
		})
	}
}

func TestAbs(t *testing.T) {
	tests := []struct{ in, want int }{{0, 0}, {5, 5}, {-5, 5}, {-1, 1}}
	for _, tt := range tests {
		if got := abs(tt.in); got != tt.want {
			t.Errorf("abs(%d) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestSign(t *testing.T) {
	tests := []struct{ in, want int }{{0, 0}, {7, 1}, {-3, -1}}
	for _, tt := range tests {
		if got := sign(tt.in); got != tt.want {
			t.Errorf("sign(%d) = %d, want %d", tt.in, got, tt.want)
		}
	}
}
