package engine

import (
	"context"
	"sort"
	"testing"

	"github.com/lgbarn/chess-core-go/internal/chess"
	"github.com/lgbarn/chess-core-go/internal/testutil"
)

func TestPerft_InitialPosition(t *testing.T) {
	tests := []struct {
		depth int
		want  uint64
	}{
		{0, 1},
		{1, 20},
		{2, 400},
		{3, 8902},
	}

	for _, tt := range tests {
		if got := Perft(chess.InitialPosition(), tt.depth); got != tt.want {
			t.Errorf("Perft(initial, %d) = %d, want %d", tt.depth, got, tt.want)
		}
	}
}

// Reference counts for well-known move generator test positions.
func TestPerft_ReferencePositions(t *testing.T) {
	tests := []struct {
		name      string
		placement string
		toMove    chess.Colour
		castling  chess.CastlingRights
		counts    []uint64
	}{
		{
			name:      "kiwipete",
			placement: "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R",
			toMove:    chess.White,
			castling:  chess.AllCastlingRights(),
			counts:    []uint64{48, 2039},
		},
		{
			name:      "rook and pawn endgame",
			placement: "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8",
			toMove:    chess.White,
			counts:    []uint64{14, 191, 2812},
		},
		{
			name:      "promotion heavy",
			placement: "r3k2r/Pppp1ppp/1b3nbN/nP6/BBP1P3/q4N2/Pp1P2PP/R2Q1RK1",
			toMove:    chess.White,
			castling:  chess.CastlingRights{BlackKingSide: true, BlackQueenSide: true},
			counts:    []uint64{6, 264},
		},
		{
			name:      "discovered checks",
			placement: "rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R",
			toMove:    chess.White,
			castling:  chess.CastlingRights{WhiteKingSide: true, WhiteQueenSide: true},
			counts:    []uint64{44, 1486},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			pos := testutil.PositionFromPlacement(t, tt.placement, tt.toMove)
			pos.Castling = tt.castling
			for i, want := range tt.counts {
				depth := i + 1
				if got := Perft(pos, depth); got != want {
					t.Errorf("Perft(%d) = %d, want %d", depth, got, want)
				}
			}
		})
	}
}

func TestPerftDivide(t *testing.T) {
	pos := chess.InitialPosition()

	entries, err := PerftDivide(context.Background(), pos, 3, 4)
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, len(entries), 20)

	var total uint64
	ucis := make([]string, len(entries))
	for i, e := range entries {
		total += e.Nodes
		ucis[i] = e.Move.UCI()
	}
	testutil.AssertEqual(t, total, Perft(pos, 3))
	testutil.AssertTrue(t, sort.StringsAreSorted(ucis), "entries sorted by move")

	for _, e := range entries {
		if e.Move.UCI() == "e2e4" && e.Nodes != 600 {
			t.Errorf("e2e4 nodes = %d, want 600", e.Nodes)
		}
		if e.Move.UCI() == "g1h3" && e.Nodes != 400 {
			t.Errorf("g1h3 nodes = %d, want 400", e.Nodes)
		}
	}
}

func TestPerftDivide_DepthOne(t *testing.T) {
	entries, err := PerftDivide(context.Background(), chess.InitialPosition(), 1, 2)
	testutil.AssertNoError(t, err)
	for _, e := range entries {
		testutil.AssertEqual(t, e.Nodes, uint64(1), e.Move.UCI())
	}
}

func TestPerftDivide_ZeroDepth(t *testing.T) {
	entries, err := PerftDivide(context.Background(), chess.InitialPosition(), 0, 2)
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, len(entries), 0)
}

func TestPerftDivide_Terminal(t *testing.T) {
	pos := testutil.PositionFromPlacement(t, "7k/5Q2/6K1/8/8/8/8/8", chess.Black)
	entries, err := PerftDivide(context.Background(), pos, 2, 2)
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, len(entries), 0)
}

func TestPerftDivide_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := PerftDivide(ctx, chess.InitialPosition(), 3, 2)
	testutil.AssertErrorIs(t, err, context.Canceled)
}
