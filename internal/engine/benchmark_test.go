package engine

import (
	"context"
	"testing"

	"github.com/lgbarn/chess-core-go/internal/chess"
	"github.com/lgbarn/chess-core-go/internal/testutil"
)

const kiwipete = "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R"

func BenchmarkAllLegalMoves_Initial(b *testing.B) {
	pos := chess.InitialPosition()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = AllLegalMoves(&pos)
	}
}

func BenchmarkAllLegalMoves_Kiwipete(b *testing.B) {
	pos := testutil.PositionFromPlacement(b, kiwipete, chess.White)
	pos.Castling = chess.AllCastlingRights()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = AllLegalMoves(&pos)
	}
}

func BenchmarkApplyMove(b *testing.B) {
	pos := chess.InitialPosition()
	move := chess.Move{From: chess.MustParseSquare("e2"), To: chess.MustParseSquare("e4")}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := ApplyMove(pos, move); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkIsInCheck(b *testing.B) {
	pos := testutil.PositionFromPlacement(b, kiwipete, chess.White)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = IsInCheck(&pos, chess.White)
	}
}

func BenchmarkEvaluateStatus(b *testing.B) {
	pos := testutil.PositionFromPlacement(b, "7k/5Q2/6K1/8/8/8/8/8", chess.Black)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = EvaluateStatus(&pos)
	}
}

func BenchmarkPerft3(b *testing.B) {
	pos := chess.InitialPosition()
	for i := 0; i < b.N; i++ {
		_ = Perft(pos, 3)
	}
}

func BenchmarkPerftDivide3(b *testing.B) {
	pos := chess.InitialPosition()
	ctx := context.Background()
	for i := 0; i < b.N; i++ {
		if _, err := PerftDivide(ctx, pos, 3, 4); err != nil {
			b.Fatal(err)
		}
	}
}
