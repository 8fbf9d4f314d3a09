package engine

import (
	"context"
	"sort"

	"github.com/lgbarn/chess-core-go/internal/chess"
	"github.com/lgbarn/chess-core-go/internal/worker"
)

// DivideEntry is the leaf count below one root move.
type DivideEntry struct {
	Move  chess.Move
	Nodes uint64
}

// Perft counts the leaf nodes of the legal move tree to the given depth.
// Depth 0 counts the position itself.
func Perft(pos chess.Position, depth int) uint64 {
	if depth <= 0 {
		return 1
	}
	moves := AllLegalMoves(&pos)
	if depth == 1 {
		return uint64(len(moves))
	}
	var nodes uint64
	for _, m := range moves {
		next, _ := applyUnchecked(&pos, m)
		nodes += Perft(next, depth-1)
	}
	return nodes
}

// PerftDivide reports the perft count below each root move, sorted by the
// move's UCI text. Root moves are spread across workers goroutines.
func PerftDivide(ctx context.Context, pos chess.Position, depth, workers int) ([]DivideEntry, error) {
	if depth <= 0 {
		return nil, nil
	}
	moves := AllLegalMoves(&pos)
	items := make([]worker.WorkItem, len(moves))
	for i, m := range moves {
		items[i] = worker.WorkItem{Position: pos, Move: m, Depth: depth, Index: i}
	}

	results, err := worker.Run(ctx, items, expandRootMove,
		worker.WithWorkers(workers),
		worker.WithBufferSize(len(items)))
	if err != nil {
		return nil, err
	}

	entries := make([]DivideEntry, len(results))
	for i, res := range results {
		entries[i] = DivideEntry{Move: res.Move, Nodes: res.Nodes}
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Move.UCI() < entries[j].Move.UCI()
	})
	return entries, nil
}

func expandRootMove(item worker.WorkItem) worker.ProcessResult {
	next, _ := applyUnchecked(&item.Position, item.Move)
	return worker.ProcessResult{
		Move:  item.Move,
		Index: item.Index,
		Nodes: Perft(next, item.Depth-1),
	}
}
