// Package worker provides a worker pool for parallel move-tree counting.
package worker

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/lgbarn/chess-core-go/internal/chess"
)

// WorkItem represents one root move to be expanded.
type WorkItem struct {
	Position chess.Position // Position before Move is played
	Move     chess.Move
	Depth    int // Remaining depth including Move itself
	Index    int // Original index for tracking
}

// ProcessResult represents the result of expanding a work item.
type ProcessResult struct {
	Move  chess.Move
	Index int
	Nodes uint64
	Error error
}

// ProcessFunc is the function signature for processing a work item.
type ProcessFunc func(item WorkItem) ProcessResult

// Pool manages a pool of workers for parallel move-tree counting.
type Pool struct {
	numWorkers  int
	bufferSize  int
	workChan    chan WorkItem
	resultChan  chan ProcessResult
	processFunc ProcessFunc
	wg          sync.WaitGroup
	stopped     atomic.Bool
}

// PoolOption configures a Pool.
type PoolOption func(*Pool)

// WithWorkers sets the number of worker goroutines.
func WithWorkers(n int) PoolOption {
	return func(p *Pool) {
		if n >= 1 {
			p.numWorkers = n
		}
	}
}

// WithBufferSize sets the channel buffer size.
func WithBufferSize(size int) PoolOption {
	return func(p *Pool) {
		if size >= 1 {
			p.bufferSize = size
		}
	}
}

// NewPool creates a new worker pool using functional options.
// processFunc is required; other settings have sensible defaults.
// Default: 1 worker, buffer size of 10.
func NewPool(processFunc ProcessFunc, opts ...PoolOption) *Pool {
	p := &Pool{
		numWorkers:  1,
		bufferSize:  10,
		processFunc: processFunc,
	}
	for _, opt := range opts {
		opt(p)
	}
	// Create channels after options are applied
	p.workChan = make(chan WorkItem, p.bufferSize)
	p.resultChan = make(chan ProcessResult, p.bufferSize)
	return p
}

// Start starts the worker goroutines. Once ctx is done, or Stop is called,
// remaining items are drained without being processed.
func (p *Pool) Start(ctx context.Context) {
	for i := 0; i < p.numWorkers; i++ {
		p.wg.Add(1)
		go p.worker(ctx)
	}
}

// worker processes items from the work channel until it is closed.
func (p *Pool) worker(ctx context.Context) {
	defer p.wg.Done()

	for item := range p.workChan {
		if p.IsStopped() {
			continue
		}
		if err := ctx.Err(); err != nil {
			p.resultChan <- ProcessResult{Move: item.Move, Index: item.Index, Error: err}
			continue
		}
		p.resultChan <- p.processFunc(item)
	}
}

// Submit submits a work item for processing.
// This may block if the work channel buffer is full.
func (p *Pool) Submit(item WorkItem) {
	p.workChan <- item
}

// Stop signals workers to stop processing new items.
func (p *Pool) Stop() {
	p.stopped.Store(true)
}

// IsStopped returns true if the pool has been stopped.
func (p *Pool) IsStopped() bool {
	return p.stopped.Load()
}

// Close closes the work channel and waits for all workers to finish.
// After calling Close, the result channel will be closed when all workers are done.
func (p *Pool) Close() {
	close(p.workChan)
	p.wg.Wait()
	close(p.resultChan)
}

// Results returns the result channel for reading processed results.
func (p *Pool) Results() <-chan ProcessResult {
	return p.resultChan
}

// NumWorkers returns the number of workers in the pool.
func (p *Pool) NumWorkers() int {
	return p.numWorkers
}

// Run processes items to completion and returns results indexed like items.
// The first error stops the pool and is returned; results are then partial.
func Run(ctx context.Context, items []WorkItem, processFunc ProcessFunc, opts ...PoolOption) ([]ProcessResult, error) {
	p := NewPool(processFunc, opts...)
	p.Start(ctx)

	go func() {
		for _, item := range items {
			p.Submit(item)
		}
		p.Close()
	}()

	results := make([]ProcessResult, len(items))
	var firstErr error
	for res := range p.Results() {
		if res.Error != nil {
			if firstErr == nil {
				firstErr = res.Error
				p.Stop()
			}
			continue
		}
		if res.Index >= 0 && res.Index < len(results) {
			results[res.Index] = res
		}
	}
	if firstErr != nil {
		return nil, firstErr
	}
	return results, nil
}
