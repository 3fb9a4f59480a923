// Package worker evaluates batches of positions on a fixed set of
// goroutines. Every job builds its own Board, so workers share no game state.
package worker

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/lgbarn/chessrules-go/internal/engine"
	"github.com/lgbarn/chessrules-go/internal/errors"
)

// WorkItem is one FEN line of a batch.
type WorkItem struct {
	FEN   string
	Index int // position in the input, used to restore order
}

// ProcessResult is the outcome of one WorkItem.
type ProcessResult struct {
	Index     int
	FEN       string
	Board     *engine.Board // nil when Error is set
	Duplicate bool
	Error     error
}

// ProcessFunc evaluates a single item.
type ProcessFunc func(item WorkItem) ProcessResult

const (
	defaultWorkers = 1
	defaultQueue   = 10
)

// Pool fans WorkItems out to a fixed number of goroutines and collects
// their results on a single channel.
type Pool struct {
	workers int
	queue   int
	fn      ProcessFunc

	jobs    chan WorkItem
	results chan ProcessResult
	wg      sync.WaitGroup

	halted    atomic.Bool
	processed atomic.Int64
}

// PoolOption configures a Pool.
type PoolOption func(*Pool)

// WithWorkers sets the number of goroutines. Values below one are ignored.
func WithWorkers(n int) PoolOption {
	return func(p *Pool) {
		if n > 0 {
			p.workers = n
		}
	}
}

// WithBufferSize sets the capacity of the job and result queues. Values
// below one are ignored.
func WithBufferSize(n int) PoolOption {
	return func(p *Pool) {
		if n > 0 {
			p.queue = n
		}
	}
}

// NewPool is shorthand for NewPoolWithOptions with both sizes given.
func NewPool(workers, queue int, fn ProcessFunc) *Pool {
	return NewPoolWithOptions(fn, WithWorkers(workers), WithBufferSize(queue))
}

// NewPoolWithOptions creates a pool running fn. Without options it has one
// worker and a queue of ten.
func NewPoolWithOptions(fn ProcessFunc, opts ...PoolOption) *Pool {
	p := &Pool{workers: defaultWorkers, queue: defaultQueue, fn: fn}
	for _, opt := range opts {
		opt(p)
	}
	p.jobs = make(chan WorkItem, p.queue)
	p.results = make(chan ProcessResult, p.queue)
	return p
}

// Start launches the workers. Call it once.
func (p *Pool) Start() {
	p.wg.Add(p.workers)
	for i := 0; i < p.workers; i++ {
		go p.loop()
	}
}

func (p *Pool) loop() {
	defer p.wg.Done()
	for item := range p.jobs {
		// keep draining after Stop so Submit never blocks forever
		if p.halted.Load() {
			continue
		}
		p.results <- p.fn(item)
		p.processed.Add(1)
	}
}

// Submit queues item, blocking while the queue is full. It returns
// ctx.Err() if ctx ends first and errors.ErrPoolStopped after Stop.
func (p *Pool) Submit(ctx context.Context, item WorkItem) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if p.halted.Load() {
		return errors.ErrPoolStopped
	}
	select {
	case p.jobs <- item:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// TrySubmit queues item only if there is room and the pool is running.
func (p *Pool) TrySubmit(item WorkItem) bool {
	if p.halted.Load() {
		return false
	}
	select {
	case p.jobs <- item:
		return true
	default:
		return false
	}
}

// Stop makes the workers discard whatever is still queued.
func (p *Pool) Stop() { p.halted.Store(true) }

// IsStopped reports whether Stop was called.
func (p *Pool) IsStopped() bool { return p.halted.Load() }

// Close ends submission, waits for the workers and then closes Results.
func (p *Pool) Close() {
	close(p.jobs)
	p.wg.Wait()
	close(p.results)
}

// Results delivers results in completion order.
func (p *Pool) Results() <-chan ProcessResult { return p.results }

// NumWorkers returns the number of goroutines.
func (p *Pool) NumWorkers() int { return p.workers }

// Processed returns how many items have been evaluated so far.
func (p *Pool) Processed() int { return int(p.processed.Load()) }
