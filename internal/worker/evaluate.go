package worker

import (
	"context"
	"sort"

	"github.com/lgbarn/chessrules-go/internal/engine"
)

// Registry records the input index at which each position occurs and later
// tells whether an occurrence is a repeat. It must be safe for concurrent
// use; hashing.SharedDetector satisfies it.
type Registry interface {
	Register(b *engine.Board, index int)
	IsDuplicate(b *engine.Board, index int) bool
}

// Evaluate returns a ProcessFunc that loads the item's FEN and records its
// game status. With a non-nil registry every loaded position is registered
// under the item's index.
func Evaluate(registry Registry) ProcessFunc {
	return func(item WorkItem) ProcessResult {
		result := ProcessResult{Index: item.Index, FEN: item.FEN}
		b, err := engine.NewBoardFromFEN(item.FEN)
		if err != nil {
			result.Error = err
			return result
		}
		if registry != nil {
			registry.Register(b, item.Index)
		}
		b.IsGameOver()
		result.Board = b
		return result
	}
}

// MarkDuplicates flags every result whose position was registered at a
// lower index and returns how many were flagged. Call it after all items
// have been evaluated.
func MarkDuplicates(results []ProcessResult, registry Registry) int {
	n := 0
	for i := range results {
		r := &results[i]
		if r.Board == nil || !registry.IsDuplicate(r.Board, r.Index) {
			continue
		}
		r.Duplicate = true
		n++
	}
	return n
}

// Run submits every item to the pool and returns the results ordered by
// Index. The pool must not have been started. If ctx is cancelled the pool
// is stopped and only the results produced so far are returned.
func Run(ctx context.Context, pool *Pool, items []WorkItem) []ProcessResult {
	pool.Start()

	go func() {
		defer pool.Close()
		for _, item := range items {
			if err := pool.Submit(ctx, item); err != nil {
				pool.Stop()
				return
			}
		}
	}()

	results := make([]ProcessResult, 0, len(items))
	for r := range pool.Results() {
		results = append(results, r)
	}
	sort.Slice(results, func(i, j int) bool { return results[i].Index < results[j].Index })
	return results
}
