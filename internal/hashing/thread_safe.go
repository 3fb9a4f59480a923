package hashing

import (
	"sync"

	"github.com/lgbarn/chessrules-go/internal/engine"
)

// SharedDetector lets concurrent workers register positions under their
// input index. For every position it keeps the lowest index registered, so
// once all workers are done IsDuplicate gives the same answer whatever order
// they ran in. With a capacity limit, which positions get remembered does
// depend on arrival order.
type SharedDetector struct {
	mu       sync.RWMutex
	detector *DuplicateDetector
}

// NewSharedDetector creates a detector safe for concurrent use.
// maxCapacity of 0 means unlimited capacity.
func NewSharedDetector(exactMatch bool, maxCapacity int) *SharedDetector {
	return &SharedDetector{
		detector: NewDuplicateDetector(exactMatch, maxCapacity),
	}
}

// Register records that the position on b occurs at index.
func (d *SharedDetector) Register(b *engine.Board, index int) {
	sig := Signature(b)
	d.mu.Lock()
	defer d.mu.Unlock()
	d.detector.record(sig, index)
}

// FirstIndex returns the lowest index registered for the position on b.
func (d *SharedDetector) FirstIndex(b *engine.Board) (int, bool) {
	sig := Signature(b)
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.detector.firstIndex(sig)
}

// IsDuplicate reports whether the position on b was registered at an index
// lower than index.
func (d *SharedDetector) IsDuplicate(b *engine.Board, index int) bool {
	first, ok := d.FirstIndex(b)
	return ok && first < index
}

// UniqueCount returns the number of distinct positions registered.
func (d *SharedDetector) UniqueCount() int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.detector.UniqueCount()
}

// IsFull returns true if the detector has reached its capacity limit.
func (d *SharedDetector) IsFull() bool {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.detector.IsFull()
}
