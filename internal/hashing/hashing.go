// Package hashing provides duplicate position detection for batch evaluation.
package hashing

import "github.com/lgbarn/chessrules-go/internal/engine"

// DuplicateDetector tracks seen positions for duplicate detection.
type DuplicateDetector struct {
	// hashTable stores seen signatures by Zobrist hash
	hashTable map[uint64][]entry
	// useExactMatch also compares the clocks
	useExactMatch bool
	// maxCapacity limits the stored signatures; 0 means unlimited
	maxCapacity int
	size        int
	// duplicateCount tracks number of duplicates found
	duplicateCount int
	// next is the index CheckAndAdd gives the position it records
	next int
}

// PositionSignature stores identifying information about a position.
type PositionSignature struct {
	// Hash is the Zobrist hash of the position
	Hash uint64
	// WeakHash is a fast hash for collision separation
	WeakHash uint32
	// Halfmove and Fullmove are compared only for exact matches
	Halfmove uint
	Fullmove uint
}

// entry is a recorded signature and the lowest index it was recorded at.
type entry struct {
	sig   PositionSignature
	first int
}

// NewDuplicateDetector creates a new duplicate detector. With exactMatch the
// halfmove clock and fullmove number must also agree. A maxCapacity of 0
// means unlimited capacity.
func NewDuplicateDetector(exactMatch bool, maxCapacity int) *DuplicateDetector {
	if maxCapacity < 0 {
		maxCapacity = 0
	}
	return &DuplicateDetector{
		hashTable:     make(map[uint64][]entry),
		useExactMatch: exactMatch,
		maxCapacity:   maxCapacity,
	}
}

// Signature computes the signature of a board position.
func Signature(b *engine.Board) PositionSignature {
	meta := b.Metadata()
	return PositionSignature{
		Hash:     GenerateZobristHash(b),
		WeakHash: WeakHash(b),
		Halfmove: meta.HalfmoveClock,
		Fullmove: meta.FullmoveNumber,
	}
}

// CheckAndAdd checks if a position is a duplicate and records it.
// Returns true if the position was seen before. Once the detector is full
// new positions are still checked but no longer recorded.
func (d *DuplicateDetector) CheckAndAdd(b *engine.Board) bool {
	if b == nil {
		return false
	}
	d.next++
	return d.record(Signature(b), d.next)
}

// record notes that sig occurs at index, keeping the lowest index per
// position. It returns true if the position was already recorded.
func (d *DuplicateDetector) record(sig PositionSignature, index int) bool {
	bucket := d.hashTable[sig.Hash]
	for i := range bucket {
		if d.signaturesMatch(sig, bucket[i].sig) {
			if index < bucket[i].first {
				bucket[i].first = index
			}
			d.duplicateCount++
			return true
		}
	}

	if d.IsFull() {
		return false
	}
	d.hashTable[sig.Hash] = append(bucket, entry{sig: sig, first: index})
	d.size++
	return false
}

// firstIndex returns the lowest index recorded for sig.
func (d *DuplicateDetector) firstIndex(sig PositionSignature) (int, bool) {
	for _, e := range d.hashTable[sig.Hash] {
		if d.signaturesMatch(sig, e.sig) {
			return e.first, true
		}
	}
	return 0, false
}

// signaturesMatch checks if two position signatures match.
func (d *DuplicateDetector) signaturesMatch(a, b PositionSignature) bool {
	if a.Hash != b.Hash || a.WeakHash != b.WeakHash {
		return false
	}
	if d.useExactMatch && (a.Halfmove != b.Halfmove || a.Fullmove != b.Fullmove) {
		return false
	}
	return true
}

// DuplicateCount returns the number of duplicates detected.
func (d *DuplicateDetector) DuplicateCount() int {
	return d.duplicateCount
}

// UniqueCount returns the number of unique positions recorded.
func (d *DuplicateDetector) UniqueCount() int {
	return d.size
}

// IsFull returns true if the detector has reached its capacity limit.
func (d *DuplicateDetector) IsFull() bool {
	return d.maxCapacity > 0 && d.size >= d.maxCapacity
}

// Reset clears the hash table.
func (d *DuplicateDetector) Reset() {
	d.hashTable = make(map[uint64][]entry)
	d.size = 0
	d.duplicateCount = 0
	d.next = 0
}
