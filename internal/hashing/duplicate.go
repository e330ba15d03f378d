package hashing

import (
	"sync"

	"github.com/lgbarn/fenmove-go/internal/chess"
)

// DuplicateDetector records the positions it has seen and reports repeats.
// It is safe for concurrent use by the workers of a pool.
type DuplicateDetector struct {
	mu             sync.RWMutex
	seen           map[uint64]int
	duplicateCount int
}

// NewDuplicateDetector creates an empty detector.
func NewDuplicateDetector() *DuplicateDetector {
	return &DuplicateDetector{seen: make(map[uint64]int)}
}

// CheckAndAdd records the position and reports whether it had been seen
// before. first is the index passed with the earliest sighting.
func (d *DuplicateDetector) CheckAndAdd(board *chess.Board, index int) (first int, duplicate bool) {
	if board == nil {
		return index, false
	}
	hash := Zobrist(board)

	d.mu.Lock()
	defer d.mu.Unlock()
	if prev, ok := d.seen[hash]; ok {
		d.duplicateCount++
		return prev, true
	}
	d.seen[hash] = index
	return index, false
}

// DuplicateCount returns the number of repeats detected.
func (d *DuplicateDetector) DuplicateCount() int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.duplicateCount
}

// UniqueCount returns the number of distinct positions seen.
func (d *DuplicateDetector) UniqueCount() int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return len(d.seen)
}

// Reset forgets every position.
func (d *DuplicateDetector) Reset() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.seen = make(map[uint64]int)
	d.duplicateCount = 0
}
