package hashing

import (
	"sync"

	"github.com/lgbarn/checkers-go/internal/checkers"
)

// ThreadSafeDuplicateDetector wraps DuplicateDetector with mutex protection for concurrent access.
type ThreadSafeDuplicateDetector struct {
	detector *DuplicateDetector
	mu       sync.RWMutex
}

// NewThreadSafeDuplicateDetector creates a new thread-safe detector.
// maxCapacity of 0 means unlimited capacity.
func NewThreadSafeDuplicateDetector(maxCapacity int) *ThreadSafeDuplicateDetector {
	return &ThreadSafeDuplicateDetector{
		detector: NewDuplicateDetector(maxCapacity),
	}
}

// CheckAndAdd atomically checks whether a position was seen and records it.
func (d *ThreadSafeDuplicateDetector) CheckAndAdd(board *checkers.Board, toMove checkers.Colour) bool {
	if board == nil {
		return false
	}
	return d.CheckAndAddKey(Key(board, toMove))
}

// CheckAndAddKey is CheckAndAdd for a precomputed key.
func (d *ThreadSafeDuplicateDetector) CheckAndAddKey(key uint64) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.detector.CheckAndAddKey(key)
}

// DuplicateCount returns the number of repeat sightings.
func (d *ThreadSafeDuplicateDetector) DuplicateCount() int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.detector.DuplicateCount()
}

// UniqueCount returns the number of distinct positions recorded.
func (d *ThreadSafeDuplicateDetector) UniqueCount() int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.detector.UniqueCount()
}

// LoadFromDetector copies entries from an existing detector. Call before concurrent use.
func (d *ThreadSafeDuplicateDetector) LoadFromDetector(other *DuplicateDetector) {
	d.mu.Lock()
	defer d.mu.Unlock()
	for key, n := range other.seen {
		d.detector.seen[key] += n
	}
}

// IsFull returns true if the detector has reached its capacity limit.
// Always returns false for unlimited capacity (maxCapacity = 0).
func (d *ThreadSafeDuplicateDetector) IsFull() bool {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.detector.IsFull()
}
