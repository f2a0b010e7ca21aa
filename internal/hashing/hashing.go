// Package hashing provides position keys and duplicate-position detection.
package hashing

import (
	"github.com/cespare/xxhash"

	"github.com/lgbarn/checkers-go/internal/checkers"
)

// Key returns a 64-bit hash of the board and the side to move. Boards with
// the same pieces on the same squares hash equal regardless of history.
func Key(board *checkers.Board, toMove checkers.Colour) uint64 {
	var buf [checkers.NumSquares + 1]byte
	squares := board.Key()
	copy(buf[:], squares[:])
	buf[checkers.NumSquares] = byte(toMove)
	return xxhash.Sum64(buf[:])
}

// DuplicateDetector tracks seen positions.
type DuplicateDetector struct {
	// seen maps position keys to the number of times each was offered
	seen map[uint64]int
	// maxCapacity limits stored keys; 0 means unlimited
	maxCapacity int
	// duplicateCount tracks repeat sightings
	duplicateCount int
}

// NewDuplicateDetector creates a detector. maxCapacity of 0 means unlimited
// capacity. Once full, new positions are no longer recorded but repeats of
// recorded ones are still counted.
func NewDuplicateDetector(maxCapacity int) *DuplicateDetector {
	if maxCapacity < 0 {
		maxCapacity = 0
	}
	return &DuplicateDetector{
		seen:        make(map[uint64]int),
		maxCapacity: maxCapacity,
	}
}

// CheckAndAdd records the position and returns true if it was seen before.
func (d *DuplicateDetector) CheckAndAdd(board *checkers.Board, toMove checkers.Colour) bool {
	if board == nil {
		return false
	}
	return d.CheckAndAddKey(Key(board, toMove))
}

// CheckAndAddKey is CheckAndAdd for a precomputed key.
func (d *DuplicateDetector) CheckAndAddKey(key uint64) bool {
	if _, ok := d.seen[key]; ok {
		d.seen[key]++
		d.duplicateCount++
		return true
	}
	if d.IsFull() {
		return false
	}
	d.seen[key] = 1
	return false
}

// DuplicateCount returns the number of repeat sightings.
func (d *DuplicateDetector) DuplicateCount() int {
	return d.duplicateCount
}

// UniqueCount returns the number of distinct positions recorded.
func (d *DuplicateDetector) UniqueCount() int {
	return len(d.seen)
}

// IsFull returns true if the detector has reached its capacity limit.
func (d *DuplicateDetector) IsFull() bool {
	return d.maxCapacity > 0 && len(d.seen) >= d.maxCapacity
}

// Reset clears all recorded positions.
func (d *DuplicateDetector) Reset() {
	d.seen = make(map[uint64]int)
	d.duplicateCount = 0
}
