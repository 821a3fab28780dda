// Package chain defines types shared between loan-state ingestion components.
package chain

import "fmt"

// BlockRange is a half-open block interval [From, To).
type BlockRange struct {
	From uint64
	To   uint64
}

// NewBlockRange returns the page of size blocks starting at from.
func NewBlockRange(from, size uint64) BlockRange {
	return BlockRange{From: from, To: from + size}
}

// Contains reports whether block lies inside the range.
func (r BlockRange) Contains(block uint64) bool {
	return block >= r.From && block < r.To
}

// Last returns the highest block inside the range.
func (r BlockRange) Last() uint64 {
	if r.To == r.From {
		return r.From
	}
	return r.To - 1
}

func (r BlockRange) String() string {
	return fmt.Sprintf("[%d, %d)", r.From, r.To)
}

// FoldStats summarizes how the records of one batch were folded.
type FoldStats struct {
	Applied int
	Ignored int
	Skipped int
}

// Total returns the number of records seen.
func (s FoldStats) Total() int {
	return s.Applied + s.Ignored + s.Skipped
}
