package search

import "sync/atomic"

// Sequencer orders in-flight queries so that results apply
// last-write-wins: a result may only be accepted if no result from a
// newer query has been accepted already. Out-of-order completions of
// older queries are rejected.
type Sequencer struct {
	issued   atomic.Uint64
	accepted atomic.Uint64
}

// Next reserves the next sequence number for a query about to be issued.
func (s *Sequencer) Next() uint64 {
	return s.issued.Add(1)
}

// Accept reports whether a result for seq may be applied, and records
// it when so. Safe for concurrent use.
func (s *Sequencer) Accept(seq uint64) bool {
	for {
		cur := s.accepted.Load()
		if seq <= cur {
			return false
		}
		if s.accepted.CompareAndSwap(cur, seq) {
			return true
		}
	}
}

// Latest returns the highest issued sequence number.
func (s *Sequencer) Latest() uint64 {
	return s.issued.Load()
}
