package search

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDebouncer_CoalescesBursts(t *testing.T) {
	d := NewDebouncer(30 * time.Millisecond)
	defer d.Stop()

	var fired atomic.Int32
	for range 5 {
		d.Trigger("sess-1", func() { fired.Add(1) })
		time.Sleep(5 * time.Millisecond)
	}

	assert.Eventually(t, func() bool { return fired.Load() == 1 },
		500*time.Millisecond, 10*time.Millisecond,
		"a burst of triggers fires exactly once")
}

func TestDebouncer_KeysAreIndependent(t *testing.T) {
	d := NewDebouncer(20 * time.Millisecond)
	defer d.Stop()

	var a, b atomic.Int32
	d.Trigger("sess-a", func() { a.Add(1) })
	d.Trigger("sess-b", func() { b.Add(1) })
	// Retriggering a must not delay b.
	d.Trigger("sess-a", func() { a.Add(1) })

	assert.Eventually(t, func() bool { return a.Load() == 1 && b.Load() == 1 },
		500*time.Millisecond, 10*time.Millisecond)
}

func TestDebouncer_Cancel(t *testing.T) {
	d := NewDebouncer(20 * time.Millisecond)
	defer d.Stop()

	var fired atomic.Int32
	d.Trigger("sess-1", func() { fired.Add(1) })
	d.Cancel("sess-1")

	time.Sleep(60 * time.Millisecond)
	assert.Zero(t, fired.Load(), "canceled action must not fire")
}

func TestDebouncer_DefaultDelay(t *testing.T) {
	d := NewDebouncer(0)
	defer d.Stop()
	require.Equal(t, 400*time.Millisecond, d.Delay())
}

func TestSequencer_LastWriteWins(t *testing.T) {
	var s Sequencer

	first := s.Next()
	second := s.Next()

	// Newer result lands first; the stale one must be rejected.
	assert.True(t, s.Accept(second))
	assert.False(t, s.Accept(first))
}

func TestSequencer_InOrderResultsBothApply(t *testing.T) {
	var s Sequencer

	first := s.Next()
	second := s.Next()

	assert.True(t, s.Accept(first))
	assert.True(t, s.Accept(second))
}

func TestSequencer_DuplicateRejected(t *testing.T) {
	var s Sequencer
	seq := s.Next()
	assert.True(t, s.Accept(seq))
	assert.False(t, s.Accept(seq))
}

func TestSequencer_ConcurrentAcceptOnlyOneWinnerPerSeq(t *testing.T) {
	var s Sequencer
	seqs := make([]uint64, 50)
	for i := range seqs {
		seqs[i] = s.Next()
	}

	var accepted atomic.Int32
	var wg sync.WaitGroup
	for _, seq := range seqs {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if s.Accept(seq) {
				accepted.Add(1)
			}
		}()
	}
	wg.Wait()

	// At least the highest sequence is accepted; accepted sequence
	// numbers are strictly increasing so no stale overwrite occurred.
	assert.GreaterOrEqual(t, accepted.Load(), int32(1))
	assert.False(t, s.Accept(seqs[len(seqs)-1]), "highest seq already consumed")
}
