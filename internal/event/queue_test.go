package event

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNextSeqStrictlyIncreasing(t *testing.T) {
	prev := NextSeq()
	for i := 0; i < 100; i++ {
		next := NextSeq()
		require.Greater(t, next, prev)
		prev = next
	}
}

func TestQueueFIFO(t *testing.T) {
	q := NewQueue(8)
	for i := 0; i < 5; i++ {
		q.Push(Event{Kind: KindKey, Seq: NextSeq(), Key: "a", Pressed: i%2 == 0})
	}

	drained := q.Drain()
	require.Len(t, drained, 5)
	for i := 1; i < len(drained); i++ {
		assert.Greater(t, drained[i].Seq, drained[i-1].Seq, "arrival order broken at %d", i)
	}
	assert.Equal(t, 0, q.Len())
	assert.Nil(t, q.Drain(), "second drain should be empty")
}

func TestQueueEvictsOldestDiscardable(t *testing.T) {
	q := NewQueue(4)
	moves := make([]uint64, 5)
	for i := range moves {
		seq := NextSeq()
		moves[i] = seq
		q.Push(Event{Kind: KindPointerMove, Seq: seq})
	}

	drained := q.Drain()
	require.Len(t, drained, 4)
	// The oldest move was shed; the newest four remain in order.
	for i, e := range drained {
		assert.Equal(t, moves[i+1], e.Seq)
	}
}

func TestQueueNeverSplitsKeyPair(t *testing.T) {
	q := NewQueue(2)
	down := NextSeq()
	q.Push(Event{Kind: KindKey, Seq: down, Key: "a", Pressed: true})
	q.Push(Event{Kind: KindPointerMove, Seq: NextSeq()})
	up := NextSeq()
	q.Push(Event{Kind: KindKey, Seq: up, Key: "a", Pressed: false})

	drained := q.Drain()
	require.Len(t, drained, 2)
	assert.Equal(t, down, drained[0].Seq)
	assert.True(t, drained[0].Pressed)
	assert.Equal(t, up, drained[1].Seq)
	assert.False(t, drained[1].Pressed)
}

func TestQueueFullOfProtectedEvents(t *testing.T) {
	q := NewQueue(2)
	downA := NextSeq()
	q.Push(Event{Kind: KindKey, Seq: downA, Key: "a", Pressed: true})
	downB := NextSeq()
	q.Push(Event{Kind: KindKey, Seq: downB, Key: "b", Pressed: true})

	// Incoming motion has nothing to displace and is dropped.
	q.Push(Event{Kind: KindPointerMove, Seq: NextSeq()})
	assert.Equal(t, 2, q.Len())

	// An incoming protected event evicts the oldest; memory stays bounded.
	upA := NextSeq()
	q.Push(Event{Kind: KindKey, Seq: upA, Key: "a", Pressed: false})
	drained := q.Drain()
	require.Len(t, drained, 2)
	assert.Equal(t, downB, drained[0].Seq)
	assert.Equal(t, upA, drained[1].Seq)
}

func TestQueueClipboardResultProtected(t *testing.T) {
	q := NewQueue(1)
	q.Push(Event{Kind: KindClipboardResult, Seq: NextSeq(), Request: 7, Outcome: OutcomeOK})
	q.Push(Event{Kind: KindScroll, Seq: NextSeq(), DY: -3})

	drained := q.Drain()
	require.Len(t, drained, 1)
	assert.Equal(t, KindClipboardResult, drained[0].Kind)
	assert.Equal(t, uint64(7), drained[0].Request)
}

func TestDiscardable(t *testing.T) {
	assert.True(t, Event{Kind: KindPointerMove}.Discardable())
	assert.True(t, Event{Kind: KindScroll}.Discardable())
	assert.False(t, Event{Kind: KindKey}.Discardable())
	assert.False(t, Event{Kind: KindPointerButton}.Discardable())
	assert.False(t, Event{Kind: KindClipboardResult}.Discardable())
	assert.False(t, Event{Kind: KindResize}.Discardable())
}
