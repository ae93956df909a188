package sequence

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func drain[T any](pq *PriorityQueue[T]) []T {
	var out []T
	for {
		v, ok := pq.Dequeue()
		if !ok {
			return out
		}
		out = append(out, v)
	}
}

func TestPriorityQueueOrder(t *testing.T) {
	pq := NewPriorityQueue[string]()
	pq.Enqueue("low", 1)
	pq.Enqueue("high", 10)
	pq.Enqueue("mid", 5)

	require.Equal(t, []string{"high", "mid", "low"}, drain(pq))
	require.True(t, pq.IsEmpty())
}

func TestPriorityQueueStableWithinPriority(t *testing.T) {
	pq := NewPriorityQueue[int]()
	for i := 0; i < 64; i++ {
		pq.Enqueue(i, i%2)
	}

	got := drain(pq)
	require.Len(t, got, 64)
	// Odd values share the higher priority and keep insertion order, then
	// the even values follow, also in insertion order.
	for i := 0; i < 32; i++ {
		require.Equal(t, 2*i+1, got[i])
		require.Equal(t, 2*i, got[32+i])
	}
}

func TestPriorityQueueInterleavedEnqueueDequeue(t *testing.T) {
	pq := NewPriorityQueue[string]()
	pq.Enqueue("a", 0)
	pq.Enqueue("b", 0)

	v, ok := pq.Dequeue()
	require.True(t, ok)
	require.Equal(t, "a", v)

	pq.Enqueue("c", 0)
	pq.Enqueue("d", 1)
	require.Equal(t, []string{"d", "b", "c"}, drain(pq))
}

func TestPriorityQueueUpdate(t *testing.T) {
	pq := NewPriorityQueue[string]()
	item := pq.Enqueue("slow", 0)
	pq.Enqueue("steady", 5)

	pq.Update(item, "fast", 9)
	v, ok := pq.Peek()
	require.True(t, ok)
	require.Equal(t, "fast", v)
	require.Equal(t, []string{"fast", "steady"}, drain(pq))
}
