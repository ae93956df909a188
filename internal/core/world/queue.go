package world

import (
	"github.com/gridforge/gridforge/internal/core/facet"
	"github.com/gridforge/gridforge/pkg/generic"
	"github.com/gridforge/gridforge/pkg/sequence"
)

// Queue lane priorities. Immediate events drain before any queued event that
// has not started yet; within a lane, events drain in enqueue order.
const (
	laneQueued    = 0
	laneImmediate = 1
)

// Delivery is one pending event together with the entity it is addressed to.
type Delivery struct {
	Target *facet.Entity
	Event  facet.Event
}

// Queue is the two-lane event queue backing the scheduler contract. Not safe
// for concurrent use; the simulation is single-threaded.
type Queue struct {
	pq   *sequence.PriorityQueue[*Delivery]
	pool *generic.Pool[*Delivery]
}

func NewQueue() *Queue {
	return &Queue{
		pq:   sequence.NewPriorityQueue[*Delivery](),
		pool: generic.NewPool(func() *Delivery { return new(Delivery) }),
	}
}

// Push appends a delivery to the ordinary lane, processed on a later turn.
func (q *Queue) Push(target *facet.Entity, ev facet.Event) {
	q.push(target, ev, laneQueued)
}

// PushImmediate inserts a delivery ahead of every queued-but-unstarted one.
func (q *Queue) PushImmediate(target *facet.Entity, ev facet.Event) {
	q.push(target, ev, laneImmediate)
}

func (q *Queue) push(target *facet.Entity, ev facet.Event, lane int) {
	d := q.pool.Get()
	d.Target = target
	d.Event = ev
	q.pq.Enqueue(d, lane)
}

// Pop removes and returns the next delivery.
func (q *Queue) Pop() (Delivery, bool) {
	d, ok := q.pq.Dequeue()
	if !ok {
		return Delivery{}, false
	}
	out := *d
	*d = Delivery{}
	q.pool.Put(d)
	return out, true
}

func (q *Queue) Len() int { return q.pq.Len() }

func (q *Queue) IsEmpty() bool { return q.pq.IsEmpty() }
