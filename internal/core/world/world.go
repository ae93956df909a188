// Package world drives the component framework: it owns the event queue, the
// tile grid and the delivery of events to entities. Everything is
// single-threaded and fully synchronous; delivering an event runs every
// matching handler to completion before control returns.
package world

import (
	"fmt"

	"github.com/gridforge/gridforge/internal/core/facet"
	"github.com/gridforge/gridforge/internal/core/observability/log"
)

var _ facet.Scheduler = (*World)(nil)

// World is the scheduling collaborator handlers reach through events.
type World struct {
	log   log.Log
	grid  *Grid
	queue *Queue

	// playerActions hands player input over to the player's actor component,
	// one action per turn.
	playerActions []facet.Event
}

func New(logger log.Log, grid *Grid) *World {
	if logger == nil {
		logger = log.Nop()
	}
	return &World{
		log:   logger,
		grid:  grid,
		queue: NewQueue(),
	}
}

func (w *World) Grid() *Grid { return w.grid }

// Log exposes the world's logger so handlers can trace their effects.
func (w *World) Log() log.Log { return w.log }

func (w *World) Pending() int { return w.queue.Len() }

// Enqueue appends an event for processing on a later turn. The event must
// know its recipient; unrouted events are dropped with an error log, since
// the scheduler contract has no error return.
func (w *World) Enqueue(ev facet.Event) {
	if target, ok := recipient(ev); ok {
		w.queue.Push(target, ev)
		return
	}
	w.log.Error("dropping unrouted event", log.String("kind", ev.Kind().Name()))
}

// EnqueueImmediate inserts an event for processing before every event that
// was already queued but has not started, once the currently executing
// handler returns.
func (w *World) EnqueueImmediate(ev facet.Event) {
	if target, ok := recipient(ev); ok {
		w.queue.PushImmediate(target, ev)
		return
	}
	w.log.Error("dropping unrouted event", log.String("kind", ev.Kind().Name()))
}

// Deliver fires an event at an entity right now, as a plain nested call. The
// first handler error aborts delivery and propagates; the world never retries.
func (w *World) Deliver(target *facet.Entity, ev facet.Event) error {
	w.log.Debug("deliver",
		log.String("kind", ev.Kind().Name()),
		log.String("type", target.Type().Name()),
		log.Uint64("entity", uint64(target.ID())))
	return target.Handle(ev)
}

// Step processes the next pending event. It reports false when the queue was
// empty.
func (w *World) Step() (bool, error) {
	d, ok := w.queue.Pop()
	if !ok {
		return false, nil
	}
	if err := w.Deliver(d.Target, d.Event); err != nil {
		return true, fmt.Errorf("world: %w", err)
	}
	return true, nil
}

// Drain processes pending events until the queue is empty or a handler fails.
// Handlers may enqueue further events while draining; immediate ones are
// picked up before the rest of the backlog.
func (w *World) Drain() error {
	for {
		processed, err := w.Step()
		if err != nil {
			return err
		}
		if !processed {
			return nil
		}
	}
}

// PushPlayerAction appends a player action for the actor component to pick
// up on its next turn.
func (w *World) PushPlayerAction(ev facet.Event) {
	w.playerActions = append(w.playerActions, ev)
}

// NextPlayerAction pops the oldest pending player action.
func (w *World) NextPlayerAction() (facet.Event, bool) {
	if len(w.playerActions) == 0 {
		return nil, false
	}
	ev := w.playerActions[0]
	w.playerActions = w.playerActions[1:]
	return ev, true
}

func recipient(ev facet.Event) (*facet.Entity, bool) {
	r, ok := ev.(facet.Routed)
	if !ok || r.Recipient() == nil {
		return nil, false
	}
	return r.Recipient(), true
}
