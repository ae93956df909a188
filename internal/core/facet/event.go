package facet

// Event is an occurrence delivered to the components of an entity. Concrete
// events carry their own payload (actor, target, amounts); the framework only
// needs the kind for routing. Handlers communicate outcomes back to the
// dispatcher by mutating the event, typically through Base.
type Event interface {
	Kind() *Kind
}

// Routed is implemented by events that know which entity they are addressed
// to. A scheduler uses it to route queued events without inspecting payloads.
type Routed interface {
	Event
	Recipient() *Entity
}

// Scheduler is the contract the framework requires from the driving world
// loop: handlers ask it to enqueue follow-on events. Immediate events must be
// processed before events that were already queued but not yet started.
type Scheduler interface {
	Enqueue(Event)
	EnqueueImmediate(Event)
}

// Base supplies the mutation points handlers use to report outcomes. Embed it
// by value in concrete event structs and deliver the events by pointer.
type Base struct {
	kind      *Kind
	cancelled bool
	succeeded bool
}

// NewBase creates the embeddable core of a concrete event.
func NewBase(kind *Kind) Base { return Base{kind: kind} }

func (b *Base) Kind() *Kind { return b.kind }

// Cancel marks the event as cancelled. The framework itself never inspects
// the flag; it is a channel between handlers and the dispatching code.
func (b *Base) Cancel() { b.cancelled = true }

func (b *Base) Cancelled() bool { return b.cancelled }

// Succeed marks the event as having taken effect.
func (b *Base) Succeed() { b.succeeded = true }

func (b *Base) Succeeded() bool { return b.succeeded }
