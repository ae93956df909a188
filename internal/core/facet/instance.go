package facet

import "fmt"

// Instance is a transient view of one implementation bound to one entity.
// Instances are created fresh for each use, hold no state beyond the two
// references, and must not outlive the call that created them.
type Instance struct {
	impl   *Implementation
	entity *Entity
}

func (in *Instance) Entity() *Entity { return in.entity }

func (in *Instance) Implementation() *Implementation { return in.impl }

func (in *Instance) Interface() *Interface { return in.impl.iface }

// HandleEvent dispatches the event through the implementation's handler
// registry: every kind in the event's lineage, most specific first, and
// within a kind every handler in declaration order. A handler error aborts
// the remaining handlers and propagates to the caller.
func (in *Instance) HandleEvent(ev Event) error {
	return in.impl.dispatch(in, ev)
}

// Computed evaluates a computed attribute declared by the interface.
func (in *Instance) Computed(name string) (any, error) {
	p, ok := in.impl.computed[name]
	if !ok {
		return nil, fmt.Errorf("facet: %s has no computed attribute %q", in.impl.name, name)
	}
	return p(in), nil
}
