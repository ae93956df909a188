package facet

import "fmt"

// Args carries constructor arguments from a factory capture to the
// implementation's Init. Validation is deliberately lazy: Configure accepts
// anything, Init rejects what it cannot use.
type Args map[string]any

// Arg fetches a typed argument. Missing keys and wrong types are reported as
// errors so constructors can fail cleanly when a factory was misconfigured.
func Arg[T any](args Args, key string) (T, error) {
	var zero T
	raw, ok := args[key]
	if !ok {
		return zero, fmt.Errorf("facet: missing argument %q", key)
	}
	v, ok := raw.(T)
	if !ok {
		return zero, fmt.Errorf("facet: argument %q is %T, want %T", key, raw, zero)
	}
	return v, nil
}

// ArgOr fetches a typed argument, falling back to a default when absent.
func ArgOr[T any](args Args, key string, fallback T) (T, error) {
	if _, ok := args[key]; !ok {
		return fallback, nil
	}
	return Arg[T](args, key)
}

// Factory is a deferred component construction: an implementation plus
// captured constructor arguments, not yet bound to any entity. One factory
// initializes arbitrarily many entities.
type Factory struct {
	impl *Implementation
	args Args
}

func (f *Factory) Implementation() *Implementation { return f.impl }

func (f *Factory) Interface() *Interface { return f.impl.iface }

// InitEntity binds a fresh instance to the entity and runs the constructor,
// populating the entity's storage through the interface's descriptors. Runs
// exactly once per entity and interface; a second application is rejected.
func (f *Factory) InitEntity(e *Entity) error {
	if err := e.markInstalled(f.impl.iface); err != nil {
		return err
	}
	if f.impl.init == nil {
		return nil
	}
	if err := f.impl.init(f.impl.Adapt(e), f.args); err != nil {
		return fmt.Errorf("facet: init %s on entity %d: %w", f.impl.name, e.id, err)
	}
	return nil
}

// Adapt produces a bound view without running the constructor, for entities
// that are already initialized.
func (f *Factory) Adapt(e *Entity) *Instance {
	return f.impl.Adapt(e)
}
