package facet

import (
	"errors"
	"fmt"
)

// HandlerFunc is one event handler of a component implementation. Errors
// abort dispatch for the current event and entity; the framework never
// retries or suppresses them.
type HandlerFunc func(inst *Instance, ev Event) error

// HandlerDecl binds a handler to one or more event kinds. The position of the
// declaration inside Definition.Handlers fixes the invocation order among
// handlers registered for the same kind.
type HandlerDecl struct {
	Kinds []*Kind
	Func  HandlerFunc
}

// On declares a handler for the given event kinds.
func On(fn HandlerFunc, kinds ...*Kind) HandlerDecl {
	return HandlerDecl{Kinds: kinds, Func: fn}
}

// Provider computes the value of a computed attribute for a bound instance.
type Provider func(inst *Instance) any

// Definition describes a component implementation before it is built. Define
// validates it and compiles the immutable handler registry.
type Definition struct {
	// Name identifies the implementation in errors and logs.
	Name string
	// Interface is the single capability contract this implementation
	// fulfills. Inherited from Extends when nil.
	Interface *Interface
	// Extends reuses another implementation's interface and constructor.
	// Handlers are not inherited; a derived implementation declares its own.
	Extends *Implementation
	// Init is the constructor run once per entity when a factory is applied.
	// Args are the captured factory arguments; validate them here, not at
	// capture time. Inherited from Extends when nil.
	Init func(inst *Instance, args Args) error
	// Handlers in declaration order.
	Handlers []HandlerDecl
	// Computed maps each computed attribute declared by the interface to its
	// read path.
	Computed map[string]Provider
}

// Implementation is a compiled component implementation: constructor, handler
// registry and computed-attribute providers. Immutable after Define.
type Implementation struct {
	name     string
	iface    *Interface
	init     func(inst *Instance, args Args) error
	registry map[*Kind][]HandlerFunc
	computed map[string]Provider
}

// Define builds an implementation from its definition. All configuration
// errors surface here, when the implementation is defined, never later at
// use: a missing interface, a provider shadowing a stored attribute, or a
// computed attribute left without a provider.
func Define(def Definition) (*Implementation, error) {
	name := def.Name
	if name == "" {
		return nil, errors.New("facet: implementation must be named")
	}

	iface := def.Interface
	init := def.Init
	if def.Extends != nil {
		if iface == nil {
			iface = def.Extends.iface
		}
		if init == nil {
			init = def.Extends.init
		}
	}
	if iface == nil {
		return nil, fmt.Errorf("facet: implementation %q declares no interface", name)
	}

	for attr := range def.Computed {
		decl, declared := iface.lookup(attr)
		if !declared {
			return nil, fmt.Errorf("facet: implementation %q provides %q, not declared by interface %q",
				name, attr, iface.name)
		}
		if decl.Mode == ModeStored {
			return nil, fmt.Errorf("facet: implementation %q redeclares stored attribute %q of interface %q",
				name, attr, iface.name)
		}
	}
	for _, decl := range iface.decls {
		if decl.Mode != ModeComputed {
			continue
		}
		if _, ok := def.Computed[decl.Name]; !ok {
			return nil, fmt.Errorf("facet: implementation %q misses provider for computed attribute %q",
				name, decl.Name)
		}
	}

	registry := make(map[*Kind][]HandlerFunc)
	for _, h := range def.Handlers {
		if h.Func == nil {
			return nil, fmt.Errorf("facet: implementation %q declares a nil handler", name)
		}
		if len(h.Kinds) == 0 {
			return nil, fmt.Errorf("facet: implementation %q declares a handler bound to no kind", name)
		}
		for _, k := range h.Kinds {
			registry[k] = append(registry[k], h.Func)
		}
	}

	iface.freeze()
	return &Implementation{
		name:     name,
		iface:    iface,
		init:     init,
		registry: registry,
		computed: def.Computed,
	}, nil
}

// MustDefine is Define for package-init registration, where a configuration
// error must stop the program before the implementation becomes usable.
func MustDefine(def Definition) *Implementation {
	impl, err := Define(def)
	if err != nil {
		panic(err)
	}
	return impl
}

func (m *Implementation) Name() string { return m.name }

func (m *Implementation) Interface() *Interface { return m.iface }

// Configure captures constructor arguments into a factory. Pure data capture:
// nothing is validated and no entity is touched until the factory is applied.
func (m *Implementation) Configure(args Args) *Factory {
	return &Factory{impl: m, args: args}
}

// Adapt binds a view of the implementation to an entity without running the
// constructor.
func (m *Implementation) Adapt(e *Entity) *Instance {
	return &Instance{impl: m, entity: e}
}

// HandlerCount returns the number of handlers registered for exactly the
// given kind, ancestors excluded.
func (m *Implementation) HandlerCount(k *Kind) int {
	return len(m.registry[k])
}

func (m *Implementation) dispatch(inst *Instance, ev Event) error {
	for _, kind := range ev.Kind().Lineage() {
		for _, h := range m.registry[kind] {
			if err := h(inst, ev); err != nil {
				return fmt.Errorf("%s handling %s: %w", m.name, ev.Kind(), err)
			}
		}
	}
	return nil
}

func (m *Implementation) String() string { return m.name }
