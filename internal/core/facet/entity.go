package facet

import (
	"fmt"
	"sync/atomic"
)

// EntityID is a unique identifier for entities.
type EntityID uint64

var entityIDSource atomic.Uint64

// Entity is a composite game object: attribute storage keyed by descriptor
// token, a relation table keyed by relation kind, and a reference to its
// type. All behavior lives in the components the type installs; the entity
// itself is only the data substrate they share.
type Entity struct {
	id        EntityID
	typ       *Type
	attrs     map[AttrID]any
	relKinds  []*RelationKind
	relations map[*RelationKind][]*Relation
	installed map[*Interface]struct{}
}

func (e *Entity) ID() EntityID { return e.id }

func (e *Entity) Type() *Type { return e.typ }

// Component adapts the entity through the implementation its type installs
// for the given interface. This is the usual way to reach another entity's
// capabilities from handler code.
func (e *Entity) Component(i *Interface) (*Instance, error) {
	f, ok := e.typ.byIface[i]
	if !ok {
		return nil, fmt.Errorf("facet: type %q has no component for interface %q", e.typ.name, i.name)
	}
	return f.Adapt(e), nil
}

// MustComponent is Component for callers that know the type installs the
// interface.
func (e *Entity) MustComponent(i *Interface) *Instance {
	inst, err := e.Component(i)
	if err != nil {
		panic(err)
	}
	return inst
}

// Handle delivers an event to every component of the entity, in the type's
// factory declaration order. The first handler error aborts delivery and
// propagates.
func (e *Entity) Handle(ev Event) error {
	for _, f := range e.typ.factories {
		if err := f.Adapt(e).HandleEvent(ev); err != nil {
			return err
		}
	}
	return nil
}

// Relations returns the entity's relations of the given kind, in creation
// order. The returned slice is shared; callers that destroy relations while
// iterating should copy it first.
func (e *Entity) Relations(kind *RelationKind) []*Relation {
	return e.relations[kind]
}

func (e *Entity) addRelation(r *Relation) {
	if _, seen := e.relations[r.kind]; !seen {
		e.relKinds = append(e.relKinds, r.kind)
	}
	e.relations[r.kind] = append(e.relations[r.kind], r)
}

func (e *Entity) removeRelation(r *Relation) {
	rels := e.relations[r.kind]
	for i, cur := range rels {
		if cur == r {
			e.relations[r.kind] = append(rels[:i:i], rels[i+1:]...)
			return
		}
	}
}

func (e *Entity) markInstalled(i *Interface) error {
	if _, dup := e.installed[i]; dup {
		return fmt.Errorf("facet: interface %q initialized twice on entity %d", i.name, e.id)
	}
	e.installed[i] = struct{}{}
	return nil
}

// Type bundles the component configuration shared by all entities of one
// kind: exactly one factory per capability interface, plus an ordered list of
// modifiers the type contributes to entities related to its instances.
type Type struct {
	name      string
	factories []*Factory
	byIface   map[*Interface]*Factory
	modifiers []Modifier
}

// NewType creates an entity type from one factory per interface. Two
// factories for the same interface are a configuration error.
func NewType(name string, factories ...*Factory) (*Type, error) {
	t := &Type{
		name:      name,
		factories: factories,
		byIface:   make(map[*Interface]*Factory, len(factories)),
	}
	for _, f := range factories {
		i := f.impl.iface
		if _, dup := t.byIface[i]; dup {
			return nil, fmt.Errorf("facet: type %q installs interface %q twice", name, i.name)
		}
		t.byIface[i] = f
	}
	return t, nil
}

// MustNewType is NewType for static type tables.
func MustNewType(name string, factories ...*Factory) *Type {
	t, err := NewType(name, factories...)
	if err != nil {
		panic(err)
	}
	return t
}

func (t *Type) Name() string { return t.name }

// WithModifiers appends modifiers to the type's ordered list and returns the
// type for chaining in static tables.
func (t *Type) WithModifiers(mods ...Modifier) *Type {
	t.modifiers = append(t.modifiers, mods...)
	return t
}

func (t *Type) Modifiers() []Modifier { return t.modifiers }

// Factory returns the type's factory for the given interface.
func (t *Type) Factory(i *Interface) (*Factory, bool) {
	f, ok := t.byIface[i]
	return f, ok
}

// Implements reports whether the type installs a component for the interface.
func (t *Type) Implements(i *Interface) bool {
	_, ok := t.byIface[i]
	return ok
}

// New creates an entity of this type and runs every factory's constructor
// against it, in declaration order. This is the single place where deferred
// component configuration is applied to storage.
func (t *Type) New() (*Entity, error) {
	e := &Entity{
		id:        EntityID(entityIDSource.Add(1)),
		typ:       t,
		attrs:     make(map[AttrID]any),
		relations: make(map[*RelationKind][]*Relation),
		installed: make(map[*Interface]struct{}),
	}
	for _, f := range t.factories {
		if err := f.InitEntity(e); err != nil {
			return nil, fmt.Errorf("facet: creating %q entity: %w", t.name, err)
		}
	}
	return e, nil
}

// MustNew is New for fixed content known to be well-configured.
func (t *Type) MustNew() *Entity {
	e, err := t.New()
	if err != nil {
		panic(err)
	}
	return e
}

func (t *Type) String() string { return t.name }
