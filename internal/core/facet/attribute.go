package facet

import "fmt"

// Attribute is the typed descriptor of one stored attribute. It mediates all
// access to the backing slot in an entity's storage: writes store the raw
// value, reads apply the modifier chain contributed by related entities.
type Attribute[T any] struct {
	id    AttrID
	name  string
	iface *Interface
}

func (a *Attribute[T]) ID() AttrID { return a.id }

func (a *Attribute[T]) Name() string { return a.name }

func (a *Attribute[T]) Interface() *Interface { return a.iface }

// Set writes the raw value directly into the entity's storage. No
// interception happens on the write path.
func (a *Attribute[T]) Set(e *Entity, value T) {
	e.attrs[a.id] = value
}

// Get reads the attribute with the default relation-traversal modifier chain.
func (a *Attribute[T]) Get(e *Entity) T {
	return a.GetWith(e, RelationModifiers)
}

// Raw reads the stored value with no modifiers applied.
func (a *Attribute[T]) Raw(e *Entity) T {
	return a.GetWith(e, nil)
}

// GetWith reads the attribute applying an explicit modifier resolution
// strategy. A nil resolver returns the raw stored value. Reading an attribute
// that was never initialized is a contract violation and panics.
func (a *Attribute[T]) GetWith(e *Entity, resolve ModifierResolver) T {
	raw, ok := e.attrs[a.id]
	if !ok {
		panic(fmt.Sprintf("facet: attribute %s.%s read before initialization on entity %d",
			a.iface.name, a.name, e.id))
	}
	if resolve != nil {
		raw = resolve(e, a.id, raw)
	}
	return raw.(T)
}

// ModifierResolver adjusts a raw attribute value on read. It is injectable so
// the ambient chain can be swapped out or disabled in tests.
type ModifierResolver func(e *Entity, attr AttrID, value any) any

// RelationModifiers is the default resolver: the value is passed through the
// modifiers of every entity related to e, in deterministic order (relation
// kinds in the order they first appeared on e, relations in creation order,
// modifiers in the related type's list order).
//
// Direction convention: modifiers flow from the object of a relation onto the
// subject. A Wears(player, armor) relation applies the armor type's modifiers
// to reads on the player; reads on the armor itself are untouched.
func RelationModifiers(e *Entity, attr AttrID, value any) any {
	for _, kind := range e.relKinds {
		for _, rel := range e.relations[kind] {
			if rel.object == e {
				continue
			}
			for _, mod := range rel.object.typ.modifiers {
				value = mod.Modify(attr, value)
			}
		}
	}
	return value
}
