package facet

import "github.com/google/uuid"

// RelationKind names a class of directed edges between entities, e.g. Wears.
type RelationKind struct {
	name string
}

func NewRelationKind(name string) *RelationKind {
	return &RelationKind{name: name}
}

func (k *RelationKind) Name() string { return k.name }

func (k *RelationKind) String() string { return k.name }

// Modifier adjusts an attribute value on read. Implementations must be pure:
// same inputs, same output, no side effects.
type Modifier interface {
	Modify(attr AttrID, value any) any
}

// ModifierFunc adapts a function to the Modifier interface.
type ModifierFunc func(attr AttrID, value any) any

func (f ModifierFunc) Modify(attr AttrID, value any) any { return f(attr, value) }

// Relation is a directed, typed edge between two entities. It is a shared
// fact registered in both endpoints' relation tables; neither entity owns it.
// Destroying an entity does not cascade to its relations: component logic
// that created a relation is responsible for destroying it.
type Relation struct {
	id        uuid.UUID
	kind      *RelationKind
	subject   *Entity
	object    *Entity
	destroyed bool
}

// Relate creates a relation and registers it with both endpoints.
func Relate(kind *RelationKind, subject, object *Entity) *Relation {
	r := &Relation{
		id:      uuid.New(),
		kind:    kind,
		subject: subject,
		object:  object,
	}
	subject.addRelation(r)
	if object != subject {
		object.addRelation(r)
	}
	return r
}

func (r *Relation) ID() uuid.UUID { return r.id }

func (r *Relation) Kind() *RelationKind { return r.kind }

func (r *Relation) Subject() *Entity { return r.subject }

func (r *Relation) Object() *Entity { return r.object }

func (r *Relation) Destroyed() bool { return r.destroyed }

// Destroy removes the edge from both endpoints. Safe to call more than once.
func (r *Relation) Destroy() {
	if r.destroyed {
		return
	}
	r.destroyed = true
	r.subject.removeRelation(r)
	r.object.removeRelation(r)
}
