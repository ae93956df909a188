// Package events defines the event catalog of the game layer: the kind
// hierarchy and the concrete event payloads fired between entities. Events
// carry the world so handlers can reach the grid and the scheduler.
package events

import (
	"github.com/gridforge/gridforge/internal/core/facet"
	"github.com/gridforge/gridforge/internal/core/world"
)

// Kind hierarchy. Handlers bound to KindAction run for every action event,
// after handlers bound to the specific kind.
var (
	KindEvent  = facet.NewKind("event", nil)
	KindAction = facet.NewKind("action", KindEvent)

	KindWalk    = facet.NewKind("walk", KindAction)
	KindAscend  = facet.NewKind("ascend", KindAction)
	KindDescend = facet.NewKind("descend", KindAction)
	KindPickUp  = facet.NewKind("pick-up", KindAction)
	KindEquip   = facet.NewKind("equip", KindAction)
	KindUnequip = facet.NewKind("unequip", KindAction)
	KindMelee   = facet.NewKind("melee-attack", KindAction)

	KindDamage = facet.NewKind("damage", KindEvent)
	KindDie    = facet.NewKind("die", KindEvent)
)

// Walk is an attempt by Actor to step onto the tile occupied by Target.
// Physics components on the target decide: solid ones cancel, passable ones
// move the actor.
type Walk struct {
	facet.Base
	World  *world.World
	Actor  *facet.Entity
	Target *facet.Entity
}

func NewWalk(w *world.World, actor, target *facet.Entity) *Walk {
	return &Walk{Base: facet.NewBase(KindWalk), World: w, Actor: actor, Target: target}
}

func (e *Walk) Recipient() *facet.Entity { return e.Target }

// Ascend fires at an upward portal the actor stands on.
type Ascend struct {
	facet.Base
	World  *world.World
	Actor  *facet.Entity
	Target *facet.Entity
	// Destination is filled by the portal handler for the driver to act on.
	Destination string
}

func NewAscend(w *world.World, actor, target *facet.Entity) *Ascend {
	return &Ascend{Base: facet.NewBase(KindAscend), World: w, Actor: actor, Target: target}
}

func (e *Ascend) Recipient() *facet.Entity { return e.Target }

// Descend fires at a downward portal the actor stands on.
type Descend struct {
	facet.Base
	World       *world.World
	Actor       *facet.Entity
	Target      *facet.Entity
	Destination string
}

func NewDescend(w *world.World, actor, target *facet.Entity) *Descend {
	return &Descend{Base: facet.NewBase(KindDescend), World: w, Actor: actor, Target: target}
}

func (e *Descend) Recipient() *facet.Entity { return e.Target }

// PickUp moves a portable item off the grid into the actor's inventory.
type PickUp struct {
	facet.Base
	World *world.World
	Actor *facet.Entity
	Item  *facet.Entity
}

func NewPickUp(w *world.World, actor, item *facet.Entity) *PickUp {
	return &PickUp{Base: facet.NewBase(KindPickUp), World: w, Actor: actor, Item: item}
}

func (e *PickUp) Recipient() *facet.Entity { return e.Item }

// Equip asks the target piece of equipment to attach itself to the actor.
type Equip struct {
	facet.Base
	World  *world.World
	Actor  *facet.Entity
	Target *facet.Entity
}

func NewEquip(w *world.World, actor, target *facet.Entity) *Equip {
	return &Equip{Base: facet.NewBase(KindEquip), World: w, Actor: actor, Target: target}
}

func (e *Equip) Recipient() *facet.Entity { return e.Target }

// Unequip detaches the target piece of equipment from the actor.
type Unequip struct {
	facet.Base
	World  *world.World
	Actor  *facet.Entity
	Target *facet.Entity
}

func NewUnequip(w *world.World, actor, target *facet.Entity) *Unequip {
	return &Unequip{Base: facet.NewBase(KindUnequip), World: w, Actor: actor, Target: target}
}

func (e *Unequip) Recipient() *facet.Entity { return e.Target }

// MeleeAttack is an attack by Actor against Target. The target's combat
// component answers with an immediate Damage event.
type MeleeAttack struct {
	facet.Base
	World  *world.World
	Actor  *facet.Entity
	Target *facet.Entity
}

func NewMeleeAttack(w *world.World, actor, target *facet.Entity) *MeleeAttack {
	return &MeleeAttack{Base: facet.NewBase(KindMelee), World: w, Actor: actor, Target: target}
}

func (e *MeleeAttack) Recipient() *facet.Entity { return e.Target }

// Damage reduces the target's health by Amount.
type Damage struct {
	facet.Base
	World  *world.World
	Target *facet.Entity
	Amount int
}

func NewDamage(w *world.World, target *facet.Entity, amount int) *Damage {
	return &Damage{Base: facet.NewBase(KindDamage), World: w, Target: target, Amount: amount}
}

func (e *Damage) Recipient() *facet.Entity { return e.Target }

// Die announces that the target's health ran out.
type Die struct {
	facet.Base
	World  *world.World
	Target *facet.Entity
}

func NewDie(w *world.World, target *facet.Entity) *Die {
	return &Die{Base: facet.NewBase(KindDie), World: w, Target: target}
}

func (e *Die) Recipient() *facet.Entity { return e.Target }
