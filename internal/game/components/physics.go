// Package components holds the concrete component implementations of the
// game layer. They are consumers of the facet framework: each declares one
// capability interface, registers its handlers at package init, and touches
// entity state only through attribute descriptors.
package components

import (
	"github.com/gridforge/gridforge/internal/core/facet"
	"github.com/gridforge/gridforge/internal/game/events"
)

// Physics is the capability of occupying a tile. Whether the tile can be
// entered is a computed attribute, so each implementation answers for itself.
// Declared in one initializer so the attribute exists before the package's
// implementation variables are defined against the interface.
var Physics = func() *facet.Interface {
	i := facet.NewInterface("physics")
	facet.Computed(i, "blocks")
	return i
}()

// Solid refuses to let anything walk onto its tile.
var Solid = facet.MustDefine(facet.Definition{
	Name:      "solid",
	Interface: Physics,
	Computed: map[string]facet.Provider{
		"blocks": func(*facet.Instance) any { return true },
	},
	Handlers: []facet.HandlerDecl{
		facet.On(solidWalk, events.KindWalk),
	},
})

func solidWalk(_ *facet.Instance, ev facet.Event) error {
	ev.(*events.Walk).Cancel()
	return nil
}

// Empty lets anything walk onto its tile and moves the walker there.
var Empty = facet.MustDefine(facet.Definition{
	Name:      "empty",
	Interface: Physics,
	Computed: map[string]facet.Provider{
		"blocks": func(*facet.Instance) any { return false },
	},
	Handlers: []facet.HandlerDecl{
		facet.On(emptyWalk, events.KindWalk),
	},
})

func emptyWalk(inst *facet.Instance, ev facet.Event) error {
	walk := ev.(*events.Walk)
	pos, ok := walk.World.Grid().Find(inst.Entity())
	if !ok {
		walk.Cancel()
		return nil
	}
	if err := walk.World.Grid().Move(walk.Actor, pos); err != nil {
		return err
	}
	walk.Succeed()
	return nil
}

// Blocks reports whether the entity's physics refuses walkers.
func Blocks(e *facet.Entity) (bool, error) {
	inst, err := e.Component(Physics)
	if err != nil {
		return false, err
	}
	v, err := inst.Computed("blocks")
	if err != nil {
		return false, err
	}
	return v.(bool), nil
}
