package components

import (
	"fmt"

	"github.com/gridforge/gridforge/internal/core/facet"
	"github.com/gridforge/gridforge/internal/game/events"
)

// Container is the capability of holding other entities.
var Container = facet.NewInterface("container")

// Inventory lists the contained entities in pickup order.
var Inventory = facet.Stored[[]*facet.Entity](Container, "inventory")

var ContainerImpl = facet.MustDefine(facet.Definition{
	Name:      "container",
	Interface: Container,
	Init: func(inst *facet.Instance, _ facet.Args) error {
		Inventory.Set(inst.Entity(), nil)
		return nil
	},
})

// Portable is the capability of being picked up and carried.
var Portable = facet.NewInterface("portable")

var PortableImpl = facet.MustDefine(facet.Definition{
	Name:      "portable",
	Interface: Portable,
	Handlers: []facet.HandlerDecl{
		facet.On(handlePickUp, events.KindPickUp),
	},
})

func handlePickUp(inst *facet.Instance, ev facet.Event) error {
	pickUp := ev.(*events.PickUp)
	item := inst.Entity()
	if !pickUp.Actor.Type().Implements(Container) {
		pickUp.Cancel()
		return fmt.Errorf("components: %q cannot carry items", pickUp.Actor.Type().Name())
	}
	pickUp.World.Grid().Remove(item)
	Inventory.Set(pickUp.Actor, append(Inventory.Get(pickUp.Actor), item))
	pickUp.Succeed()
	return nil
}
