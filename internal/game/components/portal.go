package components

import (
	"github.com/gridforge/gridforge/internal/core/facet"
	"github.com/gridforge/gridforge/internal/game/events"
)

// Portal is the capability of leading somewhere else.
var Portal = facet.NewInterface("portal")

// Destination names the map the portal leads to.
var Destination = facet.Stored[string](Portal, "destination")

// basePortal carries the shared constructor; the directional variants extend
// it with their handlers.
var basePortal = facet.MustDefine(facet.Definition{
	Name:      "portal",
	Interface: Portal,
	Init:      portalInit,
})

func portalInit(inst *facet.Instance, args facet.Args) error {
	dest, err := facet.Arg[string](args, "destination")
	if err != nil {
		return err
	}
	Destination.Set(inst.Entity(), dest)
	return nil
}

// PortalDownstairs answers Descend with its destination.
var PortalDownstairs = facet.MustDefine(facet.Definition{
	Name:    "portal-downstairs",
	Extends: basePortal,
	Handlers: []facet.HandlerDecl{
		facet.On(handleDescend, events.KindDescend),
	},
})

func handleDescend(inst *facet.Instance, ev facet.Event) error {
	descend := ev.(*events.Descend)
	descend.Destination = Destination.Get(inst.Entity())
	descend.Succeed()
	return nil
}

// PortalUpstairs answers Ascend with its destination.
var PortalUpstairs = facet.MustDefine(facet.Definition{
	Name:    "portal-upstairs",
	Extends: basePortal,
	Handlers: []facet.HandlerDecl{
		facet.On(handleAscend, events.KindAscend),
	},
})

func handleAscend(inst *facet.Instance, ev facet.Event) error {
	ascend := ev.(*events.Ascend)
	ascend.Destination = Destination.Get(inst.Entity())
	ascend.Succeed()
	return nil
}
