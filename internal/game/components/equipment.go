package components

import (
	"github.com/gridforge/gridforge/internal/core/facet"
	"github.com/gridforge/gridforge/internal/core/observability/log"
	"github.com/gridforge/gridforge/internal/game/events"
)

// Wears relates a wearer (subject) to a worn piece of equipment (object).
// The equipment type's modifiers flow onto the wearer's attribute reads for
// as long as the relation exists.
var Wears = facet.NewRelationKind("wears")

// Equipment is the capability of being worn.
var Equipment = facet.NewInterface("equipment")

var EquipmentImpl = facet.MustDefine(facet.Definition{
	Name:      "equipment",
	Interface: Equipment,
	Handlers: []facet.HandlerDecl{
		facet.On(handleEquip, events.KindEquip),
		facet.On(handleUnequip, events.KindUnequip),
	},
})

func handleEquip(inst *facet.Instance, ev facet.Event) error {
	equip := ev.(*events.Equip)
	rel := facet.Relate(Wears, equip.Actor, inst.Entity())
	equip.World.Log().Debug("equipped",
		log.String("relation", rel.ID().String()),
		log.Uint64("wearer", uint64(equip.Actor.ID())),
		log.Uint64("worn", uint64(inst.Entity().ID())))
	equip.Succeed()
	return nil
}

func handleUnequip(inst *facet.Instance, ev facet.Event) error {
	unequip := ev.(*events.Unequip)
	self := inst.Entity()

	rels := self.Relations(Wears)
	for _, rel := range append([]*facet.Relation(nil), rels...) {
		if rel.Subject() == unequip.Actor {
			rel.Destroy()
			unequip.World.Log().Debug("unequipped",
				log.String("relation", rel.ID().String()),
				log.Uint64("wearer", uint64(unequip.Actor.ID())))
			unequip.Succeed()
		}
	}
	return nil
}
