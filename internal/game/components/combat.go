package components

import (
	"github.com/gridforge/gridforge/internal/core/facet"
	"github.com/gridforge/gridforge/internal/game/events"
)

// Combatant is the capability of fighting and taking damage.
var Combatant = facet.NewInterface("combatant")

var (
	// Health is the current health meter.
	Health = facet.Stored[int](Combatant, "health")
	// Strength is the raw power used for melee damage.
	Strength = facet.Stored[int](Combatant, "strength")
)

var CombatantImpl = facet.MustDefine(facet.Definition{
	Name:      "combatant",
	Interface: Combatant,
	Init:      combatantInit,
	Handlers: []facet.HandlerDecl{
		facet.On(handleDamage, events.KindDamage),
		facet.On(handleMelee, events.KindMelee),
		facet.On(handleDeath, events.KindDie),
	},
})

func combatantInit(inst *facet.Instance, args facet.Args) error {
	health, err := facet.Arg[int](args, "health")
	if err != nil {
		return err
	}
	strength, err := facet.Arg[int](args, "strength")
	if err != nil {
		return err
	}
	Health.Set(inst.Entity(), health)
	Strength.Set(inst.Entity(), strength)
	return nil
}

func handleDamage(inst *facet.Instance, ev facet.Event) error {
	damage := ev.(*events.Damage)
	self := inst.Entity()

	health := Health.Get(self) - damage.Amount
	Health.Set(self, health)
	damage.Succeed()

	if health <= 0 {
		damage.World.EnqueueImmediate(events.NewDie(damage.World, self))
	}
	return nil
}

func handleMelee(inst *facet.Instance, ev facet.Event) error {
	melee := ev.(*events.MeleeAttack)
	self := inst.Entity()

	opponent, err := melee.Actor.Component(Combatant)
	if err != nil {
		melee.Cancel()
		return nil
	}
	melee.Succeed()
	melee.World.EnqueueImmediate(events.NewDamage(melee.World, self, Strength.Get(opponent.Entity())))
	return nil
}

func handleDeath(inst *facet.Instance, ev facet.Event) error {
	die := ev.(*events.Die)
	die.World.Grid().Remove(inst.Entity())
	die.Succeed()
	return nil
}
