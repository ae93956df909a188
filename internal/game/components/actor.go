package components

import (
	"math/rand"

	"github.com/gridforge/gridforge/internal/core/facet"
	"github.com/gridforge/gridforge/internal/core/world"
	"github.com/gridforge/gridforge/internal/game/events"
)

// Actor is the capability of acting on one's own: once per turn the driver
// invokes the act operation, which queues whatever the entity decides to do.
// The act attribute is declared inside the variable initializer so it exists
// before the implementation variables below are defined.
var Actor = func() *facet.Interface {
	i := facet.NewInterface("actor")
	facet.Computed(i, "act")
	return i
}()

// ActFunc is the value of the act attribute: it inspects the world and
// queues the entity's next action, or does nothing.
type ActFunc func(w *world.World)

// Act runs the entity's actor component for one turn.
func Act(e *facet.Entity, w *world.World) error {
	inst, err := e.Component(Actor)
	if err != nil {
		return err
	}
	v, err := inst.Computed("act")
	if err != nil {
		return err
	}
	v.(ActFunc)(w)
	return nil
}

// GenericAI attacks an adjacent combatant if there is one, otherwise
// wanders one tile in a random direction.
var GenericAI = facet.MustDefine(facet.Definition{
	Name:      "generic-ai",
	Interface: Actor,
	Computed: map[string]facet.Provider{
		"act": func(inst *facet.Instance) any {
			self := inst.Entity()
			return ActFunc(func(w *world.World) { aiAct(w, self) })
		},
	},
})

var directions = []world.Position{{X: 0, Y: -1}, {X: 0, Y: 1}, {X: -1, Y: 0}, {X: 1, Y: 0}}

func aiAct(w *world.World, self *facet.Entity) {
	pos, ok := w.Grid().Find(self)
	if !ok {
		return
	}
	for _, d := range directions {
		next := world.Position{X: pos.X + d.X, Y: pos.Y + d.Y}
		for _, other := range w.Grid().At(next) {
			if other != self && other.Type().Implements(Combatant) {
				w.Enqueue(events.NewMeleeAttack(w, self, other))
				return
			}
		}
	}

	d := directions[rand.Intn(len(directions))]
	next := world.Position{X: pos.X + d.X, Y: pos.Y + d.Y}
	for _, target := range w.Grid().At(next) {
		w.Enqueue(events.NewWalk(w, self, target))
		return
	}
}

// PlayerIntelligence forwards the next buffered player action, immediately.
var PlayerIntelligence = facet.MustDefine(facet.Definition{
	Name:      "player-intelligence",
	Interface: Actor,
	Computed: map[string]facet.Provider{
		"act": func(*facet.Instance) any {
			return ActFunc(func(w *world.World) {
				if ev, ok := w.NextPlayerAction(); ok {
					w.EnqueueImmediate(ev)
				}
			})
		},
	},
})
