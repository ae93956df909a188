package world

import (
	"fmt"

	"github.com/gridforge/gridforge/internal/core/facet"
)

// Position is a tile coordinate on the grid.
type Position struct {
	X, Y int
}

func (p Position) String() string { return fmt.Sprintf("(%d,%d)", p.X, p.Y) }

// Grid is a minimal tile map: it tracks where entities stand and nothing
// else. Several entities may share a tile (a floor and the creature on it).
type Grid struct {
	width    int
	height   int
	byPos    map[Position][]*facet.Entity
	byEntity map[*facet.Entity]Position
}

func NewGrid(width, height int) *Grid {
	return &Grid{
		width:    width,
		height:   height,
		byPos:    make(map[Position][]*facet.Entity),
		byEntity: make(map[*facet.Entity]Position),
	}
}

func (g *Grid) Width() int { return g.width }

func (g *Grid) Height() int { return g.height }

func (g *Grid) Contains(pos Position) bool {
	return pos.X >= 0 && pos.X < g.width && pos.Y >= 0 && pos.Y < g.height
}

// Place puts an entity on a tile it is not yet on.
func (g *Grid) Place(e *facet.Entity, pos Position) error {
	if !g.Contains(pos) {
		return fmt.Errorf("world: position %s outside %dx%d grid", pos, g.width, g.height)
	}
	if _, placed := g.byEntity[e]; placed {
		return fmt.Errorf("world: entity %d already placed", e.ID())
	}
	g.byPos[pos] = append(g.byPos[pos], e)
	g.byEntity[e] = pos
	return nil
}

// Move relocates a placed entity.
func (g *Grid) Move(e *facet.Entity, pos Position) error {
	if !g.Contains(pos) {
		return fmt.Errorf("world: position %s outside %dx%d grid", pos, g.width, g.height)
	}
	old, placed := g.byEntity[e]
	if !placed {
		return fmt.Errorf("world: entity %d is not on the grid", e.ID())
	}
	g.removeAt(e, old)
	g.byPos[pos] = append(g.byPos[pos], e)
	g.byEntity[e] = pos
	return nil
}

// Remove takes an entity off the grid. Removing an absent entity is a no-op.
func (g *Grid) Remove(e *facet.Entity) {
	pos, placed := g.byEntity[e]
	if !placed {
		return
	}
	g.removeAt(e, pos)
	delete(g.byEntity, e)
}

// Find returns the entity's position.
func (g *Grid) Find(e *facet.Entity) (Position, bool) {
	pos, ok := g.byEntity[e]
	return pos, ok
}

// At returns the entities on a tile, in placement order. The slice is shared;
// callers must not modify it.
func (g *Grid) At(pos Position) []*facet.Entity {
	return g.byPos[pos]
}

func (g *Grid) removeAt(e *facet.Entity, pos Position) {
	tile := g.byPos[pos]
	for i, cur := range tile {
		if cur == e {
			g.byPos[pos] = append(tile[:i:i], tile[i+1:]...)
			break
		}
	}
	if len(g.byPos[pos]) == 0 {
		delete(g.byPos, pos)
	}
}
