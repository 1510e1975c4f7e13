package ecs

import (
	"github.com/gdamore/tcell/v2"
	"github.com/zyedidia/generic/mapset"
)

// Position is an actor's tile coordinate.
type Position struct {
	X, Y int
}

// Add returns the position shifted by the given delta.
func (p Position) Add(dx, dy int) Position {
	return Position{X: p.X + dx, Y: p.Y + dy}
}

// ChebyshevDistance returns the king-move distance between two positions.
func (p Position) ChebyshevDistance(o Position) int {
	return max(abs(p.X-o.X), abs(p.Y-o.Y))
}

// DistanceSquared returns the squared Euclidean distance between two positions.
func (p Position) DistanceSquared(o Position) int {
	dx, dy := p.X-o.X, p.Y-o.Y
	return dx*dx + dy*dy
}

// Viewshed is the set of tiles an actor currently sees.
// VisibleTiles is ordered by map index; membership lookups go through CanSee.
type Viewshed struct {
	VisibleTiles []Position
	Range        int  // Sight radius in tiles
	Dirty        bool // Set when the owner moves, cleared after recomputation

	seen mapset.Set[Position]
}

// NewViewshed creates a dirty viewshed so it is computed on the first tick.
func NewViewshed(sightRange int) *Viewshed {
	return &Viewshed{
		Range: sightRange,
		Dirty: true,
		seen:  mapset.New[Position](),
	}
}

// Replace swaps the visible set for tiles.
func (v *Viewshed) Replace(tiles []Position) {
	v.VisibleTiles = tiles
	v.seen = mapset.New[Position]()
	for _, p := range tiles {
		v.seen.Put(p)
	}
}

// CanSee reports whether p is in the current visible set.
func (v *Viewshed) CanSee(p Position) bool {
	return v.seen.Has(p)
}

// Name is an actor's display name.
type Name struct {
	Name string
}

// CombatStats are carried on actors but not resolved by the simulation.
type CombatStats struct {
	MaxHP   int
	HP      int
	Defense int
	Power   int
}

// Renderable describes how an actor is drawn.
type Renderable struct {
	Glyph rune
	FG    tcell.Color
	BG    tcell.Color
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
