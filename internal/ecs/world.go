// Package ecs is a small tagged-entity store: actors are integer ids and
// components live in parallel maps keyed by id.
package ecs

import (
	"maps"
	"slices"
)

// EntityID is a unique identifier for an entity (never recycled).
type EntityID uint64

// NoEntity is the zero id, never handed out by NewEntity.
const NoEntity EntityID = 0

// World holds all component maps and the next entity ID.
type World struct {
	nextID EntityID

	// Components
	Positions   map[EntityID]Position
	Viewsheds   map[EntityID]*Viewshed
	Names       map[EntityID]Name
	Stats       map[EntityID]CombatStats
	Renderables map[EntityID]Renderable

	// Tags
	Players    map[EntityID]struct{}
	Monsters   map[EntityID]struct{}
	BlocksTile map[EntityID]struct{}
}

// NewWorld creates a new empty world.
func NewWorld() *World {
	return &World{
		nextID:      1, // 0 is NoEntity
		Positions:   make(map[EntityID]Position),
		Viewsheds:   make(map[EntityID]*Viewshed),
		Names:       make(map[EntityID]Name),
		Stats:       make(map[EntityID]CombatStats),
		Renderables: make(map[EntityID]Renderable),
		Players:     make(map[EntityID]struct{}),
		Monsters:    make(map[EntityID]struct{}),
		BlocksTile:  make(map[EntityID]struct{}),
	}
}

// NewEntity returns a new unique entity ID.
func (w *World) NewEntity() EntityID {
	id := w.nextID
	w.nextID++
	return id
}

// DestroyEntity removes all components for an entity.
func (w *World) DestroyEntity(id EntityID) {
	delete(w.Positions, id)
	delete(w.Viewsheds, id)
	delete(w.Names, id)
	delete(w.Stats, id)
	delete(w.Renderables, id)
	delete(w.Players, id)
	delete(w.Monsters, id)
	delete(w.BlocksTile, id)
}

// IsPlayer reports whether id carries the player tag.
func (w *World) IsPlayer(id EntityID) bool {
	_, ok := w.Players[id]
	return ok
}

// IsMonster reports whether id carries the monster tag.
func (w *World) IsMonster(id EntityID) bool {
	_, ok := w.Monsters[id]
	return ok
}

// Blocks reports whether id occupies its tile exclusively.
func (w *World) Blocks(id EntityID) bool {
	_, ok := w.BlocksTile[id]
	return ok
}

// HasViewshed reports whether id has a viewshed.
func (w *World) HasViewshed(id EntityID) bool {
	_, ok := w.Viewsheds[id]
	return ok
}

// HasPosition reports whether id has a position.
func (w *World) HasPosition(id EntityID) bool {
	_, ok := w.Positions[id]
	return ok
}

// Query returns the ids of base accepted by every filter, in ascending order
// so systems iterate deterministically.
func Query[T any](base map[EntityID]T, filters ...func(EntityID) bool) []EntityID {
	ids := slices.Sorted(maps.Keys(base))
	out := ids[:0]
next:
	for _, id := range ids {
		for _, keep := range filters {
			if !keep(id) {
				continue next
			}
		}
		out = append(out, id)
	}
	return out
}
