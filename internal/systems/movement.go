package systems

import (
	"github.com/samdwyer/dungeoncrawl/internal/ecs"
	"github.com/samdwyer/dungeoncrawl/internal/world"
)

// TryMove steps entity id by (dx, dy) if the destination is a valid exit.
// On success the position changes, the viewshed is marked dirty and, for a
// blocking actor, the blocked flag follows it so later movers in the same
// tick see the new occupancy. A rejected move changes nothing.
func TryMove(m *world.Map, w *ecs.World, id ecs.EntityID, dx, dy int) bool {
	pos, ok := w.Positions[id]
	if !ok {
		return false
	}
	dest := pos.Add(dx, dy)
	if !m.IsExitValid(dest.X, dest.Y) {
		return false
	}

	if w.Blocks(id) {
		m.SetBlocked(m.Index(pos.X, pos.Y), false)
		m.SetBlocked(m.Index(dest.X, dest.Y), true)
	}
	w.Positions[id] = dest
	if vs, ok := w.Viewsheds[id]; ok {
		vs.Dirty = true
	}
	return true
}
