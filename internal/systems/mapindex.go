package systems

import (
	"github.com/samdwyer/dungeoncrawl/internal/ecs"
	"github.com/samdwyer/dungeoncrawl/internal/world"
)

// RunMapIndex rebuilds the blocked layer and the tile content index from
// scratch: walls, plus every tile holding a blocking actor.
func RunMapIndex(m *world.Map, w *ecs.World) {
	m.PopulateBlocked()
	m.ClearContentIndex()

	for _, id := range ecs.Query(w.Positions) {
		pos := w.Positions[id]
		idx := m.Index(pos.X, pos.Y)
		if w.Blocks(id) {
			m.SetBlocked(idx, true)
		}
		m.AddContent(idx, id)
	}
}
