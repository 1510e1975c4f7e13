// Package systems holds the per-tick simulation passes: visibility, pursuit,
// movement and occupancy indexing.
package systems

import (
	"slices"

	"github.com/sirupsen/logrus"
	"github.com/zyedidia/generic/mapset"

	"github.com/samdwyer/dungeoncrawl/internal/ecs"
	"github.com/samdwyer/dungeoncrawl/internal/logger"
	"github.com/samdwyer/dungeoncrawl/internal/world"
)

// Multipliers that map the first octant onto each of the eight octants.
var multipliers = [4][8]int{
	{1, 0, 0, -1, -1, 0, 0, 1},
	{0, 1, -1, 0, 0, -1, 1, 0},
	{0, 1, 1, 0, 0, -1, -1, 0},
	{1, 0, 0, 1, -1, 0, 0, -1},
}

// RunVisibility recomputes every dirty viewshed. The player's result also
// replaces the map's Visible layer and extends Revealed.
func RunVisibility(m *world.Map, w *ecs.World) {
	for _, id := range ecs.Query(w.Positions, w.HasViewshed) {
		vs := w.Viewsheds[id]
		if !vs.Dirty {
			continue
		}
		pos := w.Positions[id]

		vs.Replace(FieldOfView(m, pos, vs.Range))
		vs.Dirty = false

		if !w.IsPlayer(id) {
			continue
		}
		m.ClearVisible()
		for _, p := range vs.VisibleTiles {
			idx := m.Index(p.X, p.Y)
			m.Visible[idx] = true
			m.Revealed[idx] = true
		}
		logger.Log.WithFields(logrus.Fields{
			"component":     "visibility",
			"entity":        id,
			"visible_tiles": len(vs.VisibleTiles),
		}).Debug("Player field of view updated.")
	}
}

// FieldOfView returns the tiles visible from origin within radius, using
// recursive shadowcasting with walls as the only obstacles. Tiles are
// ordered by map index. A radius <= 0 sees nothing.
func FieldOfView(m *world.Map, origin ecs.Position, radius int) []ecs.Position {
	if radius <= 0 || !m.InBounds(origin.X, origin.Y) {
		return nil
	}

	visible := mapset.New[int]()
	visible.Put(m.Index(origin.X, origin.Y))

	for i := 0; i < 8; i++ {
		castLight(m, origin.X, origin.Y, 1, 1.0, 0.0, radius,
			multipliers[0][i], multipliers[1][i],
			multipliers[2][i], multipliers[3][i], visible)
	}

	indices := make([]int, 0, visible.Size())
	visible.Each(func(idx int) {
		indices = append(indices, idx)
	})
	slices.Sort(indices)

	tiles := make([]ecs.Position, len(indices))
	for i, idx := range indices {
		x, y := m.Coords(idx)
		tiles[i] = ecs.Position{X: x, Y: y}
	}
	return tiles
}

// castLight scans one octant row by row, starting at row, between the start
// and end slopes. Opaque tiles narrow the slopes for the rows behind them.
func castLight(m *world.Map, cx, cy, row int, start, end float64, radius, xx, xy, yx, yy int, visible mapset.Set[int]) {
	if start < end {
		return
	}

	radiusSq := radius * radius

	for j := row; j <= radius; j++ {
		dx, dy := -j-1, -j
		blocked := false
		newStart := start

		for {
			dx++
			if dx > 0 {
				break
			}

			lSlope := (float64(dx) - 0.5) / (float64(dy) + 0.5)
			rSlope := (float64(dx) + 0.5) / (float64(dy) - 0.5)

			if start < rSlope {
				continue
			}
			if end > lSlope {
				break
			}

			x := cx + dx*xx + dy*xy
			y := cy + dx*yx + dy*yy

			if m.InBounds(x, y) && dx*dx+dy*dy <= radiusSq {
				visible.Put(m.Index(x, y))
			}

			if blocked {
				if m.IsOpaque(x, y) {
					newStart = rSlope
					continue
				}
				blocked = false
				start = newStart
			} else if m.IsOpaque(x, y) && j < radius {
				blocked = true
				castLight(m, cx, cy, j+1, start, lSlope, radius, xx, xy, yx, yy, visible)
				newStart = rSlope
			}
		}
		if blocked {
			break
		}
	}
}
