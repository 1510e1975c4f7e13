package systems

import (
	"github.com/samdwyer/dungeoncrawl/internal/ecs"
	"github.com/samdwyer/dungeoncrawl/internal/world"
)

// newTestMap returns a wall-filled map with the floors of rooms carved out.
func newTestMap(width, height int, rooms ...world.Room) *world.Map {
	m := world.NewMap(width, height)
	for _, r := range rooms {
		for y := r.Y1 + 1; y <= r.Y2; y++ {
			for x := r.X1 + 1; x <= r.X2; x++ {
				m.SetTile(x, y, world.TileFloor)
			}
		}
		m.Rooms = append(m.Rooms, r)
	}
	m.PopulateBlocked()
	return m
}

// openMap is a single room covering everything but the outer wall ring.
func openMap(width, height int) *world.Map {
	return newTestMap(width, height, world.NewRoom(0, 0, width-2, height-2))
}

func spawnPlayer(w *ecs.World, x, y, sight int) ecs.EntityID {
	id := w.NewEntity()
	w.Players[id] = struct{}{}
	w.Positions[id] = ecs.Position{X: x, Y: y}
	w.Viewsheds[id] = ecs.NewViewshed(sight)
	return id
}

func spawnMonster(w *ecs.World, x, y, sight int) ecs.EntityID {
	id := w.NewEntity()
	w.Monsters[id] = struct{}{}
	w.BlocksTile[id] = struct{}{}
	w.Positions[id] = ecs.Position{X: x, Y: y}
	w.Viewsheds[id] = ecs.NewViewshed(sight)
	return id
}
