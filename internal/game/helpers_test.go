package game

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/samdwyer/dungeoncrawl/internal/gamedata"
	"github.com/samdwyer/dungeoncrawl/internal/world"
)

// roomMap returns a map with the floors of rooms carved out.
func roomMap(width, height int, rooms ...world.Room) *world.Map {
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

// singleRoomSim is a 20x10 map with one room. The player stands at its
// center, (9, 4), and there are no monsters.
func singleRoomSim(t *testing.T) *Simulation {
	t.Helper()
	m := roomMap(20, 10, world.NewRoom(0, 0, 18, 8))
	s, err := NewSimulationFromMap(m, gamedata.MustLoadActors(), rand.New(rand.NewSource(1)), DefaultConfig())
	require.NoError(t, err)
	return s
}
