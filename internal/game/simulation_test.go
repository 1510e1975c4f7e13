package game

import (
	"context"
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samdwyer/dungeoncrawl/internal/ecs"
	"github.com/samdwyer/dungeoncrawl/internal/gamedata"
	"github.com/samdwyer/dungeoncrawl/internal/world"
)

func seededConfig(seed int64) Config {
	cfg := DefaultConfig()
	cfg.Seed = seed
	return cfg
}

func TestNewSimulationPopulatesRooms(t *testing.T) {
	s, err := NewSimulation(context.Background(), seededConfig(42), gamedata.MustLoadActors())
	require.NoError(t, err)
	require.NotEmpty(t, s.Map.Rooms)

	x, y := s.Map.Rooms[0].Center()
	assert.Equal(t, ecs.Position{X: x, Y: y}, s.PlayerPos)
	assert.Equal(t, s.PlayerPos, s.World.Positions[s.Player])
	assert.True(t, s.World.IsPlayer(s.Player))
	assert.False(t, s.World.Blocks(s.Player))

	monsters := s.Monsters()
	require.Len(t, monsters, len(s.Map.Rooms)-1)
	for i, id := range monsters {
		cx, cy := s.Map.Rooms[i+1].Center()
		assert.Equal(t, ecs.Position{X: cx, Y: cy}, s.World.Positions[id])
		assert.True(t, s.World.Blocks(id))
		assert.True(t, s.Map.IsBlocked(s.Map.Index(cx, cy)), "monster tile should be blocked")

		name := s.World.Names[id].Name
		assert.True(t, strings.HasPrefix(name, "Goblin #") || strings.HasPrefix(name, "Orc #"), name)
		assert.Equal(t, 8, s.World.Viewsheds[id].Range)
	}
	assert.Equal(t, 6, s.World.Viewsheds[s.Player].Range)
}

func TestNewSimulationIsReproducible(t *testing.T) {
	actors := gamedata.MustLoadActors()
	a, err := NewSimulation(context.Background(), seededConfig(7), actors)
	require.NoError(t, err)
	b, err := NewSimulation(context.Background(), seededConfig(7), actors)
	require.NoError(t, err)

	assert.Equal(t, a.Map.Tiles, b.Map.Tiles)
	assert.Equal(t, a.World.Positions, b.World.Positions)
	assert.Equal(t, a.World.Names, b.World.Names)
}

func TestNewSimulationSightOverrides(t *testing.T) {
	cfg := seededConfig(3)
	cfg.PlayerSight = 4
	cfg.MonsterSight = 2
	s, err := NewSimulation(context.Background(), cfg, gamedata.MustLoadActors())
	require.NoError(t, err)

	assert.Equal(t, 4, s.World.Viewsheds[s.Player].Range)
	for _, id := range s.Monsters() {
		assert.Equal(t, 2, s.World.Viewsheds[id].Range)
	}
}

func TestNewSimulationRejectsInvalidConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MaxRooms = 0
	_, err := NewSimulation(context.Background(), cfg, gamedata.MustLoadActors())
	assert.Error(t, err)
}

func TestNewSimulationFromMapNeedsRooms(t *testing.T) {
	m := world.NewMap(20, 10)
	_, err := NewSimulationFromMap(m, gamedata.MustLoadActors(), rand.New(rand.NewSource(1)), DefaultConfig())
	assert.Error(t, err)
}

func TestStepRevealsAroundPlayer(t *testing.T) {
	s := singleRoomSim(t)
	assert.False(t, s.IsVisible(9, 4))

	s.Step(context.Background())

	assert.Equal(t, 1, s.Turn)
	assert.True(t, s.IsVisible(9, 4))
	assert.True(t, s.IsRevealed(9, 4))
	assert.True(t, s.IsVisible(12, 4))
	assert.False(t, s.IsVisible(18, 8), "outside sight radius")
}

func TestStepMonsterClosesInThenHolds(t *testing.T) {
	s := singleRoomSim(t)
	actors := gamedata.MustLoadActors()
	goblin := s.SpawnMonster(&actors.Monsters[0], 0, ecs.Position{X: 12, Y: 4}, 8)
	ctx := context.Background()

	s.Step(ctx)
	assert.Equal(t, ecs.Position{X: 11, Y: 4}, s.World.Positions[goblin])
	assert.True(t, s.Map.IsBlocked(s.Map.Index(11, 4)))
	assert.False(t, s.Map.IsBlocked(s.Map.Index(12, 4)))
	assert.Equal(t, []ecs.EntityID{goblin}, s.Map.ContentAt(11, 4))

	s.Step(ctx)
	assert.Equal(t, ecs.Position{X: 10, Y: 4}, s.World.Positions[goblin])

	// Adjacent: the goblin never steps onto the player.
	s.Step(ctx)
	assert.Equal(t, ecs.Position{X: 10, Y: 4}, s.World.Positions[goblin])
	assert.Equal(t, ecs.Position{X: 9, Y: 4}, s.PlayerPos)
}

func TestStepMonstersNeverShareTile(t *testing.T) {
	s := singleRoomSim(t)
	actors := gamedata.MustLoadActors()
	s.SpawnMonster(&actors.Monsters[0], 0, ecs.Position{X: 14, Y: 3}, 8)
	s.SpawnMonster(&actors.Monsters[1], 1, ecs.Position{X: 14, Y: 5}, 8)
	s.SpawnMonster(&actors.Monsters[0], 2, ecs.Position{X: 15, Y: 4}, 8)

	for range 8 {
		s.Step(context.Background())
		seen := map[ecs.Position]bool{s.PlayerPos: true}
		for _, id := range s.Monsters() {
			pos := s.World.Positions[id]
			assert.False(t, seen[pos], "tile %v occupied twice", pos)
			seen[pos] = true
		}
	}
}

func TestTryMovePlayer(t *testing.T) {
	s := singleRoomSim(t)
	actors := gamedata.MustLoadActors()
	s.SpawnMonster(&actors.Monsters[0], 0, ecs.Position{X: 10, Y: 4}, 8)
	s.Step(context.Background())

	assert.True(t, s.TryMovePlayer(0, -1))
	assert.Equal(t, ecs.Position{X: 9, Y: 3}, s.PlayerPos)
	assert.True(t, s.World.Viewsheds[s.Player].Dirty)

	// Into a monster, then into the wall.
	before := s.PlayerPos
	assert.False(t, s.TryMovePlayer(1, 1))
	assert.Equal(t, before, s.PlayerPos)
	for range 3 {
		s.TryMovePlayer(0, -1)
	}
	assert.Equal(t, ecs.Position{X: 9, Y: 1}, s.PlayerPos)
	assert.False(t, s.TryMovePlayer(0, -1))
	assert.Equal(t, ecs.Position{X: 9, Y: 1}, s.World.Positions[s.Player])
}

func TestRunStateString(t *testing.T) {
	assert.Equal(t, "paused", RunStatePaused.String())
	assert.Equal(t, "running", RunStateRunning.String())
	assert.Equal(t, "unknown", RunState(9).String())
}
