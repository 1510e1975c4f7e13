package game

import (
	"context"
	"errors"
	"math/rand"
	"time"

	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/dungeoncrawl/internal/ecs"
	"github.com/samdwyer/dungeoncrawl/internal/gamedata"
	"github.com/samdwyer/dungeoncrawl/internal/logger"
	"github.com/samdwyer/dungeoncrawl/internal/systems"
	"github.com/samdwyer/dungeoncrawl/internal/telemetry"
	"github.com/samdwyer/dungeoncrawl/internal/world"
)

// Simulation is the whole mutable game state. Every system receives it
// explicitly; nothing is kept in package globals.
type Simulation struct {
	Map       *world.Map
	World     *ecs.World
	Player    ecs.EntityID
	PlayerPos ecs.Position // Last known player position, the pursuit target
	Turn      int

	rng *rand.Rand
}

// NewSimulation generates a dungeon from cfg and populates it: the player
// at the center of the first room, one monster per other room.
func NewSimulation(ctx context.Context, cfg Config, actors *gamedata.ActorsFile) (*Simulation, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	tracer := telemetry.Tracer("game")
	ctx, span := tracer.Start(ctx, "sim.init")
	defer span.End()

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	m := world.Generate(ctx, cfg.GenConfig(), rng)
	s, err := NewSimulationFromMap(m, actors, rng, cfg)
	if err != nil {
		return nil, err
	}

	span.SetAttributes(
		attribute.Int64("seed", seed),
		attribute.Int("dungeon.rooms", len(m.Rooms)),
		attribute.Int("monsters", len(s.World.Monsters)),
		attribute.Int("player.start_x", s.PlayerPos.X),
		attribute.Int("player.start_y", s.PlayerPos.Y),
	)
	logger.Log.WithFields(logrus.Fields{
		"component": "simulation",
		"seed":      seed,
		"rooms":     len(m.Rooms),
		"monsters":  len(s.World.Monsters),
	}).Info("Simulation created.")

	return s, nil
}

// NewSimulationFromMap populates an existing map. The map must have at least
// one room.
func NewSimulationFromMap(m *world.Map, actors *gamedata.ActorsFile, rng *rand.Rand, cfg Config) (*Simulation, error) {
	if len(m.Rooms) == 0 {
		return nil, errors.New("dungeon has no rooms to spawn into")
	}

	s := &Simulation{
		Map:   m,
		World: ecs.NewWorld(),
		rng:   rng,
	}
	s.populate(actors, cfg)
	systems.RunMapIndex(s.Map, s.World)
	return s, nil
}

// Step advances the simulation by one tick: visibility, then pursuit, then
// the occupancy rebuild.
func (s *Simulation) Step(ctx context.Context) {
	tracer := telemetry.Tracer("game")
	_, span := tracer.Start(ctx, "sim.tick")
	defer span.End()

	systems.RunVisibility(s.Map, s.World)
	moved := systems.RunPursuit(s.Map, s.World, s.PlayerPos)
	systems.RunMapIndex(s.Map, s.World)
	s.Turn++

	span.SetAttributes(
		attribute.Int("turn", s.Turn),
		attribute.Int("monsters_moved", moved),
	)
	logger.Log.WithFields(logrus.Fields{
		"component":      "simulation",
		"turn":           s.Turn,
		"monsters_moved": moved,
	}).Debug("Tick complete.")
}

// TryMovePlayer attempts to move the player by the given delta.
func (s *Simulation) TryMovePlayer(dx, dy int) bool {
	if !systems.TryMove(s.Map, s.World, s.Player, dx, dy) {
		return false
	}
	s.PlayerPos = s.World.Positions[s.Player]
	return true
}

// IsVisible reports whether the player currently sees (x, y).
func (s *Simulation) IsVisible(x, y int) bool {
	return s.Map.IsVisible(x, y)
}

// IsRevealed reports whether the player has ever seen (x, y).
func (s *Simulation) IsRevealed(x, y int) bool {
	return s.Map.IsRevealed(x, y)
}

// Monsters returns the ids of every monster, ascending.
func (s *Simulation) Monsters() []ecs.EntityID {
	return ecs.Query(s.World.Monsters)
}
