package game

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/samdwyer/dungeoncrawl/internal/ecs"
	"github.com/samdwyer/dungeoncrawl/internal/gamedata"
	"github.com/samdwyer/dungeoncrawl/internal/logger"
)

// populate places one monster in the center of every room but the first,
// then the player in the center of the first.
func (s *Simulation) populate(actors *gamedata.ActorsFile, cfg Config) {
	registry := gamedata.NewMonsterRegistry(actors.Monsters)
	for i, room := range s.Map.Rooms[1:] {
		def := registry.SpawnRandom(s.rng)
		if def == nil {
			break
		}
		x, y := room.Center()
		s.SpawnMonster(def, i, ecs.Position{X: x, Y: y}, sightOr(cfg.MonsterSight, def.Sight))
	}
	logger.Log.WithFields(logrus.Fields{
		"component": "spawn",
		"kinds":     registry.Count(),
		"spawned":   len(s.World.Monsters),
	}).Debug("Monsters placed.")

	x, y := s.Map.Rooms[0].Center()
	s.SpawnPlayer(&actors.Player, ecs.Position{X: x, Y: y}, sightOr(cfg.PlayerSight, actors.Player.Sight))
}

// SpawnPlayer creates the player entity and makes it the pursuit target.
func (s *Simulation) SpawnPlayer(def *gamedata.ActorDef, pos ecs.Position, sight int) ecs.EntityID {
	w := s.World
	id := s.spawnActor(def, def.Name, pos, sight)
	w.Players[id] = struct{}{}

	s.Player = id
	s.PlayerPos = pos
	return id
}

// SpawnMonster creates a blocking monster named after its kind and n.
func (s *Simulation) SpawnMonster(def *gamedata.ActorDef, n int, pos ecs.Position, sight int) ecs.EntityID {
	w := s.World
	id := s.spawnActor(def, fmt.Sprintf("%s #%d", def.Name, n), pos, sight)
	w.Monsters[id] = struct{}{}
	w.BlocksTile[id] = struct{}{}
	return id
}

func (s *Simulation) spawnActor(def *gamedata.ActorDef, name string, pos ecs.Position, sight int) ecs.EntityID {
	w := s.World
	id := w.NewEntity()
	w.Positions[id] = pos
	w.Viewsheds[id] = ecs.NewViewshed(sight)
	w.Names[id] = ecs.Name{Name: name}
	w.Stats[id] = ecs.CombatStats{
		MaxHP:   def.HP,
		HP:      def.HP,
		Defense: def.Defense,
		Power:   def.Power,
	}
	w.Renderables[id] = ecs.Renderable{
		Glyph: def.GlyphRune(),
		FG:    def.Foreground(),
		BG:    def.Background(),
	}
	return id
}

func sightOr(override, base int) int {
	if override > 0 {
		return override
	}
	return base
}
