package gamedata

import (
	"math/rand"
)

// MonsterRegistry holds loaded monster definitions and provides spawning utilities.
type MonsterRegistry struct {
	monsters    []ActorDef
	totalWeight int
}

// NewMonsterRegistry creates a registry from loaded monster definitions.
func NewMonsterRegistry(monsters []ActorDef) *MonsterRegistry {
	totalWeight := 0
	for _, m := range monsters {
		totalWeight += m.SpawnWeight
	}
	return &MonsterRegistry{
		monsters:    monsters,
		totalWeight: totalWeight,
	}
}

// SpawnRandom selects a random monster definition using weighted probability.
// When no weights are set every kind is equally likely.
func (r *MonsterRegistry) SpawnRandom(rng *rand.Rand) *ActorDef {
	if len(r.monsters) == 0 {
		return nil
	}
	if r.totalWeight <= 0 {
		return &r.monsters[rng.Intn(len(r.monsters))]
	}

	roll := rng.Intn(r.totalWeight)

	cumulative := 0
	for i := range r.monsters {
		cumulative += r.monsters[i].SpawnWeight
		if roll < cumulative {
			return &r.monsters[i]
		}
	}

	// Fallback (shouldn't happen)
	return &r.monsters[0]
}

// Count returns the number of monster kinds in the registry.
func (r *MonsterRegistry) Count() int {
	return len(r.monsters)
}
