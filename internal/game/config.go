package game

import (
	"fmt"
	"os"
	"strconv"

	"github.com/samdwyer/dungeoncrawl/internal/world"
)

// Config holds game configuration options.
type Config struct {
	// Seed for random number generation. Used for reproducible dungeon generation.
	// A seed of 0 means a random seed will be generated.
	Seed int64

	Width       int
	Height      int
	MaxRooms    int
	MinRoomSize int
	MaxRoomSize int
	Generator   world.Algorithm

	// Sight overrides. Zero keeps the range from the actor definitions.
	PlayerSight  int
	MonsterSight int
}

// DefaultConfig returns the classic 80x50 rooms-and-corridors setup.
func DefaultConfig() Config {
	gen := world.DefaultGenConfig()
	return Config{
		Width:       gen.Width,
		Height:      gen.Height,
		MaxRooms:    gen.MaxRooms,
		MinRoomSize: gen.MinRoomSize,
		MaxRoomSize: gen.MaxRoomSize,
		Generator:   gen.Algorithm,
	}
}

// LoadConfig returns DefaultConfig overlaid with DUNGEON_* environment
// variables. A .env file, if any, must already be loaded.
func LoadConfig() (Config, error) {
	cfg := DefaultConfig()

	ints := []struct {
		env string
		dst *int
	}{
		{"DUNGEON_WIDTH", &cfg.Width},
		{"DUNGEON_HEIGHT", &cfg.Height},
		{"DUNGEON_MAX_ROOMS", &cfg.MaxRooms},
		{"DUNGEON_MIN_ROOM_SIZE", &cfg.MinRoomSize},
		{"DUNGEON_MAX_ROOM_SIZE", &cfg.MaxRoomSize},
		{"DUNGEON_PLAYER_SIGHT", &cfg.PlayerSight},
		{"DUNGEON_MONSTER_SIGHT", &cfg.MonsterSight},
	}
	for _, v := range ints {
		raw, ok := os.LookupEnv(v.env)
		if !ok || raw == "" {
			continue
		}
		n, err := strconv.Atoi(raw)
		if err != nil {
			return cfg, fmt.Errorf("invalid %s: %w", v.env, err)
		}
		*v.dst = n
	}

	if raw := os.Getenv("DUNGEON_SEED"); raw != "" {
		seed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return cfg, fmt.Errorf("invalid DUNGEON_SEED: %w", err)
		}
		cfg.Seed = seed
	}
	if raw := os.Getenv("DUNGEON_GENERATOR"); raw != "" {
		cfg.Generator = world.Algorithm(raw)
	}

	return cfg, cfg.Validate()
}

// GenConfig returns the dungeon generation part of the configuration.
func (c Config) GenConfig() world.GenConfig {
	return world.GenConfig{
		Width:       c.Width,
		Height:      c.Height,
		MaxRooms:    c.MaxRooms,
		MinRoomSize: c.MinRoomSize,
		MaxRoomSize: c.MaxRoomSize,
		Algorithm:   c.Generator,
	}
}

// Validate checks the configuration before a dungeon is built from it.
func (c Config) Validate() error {
	if err := c.GenConfig().Validate(); err != nil {
		return fmt.Errorf("invalid dungeon config: %w", err)
	}
	if c.PlayerSight < 0 || c.MonsterSight < 0 {
		return fmt.Errorf("sight overrides must not be negative (player %d, monster %d)",
			c.PlayerSight, c.MonsterSight)
	}
	return nil
}
