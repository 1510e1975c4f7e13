package world

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/dungeoncrawl/internal/logger"
	"github.com/samdwyer/dungeoncrawl/internal/telemetry"
)

const (
	// Default dungeon dimensions
	DefaultWidth  = 80
	DefaultHeight = 50

	// Room placement defaults
	DefaultMaxRooms    = 30
	DefaultMinRoomSize = 6
	DefaultMaxRoomSize = 10
)

// Algorithm selects the layout strategy used by Generate.
type Algorithm string

const (
	// AlgorithmRooms places random rooms and chains each to the previous one.
	AlgorithmRooms Algorithm = "rooms"
	// AlgorithmBSP splits the map recursively and puts one room per leaf.
	AlgorithmBSP Algorithm = "bsp"
)

// GenConfig bounds dungeon generation.
type GenConfig struct {
	Width       int
	Height      int
	MaxRooms    int // Placement attempts for AlgorithmRooms, room cap for AlgorithmBSP
	MinRoomSize int
	MaxRoomSize int
	Algorithm   Algorithm
}

// DefaultGenConfig returns the classic 80x50 rooms-and-corridors layout.
func DefaultGenConfig() GenConfig {
	return GenConfig{
		Width:       DefaultWidth,
		Height:      DefaultHeight,
		MaxRooms:    DefaultMaxRooms,
		MinRoomSize: DefaultMinRoomSize,
		MaxRoomSize: DefaultMaxRoomSize,
		Algorithm:   AlgorithmRooms,
	}
}

// Validate checks that rooms of every allowed size fit on the map.
func (c GenConfig) Validate() error {
	if c.MinRoomSize < 2 {
		return fmt.Errorf("min room size %d must be at least 2", c.MinRoomSize)
	}
	if c.MaxRoomSize < c.MinRoomSize {
		return fmt.Errorf("max room size %d is below min room size %d", c.MaxRoomSize, c.MinRoomSize)
	}
	if c.Width < c.MaxRoomSize+2 || c.Height < c.MaxRoomSize+2 {
		return fmt.Errorf("map %dx%d too small for rooms up to %d", c.Width, c.Height, c.MaxRoomSize)
	}
	if c.MaxRooms < 1 {
		return fmt.Errorf("max rooms %d must be positive", c.MaxRooms)
	}
	switch c.Algorithm {
	case AlgorithmRooms, AlgorithmBSP:
	default:
		return fmt.Errorf("unknown algorithm %q", c.Algorithm)
	}
	return nil
}

// builder carves a map in place.
type builder struct {
	m   *Map
	cfg GenConfig
	rng *rand.Rand

	attempts int
	rejected int
}

// Generate creates a dungeon layout. The same rng stream always yields the
// same map. cfg must pass Validate.
func Generate(ctx context.Context, cfg GenConfig, rng *rand.Rand) *Map {
	tracer := telemetry.Tracer("world")
	_, span := tracer.Start(ctx, "dungeon.generate")
	defer span.End()

	startTime := time.Now()

	b := &builder{
		m:   NewMap(cfg.Width, cfg.Height),
		cfg: cfg,
		rng: rng,
	}

	switch cfg.Algorithm {
	case AlgorithmBSP:
		b.generateBSP()
	default:
		b.generateRoomsAndCorridors()
	}
	b.m.PopulateBlocked()

	// Record telemetry
	span.SetAttributes(
		attribute.String("dungeon.algorithm", string(cfg.Algorithm)),
		attribute.Int("dungeon.width", cfg.Width),
		attribute.Int("dungeon.height", cfg.Height),
		attribute.Int("dungeon.room_count", len(b.m.Rooms)),
		attribute.Int("dungeon.attempts", b.attempts),
		attribute.Int("dungeon.rejected", b.rejected),
		attribute.Int64("dungeon.generation_ms", time.Since(startTime).Milliseconds()),
	)
	logger.Log.WithFields(logrus.Fields{
		"component": "dungeon",
		"algorithm": cfg.Algorithm,
		"rooms":     len(b.m.Rooms),
		"attempts":  b.attempts,
		"rejected":  b.rejected,
	}).Debug("Dungeon generated.")

	return b.m
}

// generateRoomsAndCorridors tries MaxRooms random placements. A candidate that
// touches an accepted room is dropped; running out of attempts just ends
// generation early.
func (b *builder) generateRoomsAndCorridors() {
	cfg := b.cfg
	for i := 0; i < cfg.MaxRooms; i++ {
		b.attempts++

		w := b.randRange(cfg.MinRoomSize, cfg.MaxRoomSize)
		h := b.randRange(cfg.MinRoomSize, cfg.MaxRoomSize)
		x := b.rng.Intn(cfg.Width - w - 1)
		y := b.rng.Intn(cfg.Height - h - 1)
		candidate := NewRoom(x, y, w, h)

		if b.overlapsAccepted(candidate) {
			b.rejected++
			continue
		}

		b.carveRoom(candidate)
		if n := len(b.m.Rooms); n > 0 {
			b.carveCorridor(b.m.Rooms[n-1], candidate)
		}
		b.m.Rooms = append(b.m.Rooms, candidate)
	}
}

func (b *builder) overlapsAccepted(candidate Room) bool {
	for _, other := range b.m.Rooms {
		if candidate.Intersects(other) {
			return true
		}
	}
	return false
}

// randRange returns a value in [lo, hi].
func (b *builder) randRange(lo, hi int) int {
	return lo + b.rng.Intn(hi-lo+1)
}

// carveRoom sets every floor tile of the room.
func (b *builder) carveRoom(room Room) {
	for y := room.Y1 + 1; y <= room.Y2; y++ {
		for x := room.X1 + 1; x <= room.X2; x++ {
			b.carve(x, y)
		}
	}
}

// carveCorridor joins two room centers with an L-shaped corridor.
func (b *builder) carveCorridor(from, to Room) {
	x1, y1 := from.Center()
	x2, y2 := to.Center()

	// Randomly choose to go horizontal-then-vertical or vertical-then-horizontal
	if b.rng.Intn(2) == 0 {
		b.carveHorizontalTunnel(x1, x2, y1)
		b.carveVerticalTunnel(y1, y2, x2)
	} else {
		b.carveVerticalTunnel(y1, y2, x1)
		b.carveHorizontalTunnel(x1, x2, y2)
	}
}

// carveHorizontalTunnel carves a horizontal tunnel.
func (b *builder) carveHorizontalTunnel(x1, x2, y int) {
	if x1 > x2 {
		x1, x2 = x2, x1
	}
	for x := x1; x <= x2; x++ {
		b.carve(x, y)
	}
}

// carveVerticalTunnel carves a vertical tunnel.
func (b *builder) carveVerticalTunnel(y1, y2, x int) {
	if y1 > y2 {
		y1, y2 = y2, y1
	}
	for y := y1; y <= y2; y++ {
		b.carve(x, y)
	}
}

// carve turns an interior tile into floor. The outer ring always stays wall.
func (b *builder) carve(x, y int) {
	if x > 0 && x < b.m.Width-1 && y > 0 && y < b.m.Height-1 {
		b.m.SetTile(x, y, TileFloor)
	}
}
