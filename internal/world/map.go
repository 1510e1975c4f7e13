package world

import (
	"fmt"

	"github.com/samdwyer/dungeoncrawl/internal/ecs"
)

// Map is the dungeon grid. Tiles and Rooms are fixed after generation; the
// Revealed, Visible and Blocked layers and TileContent change every tick.
type Map struct {
	Width  int
	Height int
	Tiles  []Tile
	Rooms  []Room

	Revealed    []bool // Ever seen by the player
	Visible     []bool // Seen by the player this tick
	Blocked     []bool // Wall, or floor under a blocking actor
	TileContent [][]ecs.EntityID
}

// NewMap creates a map filled with walls.
func NewMap(width, height int) *Map {
	if width <= 0 || height <= 0 {
		panic(fmt.Sprintf("world: invalid map size %dx%d", width, height))
	}
	n := width * height
	m := &Map{
		Width:       width,
		Height:      height,
		Tiles:       make([]Tile, n),
		Rooms:       make([]Room, 0),
		Revealed:    make([]bool, n),
		Visible:     make([]bool, n),
		Blocked:     make([]bool, n),
		TileContent: make([][]ecs.EntityID, n),
	}
	for i := range m.Tiles {
		m.Tiles[i] = TileWall
	}
	m.PopulateBlocked()
	return m
}

// InBounds reports whether (x, y) lies on the map.
func (m *Map) InBounds(x, y int) bool {
	return x >= 0 && x < m.Width && y >= 0 && y < m.Height
}

// Index converts a coordinate to a tile index. Out-of-bounds coordinates are
// a caller bug and panic rather than being clamped.
func (m *Map) Index(x, y int) int {
	if !m.InBounds(x, y) {
		panic(fmt.Sprintf("world: index (%d,%d) outside %dx%d map", x, y, m.Width, m.Height))
	}
	return y*m.Width + x
}

// Coords converts a tile index back to its coordinate.
func (m *Map) Coords(idx int) (int, int) {
	return idx % m.Width, idx / m.Width
}

// TileAt returns the tile at the given position, or a wall when off-map.
func (m *Map) TileAt(x, y int) Tile {
	if !m.InBounds(x, y) {
		return TileWall
	}
	return m.Tiles[m.Index(x, y)]
}

// SetTile changes the tile at the given position.
func (m *Map) SetTile(x, y int, t Tile) {
	m.Tiles[m.Index(x, y)] = t
}

// IsBlocked reports whether the tile at idx rejects entry this tick.
func (m *Map) IsBlocked(idx int) bool {
	return m.Blocked[idx]
}

// SetBlocked overrides the blocked flag of a single tile.
func (m *Map) SetBlocked(idx int, blocked bool) {
	m.Blocked[idx] = blocked
}

// IsExitValid reports whether an actor may step onto (x, y).
func (m *Map) IsExitValid(x, y int) bool {
	if !m.InBounds(x, y) {
		return false
	}
	idx := m.Index(x, y)
	return m.Tiles[idx].IsPassable() && !m.Blocked[idx]
}

// IsOpaque reports whether (x, y) blocks line of sight. Off-map counts as opaque.
func (m *Map) IsOpaque(x, y int) bool {
	if !m.InBounds(x, y) {
		return true
	}
	return m.Tiles[m.Index(x, y)].IsOpaque()
}

// IsVisible reports whether the player sees (x, y) this tick.
func (m *Map) IsVisible(x, y int) bool {
	return m.InBounds(x, y) && m.Visible[m.Index(x, y)]
}

// IsRevealed reports whether the player has ever seen (x, y).
func (m *Map) IsRevealed(x, y int) bool {
	return m.InBounds(x, y) && m.Revealed[m.Index(x, y)]
}

// ClearVisible resets the per-tick visible layer.
func (m *Map) ClearVisible() {
	clear(m.Visible)
}

// PopulateBlocked resets the blocked layer to exactly the wall tiles.
func (m *Map) PopulateBlocked() {
	for i, t := range m.Tiles {
		m.Blocked[i] = !t.IsPassable()
	}
}

// ClearContentIndex empties every tile's occupant list.
func (m *Map) ClearContentIndex() {
	for i := range m.TileContent {
		m.TileContent[i] = m.TileContent[i][:0]
	}
}

// AddContent records id as standing on tile idx.
func (m *Map) AddContent(idx int, id ecs.EntityID) {
	m.TileContent[idx] = append(m.TileContent[idx], id)
}

// ContentAt returns the actors standing on (x, y), nil when off-map.
func (m *Map) ContentAt(x, y int) []ecs.EntityID {
	if !m.InBounds(x, y) {
		return nil
	}
	return m.TileContent[m.Index(x, y)]
}

// RoomIndexAt returns the index of the room containing the position, or -1 if not in a room.
func (m *Map) RoomIndexAt(x, y int) int {
	for i, room := range m.Rooms {
		if room.Contains(x, y) {
			return i
		}
	}
	return -1
}
