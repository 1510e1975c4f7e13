// Package world provides the tile grid and dungeon generation.
package world

// Tile represents a single map tile.
type Tile rune

const (
	// TileWall represents an opaque, impassable wall tile.
	TileWall Tile = '#'
	// TileFloor represents a passable floor tile.
	TileFloor Tile = '.'
)

// IsPassable returns true if the tile can be walked on.
func (t Tile) IsPassable() bool {
	return t == TileFloor
}

// IsOpaque returns true if the tile blocks line of sight.
func (t Tile) IsOpaque() bool {
	return t == TileWall
}

// Rune returns the tile's display character.
func (t Tile) Rune() rune {
	return rune(t)
}
