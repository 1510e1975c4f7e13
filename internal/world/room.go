package world

// Room is an axis-aligned rectangle. Its edge is wall; the floor is the
// interior X1+1..X2, Y1+1..Y2.
type Room struct {
	X1, Y1 int
	X2, Y2 int
}

// NewRoom creates a room with its top-left corner at (x, y).
func NewRoom(x, y, width, height int) Room {
	return Room{X1: x, Y1: y, X2: x + width, Y2: y + height}
}

// Center returns the center coordinates of the room.
func (r Room) Center() (int, int) {
	return (r.X1 + r.X2) / 2, (r.Y1 + r.Y2) / 2
}

// Contains returns true if the given point is on the room's floor.
func (r Room) Contains(x, y int) bool {
	return x > r.X1 && x <= r.X2 && y > r.Y1 && y <= r.Y2
}

// Intersects returns true if this room overlaps or touches another room.
// The test is inclusive, so the floors of two accepted rooms are always
// separated by at least one wall.
func (r Room) Intersects(other Room) bool {
	return r.X1 <= other.X2 && r.X2 >= other.X1 &&
		r.Y1 <= other.Y2 && r.Y2 >= other.Y1
}

// Width returns the horizontal extent of the rectangle.
func (r Room) Width() int { return r.X2 - r.X1 }

// Height returns the vertical extent of the rectangle.
func (r Room) Height() int { return r.Y2 - r.Y1 }
