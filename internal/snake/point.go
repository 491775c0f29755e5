// Package snake implements the snake entity: its segment chain, heading,
// alive flag and score, plus the per-tick move with wall, self and
// cross-snake collision detection.
// It has no dependencies on rendering, input or timing so it can be driven
// by the arena, the attract-mode scripts and tests alike.
package snake

import "fmt"

// BoardSize is the width and height of the square board in cells.
// The engine and every food placement routine must agree on it.
const BoardSize = 20

// Point is a board cell, 0-indexed from the top-left corner.
type Point struct {
	X, Y int
}

// Add returns the point shifted one step in the given direction.
func (p Point) Add(d Direction) Point {
	return Point{X: p.X + d.DX, Y: p.Y + d.DY}
}

// String implements fmt.Stringer.
func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// InBounds reports whether p lies inside [0, BoardSize) on both axes.
func InBounds(p Point) bool {
	return p.X >= 0 && p.X < BoardSize && p.Y >= 0 && p.Y < BoardSize
}

// Direction is a unit step on the grid. Only the four cardinal values are
// meaningful; the entity does not validate magnitude.
type Direction struct {
	DX, DY int
}

// Cardinal directions. Y grows downwards.
var (
	Up    = Direction{DX: 0, DY: -1}
	Down  = Direction{DX: 0, DY: 1}
	Left  = Direction{DX: -1, DY: 0}
	Right = Direction{DX: 1, DY: 0}
)

// Directions lists the cardinal directions in a stable order.
var Directions = [4]Direction{Up, Down, Left, Right}

// Opposite returns the 180° reversal of d.
func (d Direction) Opposite() Direction {
	return Direction{DX: -d.DX, DY: -d.DY}
}

// IsReverseOf reports whether d is the exact negation of cur on the axis
// cur moves along.
func (d Direction) IsReverseOf(cur Direction) bool {
	return (cur.DX != 0 && d.DX == -cur.DX) || (cur.DY != 0 && d.DY == -cur.DY)
}

// IsUnit reports whether d is one of the four cardinal directions.
func (d Direction) IsUnit() bool {
	return (d.DX == 0) != (d.DY == 0) && d.DX*d.DX+d.DY*d.DY == 1
}

// String returns a human-readable name for the direction.
func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return fmt.Sprintf("(%d,%d)", d.DX, d.DY)
	}
}

// ParseDirection converts a name ("up", "down", "left", "right") to a Direction.
func ParseDirection(s string) (Direction, bool) {
	switch s {
	case "up":
		return Up, true
	case "down":
		return Down, true
	case "left":
		return Left, true
	case "right":
		return Right, true
	}
	return Direction{}, false
}
