package world

import "fmt"

// Position is an integer grid coordinate.
type Position struct {
	X, Y int
}

// InvalidPosition is returned by searches that found nothing. It is never
// inside any grid.
var InvalidPosition = Position{X: -1, Y: -1}

// Pos is shorthand for Position{x, y}.
func Pos(x, y int) Position {
	return Position{X: x, Y: y}
}

// IsValid reports whether p is not the InvalidPosition sentinel.
func (p Position) IsValid() bool {
	return p != InvalidPosition
}

// Step returns the position distance cells away in dir. The result may lie
// outside any grid; callers bounds-check through their grid.
func (p Position) Step(dir Direction, distance int) Position {
	dx, dy := dir.Delta()
	return Position{X: p.X + dx*distance, Y: p.Y + dy*distance}
}

// Touching reports whether q is orthogonally adjacent to p.
func (p Position) Touching(q Position) bool {
	dx, dy := abs(p.X-q.X), abs(p.Y-q.Y)
	return (dx == 0 && dy == 1) || (dy == 0 && dx == 1)
}

// Manhattan returns the taxicab distance between p and q.
func (p Position) Manhattan(q Position) int {
	return abs(p.X-q.X) + abs(p.Y-q.Y)
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
