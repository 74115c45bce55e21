package world

import "math/rand"

// Direction represents a cardinal direction on the grid
type Direction int

// Direction constants, in clockwise order
const (
	North Direction = iota
	East
	South
	West
)

// NumDirections is the number of cardinal directions
const NumDirections = 4

// AllDirections returns all valid directions for iteration
func AllDirections() []Direction {
	return []Direction{North, East, South, West}
}

// RandomDirection picks a direction uniformly.
func RandomDirection(rng *rand.Rand) Direction {
	return Direction(rng.Intn(NumDirections))
}

// String returns the string representation of a direction
func (d Direction) String() string {
	switch d {
	case North:
		return "North"
	case East:
		return "East"
	case South:
		return "South"
	case West:
		return "West"
	default:
		return "Unknown"
	}
}

// IsValid returns true if the direction is a valid cardinal direction
func (d Direction) IsValid() bool {
	return d >= North && d <= West
}

// Opposite returns the opposite direction
func (d Direction) Opposite() Direction {
	if !d.IsValid() {
		return d
	}
	return (d + 2) % NumDirections
}

// Left returns the direction after a quarter turn counter-clockwise
// (North -> West -> South -> East -> North).
func (d Direction) Left() Direction {
	if !d.IsValid() {
		return d
	}
	return (d + NumDirections - 1) % NumDirections
}

// Right returns the direction after a quarter turn clockwise.
func (d Direction) Right() Direction {
	if !d.IsValid() {
		return d
	}
	return (d + 1) % NumDirections
}

// Delta returns the x and y offsets for one step in this direction.
// y grows southward.
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case North:
		return 0, -1
	case East:
		return 1, 0
	case South:
		return 0, 1
	case West:
		return -1, 0
	default:
		return 0, 0
	}
}

// Vertical reports whether the direction runs along the y axis.
func (d Direction) Vertical() bool {
	return d == North || d == South
}
