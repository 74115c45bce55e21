// Package perspective precomputes the screen-space rectangles of every
// visible cell in a flat-walled tunnel view. Foreshortening is linear: each
// step deeper insets the back wall by a shrinking constant, there is no
// division by distance.
package perspective

import (
	"errors"
	"fmt"
	"image"
)

const (
	// FirstWallOffset is the inset of the nearest back wall from the
	// frame edges.
	FirstWallOffset = 16
	// PerspectiveModifier is how much smaller each successive inset step is.
	PerspectiveModifier = 2
)

// ErrGeometry is returned when the requested frame cannot hold the tunnel.
var ErrGeometry = errors.New("perspective: invalid geometry")

// Table holds, for each depth and lateral slot, the top-left and
// bottom-right corners of the cell's back wall. Corners are points, both
// inclusive; a rectangle is stored with Min as top-left and Max as
// bottom-right.
type Table struct {
	width, height int
	maxDepth      int
	walls         [][]image.Rectangle // [depth][slot+maxDepth-1]
}

// Build computes the projection table for a frame of width x height pixels
// and a visibility depth of maxDepth cells. Depths 0..maxDepth-2 and slots
// -(maxDepth-1)..maxDepth-1 are populated.
func Build(width, height, maxDepth int) (Table, error) {
	if maxDepth < 2 {
		return Table{}, fmt.Errorf("%w: max depth %d below 2", ErrGeometry, maxDepth)
	}
	if width <= 0 || height <= 0 {
		return Table{}, fmt.Errorf("%w: frame %dx%d", ErrGeometry, width, height)
	}

	t := Table{width: width, height: height, maxDepth: maxDepth}
	center := maxDepth - 1
	slots := 2*center + 1
	t.walls = make([][]image.Rectangle, maxDepth-1)

	var prev image.Point
	for d := range t.walls {
		inset := FirstWallOffset - d*PerspectiveModifier
		tl := image.Pt(inset, inset).Add(prev)
		br := image.Pt(width-tl.X, height-tl.Y)
		if br.X <= tl.X || br.Y <= tl.Y || inset <= 0 {
			return Table{}, fmt.Errorf("%w: depth %d collapses (%v..%v)", ErrGeometry, d, tl, br)
		}
		prev = tl

		row := make([]image.Rectangle, slots)
		w := br.X - tl.X
		for j := -center; j <= center; j++ {
			shift := image.Pt(w*j, 0)
			row[j+center] = image.Rectangle{Min: tl.Add(shift), Max: br.Add(shift)}
		}
		t.walls[d] = row
	}

	return t, nil
}

// Width and Height of the frame the table was built for.
func (t Table) Width() int  { return t.width }
func (t Table) Height() int { return t.height }

// MaxDepth is the visibility depth; valid depths are 0..MaxDepth()-2.
func (t Table) MaxDepth() int { return t.maxDepth }

// Depths is the number of populated depths.
func (t Table) Depths() int { return len(t.walls) }

// MaxSlot is the largest lateral offset in either direction.
func (t Table) MaxSlot() int { return t.maxDepth - 1 }

// Wall returns the back wall corners at depth and lateral slot (negative is
// left). Out-of-range arguments return the zero rectangle.
func (t Table) Wall(depth, slot int) image.Rectangle {
	if depth < 0 || depth >= len(t.walls) || slot < -t.MaxSlot() || slot > t.MaxSlot() {
		return image.Rectangle{}
	}
	return t.walls[depth][slot+t.MaxSlot()]
}

// WallWidth is the horizontal extent of the back wall at depth and slot.
func (t Table) WallWidth(depth, slot int) int {
	r := t.Wall(depth, slot)
	return r.Max.X - r.Min.X
}

// FloorCenter returns the midpoint of the floor of the cell at depth and
// slot, halfway between its back wall and the previous depth's. At depth 0
// side cells anchor to points beyond the frame edge.
func (t Table) FloorCenter(depth, slot int) image.Point {
	wall := t.Wall(depth, slot)
	mid1 := (wall.Min.X + wall.Max.X) / 2

	var mid2, y int
	if depth == 0 {
		switch {
		case slot < 0:
			mid2 = -t.width / 2
		case slot > 0:
			mid2 = t.width * 3 / 2
		default:
			mid2 = mid1
		}
		y = t.height
	} else {
		prev := t.Wall(depth-1, slot)
		mid2 = (prev.Min.X + prev.Max.X) / 2
		y = (wall.Max.Y + prev.Max.Y) / 2
	}

	return image.Pt((mid1+mid2)/2, y)
}

// CeilingLimit returns the row the floor and ceiling dithering stops at:
// the top edge of the deepest back wall whose top is at least
// minWallHeight/2 above the horizon.
func (t Table) CeilingLimit(minWallHeight int) int {
	limit := t.height/2 - minWallHeight/2
	for d := len(t.walls) - 1; d >= 0; d-- {
		if y := t.Wall(d, 0).Min.Y; y <= limit {
			return y
		}
	}
	return t.Wall(0, 0).Min.Y
}
