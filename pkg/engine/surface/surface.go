// Package surface defines the two-colour drawing target the scene is
// rendered onto, an in-memory bitmap implementation, and the shaded
// quadrilateral primitives built on top of it.
package surface

import "image"

// Color is one of the two palette entries.
type Color uint8

const (
	Black Color = iota
	White
)

// Inverse returns the other palette entry.
func (c Color) Inverse() Color {
	if c == Black {
		return White
	}
	return Black
}

// Corners selects which corners of a rectangle are rounded.
type Corners uint8

const (
	CornerTopLeft Corners = 1 << iota
	CornerTopRight
	CornerBottomLeft
	CornerBottomRight

	CornersNone   Corners = 0
	CornersTop            = CornerTopLeft | CornerTopRight
	CornersBottom         = CornerBottomLeft | CornerBottomRight
	CornersLeft           = CornerTopLeft | CornerBottomLeft
	CornersRight          = CornerTopRight | CornerBottomRight
	CornersAll            = CornersTop | CornersBottom
)

// Surface is the drawing target. Implementations clip silently; drawing
// outside Bounds is never an error.
type Surface interface {
	Bounds() image.Rectangle
	Plot(x, y int, c Color)
	FillRect(r image.Rectangle, radius int, corners Corners, c Color)
	FillCircle(center image.Point, radius int, c Color)
	Line(from, to image.Point, c Color)
}

// Inverter is implemented by surfaces that can swap the palette of a region
// in place.
type Inverter interface {
	Invert(r image.Rectangle)
}
