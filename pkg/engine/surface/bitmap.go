package surface

import (
	"image"
	"image/color"
)

// Palette maps Color values to image colours.
var Palette = color.Palette{color.Black, color.White}

// Bitmap is a Surface backed by a paletted image. It is the frame every
// frontend presents.
type Bitmap struct {
	img *image.Paletted
}

// NewBitmap allocates a black w x h bitmap.
func NewBitmap(w, h int) *Bitmap {
	return &Bitmap{img: image.NewPaletted(image.Rect(0, 0, w, h), Palette)}
}

// Image exposes the underlying image for encoders and uploads.
func (b *Bitmap) Image() *image.Paletted {
	return b.img
}

func (b *Bitmap) Bounds() image.Rectangle {
	return b.img.Rect
}

// At returns the colour at (x, y); outside the bounds reads Black.
func (b *Bitmap) At(x, y int) Color {
	if !(image.Point{x, y}).In(b.img.Rect) {
		return Black
	}
	return Color(b.img.ColorIndexAt(x, y))
}

// Clear fills the whole bitmap with c.
func (b *Bitmap) Clear(c Color) {
	for i := range b.img.Pix {
		b.img.Pix[i] = uint8(c)
	}
}

func (b *Bitmap) Plot(x, y int, c Color) {
	if !(image.Point{x, y}).In(b.img.Rect) {
		return
	}
	b.img.SetColorIndex(x, y, uint8(c))
}

func (b *Bitmap) FillRect(r image.Rectangle, radius int, corners Corners, c Color) {
	r = r.Canon()
	if r.Empty() {
		return
	}
	if maxR := min(r.Dx(), r.Dy()) / 2; radius > maxR {
		radius = maxR
	}
	if radius <= 0 {
		corners = CornersNone
	}

	clip := r.Intersect(b.img.Rect)
	for y := clip.Min.Y; y < clip.Max.Y; y++ {
		for x := clip.Min.X; x < clip.Max.X; x++ {
			if corners != CornersNone && cutByCorner(r, radius, corners, x, y) {
				continue
			}
			b.img.SetColorIndex(x, y, uint8(c))
		}
	}
}

// cutByCorner reports whether (x, y) falls outside a rounded corner.
func cutByCorner(r image.Rectangle, radius int, corners Corners, x, y int) bool {
	var cx, cy int
	switch {
	case corners&CornerTopLeft != 0 && x < r.Min.X+radius && y < r.Min.Y+radius:
		cx, cy = r.Min.X+radius, r.Min.Y+radius
	case corners&CornerTopRight != 0 && x >= r.Max.X-radius && y < r.Min.Y+radius:
		cx, cy = r.Max.X-radius, r.Min.Y+radius
	case corners&CornerBottomLeft != 0 && x < r.Min.X+radius && y >= r.Max.Y-radius:
		cx, cy = r.Min.X+radius, r.Max.Y-radius
	case corners&CornerBottomRight != 0 && x >= r.Max.X-radius && y >= r.Max.Y-radius:
		cx, cy = r.Max.X-radius, r.Max.Y-radius
	default:
		return false
	}
	// Compare pixel centres in doubled coordinates to stay in integers.
	dx := 2*x + 1 - 2*cx
	dy := 2*y + 1 - 2*cy
	return dx*dx+dy*dy > 4*radius*radius
}

func (b *Bitmap) FillCircle(center image.Point, radius int, c Color) {
	if radius < 0 {
		return
	}
	for y := center.Y - radius; y <= center.Y+radius; y++ {
		for x := center.X - radius; x <= center.X+radius; x++ {
			dx, dy := x-center.X, y-center.Y
			if dx*dx+dy*dy <= radius*radius {
				b.Plot(x, y, c)
			}
		}
	}
}

// Line draws a one-pixel Bresenham line including both end points.
func (b *Bitmap) Line(from, to image.Point, c Color) {
	dx := abs(to.X - from.X)
	dy := -abs(to.Y - from.Y)
	sx, sy := 1, 1
	if from.X > to.X {
		sx = -1
	}
	if from.Y > to.Y {
		sy = -1
	}
	e := dx + dy
	x, y := from.X, from.Y
	for {
		b.Plot(x, y, c)
		if x == to.X && y == to.Y {
			return
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			x += sx
		}
		if e2 <= dx {
			e += dx
			y += sy
		}
	}
}

func (b *Bitmap) Invert(r image.Rectangle) {
	r = r.Intersect(b.img.Rect)
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			i := b.img.PixOffset(x, y)
			b.img.Pix[i] ^= 1
		}
	}
}

// Count returns how many pixels inside r have colour c.
func (b *Bitmap) Count(r image.Rectangle, c Color) int {
	r = r.Intersect(b.img.Rect)
	n := 0
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			if b.At(x, y) == c {
				n++
			}
		}
	}
	return n
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
