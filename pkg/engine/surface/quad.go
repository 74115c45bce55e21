package surface

import "image"

// Quad is a quadrilateral whose left and right edges are vertical. The top
// and bottom edges mirror each other: the top edge's slope is taken from
// UpperLeft -> UpperRight and the bottom edge runs with the opposite slope.
type Quad struct {
	UpperLeft, LowerLeft, UpperRight, LowerRight image.Point
}

// slope is the top edge's vertical change per column.
func (q Quad) slope() float64 {
	w := q.UpperRight.X - q.UpperLeft.X
	if w == 0 {
		return 0
	}
	return float64(q.UpperRight.Y-q.UpperLeft.Y) / float64(w)
}

// DrawShadedQuad fills q column by column with an ordered dither. Each
// column's stride grows with shadingRef.Y plus the column's vertical offset,
// divided by depth and rounded, so surfaces further away read darker.
// Columns right of the surface are skipped.
func DrawShadedQuad(s Surface, q Quad, shadingRef image.Point, depth int) {
	if depth <= 0 {
		depth = 1
	}
	g := q.slope()
	maxX := s.Bounds().Max.X

	for i := q.UpperLeft.X; i <= q.UpperRight.X && i < maxX; i++ {
		off := float64(i-q.UpperLeft.X) * g
		v := float64(shadingRef.Y) + off

		stride := 1 + int(v/float64(depth))
		if int(v)%depth >= depth/2+depth%2 {
			stride++
		}
		if stride < 1 {
			stride = 1
		}
		half := stride/2 + stride%2
		phase := 0
		if i%2 != 0 {
			phase = half
		}

		bottom := float64(q.LowerLeft.Y) - off
		for j := int(float64(q.UpperLeft.Y) + off); float64(j) < bottom; j++ {
			c := Black
			if (j+int(off)+phase)%stride == 0 {
				c = White
			}
			s.Plot(i, j, c)
		}
	}
}

// FillQuad fills q with a solid colour using one vertical line per column.
func FillQuad(s Surface, q Quad, c Color) {
	g := q.slope()
	maxX := s.Bounds().Max.X

	for i := q.UpperLeft.X; i <= q.UpperRight.X && i < maxX; i++ {
		off := float64(i-q.UpperLeft.X) * g
		top := int(float64(q.UpperLeft.Y) + off)
		bottom := int(float64(q.LowerLeft.Y) - off)
		s.Line(image.Pt(i, top), image.Pt(i, bottom), c)
	}
}
