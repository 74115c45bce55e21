package surface

import (
	"image"
	"testing"
)

func TestBitmap_PlotClips(t *testing.T) {
	b := NewBitmap(4, 4)
	b.Plot(-1, 0, White)
	b.Plot(4, 4, White)
	b.Plot(2, 1, White)
	if got := b.Count(b.Bounds(), White); got != 1 {
		t.Errorf("white pixels = %d, want 1", got)
	}
	if b.At(2, 1) != White {
		t.Error("At(2,1) should be white")
	}
	if b.At(99, 99) != Black {
		t.Error("At outside bounds should read black")
	}
}

func TestBitmap_FillRectSquare(t *testing.T) {
	b := NewBitmap(10, 10)
	b.FillRect(image.Rect(2, 2, 6, 5), 0, CornersAll, White)
	if got := b.Count(b.Bounds(), White); got != 12 {
		t.Errorf("white pixels = %d, want 12", got)
	}
}

func TestBitmap_FillRectRoundedCorners(t *testing.T) {
	b := NewBitmap(20, 20)
	r := image.Rect(0, 0, 10, 10)
	b.FillRect(r, 4, CornersTop, White)

	if b.At(0, 0) != Black {
		t.Error("top-left corner pixel should be cut")
	}
	if b.At(9, 0) != Black {
		t.Error("top-right corner pixel should be cut")
	}
	if b.At(0, 9) != White || b.At(9, 9) != White {
		t.Error("bottom corners should stay square")
	}
	if b.At(5, 5) != White {
		t.Error("centre should be filled")
	}
}

func TestBitmap_FillCircle(t *testing.T) {
	b := NewBitmap(11, 11)
	b.FillCircle(image.Pt(5, 5), 3, White)
	if b.At(5, 5) != White || b.At(5, 2) != White || b.At(8, 5) != White {
		t.Error("circle centre and axis extremes should be filled")
	}
	if b.At(2, 2) != Black {
		t.Error("circle should not cover its bounding box corner")
	}
}

func TestBitmap_LineEndpoints(t *testing.T) {
	b := NewBitmap(10, 10)
	b.Line(image.Pt(1, 1), image.Pt(8, 4), White)
	if b.At(1, 1) != White || b.At(8, 4) != White {
		t.Error("line should include both end points")
	}
	if got := b.Count(b.Bounds(), White); got != 8 {
		t.Errorf("line pixels = %d, want 8", got)
	}
}

func TestBitmap_InvertTwiceRestores(t *testing.T) {
	b := NewBitmap(6, 6)
	b.FillRect(image.Rect(0, 0, 3, 6), 0, CornersNone, White)
	b.Invert(b.Bounds())
	if b.At(0, 0) != Black || b.At(5, 5) != White {
		t.Error("Invert should swap the palette")
	}
	b.Invert(b.Bounds())
	if got := b.Count(b.Bounds(), White); got != 18 {
		t.Errorf("white pixels after double invert = %d, want 18", got)
	}
}

func TestDrawShadedQuad_StaysInsideQuad(t *testing.T) {
	b := NewBitmap(40, 40)
	b.Clear(White)
	q := Quad{
		UpperLeft:  image.Pt(10, 10),
		LowerLeft:  image.Pt(10, 30),
		UpperRight: image.Pt(20, 15),
		LowerRight: image.Pt(20, 25),
	}
	DrawShadedQuad(b, q, q.UpperLeft, 6)

	// Outside the quad nothing is touched, so it stays white.
	for _, p := range []image.Point{{9, 20}, {21, 20}, {15, 11}, {15, 29}} {
		if b.At(p.X, p.Y) != White {
			t.Errorf("pixel %v outside quad was drawn", p)
		}
	}
	// Inside, the dither leaves black between white dots.
	inside := image.Rect(10, 15, 21, 25)
	if b.Count(inside, Black) == 0 {
		t.Error("expected dithered black pixels inside the quad")
	}
	if b.Count(inside, White) == 0 {
		t.Error("expected dithered white pixels inside the quad")
	}
}

func TestDrawShadedQuad_FartherIsSparser(t *testing.T) {
	near := NewBitmap(30, 30)
	far := NewBitmap(30, 30)
	q := Quad{
		UpperLeft:  image.Pt(0, 0),
		LowerLeft:  image.Pt(0, 29),
		UpperRight: image.Pt(29, 0),
		LowerRight: image.Pt(29, 29),
	}
	DrawShadedQuad(near, q, image.Pt(0, 0), 6)
	DrawShadedQuad(far, q, image.Pt(0, 40), 6)

	n := near.Count(near.Bounds(), White)
	f := far.Count(far.Bounds(), White)
	if f >= n {
		t.Errorf("far quad white pixels = %d, near = %d; want far < near", f, n)
	}
}

func TestFillQuad_SolidAndClipped(t *testing.T) {
	b := NewBitmap(10, 10)
	q := Quad{
		UpperLeft:  image.Pt(5, 2),
		LowerLeft:  image.Pt(5, 7),
		UpperRight: image.Pt(15, 2),
		LowerRight: image.Pt(15, 7),
	}
	FillQuad(b, q, White)
	if got := b.Count(b.Bounds(), White); got != 30 {
		t.Errorf("white pixels = %d, want 30", got)
	}
}
