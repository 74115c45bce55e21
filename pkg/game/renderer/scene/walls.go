package scene

import (
	"image"

	"stonecrawl/pkg/engine/surface"
	"stonecrawl/pkg/engine/world"
	"stonecrawl/pkg/game/quest"
)

// drawCellWalls draws the back, left and right walls of the open cell at
// depth and slot, with the entrance cut out where the player can see it.
func (r *Renderer) drawCellWalls(s surface.Surface, d *quest.Dungeon, cell world.Position, depth, slot int) {
	w := d.World
	facing := w.Player.Facing
	wall := r.table.Wall(depth, slot)
	left, right := wall.Min.X, wall.Max.X
	top, bottom := wall.Min.Y, wall.Max.Y
	if bottom-top < MinWallHeight {
		return
	}

	atStart := cell == d.Start
	exitY := (right - left) / 4
	ahead := cell.Step(facing, 1)

	backDrawn := false
	if w.CellType(ahead).Opaque() {
		surface.DrawShadedQuad(s, surface.Quad{
			UpperLeft:  image.Pt(left, top),
			LowerLeft:  image.Pt(left, bottom),
			UpperRight: image.Pt(right, top),
			LowerRight: image.Pt(right, bottom),
		}, image.Pt(left, top), r.depth)
		s.Line(image.Pt(left, top), image.Pt(right, top), surface.Black)
		s.Line(image.Pt(left, bottom), image.Pt(right, bottom), surface.Black)
		// The second row of walls leaves a stray dithered line under its
		// bottom edge.
		if top == r.table.Wall(1, 0).Min.Y {
			s.Line(image.Pt(left, bottom+1), image.Pt(right, bottom+1), surface.Black)
		}

		if atStart && facing == d.Entrance {
			exitX := (right - left) / 3
			s.FillRect(rect(left+exitX, top+exitY, exitX, bottom-top-exitY), 0, surface.CornersNone, surface.Black)
		}
		backDrawn = true
	}

	// Side walls span from this depth's back wall out to the previous
	// depth's, or to the frame edge for the nearest row.
	outerLeft, outerRight, yOff := 0, FrameWidth-1, top
	if depth > 0 {
		prev := r.table.Wall(depth-1, slot)
		outerLeft, outerRight = prev.Min.X, prev.Max.X
		yOff = top - prev.Min.Y
	}

	leftDrawn := false
	if slot <= 0 && w.CellType(cell.Step(facing.Left(), 1)).Opaque() {
		q := surface.Quad{
			UpperLeft:  image.Pt(outerLeft, top-yOff),
			LowerLeft:  image.Pt(outerLeft, bottom+yOff),
			UpperRight: image.Pt(left, top),
			LowerRight: image.Pt(left, bottom),
		}
		surface.DrawShadedQuad(s, q, q.UpperLeft, r.depth)
		s.Line(q.UpperLeft, q.UpperRight, surface.Black)
		s.Line(q.LowerLeft, q.LowerRight, surface.Black)

		if atStart && facing.Left() == d.Entrance {
			exitX := (left - outerLeft) / 3
			x0, topY, botY := outerLeft+exitX, top-yOff/3+exitY, bottom+yOff/3
			if depth == 0 {
				x0, topY, botY = 0, top-(yOff-4)+exitY, bottom+yOff
			}
			surface.FillQuad(s, surface.Quad{
				UpperLeft:  image.Pt(x0, topY),
				LowerLeft:  image.Pt(x0, botY),
				UpperRight: image.Pt(left-exitX, top+exitY),
				LowerRight: image.Pt(left-exitX, bottom+3),
			}, surface.Black)
		}
		leftDrawn = true
	}

	rightDrawn := false
	if slot >= 0 && w.CellType(cell.Step(facing.Right(), 1)).Opaque() {
		q := surface.Quad{
			UpperLeft:  image.Pt(right, top),
			LowerLeft:  image.Pt(right, bottom),
			UpperRight: image.Pt(outerRight, top-yOff),
			LowerRight: image.Pt(outerRight, bottom+yOff),
		}
		surface.DrawShadedQuad(s, q, q.UpperLeft, r.depth)
		s.Line(q.UpperLeft, q.UpperRight, surface.Black)
		s.Line(q.LowerLeft, q.LowerRight, surface.Black)

		if atStart && facing.Right() == d.Entrance {
			exitX := (outerRight - right) / 3
			x1, topY, botY := outerRight-exitX, top-yOff/3+exitY, bottom+yOff/3
			if depth == 0 {
				x1, topY, botY = FrameWidth, top-(yOff-5)+exitY, bottom+yOff
			}
			surface.FillQuad(s, surface.Quad{
				UpperLeft:  image.Pt(right+exitX, top+exitY),
				LowerLeft:  image.Pt(right+exitX, bottom+4),
				UpperRight: image.Pt(x1, topY),
				LowerRight: image.Pt(x1, botY),
			}, surface.Black)
		}
		rightDrawn = true
	}

	// Corner edges where a drawn wall meets an opening.
	aheadLeftOpen := !w.CellType(ahead.Step(facing.Left(), 1)).Opaque()
	aheadRightOpen := !w.CellType(ahead.Step(facing.Right(), 1)).Opaque()
	if (backDrawn && (leftDrawn || aheadLeftOpen)) || (leftDrawn && aheadLeftOpen) {
		s.Line(image.Pt(left, top), image.Pt(left, bottom), surface.Black)
	}
	if (backDrawn && (rightDrawn || aheadRightOpen)) || (rightDrawn && aheadRightOpen) {
		s.Line(image.Pt(right, bottom), image.Pt(right, top), surface.Black)
	}
}
