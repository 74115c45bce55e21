package scene

import (
	"image"
	"time"

	"stonecrawl/pkg/engine/surface"
	"stonecrawl/pkg/engine/world"
	"stonecrawl/pkg/game/quest"
	gameworld "stonecrawl/pkg/game/world"
)

// sprite holds what every figure is positioned by: the floor point it
// stands on, the drawing unit for its depth, and the back wall corner its
// shading is keyed to.
type sprite struct {
	s      surface.Surface
	floor  image.Point
	unit   int
	wallTL image.Point
	depth  int
}

// quad draws a shaded box spanning x0..x1 and y0..y1 relative to the floor
// point, shaded as if it sat off from the back wall by ref.
func (sp sprite) quad(x0, y0, x1, y1, ref int) {
	f := sp.floor
	surface.DrawShadedQuad(sp.s, surface.Quad{
		UpperLeft:  image.Pt(f.X+x0, f.Y+y0),
		LowerLeft:  image.Pt(f.X+x0, f.Y+y1),
		UpperRight: image.Pt(f.X+x1, f.Y+y0),
		LowerRight: image.Pt(f.X+x1, f.Y+y1),
	}, sp.wallTL.Add(image.Pt(ref, ref)), sp.depth)
}

// box fills a rectangle given relative to the floor point.
func (sp sprite) box(x, y, w, h, radius int, corners surface.Corners, c surface.Color) {
	sp.s.FillRect(rect(sp.floor.X+x, sp.floor.Y+y, w, h), radius, corners, c)
}

// dot fills a circle given relative to the floor point.
func (sp sprite) dot(x, y, radius int, c surface.Color) {
	sp.s.FillCircle(sp.floor.Add(image.Pt(x, y)), radius, c)
}

// drawCellContents draws the NPC, loot chest or quest objective standing in
// cell, on top of a shadow.
func (r *Renderer) drawCellContents(s surface.Surface, d *quest.Dungeon, cell world.Position, depth, slot int, now time.Time) {
	w := d.World
	c := w.CellType(cell)
	npc, hasNPC := w.NPCAt(cell)
	if !c.HasContents() && !hasNPC {
		return
	}

	width := r.table.WallWidth(depth, slot)
	unit := width / 10
	if width%10 >= 5 {
		unit++
	}
	sp := sprite{
		s:      s,
		floor:  r.table.FloorCenter(depth, slot),
		unit:   unit,
		wallTL: r.table.Wall(depth, slot).Min,
		depth:  r.depth,
	}
	u := unit

	sp.box(-4*u, -u/2, 8*u, u, u/2, surface.CornersAll, surface.Black)

	if hasNPC {
		switch npc.Kind.Silhouette() {
		case gameworld.Beast:
			sp.drawBeast(now)
		case gameworld.Amorphous:
			sp.drawAmorphous()
		default:
			sp.drawHumanoid()
		}
		return
	}

	switch {
	case c == gameworld.Captive:
		sp.drawCaptive()
	case c == gameworld.Artifact:
		sp.drawArtifact()
	default:
		if _, ok := c.Loot(); ok {
			sp.box(-2*u, -4*u, 4*u, 4*u, u/2, surface.CornersTop, surface.White)
		}
	}
}

func (sp sprite) drawCaptive() {
	u := sp.unit
	hu := u + u/2

	// legs and waist
	sp.box(-hu, -3*u, u, 3*u, 0, surface.CornersNone, surface.Black)
	sp.box(u/2, -3*u, u, 3*u, 0, surface.CornersNone, surface.Black)
	sp.box(-hu, -4*u, 3*u, u, 0, surface.CornersNone, surface.Black)

	sp.quad(-hu, -8*u, hu, -4*u, -20)

	sp.box(-2*u, -8*u, u/2, 4*u, u/4, surface.CornersLeft, surface.White)
	sp.box(hu, -8*u, u/2, 4*u, u/4, surface.CornersRight, surface.White)

	sp.box(-u/2, -10*u, u+1, 2*u, u/2, surface.CornersAll, surface.White)
	sp.quad(-u/2, -10*u, u/2, -(9*u + u/3), -10)

	sp.dot(-u/4, -9*u, u/6, surface.Black)
	sp.dot(u/4, -9*u, u/6, surface.Black)
}

// drawArtifact draws a gem resting on a plinth.
func (sp sprite) drawArtifact() {
	u := sp.unit
	sp.box(-2*u, -2*u, 4*u, 2*u, u/2, surface.CornersTop, surface.White)
	sp.dot(0, -4*u, u+u/2, surface.White)
	sp.quad(-u, -5*u, u, -3*u, 4)
}
