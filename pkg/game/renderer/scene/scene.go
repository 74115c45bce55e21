// Package scene draws the first-person view of a dungeon onto a two-colour
// surface: dithered floor and ceiling, walls of every visible cell from the
// back forward, the sprites standing in them, and the status bar.
//
// Rendering only reads the dungeon. Everything it needs to know about
// transient effects (flash, attack pose, the animation clock) comes in
// through FrameState.
package scene

import (
	"fmt"
	"image"
	"time"

	"stonecrawl/pkg/engine/perspective"
	"stonecrawl/pkg/engine/surface"
	"stonecrawl/pkg/game/quest"
	gameworld "stonecrawl/pkg/game/world"
)

// Frame geometry.
const (
	FrameWidth      = 144
	FrameHeight     = 136
	StatusBarHeight = 16
	Width           = FrameWidth
	Height          = FrameHeight + StatusBarHeight

	// MinWallHeight is the smallest back wall that is still drawn.
	MinWallHeight = StatusBarHeight
)

// FrameState carries the view's transient effects into a render.
type FrameState struct {
	// Flash inverts the whole surface.
	Flash bool
	// AttackStep is the current frame of the attack pose, 0 when idle.
	AttackStep int
	// Now drives idle animations such as the wolf's jaw.
	Now time.Time
}

// Renderer draws scenes using a precomputed projection table.
type Renderer struct {
	table perspective.Table
	depth int
}

// New builds the projection table for the standard frame.
func New() (*Renderer, error) {
	t, err := perspective.Build(FrameWidth, FrameHeight, gameworld.MaxVisibilityDepth)
	if err != nil {
		return nil, fmt.Errorf("scene: %w", err)
	}
	return &Renderer{table: t, depth: gameworld.MaxVisibilityDepth}, nil
}

// Table exposes the projection the renderer draws with.
func (r *Renderer) Table() perspective.Table {
	return r.table
}

// NewSurface allocates a bitmap the size of a full frame.
func NewSurface() *surface.Bitmap {
	return surface.NewBitmap(Width, Height)
}

// Render draws the view from player's position in d. With no dungeon only
// the status bar is drawn.
func (r *Renderer) Render(s surface.Surface, d *quest.Dungeon, player *gameworld.Player, fs FrameState) {
	s.FillRect(s.Bounds(), 0, surface.CornersNone, surface.Black)

	if d != nil {
		r.drawFloorAndCeiling(s)
		r.drawCells(s, d, fs.Now)
	}
	if fs.AttackStep > 0 {
		drawAttack(s, fs.AttackStep)
	}
	if player != nil {
		drawStatusBar(s, player)
	}

	if fs.Flash {
		if inv, ok := s.(surface.Inverter); ok {
			inv.Invert(s.Bounds())
		}
	}
}

// drawCells walks the visible cells from the deepest row forward so nearer
// walls overdraw farther ones.
func (r *Renderer) drawCells(s surface.Surface, d *quest.Dungeon, now time.Time) {
	w := d.World
	p := w.Player
	left, right := p.Facing.Left(), p.Facing.Right()

	for depth := r.table.Depths() - 1; depth >= 0; depth-- {
		cell := w.CellFartherAway(p.Position, p.Facing, depth)
		if !gameworld.InBounds(cell) {
			continue
		}
		if !w.CellType(cell).Opaque() {
			r.drawCellWalls(s, d, cell, depth, 0)
			r.drawCellContents(s, d, cell, depth, 0, now)
		}

		for i := depth + 1; i > 0; i-- {
			if side := w.CellFartherAway(cell, left, i); !w.CellType(side).Opaque() {
				r.drawCellWalls(s, d, side, depth, -i)
				r.drawCellContents(s, d, side, depth, -i, now)
			}
			if side := w.CellFartherAway(cell, right, i); !w.CellType(side).Opaque() {
				r.drawCellWalls(s, d, side, depth, i)
				r.drawCellContents(s, d, side, depth, i, now)
			}
		}
	}
}

// rect converts an origin and size into an image.Rectangle.
func rect(x, y, w, h int) image.Rectangle {
	return image.Rect(x, y, x+w, y+h)
}
