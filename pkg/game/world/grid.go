package world

import (
	"stonecrawl/pkg/engine/world"
)

// Grid dimensions. Both are odd so the map has a centre cell.
const (
	Width  = 15
	Height = Width
)

// MaxVisibilityDepth is how many cells ahead the player can see. NPCs spawn
// just beyond it.
const MaxVisibilityDepth = 6

// Grid is the fixed-size cell array of one dungeon. Reads outside the grid
// return Solid; writes outside it are dropped.
type Grid struct {
	cells [Width][Height]Cell
}

// NewGrid returns a grid with every cell set to fill.
func NewGrid(fill Cell) *Grid {
	g := &Grid{}
	g.Fill(fill)
	return g
}

// InBounds reports whether p lies inside the grid.
func InBounds(p world.Position) bool {
	return p.X >= 0 && p.X < Width && p.Y >= 0 && p.Y < Height
}

// Cell returns the cell at p, or Solid outside the grid.
func (g *Grid) Cell(p world.Position) Cell {
	if !InBounds(p) {
		return Solid
	}
	return g.cells[p.X][p.Y]
}

// SetCell stores c at p and reports whether p was inside the grid.
func (g *Grid) SetCell(p world.Position, c Cell) bool {
	if !InBounds(p) {
		return false
	}
	g.cells[p.X][p.Y] = c
	return true
}

// Fill sets every cell to c.
func (g *Grid) Fill(c Cell) {
	for x := range g.cells {
		for y := range g.cells[x] {
			g.cells[x][y] = c
		}
	}
}

// ForEachCell calls fn for every cell in row-major order.
func (g *Grid) ForEachCell(fn func(p world.Position, c Cell)) {
	for y := 0; y < Height; y++ {
		for x := 0; x < Width; x++ {
			fn(world.Pos(x, y), g.cells[x][y])
		}
	}
}

// Count returns how many cells satisfy pred.
func (g *Grid) Count(pred func(Cell) bool) int {
	n := 0
	g.ForEachCell(func(_ world.Position, c Cell) {
		if pred(c) {
			n++
		}
	})
	return n
}
