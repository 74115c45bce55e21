package tui

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"stonecrawl/pkg/engine/surface"
	"stonecrawl/pkg/game/renderer"
	"stonecrawl/pkg/game/view"
)

const upperHalfBlock = '▀'

var (
	styleFrame = tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorWhite)
	stylePanel = tcell.StyleDefault.Foreground(tcell.ColorSilver)
	styleStats = tcell.StyleDefault.Foreground(tcell.ColorGreen).Bold(true)
)

// draw paints the frame and panel and shows them.
func (t *TUIRenderer) draw(v *view.View) {
	t.screen.Clear()
	cols, rows := t.screen.Size()

	step := sampleStep(cols, rows)
	usedRows := drawFrame(t.screen, v.Frame(), step)

	for i, line := range renderer.PanelLines(v, PanelLines) {
		style := stylePanel
		if i == 0 {
			style = styleStats
		}
		drawText(t.screen, 0, usedRows+i, cols, line, style)
	}
	t.screen.Show()
}

// sampleStep is the smallest pixel stride that fits the frame and panel
// into cols by rows.
func sampleStep(cols, rows int) int {
	step := 1
	for step < FrameCols && (FrameCols/step > cols || FrameRows/step+PanelLines > rows) {
		step++
	}
	return step
}

// drawFrame draws every step-th pixel, two pixel rows per cell, and returns
// the number of text rows used.
func drawFrame(s tcell.Screen, frame *surface.Bitmap, step int) int {
	b := frame.Bounds()
	row := 0
	for y := b.Min.Y; y < b.Max.Y; y, row = y+2*step, row+1 {
		col := 0
		for x := b.Min.X; x < b.Max.X; x, col = x+step, col+1 {
			top := frame.At(x, y)
			bottom := surface.Black
			if y+step < b.Max.Y {
				bottom = frame.At(x, y+step)
			}
			s.SetContent(col, row, upperHalfBlock, nil,
				styleFrame.Foreground(cellColor(top)).Background(cellColor(bottom)))
		}
	}
	return row
}

func cellColor(c surface.Color) tcell.Color {
	if c == surface.White {
		return tcell.ColorWhite
	}
	return tcell.ColorBlack
}

// drawText writes s at (x, y), clipped to width columns.
func drawText(scr tcell.Screen, x, y, width int, s string, style tcell.Style) {
	for _, r := range s {
		w := runewidth.RuneWidth(r)
		if x+w > width {
			return
		}
		scr.SetContent(x, y, r, nil, style)
		x += w
	}
}
