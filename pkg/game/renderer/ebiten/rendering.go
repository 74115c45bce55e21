package ebiten

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"stonecrawl/pkg/engine/surface"
	"stonecrawl/pkg/game/renderer"
	"stonecrawl/pkg/game/renderer/scene"
)

// Draw presents the view's frame scaled up, with the text panel below it
// (Ebiten interface).
func (e *EbitenRenderer) Draw(screen *ebiten.Image) {
	screen.Fill(colorBackground)
	if e.view == nil {
		return
	}

	if e.frame == nil {
		e.frame = ebiten.NewImage(scene.Width, scene.Height)
	}
	fillPixels(e.pixels, e.view.Frame())
	e.frame.WritePixels(e.pixels)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(e.scale), float64(e.scale))
	screen.DrawImage(e.frame, op)

	e.drawPanel(screen)
}

// fillPixels expands the 1-bit frame into RGBA bytes.
func fillPixels(pixels []byte, frame *surface.Bitmap) {
	b := frame.Bounds()
	i := 0
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			c := colorBackground
			if frame.At(x, y) == surface.White {
				c = colorForeground
			}
			pixels[i], pixels[i+1], pixels[i+2], pixels[i+3] = c.R, c.G, c.B, c.A
			i += 4
		}
	}
}

// drawPanel draws the status line and recent messages.
func (e *EbitenRenderer) drawPanel(screen *ebiten.Image) {
	w, _ := e.windowSize()
	top := float32(scene.Height * e.scale)

	vector.DrawFilledRect(screen, 0, top, float32(w), panelHeight, colorPanelBackground, false)
	vector.StrokeLine(screen, 0, top, float32(w), top, 1, colorPanelRule, false)

	for i, line := range renderer.PanelLines(e.view, panelLines) {
		ebitenutil.DebugPrintAt(screen, line, panelPadding, int(top)+panelPadding+i*panelLineHeight)
	}
}
