package ebiten

import "image/color"

// Palette. The scene's two colours map onto these.
var (
	colorBackground      = color.RGBA{0, 0, 0, 255}
	colorForeground      = color.RGBA{230, 230, 210, 255}
	colorPanelBackground = color.RGBA{30, 30, 50, 220}
	colorPanelRule       = color.RGBA{90, 90, 120, 255}
)

// Window layout, in window pixels.
const (
	windowTitle = "stonecrawl"

	panelLines      = 6
	panelLineHeight = 16
	panelPadding    = 4
	panelHeight     = panelLines*panelLineHeight + panelPadding*2
)

const (
	keyRepeatInitialDelay = 300 // Initial delay before first repeat (milliseconds)
	keyRepeatInterval     = 150 // Interval between repeat events (milliseconds)
)
