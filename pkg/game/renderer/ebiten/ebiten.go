// Package ebiten runs a view in a desktop window using Ebiten.
package ebiten

import (
	"errors"
	"sync"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	engineinput "stonecrawl/pkg/engine/input"
	"stonecrawl/pkg/game/renderer/scene"
	"stonecrawl/pkg/game/view"
	"stonecrawl/pkg/logger"
)

// keyRepeatInfo tracks a held key.
type keyRepeatInfo struct {
	firstPressed int64
	lastRepeat   int64
}

// EbitenRenderer is the windowed frontend.
type EbitenRenderer struct {
	view     *view.View
	bindings engineinput.Bindings
	scale    int

	frame  *ebiten.Image
	pixels []byte

	keyRepeatState      map[ebiten.Key]keyRepeatInfo
	keyRepeatStateMutex sync.Mutex

	windowOpenedLogged bool
	now                func() time.Time
}

// New creates the frontend. scale enlarges the 144x152 frame.
func New(bindings engineinput.Bindings, scale int) *EbitenRenderer {
	if bindings == nil {
		bindings = engineinput.DefaultBindings()
	}
	return &EbitenRenderer{
		bindings:       bindings,
		scale:          scale,
		keyRepeatState: make(map[ebiten.Key]keyRepeatInfo),
		pixels:         make([]byte, scene.Width*scene.Height*4),
		now:            time.Now,
	}
}

// Name implements renderer.Frontend.
func (e *EbitenRenderer) Name() string {
	return "ebiten"
}

// Run opens the window and drives v until the player quits or closes the
// window.
func (e *EbitenRenderer) Run(v *view.View) error {
	e.view = v
	defer v.Close()

	w, h := e.windowSize()
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowTitle(windowTitle)

	err := ebiten.RunGame(e)
	if errors.Is(err, ebiten.Termination) {
		return nil
	}
	return err
}

func (e *EbitenRenderer) windowSize() (int, int) {
	return scene.Width * e.scale, scene.Height*e.scale + panelHeight
}

// Update feeds the clock and pending key presses to the view (Ebiten
// interface).
func (e *EbitenRenderer) Update() error {
	if !e.windowOpenedLogged {
		e.windowOpenedLogged = true
		w, h := ebiten.WindowSize()
		logger.Log.WithField("size", []int{w, h}).Info("window opened")
	}

	now := e.now()
	e.view.Advance(now)

	for _, intent := range e.checkInput(now) {
		if err := e.view.Handle(intent); err != nil {
			logger.Log.WithError(err).Warn("action failed")
		}
		if e.view.Done() {
			return ebiten.Termination
		}
	}
	return nil
}

// Layout returns the game's logical screen size (Ebiten interface)
func (e *EbitenRenderer) Layout(outsideWidth, outsideHeight int) (int, int) {
	return e.windowSize()
}
