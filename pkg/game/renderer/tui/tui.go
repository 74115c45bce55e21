// Package tui runs a view in a terminal using tcell. The 1-bit frame is
// drawn with upper-half-block characters, two pixel rows per text row.
package tui

import (
	"errors"
	"time"

	"github.com/gdamore/tcell/v2"

	engineinput "stonecrawl/pkg/engine/input"
	"stonecrawl/pkg/engine/terminal"
	"stonecrawl/pkg/game/renderer/scene"
	"stonecrawl/pkg/game/view"
	"stonecrawl/pkg/logger"
)

// Layout in terminal cells.
const (
	FrameCols  = scene.Width
	FrameRows  = (scene.Height + 1) / 2
	PanelLines = 6
	MinCols    = FrameCols
	MinRows    = FrameRows + PanelLines

	frameInterval = 16 * time.Millisecond
	// repeatInterval swallows terminal auto-repeat faster than the ebiten
	// frontend's held-key rate.
	repeatInterval = 100 * time.Millisecond
)

// TUIRenderer is the terminal frontend.
type TUIRenderer struct {
	bindings engineinput.Bindings
	debounce engineinput.Debouncer
	screen   tcell.Screen
	now      func() time.Time
}

// New creates the frontend. A nil screen opens the real terminal on Run.
func New(bindings engineinput.Bindings, screen tcell.Screen) *TUIRenderer {
	if bindings == nil {
		bindings = engineinput.DefaultBindings()
	}
	return &TUIRenderer{
		bindings: bindings,
		debounce: engineinput.Debouncer{Interval: repeatInterval},
		screen:   screen,
		now:      time.Now,
	}
}

// Name implements renderer.Frontend.
func (t *TUIRenderer) Name() string {
	return "tui"
}

// Run takes over the terminal and drives v until the player quits.
func (t *TUIRenderer) Run(v *view.View) error {
	defer v.Close()

	if err := terminal.CheckFits(MinCols, MinRows); err != nil {
		if errors.Is(err, terminal.ErrNotTerminal) && t.screen == nil {
			return err
		}
		logger.Log.WithError(err).Warn("frame will be downsampled")
	}

	if t.screen == nil {
		s, err := tcell.NewScreen()
		if err != nil {
			return err
		}
		t.screen = s
	}
	if err := t.screen.Init(); err != nil {
		return err
	}
	defer t.screen.Fini()
	t.screen.HideCursor()

	// PollEvent returns nil once the screen is finalised; done releases a
	// send blocked on a full queue after Run has returned.
	done := make(chan struct{})
	defer close(done)
	events := make(chan tcell.Event, 100)
	go pollEvents(t.screen, events, done)

	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	t.draw(v)
	for {
		select {
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if !t.handleEvent(v, ev) {
				return nil
			}
		case <-ticker.C:
			v.Advance(t.now())
		}
		if v.Dirty() {
			t.draw(v)
		}
	}
}

// pollEvents forwards screen events to events until the screen is
// finalised or done is closed.
func pollEvents(screen tcell.Screen, events chan<- tcell.Event, done <-chan struct{}) {
	defer close(events)
	for {
		ev := screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case events <- ev:
		case <-done:
			return
		}
	}
}

// handleEvent applies one tcell event and reports whether to keep running.
func (t *TUIRenderer) handleEvent(v *view.View, ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyCtrlC ||
			(ev.Key() == tcell.KeyRune && ev.Rune() == 'c' && ev.Modifiers()&tcell.ModCtrl != 0) {
			return false
		}
		code := KeyCode(ev)
		if code == "" {
			return true
		}
		in, ok := t.debounce.Accept(engineinput.RawInput{
			Device:    engineinput.DeviceTerminal,
			Code:      code,
			Timestamp: ev.When(),
		})
		if !ok {
			return true
		}
		intent := t.bindings.MapToIntent(in)
		v.Advance(t.now())
		if err := v.Handle(intent); err != nil {
			logger.Log.WithError(err).Warn("action failed")
		}
		return !v.Done()
	case *tcell.EventResize:
		t.screen.Sync()
		t.draw(v)
	}
	return true
}

// KeyCode names a key event the way input.Bindings does, or "" for keys
// nothing can bind.
func KeyCode(ev *tcell.EventKey) string {
	switch ev.Key() {
	case tcell.KeyUp:
		return "arrow_up"
	case tcell.KeyDown:
		return "arrow_down"
	case tcell.KeyLeft:
		return "arrow_left"
	case tcell.KeyRight:
		return "arrow_right"
	case tcell.KeyEnter:
		return "enter"
	case tcell.KeyEscape:
		return "escape"
	case tcell.KeyF9:
		return "f9"
	case tcell.KeyF12:
		return "f12"
	case tcell.KeyRune:
		if ev.Modifiers()&(tcell.ModCtrl|tcell.ModAlt) != 0 {
			return ""
		}
		r := ev.Rune()
		if r == ' ' {
			return "space"
		}
		if r >= 'A' && r <= 'Z' {
			r += 'a' - 'A'
		}
		return string(r)
	}
	return ""
}
