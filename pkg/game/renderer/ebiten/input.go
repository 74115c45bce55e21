package ebiten

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	engineinput "stonecrawl/pkg/engine/input"
)

// keyCodes names the keys the bindings can refer to, in polling order.
var keyCodes = []struct {
	key  ebiten.Key
	code string
}{
	{ebiten.KeyArrowUp, "arrow_up"},
	{ebiten.KeyArrowDown, "arrow_down"},
	{ebiten.KeyArrowLeft, "arrow_left"},
	{ebiten.KeyArrowRight, "arrow_right"},
	{ebiten.KeyW, "w"},
	{ebiten.KeyA, "a"},
	{ebiten.KeyS, "s"},
	{ebiten.KeyD, "d"},
	{ebiten.KeyH, "h"},
	{ebiten.KeyJ, "j"},
	{ebiten.KeyK, "k"},
	{ebiten.KeyL, "l"},
	{ebiten.KeyE, "e"},
	{ebiten.KeyN, "n"},
	{ebiten.KeyQ, "q"},
	{ebiten.KeySpace, "space"},
	{ebiten.KeyEnter, "enter"},
	{ebiten.KeyNumpadEnter, "enter"},
	{ebiten.KeyEscape, "escape"},
	{ebiten.KeyF9, "f9"},
	{ebiten.KeyF12, "f12"},
}

// repeats reports whether holding a key bound to a repeats it.
func repeats(a engineinput.Action) bool {
	switch a {
	case engineinput.ActionMoveForward, engineinput.ActionMoveBackward,
		engineinput.ActionTurnLeft, engineinput.ActionTurnRight, engineinput.ActionActivate:
		return true
	}
	return false
}

// checkInput returns the intents for keys pressed, or held long enough to
// repeat, since the last update.
func (e *EbitenRenderer) checkInput(now time.Time) []engineinput.Intent {
	var intents []engineinput.Intent
	for _, k := range keyCodes {
		key, code := k.key, k.code
		intent := e.bindings.MapToIntent(engineinput.NewDebouncedInput(engineinput.RawInput{
			Device:    engineinput.DeviceKeyboard,
			Code:      code,
			Timestamp: now,
		}))
		if intent.Action == engineinput.ActionNone {
			continue
		}

		var fire bool
		if repeats(intent.Action) {
			fire = e.shouldRepeatKey(key, ebiten.IsKeyPressed(key), now.UnixMilli())
		} else {
			fire = inpututil.IsKeyJustPressed(key)
		}
		if fire {
			intents = append(intents, intent)
		}
	}
	return intents
}

// shouldRepeatKey checks if a key should trigger (initial press or repeat)
// given whether it is down at time now (milliseconds).
func (e *EbitenRenderer) shouldRepeatKey(key ebiten.Key, pressed bool, now int64) bool {
	e.keyRepeatStateMutex.Lock()
	defer e.keyRepeatStateMutex.Unlock()

	state, exists := e.keyRepeatState[key]
	if !pressed {
		delete(e.keyRepeatState, key)
		return false
	}

	if !exists {
		e.keyRepeatState[key] = keyRepeatInfo{firstPressed: now, lastRepeat: now}
		return true
	}

	if now-state.firstPressed >= keyRepeatInitialDelay && now-state.lastRepeat >= keyRepeatInterval {
		state.lastRepeat = now
		e.keyRepeatState[key] = state
		return true
	}
	return false
}
