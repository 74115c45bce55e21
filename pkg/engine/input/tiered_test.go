package input

import (
	"reflect"
	"testing"
	"time"
)

func TestMapToIntent(t *testing.T) {
	b := DefaultBindings()
	tests := []struct {
		code string
		want Action
	}{
		{"arrow_up", ActionMoveForward},
		{"s", ActionMoveBackward},
		{"h", ActionTurnLeft},
		{"arrow_right", ActionTurnRight},
		{"space", ActionActivate},
		{"escape", ActionQuit},
		{"z", ActionNone},
	}
	for _, tt := range tests {
		got := b.MapToIntent(DebouncedInput{Device: DeviceKeyboard, Code: tt.code})
		if got.Action != tt.want {
			t.Errorf("MapToIntent(%q) = %v, want %v", tt.code, ActionName(got.Action), ActionName(tt.want))
		}
	}
}

func TestSetSingleBinding(t *testing.T) {
	b := DefaultBindings()
	b.SetSingleBinding(ActionTurnLeft, "z")

	got := b.ByAction()[ActionTurnLeft]
	if want := []string{"arrow_left", "z"}; !reflect.DeepEqual(got, want) {
		t.Errorf("TurnLeft bindings = %v, want %v", got, want)
	}

	b.SetSingleBinding(ActionActivate, "escape")
	if b["escape"] != ActionQuit {
		t.Error("reserved code escape was rebound")
	}
}

func TestDebouncer(t *testing.T) {
	d := Debouncer{Interval: 50 * time.Millisecond}
	t0 := time.Unix(0, 0)

	steps := []struct {
		code string
		at   time.Duration
		want bool
	}{
		{"w", 0, true},
		{"w", 20 * time.Millisecond, false},
		{"a", 30 * time.Millisecond, true},
		{"a", 90 * time.Millisecond, true},
	}
	for i, s := range steps {
		_, ok := d.Accept(RawInput{Device: DeviceKeyboard, Code: s.code, Timestamp: t0.Add(s.at)})
		if ok != s.want {
			t.Errorf("step %d (%s): Accept = %v, want %v", i, s.code, ok, s.want)
		}
	}
}

func TestParseAction(t *testing.T) {
	for a := ActionMoveForward; a <= ActionQuit; a++ {
		if got, ok := ParseAction(ActionName(a)); !ok || got != a {
			t.Errorf("ParseAction(%q) = %v, %v", ActionName(a), got, ok)
		}
	}
}
