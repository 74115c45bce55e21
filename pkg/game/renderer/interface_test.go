package renderer

import (
	"strings"
	"testing"
	"time"

	engineinput "stonecrawl/pkg/engine/input"
	"stonecrawl/pkg/game/generator"
	"stonecrawl/pkg/game/state"
	"stonecrawl/pkg/game/view"
)

func makeView(t *testing.T) *view.View {
	t.Helper()
	v, err := view.New(state.NewSession(1, generator.Straight, nil), nil, view.Hooks{}, time.Unix(0, 0))
	if err != nil {
		t.Fatalf("view.New: %v", err)
	}
	t.Cleanup(v.Close)
	return v
}

func TestPanelLines(t *testing.T) {
	v := makeView(t)
	for i := 0; i < 4; i++ {
		v.Session().AddMessage(strings.Repeat("m", i+1))
	}

	lines := PanelLines(v, 3)
	if len(lines) != 3 {
		t.Fatalf("len = %d, want 3", len(lines))
	}
	if lines[0] != StatusLine(v) {
		t.Errorf("first line = %q, want the status line", lines[0])
	}
	if lines[2] != "mmmm" {
		t.Errorf("last line = %q, want the newest message", lines[2])
	}
}

func TestStatusLine(t *testing.T) {
	v := makeView(t)
	v.Session().Player.Gold = 42
	if got := StatusLine(v); !strings.Contains(got, "42") || !strings.Contains(got, "100") {
		t.Errorf("StatusLine = %q, want HP and gold", got)
	}
}

func TestKeyHelp(t *testing.T) {
	got := KeyHelp(engineinput.Bindings{"x": engineinput.ActionActivate, "q": engineinput.ActionQuit})
	if got != "Attack: x  Quit: q" {
		t.Errorf("KeyHelp = %q", got)
	}
}
