package devtools

import (
	"bytes"
	"image/png"
	"os"
	"strings"
	"testing"
	"time"

	"stonecrawl/pkg/engine/surface"
	"stonecrawl/pkg/game/generator"
	"stonecrawl/pkg/game/gameplay"
	"stonecrawl/pkg/game/quest"
	"stonecrawl/pkg/game/state"
	gameworld "stonecrawl/pkg/game/world"
)

func makeSession(t *testing.T) *state.Session {
	t.Helper()
	s := state.NewSession(11, generator.Straight, nil)
	if err := gameplay.StartQuest(s, quest.Rescue); err != nil {
		t.Fatalf("StartQuest: %v", err)
	}
	return s
}

func TestMapLines(t *testing.T) {
	s := makeSession(t)
	d := s.Quest
	lines := MapLines(d, false)

	if len(lines) != gameworld.Height {
		t.Fatalf("rows = %d, want %d", len(lines), gameworld.Height)
	}
	for y, line := range lines {
		if len(line) != gameworld.Width {
			t.Fatalf("row %d has %d columns, want %d", y, len(line), gameworld.Width)
		}
	}

	if got := rune(lines[d.End.Y][d.End.X]); got != SymbolObjective {
		t.Errorf("end cell = %q, want %q", got, SymbolObjective)
	}
	if got := rune(lines[d.Start.Y][d.Start.X]); got != playerArrows[s.Player.Facing] {
		t.Errorf("start cell = %q, want the player arrow", got)
	}
}

func TestMapLines_Colored(t *testing.T) {
	s := makeSession(t)
	plain := MapLines(s.Quest, false)
	colored := MapLines(s.Quest, true)
	for i := range plain {
		if len(colored[i]) < len(plain[i]) {
			t.Fatalf("colored row %d shorter than plain row", i)
		}
	}
}

func TestWriteMap_Layout(t *testing.T) {
	s := makeSession(t)

	var wide, narrow bytes.Buffer
	if err := WriteMap(&wide, s, false, 200); err != nil {
		t.Fatal(err)
	}
	if err := WriteMap(&narrow, s, false, 20); err != nil {
		t.Fatal(err)
	}

	wideLines := strings.Count(wide.String(), "\n")
	narrowLines := strings.Count(narrow.String(), "\n")
	if wideLines >= narrowLines {
		t.Errorf("side-by-side dump has %d lines, stacked %d; want fewer side by side", wideLines, narrowLines)
	}
	if !strings.Contains(narrow.String(), "quest: rescue") {
		t.Error("metadata missing quest type")
	}
}

func TestWriteMap_NoQuest(t *testing.T) {
	s := state.NewSession(1, nil, nil)
	if err := WriteMap(&bytes.Buffer{}, s, false, 80); err == nil {
		t.Error("WriteMap without a quest succeeded")
	}
}

func TestDumpMapToFile(t *testing.T) {
	s := makeSession(t)
	path, err := DumpMapToFile(t.TempDir(), s)
	if err != nil {
		t.Fatalf("DumpMapToFile: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if bytes.Contains(data, []byte("\x1b[")) {
		t.Error("file dump contains ANSI escapes")
	}
}

func TestSaveScreenshot(t *testing.T) {
	frame := surface.NewBitmap(8, 4)
	frame.Plot(1, 1, surface.White)

	path, err := SaveScreenshot(t.TempDir(), frame, time.Date(2024, 5, 6, 7, 8, 9, 0, time.UTC))
	if err != nil {
		t.Fatalf("SaveScreenshot: %v", err)
	}
	if !strings.HasSuffix(path, "screenshot-20240506-070809.000.png") {
		t.Errorf("path = %q", path)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 8*ScreenshotScale || b.Dy() != 4*ScreenshotScale {
		t.Errorf("size = %dx%d, want %dx%d", b.Dx(), b.Dy(), 8*ScreenshotScale, 4*ScreenshotScale)
	}

	r, _, _, _ := img.At(ScreenshotScale+1, ScreenshotScale+1).RGBA()
	if r == 0 {
		t.Error("white pixel lost in scaling")
	}
}
