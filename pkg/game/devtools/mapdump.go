// Package devtools provides developer tools for testing and debugging.
package devtools

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/gookit/color"

	"stonecrawl/pkg/engine/terminal"
	"stonecrawl/pkg/engine/world"
	"stonecrawl/pkg/game/quest"
	"stonecrawl/pkg/game/state"
	gameworld "stonecrawl/pkg/game/world"
)

const mapDumpFilename = "map.txt"

// Map symbols.
const (
	SymbolSolid     = '#'
	SymbolEmpty     = '.'
	SymbolDoor      = '+'
	SymbolLocked    = '='
	SymbolObjective = '!'
	SymbolLoot      = '$'
	SymbolNPC       = 'N'
	SymbolStart     = 'S'
	SymbolEnd       = 'E'
)

var (
	styleSolid     = color.Style{color.FgGray}
	styleFloor     = color.Style{color.FgWhite}
	styleDoor      = color.Style{color.FgYellow, color.OpBold}
	styleObjective = color.Style{color.FgGreen, color.OpBold}
	styleLoot      = color.Style{color.FgMagenta}
	styleNPC       = color.Style{color.FgRed, color.OpBold}
	stylePlayer    = color.Style{color.FgGreen, color.BgBlack, color.OpBold}
	styleMarker    = color.Style{color.FgCyan}
)

var playerArrows = map[world.Direction]rune{
	world.North: '^',
	world.East:  '>',
	world.South: 'v',
	world.West:  '<',
}

// cellSymbol returns the symbol for the terrain at p, ignoring whoever is
// standing there.
func cellSymbol(d *quest.Dungeon, p world.Position) (rune, color.Style) {
	c := d.World.CellType(p)
	switch {
	case c == gameworld.Solid:
		return SymbolSolid, styleSolid
	case c == gameworld.ClosedDoor:
		return SymbolDoor, styleDoor
	case c == gameworld.LockedDoor:
		return SymbolLocked, styleDoor
	case c.Objective():
		return SymbolObjective, styleObjective
	}
	if _, ok := c.Loot(); ok {
		return SymbolLoot, styleLoot
	}
	switch p {
	case d.Start:
		return SymbolStart, styleMarker
	case d.End:
		return SymbolEnd, styleMarker
	}
	return SymbolEmpty, styleFloor
}

// symbolAt overlays the player and NPCs on the terrain.
func symbolAt(d *quest.Dungeon, p world.Position) (rune, color.Style) {
	w := d.World
	if w.Player != nil && w.Player.Position == p {
		return playerArrows[w.Player.Facing], stylePlayer
	}
	if _, ok := w.NPCAt(p); ok {
		return SymbolNPC, styleNPC
	}
	return cellSymbol(d, p)
}

// MapLines renders the dungeon grid, one string per row. With colored set
// each symbol carries ANSI styling.
func MapLines(d *quest.Dungeon, colored bool) []string {
	lines := make([]string, 0, gameworld.Height)
	for y := 0; y < gameworld.Height; y++ {
		var b strings.Builder
		for x := 0; x < gameworld.Width; x++ {
			r, style := symbolAt(d, world.Pos(x, y))
			if colored {
				b.WriteString(style.Sprint(string(r)))
			} else {
				b.WriteRune(r)
			}
		}
		lines = append(lines, b.String())
	}
	return lines
}

func legend() []string {
	return []string{
		"# rock  . corridor  + door  = locked door",
		"! objective  $ loot  N npc  ^>v< player",
		"S start  E end",
	}
}

func metadata(s *state.Session) []string {
	d := s.Quest
	p := s.Player
	reachable := world.Reachable(d.Start, func(q world.Position) bool {
		return d.World.CellType(q) != gameworld.Solid
	})
	lines := []string{
		fmt.Sprintf("seed: %d", s.Seed),
		fmt.Sprintf("generator: %s", s.Generator.Name()),
		fmt.Sprintf("quest: %s", d.Type),
		fmt.Sprintf("entrance: %s", d.Entrance),
		fmt.Sprintf("exit: %s", d.Exit),
		fmt.Sprintf("start: %s end: %s", d.Start, d.End),
		fmt.Sprintf("open cells reachable from start: %d", reachable.Size()),
		fmt.Sprintf("reward: %d", d.Reward),
		fmt.Sprintf("kills: %d/%d", d.Kills, d.NPCQuota),
		fmt.Sprintf("completed: %v", d.Completed),
		fmt.Sprintf("player: %s facing %s", p.Position, p.Facing),
		fmt.Sprintf("hp: %d/%d mp: %d/%d gold: %d key: %v",
			p.Stats.CurrentHP, p.Stats.MaxHP, p.Stats.CurrentMP, p.Stats.MaxMP, p.Gold, p.HasKey),
	}
	d.World.NPCs.Each(func(npc *gameworld.NPC) bool {
		lines = append(lines, fmt.Sprintf("npc %d: %s at %s hp %d/%d",
			npc.ID, npc.Kind, npc.Position, npc.Stats.CurrentHP, npc.Stats.MaxHP))
		return true
	})
	return lines
}

// WriteMap writes the current dungeon with its metadata and legend to w.
// The legend sits beside the map when width allows, below it otherwise.
func WriteMap(w io.Writer, s *state.Session, colored bool, width int) error {
	if s.Quest == nil {
		return fmt.Errorf("map dump: no quest in progress")
	}

	grid := MapLines(s.Quest, colored)
	side := append(metadata(s), "")
	side = append(side, legend()...)

	sideWidth := 0
	for _, line := range side {
		sideWidth = max(sideWidth, len(line))
	}

	const gutter = 3
	if width >= gameworld.Width+gutter+sideWidth {
		for i := 0; i < max(len(grid), len(side)); i++ {
			row := strings.Repeat(" ", gameworld.Width)
			if i < len(grid) {
				row = grid[i]
			}
			text := ""
			if i < len(side) {
				text = side[i]
			}
			if _, err := fmt.Fprintf(w, "%s%s%s\n", row, strings.Repeat(" ", gutter), text); err != nil {
				return err
			}
		}
		return nil
	}

	for _, block := range [][]string{grid, {""}, side} {
		for _, line := range block {
			if _, err := fmt.Fprintln(w, line); err != nil {
				return err
			}
		}
	}
	return nil
}

// PrintMap writes a coloured dump sized to the terminal.
func PrintMap(w io.Writer, s *state.Session) error {
	return WriteMap(w, s, true, terminal.GetWidth())
}

// DumpMapToFile writes a plain dump to map.txt in dir and returns its path.
func DumpMapToFile(dir string, s *state.Session) (string, error) {
	path, err := filepath.Abs(filepath.Join(dir, mapDumpFilename))
	if err != nil {
		return "", err
	}

	f, err := os.Create(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	if err := WriteMap(f, s, false, 0); err != nil {
		return path, err
	}
	if err := f.Sync(); err != nil {
		return path, err
	}
	return path, nil
}
