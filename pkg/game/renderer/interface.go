// Package renderer holds what the frontends share: the Frontend contract
// and the text panel shown beside the scene.
package renderer

import (
	"strings"

	engineinput "stonecrawl/pkg/engine/input"
	"stonecrawl/pkg/game/locale"
	"stonecrawl/pkg/game/view"
)

// Frontend is a host event loop. Run drives v until the player quits or
// the host window closes; it closes v before returning.
type Frontend interface {
	Run(v *view.View) error
	Name() string
}

// StatusLine summarises the player's stats for the text panel.
func StatusLine(v *view.View) string {
	p := v.Session().Player
	return locale.Getf("STATUS_LINE", p.Stats.CurrentHP, p.Stats.MaxHP, p.Stats.CurrentMP, p.Stats.MaxMP, p.Gold)
}

// PanelLines returns the text panel: status line, then the recent messages,
// newest last.
func PanelLines(v *view.View, maxLines int) []string {
	lines := []string{StatusLine(v)}
	msgs := v.Messages()
	if room := maxLines - 1; len(msgs) > room {
		msgs = msgs[len(msgs)-room:]
	}
	return append(lines, msgs...)
}

// KeyHelp lists the bound keys per action, for the help line.
func KeyHelp(b engineinput.Bindings) string {
	byAction := b.ByAction()
	var parts []string
	for a := engineinput.ActionMoveForward; a <= engineinput.ActionQuit; a++ {
		codes, ok := byAction[a]
		if !ok {
			continue
		}
		parts = append(parts, engineinput.ActionName(a)+": "+strings.Join(codes, "/"))
	}
	return strings.Join(parts, "  ")
}
