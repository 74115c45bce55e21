package gameplay

import (
	"github.com/sirupsen/logrus"

	"stonecrawl/pkg/engine/world"
	"stonecrawl/pkg/game/locale"
	"stonecrawl/pkg/game/state"
	gameworld "stonecrawl/pkg/game/world"
	"stonecrawl/pkg/logger"
)

// Turn rotates the player a quarter turn left or right.
func Turn(s *state.Session, left bool) {
	p := s.Player
	if left {
		p.Facing = p.Facing.Left()
	} else {
		p.Facing = p.Facing.Right()
	}
}

// MovePlayer tries to step the player one cell in dir and reports whether
// the player changed cells. Stepping out of the start cell through the
// entrance ends the quest. Objectives and loot are picked up by walking
// onto them; doors are opened, or unlocked with a key, by walking into
// them without moving.
func MovePlayer(s *state.Session, dir world.Direction) bool {
	d := s.Quest
	if d == nil {
		return false
	}
	w := d.World
	p := s.Player

	if d.LeavesDungeon(p.Position, dir) {
		EndQuest(s)
		return false
	}

	dest := p.Position.Step(dir, 1)
	c := w.CellType(dest)
	if _, taken := w.NPCAt(dest); taken {
		return false
	}

	switch {
	case c == gameworld.ClosedDoor:
		w.Grid.SetCell(dest, gameworld.Empty)
		logMessage(s, locale.Get("DOOR_OPENED"))
		return false

	case c == gameworld.LockedDoor:
		if !p.HasKey {
			logMessage(s, locale.Get("DOOR_LOCKED"))
			return false
		}
		p.HasKey = false
		w.Grid.SetCell(dest, gameworld.ClosedDoor)
		logMessage(s, locale.Get("DOOR_UNLOCKED"))
		return false

	case c.Objective():
		w.Grid.SetCell(dest, gameworld.Empty)
		d.Completed = true
		if c == gameworld.Captive {
			logMessage(s, locale.Get("CAPTIVE_FREED"))
		} else {
			logMessage(s, locale.Get("ARTIFACT_TAKEN"))
		}
		logger.Log.WithField("quest", d.Type.String()).Debug("objective reached")

	default:
		if item, ok := c.Loot(); ok {
			w.Grid.SetCell(dest, gameworld.Empty)
			pickUp(s, item)
		}
	}

	if !w.IsOccupiable(dest) {
		return false
	}
	p.Position = dest
	return true
}

// pickUp applies a looted item to the player.
func pickUp(s *state.Session, item gameworld.Item) {
	p := s.Player
	switch item {
	case gameworld.Gold:
		amount := gameworld.RandomGold(s.Rng)
		p.AddGold(amount)
		logMessage(s, locale.Getf("LOOT_GOLD", amount))
	case gameworld.Key:
		p.HasKey = true
		logMessage(s, locale.Get("LOOT_KEY"))
	default:
		logMessage(s, locale.Getf("LOOT_ITEM", item.String()))
		s.Listener.LootFound(item)
	}
	logger.Log.WithFields(logrus.Fields{
		"item": item.String(),
		"gold": p.Gold,
	}).Debug("loot picked up")
}
