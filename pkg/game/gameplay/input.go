package gameplay

import (
	"fmt"

	engineinput "stonecrawl/pkg/engine/input"
	"stonecrawl/pkg/game/state"
)

// Result reports what a processed intent did to the session.
type Result struct {
	// Moved is set when the player changed cells.
	Moved bool
	// Attacked is set when an attack was made; the view plays the attack
	// pose and flash.
	Attacked bool
	// QuestStarted is set when a new dungeon was generated.
	QuestStarted bool
}

// ProcessIntent applies a gameplay intent to the session. Between quests
// only ActionNewQuest does anything; during a quest it is ignored. Intents
// the session has no rules for (screenshots, quitting) are left to the
// caller and return a zero Result.
func ProcessIntent(s *state.Session, intent engineinput.Intent) (Result, error) {
	var r Result

	if !s.InQuest() {
		if intent.Action != engineinput.ActionNewQuest {
			return r, nil
		}
		if err := StartQuest(s, NextQuestType(s)); err != nil {
			return r, fmt.Errorf("new quest: %w", err)
		}
		r.QuestStarted = true
		return r, nil
	}

	p := s.Player
	switch intent.Action {
	case engineinput.ActionMoveForward:
		r.Moved = MovePlayer(s, p.Facing)
	case engineinput.ActionMoveBackward:
		r.Moved = MovePlayer(s, p.Facing.Opposite())
	case engineinput.ActionTurnLeft:
		Turn(s, true)
	case engineinput.ActionTurnRight:
		Turn(s, false)
	case engineinput.ActionActivate:
		r.Attacked = Attack(s)
	}
	return r, nil
}
