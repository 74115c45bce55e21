// Package gameplay provides the game rules: starting and ending quests,
// player movement and attacks, and the world tick that drives NPCs.
package gameplay

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"stonecrawl/pkg/game/locale"
	"stonecrawl/pkg/game/quest"
	"stonecrawl/pkg/game/state"
	"stonecrawl/pkg/logger"
)

// ErrUnknownQuest is returned when starting a quest of an invalid type.
var ErrUnknownQuest = errors.New("unknown quest type")

// NextQuestType picks the type of the next quest at random.
func NextQuestType(s *state.Session) quest.Type {
	return quest.Type(s.Rng.Intn(int(quest.NumTypes)))
}

// StartQuest generates a dungeon of type t and makes it the session's
// quest, replacing any quest in progress. If generation fails the session
// is left as it was.
func StartQuest(s *state.Session, t quest.Type) error {
	if !t.IsValid() {
		return fmt.Errorf("%w: %d", ErrUnknownQuest, t)
	}

	// Generation places and heals the player; work on a copy until it
	// succeeds.
	p := *s.Player
	d, err := s.Generator.Generate(t, &p, s.Rng)
	if err != nil {
		return fmt.Errorf("start %v quest: %w", t, err)
	}
	*s.Player = p
	d.World.Player = s.Player

	s.DiscardQuest()
	s.Quest = d

	s.ClearMessages()
	logMessage(s, questIntro(t))

	logger.Log.WithFields(logrus.Fields{
		"quest":     t.String(),
		"generator": s.Generator.Name(),
		"start":     d.Start.String(),
		"end":       d.End.String(),
		"reward":    d.Reward,
		"quota":     d.NPCQuota,
	}).Info("quest started")
	return nil
}

func questIntro(t quest.Type) string {
	switch t {
	case quest.FindPebble:
		return locale.Get("QUEST_INTRO_MAIN_1")
	case quest.MainQuestConclusion:
		return locale.Get("QUEST_INTRO_MAIN_3")
	default:
		return locale.Getf("QUEST_INTRO_RANDOM", t.String())
	}
}

// EndQuest closes the current quest as the player walks out of the
// entrance. A completed quest pays its reward.
func EndQuest(s *state.Session) {
	d := s.Quest
	if d == nil {
		return
	}

	success := d.Completed
	reward := 0
	if success {
		reward = d.Reward
		s.Player.AddGold(reward)
		s.QuestsCompleted++
		logMessage(s, locale.Get("QUEST_VICTORY"))
		logMessage(s, locale.Getf("QUEST_REWARD", reward))
	} else {
		logMessage(s, locale.Get("QUEST_FAILED"))
	}

	logger.Log.WithFields(logrus.Fields{
		"quest":   d.Type.String(),
		"success": success,
		"reward":  reward,
		"kills":   d.Kills,
	}).Info("quest ended")

	s.DiscardQuest()
	s.Listener.QuestEnded(success, reward)
}

// playerDied discards the quest after the player's HP reaches zero.
func playerDied(s *state.Session) {
	if s.Quest != nil {
		logger.Log.WithFields(logrus.Fields{
			"quest": s.Quest.Type.String(),
			"kills": s.Quest.Kills,
		}).Info("player died")
	}
	s.Deaths++
	s.DiscardQuest()
	logMessage(s, locale.Get("PLAYER_DIED"))
	s.Listener.PlayerDied()
}

// logMessage adds a message to the session's message log
func logMessage(s *state.Session, msg string) {
	s.AddMessage(msg)
}
