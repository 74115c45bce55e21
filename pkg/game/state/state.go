// Package state holds the game session: the player, the quest in progress
// and the hooks the UI listens on.
package state

import (
	"math/rand"

	"stonecrawl/pkg/game/generator"
	"stonecrawl/pkg/game/quest"
	gameworld "stonecrawl/pkg/game/world"
)

// Listener receives gameplay events the UI needs to react to.
type Listener interface {
	// QuestEnded fires when the player leaves the dungeon through the
	// entrance. reward is zero on failure.
	QuestEnded(success bool, reward int)
	// PlayerDied fires once when the player's HP reaches zero.
	PlayerDied()
	// PlayerHit fires whenever an NPC damages the player.
	PlayerHit(damage int)
	// LootFound fires when the player picks up an item other than gold or
	// a key.
	LootFound(item gameworld.Item)
}

// NopListener ignores every event.
type NopListener struct{}

func (NopListener) QuestEnded(bool, int)     {}
func (NopListener) PlayerDied()              {}
func (NopListener) PlayerHit(int)            {}
func (NopListener) LootFound(gameworld.Item) {}

// Session is one play session. It owns the player across quests and the
// current quest, if any.
type Session struct {
	Player *gameworld.Player
	// Quest is nil between quests.
	Quest *quest.Dungeon

	Rng       *rand.Rand
	Seed      int64
	Generator generator.Generator
	Listener  Listener

	Messages []string

	QuestsCompleted int
	Deaths          int
}

// NewSession creates a session with a fresh player. A nil generator selects
// the default one and a nil listener discards events.
func NewSession(seed int64, gen generator.Generator, l Listener) *Session {
	if gen == nil {
		gen = generator.DefaultGenerator
	}
	if l == nil {
		l = NopListener{}
	}
	return &Session{
		Player:    gameworld.NewPlayer(),
		Rng:       rand.New(rand.NewSource(seed)),
		Seed:      seed,
		Generator: gen,
		Listener:  l,
		Messages:  make([]string, 0),
	}
}

// InQuest reports whether a dungeon is active.
func (s *Session) InQuest() bool {
	return s.Quest != nil
}

// DiscardQuest drops the current dungeon and its NPCs.
func (s *Session) DiscardQuest() {
	if s.Quest != nil {
		s.Quest.Close()
		s.Quest = nil
	}
}

// AddMessage adds a message to the session's message log
func (s *Session) AddMessage(msg string) {
	const maxMessages = 5
	s.Messages = append(s.Messages, msg)

	if len(s.Messages) > maxMessages {
		s.Messages = s.Messages[len(s.Messages)-maxMessages:]
	}
}

// ClearMessages clears all messages
func (s *Session) ClearMessages() {
	s.Messages = make([]string, 0)
}

// LastMessage returns the newest message, or "".
func (s *Session) LastMessage() string {
	if len(s.Messages) == 0 {
		return ""
	}
	return s.Messages[len(s.Messages)-1]
}
