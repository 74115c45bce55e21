package state

import (
	"fmt"
	"math/rand"
	"testing"

	"stonecrawl/pkg/game/generator"
	"stonecrawl/pkg/game/quest"
)

func TestNewSession_Defaults(t *testing.T) {
	s := NewSession(3, nil, nil)

	if s.Generator != generator.DefaultGenerator {
		t.Errorf("Generator = %s, want default", s.Generator.Name())
	}
	if _, ok := s.Listener.(NopListener); !ok {
		t.Errorf("Listener = %T, want NopListener", s.Listener)
	}
	if s.InQuest() {
		t.Error("new session is in a quest")
	}
	if s.Player.Stats.CurrentHP != s.Player.Stats.MaxHP {
		t.Error("new player not at full HP")
	}
}

func TestNewSession_Deterministic(t *testing.T) {
	a, b := NewSession(9, nil, nil), NewSession(9, nil, nil)
	for i := 0; i < 10; i++ {
		if x, y := a.Rng.Int(), b.Rng.Int(); x != y {
			t.Fatalf("draw %d: %d != %d", i, x, y)
		}
	}
}

func TestAddMessage_KeepsNewest(t *testing.T) {
	s := NewSession(1, nil, nil)
	for i := 0; i < 8; i++ {
		s.AddMessage(fmt.Sprint(i))
	}

	if len(s.Messages) != 5 {
		t.Fatalf("len(Messages) = %d, want 5", len(s.Messages))
	}
	if s.Messages[0] != "3" || s.LastMessage() != "7" {
		t.Errorf("Messages = %v, want 3..7", s.Messages)
	}

	s.ClearMessages()
	if s.LastMessage() != "" {
		t.Errorf("LastMessage after clear = %q, want empty", s.LastMessage())
	}
}

func TestDiscardQuest(t *testing.T) {
	s := NewSession(1, nil, nil)
	s.DiscardQuest()

	d, err := generator.Straight.Generate(quest.MainQuestConclusion, s.Player, rand.New(rand.NewSource(1)))
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	s.Quest = d
	if d.World.NPCs.Len() == 0 {
		t.Fatal("final quest has no archmage")
	}

	s.DiscardQuest()
	if s.InQuest() {
		t.Error("still in quest after DiscardQuest")
	}
	if d.World.NPCs.Len() != 0 {
		t.Errorf("NPCs = %d after discard, want 0", d.World.NPCs.Len())
	}
}

var _ Listener = NopListener{}
