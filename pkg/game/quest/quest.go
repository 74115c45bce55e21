// Package quest holds the state of one dungeon run: what the quest is, the
// grid world it takes place in, and its progress.
package quest

import (
	"math/rand"

	"stonecrawl/pkg/engine/world"
	gameworld "stonecrawl/pkg/game/world"
)

// Type is the kind of quest.
type Type int

const (
	FindPebble Type = iota
	FindItem
	RecoverItem
	Escort
	Rescue
	Assassinate
	Exterminate
	Escape
	MainQuestConclusion

	NumTypes
)

var typeNames = [...]string{
	"find-pebble", "find-item", "recover-item", "escort", "rescue",
	"assassinate", "exterminate", "escape", "main-quest-conclusion",
}

func (t Type) String() string {
	if t < 0 || t >= NumTypes {
		return "unknown"
	}
	return typeNames[t]
}

// IsValid reports whether t is a known quest type.
func (t Type) IsValid() bool {
	return t >= 0 && t < NumTypes
}

// ParseType maps a quest name as printed by String back to its Type.
func ParseType(name string) (Type, bool) {
	for i, n := range typeNames {
		if n == name {
			return Type(i), true
		}
	}
	return 0, false
}

// Quest sizing.
const (
	MinNPCsPerQuest = 10
	MaxNPCsPerQuest = 30
	rewardUnit      = 25
)

// Dungeon is one quest instance. It is discarded when the quest ends.
type Dungeon struct {
	Type  Type
	World *gameworld.World

	Entrance world.Direction
	// Exit is the direction the carving walk last travelled.
	Exit  world.Direction
	Start world.Position
	End   world.Position

	Reward    int
	NPCQuota  int
	Kills     int
	Completed bool
}

// New creates a dungeon of type t over w and rolls its reward and NPC quota.
// Geometry (entrance, start, end) is filled in by the generator.
func New(t Type, w *gameworld.World, rng *rand.Rand) *Dungeon {
	reward := rewardUnit * (rng.Intn(10) + 1)
	if t == Assassinate {
		reward *= 2
	}
	return &Dungeon{
		Type:     t,
		World:    w,
		Reward:   reward,
		NPCQuota: rng.Intn(MaxNPCsPerQuest-MinNPCsPerQuest+1) + MinNPCsPerQuest,
	}
}

// LeavesDungeon reports whether stepping from p in dir walks out through
// the entrance. Only the start cell has a way out, on the entrance side.
func (d *Dungeon) LeavesDungeon(p world.Position, dir world.Direction) bool {
	return p == d.Start && dir == d.Entrance
}

// Close drops the dungeon's NPCs.
func (d *Dungeon) Close() {
	d.World.NPCs.Clear()
}
