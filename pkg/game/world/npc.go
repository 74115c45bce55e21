package world

import (
	"math/rand"

	"stonecrawl/pkg/engine/world"
	"stonecrawl/pkg/game/stats"
)

// Kind is an NPC archetype.
type Kind uint8

const (
	Archmage Kind = iota
	Mage
	Thief
	Warrior
	Bat
	Wolf
	Bear
	Goblin
	Orc
	Ogre
	Troll
	Slime
	Skeleton
	Zombie
	Wraith
	FireElemental
	IceElemental
	StormElemental

	numKinds
)

var kindNames = [...]string{
	"Archmage", "Mage", "Thief", "Warrior", "Bat", "Wolf", "Bear", "Goblin",
	"Orc", "Ogre", "Troll", "Slime", "Skeleton", "Zombie", "Wraith",
	"Fire Elemental", "Ice Elemental", "Storm Elemental",
}

func (k Kind) String() string {
	if k >= numKinds {
		return "Unknown"
	}
	return kindNames[k]
}

// RandomKind picks an archetype uniformly.
func RandomKind(rng *rand.Rand) Kind {
	return Kind(rng.Intn(int(numKinds)))
}

// Silhouette groups archetypes that share a sprite.
type Silhouette uint8

const (
	Humanoid Silhouette = iota
	Beast
	Amorphous
)

// Silhouette returns the sprite family for k.
func (k Kind) Silhouette() Silhouette {
	switch k {
	case Bat, Wolf, Bear:
		return Beast
	case Slime, FireElemental, IceElemental, StormElemental:
		return Amorphous
	default:
		return Humanoid
	}
}

// NPCStats derives an NPC's stat block from the player's base stats: a fifth
// of each, doubled where the archetype is strong.
func NPCStats(kind Kind, player stats.Block) stats.Block {
	str := max(player.Strength/5, 1)
	agi := max(player.Agility/5, 1)
	intl := max(player.Intellect/5, 1)

	switch kind {
	case Orc, Warrior, Bear, Ogre, Troll:
		str *= 2
	}
	switch kind {
	case Thief, Warrior, Goblin, Orc:
		agi *= 2
	}
	switch kind {
	case Archmage, Mage:
		intl *= 2
	}

	return stats.New(str, agi, intl)
}

// NPCID is a stable handle to an NPC in a Roster.
type NPCID int

// NPC is a non-player character.
type NPC struct {
	ID       NPCID
	Kind     Kind
	Position world.Position
	Stats    stats.Block
}
