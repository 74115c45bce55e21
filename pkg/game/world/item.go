package world

import "math/rand"

// Item is what a loot cell holds.
type Item uint8

const (
	Gold Item = iota
	Key
	ArtifactItem
	HPPotion
	MPPotion
	PebbleOfFire
	PebbleOfIce
	PebbleOfLightning
	PebbleOfLife
	PebbleOfDeath
	PebbleOfLight
	PebbleOfDarkness
	Robe
	LightArmor
	HeavyArmor
	Shield
	Dagger
	Sword
	Axe
	Staff
	Mace
	Flail
	Bow

	numItems
)

var itemNames = [...]string{
	"Gold", "Key", "Artifact", "HP Potion", "MP Potion",
	"Pebble of Fire", "Pebble of Ice", "Pebble of Lightning", "Pebble of Life",
	"Pebble of Death", "Pebble of Light", "Pebble of Darkness",
	"Robe", "Light Armor", "Heavy Armor", "Shield",
	"Dagger", "Sword", "Axe", "Staff", "Mace", "Flail", "Bow",
}

// IsValid reports whether i names a known item.
func (i Item) IsValid() bool {
	return i < numItems
}

// Pebble reports whether i is one of the seven pebbles.
func (i Item) Pebble() bool {
	return i >= PebbleOfFire && i <= PebbleOfDarkness
}

func (i Item) String() string {
	if !i.IsValid() {
		return "Unknown"
	}
	return itemNames[i]
}

// RandomGold is the amount a gold pile holds: 1..20.
func RandomGold(rng *rand.Rand) int {
	return rng.Intn(20) + 1
}
