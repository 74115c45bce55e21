// Package world is the dungeon's grid world: cell types, the grid itself,
// the player, and the NPC roster, with the occupancy queries movement,
// pursuit and rendering share.
package world

import "fmt"

// Cell is the type of one grid square. Loot cells carry their item as an
// offset from Loot.
type Cell uint8

const (
	Solid Cell = iota
	Empty
	ClosedDoor
	LockedDoor
	Captive
	Artifact
	Loot // plus Item
)

// LootCell returns the loot cell holding item.
func LootCell(item Item) Cell {
	return Loot + Cell(item)
}

// Loot returns the item held by a loot cell.
func (c Cell) Loot() (Item, bool) {
	if c < Loot || !Item(c-Loot).IsValid() {
		return 0, false
	}
	return Item(c - Loot), true
}

// Opaque cells are drawn as walls and stop sight lines.
func (c Cell) Opaque() bool {
	return c == Solid || c == ClosedDoor || c == LockedDoor
}

// Walkable cells may be occupied by the player or an NPC.
func (c Cell) Walkable() bool {
	return c == Empty
}

// Objective cells complete the quest when the player steps on them.
func (c Cell) Objective() bool {
	return c == Captive || c == Artifact
}

// Door reports whether c is a closed or locked door.
func (c Cell) Door() bool {
	return c == ClosedDoor || c == LockedDoor
}

// HasContents reports whether the cell shows something besides bare floor.
func (c Cell) HasContents() bool {
	_, loot := c.Loot()
	return loot || c.Objective()
}

func (c Cell) String() string {
	switch c {
	case Solid:
		return "Solid"
	case Empty:
		return "Empty"
	case ClosedDoor:
		return "ClosedDoor"
	case LockedDoor:
		return "LockedDoor"
	case Captive:
		return "Captive"
	case Artifact:
		return "Artifact"
	}
	if item, ok := c.Loot(); ok {
		return "Loot(" + item.String() + ")"
	}
	return fmt.Sprintf("Cell(%d)", uint8(c))
}
