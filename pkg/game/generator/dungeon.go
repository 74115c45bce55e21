package generator

import (
	"fmt"
	"math/rand"

	"stonecrawl/pkg/engine/world"
	"stonecrawl/pkg/game/quest"
	gameworld "stonecrawl/pkg/game/world"
)

// newDungeon fills a grid with Solid and picks the entrance side, the start
// cell on it and the end cell on the opposite side.
func newDungeon(t quest.Type, player *gameworld.Player, rng *rand.Rand) *quest.Dungeon {
	w := gameworld.New(gameworld.NewGrid(gameworld.Solid), player)
	d := quest.New(t, w, rng)

	d.Entrance = world.RandomDirection(rng)
	d.Start = randomBorderCell(d.Entrance, rng)
	d.End = randomBorderCell(d.Entrance.Opposite(), rng)
	return d
}

// randomBorderCell picks a random cell on the grid edge that faces side.
func randomBorderCell(side world.Direction, rng *rand.Rand) world.Position {
	switch side {
	case world.North:
		return world.Pos(rng.Intn(gameworld.Width), 0)
	case world.South:
		return world.Pos(rng.Intn(gameworld.Width), gameworld.Height-1)
	case world.East:
		return world.Pos(gameworld.Width-1, rng.Intn(gameworld.Height))
	default:
		return world.Pos(0, rng.Intn(gameworld.Height))
	}
}

// clampedStep moves p one cell in dir unless that would leave the grid.
func clampedStep(p world.Position, dir world.Direction) world.Position {
	next := p.Step(dir, 1)
	if !gameworld.InBounds(next) {
		return p
	}
	return next
}

// carveStraight opens cells from p to end, first along the axis with more
// distance left, and returns the last direction travelled.
func carveStraight(g *gameworld.Grid, p, end world.Position, last world.Direction) world.Direction {
	for p != end {
		g.SetCell(p, gameworld.Empty)
		dir := towardAlongLongestAxis(p, end)
		p = p.Step(dir, 1)
		last = dir
	}
	g.SetCell(end, gameworld.Empty)
	return last
}

// towardAlongLongestAxis is the direction from p toward end along the axis
// with the larger remaining distance.
func towardAlongLongestAxis(p, end world.Position) world.Direction {
	dx, dy := end.X-p.X, end.Y-p.Y
	if abs(dx) >= abs(dy) && dx != 0 {
		if dx > 0 {
			return world.East
		}
		return world.West
	}
	if dy > 0 {
		return world.South
	}
	return world.North
}

// Loot scattering.
const (
	maxLootChests = 2
	lootOdds      = 3
)

var lootTable = [...]gameworld.Item{gameworld.Gold, gameworld.Gold, gameworld.HPPotion, gameworld.MPPotion}

// scatterLoot drops up to maxLootChests chests on random corridor cells other
// than the start and end.
func scatterLoot(d *quest.Dungeon, rng *rand.Rand) {
	var corridor []world.Position
	d.World.Grid.ForEachCell(func(p world.Position, c gameworld.Cell) {
		if c == gameworld.Empty && p != d.Start && p != d.End {
			corridor = append(corridor, p)
		}
	})

	for i := 0; i < maxLootChests && len(corridor) > 0; i++ {
		if rng.Intn(lootOdds) != 0 {
			continue
		}
		j := rng.Intn(len(corridor))
		d.World.Grid.SetCell(corridor[j], gameworld.LootCell(lootTable[rng.Intn(len(lootTable))]))
		corridor[j] = corridor[len(corridor)-1]
		corridor = corridor[:len(corridor)-1]
	}
}

// finish places the quest content at the end cell, moves the player to the
// start, and checks the corridor joins the two.
func finish(d *quest.Dungeon) error {
	w := d.World
	p := w.Player
	p.Position = d.Start
	p.Facing = d.Entrance.Opposite()
	p.Stats.Restore()
	p.HasKey = false

	switch d.Type {
	case quest.MainQuestConclusion:
		if _, err := w.AddNPC(gameworld.Archmage, d.End); err != nil {
			return fmt.Errorf("place archmage: %w", err)
		}
	case quest.RecoverItem:
		w.Grid.SetCell(d.End, gameworld.Artifact)
	case quest.Rescue:
		w.Grid.SetCell(d.End, gameworld.Captive)
	}

	open := func(q world.Position) bool {
		return w.CellType(q) != gameworld.Solid
	}
	if world.ShortestPath(d.Start, d.End, open) == nil {
		return fmt.Errorf("%w: %v -> %v", ErrDisconnected, d.Start, d.End)
	}
	return nil
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
