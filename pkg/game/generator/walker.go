package generator

import (
	"math/rand"

	"stonecrawl/pkg/engine/world"
	"stonecrawl/pkg/game/quest"
	gameworld "stonecrawl/pkg/game/world"
)

// Carving limits. Past softSteps the walk leans toward the end cell, more
// strongly the longer it runs; at hardSteps it finishes in a straight line.
const (
	softSteps = gameworld.Width * gameworld.Height * 3
	hardSteps = gameworld.Width * gameworld.Height * 12
	turnOdds  = 4
)

// DrunkardWalkGenerator carves a single winding corridor by random walk from
// the start cell until it stumbles onto the end cell.
type DrunkardWalkGenerator struct{}

// Name returns the name of the generator
func (g *DrunkardWalkGenerator) Name() string {
	return "drunkard-walk"
}

// Generate builds a dungeon for quest type t and places player at its start.
func (g *DrunkardWalkGenerator) Generate(t quest.Type, player *gameworld.Player, rng *rand.Rand) (*quest.Dungeon, error) {
	d := newDungeon(t, player, rng)
	d.Exit = carveWalk(d.World.Grid, d.Start, d.End, d.Entrance.Opposite(), rng)
	scatterLoot(d, rng)
	if err := finish(d); err != nil {
		return nil, err
	}
	return d, nil
}

// carveWalk opens a corridor from start to end and returns the direction of
// the final step.
func carveWalk(g *gameworld.Grid, start, end world.Position, dir world.Direction, rng *rand.Rand) world.Direction {
	p := start
	last := dir

	for steps := 0; p != end; steps++ {
		if steps >= hardSteps {
			return carveStraight(g, p, end, last)
		}

		g.SetCell(p, gameworld.Empty)
		p = clampedStep(p, dir)
		last = dir

		if rng.Intn(turnOdds) != 0 {
			continue
		}
		if steps > softSteps && rng.Intn(hardSteps-softSteps) < steps-softSteps {
			dir = toward(p, end, rng)
		} else {
			dir = world.RandomDirection(rng)
		}
	}

	g.SetCell(end, gameworld.Empty)
	return last
}

// toward picks a direction that shortens the distance from p to end,
// choosing between the two axes at random when both are off.
func toward(p, end world.Position, rng *rand.Rand) world.Direction {
	horizontal := world.East
	if end.X < p.X {
		horizontal = world.West
	}
	vertical := world.South
	if end.Y < p.Y {
		vertical = world.North
	}

	switch {
	case p.X == end.X:
		return vertical
	case p.Y == end.Y:
		return horizontal
	case rng.Intn(2) == 0:
		return horizontal
	default:
		return vertical
	}
}
