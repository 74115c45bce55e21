package generator

import (
	"math/rand"

	"stonecrawl/pkg/game/quest"
	gameworld "stonecrawl/pkg/game/world"
)

// StraightGenerator joins start and end with the shortest L-shaped corridor.
// It is mostly useful for tests and for checking the renderer.
type StraightGenerator struct{}

// Name returns the name of the generator
func (g *StraightGenerator) Name() string {
	return "straight"
}

// Generate builds a dungeon for quest type t and places player at its start.
func (g *StraightGenerator) Generate(t quest.Type, player *gameworld.Player, rng *rand.Rand) (*quest.Dungeon, error) {
	d := newDungeon(t, player, rng)
	d.Exit = carveStraight(d.World.Grid, d.Start, d.End, d.Entrance.Opposite())
	if err := finish(d); err != nil {
		return nil, err
	}
	return d, nil
}
