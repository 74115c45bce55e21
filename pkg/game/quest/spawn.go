package quest

import (
	"errors"
	"fmt"
	"math/rand"

	"stonecrawl/pkg/engine/world"
	gameworld "stonecrawl/pkg/game/world"
)

// ErrNoSpawnPoint is returned when no cell near the edge of the player's
// sight is free.
var ErrNoSpawnPoint = errors.New("no npc spawn point")

// SpawnPoint looks for a free cell just beyond the player's visibility: each
// direction in turn, starting from a random one, first the cell straight out
// and then cells to either side of it at growing distance. It returns
// world.InvalidPosition if every candidate is blocked.
func (d *Dungeon) SpawnPoint(rng *rand.Rand) world.Position {
	w := d.World
	dir := world.RandomDirection(rng)

	for i := 0; i < world.NumDirections; i, dir = i+1, dir.Right() {
		base := w.CellFartherAway(w.Player.Position, dir, gameworld.MaxVisibilityDepth)
		if !gameworld.InBounds(base) {
			continue
		}
		if w.IsOccupiable(base) {
			return base
		}

		for j := 1; j < gameworld.MaxVisibilityDepth-1; j++ {
			sides := [2]world.Direction{dir.Left(), dir.Right()}
			if rng.Intn(2) == 0 {
				sides[0], sides[1] = sides[1], sides[0]
			}
			for _, side := range sides {
				if p := w.CellFartherAway(base, side, j); w.IsOccupiable(p) {
					return p
				}
			}
		}
	}

	return world.InvalidPosition
}

// SpawnNPC adds an NPC of kind at a spawn point.
func (d *Dungeon) SpawnNPC(kind gameworld.Kind, rng *rand.Rand) (*gameworld.NPC, error) {
	if d.World.NPCs.Len() >= d.World.NPCs.Capacity() {
		return nil, gameworld.ErrRosterFull
	}
	p := d.SpawnPoint(rng)
	if !p.IsValid() {
		return nil, ErrNoSpawnPoint
	}
	npc, err := d.World.AddNPC(kind, p)
	if err != nil {
		return nil, fmt.Errorf("spawn: %w", err)
	}
	return npc, nil
}
