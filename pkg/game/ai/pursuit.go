// Package ai decides how NPCs move.
package ai

import (
	"math/rand"

	"stonecrawl/pkg/engine/world"
	gameworld "stonecrawl/pkg/game/world"
)

// ChooseDirection returns the direction pursuer should step to close on
// target. It only looks one cell ahead: when aligned on an axis it steps
// straight toward the target, otherwise a coin flip decides whether the
// horizontal or vertical step is tried first. When both are blocked it
// returns the horizontal step and the caller's move simply fails.
func ChooseDirection(pursuer, target world.Position, w *gameworld.World, rng *rand.Rand) world.Direction {
	horizontal := world.East
	if target.X < pursuer.X {
		horizontal = world.West
	}
	vertical := world.South
	if target.Y < pursuer.Y {
		vertical = world.North
	}

	free := func(dir world.Direction) bool {
		return w.IsOccupiable(pursuer.Step(dir, 1))
	}

	if pursuer.X == target.X {
		if abs(target.Y-pursuer.Y) == 1 || free(vertical) {
			return vertical
		}
	}
	if pursuer.Y == target.Y {
		if abs(target.X-pursuer.X) == 1 || free(horizontal) {
			return horizontal
		}
	}

	first, second := vertical, horizontal
	if rng.Intn(2) == 0 {
		first, second = horizontal, vertical
	}
	if free(first) {
		return first
	}
	if free(second) {
		return second
	}
	return horizontal
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
