// Package generator builds the dungeon for a new quest.
package generator

import (
	"errors"
	"math/rand"
	"sort"

	"stonecrawl/pkg/game/quest"
	gameworld "stonecrawl/pkg/game/world"
)

var (
	// ErrDisconnected means the carved corridor does not join start and end.
	ErrDisconnected = errors.New("generator: start and end not connected")
	// ErrUnknownGenerator is returned by Lookup for unregistered names.
	ErrUnknownGenerator = errors.New("generator: unknown generator")
)

// Generator creates a populated dungeon for a quest and places the player at
// its entrance.
type Generator interface {
	Generate(t quest.Type, player *gameworld.Player, rng *rand.Rand) (*quest.Dungeon, error)
	Name() string
}

// Available generators
var (
	DrunkardWalk = &DrunkardWalkGenerator{}
	Straight     = &StraightGenerator{}
)

var registry = map[string]Generator{
	DrunkardWalk.Name(): DrunkardWalk,
	Straight.Name():     Straight,
}

// DefaultGenerator is the default map generator
var DefaultGenerator Generator = DrunkardWalk

// Lookup returns the registered generator called name.
func Lookup(name string) (Generator, error) {
	g, ok := registry[name]
	if !ok {
		return nil, ErrUnknownGenerator
	}
	return g, nil
}

// Names lists the registered generators in sorted order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for n := range registry {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
