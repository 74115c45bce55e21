package world

import (
	"errors"
	"fmt"

	"stonecrawl/pkg/engine/world"
	"stonecrawl/pkg/game/stats"
)

// ErrNotOccupiable is returned when placing an NPC on a blocked cell.
var ErrNotOccupiable = errors.New("cell not occupiable")

// Player is the player character.
type Player struct {
	Position world.Position
	Facing   world.Direction
	Stats    stats.Block
	Gold     int
	HasKey   bool
}

// MaxGold is the most gold the player can carry.
const MaxGold = 9999

// AddGold adds amount to the purse, capped at MaxGold, and reports whether
// all of it fit.
func (p *Player) AddGold(amount int) bool {
	p.Gold += amount
	if p.Gold > MaxGold {
		p.Gold = MaxGold
		return false
	}
	return true
}

// NewPlayer returns a player with default base stats.
func NewPlayer() *Player {
	return &Player{
		Facing: world.North,
		Stats:  stats.New(stats.DefaultBaseStat, stats.DefaultBaseStat, stats.DefaultBaseStat),
	}
}

// World is the grid, the player and the NPCs standing on it.
type World struct {
	Grid   *Grid
	NPCs   *Roster
	Player *Player
}

// New creates a world over grid with an empty roster.
func New(grid *Grid, player *Player) *World {
	return &World{Grid: grid, NPCs: NewRoster(MaxNPCsAtOnce), Player: player}
}

// CellType returns the cell at p; Solid outside the grid.
func (w *World) CellType(p world.Position) Cell {
	return w.Grid.Cell(p)
}

// IsOccupiable reports whether an NPC or the player may step onto p: walkable
// terrain with nobody standing on it.
func (w *World) IsOccupiable(p world.Position) bool {
	if !w.CellType(p).Walkable() {
		return false
	}
	if w.Player != nil && w.Player.Position == p {
		return false
	}
	_, taken := w.NPCs.At(p)
	return !taken
}

// NPCAt returns the NPC standing on p.
func (w *World) NPCAt(p world.Position) (*NPC, bool) {
	return w.NPCs.At(p)
}

// CellFartherAway returns the position distance cells from p in dir. It may
// be outside the grid.
func (w *World) CellFartherAway(p world.Position, dir world.Direction, distance int) world.Position {
	return p.Step(dir, distance)
}

// AddNPC places a new NPC of kind at p, deriving its stats from the player.
func (w *World) AddNPC(kind Kind, p world.Position) (*NPC, error) {
	if !w.IsOccupiable(p) {
		return nil, fmt.Errorf("add %v at %v: %w", kind, p, ErrNotOccupiable)
	}
	base := stats.New(stats.DefaultBaseStat, stats.DefaultBaseStat, stats.DefaultBaseStat)
	if w.Player != nil {
		base = w.Player.Stats
	}
	id, err := w.NPCs.Add(NPC{Kind: kind, Position: p, Stats: NPCStats(kind, base)})
	if err != nil {
		return nil, fmt.Errorf("add %v at %v: %w", kind, p, err)
	}
	return w.NPCs.Get(id), nil
}

// MoveNPC steps npc one cell in dir if the destination is occupiable and
// reports whether it moved.
func (w *World) MoveNPC(npc *NPC, dir world.Direction) bool {
	dest := npc.Position.Step(dir, 1)
	if !w.IsOccupiable(dest) {
		return false
	}
	npc.Position = dest
	return true
}
