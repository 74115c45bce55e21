package world

import (
	"errors"

	"stonecrawl/pkg/engine/world"
)

// MaxNPCsAtOnce caps how many NPCs a dungeon holds at the same time.
const MaxNPCsAtOnce = 3

var (
	// ErrRosterFull is returned when adding past the roster's capacity.
	ErrRosterFull = errors.New("npc roster full")
	// ErrUnknownNPC is returned for ids that name no live NPC.
	ErrUnknownNPC = errors.New("unknown npc")
)

// Roster stores NPCs in fixed slots. An NPC's id is its slot index and stays
// valid until it is removed; freed slots are reused.
type Roster struct {
	slots    []*NPC
	free     []int
	capacity int
}

// NewRoster creates an empty roster holding at most capacity NPCs.
func NewRoster(capacity int) *Roster {
	return &Roster{capacity: capacity}
}

// Add stores npc, assigns its ID and returns it.
func (r *Roster) Add(npc NPC) (NPCID, error) {
	if r.Len() >= r.capacity {
		return -1, ErrRosterFull
	}

	var slot int
	if n := len(r.free); n > 0 {
		slot = r.free[n-1]
		r.free = r.free[:n-1]
	} else {
		slot = len(r.slots)
		r.slots = append(r.slots, nil)
	}

	npc.ID = NPCID(slot)
	r.slots[slot] = &npc
	return npc.ID, nil
}

// Remove frees the NPC's slot. Removing during Each is safe.
func (r *Roster) Remove(id NPCID) error {
	if r.Get(id) == nil {
		return ErrUnknownNPC
	}
	r.slots[id] = nil
	r.free = append(r.free, int(id))
	return nil
}

// Get returns the live NPC with id, or nil.
func (r *Roster) Get(id NPCID) *NPC {
	if id < 0 || int(id) >= len(r.slots) {
		return nil
	}
	return r.slots[id]
}

// At returns the NPC standing on p.
func (r *Roster) At(p world.Position) (*NPC, bool) {
	for _, npc := range r.slots {
		if npc != nil && npc.Position == p {
			return npc, true
		}
	}
	return nil, false
}

// Each calls fn for every live NPC in slot order until fn returns false.
// NPCs removed by fn are not visited afterwards; NPCs added by fn may be.
func (r *Roster) Each(fn func(*NPC) bool) {
	for i := 0; i < len(r.slots); i++ {
		if npc := r.slots[i]; npc != nil {
			if !fn(npc) {
				return
			}
		}
	}
}

// Len is the number of live NPCs.
func (r *Roster) Len() int {
	return len(r.slots) - len(r.free)
}

// Capacity is the most NPCs the roster holds at once.
func (r *Roster) Capacity() int {
	return r.capacity
}

// Clear removes every NPC.
func (r *Roster) Clear() {
	r.slots = nil
	r.free = nil
}
