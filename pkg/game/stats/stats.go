// Package stats holds character stat blocks and the damage formula.
package stats

const (
	// MinDamage is the least damage any successful hit deals.
	MinDamage = 2
	// DefaultBaseStat is a new player's strength, agility and intellect.
	DefaultBaseStat = 10
	// SpellCost is the MP an attack consumes.
	SpellCost = 2
	// HPRecovery and MPRecovery are restored per world tick.
	HPRecovery = 1
	MPRecovery = 1
)

// Block is a character's stats. Strength, Agility and Intellect are base
// values; the rest are derived by Derive.
type Block struct {
	Strength  int
	Agility   int
	Intellect int

	MaxHP           int
	MaxMP           int
	PhysicalPower   int
	PhysicalDefense int
	MagicalPower    int
	MagicalDefense  int

	CurrentHP int
	CurrentMP int
}

// New returns a block with the given base stats, derived stats filled in
// and HP/MP full.
func New(strength, agility, intellect int) Block {
	b := Block{Strength: strength, Agility: agility, Intellect: intellect}
	b.Derive()
	b.Restore()
	return b
}

// Derive recomputes the minor stats from the base stats.
func (b *Block) Derive() {
	b.MaxHP = b.Strength * 10
	b.MaxMP = b.Intellect * 10
	b.PhysicalPower = b.Strength*2 + b.Agility
	b.PhysicalDefense = b.Strength + b.Agility*2
	b.MagicalPower = b.Intellect*2 + b.Agility
	b.MagicalDefense = b.Intellect + b.Agility*2
}

// Restore fills HP and MP.
func (b *Block) Restore() {
	b.CurrentHP = b.MaxHP
	b.CurrentMP = b.MaxMP
}

// AdjustHP adds amount (which may be negative) to CurrentHP, clamped to
// [0, MaxHP], and reports whether the character is still alive.
func (b *Block) AdjustHP(amount int) bool {
	b.CurrentHP = clamp(b.CurrentHP+amount, 0, b.MaxHP)
	return b.CurrentHP > 0
}

// AdjustMP adds amount to CurrentMP, clamped to [0, MaxMP].
func (b *Block) AdjustMP(amount int) {
	b.CurrentMP = clamp(b.CurrentMP+amount, 0, b.MaxMP)
}

// Alive reports whether CurrentHP is positive.
func (b *Block) Alive() bool {
	return b.CurrentHP > 0
}

// HPRatio and MPRatio are current/max in [0,1]; a zero max reads as empty.
func (b *Block) HPRatio() float64 { return ratio(b.CurrentHP, b.MaxHP) }
func (b *Block) MPRatio() float64 { return ratio(b.CurrentMP, b.MaxMP) }

// ComputeDamage is the raw damage of an attack with power against a target
// with defense: power minus half the defense, never below MinDamage.
func ComputeDamage(power, defense int) int {
	dmg := power - defense/2
	if dmg < MinDamage {
		return MinDamage
	}
	return dmg
}

func ratio(cur, max int) float64 {
	if max <= 0 {
		return 0
	}
	return float64(clamp(cur, 0, max)) / float64(max)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
