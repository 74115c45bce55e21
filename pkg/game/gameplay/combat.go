package gameplay

import (
	"github.com/sirupsen/logrus"

	"stonecrawl/pkg/game/locale"
	"stonecrawl/pkg/game/quest"
	"stonecrawl/pkg/game/state"
	"stonecrawl/pkg/game/stats"
	gameworld "stonecrawl/pkg/game/world"
	"stonecrawl/pkg/logger"
)

// Attack spends SpellCost MP to strike the first NPC in the player's line
// of sight. It reports whether the attack was made; without enough MP
// nothing happens.
func Attack(s *state.Session) bool {
	d := s.Quest
	if d == nil {
		return false
	}
	p := s.Player
	if p.Stats.CurrentMP < stats.SpellCost {
		logMessage(s, locale.Get("NOT_ENOUGH_MP"))
		return false
	}
	p.Stats.AdjustMP(-stats.SpellCost)

	w := d.World
	for cell := p.Position.Step(p.Facing, 1); !w.CellType(cell).Opaque(); cell = cell.Step(p.Facing, 1) {
		if npc, ok := w.NPCAt(cell); ok {
			damageNPC(s, npc, stats.ComputeDamage(p.Stats.PhysicalPower, npc.Stats.PhysicalDefense))
			break
		}
	}
	return true
}

// damageNPC applies damage and removes the NPC if it dies.
func damageNPC(s *state.Session, npc *gameworld.NPC, damage int) {
	d := s.Quest
	if npc.Stats.AdjustHP(-damage) {
		return
	}

	d.Kills++
	if d.Type == quest.MainQuestConclusion && npc.Kind == gameworld.Archmage {
		d.Completed = true
		logMessage(s, locale.Get("ARCHMAGE_SLAIN"))
	} else {
		logMessage(s, locale.Getf("NPC_SLAIN", npc.Kind.String()))
	}

	logger.Log.WithFields(logrus.Fields{
		"npc":   npc.Kind.String(),
		"kills": d.Kills,
		"quota": d.NPCQuota,
	}).Debug("npc slain")

	if err := d.World.NPCs.Remove(npc.ID); err != nil {
		logger.Log.WithError(err).Warn("remove slain npc")
	}
}
