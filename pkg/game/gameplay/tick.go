package gameplay

import (
	"errors"

	"github.com/sirupsen/logrus"

	"stonecrawl/pkg/game/ai"
	"stonecrawl/pkg/game/quest"
	"stonecrawl/pkg/game/state"
	"stonecrawl/pkg/game/stats"
	gameworld "stonecrawl/pkg/game/world"
	"stonecrawl/pkg/logger"
)

// spawnOdds is the one-in-N chance per tick of a new NPC appearing.
const spawnOdds = 5

// Tick advances the world by one second: every NPC attacks the player if
// adjacent or steps toward them otherwise, a new NPC may spawn, and the
// player recovers some HP and MP.
func Tick(s *state.Session) {
	d := s.Quest
	if d == nil {
		return
	}
	w := d.World
	p := s.Player

	w.NPCs.Each(func(npc *gameworld.NPC) bool {
		if !npc.Position.Touching(p.Position) {
			w.MoveNPC(npc, ai.ChooseDirection(npc.Position, p.Position, w, s.Rng))
			return true
		}

		damage := stats.ComputeDamage(npc.Stats.PhysicalPower, p.Stats.PhysicalDefense)
		alive := p.Stats.AdjustHP(-damage)
		s.Listener.PlayerHit(damage)
		if !alive {
			playerDied(s)
			return false
		}
		return true
	})
	if s.Quest == nil {
		return
	}

	if d.Kills < d.NPCQuota && s.Rng.Intn(spawnOdds) == 0 {
		spawn(s, d)
	}

	p.Stats.AdjustHP(stats.HPRecovery)
	p.Stats.AdjustMP(stats.MPRecovery)
}

func spawn(s *state.Session, d *quest.Dungeon) {
	npc, err := d.SpawnNPC(gameworld.RandomKind(s.Rng), s.Rng)
	switch {
	case err == nil:
		logger.Log.WithFields(logrus.Fields{
			"npc": npc.Kind.String(),
			"at":  npc.Position.String(),
		}).Debug("npc spawned")
	case errors.Is(err, gameworld.ErrRosterFull), errors.Is(err, quest.ErrNoSpawnPoint):
		logger.Log.WithError(err).Trace("spawn skipped")
	default:
		logger.Log.WithError(err).Warn("spawn failed")
	}
}
