package systems

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"tactical-sim/internal/domain"
	"tactical-sim/pkg/logger"
)

// AttackResult - итог одной атаки.
type AttackResult struct {
	Damage     int
	Spent      int // потраченные очки времени
	TargetDied bool
	Message    string
}

// Performed - атака состоялась (потрачены очки времени или нанесён урон).
func (r AttackResult) Performed() bool {
	return r.Spent > 0 || r.Damage > 0
}

// ResolveAttack проводит атаку через возможность Attacker и пишет итог в лог.
// Актор без Attacker не атакует.
func ResolveAttack(attacker, target domain.Actor) AttackResult {
	combatLogger := logger.Log.WithFields(logrus.Fields{
		"component":     "combat_system",
		"attacker_id":   attacker.ID(),
		"attacker_name": attacker.Name(),
	})

	if domain.IsNilActor(target) {
		combatLogger.Debug("Attack skipped: no target.")
		return AttackResult{}
	}
	combatLogger = combatLogger.WithFields(logrus.Fields{
		"target_id":   target.ID(),
		"target_name": target.Name(),
	})

	att, ok := attacker.(domain.Attacker)
	if !ok {
		combatLogger.Debug("Attack skipped: actor cannot attack.")
		return AttackResult{}
	}

	wasAlive := target.IsAlive()
	hpBefore := target.Health()
	tpBefore := attacker.TimePoints()

	dmg := att.Attack(target)

	res := AttackResult{
		Damage:     dmg,
		Spent:      tpBefore - attacker.TimePoints(),
		TargetDied: wasAlive && !target.IsAlive(),
	}

	combatLogger.WithFields(logrus.Fields{
		"damage":      dmg,
		"spent_tp":    res.Spent,
		"hp_before":   hpBefore,
		"hp_after":    target.Health(),
		"target_died": res.TargetDied,
	}).Debug("Attack resolved.")

	switch {
	case !res.Performed():
		res.Message = fmt.Sprintf("%s не может атаковать %s.", attacker.Name(), target.Name())
	case dmg == 0:
		res.Message = fmt.Sprintf("%s атакует %s, но это бесполезно.", attacker.Name(), target.Name())
	default:
		res.Message = fmt.Sprintf("%s наносит %d урона по %s.", attacker.Name(), dmg, target.Name())
	}
	if res.TargetDied {
		res.Message += fmt.Sprintf(" %s погибает.", target.Name())
	}
	return res
}
