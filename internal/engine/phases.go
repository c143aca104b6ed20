package engine

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"tactical-sim/internal/core/types/enums"
	"tactical-sim/internal/domain"
	"tactical-sim/internal/systems"
)

// startPhase восполняет очки времени живым участникам команды, чья очередь.
// Один раз за фазу.
func (g *GameEngine) startPhase() {
	for _, a := range g.team(g.operativesTurn) {
		if a.IsAlive() {
			a.ResetTimePoints()
		}
	}
	g.phaseStarted = true
}

func (g *GameEngine) endPhase() {
	finished := g.operativesTurn
	g.operativesTurn = !g.operativesTurn
	g.turn++
	g.phaseStarted = false

	g.metrics.turns.Add(context.Background(), 1, teamAttr(finished))
	g.addLog(fmt.Sprintf("Ход %d: очередь %s.", g.turn, teamName(g.operativesTurn)), LogTurn)
}

func (g *GameEngine) operativePhase() {
	opts := systems.TargetOptions{RequireLineOfFire: g.cfg.RequireLineOfFire, Level: g.level}
	monsters := g.level.Monsters()

	for _, op := range g.level.Operatives() {
		if !op.IsAlive() {
			continue
		}
		op.Update()

		if op.TimePoints() <= 0 {
			continue
		}
		target, ok := systems.FirstInRange(op, monsters, opts)
		if !ok {
			continue
		}
		g.resolveAttack(op, target)
	}
}

func (g *GameEngine) monsterPhase() {
	opts := systems.TargetOptions{RequireLineOfSight: g.cfg.RequireLineOfSight, Level: g.level}
	operatives := g.level.Operatives()

	for _, m := range g.level.Monsters() {
		if !m.IsAlive() {
			continue
		}
		m.Update()
		m.DecideAction()

		target, ok := systems.NearestVisible(m, operatives, opts)
		if !ok {
			continue
		}

		if systems.InStrikeRange(m.Pos(), target.Pos()) {
			if _, canAttack := m.(domain.Attacker); canAttack {
				g.resolveAttack(m, target)
			}
			continue
		}

		// Заблокированный шаг молча пропускается.
		if systems.StepToward(g.level, m, target.Pos()) {
			g.metrics.moves.Add(context.Background(), 1)
			g.addLog(fmt.Sprintf("%s идёт к %s (%d,%d).", m.Name(), target.Name(), m.Pos().X, m.Pos().Y), LogMove)
		}
	}
}

func (g *GameEngine) resolveAttack(attacker, target domain.Actor) {
	res := systems.ResolveAttack(attacker, target)
	if !res.Performed() {
		return
	}

	g.metrics.attacks.Add(context.Background(), 1, teamAttr(g.operativesTurn))
	g.addLog(res.Message, LogCombat)

	if res.TargetDied && g.cfg.DropLoot {
		systems.DropLoot(g.level, target)
	}
}

func (g *GameEngine) team(operatives bool) []domain.Actor {
	if operatives {
		ops := g.level.Operatives()
		out := make([]domain.Actor, len(ops))
		for i, op := range ops {
			out[i] = op
		}
		return out
	}
	mons := g.level.Monsters()
	out := make([]domain.Actor, len(mons))
	for i, m := range mons {
		out[i] = m
	}
	return out
}

func (g *GameEngine) teamTimePoints(operatives bool) int {
	total := 0
	for _, a := range g.team(operatives) {
		if a.IsAlive() {
			total += a.TimePoints()
		}
	}
	return total
}

// teamExhausted - у всех живых участников команды кончились очки времени.
func (g *GameEngine) teamExhausted(operatives bool) bool {
	for _, a := range g.team(operatives) {
		if a.IsAlive() && a.TimePoints() > 0 {
			return false
		}
	}
	return true
}

func countAlive(actors []domain.Actor) int {
	n := 0
	for _, a := range actors {
		if a.IsAlive() {
			n++
		}
	}
	return n
}

// checkWinConditions проверяет обе стороны на каждом тике.
func (g *GameEngine) checkWinConditions() {
	ops := countAlive(g.team(true))
	mons := countAlive(g.team(false))

	switch {
	case ops == 0:
		g.state = enums.GameStateMonstersWin
	case mons == 0:
		g.state = enums.GameStateOperativesWin
	default:
		return
	}

	g.log.WithFields(logrus.Fields{
		"state": g.state.String(),
		"turn":  g.turn,
		"tick":  g.tick,
	}).Info("Game over.")
	g.addLog(fmt.Sprintf("Игра окончена: %s.", g.state), LogState)
}

func teamName(operatives bool) string {
	if operatives {
		return "оперативников"
	}
	return "монстров"
}
