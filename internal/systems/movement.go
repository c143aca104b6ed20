package systems

import (
	"github.com/sirupsen/logrus"

	"tactical-sim/internal/domain"
	"tactical-sim/internal/world"
	"tactical-sim/pkg/logger"
)

// TryMove перемещает актора так, чтобы клетка и координаты не расходились:
// сначала проверяются очки времени и проходимость, затем уровень переносит
// актора, затем Movable списывает стоимость. Любая неудача - false без изменений.
func TryMove(lvl *world.Level, a domain.Actor, x, y int) bool {
	mover, ok := a.(domain.Movable)
	if !ok {
		return false
	}
	if a.TimePoints() < mover.MovementCost() {
		return false
	}
	if !lvl.IsPassable(x, y) {
		return false
	}
	if !lvl.MoveEntity(a, x, y) {
		return false
	}
	mover.Move(x, y)

	logger.Log.WithFields(logrus.Fields{
		"component": "movement_system",
		"actor":     a.Name(),
		"x":         x,
		"y":         y,
		"tp_left":   a.TimePoints(),
	}).Debug("Actor moved.")
	return true
}

// StepToward делает один шаг преследования к цели.
func StepToward(lvl *world.Level, a domain.Actor, target domain.Position) bool {
	dx, dy := ChaseStep(a.Pos(), target)
	if dx == 0 && dy == 0 {
		return false
	}
	next := a.Pos().Shift(dx, dy)
	return TryMove(lvl, a, next.X, next.Y)
}
