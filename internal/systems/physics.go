package systems

import (
	"github.com/sirupsen/logrus"

	"tactical-sim/internal/domain"
	"tactical-sim/internal/world"
	"tactical-sim/pkg/logger"
)

// HasLineOfSight проверяет, что взгляд проходит по прозрачным клеткам.
// Движок проверяет это только при RequireLineOfSight: зрение - дистанция.
func HasLineOfSight(lvl *world.Level, p1, p2 domain.Position) bool {
	return traceLine(lvl, p1, p2, world.CellType.IsTransparent, "sight")
}

// HasLineOfFire проверяет, что выстрел проходит по простреливаемым клеткам.
func HasLineOfFire(lvl *world.Level, p1, p2 domain.Position) bool {
	return traceLine(lvl, p1, p2, world.CellType.IsShootable, "fire")
}

// traceLine - алгоритм Брезенхэма (только целочисленная арифметика).
// Стартовая и конечная клетки не проверяются.
func traceLine(lvl *world.Level, p1, p2 domain.Position, pass func(world.CellType) bool, kind string) bool {
	losLogger := logger.Log.WithFields(logrus.Fields{
		"component": "physics_system",
		"line":      kind,
		"start_pos": p1,
		"end_pos":   p2,
	})

	if p1 == p2 {
		return true
	}

	x0, y0 := p1.X, p1.Y
	x1, y1 := p2.X, p2.Y

	dx := abs(x1 - x0)
	dy := abs(y1 - y0)
	sx, sy := sign(x1-x0), sign(y1-y0)

	err := dx - dy

	for {
		isStart := x0 == p1.X && y0 == p1.Y
		isEnd := x0 == p2.X && y0 == p2.Y

		if !isStart && !isEnd {
			kindAt, cellErr := lvl.CellTypeAt(x0, y0)
			if cellErr != nil || !pass(kindAt) {
				losLogger.WithField("blocking_point", domain.Position{X: x0, Y: y0}).
					Debug("Line is blocked.")
				return false
			}
		}

		if x0 == x1 && y0 == y1 {
			break
		}

		e2 := err * 2
		if e2 > -dy {
			err -= dy
			x0 += sx
		}
		if e2 < dx {
			err += dx
			y0 += sy
		}
	}

	return true
}

func sign(x int) int {
	if x > 0 {
		return 1
	}
	if x < 0 {
		return -1
	}
	return 0
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
