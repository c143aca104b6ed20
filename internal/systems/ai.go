package systems

import "tactical-sim/internal/domain"

// ChaseStep - один шаг преследования: по оси с большим смещением,
// при равенстве смещений по Y. Возвращает (0, 0), если цель в той же клетке.
func ChaseStep(from, to domain.Position) (int, int) {
	dx := to.X - from.X
	dy := to.Y - from.Y

	if abs(dx) > abs(dy) {
		return sign(dx), 0
	}
	return 0, sign(dy)
}

// InStrikeRange - цель в соседней клетке (включая диагональ).
func InStrikeRange(from, to domain.Position) bool {
	return abs(to.X-from.X) <= 1 && abs(to.Y-from.Y) <= 1
}
