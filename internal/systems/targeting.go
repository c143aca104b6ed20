package systems

import (
	"tactical-sim/internal/domain"
	"tactical-sim/internal/world"
)

// viewer - актор, который умеет смотреть.
type viewer interface {
	domain.Actor
	domain.Visible
}

// NearestVisible выбирает ближайшую (по Манхэттену) живую видимую цель.
// При равенстве побеждает первая в списке.
func NearestVisible[T domain.Actor](v viewer, candidates []T, opts TargetOptions) (T, bool) {
	var best T
	found := false
	bestDist := 0

	for _, c := range candidates {
		if !c.IsAlive() || !v.CanSee(c) {
			continue
		}
		if opts.RequireLineOfSight && opts.Level != nil && !HasLineOfSight(opts.Level, v.Pos(), c.Pos()) {
			continue
		}
		d := v.Pos().ManhattanTo(c.Pos())
		if !found || d < bestDist {
			best, bestDist, found = c, d, true
		}
	}
	return best, found
}

// TargetOptions - дополнительные ограничения выбора цели.
type TargetOptions struct {
	// RequireLineOfFire - цель должна быть на линии огня (рельеф без стекла и стен).
	RequireLineOfFire  bool
	// RequireLineOfSight - стены заслоняют цель от взгляда (стекло - нет).
	RequireLineOfSight bool
	Level              *world.Level
}

// FirstInRange возвращает первую живую видимую цель в пределах дальности
// атаки (по Чебышёву).
func FirstInRange[T domain.Actor](attacker interface {
	viewer
	domain.Attacker
}, candidates []T, opts TargetOptions) (T, bool) {
	var zero T
	rng := attacker.AttackRange()

	for _, c := range candidates {
		if !c.IsAlive() || !attacker.CanSee(c) {
			continue
		}
		if attacker.Pos().ChebyshevTo(c.Pos()) > rng {
			continue
		}
		if opts.RequireLineOfFire && opts.Level != nil && !HasLineOfFire(opts.Level, attacker.Pos(), c.Pos()) {
			continue
		}
		return c, true
	}
	return zero, false
}
