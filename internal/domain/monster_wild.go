package domain

import (
	"fmt"

	"tactical-sim/internal/core/types/enums"
)

const (
	WildMonsterAttackRange = 1
	WildMonsterAttackCost  = 1
)

// WildMonster - зверь ближнего боя.
type WildMonster struct {
	Monster

	damage   int
	accuracy int
}

func NewWildMonster(name string, maxHealth, maxTimePoints, vision, moveCost, damage, accuracy int) (*WildMonster, error) {
	base, err := newMonster(enums.ActorKindWildMonster, name, maxHealth, maxTimePoints, vision, moveCost)
	if err != nil {
		return nil, err
	}
	if damage <= 0 {
		return nil, fmt.Errorf("wild monster %q: damage must be positive, got %d: %w", name, damage, ErrInvalidConfig)
	}
	if accuracy <= 0 {
		return nil, fmt.Errorf("wild monster %q: accuracy must be positive, got %d: %w", name, accuracy, ErrInvalidConfig)
	}

	wm := &WildMonster{Monster: base, damage: damage, accuracy: accuracy}
	wm.self = wm
	return wm, nil
}

func (w *WildMonster) Damage() int      { return w.damage }
func (w *WildMonster) Accuracy() int    { return w.accuracy }
func (w *WildMonster) AttackRange() int { return WildMonsterAttackRange }

func (w *WildMonster) Attack(target Actor) int {
	if IsNilActor(target) || w.attackDistance(target) > WildMonsterAttackRange {
		return 0
	}
	if !w.SpendTimePoints(WildMonsterAttackCost) {
		return 0
	}
	return applyDamage(target, w.damage)
}
