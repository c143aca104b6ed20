package domain

import (
	"fmt"

	"tactical-sim/internal/core/types/enums"
)

// DecisionFunc - стратегия принятия решений монстра.
// По умолчанию не задана, и DecideAction ничего не делает.
type DecisionFunc func(self MonsterActor)

// Monster - общая часть монстров: зрение, стоимость шага, хук решений.
// Сам по себе не создаётся, только через конкретные варианты.
type Monster struct {
	Entity

	vision   int
	moveCost int
	decide   DecisionFunc
}

func newMonster(kind enums.ActorKind, name string, maxHealth, maxTimePoints, vision, moveCost int) (Monster, error) {
	base, err := newEntity(kind, name, maxHealth, maxTimePoints)
	if err != nil {
		return Monster{}, err
	}
	if vision < 0 {
		return Monster{}, fmt.Errorf("%s %q: vision must not be negative, got %d: %w", kind, name, vision, ErrInvalidConfig)
	}
	if moveCost <= 0 {
		return Monster{}, fmt.Errorf("%s %q: move cost must be positive, got %d: %w", kind, name, moveCost, ErrInvalidConfig)
	}
	return Monster{Entity: base, vision: vision, moveCost: moveCost}, nil
}

func (m *Monster) TakeDamage(amount int) { m.takeDamage(amount) }
func (m *Monster) Die()                  { m.die() }

func (m *Monster) MovementCost() int { return m.moveCost }

func (m *Monster) Move(x, y int) bool {
	if !m.SpendTimePoints(m.moveCost) {
		return false
	}
	m.pos = Position{X: x, Y: y}
	return true
}

func (m *Monster) VisionRadius() int { return m.vision }

func (m *Monster) CanSee(target Actor) bool {
	return m.canSee(m.vision, target)
}

func (m *Monster) SetDecisionHook(fn DecisionFunc) { m.decide = fn }
func (m *Monster) HasDecisionHook() bool           { return m.decide != nil }

// DecideAction вызывает подключённую стратегию. Без неё - no-op.
func (m *Monster) DecideAction() {
	if m.decide == nil {
		return
	}
	if self, ok := m.self.(MonsterActor); ok {
		m.decide(self)
	}
}
