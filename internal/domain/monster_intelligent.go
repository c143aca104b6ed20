package domain

import (
	"fmt"

	"tactical-sim/internal/core/types/enums"
)

const (
	IntelligentMonsterWeaponRange  = 3
	IntelligentMonsterMeleeRange   = 1
	IntelligentMonsterMeleeDamage  = 10
	IntelligentMonsterWeaponDamage = 15
	IntelligentMonsterAttackCost   = 2
)

// IntelligentMonster умеет подбирать оружие. С оружием бьёт дальше и сильнее,
// патроны при этом не расходуются.
type IntelligentMonster struct {
	Monster

	accuracy int
	weapon   *Weapon
}

func NewIntelligentMonster(name string, maxHealth, maxTimePoints, vision, moveCost, accuracy int) (*IntelligentMonster, error) {
	base, err := newMonster(enums.ActorKindIntelligentMonster, name, maxHealth, maxTimePoints, vision, moveCost)
	if err != nil {
		return nil, err
	}
	if accuracy <= 0 {
		return nil, fmt.Errorf("intelligent monster %q: accuracy must be positive, got %d: %w", name, accuracy, ErrInvalidConfig)
	}

	im := &IntelligentMonster{Monster: base, accuracy: accuracy}
	im.self = im
	return im, nil
}

func (m *IntelligentMonster) Accuracy() int   { return m.accuracy }
func (m *IntelligentMonster) Weapon() *Weapon { return m.weapon }

func (m *IntelligentMonster) AttackRange() int {
	if m.weapon != nil {
		return IntelligentMonsterWeaponRange
	}
	return IntelligentMonsterMeleeRange
}

func (m *IntelligentMonster) Attack(target Actor) int {
	if IsNilActor(target) || m.attackDistance(target) > m.AttackRange() {
		return 0
	}
	if !m.SpendTimePoints(IntelligentMonsterAttackCost) {
		return 0
	}

	dmg := IntelligentMonsterMeleeDamage
	if m.weapon != nil {
		dmg = IntelligentMonsterWeaponDamage
	}
	return applyDamage(target, dmg)
}

// PickUpWeapon берёт оружие, бросая текущее. Чтобы прежнее оружие осталось
// на земле, вызывающий сначала забирает его через DropWeapon.
func (m *IntelligentMonster) PickUpWeapon(w *Weapon) bool {
	if w == nil {
		return false
	}
	m.weapon = w
	return true
}

// DropWeapon отдаёт оружие вызывающему (например, чтобы положить в клетку).
func (m *IntelligentMonster) DropWeapon() *Weapon {
	w := m.weapon
	m.weapon = nil
	return w
}
