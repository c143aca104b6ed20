package domain

// Movable - актор умеет перемещаться за очки времени.
// Move меняет только координаты; клетку обновляет Level.MoveEntity.
type Movable interface {
	MovementCost() int
	Move(x, y int) bool
}

// Attacker - актор умеет атаковать. Attack возвращает нанесённый урон,
// 0 означает, что атака не состоялась или цель неуязвима.
type Attacker interface {
	AttackRange() int
	Attack(target Actor) int
}

type InventoryHolder interface {
	Inventory() *Inventory
	CanCarry(weight int) bool
}

type Visible interface {
	VisionRadius() int
	CanSee(target Actor) bool
}

type Mortal interface {
	TakeDamage(amount int)
	Die()
	IsAlive() bool
}

// MonsterActor - всё, что движок ждёт от участника команды монстров.
type MonsterActor interface {
	Actor
	Movable
	Visible
	Mortal
	DecideAction()
	SetDecisionHook(fn DecisionFunc)
	HasDecisionHook() bool
}

// applyDamage наносит урон, только если цель смертна.
func applyDamage(target Actor, amount int) int {
	m, ok := target.(Mortal)
	if !ok || IsNilActor(target) {
		return 0
	}
	m.TakeDamage(amount)
	return amount
}
