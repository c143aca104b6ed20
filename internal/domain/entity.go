package domain

import (
	"fmt"

	"tactical-sim/internal/core/types"
	"tactical-sim/internal/core/types/enums"
)

// UpdateFunc - хук, который движок вызывает для каждого живого актора
// в начале его действий в тике.
type UpdateFunc func(self Actor)

// Actor - общий контракт всех участников симуляции.
// Возможности (Movable, Attacker, ...) проверяются через type assertion.
type Actor interface {
	ID() types.EntityID
	Kind() enums.ActorKind
	Name() string
	Health() int
	MaxHealth() int
	TimePoints() int
	MaxTimePoints() int
	Pos() Position
	IsPlaced() bool
	SetPosition(x, y int)
	ClearPosition()
	IsAlive() bool
	ResetTimePoints()
	SpendTimePoints(cost int) bool
	Update()

	base() *Entity
}

// Entity - общая часть всех акторов: здоровье, очки времени, позиция.
// Максимумы фиксируются при создании.
type Entity struct {
	id   types.EntityID
	kind enums.ActorKind
	name string

	health        int
	maxHealth     int
	timePoints    int
	maxTimePoints int

	pos    Position
	placed bool

	self     Actor
	onUpdate UpdateFunc
}

func newEntity(kind enums.ActorKind, name string, maxHealth, maxTimePoints int) (Entity, error) {
	if maxHealth <= 0 {
		return Entity{}, fmt.Errorf("%s %q: max health must be positive, got %d: %w", kind, name, maxHealth, ErrInvalidConfig)
	}
	if maxTimePoints <= 0 {
		return Entity{}, fmt.Errorf("%s %q: max time points must be positive, got %d: %w", kind, name, maxTimePoints, ErrInvalidConfig)
	}

	return Entity{
		kind:          kind,
		name:          name,
		health:        maxHealth,
		maxHealth:     maxHealth,
		timePoints:    maxTimePoints,
		maxTimePoints: maxTimePoints,
	}, nil
}

func (e *Entity) base() *Entity { return e }

func (e *Entity) ID() types.EntityID    { return e.id }
func (e *Entity) Kind() enums.ActorKind { return e.kind }
func (e *Entity) Name() string          { return e.name }
func (e *Entity) Health() int           { return e.health }
func (e *Entity) MaxHealth() int        { return e.maxHealth }
func (e *Entity) TimePoints() int       { return e.timePoints }
func (e *Entity) MaxTimePoints() int    { return e.maxTimePoints }
func (e *Entity) Pos() Position         { return e.pos }
func (e *Entity) IsPlaced() bool        { return e.placed }
func (e *Entity) IsAlive() bool         { return e.health > 0 }

// SetPosition меняет только координаты актора. Занятость клеток ведёт уровень:
// размещать актора нужно через Level.AddEntity / Level.MoveEntity.
func (e *Entity) SetPosition(x, y int) {
	e.pos = Position{X: x, Y: y}
	e.placed = true
}

// ClearPosition вызывается уровнем, когда актор снят с карты.
func (e *Entity) ClearPosition() {
	e.placed = false
}

// ResetTimePoints восполняет бюджет. Движок вызывает его один раз
// в начале фазы команды.
func (e *Entity) ResetTimePoints() {
	e.timePoints = e.maxTimePoints
}

// SpendTimePoints списывает cost, если хватает. Иначе ничего не меняет.
func (e *Entity) SpendTimePoints(cost int) bool {
	if cost < 0 || e.timePoints < cost {
		return false
	}
	e.timePoints -= cost
	return true
}

// SetUpdateHook подключает хук обновления. nil отключает его.
func (e *Entity) SetUpdateHook(fn UpdateFunc) {
	e.onUpdate = fn
}

func (e *Entity) Update() {
	if e.onUpdate != nil {
		e.onUpdate(e.self)
	}
}

// takeDamage: отрицательный урон игнорируется, здоровье не опускается ниже нуля.
func (e *Entity) takeDamage(amount int) {
	if amount <= 0 {
		return
	}
	e.health -= amount
	if e.health < 0 {
		e.health = 0
	}
}

func (e *Entity) die() {
	e.health = 0
}

func (e *Entity) heal(amount int) {
	if amount <= 0 || e.health == 0 {
		return
	}
	e.health = min(e.health+amount, e.maxHealth)
}

// canSee - чистая проверка по евклидову расстоянию, рельеф не учитывается.
func (e *Entity) canSee(radius int, target Actor) bool {
	if IsNilActor(target) {
		return false
	}
	return e.pos.DistanceSquaredTo(target.Pos()) <= radius*radius
}

// attackDistance - евклидово расстояние, округлённое вниз.
func (e *Entity) attackDistance(target Actor) int {
	return int(e.pos.DistanceTo(target.Pos()))
}
