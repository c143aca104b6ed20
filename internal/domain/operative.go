package domain

import (
	"fmt"

	"tactical-sim/internal/core/types/enums"
)

const (
	OperativeMoveCost          = 1
	OperativeFireCost          = 1
	OperativeReloadCost        = 2
	OperativeInventoryCapacity = 20
	OperativeHandSlots         = 2
	OperativeWeaponRange       = 10
	// carry limit = strength * OperativeCarryPerStrength
	OperativeCarryPerStrength = 10
)

// Operative - управляемый боец. Реализует все пять возможностей.
type Operative struct {
	Entity

	strength int
	accuracy int
	vision   int

	inventory *Inventory
	active    *Weapon
	secondary *Weapon
}

func NewOperative(name string, maxHealth, maxTimePoints, strength, accuracy, vision int) (*Operative, error) {
	base, err := newEntity(enums.ActorKindOperative, name, maxHealth, maxTimePoints)
	if err != nil {
		return nil, err
	}
	if strength <= 0 || accuracy <= 0 || vision <= 0 {
		return nil, fmt.Errorf("operative %q: strength, accuracy and vision must be positive: %w", name, ErrInvalidConfig)
	}

	inv, err := NewInventory(OperativeInventoryCapacity)
	if err != nil {
		return nil, err
	}

	op := &Operative{
		Entity:    base,
		strength:  strength,
		accuracy:  accuracy,
		vision:    vision,
		inventory: inv,
	}
	op.self = op
	return op, nil
}

func (o *Operative) Strength() int            { return o.strength }
func (o *Operative) Accuracy() int            { return o.accuracy }
func (o *Operative) HandSlots() int           { return OperativeHandSlots }
func (o *Operative) ActiveWeapon() *Weapon    { return o.active }
func (o *Operative) SecondaryWeapon() *Weapon { return o.secondary }

// --- Mortal ---

func (o *Operative) TakeDamage(amount int) { o.takeDamage(amount) }
func (o *Operative) Die()                  { o.die() }

// Heal не поднимает здоровье выше максимума и не воскрешает.
func (o *Operative) Heal(amount int) { o.heal(amount) }

// --- Movable ---

func (o *Operative) MovementCost() int { return OperativeMoveCost }

func (o *Operative) Move(x, y int) bool {
	if !o.SpendTimePoints(OperativeMoveCost) {
		return false
	}
	o.pos = Position{X: x, Y: y}
	return true
}

// --- Visible ---

func (o *Operative) VisionRadius() int { return o.vision }

func (o *Operative) CanSee(target Actor) bool {
	return o.canSee(o.vision, target)
}

// --- Attacker ---

// AttackRange - без оружия оперативник не атакует.
func (o *Operative) AttackRange() int {
	if o.active == nil {
		return 0
	}
	return OperativeWeaponRange
}

// Attack стреляет из активного оружия: 1 патрон и 1 очко времени.
func (o *Operative) Attack(target Actor) int {
	if IsNilActor(target) || o.active == nil || !o.active.IsLoaded() {
		return 0
	}
	if !o.SpendTimePoints(OperativeFireCost) {
		return 0
	}
	return applyDamage(target, o.active.Fire())
}

// --- InventoryHolder ---

func (o *Operative) Inventory() *Inventory { return o.inventory }

func (o *Operative) CanCarry(weight int) bool {
	return o.inventory.TotalWeight()+weight <= o.strength*OperativeCarryPerStrength
}

// EquipWeapon делает w активным оружием. Прежнее активное оружие
// возвращается в инвентарь; если места нет, экипировка не происходит.
func (o *Operative) EquipWeapon(w *Weapon) bool {
	return o.equipInto(&o.active, w)
}

// EquipSecondaryWeapon - то же для второй руки.
func (o *Operative) EquipSecondaryWeapon(w *Weapon) bool {
	if OperativeHandSlots < 2 {
		return false
	}
	return o.equipInto(&o.secondary, w)
}

func (o *Operative) equipInto(slot **Weapon, w *Weapon) bool {
	if w == nil || w == o.active || w == o.secondary {
		return false
	}

	fromInventory := o.inventory.Remove(w)
	if prev := *slot; prev != nil {
		if !o.inventory.Add(prev) {
			if fromInventory {
				o.inventory.Add(w)
			}
			return false
		}
	}
	*slot = w
	return true
}

// SwitchWeapons меняет местами активное и запасное оружие.
func (o *Operative) SwitchWeapons() bool {
	if o.secondary == nil {
		return false
	}
	o.active, o.secondary = o.secondary, o.active
	return true
}

// ReloadWeapon берёт первый подходящий контейнер из инвентаря.
// Очки времени списываются только при успехе.
func (o *Operative) ReloadWeapon() bool {
	if o.active == nil || o.timePoints < OperativeReloadCost {
		return false
	}

	for _, it := range o.inventory.Items() {
		box, ok := it.(*AmmoContainer)
		if !ok {
			continue
		}
		if o.active.Reload(box) {
			o.timePoints -= OperativeReloadCost
			return true
		}
	}
	return false
}

// UseMedKit лечит оперативника аптечкой из инвентаря и расходует её.
func (o *Operative) UseMedKit(kit *MedKit) bool {
	if kit == nil || !o.IsAlive() || !o.inventory.Contains(kit) {
		return false
	}
	if !o.SpendTimePoints(kit.UseCost()) {
		return false
	}
	o.heal(kit.HealAmount())
	o.inventory.Remove(kit)
	return true
}
