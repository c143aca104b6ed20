package domain

import (
	"fmt"

	"tactical-sim/internal/core/types/enums"
)

// Weapon - огнестрельное оружие. Создаётся пустым, заряжается из AmmoContainer
// того же AmmoType.
type Weapon struct {
	name       string
	damage     int
	ammoType   enums.AmmoType
	ammo       int
	maxAmmo    int
	fireCost   int
	reloadCost int
	weight     int
}

func NewWeapon(name string, damage int, ammoType enums.AmmoType, maxAmmo, fireCost, reloadCost, weight int) (*Weapon, error) {
	switch {
	case damage <= 0:
		return nil, fmt.Errorf("weapon %q: damage must be positive, got %d: %w", name, damage, ErrInvalidConfig)
	case maxAmmo <= 0:
		return nil, fmt.Errorf("weapon %q: max ammo must be positive, got %d: %w", name, maxAmmo, ErrInvalidConfig)
	case weight <= 0:
		return nil, fmt.Errorf("weapon %q: weight must be positive, got %d: %w", name, weight, ErrInvalidConfig)
	case fireCost < 0 || reloadCost < 0:
		return nil, fmt.Errorf("weapon %q: costs must not be negative: %w", name, ErrInvalidConfig)
	}

	return &Weapon{
		name:       name,
		damage:     damage,
		ammoType:   ammoType,
		maxAmmo:    maxAmmo,
		fireCost:   fireCost,
		reloadCost: reloadCost,
		weight:     weight,
	}, nil
}

func (w *Weapon) Name() string             { return w.name }
func (w *Weapon) Weight() int              { return w.weight }
func (w *Weapon) Kind() enums.ItemKind     { return enums.ItemKindWeapon }
func (w *Weapon) Damage() int              { return w.damage }
func (w *Weapon) AmmoType() enums.AmmoType { return w.ammoType }
func (w *Weapon) Ammo() int                { return w.ammo }
func (w *Weapon) MaxAmmo() int             { return w.maxAmmo }
func (w *Weapon) FireCost() int            { return w.fireCost }
func (w *Weapon) ReloadCost() int          { return w.reloadCost }
func (w *Weapon) IsLoaded() bool           { return w.ammo > 0 }

// Fire тратит один патрон и возвращает урон. Пустое оружие даёт 0.
func (w *Weapon) Fire() int {
	if w.ammo <= 0 {
		return 0
	}
	w.ammo--
	return w.damage
}

// Reload добирает магазин из контейнера. Возвращает true, если извлечён
// хотя бы один патрон. Чужой тип патронов и полный магазин - просто false.
func (w *Weapon) Reload(c *AmmoContainer) bool {
	if c == nil || c.AmmoType() != w.ammoType {
		return false
	}

	needed := w.maxAmmo - w.ammo
	if needed <= 0 {
		return false
	}

	got := c.Extract(needed)
	w.ammo += got
	return got > 0
}
