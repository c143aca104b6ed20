package domain

import (
	"fmt"

	"tactical-sim/internal/core/types/enums"
)

// AmmoContainer - коробка патронов. Создаётся полной, опустошается Extract.
type AmmoContainer struct {
	ammoType enums.AmmoType
	charge   int
	capacity int
	weight   int
}

func NewAmmoContainer(ammoType enums.AmmoType, capacity, weight int) (*AmmoContainer, error) {
	if capacity <= 0 {
		return nil, fmt.Errorf("ammo container %s: capacity must be positive, got %d: %w", ammoType, capacity, ErrInvalidConfig)
	}
	if weight <= 0 {
		return nil, fmt.Errorf("ammo container %s: weight must be positive, got %d: %w", ammoType, weight, ErrInvalidConfig)
	}

	return &AmmoContainer{
		ammoType: ammoType,
		charge:   capacity,
		capacity: capacity,
		weight:   weight,
	}, nil
}

func (c *AmmoContainer) Name() string {
	return fmt.Sprintf("Патроны %s (%d/%d)", c.ammoType, c.charge, c.capacity)
}

func (c *AmmoContainer) Weight() int              { return c.weight }
func (c *AmmoContainer) Kind() enums.ItemKind     { return enums.ItemKindAmmo }
func (c *AmmoContainer) AmmoType() enums.AmmoType { return c.ammoType }
func (c *AmmoContainer) Charge() int              { return c.charge }
func (c *AmmoContainer) Capacity() int            { return c.capacity }
func (c *AmmoContainer) IsEmpty() bool            { return c.charge == 0 }

// Extract забирает до amount патронов и возвращает сколько реально досталось.
func (c *AmmoContainer) Extract(amount int) int {
	if amount <= 0 || c.charge == 0 {
		return 0
	}
	if amount > c.charge {
		amount = c.charge
	}
	c.charge -= amount
	return amount
}
