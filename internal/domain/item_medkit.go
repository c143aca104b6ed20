package domain

import (
	"fmt"

	"tactical-sim/internal/core/types/enums"
)

type MedKit struct {
	name       string
	healAmount int
	useCost    int
	weight     int
}

func NewMedKit(name string, healAmount, useCost, weight int) (*MedKit, error) {
	switch {
	case healAmount <= 0:
		return nil, fmt.Errorf("medkit %q: heal amount must be positive, got %d: %w", name, healAmount, ErrInvalidConfig)
	case weight <= 0:
		return nil, fmt.Errorf("medkit %q: weight must be positive, got %d: %w", name, weight, ErrInvalidConfig)
	case useCost < 0:
		return nil, fmt.Errorf("medkit %q: use cost must not be negative, got %d: %w", name, useCost, ErrInvalidConfig)
	}
	return &MedKit{name: name, healAmount: healAmount, useCost: useCost, weight: weight}, nil
}

func (m *MedKit) Name() string         { return m.name }
func (m *MedKit) Weight() int          { return m.weight }
func (m *MedKit) Kind() enums.ItemKind { return enums.ItemKindMedKit }
func (m *MedKit) HealAmount() int      { return m.healAmount }
func (m *MedKit) UseCost() int         { return m.useCost }
