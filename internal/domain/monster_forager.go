package domain

import "tactical-sim/internal/core/types/enums"

const (
	ForagerInventoryCapacity = 15
	ForagerMaxCarryWeight    = 50
)

// Forager - собиратель: носит предметы и помнит точки склада.
// Доставку на склад выполняет стратегия решений, если она подключена.
type Forager struct {
	Monster

	inventory     *Inventory
	storagePoints []Position
}

func NewForager(name string, maxHealth, maxTimePoints, vision, moveCost int) (*Forager, error) {
	base, err := newMonster(enums.ActorKindForager, name, maxHealth, maxTimePoints, vision, moveCost)
	if err != nil {
		return nil, err
	}
	inv, err := NewInventory(ForagerInventoryCapacity)
	if err != nil {
		return nil, err
	}

	f := &Forager{Monster: base, inventory: inv}
	f.self = f
	return f, nil
}

func (f *Forager) Inventory() *Inventory { return f.inventory }

func (f *Forager) CanCarry(weight int) bool {
	return f.inventory.TotalWeight()+weight <= ForagerMaxCarryWeight
}

// AddStoragePoint запоминает точку склада. Дубликаты игнорируются.
func (f *Forager) AddStoragePoint(x, y int) bool {
	p := Position{X: x, Y: y}
	for _, sp := range f.storagePoints {
		if sp == p {
			return false
		}
	}
	f.storagePoints = append(f.storagePoints, p)
	return true
}

func (f *Forager) StoragePoints() []Position {
	out := make([]Position, len(f.storagePoints))
	copy(out, f.storagePoints)
	return out
}

// GoToStorage находит ближайшую (по Манхэттену) точку склада.
// Само перемещение не выполняется. При равенстве побеждает добавленная раньше.
func (f *Forager) GoToStorage() (Position, bool) {
	if len(f.storagePoints) == 0 {
		return Position{}, false
	}

	best := f.storagePoints[0]
	bestDist := f.pos.ManhattanTo(best)
	for _, sp := range f.storagePoints[1:] {
		if d := f.pos.ManhattanTo(sp); d < bestDist {
			best, bestDist = sp, d
		}
	}
	return best, true
}
