package domain

import "fmt"

// Inventory - ограниченный список ссылок на предметы в порядке добавления.
// Предметами не владеет: тот же предмет может лежать и на земле.
type Inventory struct {
	items    []Item
	capacity int
}

func NewInventory(capacity int) (*Inventory, error) {
	if capacity <= 0 {
		return nil, fmt.Errorf("inventory capacity must be positive, got %d: %w", capacity, ErrInvalidConfig)
	}
	return &Inventory{
		items:    make([]Item, 0, capacity),
		capacity: capacity,
	}, nil
}

// Add возвращает false при nil-предмете или заполненном инвентаре.
func (inv *Inventory) Add(item Item) bool {
	if IsNilItem(item) || len(inv.items) >= inv.capacity {
		return false
	}
	inv.items = append(inv.items, item)
	return true
}

// Remove убирает именно этот экземпляр (сравнение по идентичности).
func (inv *Inventory) Remove(item Item) bool {
	idx := inv.indexOf(item)
	if idx < 0 {
		return false
	}
	inv.items = append(inv.items[:idx], inv.items[idx+1:]...)
	return true
}

func (inv *Inventory) Contains(item Item) bool {
	return inv.indexOf(item) >= 0
}

func (inv *Inventory) indexOf(item Item) int {
	if IsNilItem(item) {
		return -1
	}
	for i, it := range inv.items {
		if it == item {
			return i
		}
	}
	return -1
}

// Items возвращает копию списка, порядок - порядок добавления.
func (inv *Inventory) Items() []Item {
	out := make([]Item, len(inv.items))
	copy(out, inv.items)
	return out
}

func (inv *Inventory) Count() int    { return len(inv.items) }
func (inv *Inventory) Capacity() int { return inv.capacity }
func (inv *Inventory) IsFull() bool  { return len(inv.items) >= inv.capacity }

func (inv *Inventory) TotalWeight() int {
	total := 0
	for _, it := range inv.items {
		total += it.Weight()
	}
	return total
}
