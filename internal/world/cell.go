package world

import (
	"tactical-sim/internal/core/types"
	"tactical-sim/internal/domain"
)

// CellType - классификация рельефа. Проходимость, прозрачность
// и простреливаемость задаются независимо.
type CellType uint8

const (
	CellEmpty CellType = iota
	CellWall
	CellGlass
	CellPartition
	CellStorage
)

var cellTypeToRune = map[CellType]rune{
	CellEmpty:     '.',
	CellWall:      '#',
	CellGlass:     'G',
	CellPartition: 'P',
	CellStorage:   'S',
}

var runeToCellType = map[rune]CellType{
	'.': CellEmpty,
	'#': CellWall,
	'G': CellGlass,
	'P': CellPartition,
	'S': CellStorage,
}

var cellTypeNames = map[CellType]string{
	CellEmpty:     "EMPTY",
	CellWall:      "WALL",
	CellGlass:     "GLASS",
	CellPartition: "PARTITION",
	CellStorage:   "STORAGE_POINT",
}

func (t CellType) String() string {
	if s, ok := cellTypeNames[t]; ok {
		return s
	}
	return "UNKNOWN"
}

// Rune - символ в текстовом формате карты.
func (t CellType) Rune() rune {
	if r, ok := cellTypeToRune[t]; ok {
		return r
	}
	return '.'
}

// ParseCellType: неизвестный символ читается как пустая клетка.
func ParseCellType(r rune) CellType {
	if t, ok := runeToCellType[r]; ok {
		return t
	}
	return CellEmpty
}

// IsWalkable - по рельефу можно ходить (без учёта занятости).
func (t CellType) IsWalkable() bool {
	return t == CellEmpty || t == CellStorage
}

// IsTransparent - рельеф пропускает взгляд. Стекло прозрачно.
func (t CellType) IsTransparent() bool {
	return t == CellEmpty || t == CellGlass || t == CellStorage
}

// IsShootable - рельеф пропускает выстрел. Стекло не простреливается.
func (t CellType) IsShootable() bool {
	return t == CellEmpty || t == CellStorage
}

// Cell - одна клетка карты: рельеф, предметы на земле и не более одного актора.
// Актор хранится как handle реестра, клетка им не владеет.
type Cell struct {
	kind     CellType
	items    []domain.Item
	occupant types.EntityID
}

func (c *Cell) Type() CellType           { return c.kind }
func (c *Cell) Occupant() types.EntityID { return c.occupant }
func (c *Cell) IsOccupied() bool         { return !c.occupant.IsNil() }
func (c *Cell) IsTransparent() bool      { return c.kind.IsTransparent() }
func (c *Cell) IsShootable() bool        { return c.kind.IsShootable() }

// IsPassable - можно войти: подходящий рельеф и никого нет.
func (c *Cell) IsPassable() bool {
	return c.kind.IsWalkable() && c.occupant.IsNil()
}

func (c *Cell) AddItem(item domain.Item) bool {
	if domain.IsNilItem(item) {
		return false
	}
	c.items = append(c.items, item)
	return true
}

// RemoveItem убирает именно этот экземпляр.
func (c *Cell) RemoveItem(item domain.Item) bool {
	for i, it := range c.items {
		if it == item {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return true
		}
	}
	return false
}

// Items возвращает копию, порядок - порядок укладки.
func (c *Cell) Items() []domain.Item {
	out := make([]domain.Item, len(c.items))
	copy(out, c.items)
	return out
}

func (c *Cell) bind(id types.EntityID) { c.occupant = id }
func (c *Cell) unbind()                { c.occupant = types.NilEntityID }
