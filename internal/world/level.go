package world

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"tactical-sim/internal/core/types"
	"tactical-sim/internal/domain"
	"tactical-sim/pkg/grid"
	"tactical-sim/pkg/logger"
)

// Level - карта клеток плюс два списка handle (оперативники, монстры)
// для обхода в движке. Источник истины о занятости - клетки.
type Level struct {
	cells    *grid.Grid[Cell]
	registry *domain.Registry

	operatives []types.EntityID
	monsters   []types.EntityID
}

func NewLevel(width, height int, registry *domain.Registry) (*Level, error) {
	if registry == nil {
		return nil, fmt.Errorf("new level: nil registry")
	}
	cells, err := grid.New[Cell](height, width)
	if err != nil {
		return nil, fmt.Errorf("new level %dx%d: %w", width, height, ErrInvalidDimensions)
	}
	return &Level{cells: cells, registry: registry}, nil
}

func (l *Level) Width() int                 { return l.cells.Cols() }
func (l *Level) Height() int                { return l.cells.Rows() }
func (l *Level) Registry() *domain.Registry { return l.registry }

func (l *Level) InBounds(x, y int) bool {
	return l.cells.InBounds(y, x)
}

// Cell возвращает клетку для чтения и изменения предметов.
// За границами карты - ErrOutOfBounds.
func (l *Level) Cell(x, y int) (*Cell, error) {
	c := l.cellAt(x, y)
	if c == nil {
		return nil, fmt.Errorf("cell (%d,%d) on %dx%d map: %w", x, y, l.Width(), l.Height(), ErrOutOfBounds)
	}
	return c, nil
}

// cellAt сбрасывает устаревший handle занятого актора: уничтоженный
// в реестре актор клетку не держит.
func (l *Level) cellAt(x, y int) *Cell {
	c, ok := l.cells.At(y, x)
	if !ok {
		return nil
	}
	if c.IsOccupied() && l.registry.Get(c.occupant) == nil {
		c.unbind()
	}
	return c
}

func (l *Level) CellTypeAt(x, y int) (CellType, error) {
	c, err := l.Cell(x, y)
	if err != nil {
		return CellEmpty, err
	}
	return c.Type(), nil
}

// SetCellType меняет рельеф. Под актором нельзя поставить непроходимый рельеф.
func (l *Level) SetCellType(x, y int, t CellType) error {
	c, err := l.Cell(x, y)
	if err != nil {
		return err
	}
	if c.IsOccupied() && !t.IsWalkable() {
		return fmt.Errorf("set %s at (%d,%d): %w", t, x, y, ErrCellOccupied)
	}
	c.kind = t
	return nil
}

// IsPassable - в границах, проходимый рельеф, никого нет.
func (l *Level) IsPassable(x, y int) bool {
	c := l.cellAt(x, y)
	return c != nil && c.IsPassable()
}

// OccupantAt возвращает актора в клетке или nil.
func (l *Level) OccupantAt(x, y int) domain.Actor {
	c := l.cellAt(x, y)
	if c == nil || !c.IsOccupied() {
		return nil
	}
	return l.registry.Get(c.occupant)
}

func (l *Level) registered(a domain.Actor) bool {
	return a != nil && !a.ID().IsNil() && l.registry.Get(a.ID()) == a
}

// holds - актор действительно стоит в клетке, на которую указывают его координаты.
func (l *Level) holds(a domain.Actor) *Cell {
	if !a.IsPlaced() {
		return nil
	}
	p := a.Pos()
	c := l.cellAt(p.X, p.Y)
	if c == nil || c.occupant != a.ID() {
		return nil
	}
	return c
}

// AddEntity - единственный корректный способ поставить актора на карту.
// Не удаётся, если клетка вне карты, непроходима или занята,
// либо актор не зарегистрирован или уже стоит на карте.
func (l *Level) AddEntity(a domain.Actor, x, y int) bool {
	if !l.registered(a) || l.holds(a) != nil {
		return false
	}
	c := l.cellAt(x, y)
	if c == nil || !c.IsPassable() {
		return false
	}

	c.bind(a.ID())
	a.SetPosition(x, y)

	logger.Log.WithFields(logrus.Fields{
		"component": "world",
		"actor":     a.Name(),
		"x":         x,
		"y":         y,
	}).Debug("Actor placed.")
	return true
}

// MoveEntity переносит актора в соседнюю или любую другую клетку.
// Если цель вне карты или непроходима - ничего не происходит.
func (l *Level) MoveEntity(a domain.Actor, x, y int) bool {
	if !l.registered(a) {
		return false
	}
	dst := l.cellAt(x, y)
	if dst == nil || !dst.IsPassable() {
		return false
	}

	if src := l.holds(a); src != nil {
		src.unbind()
	}
	dst.bind(a.ID())
	a.SetPosition(x, y)
	return true
}

// RemoveEntity снимает актора с карты и из списков обхода.
func (l *Level) RemoveEntity(a domain.Actor) bool {
	if domain.IsNilActor(a) {
		return false
	}
	removed := false
	if c := l.holds(a); c != nil {
		c.unbind()
		removed = true
	}
	if l.dropHandle(&l.operatives, a.ID()) || l.dropHandle(&l.monsters, a.ID()) {
		removed = true
	}
	a.ClearPosition()
	return removed
}

func (l *Level) dropHandle(list *[]types.EntityID, id types.EntityID) bool {
	for i, h := range *list {
		if h == id {
			*list = append((*list)[:i], (*list)[i+1:]...)
			return true
		}
	}
	return false
}

func containsHandle(list []types.EntityID, id types.EntityID) bool {
	for _, h := range list {
		if h == id {
			return true
		}
	}
	return false
}

// AddOperative вносит оперативника в список обхода. Повтор игнорируется.
func (l *Level) AddOperative(op *domain.Operative) bool {
	if op == nil || !l.registered(op) || containsHandle(l.operatives, op.ID()) {
		return false
	}
	l.operatives = append(l.operatives, op.ID())
	return true
}

func (l *Level) AddMonster(m domain.MonsterActor) bool {
	if !l.registered(m) || containsHandle(l.monsters, m.ID()) {
		return false
	}
	l.monsters = append(l.monsters, m.ID())
	return true
}

// Operatives возвращает оперативников в порядке добавления.
// Уничтоженные в реестре пропускаются.
func (l *Level) Operatives() []*domain.Operative {
	out := make([]*domain.Operative, 0, len(l.operatives))
	for _, id := range l.operatives {
		if op, ok := l.registry.Get(id).(*domain.Operative); ok {
			out = append(out, op)
		}
	}
	return out
}

func (l *Level) Monsters() []domain.MonsterActor {
	out := make([]domain.MonsterActor, 0, len(l.monsters))
	for _, id := range l.monsters {
		if m, ok := l.registry.Get(id).(domain.MonsterActor); ok {
			out = append(out, m)
		}
	}
	return out
}

// pruneActors убирает из списков обхода уничтоженных акторов и тех,
// чья клетка пропала при смене карты. Ещё не расставленные остаются.
func (l *Level) pruneActors() {
	keep := func(list []types.EntityID) []types.EntityID {
		out := list[:0]
		for _, id := range list {
			a := l.registry.Get(id)
			if a == nil {
				continue
			}
			if a.IsPlaced() && l.holds(a) == nil {
				a.ClearPosition()
				continue
			}
			out = append(out, id)
		}
		return out
	}
	l.operatives = keep(l.operatives)
	l.monsters = keep(l.monsters)
}
