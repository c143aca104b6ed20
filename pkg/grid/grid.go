// Package grid - плотный двумерный контейнер поверх плоского среза.
package grid

import (
	"errors"
	"fmt"
)

var ErrInvalidSize = errors.New("grid: rows and cols must be positive")

// Grid хранит rows*cols элементов построчно. Координаты (row, col)
// проверяются при каждом обращении.
type Grid[T any] struct {
	rows  int
	cols  int
	cells []T
}

func New[T any](rows, cols int) (*Grid[T], error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("%w: got %dx%d", ErrInvalidSize, rows, cols)
	}
	return &Grid[T]{
		rows:  rows,
		cols:  cols,
		cells: make([]T, rows*cols),
	}, nil
}

func (g *Grid[T]) Rows() int { return g.rows }
func (g *Grid[T]) Cols() int { return g.cols }

func (g *Grid[T]) InBounds(row, col int) bool {
	return row >= 0 && row < g.rows && col >= 0 && col < g.cols
}

// At возвращает указатель на элемент для изменения на месте.
func (g *Grid[T]) At(row, col int) (*T, bool) {
	if !g.InBounds(row, col) {
		return nil, false
	}
	return &g.cells[row*g.cols+col], true
}

func (g *Grid[T]) Get(row, col int) (T, bool) {
	var zero T
	if !g.InBounds(row, col) {
		return zero, false
	}
	return g.cells[row*g.cols+col], true
}

func (g *Grid[T]) Set(row, col int, v T) bool {
	if !g.InBounds(row, col) {
		return false
	}
	g.cells[row*g.cols+col] = v
	return true
}

// Resize меняет размер, сохраняя элементы, попавшие в новые границы.
// Новые ячейки получают нулевое значение T.
func (g *Grid[T]) Resize(rows, cols int) error {
	if rows <= 0 || cols <= 0 {
		return fmt.Errorf("%w: got %dx%d", ErrInvalidSize, rows, cols)
	}
	if rows == g.rows && cols == g.cols {
		return nil
	}

	next := make([]T, rows*cols)
	for r := 0; r < min(rows, g.rows); r++ {
		copy(next[r*cols:r*cols+min(cols, g.cols)], g.cells[r*g.cols:r*g.cols+min(cols, g.cols)])
	}

	g.rows, g.cols, g.cells = rows, cols, next
	return nil
}

// Clone делает поверхностную копию: сами элементы копируются по значению.
func (g *Grid[T]) Clone() *Grid[T] {
	cells := make([]T, len(g.cells))
	copy(cells, g.cells)
	return &Grid[T]{rows: g.rows, cols: g.cols, cells: cells}
}

// Each обходит элементы построчно.
func (g *Grid[T]) Each(fn func(row, col int, v *T)) {
	for i := range g.cells {
		fn(i/g.cols, i%g.cols, &g.cells[i])
	}
}
