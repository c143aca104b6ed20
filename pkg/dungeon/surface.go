package dungeon

import "tactical-sim/internal/world"

// buildArena - открытая площадка: пустой пол, по краю стена.
func buildArena(lvl *world.Level) {
	w, h := lvl.Width(), lvl.Height()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			isBoundary := x == 0 || y == 0 || x == w-1 || y == h-1
			t := world.CellEmpty
			if isBoundary {
				t = world.CellWall
			}
			_ = lvl.SetCellType(x, y, t)
		}
	}
}

// applyLayout переносит на карту текстовую схему: строка - ряд клеток,
// символы как в файле рельефа. Что не влезает в карту, отбрасывается.
func applyLayout(lvl *world.Level, rows []string) error {
	for y, row := range rows {
		x := 0
		for _, ch := range row {
			if lvl.InBounds(x, y) {
				if err := lvl.SetCellType(x, y, world.ParseCellType(ch)); err != nil {
					return err
				}
			}
			x++
		}
	}
	return nil
}

// layoutSize - размер карты, в которую целиком помещается схема.
func layoutSize(rows []string) (width, height int) {
	for _, row := range rows {
		width = max(width, len([]rune(row)))
	}
	return width, len(rows)
}
