package dungeon

import (
	"math/rand"

	"tactical-sim/internal/world"
)

// Константы генерации
const (
	MinRoomSize = 3
	MaxRoomSize = 8
)

// Rect - Вспомогательная структура для комнаты
type Rect struct {
	X, Y, W, H int
}

func (r Rect) Center() (int, int) {
	return r.X + r.W/2, r.Y + r.H/2
}

func (r Rect) Intersects(other Rect) bool {
	return r.X <= other.X+other.W && r.X+r.W >= other.X &&
		r.Y <= other.Y+other.H && r.Y+r.H >= other.Y
}

// Contains - клетка внутри пола комнаты (стены периметра не считаются).
func (r Rect) Contains(x, y int) bool {
	return x > r.X && x < r.X+r.W && y > r.Y && y < r.Y+r.H
}

// carveRooms заливает карту стенами и вырезает до maxRooms комнат,
// соединяя каждую новую с предыдущей Г-образным коридором.
// На карте, куда не помещается ни одна комната, возвращает nil и ничего не меняет.
func carveRooms(lvl *world.Level, maxRooms int, rng *rand.Rand) []Rect {
	width, height := lvl.Width(), lvl.Height()
	maxW := min(MaxRoomSize, width-2)
	maxH := min(MaxRoomSize, height-2)
	if maxW < MinRoomSize || maxH < MinRoomSize {
		return nil
	}

	fill(lvl, world.CellWall)

	rooms := make([]Rect, 0, maxRooms)
	for i := 0; i < maxRooms; i++ {
		w := randRange(rng, MinRoomSize, maxW)
		h := randRange(rng, MinRoomSize, maxH)
		x := randRange(rng, 0, width-w-1)
		y := randRange(rng, 0, height-h-1)

		newRoom := Rect{X: x, Y: y, W: w, H: h}

		failed := false
		for _, other := range rooms {
			if newRoom.Intersects(other) {
				failed = true
				break
			}
		}
		if failed {
			continue
		}

		createRoom(lvl, newRoom)

		// Соединяем с предыдущей комнатой
		if len(rooms) > 0 {
			prevX, prevY := rooms[len(rooms)-1].Center()
			currX, currY := newRoom.Center()

			if rng.Intn(2) == 0 {
				createHCorridor(lvl, prevX, currX, prevY)
				createVCorridor(lvl, prevY, currY, currX)
			} else {
				createVCorridor(lvl, prevY, currY, prevX)
				createHCorridor(lvl, prevX, currX, currY)
			}
		}
		rooms = append(rooms, newRoom)
	}
	return rooms
}

// --- Вспомогательные функции ---

// fill пропускает занятые клетки: под актором стену не поставить.
func fill(lvl *world.Level, t world.CellType) {
	for y := 0; y < lvl.Height(); y++ {
		for x := 0; x < lvl.Width(); x++ {
			_ = lvl.SetCellType(x, y, t)
		}
	}
}

func createRoom(lvl *world.Level, room Rect) {
	for y := room.Y + 1; y < room.Y+room.H; y++ {
		for x := room.X + 1; x < room.X+room.W; x++ {
			_ = lvl.SetCellType(x, y, world.CellEmpty)
		}
	}
}

func createHCorridor(lvl *world.Level, x1, x2, y int) {
	for x := min(x1, x2); x <= max(x1, x2); x++ {
		_ = lvl.SetCellType(x, y, world.CellEmpty)
	}
}

func createVCorridor(lvl *world.Level, y1, y2, x int) {
	for y := min(y1, y2); y <= max(y1, y2); y++ {
		_ = lvl.SetCellType(x, y, world.CellEmpty)
	}
}

func randRange(rng *rand.Rand, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return rng.Intn(hi-lo+1) + lo
}
