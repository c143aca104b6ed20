package dungeon

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/sirupsen/logrus"

	"tactical-sim/internal/domain"
	"tactical-sim/internal/world"
	"tactical-sim/pkg/logger"
)

// Размер карты по умолчанию
const (
	DefaultWidth  = 10
	DefaultHeight = 10
)

var ErrNoFreeCell = errors.New("no free cell")

// Spot - куда поставить актора или предмет: конкретная клетка
// либо любая свободная (Auto).
type Spot struct {
	X, Y int
	Auto bool
}

func At(x, y int) Spot { return Spot{X: x, Y: y} }

// Anywhere - случайная свободная клетка. Оперативники ставятся в первую
// комнату, монстры в остальные, если комнаты сгенерированы.
func Anywhere() Spot { return Spot{Auto: true} }

type spawnStep func(b *LevelBuilder, lvl *world.Level) error

// LevelBuilder предоставляет fluent API для создания уровней.
// Шаблоны проверяются в Build, там же возвращаются ошибки.
type LevelBuilder struct {
	width       int
	height      int
	terrainFile string
	layout      []string
	arena       bool
	maxRooms    int

	registry *domain.Registry
	rng      *rand.Rand
	rooms    []Rect
	spawns   []spawnStep
}

// NewLevel создает новый builder для уровня. nil registry - новый реестр.
func NewLevel(registry *domain.Registry) *LevelBuilder {
	if registry == nil {
		registry = domain.NewRegistry()
	}
	return &LevelBuilder{
		width:    DefaultWidth,
		height:   DefaultHeight,
		registry: registry,
		rng:      rand.New(rand.NewSource(1)),
	}
}

// WithSize устанавливает размер карты
func (b *LevelBuilder) WithSize(width, height int) *LevelBuilder {
	b.width = width
	b.height = height
	return b
}

// WithRand задаёт источник случайности для комнат и Anywhere.
func (b *LevelBuilder) WithRand(rng *rand.Rand) *LevelBuilder {
	if rng != nil {
		b.rng = rng
	}
	return b
}

// WithTerrainFile загружает рельеф из файла; размер карты берётся из файла.
func (b *LevelBuilder) WithTerrainFile(path string) *LevelBuilder {
	b.terrainFile = path
	return b
}

// WithLayout задаёт рельеф текстовой схемой и подгоняет под неё размер карты.
func (b *LevelBuilder) WithLayout(rows ...string) *LevelBuilder {
	b.layout = rows
	b.width, b.height = layoutSize(rows)
	return b
}

// WithArena обносит карту стеной по краю.
func (b *LevelBuilder) WithArena() *LevelBuilder {
	b.arena = true
	return b
}

// WithRooms генерирует комнаты и коридоры
func (b *LevelBuilder) WithRooms(maxRooms int) *LevelBuilder {
	b.maxRooms = maxRooms
	return b
}

// SpawnOperative ставит оперативника из шаблона со снаряжением.
func (b *LevelBuilder) SpawnOperative(template string, at Spot, loadout Loadout) *LevelBuilder {
	b.spawns = append(b.spawns, func(b *LevelBuilder, lvl *world.Level) error {
		op, err := CreateOperative(template, loadout)
		if err != nil {
			return err
		}
		if err := b.place(lvl, op, at, true); err != nil {
			return err
		}
		lvl.AddOperative(op)
		return nil
	})
	return b
}

// SpawnMonster ставит монстра из шаблона. Точки хранилища учитываются
// только сборщиками.
func (b *LevelBuilder) SpawnMonster(template string, at Spot, storagePoints ...domain.Position) *LevelBuilder {
	b.spawns = append(b.spawns, func(b *LevelBuilder, lvl *world.Level) error {
		m, err := CreateMonster(template)
		if err != nil {
			return err
		}
		if f, ok := m.(*domain.Forager); ok {
			for _, p := range storagePoints {
				f.AddStoragePoint(p.X, p.Y)
			}
		}
		if err := b.place(lvl, m, at, false); err != nil {
			return err
		}
		lvl.AddMonster(m)
		return nil
	})
	return b
}

// SpawnItem кладет предмет из шаблона на землю.
func (b *LevelBuilder) SpawnItem(template string, at Spot) *LevelBuilder {
	b.spawns = append(b.spawns, func(b *LevelBuilder, lvl *world.Level) error {
		it, err := SpawnItem(template)
		if err != nil {
			return err
		}
		x, y := at.X, at.Y
		if at.Auto {
			p, err := b.freeCell(lvl, false)
			if err != nil {
				return fmt.Errorf("item %q: %w", template, err)
			}
			x, y = p.X, p.Y
		}
		cell, err := lvl.Cell(x, y)
		if err != nil {
			return fmt.Errorf("item %q: %w", template, err)
		}
		cell.AddItem(it)
		return nil
	})
	return b
}

// Rooms - комнаты, вырезанные последним Build.
func (b *LevelBuilder) Rooms() []Rect {
	return b.rooms
}

// GetStartPos возвращает стартовую позицию (центр первой комнаты)
func (b *LevelBuilder) GetStartPos() domain.Position {
	if len(b.rooms) > 0 {
		cx, cy := b.rooms[0].Center()
		return domain.Position{X: cx, Y: cy}
	}
	return domain.Position{X: b.width / 2, Y: b.height / 2}
}

// Build собирает и возвращает готовый уровень: рельеф из файла или схемы,
// затем арена и комнаты, затем акторы и предметы в порядке добавления.
func (b *LevelBuilder) Build() (*world.Level, error) {
	lvl, err := world.NewLevel(DefaultWidth, DefaultHeight, b.registry)
	if err != nil {
		return nil, fmt.Errorf("build level: %w", err)
	}

	mapCfg := world.MapConfig{Width: b.width, Height: b.height, TerrainFile: b.terrainFile}
	if err := lvl.BuildMap(mapCfg); err != nil {
		return nil, fmt.Errorf("build level: %w", err)
	}
	if len(b.layout) > 0 {
		if err := applyLayout(lvl, b.layout); err != nil {
			return nil, fmt.Errorf("build level: %w", err)
		}
	}
	if b.arena {
		buildArena(lvl)
	}
	b.rooms = nil
	if b.maxRooms > 0 {
		b.rooms = carveRooms(lvl, b.maxRooms, b.rng)
	}

	for _, step := range b.spawns {
		if err := step(b, lvl); err != nil {
			return nil, fmt.Errorf("build level: %w", err)
		}
	}

	logger.Log.WithFields(logrus.Fields{
		"component":  "level_builder",
		"width":      lvl.Width(),
		"height":     lvl.Height(),
		"rooms":      len(b.rooms),
		"operatives": len(lvl.Operatives()),
		"monsters":   len(lvl.Monsters()),
	}).Debug("Level built.")
	return lvl, nil
}

func (b *LevelBuilder) place(lvl *world.Level, a domain.Actor, at Spot, operative bool) error {
	if _, err := b.registry.Spawn(a); err != nil {
		return fmt.Errorf("%s: %w", a.Name(), err)
	}

	x, y := at.X, at.Y
	if at.Auto {
		p, err := b.freeCell(lvl, operative)
		if err != nil {
			b.registry.Destroy(a.ID())
			return fmt.Errorf("%s: %w", a.Name(), err)
		}
		x, y = p.X, p.Y
	}
	if !lvl.AddEntity(a, x, y) {
		b.registry.Destroy(a.ID())
		return fmt.Errorf("%s: cell (%d,%d) is not free: %w", a.Name(), x, y, world.ErrCellOccupied)
	}
	return nil
}

// freeCell выбирает случайную проходимую клетку. Оперативники - в первой
// комнате, остальные - в прочих комнатах; без комнат подходит вся карта.
func (b *LevelBuilder) freeCell(lvl *world.Level, operative bool) (domain.Position, error) {
	var areas []Rect
	switch {
	case len(b.rooms) == 0:
		areas = []Rect{{X: -1, Y: -1, W: lvl.Width() + 1, H: lvl.Height() + 1}}
	case operative || len(b.rooms) == 1:
		areas = b.rooms[:1]
	default:
		areas = b.rooms[1:]
	}

	var candidates []domain.Position
	for y := 0; y < lvl.Height(); y++ {
		for x := 0; x < lvl.Width(); x++ {
			if !lvl.IsPassable(x, y) {
				continue
			}
			for _, r := range areas {
				if r.Contains(x, y) {
					candidates = append(candidates, domain.Position{X: x, Y: y})
					break
				}
			}
		}
	}
	if len(candidates) == 0 {
		return domain.Position{}, ErrNoFreeCell
	}
	return candidates[b.rng.Intn(len(candidates))], nil
}
