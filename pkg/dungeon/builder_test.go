package dungeon

import (
	"math/rand"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tactical-sim/internal/core/types/enums"
	"tactical-sim/internal/domain"
	"tactical-sim/internal/world"
	"tactical-sim/pkg/logger"
)

func TestMain(m *testing.M) {
	logger.Init()
	os.Exit(m.Run())
}

func TestBuilder_Scenario(t *testing.T) {
	lvl, err := NewLevel(nil).
		WithSize(5, 5).
		SpawnOperative("agent", At(1, 1), Loadout{Weapon: "pistol", Items: []string{"ammo9", "medkit"}}).
		SpawnMonster("wolf", At(3, 2)).
		SpawnMonster("hunter", At(4, 4)).
		SpawnMonster("gatherer", At(0, 3), domain.Position{X: 0, Y: 0}).
		Build()
	require.NoError(t, err)

	ops := lvl.Operatives()
	require.Len(t, ops, 1)
	agent := ops[0]
	assert.Equal(t, "Агент", agent.Name())
	assert.Equal(t, agent, lvl.OccupantAt(1, 1))
	require.NotNil(t, agent.ActiveWeapon())
	assert.Equal(t, 12, agent.ActiveWeapon().Ammo(), "оружие заряжено из выданных патронов")
	assert.Equal(t, agent.MaxTimePoints(), agent.TimePoints())
	assert.Equal(t, 2, agent.Inventory().Count())

	mons := lvl.Monsters()
	require.Len(t, mons, 3)
	assert.Equal(t, enums.ActorKindWildMonster, mons[0].Kind())
	assert.Equal(t, enums.ActorKindIntelligentMonster, mons[1].Kind())
	assert.Equal(t, enums.ActorKindForager, mons[2].Kind())

	f, ok := mons[2].(*domain.Forager)
	require.True(t, ok)
	assert.Equal(t, []domain.Position{{X: 0, Y: 0}}, f.StoragePoints())

	assert.Equal(t, 4, lvl.Registry().Len())
}

func TestBuilder_SecondaryWeapon(t *testing.T) {
	lvl, err := NewLevel(nil).
		WithSize(3, 3).
		SpawnOperative("agent", At(0, 0), Loadout{
			Weapon:    "rifle",
			Secondary: "pistol",
			Items:     []string{"ammo9", "ammo556"},
		}).
		Build()
	require.NoError(t, err)

	op := lvl.Operatives()[0]
	require.NotNil(t, op.ActiveWeapon())
	require.NotNil(t, op.SecondaryWeapon())
	assert.Equal(t, "Автомат", op.ActiveWeapon().Name())
	assert.Equal(t, 30, op.ActiveWeapon().Ammo())
	assert.Equal(t, 12, op.SecondaryWeapon().Ammo())
}

func TestBuilder_HunterCarriesWeapon(t *testing.T) {
	hunter := Hunter
	hunter.Weapon = "shotgun"
	m, err := hunter.Spawn()
	require.NoError(t, err)

	im, ok := m.(*domain.IntelligentMonster)
	require.True(t, ok)
	require.NotNil(t, im.Weapon())
	assert.Equal(t, "Дробовик", im.Weapon().Name())
}

func TestBuilder_Errors(t *testing.T) {
	tests := []struct {
		name string
		b    *LevelBuilder
	}{
		{"unknown operative", NewLevel(nil).SpawnOperative("ninja", At(0, 0), Loadout{})},
		{"unknown monster", NewLevel(nil).SpawnMonster("dragon", At(0, 0))},
		{"unknown item", NewLevel(nil).SpawnItem("laser", At(0, 0))},
		{"unknown loadout", NewLevel(nil).SpawnOperative("agent", At(0, 0), Loadout{Weapon: "laser"})},
		{"loadout not a weapon", NewLevel(nil).SpawnOperative("agent", At(0, 0), Loadout{Weapon: "medkit"})},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.b.Build()
			assert.ErrorIs(t, err, ErrUnknownTemplate)
		})
	}

	_, err := NewLevel(nil).WithSize(0, 5).Build()
	assert.ErrorIs(t, err, world.ErrInvalidDimensions)

	reg := domain.NewRegistry()
	_, err = NewLevel(reg).
		SpawnMonster("wolf", At(2, 2)).
		SpawnMonster("wolf", At(2, 2)).
		Build()
	assert.ErrorIs(t, err, world.ErrCellOccupied)
	assert.Equal(t, 1, reg.Len(), "неудачно поставленный актор уничтожается")

	_, err = NewLevel(nil).WithLayout("#").SpawnMonster("wolf", Anywhere()).Build()
	assert.ErrorIs(t, err, ErrNoFreeCell)
}

func TestBuilder_Layout(t *testing.T) {
	lvl, err := NewLevel(nil).
		WithLayout(
			"#####",
			"#..G#",
			"#.S.#",
			"#####",
		).
		SpawnOperative("agent", At(1, 1), Loadout{}).
		SpawnItem("medkit", At(2, 2)).
		Build()
	require.NoError(t, err)

	assert.Equal(t, 5, lvl.Width())
	assert.Equal(t, 4, lvl.Height())
	ct, _ := lvl.CellTypeAt(3, 1)
	assert.Equal(t, world.CellGlass, ct)
	ct, _ = lvl.CellTypeAt(2, 2)
	assert.Equal(t, world.CellStorage, ct)

	cell, err := lvl.Cell(2, 2)
	require.NoError(t, err)
	require.Len(t, cell.Items(), 1)
	assert.Equal(t, "Аптечка", cell.Items()[0].Name())
}

func TestBuilder_TerrainFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "arena.map")
	require.NoError(t, os.WriteFile(path, []byte("2 3\n. # .\n. . S\n"), 0o644))

	lvl, err := NewLevel(nil).WithTerrainFile(path).Build()
	require.NoError(t, err)
	assert.Equal(t, 3, lvl.Width())
	assert.Equal(t, 2, lvl.Height())
	ct, _ := lvl.CellTypeAt(1, 0)
	assert.Equal(t, world.CellWall, ct)
}

func TestBuilder_Anywhere(t *testing.T) {
	b := NewLevel(nil).
		WithSize(30, 20).
		WithRooms(5).
		WithRand(rand.New(rand.NewSource(3))).
		SpawnOperative("agent", Anywhere(), Loadout{}).
		SpawnMonster("wolf", Anywhere()).
		SpawnItem("medkit", Anywhere())
	lvl, err := b.Build()
	require.NoError(t, err)

	rooms := b.Rooms()
	require.NotEmpty(t, rooms)

	op := lvl.Operatives()[0]
	assert.True(t, rooms[0].Contains(op.Pos().X, op.Pos().Y), "оперативник в первой комнате")

	wolf := lvl.Monsters()[0]
	assert.True(t, wolf.IsPlaced())
	ct, _ := lvl.CellTypeAt(wolf.Pos().X, wolf.Pos().Y)
	assert.True(t, ct.IsWalkable())
}
