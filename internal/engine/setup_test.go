package engine

import (
	"os"
	"testing"

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

func createTestLevel(t *testing.T, w, h int) *world.Level {
	t.Helper()
	lvl, err := world.NewLevel(w, h, domain.NewRegistry())
	require.NoError(t, err)
	return lvl
}

func placeAgent(t *testing.T, lvl *world.Level, x, y int) *domain.Operative {
	t.Helper()
	op, err := domain.NewOperative("Агент", 100, 10, 10, 10, 5)
	require.NoError(t, err)
	_, err = lvl.Registry().Spawn(op)
	require.NoError(t, err)
	require.True(t, lvl.AddEntity(op, x, y))
	require.True(t, lvl.AddOperative(op))
	return op
}

func placeWild(t *testing.T, lvl *world.Level, name string, hp, x, y int) *domain.WildMonster {
	t.Helper()
	wm, err := domain.NewWildMonster(name, hp, 8, 4, 2, 15, 80)
	require.NoError(t, err)
	_, err = lvl.Registry().Spawn(wm)
	require.NoError(t, err)
	require.True(t, lvl.AddEntity(wm, x, y))
	require.True(t, lvl.AddMonster(wm))
	return wm
}

func placeWolf(t *testing.T, lvl *world.Level, x, y int) *domain.WildMonster {
	t.Helper()
	return placeWild(t, lvl, "Волк", 50, x, y)
}

// armAgent выдаёт пистолет (10 урона, 12 патронов) и заряжает его.
func armAgent(t *testing.T, op *domain.Operative) *domain.Weapon {
	t.Helper()
	w, err := domain.NewWeapon("Пистолет", 10, enums.AmmoPistol9mm, 12, 1, 2, 2)
	require.NoError(t, err)
	box, err := domain.NewAmmoContainer(enums.AmmoPistol9mm, 24, 1)
	require.NoError(t, err)
	require.True(t, op.EquipWeapon(w))
	require.True(t, op.Inventory().Add(box))
	require.True(t, op.ReloadWeapon())
	op.ResetTimePoints()
	return w
}

func newTestEngine(t *testing.T, lvl *world.Level, opts ...Option) *GameEngine {
	t.Helper()
	g, err := NewGameEngine(lvl, DefaultConfig(), opts...)
	require.NoError(t, err)
	return g
}

// newIdleEngine - движок, в котором фаза без трат очков передаёт ход.
func newIdleEngine(t *testing.T, lvl *world.Level, opts ...Option) *GameEngine {
	t.Helper()
	cfg := DefaultConfig()
	cfg.IdlePass = true
	g, err := NewGameEngine(lvl, cfg, opts...)
	require.NoError(t, err)
	return g
}
