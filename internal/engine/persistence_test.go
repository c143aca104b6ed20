package engine

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tactical-sim/internal/core/types/enums"
	"tactical-sim/internal/infrastructure/storage"
	"tactical-sim/internal/world"
)

type fakeRecorder struct {
	records []storage.SaveRecord
	err     error
}

func (f *fakeRecorder) RecordSave(_ context.Context, rec storage.SaveRecord) error {
	if f.err != nil {
		return f.err
	}
	f.records = append(f.records, rec)
	return nil
}

// savedGame - партия после одного хода оперативников, сохранённая на диск.
func savedGame(t *testing.T, opts ...Option) (*GameEngine, string) {
	t.Helper()
	lvl := createTestLevel(t, 6, 4)
	require.NoError(t, lvl.SetCellType(2, 2, world.CellWall))
	require.NoError(t, lvl.SetCellType(3, 2, world.CellGlass))
	require.NoError(t, lvl.SetCellType(5, 3, world.CellStorage))
	placeAgent(t, lvl, 0, 0)
	placeWolf(t, lvl, 5, 0)

	g := newIdleEngine(t, lvl, opts...)
	g.Tick()
	require.Equal(t, 1, g.Turn())
	require.False(t, g.OperativesTurn())

	path := filepath.Join(t.TempDir(), "slot1.tsav")
	require.NoError(t, g.SaveGame(path))
	return g, path
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	_, path := savedGame(t)

	assert.FileExists(t, path)
	assert.FileExists(t, storage.TerrainPath(path))

	fresh := newTestEngine(t, createTestLevel(t, 2, 2))
	fresh.Pause()
	require.NoError(t, fresh.LoadGame(path))

	assert.Equal(t, 1, fresh.Turn())
	assert.False(t, fresh.OperativesTurn())
	assert.Equal(t, enums.GameStateRunning, fresh.State())

	lvl := fresh.Level()
	assert.Equal(t, 6, lvl.Width())
	assert.Equal(t, 4, lvl.Height())
	for _, tc := range []struct {
		x, y int
		want world.CellType
	}{
		{2, 2, world.CellWall},
		{3, 2, world.CellGlass},
		{5, 3, world.CellStorage},
		{0, 0, world.CellEmpty},
	} {
		got, err := lvl.CellTypeAt(tc.x, tc.y)
		require.NoError(t, err)
		assert.Equal(t, tc.want, got, "(%d,%d)", tc.x, tc.y)
	}
}

func TestLoadGame_DropsActors(t *testing.T) {
	g, path := savedGame(t)
	require.Len(t, g.Level().Operatives(), 1)

	require.NoError(t, g.LoadGame(path))
	assert.Empty(t, g.Level().Operatives(), "акторы не сохраняются")
	assert.Empty(t, g.Level().Monsters())
	assert.Nil(t, g.Level().OccupantAt(0, 0))
}

func TestLoadGame_MissingTerrain(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.tsav")
	require.NoError(t, storage.WriteStateFile(path, storage.SaveState{Turn: 7, OperativesTurn: false}))

	g := newTestEngine(t, createTestLevel(t, 3, 3))
	err := g.LoadGame(path)
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)

	assert.Equal(t, 0, g.Turn(), "неудачная загрузка не меняет состояние")
	assert.True(t, g.OperativesTurn())
}

func TestLoadGame_BadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "junk.tsav")
	require.NoError(t, os.WriteFile(path, []byte("not a save file at all"), 0o644))

	g := newTestEngine(t, createTestLevel(t, 3, 3))
	assert.ErrorIs(t, g.LoadGame(path), storage.ErrBadMagic)

	assert.ErrorIs(t, g.LoadGame(filepath.Join(t.TempDir(), "absent.tsav")), os.ErrNotExist)
}

func TestSaveGame_UnwritablePath(t *testing.T) {
	g := newTestEngine(t, createTestLevel(t, 3, 3))
	err := g.SaveGame(filepath.Join(t.TempDir(), "no", "such", "dir", "slot.tsav"))
	assert.Error(t, err)
}

func TestSaveGame_Recorder(t *testing.T) {
	rec := &fakeRecorder{}
	_, path := savedGame(t, WithRecorder(rec))

	require.Len(t, rec.records, 1)
	r := rec.records[0]
	assert.Equal(t, path, r.Path)
	assert.Equal(t, 1, r.Turn)
	assert.False(t, r.OperativesTurn)
	assert.Equal(t, 6, r.Width)
	assert.Equal(t, 4, r.Height)
	assert.Equal(t, enums.GameStateRunning.String(), r.State)
	assert.NotEmpty(t, r.SaveID)

	roster, err := r.RosterEntries()
	require.NoError(t, err)
	require.Len(t, roster, 2)
	assert.Equal(t, "Агент", roster[0].Name)
	assert.Equal(t, enums.ActorKindOperative.String(), roster[0].Kind)
	assert.Equal(t, "Волк", roster[1].Name)
	assert.Equal(t, 5, roster[1].X)
}

func TestSaveGame_RecorderFailureIsNotFatal(t *testing.T) {
	rec := &fakeRecorder{err: errors.New("disk full")}
	_, path := savedGame(t, WithRecorder(rec))
	assert.FileExists(t, path)
	assert.Empty(t, rec.records)
}

func TestSaveGame_Catalog(t *testing.T) {
	cat, err := storage.OpenCatalog(filepath.Join(t.TempDir(), "saves.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = cat.Close() })

	_, path := savedGame(t, WithRecorder(cat))

	latest, err := cat.Latest(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, 1, latest.Turn)

	all, err := cat.List(context.Background(), 0)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}
