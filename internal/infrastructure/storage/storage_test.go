package storage

import (
	"bytes"
	"context"
	"encoding/binary"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveState_RoundTrip(t *testing.T) {
	tests := []SaveState{
		{Turn: 0, OperativesTurn: true},
		{Turn: 17, OperativesTurn: false},
		{Turn: 123456, OperativesTurn: true},
	}

	for _, st := range tests {
		var buf bytes.Buffer
		require.NoError(t, WriteState(&buf, st))
		assert.Equal(t, binary.Size(SaveFileHeader{}), buf.Len())

		got, err := ReadState(&buf)
		require.NoError(t, err)
		assert.Equal(t, st, got)
	}
}

func TestReadState_Validation(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteState(&buf, SaveState{Turn: 3}))
	raw := buf.Bytes()

	bad := append([]byte(nil), raw...)
	copy(bad, "NOPE")
	_, err := ReadState(bytes.NewReader(bad))
	assert.ErrorIs(t, err, ErrBadMagic)

	future := append([]byte(nil), raw...)
	binary.LittleEndian.PutUint32(future[4:8], 99)
	_, err = ReadState(bytes.NewReader(future))
	assert.ErrorIs(t, err, ErrUnsupportedVersion)

	_, err = ReadState(bytes.NewReader(raw[:6]))
	assert.Error(t, err)
}

func TestStateFile(t *testing.T) {
	svc, err := NewSaveService(filepath.Join(t.TempDir(), "saves"))
	require.NoError(t, err)

	path := svc.PathFor("slot1")
	assert.Equal(t, ".tsav", filepath.Ext(path))
	assert.Equal(t, path+".map", TerrainPath(path))

	require.NoError(t, WriteStateFile(path, SaveState{Turn: 9, OperativesTurn: true}))
	got, err := ReadStateFile(path)
	require.NoError(t, err)
	assert.Equal(t, SaveState{Turn: 9, OperativesTurn: true}, got)

	_, err = ReadStateFile(svc.PathFor("missing"))
	assert.Error(t, err)
}

func TestCatalog(t *testing.T) {
	ctx := context.Background()
	cat, err := OpenCatalog(filepath.Join(t.TempDir(), "catalog.db"))
	require.NoError(t, err)
	defer cat.Close()

	roster := []RosterEntry{{Name: "Агент", Kind: "OPERATIVE", Health: 80, X: 1, Y: 1}}
	first, err := NewSaveRecord("a.tsav", SaveState{Turn: 1, OperativesTurn: true}, 5, 5, "RUNNING", roster)
	require.NoError(t, err)
	second, err := NewSaveRecord("a.tsav", SaveState{Turn: 4}, 5, 5, "RUNNING", nil)
	require.NoError(t, err)
	other, err := NewSaveRecord("b.tsav", SaveState{Turn: 2}, 8, 6, "OPERATIVES_WIN", nil)
	require.NoError(t, err)
	assert.NotEqual(t, first.SaveID, second.SaveID)

	for _, rec := range []SaveRecord{first, second, other} {
		require.NoError(t, cat.RecordSave(ctx, rec))
	}

	all, err := cat.List(ctx, 0)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "b.tsav", all[0].Path, "newest first")

	limited, err := cat.List(ctx, 2)
	require.NoError(t, err)
	assert.Len(t, limited, 2)

	latest, err := cat.Latest(ctx, "a.tsav")
	require.NoError(t, err)
	assert.Equal(t, 4, latest.Turn)

	_, err = cat.Latest(ctx, "nope.tsav")
	assert.ErrorIs(t, err, ErrSaveNotFound)

	var stored *SaveRecord
	for i := range all {
		if all[i].SaveID == first.SaveID {
			stored = &all[i]
		}
	}
	require.NotNil(t, stored)
	entries, err := stored.RosterEntries()
	require.NoError(t, err)
	assert.Equal(t, roster, entries)
}
