package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_DefaultValues(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
	assert.Equal(t, 5, cfg.Map.Width)
	assert.Equal(t, 5, cfg.Map.Height)
	assert.Equal(t, "", cfg.Map.TerrainFile)
	assert.Equal(t, 0, cfg.Map.Rooms)
	assert.Equal(t, int64(1), cfg.Map.Seed)
	assert.Equal(t, 1000, cfg.Engine.MaxTicks)
	assert.False(t, cfg.Engine.IdlePass)
	assert.True(t, cfg.Engine.DropLoot)
	assert.False(t, cfg.Engine.RequireLineOfFire)
	assert.False(t, cfg.Engine.RequireLineOfSight)
	assert.Equal(t, "./saves", cfg.Storage.SaveDir)
	assert.Equal(t, "./saves/catalog.db", cfg.Storage.Catalog)
	assert.Equal(t, DefaultScenario(), cfg.Scenario)
}

func TestLoad_WithValidConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tactics.yaml")
	yaml := `
log:
  level: debug
map:
  width: 12
  height: 8
  rooms: 3
engine:
  idlePass: true
scenario:
  operatives:
    - template: scout
      x: 2
      y: 3
      weapon: rifle
      items: [ammo556]
  monsters:
    - template: gatherer
      auto: true
      storagePoints:
        - {x: 1, y: 1}
`
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, 12, cfg.Map.Width)
	assert.Equal(t, 8, cfg.Map.Height)
	assert.Equal(t, 3, cfg.Map.Rooms)
	assert.True(t, cfg.Engine.IdlePass)
	assert.Equal(t, 1000, cfg.Engine.MaxTicks)

	require.Len(t, cfg.Scenario.Operatives, 1)
	op := cfg.Scenario.Operatives[0]
	assert.Equal(t, "scout", op.Template)
	assert.Equal(t, 2, op.X)
	assert.Equal(t, 3, op.Y)
	assert.Equal(t, "rifle", op.Weapon)
	assert.Equal(t, []string{"ammo556"}, op.Items)

	require.Len(t, cfg.Scenario.Monsters, 1)
	m := cfg.Scenario.Monsters[0]
	assert.True(t, m.Auto)
	assert.Equal(t, []PointConfig{{X: 1, Y: 1}}, m.StoragePoints)
	assert.Empty(t, cfg.Scenario.Ground)
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("TACTICS_MAP_WIDTH", "20")
	t.Setenv("TACTICS_ENGINE_MAXTICKS", "50")
	t.Setenv("TACTICS_LOG_FORMAT", "json")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 20, cfg.Map.Width)
	assert.Equal(t, 50, cfg.Engine.MaxTicks)
	assert.Equal(t, "json", cfg.Log.Format)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load("/nonexistent/path/tactics.yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error reading config file")
}

func TestLoad_Invalid(t *testing.T) {
	t.Setenv("TACTICS_ENGINE_MAXTICKS", "0")
	_, err := Load("")
	assert.ErrorIs(t, err, ErrInvalid)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr bool
	}{
		{"ok", func(c *Config) {}, false},
		{"zero width", func(c *Config) { c.Map.Width = 0 }, true},
		{"zero width with terrain file", func(c *Config) { c.Map.Width = 0; c.Map.TerrainFile = "a.map" }, false},
		{"negative rooms", func(c *Config) { c.Map.Rooms = -1 }, true},
		{"no ticks", func(c *Config) { c.Engine.MaxTicks = 0 }, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Config{
				Map:    MapConfig{Width: 5, Height: 5},
				Engine: EngineConfig{MaxTicks: 10},
			}
			tt.mutate(&c)
			err := c.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalid)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
