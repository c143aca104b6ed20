package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix - префикс переменных окружения: TACTICS_MAP_WIDTH и т.п.
const EnvPrefix = "TACTICS"

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

type MapConfig struct {
	Width       int    `mapstructure:"width"`
	Height      int    `mapstructure:"height"`
	TerrainFile string `mapstructure:"terrainFile"`
	Arena       bool   `mapstructure:"arena"`
	Rooms       int    `mapstructure:"rooms"`
	Seed        int64  `mapstructure:"seed"`
}

type EngineConfig struct {
	MaxTicks           int  `mapstructure:"maxTicks"`
	IdlePass           bool `mapstructure:"idlePass"`
	RequireLineOfFire  bool `mapstructure:"requireLineOfFire"`
	RequireLineOfSight bool `mapstructure:"requireLineOfSight"`
	DropLoot           bool `mapstructure:"dropLoot"`
}

type StorageConfig struct {
	SaveDir string `mapstructure:"saveDir"`
	Catalog string `mapstructure:"catalog"`
}

// SpawnConfig - позиция в сценарии. Auto - любая свободная клетка.
type SpawnConfig struct {
	Template string `mapstructure:"template"`
	X        int    `mapstructure:"x"`
	Y        int    `mapstructure:"y"`
	Auto     bool   `mapstructure:"auto"`
}

type OperativeConfig struct {
	SpawnConfig `mapstructure:",squash"`
	Weapon      string   `mapstructure:"weapon"`
	Secondary   string   `mapstructure:"secondary"`
	Items       []string `mapstructure:"items"`
}

type PointConfig struct {
	X int `mapstructure:"x"`
	Y int `mapstructure:"y"`
}

type MonsterConfig struct {
	SpawnConfig   `mapstructure:",squash"`
	StoragePoints []PointConfig `mapstructure:"storagePoints"`
}

type ScenarioConfig struct {
	Operatives []OperativeConfig `mapstructure:"operatives"`
	Monsters   []MonsterConfig   `mapstructure:"monsters"`
	Ground     []SpawnConfig     `mapstructure:"ground"`
}

type Config struct {
	Log      LogConfig      `mapstructure:"log"`
	Map      MapConfig      `mapstructure:"map"`
	Engine   EngineConfig   `mapstructure:"engine"`
	Storage  StorageConfig  `mapstructure:"storage"`
	Scenario ScenarioConfig `mapstructure:"scenario"`
}

// DefaultScenario - стартовая расстановка: агент с пистолетом против
// волка, охотника и сборщика на карте 5x5.
func DefaultScenario() ScenarioConfig {
	return ScenarioConfig{
		Operatives: []OperativeConfig{{
			SpawnConfig: SpawnConfig{Template: "agent", X: 1, Y: 1},
			Weapon:      "pistol",
			Items:       []string{"ammo9", "medkit"},
		}},
		Monsters: []MonsterConfig{
			{SpawnConfig: SpawnConfig{Template: "wolf", X: 3, Y: 2}},
			{SpawnConfig: SpawnConfig{Template: "hunter", X: 4, Y: 4}},
			{SpawnConfig: SpawnConfig{Template: "gatherer", X: 0, Y: 3}},
		},
	}
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	v.SetDefault("map.width", 5)
	v.SetDefault("map.height", 5)
	v.SetDefault("map.terrainFile", "")
	v.SetDefault("map.arena", false)
	v.SetDefault("map.rooms", 0)
	v.SetDefault("map.seed", 1)

	v.SetDefault("engine.maxTicks", 1000)
	v.SetDefault("engine.idlePass", false)
	v.SetDefault("engine.requireLineOfFire", false)
	v.SetDefault("engine.requireLineOfSight", false)
	v.SetDefault("engine.dropLoot", true)

	v.SetDefault("storage.saveDir", "./saves")
	v.SetDefault("storage.catalog", "./saves/catalog.db")
}

// Load читает конфигурацию: значения по умолчанию, затем файл (если path
// не пуст), затем переменные окружения TACTICS_*. Сценарий из файла
// заменяет стандартный целиком.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error decoding config: %w", err)
	}
	if !v.IsSet("scenario") {
		cfg.Scenario = DefaultScenario()
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

var ErrInvalid = errors.New("invalid config")

func (c *Config) Validate() error {
	if c.Map.TerrainFile == "" && (c.Map.Width <= 0 || c.Map.Height <= 0) {
		return fmt.Errorf("map size %dx%d: %w", c.Map.Width, c.Map.Height, ErrInvalid)
	}
	if c.Map.Rooms < 0 {
		return fmt.Errorf("map.rooms %d: %w", c.Map.Rooms, ErrInvalid)
	}
	if c.Engine.MaxTicks <= 0 {
		return fmt.Errorf("engine.maxTicks %d: %w", c.Engine.MaxTicks, ErrInvalid)
	}
	return nil
}
