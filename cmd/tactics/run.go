package main

import (
	"context"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v3"

	"tactical-sim/internal/config"
	"tactical-sim/internal/domain"
	"tactical-sim/internal/engine"
	"tactical-sim/internal/infrastructure/storage"
	"tactical-sim/internal/world"
	"tactical-sim/pkg/dungeon"
	"tactical-sim/pkg/logger"
)

func runCommand() *cli.Command {
	return &cli.Command{
		Name:  "run",
		Usage: "собрать уровень по конфигу и прогнать партию до конца",
		Flags: []cli.Flag{
			&cli.IntFlag{Name: "ticks", Usage: "предел тиков (0 = engine.maxTicks)"},
			&cli.StringFlag{Name: "save", Usage: "имя слота сохранения по окончании"},
			&cli.IntFlag{Name: "log-tail", Value: 10, Usage: "сколько последних событий партии показать"},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			lvl, err := buildLevel(cfg)
			if err != nil {
				return err
			}

			var opts []engine.Option
			if cmd.String("save") != "" {
				cat, err := openCatalog(cfg.Storage.Catalog)
				if err != nil {
					return err
				}
				defer cat.Close()
				opts = append(opts, engine.WithRecorder(cat))
			}

			g, err := engine.NewGameEngine(lvl, engineConfig(cfg), opts...)
			if err != nil {
				return err
			}

			out := cmd.Root().Writer
			fmt.Fprintln(out, "Начало партии:")
			renderLevel(out, lvl)

			ticks := g.Run(int(cmd.Int("ticks")))

			fmt.Fprintf(out, "\nПосле %d тиков (ход %d): %s\n", ticks, g.Turn(), g.State())
			renderLevel(out, lvl)
			renderLogs(out, g.Logs(), int(cmd.Int("log-tail")))
			renderLegend(out)

			if name := cmd.String("save"); name != "" {
				svc, err := storage.NewSaveService(cfg.Storage.SaveDir)
				if err != nil {
					return err
				}
				path := svc.PathFor(name)
				if err := g.SaveGame(path); err != nil {
					return err
				}
				fmt.Fprintf(out, "\nСохранено: %s\n", path)
			}
			return nil
		},
	}
}

func loadConfig(cmd *cli.Command) (*config.Config, error) {
	cfg, err := config.Load(cmd.Root().String("config"))
	if err != nil {
		return nil, err
	}
	logger.Configure(cfg.Log.Level, cfg.Log.Format)
	return cfg, nil
}

func engineConfig(cfg *config.Config) engine.Config {
	return engine.Config{
		MaxTicks:           cfg.Engine.MaxTicks,
		IdlePass:           cfg.Engine.IdlePass,
		RequireLineOfFire:  cfg.Engine.RequireLineOfFire,
		RequireLineOfSight: cfg.Engine.RequireLineOfSight,
		DropLoot:           cfg.Engine.DropLoot,
	}
}

// buildLevel собирает уровень по разделам map и scenario.
func buildLevel(cfg *config.Config) (*world.Level, error) {
	b := dungeon.NewLevel(domain.NewRegistry()).
		WithSize(cfg.Map.Width, cfg.Map.Height).
		WithRand(rand.New(rand.NewSource(cfg.Map.Seed)))

	if cfg.Map.TerrainFile != "" {
		b.WithTerrainFile(cfg.Map.TerrainFile)
	}
	if cfg.Map.Arena {
		b.WithArena()
	}
	if cfg.Map.Rooms > 0 {
		b.WithRooms(cfg.Map.Rooms)
	}

	for _, op := range cfg.Scenario.Operatives {
		b.SpawnOperative(op.Template, spot(op.SpawnConfig), dungeon.Loadout{
			Weapon:    op.Weapon,
			Secondary: op.Secondary,
			Items:     op.Items,
		})
	}
	for _, m := range cfg.Scenario.Monsters {
		points := make([]domain.Position, 0, len(m.StoragePoints))
		for _, p := range m.StoragePoints {
			points = append(points, domain.Position{X: p.X, Y: p.Y})
		}
		b.SpawnMonster(m.Template, spot(m.SpawnConfig), points...)
	}
	for _, it := range cfg.Scenario.Ground {
		b.SpawnItem(it.Template, spot(it))
	}

	lvl, err := b.Build()
	if err != nil {
		return nil, err
	}

	logger.Log.WithFields(logrus.Fields{
		"component":  "cli",
		"width":      lvl.Width(),
		"height":     lvl.Height(),
		"operatives": len(lvl.Operatives()),
		"monsters":   len(lvl.Monsters()),
	}).Info("Level ready.")
	return lvl, nil
}

func spot(s config.SpawnConfig) dungeon.Spot {
	if s.Auto {
		return dungeon.Anywhere()
	}
	return dungeon.At(s.X, s.Y)
}

func openCatalog(path string) (*storage.Catalog, error) {
	if path != "" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, fmt.Errorf("create catalog dir: %w", err)
		}
	}
	return storage.OpenCatalog(path)
}
