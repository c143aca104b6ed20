package main

import (
	"context"
	"errors"
	"fmt"
	"text/tabwriter"

	"github.com/urfave/cli/v3"

	"tactical-sim/internal/domain"
	"tactical-sim/internal/infrastructure/storage"
	"tactical-sim/internal/world"
	"tactical-sim/pkg/logger"
)

func inspectCommand() *cli.Command {
	return &cli.Command{
		Name:      "inspect",
		Usage:     "показать заголовок и рельеф сохранения",
		ArgsUsage: "<save-file>",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			path := cmd.Args().First()
			if path == "" {
				return errors.New("inspect: укажите файл сохранения")
			}

			st, err := storage.ReadStateFile(path)
			if err != nil {
				return err
			}

			lvl, err := world.NewLevel(1, 1, domain.NewRegistry())
			if err != nil {
				return err
			}
			if err := lvl.LoadTerrain(storage.TerrainPath(path)); err != nil {
				return err
			}

			out := cmd.Root().Writer
			fmt.Fprintf(out, "Файл:   %s\n", path)
			fmt.Fprintf(out, "Ход:    %d\n", st.Turn)
			fmt.Fprintf(out, "Очередь: %s\n", teamLabel(st.OperativesTurn))
			fmt.Fprintf(out, "Карта:  %dx%d\n\n", lvl.Width(), lvl.Height())
			renderLevel(out, lvl)

			// Состав берётся из каталога, если сохранение туда попало.
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			cat, err := openCatalog(cfg.Storage.Catalog)
			if err != nil {
				logger.Log.WithError(err).Debug("Catalog unavailable.")
				return nil
			}
			defer cat.Close()

			rec, err := cat.Latest(ctx, path)
			if err != nil {
				return nil
			}
			roster, err := rec.RosterEntries()
			if err != nil || len(roster) == 0 {
				return nil
			}

			fmt.Fprintf(out, "\nСостав на момент сохранения (%s):\n", rec.State)
			tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "ИМЯ\tТИП\tHP\tПОЗИЦИЯ")
			for _, r := range roster {
				fmt.Fprintf(tw, "%s\t%s\t%d\t(%d,%d)\n", r.Name, r.Kind, r.Health, r.X, r.Y)
			}
			return tw.Flush()
		},
	}
}

func teamLabel(operatives bool) string {
	if operatives {
		return "оперативники"
	}
	return "монстры"
}
