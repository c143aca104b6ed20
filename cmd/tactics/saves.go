package main

import (
	"context"
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/urfave/cli/v3"
)

func savesCommand() *cli.Command {
	return &cli.Command{
		Name:  "saves",
		Usage: "список сохранений из каталога",
		Flags: []cli.Flag{
			&cli.IntFlag{Name: "limit", Value: 20, Usage: "сколько последних показать (0 = все)"},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			cat, err := openCatalog(cfg.Storage.Catalog)
			if err != nil {
				return err
			}
			defer cat.Close()

			records, err := cat.List(ctx, int(cmd.Int("limit")))
			if err != nil {
				return err
			}

			out := cmd.Root().Writer
			if len(records) == 0 {
				fmt.Fprintln(out, "Сохранений нет.")
				return nil
			}

			tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tСОЗДАНО\tХОД\tОЧЕРЕДЬ\tСОСТОЯНИЕ\tКАРТА\tФАЙЛ")
			for _, r := range records {
				fmt.Fprintf(tw, "%s\t%s\t%d\t%s\t%s\t%dx%d\t%s\n",
					r.SaveID[:8],
					r.CreatedAt.Local().Format(time.DateTime),
					r.Turn,
					teamLabel(r.OperativesTurn),
					r.State,
					r.Width, r.Height,
					r.Path,
				)
			}
			return tw.Flush()
		},
	}
}
