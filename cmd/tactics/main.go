package main

import (
	"context"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v3"

	"tactical-sim/internal/version"
	"tactical-sim/pkg/logger"
)

func init() {
	logger.Init()
}

func main() {
	// .env необязателен
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		logger.Log.WithError(err).Warn("Error loading .env file")
	}

	if err := newApp().Run(context.Background(), os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "Ошибка:", err)
		os.Exit(1)
	}
}

func newApp() *cli.Command {
	return &cli.Command{
		Name:    version.AppName,
		Usage:   "пошаговая тактическая симуляция: оперативники против монстров",
		Version: version.String(),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "YAML-файл конфигурации",
			},
		},
		Commands: []*cli.Command{
			runCommand(),
			inspectCommand(),
			savesCommand(),
			{
				Name:  "version",
				Usage: "показать версию сборки",
				Action: func(_ context.Context, cmd *cli.Command) error {
					_, err := fmt.Fprintln(cmd.Root().Writer, version.String())
					return err
				},
			},
		},
	}
}
