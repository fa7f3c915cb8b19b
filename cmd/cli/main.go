package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/lucax88x/datestamp/cmd/cli/commands"
	"github.com/lucax88x/datestamp/cmd/cli/console"
	"github.com/lucax88x/datestamp/internal/clock"
	"github.com/lucax88x/datestamp/internal/setup"
	"github.com/spf13/viper"
)

func cli(viper *viper.Viper, console *console.Console, level *slog.LevelVar) setup.ProgramExecutor {
	return func(ctx context.Context, logger *slog.Logger) error {
		rootCmd := commands.NewRootCmd(ctx, commands.Deps{
			Logger:  logger,
			Viper:   viper,
			Console: console,
			Level:   level,
			Clock:   clock.NewSystemClock(),
		})

		return rootCmd.ExecuteContext(ctx)
	}
}

func main() {
	result := setup.Run(cli)

	if result == setup.NotOk {
		os.Exit(1)
	}
}
