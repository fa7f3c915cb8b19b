package commands

import (
	"context"
	"log/slog"

	"github.com/lucax88x/datestamp/cmd/cli/config"
	"github.com/lucax88x/datestamp/cmd/cli/console"
	"github.com/lucax88x/datestamp/internal/clock"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

type Deps struct {
	Logger  *slog.Logger
	Viper   *viper.Viper
	Console *console.Console
	Level   *slog.LevelVar
	Clock   clock.Clock
}

func NewRootCmd(ctx context.Context, deps Deps) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "datestamp",
		Short:         "print the current time through named patterns",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := rootCmd.PersistentFlags()
	flags.String(config.KeyConfig, "", "config file (default $XDG_CONFIG_HOME/datestamp/config.yaml)")
	flags.String(config.KeyLogLevel, "", "log level: debug, info, warn, error")
	flags.StringP(config.KeyPattern, "p", "", "pattern name (default from config, else normal)")
	flags.StringP(config.KeyZone, "z", "", "IANA time zone, or local")

	for _, key := range []string{config.KeyConfig, config.KeyLogLevel, config.KeyPattern, config.KeyZone} {
		if err := deps.Viper.BindPFlag(key, flags.Lookup(key)); err != nil {
			deps.Logger.ErrorContext(ctx, "root: could not bind flag", slog.String("flag", key), slog.Any("error", err))
		}
	}

	rootCmd.SetOut(deps.Console.Stdout)
	rootCmd.SetErr(deps.Console.Stderr)

	rootCmd.AddCommand(NewNowCmd(ctx, deps))
	rootCmd.AddCommand(NewPatternsCmd(ctx, deps))
	rootCmd.AddCommand(NewParseCmd(ctx, deps))

	return rootCmd
}
