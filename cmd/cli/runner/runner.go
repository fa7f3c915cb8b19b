package runner

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/lucax88x/datestamp/cmd/cli/config"
	"github.com/lucax88x/datestamp/cmd/cli/console"
	"github.com/lucax88x/datestamp/internal/clock"
	"github.com/lucax88x/datestamp/internal/datestamp"
	"github.com/spf13/viper"
)

type RunE func(
	ctx context.Context,
	console *console.Console,
	args []string,
	di *datestamp.Datestamp,
) error

func RunCmdE(
	ctx context.Context,
	logger *slog.Logger,
	viper *viper.Viper,
	console *console.Console,
	level *slog.LevelVar,
	clock clock.Clock,
	args []string,
	run RunE,
) error {
	cfg, err := config.Load(viper)

	if err != nil {
		return err
	}

	lvl, err := cfg.Level()

	if err != nil {
		return err
	}

	level.Set(lvl)

	loc, err := cfg.Location()

	if err != nil {
		return err
	}

	registry, err := cfg.Registry()

	if err != nil {
		return err
	}

	logger.DebugContext(
		ctx,
		"runner: config loaded",
		slog.String("pattern", cfg.Pattern),
		slog.String("zone", loc.String()),
		slog.Any("patterns", registry.Names()),
	)

	di := datestamp.NewDatestamp(logger, clock, registry, loc, cfg.Pattern)

	if err := run(ctx, console, args, di); err != nil {
		return fmt.Errorf("runner: %w", err)
	}

	return nil
}
