package commands

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/lucax88x/datestamp/cmd/cli/console"
	"github.com/lucax88x/datestamp/cmd/cli/runner"
	"github.com/lucax88x/datestamp/internal/datestamp"
	"github.com/spf13/cobra"
)

func NewParseCmd(ctx context.Context, deps Deps) *cobra.Command {
	var layout string

	parseCmd := &cobra.Command{
		Use:   "parse VALUE",
		Short: "parse a formatted value and print it as RFC 3339",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runner.RunCmdE(ctx, deps.Logger, deps.Viper, deps.Console, deps.Level, deps.Clock, args, runParseCmd(layout))
		},
	}

	parseCmd.Flags().StringVarP(&layout, "layout", "l", "", "ad hoc layout the value was written with")

	parseCmd.SetOut(deps.Console.Stdout)
	parseCmd.SetErr(deps.Console.Stderr)

	return parseCmd
}

func runParseCmd(layout string) runner.RunE {
	return func(
		ctx context.Context,
		console *console.Console,
		args []string,
		di *datestamp.Datestamp,
	) error {
		pattern, err := di.Pattern("", layout)

		if err != nil {
			return err
		}

		parsed, err := pattern.Parse(args[0])

		if err != nil {
			di.Logger.DebugContext(ctx, "parse: failed", slog.String("value", args[0]), slog.Any("error", err))
			return fmt.Errorf("parse: %w", err)
		}

		_, err = fmt.Fprintln(console.Stdout, parsed.Format(time.RFC3339))
		return err
	}
}
