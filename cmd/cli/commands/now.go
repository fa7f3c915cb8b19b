package commands

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/lucax88x/datestamp/cmd/cli/console"
	"github.com/lucax88x/datestamp/cmd/cli/runner"
	"github.com/lucax88x/datestamp/internal/datestamp"
	"github.com/spf13/cobra"
)

func NewNowCmd(ctx context.Context, deps Deps) *cobra.Command {
	var layout string

	nowCmd := &cobra.Command{
		Use:   "now",
		Short: "print the current time",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, args []string) error {
			return runner.RunCmdE(ctx, deps.Logger, deps.Viper, deps.Console, deps.Level, deps.Clock, args, runNowCmd(layout))
		},
	}

	nowCmd.Flags().StringVarP(&layout, "layout", "l", "", "ad hoc layout, e.g. 'yyyy-MM-dd HH:mm'")

	nowCmd.SetOut(deps.Console.Stdout)
	nowCmd.SetErr(deps.Console.Stderr)

	return nowCmd
}

func runNowCmd(layout string) runner.RunE {
	return func(
		ctx context.Context,
		console *console.Console,
		_ []string,
		di *datestamp.Datestamp,
	) error {
		pattern, err := di.Pattern("", layout)

		if err != nil {
			return err
		}

		formatted, err := di.Formatter.FormatNow(pattern)

		if err != nil {
			return fmt.Errorf("now: %w", err)
		}

		di.Logger.DebugContext(ctx, "now: formatted", slog.String("pattern", pattern.Name()), slog.String("value", formatted))

		_, err = fmt.Fprintln(console.Stdout, formatted)
		return err
	}
}
