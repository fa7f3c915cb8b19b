package commands

import (
	"context"
	"fmt"
	"text/tabwriter"

	"github.com/lucax88x/datestamp/cmd/cli/console"
	"github.com/lucax88x/datestamp/cmd/cli/runner"
	"github.com/lucax88x/datestamp/internal/datestamp"
	"github.com/spf13/cobra"
)

func NewPatternsCmd(ctx context.Context, deps Deps) *cobra.Command {
	patternsCmd := &cobra.Command{
		Use:   "patterns",
		Short: "list the known patterns with a sample of the current time",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, args []string) error {
			return runner.RunCmdE(ctx, deps.Logger, deps.Viper, deps.Console, deps.Level, deps.Clock, args, runPatternsCmd())
		},
	}

	patternsCmd.SetOut(deps.Console.Stdout)
	patternsCmd.SetErr(deps.Console.Stderr)

	return patternsCmd
}

func runPatternsCmd() runner.RunE {
	return func(
		_ context.Context,
		console *console.Console,
		_ []string,
		di *datestamp.Datestamp,
	) error {
		// one clock read so every row shows the same instant
		now, err := di.Formatter.Now()

		if err != nil {
			return fmt.Errorf("patterns: %w", err)
		}

		w := tabwriter.NewWriter(console.Stdout, 0, 0, 2, ' ', 0)

		if _, err := fmt.Fprintln(w, "NAME\tLAYOUT\tZONE\tSAMPLE"); err != nil {
			return err
		}

		for _, name := range di.Patterns.Names() {
			p, err := di.Patterns.Lookup(name)

			if err != nil {
				return fmt.Errorf("patterns: %w", err)
			}

			if _, err := fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", p.Name(), p.Layout(), p.Location(), p.Format(now)); err != nil {
				return err
			}
		}

		return w.Flush()
	}
}
