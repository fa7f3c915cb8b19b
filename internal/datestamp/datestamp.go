package datestamp

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/lucax88x/datestamp/internal/clock"
	"github.com/lucax88x/datestamp/internal/timefmt"
)

type Datestamp struct {
	Logger    *slog.Logger
	Clock     clock.Clock
	Formatter *timefmt.Formatter
	Patterns  *timefmt.Registry
	Location  *time.Location

	defaultPattern string
}

func NewDatestamp(
	logger *slog.Logger,
	c clock.Clock,
	patterns *timefmt.Registry,
	location *time.Location,
	defaultPattern string,
) *Datestamp {
	return &Datestamp{
		Logger:         logger,
		Clock:          c,
		Formatter:      timefmt.NewFormatter(c),
		Patterns:       patterns,
		Location:       location,
		defaultPattern: defaultPattern,
	}
}

// Pattern resolves the pattern a command should use. A non-empty layout
// wins over name, and an empty name means the configured default.
func (d *Datestamp) Pattern(name, layout string) (timefmt.Pattern, error) {
	if layout != "" {
		p, err := timefmt.Compile("custom", layout, d.Location)

		if err != nil {
			return timefmt.Pattern{}, fmt.Errorf("datestamp: invalid layout: %w", err)
		}

		return p, nil
	}

	if name == "" {
		name = d.defaultPattern
	}

	p, err := d.Patterns.Lookup(name)

	if err != nil {
		return timefmt.Pattern{}, fmt.Errorf("datestamp: %w", err)
	}

	return p, nil
}
