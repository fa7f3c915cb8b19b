package timefmt

import (
	"time"

	"github.com/lucax88x/datestamp/internal/clock"
)

// Formatter renders the clock's current instant. It holds no mutable state
// and is safe for concurrent use.
type Formatter struct {
	clock clock.Clock
}

func NewFormatter(c clock.Clock) *Formatter {
	if c == nil {
		c = clock.NewSystemClock()
	}

	return &Formatter{
		clock: c,
	}
}

// Now reads the clock once. The zero instant means the clock could not be
// read.
func (f *Formatter) Now() (time.Time, error) {
	now := f.clock.Now()

	if now.IsZero() {
		return time.Time{}, &ClockUnavailableError{Reason: "clock returned the zero instant"}
	}

	return now, nil
}

func (f *Formatter) FormatNow(p Pattern) (string, error) {
	if !p.compiled() {
		return "", &FormattingError{Layout: p.layout, Pos: -1, Reason: "pattern was not compiled"}
	}

	now, err := f.Now()

	if err != nil {
		return "", err
	}

	return p.Format(now), nil
}
