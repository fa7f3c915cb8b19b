package timefmt

import (
	"errors"
	"fmt"
)

var (
	ErrUnknownPattern   = errors.New("timefmt: unknown pattern")
	ErrDuplicatePattern = errors.New("timefmt: pattern already registered")
)

// FormattingError reports a layout that cannot be compiled, or a pattern
// that cannot be used for the requested operation. Pos is the byte offset
// of the offending token in Layout, or -1 when the whole layout is at fault.
type FormattingError struct {
	Layout string
	Pos    int
	Reason string
}

func (e *FormattingError) Error() string {
	if e.Pos < 0 {
		return fmt.Sprintf("timefmt: layout %q: %s", e.Layout, e.Reason)
	}

	return fmt.Sprintf("timefmt: layout %q at %d: %s", e.Layout, e.Pos, e.Reason)
}

// ClockUnavailableError is returned when the clock yields no usable instant.
type ClockUnavailableError struct {
	Reason string
}

func (e *ClockUnavailableError) Error() string {
	return "timefmt: clock unavailable: " + e.Reason
}
