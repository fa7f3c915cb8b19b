// Package timefmt renders instants through immutable, named layouts written
// with the letter syntax of yyyy-MM-dd HH:mm:ss style patterns.
//
// Every layout is translated once into a reference layout of the time
// package, which does the rendering and parsing. A Pattern captures its time
// zone when it is compiled. Normal and CompactNumeric are compiled once at
// startup against time.Local and keep that zone for the lifetime of the
// process.
package timefmt

import (
	"fmt"
	"strings"
	"time"
)

const (
	NormalLayout         = "yyyy-MM-dd HH:mm:ss"
	CompactNumericLayout = "yyyyMMddHHmmss"

	NormalGoLayout         = time.DateTime
	CompactNumericGoLayout = "20060102150405"
)

//nolint:gochecknoglobals // process-wide immutable patterns
var (
	Normal         = MustCompile("normal", NormalLayout, time.Local)
	CompactNumeric = MustCompile("compact", CompactNumericLayout, time.Local)
)

type segment struct {
	pos     int
	literal string
	field   *field
}

// Pattern is an immutable compiled layout anchored to a time zone.
// The zero value is not usable; obtain patterns from Compile.
type Pattern struct {
	name     string
	layout   string
	goLayout string
	parseErr string
	loc      *time.Location
}

// Compile validates layout and returns a pattern anchored to loc. A nil loc
// means time.Local.
func Compile(name, layout string, loc *time.Location) (Pattern, error) {
	if layout == "" {
		return Pattern{}, &FormattingError{Layout: layout, Pos: 0, Reason: "empty layout"}
	}

	if loc == nil {
		loc = time.Local
	}

	segments, err := compileSegments(layout)

	if err != nil {
		return Pattern{}, err
	}

	goLayout, err := buildGoLayout(layout, segments)

	if err != nil {
		return Pattern{}, err
	}

	return Pattern{
		name:     name,
		layout:   layout,
		goLayout: goLayout,
		parseErr: parseProblem(segments),
		loc:      loc,
	}, nil
}

func MustCompile(name, layout string, loc *time.Location) Pattern {
	p, err := Compile(name, layout, loc)

	if err != nil {
		panic(err)
	}

	return p
}

func (p Pattern) Name() string {
	return p.name
}

func (p Pattern) Layout() string {
	return p.layout
}

func (p Pattern) Location() *time.Location {
	return p.loc
}

// GoLayout returns the equivalent reference layout for the time package.
func (p Pattern) GoLayout() string {
	return p.goLayout
}

// In returns a copy of the pattern anchored to loc.
func (p Pattern) In(loc *time.Location) Pattern {
	if loc == nil {
		loc = time.Local
	}

	p.loc = loc
	return p
}

func (p Pattern) String() string {
	return fmt.Sprintf("%s (%s, %s)", p.name, p.layout, p.loc)
}

func (p Pattern) compiled() bool {
	return p.goLayout != ""
}

// Format renders t, resolved in the pattern's zone.
func (p Pattern) Format(t time.Time) string {
	return t.In(p.loc).Format(p.goLayout)
}

// Parse reads a value produced by Format back into an instant in the
// pattern's zone. Layouts that lose information on the way out, such as a
// two-digit year, are refused.
func (p Pattern) Parse(value string) (time.Time, error) {
	if !p.compiled() {
		return time.Time{}, &FormattingError{Layout: p.layout, Pos: -1, Reason: "pattern was not compiled"}
	}

	if p.parseErr != "" {
		return time.Time{}, &FormattingError{Layout: p.layout, Pos: -1, Reason: p.parseErr}
	}

	t, err := time.ParseInLocation(p.goLayout, value, p.loc)

	if err != nil {
		return time.Time{}, fmt.Errorf("timefmt: could not parse %q with %q: %w", value, p.layout, err)
	}

	return t, nil
}

func compileSegments(layout string) ([]segment, error) {
	var segments []segment
	var lit strings.Builder
	litPos := 0

	mark := func(pos int) {
		if lit.Len() == 0 {
			litPos = pos
		}
	}

	flush := func() {
		if lit.Len() > 0 {
			segments = append(segments, segment{pos: litPos, literal: lit.String()})
			lit.Reset()
		}
	}

	for i := 0; i < len(layout); {
		c := layout[i]

		switch {
		case c == '\'':
			mark(i)
			j := i + 1

			if j < len(layout) && layout[j] == '\'' {
				lit.WriteByte('\'')
				i = j + 1
				continue
			}

			closed := false
			for j < len(layout) {
				if layout[j] == '\'' {
					if j+1 < len(layout) && layout[j+1] == '\'' {
						lit.WriteByte('\'')
						j += 2
						continue
					}
					closed = true
					break
				}
				lit.WriteByte(layout[j])
				j++
			}

			if !closed {
				return nil, &FormattingError{Layout: layout, Pos: i, Reason: "unterminated quote"}
			}

			i = j + 1
		case isLetter(c):
			j := i
			for j < len(layout) && layout[j] == c {
				j++
			}

			f, ok := lookupField(c, j-i)

			if !ok {
				return nil, &FormattingError{
					Layout: layout,
					Pos:    i,
					Reason: fmt.Sprintf("unsupported field %q", layout[i:j]),
				}
			}

			flush()
			segments = append(segments, segment{pos: i, field: f})
			i = j
		default:
			mark(i)
			lit.WriteByte(c)
			i++
		}
	}

	flush()

	return segments, nil
}

// text the time package would read as layout elements inside a literal
//
//nolint:gochecknoglobals // ok
var goReserved = []string{"Jan", "Mon", "MST", "PM", "pm", "Z07", "-07", "_"}

func buildGoLayout(layout string, segments []segment) (string, error) {
	var b strings.Builder

	for i, s := range segments {
		if s.field == nil {
			if strings.ContainsAny(s.literal, "0123456789") {
				return "", &FormattingError{Layout: layout, Pos: s.pos, Reason: fmt.Sprintf("literal %q contains digits", s.literal)}
			}

			for _, reserved := range goReserved {
				if strings.Contains(s.literal, reserved) {
					return "", &FormattingError{Layout: layout, Pos: s.pos, Reason: fmt.Sprintf("literal %q contains %q", s.literal, reserved)}
				}
			}

			b.WriteString(s.literal)
			continue
		}

		if s.field.fraction {
			if i == 0 || segments[i-1].field != nil || !strings.HasSuffix(segments[i-1].literal, ".") && !strings.HasSuffix(segments[i-1].literal, ",") {
				return "", &FormattingError{Layout: layout, Pos: s.pos, Reason: "fraction of second must follow '.' or ','"}
			}
		}

		if s.field.variable && i+1 < len(segments) && segments[i+1].field != nil {
			return "", &FormattingError{Layout: layout, Pos: s.pos, Reason: "variable-width field is directly followed by another field"}
		}

		b.WriteString(s.field.token)
	}

	return b.String(), nil
}

func parseProblem(segments []segment) string {
	var twelveHour, marker bool

	for _, s := range segments {
		switch {
		case s.field == nil:
		case s.field.twoDigit:
			return "two-digit year does not identify its century"
		case s.field.twelveHour:
			twelveHour = true
		case s.field.marker:
			marker = true
		}
	}

	if twelveHour && !marker {
		return "12-hour field without an AM/PM marker"
	}

	return ""
}

func isLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}
