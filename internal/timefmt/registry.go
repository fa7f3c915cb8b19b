package timefmt

import (
	"fmt"
	"slices"
	"sync"
	"time"
)

type Registry struct {
	mu       sync.RWMutex
	patterns map[string]Pattern
}

// NewRegistry returns a registry holding Normal and CompactNumeric anchored
// to loc. A nil loc keeps them in time.Local. Their names are taken: later
// patterns cannot replace them.
func NewRegistry(loc *time.Location) *Registry {
	normal := Normal.In(loc)
	compact := CompactNumeric.In(loc)

	return &Registry{
		patterns: map[string]Pattern{
			normal.Name():  normal,
			compact.Name(): compact,
		},
	}
}

func (r *Registry) Register(p Pattern) error {
	if !p.compiled() {
		return &FormattingError{Layout: p.layout, Pos: -1, Reason: "pattern was not compiled"}
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.patterns[p.Name()]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicatePattern, p.Name())
	}

	r.patterns[p.Name()] = p
	return nil
}

func (r *Registry) Lookup(name string) (Pattern, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.patterns[name]

	if !ok {
		return Pattern{}, fmt.Errorf("%w: %q", ErrUnknownPattern, name)
	}

	return p, nil
}

func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.patterns))
	for name := range r.patterns {
		names = append(names, name)
	}

	slices.Sort(names)
	return names
}
