package clock

import (
	"sync"
	"time"
)

// SeededClock replays the given instants in order, wrapping around once all
// of them have been returned.
type SeededClock struct {
	mu    sync.Mutex
	times []time.Time
	index int
}

func NewSeededClock(times ...time.Time) *SeededClock {
	if len(times) == 0 {
		times = []time.Time{time.Unix(0, 0)}
	}

	return &SeededClock{
		times: times,
	}
}

func (s *SeededClock) Now() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.index >= len(s.times) {
		s.index = 0
	}

	index := s.index
	s.index++
	return s.times[index]
}

var _ Clock = (*SeededClock)(nil)
