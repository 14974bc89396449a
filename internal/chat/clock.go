package chat

import "time"

// Clock paces the streamed answer chunks. Tests substitute a manual clock to
// drive ticks deterministically.
type Clock interface {
	After(d time.Duration) <-chan time.Time
}

type realClock struct{}

func (realClock) After(d time.Duration) <-chan time.Time {
	return time.After(d)
}

// NewRealClock returns a Clock backed by the runtime timer.
func NewRealClock() Clock {
	return realClock{}
}
