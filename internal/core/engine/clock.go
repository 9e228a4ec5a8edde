package engine

import "time"

// Clock abstracts the tick source so tests can drive the countdown by hand.
type Clock interface {
	Now() time.Time
	Ticker(interval time.Duration) (ticks <-chan time.Time, stop func())
}

type realClock struct{}

func (realClock) Now() time.Time { return time.Now() }

func (realClock) Ticker(interval time.Duration) (<-chan time.Time, func()) {
	ticker := time.NewTicker(interval)
	return ticker.C, ticker.Stop
}
