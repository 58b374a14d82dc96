// Package loop drives a game engine from a single goroutine: ticks from a
// resettable ticker and inputs from front-ends are applied one at a time.
package loop

import (
	"context"
	"time"

	"classic-snake/game"
)

// Engine is the part of the game the loop drives.
type Engine interface {
	HandleInput(in game.Input) bool
	Tick()
}

// Ticker is the subset of *time.Ticker the loop needs.
type Ticker interface {
	C() <-chan time.Time
	Stop()
}

type timeTicker struct {
	t *time.Ticker
}

func (t timeTicker) C() <-chan time.Time { return t.t.C }
func (t timeTicker) Stop() { t.t.Stop() }

// NewTimeTicker wraps time.NewTicker.
func NewTimeTicker(d time.Duration) Ticker {
	return timeTicker{t: time.NewTicker(d)}
}

// Loop implements game.Scheduler. Reschedule and Stop are only called from
// inside Run, so the ticker field has a single owner.
type Loop struct {
	newTicker func(time.Duration) Ticker
	ticker    Ticker
	interval  time.Duration
}

func New() *Loop {
	return NewWithTicker(NewTimeTicker)
}

// NewWithTicker lets tests substitute a manual ticker.
func NewWithTicker(newTicker func(time.Duration) Ticker) *Loop {
	return &Loop{newTicker: newTicker}
}

// Reschedule cancels the active ticker before installing one with the new
// interval, so at most one schedule exists.
func (l *Loop) Reschedule(interval time.Duration) {
	l.Stop()
	l.ticker = l.newTicker(interval)
	l.interval = interval
}

func (l *Loop) Stop() {
	if l.ticker != nil {
		l.ticker.Stop()
		l.ticker = nil
	}
	l.interval = 0
}

// Interval is the active tick period, zero when stopped.
func (l *Loop) Interval() time.Duration {
	return l.interval
}

// Run applies ticks and inputs until ctx is cancelled or inputs is closed.
func (l *Loop) Run(ctx context.Context, engine Engine, inputs <-chan game.Input) error {
	defer l.Stop()

	for {
		var tick <-chan time.Time
		if l.ticker != nil {
			tick = l.ticker.C()
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case in, ok := <-inputs:
			if !ok {
				return nil
			}
			engine.HandleInput(in)
		case <-tick:
			engine.Tick()
		}
	}
}
