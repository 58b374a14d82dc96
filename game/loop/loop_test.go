package loop

import (
	"context"
	"errors"
	"io"
	"log"
	"sync/atomic"
	"testing"
	"time"

	"classic-snake/game"
	"classic-snake/game/types"
)

type manualTicker struct {
	interval time.Duration
	ch       chan time.Time
	stopped  atomic.Bool
}

func (m *manualTicker) C() <-chan time.Time { return m.ch }
func (m *manualTicker) Stop() { m.stopped.Store(true) }

func manualFactory(created chan<- *manualTicker) func(time.Duration) Ticker {
	return func(d time.Duration) Ticker {
		m := &manualTicker{interval: d, ch: make(chan time.Time)}
		created <- m
		return m
	}
}

type chanView struct {
	snaps chan game.Snapshot
}

func (v chanView) Render(s game.Snapshot) { v.snaps <- s }
func (v chanView) ShowInstructions() {}
func (v chanView) HideInstructions() {}

func receive[T any](t *testing.T, ch <-chan T) T {
	t.Helper()
	select {
	case v := <-ch:
		return v
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for loop")
		var zero T
		return zero
	}
}

func TestRescheduleKeepsSingleTicker(t *testing.T) {
	created := make(chan *manualTicker, 4)
	l := NewWithTicker(manualFactory(created))

	l.Reschedule(100 * time.Millisecond)
	l.Reschedule(50 * time.Millisecond)

	first, second := <-created, <-created
	if !first.stopped.Load() {
		t.Error("previous ticker not stopped before installing a new one")
	}
	if second.stopped.Load() {
		t.Error("current ticker should be active")
	}
	if l.Interval() != 50*time.Millisecond {
		t.Errorf("Interval() = %v, want 50ms", l.Interval())
	}

	l.Stop()
	if !second.stopped.Load() || l.Interval() != 0 {
		t.Error("Stop should cancel the active ticker")
	}
}

func TestRunDrivesEngine(t *testing.T) {
	created := make(chan *manualTicker, 4)
	l := NewWithTicker(manualFactory(created))
	view := chanView{snaps: make(chan game.Snapshot, 16)}

	g := game.NewGame(game.Options{
		Seed:      3,
		View:      view,
		Scheduler: l,
		Logger:    log.New(io.Discard, "", 0),
	})
	receive(t, view.snaps)

	ctx, cancel := context.WithCancel(context.Background())
	inputs := make(chan game.Input)
	errc := make(chan error, 1)
	go func() { errc <- l.Run(ctx, g, inputs) }()

	inputs <- game.StartInput()
	if snap := receive(t, view.snaps); !snap.Started {
		t.Fatal("start input did not start the game")
	}

	ticker := receive(t, created)
	if ticker.interval != types.BaseDelay {
		t.Errorf("first schedule = %v, want %v", ticker.interval, types.BaseDelay)
	}

	ticker.ch <- time.Now()
	snap := receive(t, view.snaps)
	if snap.Head() != (types.Point{X: 11, Y: 10}) {
		t.Errorf("head after tick = %v, want (11,10)", snap.Head())
	}

	cancel()
	if err := receive(t, errc); !errors.Is(err, context.Canceled) {
		t.Errorf("Run returned %v, want context.Canceled", err)
	}
	if !ticker.stopped.Load() {
		t.Error("ticker should be stopped when Run exits")
	}
}

func TestRunEndsWhenInputsClosed(t *testing.T) {
	l := New()
	g := game.NewGame(game.Options{Logger: log.New(io.Discard, "", 0)})

	inputs := make(chan game.Input)
	close(inputs)

	if err := l.Run(context.Background(), g, inputs); err != nil {
		t.Errorf("Run returned %v, want nil", err)
	}
}
