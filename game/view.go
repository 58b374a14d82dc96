package game

import (
	"time"

	"classic-snake/game/manager"
	"classic-snake/game/types"
)

// Snapshot is a value copy of everything a front-end needs to draw a frame.
type Snapshot struct {
	Snake       []types.Point
	Food        types.Point
	Score       int
	HighScore   int
	Started     bool
	Direction   types.Direction
	Delay       time.Duration
	RunID       string
	GamesPlayed int
}

// Head returns the first snake segment.
func (s Snapshot) Head() types.Point {
	if len(s.Snake) == 0 {
		return types.Point{}
	}
	return s.Snake[0]
}

// View draws snapshots. It never sees the engine itself.
type View interface {
	Render(Snapshot)
	ShowInstructions()
	HideInstructions()
}

// Scheduler drives Tick. Reschedule replaces any active schedule.
type Scheduler interface {
	Reschedule(interval time.Duration)
	Stop()
}

// Listener receives gameplay events, e.g. for sound cues.
type Listener interface {
	FoodEaten(score int)
	RunEnded(record manager.RunRecord)
}

type InputKind int

const (
	InputNone InputKind = iota
	InputStart
	InputDirection
)

// Input is a discrete event from a front-end.
type Input struct {
	Kind      InputKind
	Direction types.Direction
}

func StartInput() Input {
	return Input{Kind: InputStart}
}

func DirectionInput(d types.Direction) Input {
	return Input{Kind: InputDirection, Direction: d}
}

type nopView struct{}

func (nopView) Render(Snapshot) {}
func (nopView) ShowInstructions() {}
func (nopView) HideInstructions() {}

type nopScheduler struct{}

func (nopScheduler) Reschedule(time.Duration) {}
func (nopScheduler) Stop() {}

type nopListener struct{}

func (nopListener) FoodEaten(int) {}
func (nopListener) RunEnded(manager.RunRecord) {}
