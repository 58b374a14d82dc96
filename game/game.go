package game

import (
	"errors"
	"log"
	"time"

	"classic-snake/game/entity"
	"classic-snake/game/manager"
	"classic-snake/game/types"

	"github.com/google/uuid"
)

// Options wires a Game to its collaborators. Nil fields fall back to no-ops.
type Options struct {
	Seed      uint64
	View      View
	Scheduler Scheduler
	Listener  Listener
	Logger    *log.Logger
	Now       func() time.Time
}

// Game is the single-player engine. All methods must be called from one
// goroutine, normally the loop that owns the Scheduler.
type Game struct {
	Grid types.Grid

	snake            *entity.Snake
	food             types.Point
	direction        types.Direction
	pendingDirection types.Direction
	delay            time.Duration
	running          bool

	runID    string
	runStart time.Time

	collisionMgr *manager.CollisionManager
	foodMgr      *manager.FoodManager
	stateMgr     *manager.StateManager

	view      View
	scheduler Scheduler
	listener  Listener
	logger    *log.Logger
	now       func() time.Time
}

// NewGame builds an engine on the fixed board and runs Init.
func NewGame(opts Options) *Game {
	grid := types.DefaultGrid

	g := &Game{
		Grid:         grid,
		collisionMgr: manager.NewCollisionManager(grid),
		foodMgr:      manager.NewFoodManager(grid, opts.Seed),
		stateMgr:     manager.NewStateManager(),
		view:         opts.View,
		scheduler:    opts.Scheduler,
		listener:     opts.Listener,
		logger:       opts.Logger,
		now:          opts.Now,
	}
	if g.view == nil {
		g.view = nopView{}
	}
	if g.scheduler == nil {
		g.scheduler = nopScheduler{}
	}
	if g.listener == nil {
		g.listener = nopListener{}
	}
	if g.logger == nil {
		g.logger = log.Default()
	}
	if g.now == nil {
		g.now = time.Now
	}

	g.Init()
	return g
}

// Init puts the engine in its pre-game configuration and draws it once.
func (g *Game) Init() {
	g.running = false
	g.newRun()
	g.view.ShowInstructions()
	g.view.Render(g.Snapshot())
}

// Start begins ticking at the current delay. It does nothing while running.
func (g *Game) Start() {
	if g.running {
		return
	}
	g.running = true
	g.runStart = g.now()
	g.view.HideInstructions()
	g.scheduler.Reschedule(g.delay)
	g.logger.Printf("run %s started", g.runID)
	g.view.Render(g.Snapshot())
}

// HandleInput applies one front-end event and reports whether it changed
// anything. A direction opposite to the committed heading is rejected.
func (g *Game) HandleInput(in Input) bool {
	switch in.Kind {
	case InputStart:
		if g.running {
			return false
		}
		g.Start()
		return true
	case InputDirection:
		if !in.Direction.Valid() || in.Direction == g.direction.Opposite() {
			return false
		}
		g.pendingDirection = in.Direction
		return true
	default:
		return false
	}
}

// Tick advances the snake by one cell and renders the result once.
func (g *Game) Tick() {
	// A stale timer may still fire after a reset
	if !g.running {
		return
	}

	g.direction = g.pendingDirection
	newHead := types.Step(g.snake.GetHead(), g.direction)
	grew := g.collisionMgr.IsFoodCollision(newHead, g.food)
	g.snake.Advance(newHead, grew)

	if grew && !g.eat() {
		g.reset(manager.EndBoardFull)
	} else if c := g.collisionMgr.CheckCollision(g.snake); c != manager.NoCollision {
		g.reset(manager.EndReasonFor(c))
	}

	g.view.Render(g.Snapshot())
}

// Reset ends the current run, commits the high score and restores the
// pre-game configuration.
func (g *Game) Reset() {
	g.reset(manager.EndReset)
	g.view.Render(g.Snapshot())
}

// eat re-places the food and speeds the game up. It returns false when the
// board has no free cell left.
func (g *Game) eat() bool {
	food, err := g.foodMgr.PlaceFood(g.snake)
	if errors.Is(err, manager.ErrBoardFull) {
		return false
	}
	g.food = food

	if next := manager.NextDelay(g.delay); next != g.delay {
		g.delay = next
		g.scheduler.Reschedule(g.delay)
	}
	g.listener.FoodEaten(g.Score())
	return true
}

func (g *Game) reset(reason manager.EndReason) {
	score := g.Score()
	if g.stateMgr.CommitScore(score) {
		g.logger.Printf("new high score %s", manager.FormatScore(score))
	}

	g.scheduler.Stop()
	if g.running {
		record := manager.RunRecord{
			RunID:     g.runID,
			Score:     score,
			Reason:    reason,
			StartTime: g.runStart,
			EndTime:   g.now(),
		}
		g.stateMgr.AddToHistory(record)
		g.logger.Printf("run %s ended (%s): score %s in %s",
			record.RunID, record.Reason, manager.FormatScore(score), record.Duration().Round(time.Millisecond))
		g.listener.RunEnded(record)
	}
	g.running = false

	g.view.ShowInstructions()
	g.newRun()
}

func (g *Game) newRun() {
	g.snake = entity.NewSnake(g.Grid.Center())
	g.direction = types.StartDirection
	g.pendingDirection = types.StartDirection
	g.delay = types.BaseDelay
	g.runID = uuid.New().String()

	food, err := g.foodMgr.PlaceFood(g.snake)
	if err != nil {
		g.logger.Printf("placing food: %v", err)
	}
	g.food = food
}

// Score is the snake length minus the head.
func (g *Game) Score() int {
	return g.snake.Len() - 1
}

func (g *Game) HighScore() int {
	return g.stateMgr.GetHighScore()
}

func (g *Game) Running() bool {
	return g.running
}

// Delay is the current tick interval.
func (g *Game) Delay() time.Duration {
	return g.delay
}

// History returns the runs finished since the process started.
func (g *Game) History() []manager.RunRecord {
	return g.stateMgr.GetHistory()
}

func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Snake:       g.snake.Segments(),
		Food:        g.food,
		Score:       g.Score(),
		HighScore:   g.stateMgr.GetHighScore(),
		Started:     g.running,
		Direction:   g.direction,
		Delay:       g.delay,
		RunID:       g.runID,
		GamesPlayed: g.stateMgr.GamesPlayed(),
	}
}
