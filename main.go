package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"classic-snake/audio"
	"classic-snake/game"
	"classic-snake/game/loop"
	"classic-snake/ui"
	"classic-snake/ui/terminal"

	"github.com/gdamore/tcell/v2"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// inputBuffer holds key presses that arrive between two loop iterations.
const inputBuffer = 16

type config struct {
	terminal bool
	mute     bool
	seed     uint64
	logPath  string
	width    int
	height   int
}

func main() {
	var cfg config
	flag.BoolVar(&cfg.terminal, "terminal", false, "Play in the terminal instead of a window")
	flag.BoolVar(&cfg.mute, "mute", false, "Disable sound")
	flag.Uint64Var(&cfg.seed, "seed", 0, "Food placement seed (0 = time based)")
	flag.StringVar(&cfg.logPath, "log", "", "Write logs to this file")
	flag.IntVar(&cfg.width, "width", 800, "Window width in pixels")
	flag.IntVar(&cfg.height, "height", 860, "Window height in pixels")
	flag.Parse()

	if cfg.seed == 0 {
		cfg.seed = uint64(time.Now().UnixNano())
	}

	logger, closeLog, err := openLogger(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open log: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	sound := audio.NewSoundManager(logger)
	if !cfg.mute {
		if err := sound.Initialize(); err != nil {
			// Non-fatal, game can run without sound
			logger.Printf("Audio initialization failed: %v", err)
		}
	}
	defer sound.Cleanup()

	if cfg.terminal {
		err = runTerminal(cfg, logger, sound)
	} else {
		err = runWindow(cfg, logger, sound)
	}
	if err != nil && !errors.Is(err, context.Canceled) {
		logger.Printf("game loop: %v", err)
		closeLog()
		os.Exit(1)
	}
}

// openLogger logs to stderr in window mode. In the terminal the screen owns
// stdout/stderr, so logs go to -log or nowhere.
func openLogger(cfg config) (*log.Logger, func(), error) {
	if cfg.logPath == "" {
		if cfg.terminal {
			return log.New(io.Discard, "", 0), func() {}, nil
		}
		return log.New(os.Stderr, "snake: ", log.LstdFlags), func() {}, nil
	}

	f, err := os.OpenFile(cfg.logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, nil, fmt.Errorf("open %s: %w", cfg.logPath, err)
	}
	return log.New(f, "snake: ", log.LstdFlags), func() { f.Close() }, nil
}

func runWindow(cfg config, logger *log.Logger, listener game.Listener) error {
	rl.SetConfigFlags(rl.FlagWindowResizable)
	rl.InitWindow(int32(cfg.width), int32(cfg.height), "Snake")
	defer rl.CloseWindow()

	rl.SetTargetFPS(60)

	renderer := ui.NewRenderer()
	l := loop.New()
	g := game.NewGame(game.Options{
		Seed:      cfg.seed,
		View:      renderer,
		Scheduler: l,
		Listener:  listener,
		Logger:    logger,
	})

	ctx, cancel := context.WithCancel(context.Background())
	inputs := make(chan game.Input, inputBuffer)
	done := make(chan error, 1)
	go func() { done <- l.Run(ctx, g, inputs) }()

	for !rl.WindowShouldClose() {
		for _, in := range ui.PollInput() {
			select {
			case inputs <- in:
			default:
			}
		}
		renderer.Draw()
	}

	cancel()
	return <-done
}

func runTerminal(cfg config, logger *log.Logger, listener game.Listener) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()
	screen.HideCursor()

	view := terminal.NewView(screen)
	l := loop.New()
	g := game.NewGame(game.Options{
		Seed:      cfg.seed,
		View:      view,
		Scheduler: l,
		Listener:  listener,
		Logger:    logger,
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	inputs := make(chan game.Input, inputBuffer)
	go terminal.Pump(screen, view, inputs, cancel)

	return l.Run(ctx, g, inputs)
}
