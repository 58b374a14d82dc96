package ui

import (
	"fmt"
	"sync"

	"classic-snake/game"
	"classic-snake/game/manager"
	"classic-snake/game/types"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	borderPadding = 20 // Padding around game area
	hudHeight     = 60 // Score bar above the board
)

const (
	logoText        = "SNAKE"
	instructionText = "Press spacebar to start the game"
)

var (
	backgroundColor = rl.NewColor(65, 65, 65, 255)
	boardColor      = rl.NewColor(205, 220, 180, 255)
	snakeColor      = rl.NewColor(65, 65, 65, 255)
	headColor       = rl.NewColor(30, 30, 30, 255)
	foodColor       = rl.NewColor(220, 60, 50, 255)
	textColor       = rl.NewColor(205, 220, 180, 255)
	highScoreColor  = rl.NewColor(215, 230, 100, 255)
)

// Renderer keeps the latest snapshot and draws it every frame. Render is
// called from the game loop goroutine, Draw from the window thread.
type Renderer struct {
	mu           sync.RWMutex
	snapshot     game.Snapshot
	instructions bool

	grid            types.Grid
	cellSize        int32
	screenWidth     int32
	screenHeight    int32
	totalGridWidth  int32
	totalGridHeight int32
	offsetX         int32
	offsetY         int32
}

func NewRenderer() *Renderer {
	r := &Renderer{
		instructions: true,
		grid:         types.DefaultGrid,
	}
	r.UpdateDimensions()
	return r
}

func (r *Renderer) Render(s game.Snapshot) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.snapshot = s
}

func (r *Renderer) ShowInstructions() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.instructions = true
}

func (r *Renderer) HideInstructions() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.instructions = false
}

func (r *Renderer) UpdateDimensions() {
	r.screenWidth = int32(rl.GetScreenWidth())
	r.screenHeight = int32(rl.GetScreenHeight())

	availableWidth := r.screenWidth - borderPadding*2
	availableHeight := r.screenHeight - borderPadding*2 - hudHeight

	cellW := availableWidth / int32(r.grid.Width)
	cellH := availableHeight / int32(r.grid.Height)
	r.cellSize = min(cellW, cellH)

	r.totalGridWidth = r.cellSize * int32(r.grid.Width)
	r.totalGridHeight = r.cellSize * int32(r.grid.Height)

	// Center the board below the HUD
	r.offsetX = (r.screenWidth - r.totalGridWidth) / 2
	r.offsetY = hudHeight + (r.screenHeight-hudHeight-r.totalGridHeight)/2
}

// Draw renders one frame. Must run on the window thread.
func (r *Renderer) Draw() {
	if rl.IsWindowResized() {
		r.UpdateDimensions()
	}

	// Copy values while holding lock to minimize lock time
	r.mu.RLock()
	snap := r.snapshot
	showInstructions := r.instructions
	r.mu.RUnlock()

	rl.BeginDrawing()
	defer rl.EndDrawing()
	rl.ClearBackground(backgroundColor)

	fontSize := r.screenHeight / 25

	r.drawHUD(snap, fontSize)

	// Board background with a thin frame
	rl.DrawRectangle(r.offsetX-4, r.offsetY-4, r.totalGridWidth+8, r.totalGridHeight+8, rl.DarkGray)
	rl.DrawRectangle(r.offsetX, r.offsetY, r.totalGridWidth, r.totalGridHeight, boardColor)

	for i, p := range snap.Snake {
		color := snakeColor
		if i == 0 {
			color = headColor
		}
		r.drawCell(p, color)
	}

	// Food is only shown once a run is under way
	if snap.Started {
		r.drawCell(snap.Food, foodColor)
	}

	if showInstructions {
		r.drawInstructions(fontSize)
	}
}

func (r *Renderer) drawCell(p types.Point, color rl.Color) {
	if !r.grid.Contains(p) {
		return
	}
	x := r.offsetX + int32(p.X-1)*r.cellSize
	y := r.offsetY + int32(p.Y-1)*r.cellSize
	rl.DrawRectangle(x+1, y+1, r.cellSize-2, r.cellSize-2, color)
}

func (r *Renderer) drawHUD(snap game.Snapshot, fontSize int32) {
	y := (hudHeight - fontSize) / 2

	score := manager.FormatScore(snap.Score)
	rl.DrawText(score, r.offsetX, y, fontSize, textColor)

	// The high score appears once the first run has ended
	if snap.GamesPlayed > 0 {
		high := manager.FormatScore(snap.HighScore)
		w := rl.MeasureText(high, fontSize)
		rl.DrawText(high, r.offsetX+r.totalGridWidth-w, y, fontSize, highScoreColor)

		games := fmt.Sprintf("games %d", snap.GamesPlayed)
		gw := rl.MeasureText(games, fontSize/2)
		rl.DrawText(games, (r.screenWidth-gw)/2, y+fontSize/4, fontSize/2, textColor)
	}
}

func (r *Renderer) drawInstructions(fontSize int32) {
	centerY := r.offsetY + r.totalGridHeight/2

	logoSize := fontSize * 3
	lw := rl.MeasureText(logoText, logoSize)
	rl.DrawText(logoText, (r.screenWidth-lw)/2, centerY-logoSize-fontSize, logoSize, snakeColor)

	iw := rl.MeasureText(instructionText, fontSize)
	rl.DrawText(instructionText, (r.screenWidth-iw)/2, centerY+fontSize, fontSize, snakeColor)
}
