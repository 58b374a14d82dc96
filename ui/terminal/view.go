// Package terminal is a tcell front-end for the snake engine. Each board
// cell is two columns wide so the board looks square in most fonts.
package terminal

import (
	"fmt"
	"sync"

	"classic-snake/game"
	"classic-snake/game/manager"
	"classic-snake/game/types"

	"github.com/gdamore/tcell/v2"
)

const (
	cellWidth = 2
	boardX    = 2 // column of the left frame
	boardY    = 2 // row of the top frame
)

const (
	logoText        = "S N A K E"
	instructionText = "Press space to start"
	helpText        = "arrows / wasd / hjkl to steer, q to quit"

	snakeGlyph = "██"
	foodGlyph  = "● "
)

var (
	frameStyle = tcell.StyleDefault.Foreground(tcell.ColorGray)
	snakeStyle = tcell.StyleDefault.Foreground(tcell.ColorGreen)
	headStyle  = tcell.StyleDefault.Foreground(tcell.ColorLime).Bold(true)
	foodStyle  = tcell.StyleDefault.Foreground(tcell.ColorRed)
	textStyle  = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	highStyle  = tcell.StyleDefault.Foreground(tcell.ColorYellow)
)

// View draws snapshots on a tcell screen. Render runs on the game loop
// goroutine and Redraw on the input goroutine, so state sits behind a mutex.
type View struct {
	mu           sync.Mutex
	screen       tcell.Screen
	grid         types.Grid
	snapshot     game.Snapshot
	instructions bool
}

func NewView(screen tcell.Screen) *View {
	return &View{
		screen:       screen,
		grid:         types.DefaultGrid,
		instructions: true,
	}
}

func (v *View) Render(s game.Snapshot) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.snapshot = s
	v.draw()
}

func (v *View) ShowInstructions() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.instructions = true
}

func (v *View) HideInstructions() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.instructions = false
}

// Redraw repaints the last snapshot, e.g. after a resize.
func (v *View) Redraw() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.draw()
}

// cellOrigin returns the screen column and row of a board cell.
func cellOrigin(p types.Point) (int, int) {
	return boardX + 1 + (p.X-1)*cellWidth, boardY + 1 + (p.Y - 1)
}

func (v *View) draw() {
	v.screen.Clear()

	snap := v.snapshot
	v.drawFrame()
	v.drawHUD(snap)

	for i, p := range snap.Snake {
		style := snakeStyle
		if i == 0 {
			style = headStyle
		}
		v.drawCell(p, snakeGlyph, style)
	}
	if snap.Started {
		v.drawCell(snap.Food, foodGlyph, foodStyle)
	}

	if v.instructions {
		v.drawInstructions()
	}

	v.screen.Show()
}

func (v *View) drawFrame() {
	right := boardX + v.grid.Width*cellWidth + 1
	bottom := boardY + v.grid.Height + 1

	for x := boardX + 1; x < right; x++ {
		v.screen.SetContent(x, boardY, '─', nil, frameStyle)
		v.screen.SetContent(x, bottom, '─', nil, frameStyle)
	}
	for y := boardY + 1; y < bottom; y++ {
		v.screen.SetContent(boardX, y, '│', nil, frameStyle)
		v.screen.SetContent(right, y, '│', nil, frameStyle)
	}
	v.screen.SetContent(boardX, boardY, '┌', nil, frameStyle)
	v.screen.SetContent(right, boardY, '┐', nil, frameStyle)
	v.screen.SetContent(boardX, bottom, '└', nil, frameStyle)
	v.screen.SetContent(right, bottom, '┘', nil, frameStyle)
}

func (v *View) drawCell(p types.Point, glyph string, style tcell.Style) {
	if !v.grid.Contains(p) {
		return
	}
	x, y := cellOrigin(p)
	v.drawText(x, y, glyph, style)
}

func (v *View) drawHUD(snap game.Snapshot) {
	v.drawText(boardX, 0, "SCORE "+manager.FormatScore(snap.Score), textStyle)

	if snap.GamesPlayed > 0 {
		high := "HIGH " + manager.FormatScore(snap.HighScore)
		right := boardX + v.grid.Width*cellWidth + 2
		v.drawText(right-len(high), 0, high, highStyle)
		v.drawText(boardX, boardY+v.grid.Height+2, fmt.Sprintf("games %d", snap.GamesPlayed), frameStyle)
	}
}

func (v *View) drawInstructions() {
	mid := boardY + v.grid.Height/2
	v.drawCentered(mid-2, logoText, headStyle)
	v.drawCentered(mid, instructionText, textStyle)
	v.drawCentered(mid+1, helpText, frameStyle)
}

func (v *View) drawCentered(y int, text string, style tcell.Style) {
	width := v.grid.Width*cellWidth + 2
	x := boardX + (width-len([]rune(text)))/2
	v.drawText(x, y, text, style)
}

func (v *View) drawText(x, y int, text string, style tcell.Style) {
	for i, r := range []rune(text) {
		v.screen.SetContent(x+i, y, r, nil, style)
	}
}
