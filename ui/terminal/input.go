package terminal

import (
	"unicode"

	"classic-snake/game"
	"classic-snake/game/types"

	"github.com/gdamore/tcell/v2"
)

var directionRunes = map[rune]types.Direction{
	'w': types.Up, 'k': types.Up,
	's': types.Down, 'j': types.Down,
	'a': types.Left, 'h': types.Left,
	'd': types.Right, 'l': types.Right,
}

// KeyToInput maps a key event to an engine input. Keys without a meaning
// return false.
func KeyToInput(ev *tcell.EventKey) (game.Input, bool) {
	switch ev.Key() {
	case tcell.KeyUp:
		return game.DirectionInput(types.Up), true
	case tcell.KeyDown:
		return game.DirectionInput(types.Down), true
	case tcell.KeyLeft:
		return game.DirectionInput(types.Left), true
	case tcell.KeyRight:
		return game.DirectionInput(types.Right), true
	case tcell.KeyRune:
		r := unicode.ToLower(ev.Rune())
		if r == ' ' {
			return game.StartInput(), true
		}
		if d, ok := directionRunes[r]; ok {
			return game.DirectionInput(d), true
		}
	}
	return game.Input{}, false
}

// IsQuit reports whether the key ends the program.
func IsQuit(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
		return ev.Rune() == 'q' || ev.Rune() == 'Q'
	}
	return false
}

// Pump reads screen events until the screen is finalized or a quit key is
// pressed. Inputs are dropped rather than blocking when the loop is behind.
func Pump(screen tcell.Screen, view *View, inputs chan<- game.Input, quit func()) {
	for {
		ev := screen.PollEvent()
		if ev == nil {
			return
		}

		switch ev := ev.(type) {
		case *tcell.EventKey:
			if IsQuit(ev) {
				quit()
				return
			}
			if in, ok := KeyToInput(ev); ok {
				select {
				case inputs <- in:
				default:
				}
			}
		case *tcell.EventResize:
			screen.Sync()
			view.Redraw()
		}
	}
}
