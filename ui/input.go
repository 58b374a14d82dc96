package ui

import (
	"classic-snake/game"
	"classic-snake/game/types"

	rl "github.com/gen2brain/raylib-go/raylib"
)

var directionKeys = []struct {
	key int32
	dir types.Direction
}{
	{rl.KeyUp, types.Up},
	{rl.KeyDown, types.Down},
	{rl.KeyLeft, types.Left},
	{rl.KeyRight, types.Right},
	{rl.KeyW, types.Up},
	{rl.KeyS, types.Down},
	{rl.KeyA, types.Left},
	{rl.KeyD, types.Right},
}

// PollInput returns the events for keys pressed since the last frame.
func PollInput() []game.Input {
	var inputs []game.Input

	if rl.IsKeyPressed(rl.KeySpace) {
		inputs = append(inputs, game.StartInput())
	}
	for _, k := range directionKeys {
		if rl.IsKeyPressed(k.key) {
			inputs = append(inputs, game.DirectionInput(k.dir))
		}
	}
	return inputs
}
