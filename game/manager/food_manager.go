package manager

import (
	"errors"

	"classic-snake/game/entity"
	"classic-snake/game/types"

	"golang.org/x/exp/rand"
)

// ErrBoardFull is returned when every cell is covered by the snake.
var ErrBoardFull = errors.New("no free cell for food")

// foodAttemptsPerCell bounds rejection sampling before falling back to a scan.
const foodAttemptsPerCell = 4

type FoodManager struct {
	grid        types.Grid
	rng         *rand.Rand
	maxAttempts int
}

func NewFoodManager(grid types.Grid, seed uint64) *FoodManager {
	return &FoodManager{
		grid:        grid,
		rng:         rand.New(rand.NewSource(seed)),
		maxAttempts: foodAttemptsPerCell * grid.Cells(),
	}
}

// PlaceFood draws a uniformly random free cell. Draws are retried while they
// land on the snake; after maxAttempts the free cells are scanned instead.
func (fm *FoodManager) PlaceFood(snake *entity.Snake) (types.Point, error) {
	for i := 0; i < fm.maxAttempts; i++ {
		food := types.Point{
			X: fm.rng.Intn(fm.grid.Width) + 1,
			Y: fm.rng.Intn(fm.grid.Height) + 1,
		}

		if !snake.Occupies(food, false) {
			return food, nil
		}
	}

	free := fm.freeCells(snake)
	if len(free) == 0 {
		return types.Point{}, ErrBoardFull
	}
	return free[fm.rng.Intn(len(free))], nil
}

func (fm *FoodManager) freeCells(snake *entity.Snake) []types.Point {
	free := make([]types.Point, 0, max(fm.grid.Cells()-snake.Len(), 0))
	for y := 1; y <= fm.grid.Height; y++ {
		for x := 1; x <= fm.grid.Width; x++ {
			p := types.Point{X: x, Y: y}
			if !snake.Occupies(p, false) {
				free = append(free, p)
			}
		}
	}
	return free
}
