package entity

import (
	"classic-snake/game/types"

	"golang.org/x/exp/slices"
)

// Snake is the player's body, head first.
type Snake struct {
	Body []types.Point
}

func NewSnake(startPos types.Point) *Snake {
	return &Snake{
		Body: []types.Point{startPos},
	}
}

// Advance prepends newHead. The tail is kept only when the snake grew.
func (s *Snake) Advance(newHead types.Point, grew bool) {
	s.Body = slices.Insert(s.Body, 0, newHead)
	if !grew && len(s.Body) > 1 {
		s.Body = s.Body[:len(s.Body)-1]
	}
}

// Occupies reports whether any segment sits on pos. With skipHead the
// search starts at the first body segment.
func (s *Snake) Occupies(pos types.Point, skipHead bool) bool {
	body := s.Body
	if skipHead {
		if len(body) < 2 {
			return false
		}
		body = body[1:]
	}
	return slices.Contains(body, pos)
}

func (s *Snake) GetHead() types.Point {
	return s.Body[0]
}

func (s *Snake) Len() int {
	return len(s.Body)
}

// Segments returns a copy of the body safe to hand to renderers.
func (s *Snake) Segments() []types.Point {
	return slices.Clone(s.Body)
}
