package manager

import (
	"testing"

	"classic-snake/game/entity"
	"classic-snake/game/types"
)

func TestCheckCollision(t *testing.T) {
	cm := NewCollisionManager(types.DefaultGrid)

	tests := []struct {
		name string
		body []types.Point
		want CollisionType
	}{
		{"single segment inside", []types.Point{{X: 10, Y: 10}}, NoCollision},
		{"right wall", []types.Point{{X: 21, Y: 10}}, WallCollision},
		{"left wall", []types.Point{{X: 0, Y: 10}}, WallCollision},
		{"top wall", []types.Point{{X: 5, Y: 0}}, WallCollision},
		{"bottom wall", []types.Point{{X: 5, Y: 21}}, WallCollision},
		{"corner is inside", []types.Point{{X: 20, Y: 20}}, NoCollision},
		{"head on body", []types.Point{{X: 9, Y: 10}, {X: 10, Y: 10}, {X: 9, Y: 10}}, SelfCollision},
		{"head next to body", []types.Point{{X: 9, Y: 10}, {X: 10, Y: 10}, {X: 11, Y: 10}}, NoCollision},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := &entity.Snake{Body: tt.body}
			if got := cm.CheckCollision(s); got != tt.want {
				t.Errorf("CheckCollision(%v) = %v, want %v", tt.body, got, tt.want)
			}
		})
	}
}

func TestIsFoodCollision(t *testing.T) {
	cm := NewCollisionManager(types.DefaultGrid)
	food := types.Point{X: 3, Y: 4}

	if !cm.IsFoodCollision(types.Point{X: 3, Y: 4}, food) {
		t.Error("expected food collision on same cell")
	}
	if cm.IsFoodCollision(types.Point{X: 4, Y: 3}, food) {
		t.Error("unexpected food collision on different cell")
	}
}
