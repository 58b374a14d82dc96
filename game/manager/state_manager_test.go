package manager

import (
	"testing"
	"time"
)

func TestCommitScoreNeverDecreases(t *testing.T) {
	sm := NewStateManager()
	scores := []int{3, 1, 5, 5, 0, 2, 9, 4}

	prev := 0
	for _, s := range scores {
		sm.CommitScore(s)
		hs := sm.GetHighScore()
		if hs < prev {
			t.Fatalf("high score dropped from %d to %d", prev, hs)
		}
		prev = hs
	}
	if prev != 9 {
		t.Errorf("high score = %d, want 9", prev)
	}
}

func TestCommitScoreReportsNewRecord(t *testing.T) {
	sm := NewStateManager()
	if !sm.CommitScore(2) {
		t.Error("first positive score should be a record")
	}
	if sm.CommitScore(2) {
		t.Error("equal score should not be a record")
	}
	if sm.CommitScore(0) {
		t.Error("lower score should not be a record")
	}
}

func TestHistory(t *testing.T) {
	sm := NewStateManager()
	start := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

	sm.AddToHistory(RunRecord{RunID: "a", Score: 1, Reason: EndWall, StartTime: start, EndTime: start.Add(3 * time.Second)})
	sm.AddToHistory(RunRecord{RunID: "b", Score: 4, Reason: EndSelf, StartTime: start, EndTime: start.Add(time.Second)})

	if sm.GamesPlayed() != 2 {
		t.Fatalf("GamesPlayed() = %d, want 2", sm.GamesPlayed())
	}

	h := sm.GetHistory()
	if h[0].RunID != "a" || h[1].RunID != "b" {
		t.Errorf("history order = %v", h)
	}
	if h[0].Duration() != 3*time.Second {
		t.Errorf("Duration() = %v, want 3s", h[0].Duration())
	}

	h[0].Score = 100
	if sm.GetHistory()[0].Score != 1 {
		t.Error("GetHistory should return a copy")
	}
}

func TestEndReasonFor(t *testing.T) {
	if EndReasonFor(WallCollision) != EndWall {
		t.Error("wall collision should map to EndWall")
	}
	if EndReasonFor(SelfCollision) != EndSelf {
		t.Error("self collision should map to EndSelf")
	}
}
