package manager

import (
	"sync"
	"time"
)

// EndReason describes why a run was reset.
type EndReason int

const (
	EndWall EndReason = iota
	EndSelf
	EndBoardFull
	EndReset
)

func (r EndReason) String() string {
	switch r {
	case EndWall:
		return "wall"
	case EndSelf:
		return "self"
	case EndBoardFull:
		return "board full"
	case EndReset:
		return "reset"
	default:
		return "unknown"
	}
}

// EndReasonFor maps a terminal collision to the reason recorded for the run.
func EndReasonFor(c CollisionType) EndReason {
	if c == SelfCollision {
		return EndSelf
	}
	return EndWall
}

// RunRecord is one finished run. Kept in memory only.
type RunRecord struct {
	RunID     string
	Score     int
	Reason    EndReason
	StartTime time.Time
	EndTime   time.Time
}

func (r RunRecord) Duration() time.Duration {
	return r.EndTime.Sub(r.StartTime)
}

// StateManager holds the high score and the history of finished runs for the
// lifetime of the process.
type StateManager struct {
	mu        sync.RWMutex
	highScore int
	history   []RunRecord
}

func NewStateManager() *StateManager {
	return &StateManager{
		history: make([]RunRecord, 0),
	}
}

// CommitScore replaces the high score if score beats it and reports whether
// it did.
func (sm *StateManager) CommitScore(score int) bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if score > sm.highScore {
		sm.highScore = score
		return true
	}
	return false
}

func (sm *StateManager) AddToHistory(record RunRecord) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	sm.history = append(sm.history, record)
}

func (sm *StateManager) GetHighScore() int {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	return sm.highScore
}

func (sm *StateManager) GamesPlayed() int {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	return len(sm.history)
}

// GetHistory returns a copy of the finished runs, oldest first.
func (sm *StateManager) GetHistory() []RunRecord {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	out := make([]RunRecord, len(sm.history))
	copy(out, sm.history)
	return out
}
