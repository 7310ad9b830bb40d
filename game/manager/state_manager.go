package manager

import (
	"time"

	"grid-snake/game/types"
)

// RoundRecord describes one finished round.
type RoundRecord struct {
	ID        string
	Score     int
	Cause     types.CollisionType
	StartTime time.Time
	EndTime   time.Time
}

// StateManager keeps the session score board. Nothing is written to disk.
type StateManager struct {
	highScore int
	history   []RoundRecord
}

func NewStateManager() *StateManager {
	return &StateManager{
		history: make([]RoundRecord, 0),
	}
}

// AddRound records a finished round and reports whether it set a new best.
func (sm *StateManager) AddRound(r RoundRecord) bool {
	sm.history = append(sm.history, r)
	if r.Score > sm.highScore {
		sm.highScore = r.Score
		return true
	}
	return false
}

func (sm *StateManager) GetHighScore() int {
	return sm.highScore
}

// GetHistory returns a copy of the finished rounds, oldest first.
func (sm *StateManager) GetHistory() []RoundRecord {
	out := make([]RoundRecord, len(sm.history))
	copy(out, sm.history)
	return out
}

func (sm *StateManager) RoundsPlayed() int {
	return len(sm.history)
}

// RecentRounds returns up to n finished rounds, newest first.
func (sm *StateManager) RecentRounds(n int) []RoundRecord {
	if n > len(sm.history) {
		n = len(sm.history)
	}
	out := make([]RoundRecord, 0, n)
	for i := len(sm.history) - 1; i >= len(sm.history)-n; i-- {
		out = append(out, sm.history[i])
	}
	return out
}
