package manager

import (
	"testing"

	"grid-snake/game/types"
)

func TestStateManagerTracksBest(t *testing.T) {
	sm := NewStateManager()

	if !sm.AddRound(RoundRecord{Score: 3, Cause: types.WallCollision}) {
		t.Error("first non-zero round should be a new best")
	}
	if sm.AddRound(RoundRecord{Score: 1, Cause: types.SelfCollision}) {
		t.Error("lower score reported as new best")
	}
	if !sm.AddRound(RoundRecord{Score: 5, Cause: types.WallCollision}) {
		t.Error("higher score not reported as new best")
	}

	if sm.GetHighScore() != 5 {
		t.Errorf("GetHighScore() = %d, want 5", sm.GetHighScore())
	}
	if sm.RoundsPlayed() != 3 {
		t.Errorf("RoundsPlayed() = %d, want 3", sm.RoundsPlayed())
	}

	h := sm.GetHistory()
	h[0].Score = 99
	if sm.GetHistory()[0].Score != 3 {
		t.Error("GetHistory must return a copy")
	}
}

func TestRecentRoundsNewestFirst(t *testing.T) {
	sm := NewStateManager()
	if got := sm.RecentRounds(3); len(got) != 0 {
		t.Fatalf("RecentRounds on empty board = %v", got)
	}
	for _, score := range []int{4, 0, 7, 2} {
		sm.AddRound(RoundRecord{Score: score, Cause: types.WallCollision})
	}

	got := sm.RecentRounds(3)
	want := []int{2, 7, 0}
	if len(got) != len(want) {
		t.Fatalf("RecentRounds(3) returned %d rounds, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i].Score != want[i] {
			t.Errorf("RecentRounds(3)[%d].Score = %d, want %d", i, got[i].Score, want[i])
		}
	}
	if n := len(sm.RecentRounds(10)); n != 4 {
		t.Errorf("RecentRounds(10) returned %d rounds, want 4", n)
	}
}
