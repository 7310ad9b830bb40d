package manager

import (
	"testing"

	"grid-snake/game/types"
)

func TestFoodStaysInsideGrid(t *testing.T) {
	grid := types.Grid{Width: 25, Height: 15}
	fm := NewFoodManager(grid, 42)

	for i := 0; i < 2000; i++ {
		p := fm.Respawn()
		if !grid.Contains(p) {
			t.Fatalf("food %v outside %dx%d grid", p, grid.Width, grid.Height)
		}
		if fm.GetFood() != p {
			t.Fatalf("GetFood() = %v, want %v", fm.GetFood(), p)
		}
	}
}

func TestFoodCoversEveryCell(t *testing.T) {
	grid := types.Grid{Width: 4, Height: 3}
	fm := NewFoodManager(grid, 7)

	seen := make(map[types.Point]bool)
	for i := 0; i < 5000; i++ {
		seen[fm.Next()] = true
	}
	if len(seen) != grid.Width*grid.Height {
		t.Errorf("sampled %d distinct cells, want %d", len(seen), grid.Width*grid.Height)
	}
}

func TestFoodSameSeedSameSequence(t *testing.T) {
	grid := types.Grid{Width: 25, Height: 15}
	a := NewFoodManager(grid, 12345)
	b := NewFoodManager(grid, 12345)

	if a.GetFood() != b.GetFood() {
		t.Fatalf("initial food differs: %v vs %v", a.GetFood(), b.GetFood())
	}
	for i := 0; i < 50; i++ {
		if pa, pb := a.Respawn(), b.Respawn(); pa != pb {
			t.Fatalf("respawn %d differs: %v vs %v", i, pa, pb)
		}
	}
}
