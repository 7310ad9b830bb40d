package manager

import (
	"grid-snake/game/types"

	"golang.org/x/exp/rand"
)

// FoodManager owns the random source used to place food. Cells are sampled
// uniformly over the whole grid, including cells covered by the snake.
type FoodManager struct {
	grid types.Grid
	rng  *rand.Rand
	food types.Point
}

func NewFoodManager(grid types.Grid, seed uint64) *FoodManager {
	fm := &FoodManager{
		grid: grid,
		rng:  rand.New(rand.NewSource(seed)),
	}
	fm.food = fm.Next()
	return fm
}

// Next samples a new cell without placing it.
func (fm *FoodManager) Next() types.Point {
	return types.Point{
		X: fm.rng.Intn(fm.grid.Width),
		Y: fm.rng.Intn(fm.grid.Height),
	}
}

// Respawn moves the food to a freshly sampled cell and returns it.
func (fm *FoodManager) Respawn() types.Point {
	fm.food = fm.Next()
	return fm.food
}

func (fm *FoodManager) GetFood() types.Point {
	return fm.food
}

// Place puts the food on p.
func (fm *FoodManager) Place(p types.Point) {
	fm.food = p
}
