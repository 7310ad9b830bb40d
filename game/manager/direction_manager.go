package manager

import (
	"grid-snake/game/types"
)

// DirectionManager buffers key presses between turns and owns the committed
// heading of the head.
type DirectionManager struct {
	heading types.Direction
	pending []types.Direction
}

func NewDirectionManager(start types.Direction) *DirectionManager {
	return &DirectionManager{
		heading: start,
		pending: make([]types.Direction, 0, types.MaxPendingTurns),
	}
}

// Push queues a pressed direction. It returns false when the queue is full
// and the press was dropped.
func (dm *DirectionManager) Push(dir types.Direction) bool {
	if dir == types.None || len(dm.pending) >= types.MaxPendingTurns {
		return false
	}
	dm.pending = append(dm.pending, dir)
	return true
}

// Next dequeues at most one pending direction and commits it unless it is the
// reverse of the current heading. It returns the heading after the call and
// whether a dequeued direction was rejected.
func (dm *DirectionManager) Next() (heading types.Direction, rejected bool) {
	if len(dm.pending) == 0 {
		return dm.heading, false
	}
	dir := dm.pending[0]
	dm.pending = dm.pending[1:]

	if dir == dm.heading.Opposite() {
		return dm.heading, true
	}
	dm.heading = dir
	return dm.heading, false
}

func (dm *DirectionManager) Heading() types.Direction {
	return dm.heading
}

func (dm *DirectionManager) Pending() int {
	return len(dm.pending)
}
