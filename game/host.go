package game

import (
	"grid-snake/game/types"
)

// Input is what the host saw during one frame. Directions holds the keys
// pressed this frame, in the order the host polled them.
type Input struct {
	Directions []types.Direction
	Restart    bool
}

// Host is the windowing side of the game: frame clock, key edges and drawing.
type Host interface {
	ShouldClose() bool
	FrameTime() float32
	PollInput() Input
	Draw(g *Game)
}

// Run drives g once per host frame until the host asks to close.
func Run(host Host, g *Game) {
	for !host.ShouldClose() {
		in := host.PollInput()
		g.Update(host.FrameTime(), in)
		host.Draw(g)
	}
}
