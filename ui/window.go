package ui

import (
	"grid-snake/game"
	"grid-snake/game/types"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// directionKeys is polled in order each frame. WASD first, arrows second.
var directionKeys = []struct {
	key int32
	dir types.Direction
}{
	{rl.KeyA, types.Left},
	{rl.KeyD, types.Right},
	{rl.KeyW, types.Up},
	{rl.KeyS, types.Down},
	{rl.KeyLeft, types.Left},
	{rl.KeyRight, types.Right},
	{rl.KeyUp, types.Up},
	{rl.KeyDown, types.Down},
}

var restartKeys = []int32{rl.KeyR, rl.KeyEnter, rl.KeySpace}

// Window is the raylib host: it owns the window, the frame clock and input.
type Window struct {
	*Renderer
}

// OpenWindow opens the game window. raylib aborts the process if it cannot.
func OpenWindow(cfg game.Config) *Window {
	rl.SetTraceLogLevel(rl.LogWarning)
	rl.InitWindow(cfg.ScreenWidth, cfg.ScreenHeight, "snake")
	rl.SetTargetFPS(cfg.TargetFPS)
	return &Window{Renderer: NewRenderer(cfg)}
}

func (w *Window) ShouldClose() bool {
	return rl.WindowShouldClose()
}

func (w *Window) FrameTime() float32 {
	return rl.GetFrameTime()
}

// PollInput collects the key edges of the current frame.
func (w *Window) PollInput() game.Input {
	var in game.Input
	for _, k := range directionKeys {
		if rl.IsKeyPressed(k.key) {
			in.Directions = append(in.Directions, k.dir)
		}
	}
	for _, k := range restartKeys {
		if rl.IsKeyPressed(k) {
			in.Restart = true
		}
	}
	return in
}

func (w *Window) Close() {
	rl.CloseWindow()
}
