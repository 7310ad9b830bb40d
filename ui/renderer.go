package ui

import (
	"fmt"

	"grid-snake/game"
	"grid-snake/game/manager"
	"grid-snake/game/types"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	borderThickness = 3
	fontSize        = 24
	titleFontSize   = 48
	segmentInset    = 2 // gap between neighbouring segments
	foodRadius      = 10

	maxHistoryBars  = 40
	historyHeight   = 60
	historyPadding  = 12
	historyBarWidth = 8
	historyBarGap   = 4
)

var (
	cellColorA = rl.Color{R: 236, G: 240, B: 230, A: 255}
	cellColorB = rl.Color{R: 226, G: 232, B: 218, A: 255}
	headColor  = rl.DarkGreen
	bodyColor  = rl.Green
)

// Renderer draws the grid in camera space. The camera offset puts the
// centre of the grid in the middle of the window.
type Renderer struct {
	cellSize    float32
	sceneWidth  float32
	sceneHeight float32
	sceneLeft   float32
	sceneTop    float32
	camera      rl.Camera2D
}

func NewRenderer(cfg game.Config) *Renderer {
	r := &Renderer{cellSize: float32(cfg.CellSize)}
	r.sceneWidth = float32(cfg.GridWidth) * r.cellSize
	r.sceneHeight = float32(cfg.GridHeight) * r.cellSize
	r.sceneLeft = -r.sceneWidth / 2
	r.sceneTop = -r.sceneHeight / 2
	r.camera = rl.Camera2D{
		Offset:   rl.NewVector2(float32(cfg.ScreenWidth)/2, float32(cfg.ScreenHeight)/2),
		Target:   rl.NewVector2(0, 0),
		Rotation: 0,
		Zoom:     1,
	}
	return r
}

// cellRect returns the camera space rectangle of a display cell position.
func (r *Renderer) cellRect(v types.Vec2) rl.Rectangle {
	return rl.NewRectangle(
		r.sceneLeft+v.X*r.cellSize+segmentInset,
		r.sceneTop+v.Y*r.cellSize+segmentInset,
		r.cellSize-2*segmentInset,
		r.cellSize-2*segmentInset,
	)
}

func (r *Renderer) cellCenter(p types.Point) rl.Vector2 {
	return rl.NewVector2(
		r.sceneLeft+float32(p.X)*r.cellSize+r.cellSize/2,
		r.sceneTop+float32(p.Y)*r.cellSize+r.cellSize/2,
	)
}

func (r *Renderer) Draw(g *game.Game) {
	rl.BeginDrawing()
	rl.ClearBackground(rl.RayWhite)
	rl.BeginMode2D(r.camera)

	r.drawGrid(g.Grid)
	r.drawSnake(g.SegmentPositions())
	rl.DrawCircleV(r.cellCenter(g.GetFood()), foodRadius, rl.Red)

	if g.Screen == game.GameOver {
		r.drawGameOver(g)
	} else {
		score := fmt.Sprintf("Score: %d", g.Score)
		rl.DrawText(score, int32(r.sceneLeft), int32(r.sceneTop)-fontSize-8, fontSize, rl.DarkGray)
	}

	rl.EndMode2D()
	rl.EndDrawing()
}

func (r *Renderer) drawGrid(grid types.Grid) {
	for x := 0; x < grid.Width; x++ {
		for y := 0; y < grid.Height; y++ {
			color := cellColorA
			if (x+y)%2 == 1 {
				color = cellColorB
			}
			rl.DrawRectangle(
				int32(r.sceneLeft+float32(x)*r.cellSize),
				int32(r.sceneTop+float32(y)*r.cellSize),
				int32(r.cellSize), int32(r.cellSize), color)
		}
	}
	rl.DrawRectangleLinesEx(
		rl.NewRectangle(r.sceneLeft, r.sceneTop, r.sceneWidth, r.sceneHeight),
		borderThickness, rl.Black)
}

func (r *Renderer) drawSnake(body []types.Vec2) {
	for i, p := range body {
		color := bodyColor
		if i == len(body)-1 { // Head
			color = headColor
		}
		rl.DrawRectangleRounded(r.cellRect(p), 0.4, 6, color)
	}
}

func (r *Renderer) drawGameOver(g *game.Game) {
	rl.DrawRectangleRec(
		rl.NewRectangle(r.sceneLeft, r.sceneTop, r.sceneWidth, r.sceneHeight),
		rl.Fade(rl.Black, 0.55))

	type line struct {
		text string
		size int32
	}
	lines := []line{{"Game Over", titleFontSize}}
	for _, text := range g.GameOverLines() {
		lines = append(lines, line{text, fontSize})
	}
	lines = append(lines, line{"Press R or Enter to play again", fontSize})

	y := -int32(len(lines)) * fontSize
	for _, l := range lines {
		w := rl.MeasureText(l.text, l.size)
		rl.DrawText(l.text, -w/2, y, l.size, rl.RayWhite)
		y += l.size + 12
	}

	r.drawHistory(g.GetStateManager().GetHistory())
}

// drawHistory draws one bar per finished round along the bottom of the
// scene, scaled to the best score of the session.
func (r *Renderer) drawHistory(history []manager.RoundRecord) {
	if len(history) > maxHistoryBars {
		history = history[len(history)-maxHistoryBars:]
	}
	maxScore := 1
	for _, rec := range history {
		if rec.Score > maxScore {
			maxScore = rec.Score
		}
	}

	bottom := r.sceneTop + r.sceneHeight - historyPadding
	left := r.sceneLeft + historyPadding
	scaleY := historyHeight / float32(maxScore)
	for i, rec := range history {
		h := float32(rec.Score) * scaleY
		if h < 2 {
			h = 2
		}
		color := rl.Lime
		if rec.Cause == types.SelfCollision {
			color = rl.Orange
		}
		rl.DrawRectangleRec(
			rl.NewRectangle(left+float32(i)*(historyBarWidth+historyBarGap), bottom-h, historyBarWidth, h),
			color)
	}
}
