// Package term runs the game in a terminal. Every grid cell is two
// character columns wide so cells look roughly square.
package term

import (
	"fmt"
	"math"
	"time"

	"grid-snake/game"
	"grid-snake/game/types"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"
)

const maxTerminalFPS = 60

var (
	gridStyle   = tcell.StyleDefault.Background(tcell.ColorBlack)
	borderStyle = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	bodyStyle   = tcell.StyleDefault.Background(tcell.ColorGreen)
	headStyle   = tcell.StyleDefault.Background(tcell.ColorDarkGreen)
	foodStyle   = tcell.StyleDefault.Foreground(tcell.ColorRed).Background(tcell.ColorBlack)
	textStyle   = tcell.StyleDefault.Foreground(tcell.ColorWhite)
)

// keyAction is what a single key press means to the game.
type keyAction struct {
	dir     types.Direction
	restart bool
	quit    bool
}

// mapKey translates a key press. WASD and arrows steer, R/Enter/Space restart,
// Esc, Ctrl-C and q quit.
func mapKey(key tcell.Key, r rune) keyAction {
	switch key {
	case tcell.KeyLeft:
		return keyAction{dir: types.Left}
	case tcell.KeyRight:
		return keyAction{dir: types.Right}
	case tcell.KeyUp:
		return keyAction{dir: types.Up}
	case tcell.KeyDown:
		return keyAction{dir: types.Down}
	case tcell.KeyEnter:
		return keyAction{restart: true}
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return keyAction{quit: true}
	case tcell.KeyRune:
		switch r {
		case 'a', 'A':
			return keyAction{dir: types.Left}
		case 'd', 'D':
			return keyAction{dir: types.Right}
		case 'w', 'W':
			return keyAction{dir: types.Up}
		case 's', 'S':
			return keyAction{dir: types.Down}
		case 'r', 'R', ' ':
			return keyAction{restart: true}
		case 'q', 'Q':
			return keyAction{quit: true}
		}
	}
	return keyAction{}
}

// Terminal is the tcell host. Key events are read by a goroutine and handed
// to the game loop through a channel; the game itself is only touched by the
// goroutine calling game.Run.
type Terminal struct {
	screen tcell.Screen
	events chan tcell.Event
	done   chan struct{}

	frame  time.Duration
	last   time.Time
	dt     float32
	closed bool
}

// New initialises the terminal screen.
func New(cfg game.Config) (*Terminal, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, errors.Wrap(err, "creating terminal screen")
	}
	return newTerminal(s, cfg)
}

// newTerminal takes over an uninitialised screen.
func newTerminal(s tcell.Screen, cfg game.Config) (*Terminal, error) {
	if err := s.Init(); err != nil {
		return nil, errors.Wrap(err, "initialising terminal screen")
	}
	s.HideCursor()

	fps := cfg.TargetFPS
	if fps > maxTerminalFPS {
		fps = maxTerminalFPS
	}
	t := &Terminal{
		screen: s,
		events: make(chan tcell.Event, 32),
		done:   make(chan struct{}),
		frame:  time.Second / time.Duration(fps),
		last:   time.Now(),
	}
	go t.pollEvents()
	return t, nil
}

func (t *Terminal) pollEvents() {
	for {
		ev := t.screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case t.events <- ev:
		case <-t.done:
			return
		}
	}
}

func (t *Terminal) ShouldClose() bool {
	return t.closed
}

func (t *Terminal) FrameTime() float32 {
	return t.dt
}

// PollInput waits out the rest of the frame, then drains the key events
// that arrived since the previous frame.
func (t *Terminal) PollInput() game.Input {
	if wait := t.frame - time.Since(t.last); wait > 0 {
		time.Sleep(wait)
	}
	now := time.Now()
	t.dt = float32(now.Sub(t.last).Seconds())
	t.last = now

	var in game.Input
	for {
		select {
		case ev := <-t.events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				a := mapKey(ev.Key(), ev.Rune())
				if a.dir != types.None {
					in.Directions = append(in.Directions, a.dir)
				}
				in.Restart = in.Restart || a.restart
				t.closed = t.closed || a.quit
			case *tcell.EventResize:
				t.screen.Sync()
			}
		default:
			return in
		}
	}
}

// Draw renders the game centred in the terminal.
func (t *Terminal) Draw(g *game.Game) {
	s := t.screen
	s.Clear()

	w, h := s.Size()
	left := (w - 2*g.Grid.Width) / 2
	top := (h - g.Grid.Height) / 2

	for y := -1; y <= g.Grid.Height; y++ {
		for x := -1; x <= g.Grid.Width; x++ {
			ch, st := ' ', gridStyle
			if x < 0 || y < 0 || x == g.Grid.Width || y == g.Grid.Height {
				ch, st = '░', borderStyle
			}
			t.putCell(left, top, x, y, ch, st)
		}
	}

	food := g.GetFood()
	t.putCell(left, top, food.X, food.Y, '●', foodStyle)

	// Character cells cannot show sub-cell motion; round to the nearest cell.
	body := g.SegmentPositions()
	for i, p := range body {
		st := bodyStyle
		if i == len(body)-1 {
			st = headStyle
		}
		x, y := int(math.Round(float64(p.X))), int(math.Round(float64(p.Y)))
		t.putCell(left, top, x, y, ' ', st)
	}

	if g.Screen == game.GameOver {
		t.drawGameOver(g, left, top)
	} else {
		drawText(s, left, top+g.Grid.Height+2, fmt.Sprintf("Score: %d", g.Score), textStyle)
	}
	s.Show()
}

// drawGameOver centres the round summary over the frozen grid.
func (t *Terminal) drawGameOver(g *game.Game, left, top int) {
	lines := append([]string{"GAME OVER"}, g.GameOverLines()...)
	lines = append(lines, "[r] play again  [q] quit")

	centre := left + g.Grid.Width
	y := top + (g.Grid.Height-len(lines))/2
	for i, l := range lines {
		drawText(t.screen, centre-len([]rune(l))/2, y+i, l, textStyle)
	}
}

// putCell fills both columns of grid cell (x, y).
func (t *Terminal) putCell(left, top, x, y int, ch rune, st tcell.Style) {
	t.screen.SetContent(left+2*x, top+y, ch, nil, st)
	t.screen.SetContent(left+2*x+1, top+y, ' ', nil, st)
}

func drawText(s tcell.Screen, x, y int, text string, st tcell.Style) {
	for i, ch := range []rune(text) {
		s.SetContent(x+i, y, ch, nil, st)
	}
}

func (t *Terminal) Close() {
	close(t.done)
	t.screen.Fini()
}
