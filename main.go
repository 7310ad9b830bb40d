package main

import (
	"flag"
	"os"

	"grid-snake/game"
	"grid-snake/ui"
	"grid-snake/ui/term"

	"github.com/golang/glog"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// host is a game.Host that has to be released when the loop ends.
type host interface {
	game.Host
	Close()
}

func main() {
	def := game.DefaultConfig()
	width := flag.Int("width", def.GridWidth, "Grid width in cells")
	height := flag.Int("height", def.GridHeight, "Grid height in cells")
	cell := flag.Int("cell", int(def.CellSize), "Cell size in pixels")
	turn := flag.Float64("turn", float64(def.InitialTurnDuration), "Seconds per turn at round start")
	speedup := flag.Float64("speedup", float64(def.SpeedupRatio), "Turn duration multiplier per food eaten")
	minTurn := flag.Float64("min-turn", float64(def.MinTurnDuration), "Shortest allowed turn in seconds")
	fps := flag.Int("fps", int(def.TargetFPS), "Target frames per second")
	seed := flag.Uint64("seed", 0, "Food placement seed (0 = random)")
	frontend := flag.String("frontend", "raylib", "Frontend: raylib or terminal")
	flag.Parse()
	defer glog.Flush()

	cfg := def
	cfg.GridWidth = *width
	cfg.GridHeight = *height
	cfg.CellSize = int32(*cell)
	cfg.InitialTurnDuration = float32(*turn)
	cfg.SpeedupRatio = float32(*speedup)
	cfg.MinTurnDuration = float32(*minTurn)
	cfg.TargetFPS = int32(*fps)
	cfg.Seed = *seed

	if err := cfg.Validate(); err != nil {
		glog.Errorf("invalid configuration: %v", err)
		glog.Flush()
		os.Exit(1)
	}

	h, err := openHost(*frontend, cfg)
	if err != nil {
		glog.Errorf("%v", err)
		glog.Flush()
		os.Exit(1)
	}
	defer h.Close()

	session := uuid.NewString()
	glog.Infof("session %s: %s frontend, %dx%d grid", session, *frontend, cfg.GridWidth, cfg.GridHeight)

	g := game.NewGame(cfg)
	game.Run(h, g)

	sm := g.GetStateManager()
	glog.Infof("session %s ended after %d rounds, best score %d", session, sm.RoundsPlayed(), sm.GetHighScore())
}

func openHost(name string, cfg game.Config) (host, error) {
	switch name {
	case "raylib":
		return ui.OpenWindow(cfg), nil
	case "terminal":
		t, err := term.New(cfg)
		if err != nil {
			return nil, errors.Wrap(err, "terminal frontend")
		}
		return t, nil
	default:
		return nil, errors.Errorf("unknown frontend %q", name)
	}
}
