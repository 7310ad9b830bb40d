package game

import (
	"grid-snake/game/types"

	"github.com/pkg/errors"
)

// Config holds the tunables of a session.
type Config struct {
	GridWidth    int
	GridHeight   int
	CellSize     int32
	ScreenWidth  int32
	ScreenHeight int32
	TargetFPS    int32

	InitialTurnDuration float32 // seconds per turn at round start
	SpeedupRatio        float32 // turn duration multiplier per food eaten
	MinTurnDuration     float32 // floor for the turn duration

	Seed uint64 // food placement seed, 0 picks one from the clock
}

func DefaultConfig() Config {
	return Config{
		GridWidth:           25,
		GridHeight:          15,
		CellSize:            32,
		ScreenWidth:         1200,
		ScreenHeight:        650,
		TargetFPS:           166,
		InitialTurnDuration: 0.3,
		SpeedupRatio:        types.SpeedupRatio,
		MinTurnDuration:     0.05,
	}
}

// Grid returns the playfield dimensions.
func (c Config) Grid() types.Grid {
	return types.Grid{Width: c.GridWidth, Height: c.GridHeight}
}

// Validate checks that a round can be played with c.
func (c Config) Validate() error {
	if c.GridWidth < types.InitialSegments+1 || c.GridHeight < 1 {
		return errors.Errorf("grid %dx%d cannot hold the start snake", c.GridWidth, c.GridHeight)
	}
	if c.CellSize <= 0 {
		return errors.Errorf("cell size must be positive, got %d", c.CellSize)
	}
	if c.ScreenWidth <= 0 || c.ScreenHeight <= 0 {
		return errors.Errorf("screen %dx%d is empty", c.ScreenWidth, c.ScreenHeight)
	}
	if c.TargetFPS <= 0 {
		return errors.Errorf("target fps must be positive, got %d", c.TargetFPS)
	}
	if c.InitialTurnDuration <= 0 {
		return errors.Errorf("turn duration must be positive, got %v", c.InitialTurnDuration)
	}
	if c.MinTurnDuration <= 0 || c.MinTurnDuration > c.InitialTurnDuration {
		return errors.Errorf("min turn duration %v outside (0, %v]", c.MinTurnDuration, c.InitialTurnDuration)
	}
	if c.SpeedupRatio <= 0 || c.SpeedupRatio >= 1 {
		return errors.Errorf("speed-up ratio %v outside (0, 1)", c.SpeedupRatio)
	}
	return nil
}
