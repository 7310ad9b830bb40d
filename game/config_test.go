package game

import "testing"

func TestDefaultConfigIsValid(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Fatalf("DefaultConfig().Validate() = %v", err)
	}
}

func TestValidateRejects(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
	}{
		{"narrow grid", func(c *Config) { c.GridWidth = 3 }},
		{"flat grid", func(c *Config) { c.GridHeight = 0 }},
		{"zero cell", func(c *Config) { c.CellSize = 0 }},
		{"no screen", func(c *Config) { c.ScreenWidth = 0 }},
		{"no fps", func(c *Config) { c.TargetFPS = 0 }},
		{"zero turn", func(c *Config) { c.InitialTurnDuration = 0 }},
		{"floor above start", func(c *Config) { c.MinTurnDuration = 1 }},
		{"zero floor", func(c *Config) { c.MinTurnDuration = 0 }},
		{"no speed-up", func(c *Config) { c.SpeedupRatio = 1 }},
		{"negative ratio", func(c *Config) { c.SpeedupRatio = -0.5 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.modify(&cfg)
			if err := cfg.Validate(); err == nil {
				t.Errorf("Validate() accepted %+v", cfg)
			}
		})
	}
}
