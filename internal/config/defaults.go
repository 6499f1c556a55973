package config

import (
	_ "embed"
)

//go:embed defaults/frogger.yaml
var defaultFroggerYAML []byte

// DefaultFroggerConfig returns the built-in Frogger configuration.
// It mirrors defaults/frogger.yaml and is the last fallback of LoadFrogger.
func DefaultFroggerConfig() FroggerConfig {
	return FroggerConfig{
		World: WorldConfig{
			Width:        800,
			Height:       600,
			BottomMargin: 150,
		},
		Frog: FrogConfig{
			Size:       30,
			StartX:     355, // just left of center
			StartY:     650, // below the hazard band
			LaneHeight: 50,
			StepX:      50,
		},
		Vehicles: MoverConfig{
			Width:  40,
			Height: 40,
			Lanes: []LaneConfig{
				{Y: 400, Speed: 2.0},
				{Y: 450, Speed: -2.5},
				{Y: 500, Speed: 4.0},
				{Y: 350, Speed: -2.1},
				{Y: 600, Speed: 1.8},
				{Y: 550, Speed: -1.9},
			},
		},
		Platforms: MoverConfig{
			Width:  80,
			Height: 30,
			Lanes: []LaneConfig{
				{Y: 150, Speed: 2.0},
				{Y: 205, Speed: -1.5},
				{Y: 258, Speed: 1.6},
			},
		},
		River: RiverConfig{
			Top:    150,
			Bottom: 250,
		},
		Goals: GoalsConfig{
			LineY: 100,
			Zones: []ZoneConfig{
				{X: 10, Y: 50, Width: 70, Height: 10},
				{X: 180, Y: 50, Width: 70, Height: 10},
				{X: 350, Y: 50, Width: 70, Height: 10},
				{X: 520, Y: 50, Width: 70, Height: 10},
			},
		},
		Gameplay: GameplayConfig{
			Lives:                  3,
			TimeLimit:              45,
			WinBannerSeconds:       2,
			TerminalDisplaySeconds: 2,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultFroggerYAML
}
