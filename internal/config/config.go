// Package config provides YAML-based game configuration loading and
// validation for Frogger.
package config

import (
	"errors"
	"fmt"
)

// ErrInvalid is returned (wrapped) when a configuration fails validation.
var ErrInvalid = errors.New("invalid config")

// FroggerConfig contains all tunables for a Frogger session.
// Coordinates are world pixels; the renderer scales them to the terminal.
type FroggerConfig struct {
	World     WorldConfig    `yaml:"world" json:"world"`
	Frog      FrogConfig     `yaml:"frog" json:"frog"`
	Vehicles  MoverConfig    `yaml:"vehicles" json:"vehicles"`
	Platforms MoverConfig    `yaml:"platforms" json:"platforms"`
	River     RiverConfig    `yaml:"river" json:"river"`
	Goals     GoalsConfig    `yaml:"goals" json:"goals"`
	Gameplay  GameplayConfig `yaml:"gameplay" json:"gameplay"`
}

// WorldConfig defines the playfield.
type WorldConfig struct {
	Width  float64 `yaml:"width" json:"width" jsonschema_extras:"exclusiveMinimum=0"`
	Height float64 `yaml:"height" json:"height" jsonschema_extras:"exclusiveMinimum=0"`
	// BottomMargin extends the playable area below the visible hazard band.
	BottomMargin float64 `yaml:"bottom_margin" json:"bottom_margin" jsonschema_extras:"minimum=0"`
}

// FrogConfig defines the player's size, start and step sizes.
type FrogConfig struct {
	Size       float64 `yaml:"size" json:"size" jsonschema_extras:"exclusiveMinimum=0"`
	StartX     float64 `yaml:"start_x" json:"start_x" jsonschema_extras:"minimum=0"`
	StartY     float64 `yaml:"start_y" json:"start_y" jsonschema_extras:"minimum=0"`
	LaneHeight float64 `yaml:"lane_height" json:"lane_height" jsonschema_extras:"exclusiveMinimum=0"`
	StepX      float64 `yaml:"step_x" json:"step_x" jsonschema_extras:"exclusiveMinimum=0"`
}

// MoverConfig defines one class of horizontally moving entity.
type MoverConfig struct {
	Width  float64      `yaml:"width" json:"width" jsonschema_extras:"exclusiveMinimum=0"`
	Height float64      `yaml:"height" json:"height" jsonschema_extras:"exclusiveMinimum=0"`
	Lanes  []LaneConfig `yaml:"lanes" json:"lanes"`
}

// LaneConfig places one mover. Speed is pixels per tick; the sign is direction.
type LaneConfig struct {
	Y     float64 `yaml:"y" json:"y"`
	Speed float64 `yaml:"speed" json:"speed"`
}

// RiverConfig is the band of frog Y positions where a platform is required.
type RiverConfig struct {
	Top    float64 `yaml:"top" json:"top"`
	Bottom float64 `yaml:"bottom" json:"bottom"`
}

// GoalsConfig defines the homes and the line above which a crossing counts.
type GoalsConfig struct {
	LineY float64      `yaml:"line_y" json:"line_y"`
	Zones []ZoneConfig `yaml:"zones" json:"zones"`
}

// ZoneConfig is one home slot.
type ZoneConfig struct {
	X      float64 `yaml:"x" json:"x"`
	Y      float64 `yaml:"y" json:"y"`
	Width  float64 `yaml:"width" json:"width" jsonschema_extras:"exclusiveMinimum=0"`
	Height float64 `yaml:"height" json:"height" jsonschema_extras:"exclusiveMinimum=0"`
}

// GameplayConfig defines lives, the countdown and message timings.
type GameplayConfig struct {
	Lives                  int     `yaml:"lives" json:"lives" jsonschema_extras:"minimum=1"`
	TimeLimit              float64 `yaml:"time_limit" json:"time_limit" jsonschema_extras:"exclusiveMinimum=0"`
	WinBannerSeconds       float64 `yaml:"win_banner_seconds" json:"win_banner_seconds" jsonschema_extras:"minimum=0"`
	TerminalDisplaySeconds float64 `yaml:"terminal_display_seconds" json:"terminal_display_seconds" jsonschema_extras:"minimum=0"`
}

// Validate checks the config for values the simulation cannot run with.
func (c FroggerConfig) Validate() error {
	switch {
	case c.World.Width <= 0 || c.World.Height <= 0:
		return fmt.Errorf("%w: world size must be positive", ErrInvalid)
	case c.World.BottomMargin < 0:
		return fmt.Errorf("%w: world.bottom_margin must not be negative", ErrInvalid)
	case c.Frog.Size <= 0 || c.Frog.Size > c.World.Width:
		return fmt.Errorf("%w: frog.size must be in (0, world.width]", ErrInvalid)
	case c.Frog.LaneHeight <= 0 || c.Frog.StepX <= 0:
		return fmt.Errorf("%w: frog step sizes must be positive", ErrInvalid)
	case c.Frog.StartX < 0 || c.Frog.StartX > c.World.Width-c.Frog.Size ||
		c.Frog.StartY < 0 || c.Frog.StartY > c.World.Height-c.Frog.Size+c.World.BottomMargin:
		return fmt.Errorf("%w: frog start (%.1f, %.1f) is outside the playable area", ErrInvalid, c.Frog.StartX, c.Frog.StartY)
	case c.Vehicles.Width <= 0 || c.Vehicles.Height <= 0:
		return fmt.Errorf("%w: vehicle size must be positive", ErrInvalid)
	case c.Platforms.Width <= 0 || c.Platforms.Height <= 0:
		return fmt.Errorf("%w: platform size must be positive", ErrInvalid)
	case c.River.Top > c.River.Bottom:
		return fmt.Errorf("%w: river.top %.1f is below river.bottom %.1f", ErrInvalid, c.River.Top, c.River.Bottom)
	case c.Goals.LineY >= c.Frog.StartY:
		return fmt.Errorf("%w: goals.line_y %.1f must be above frog.start_y %.1f", ErrInvalid, c.Goals.LineY, c.Frog.StartY)
	case c.River.Bottom >= c.Frog.StartY:
		return fmt.Errorf("%w: river band %.1f-%.1f must lie above frog.start_y %.1f", ErrInvalid, c.River.Top, c.River.Bottom, c.Frog.StartY)
	case c.Gameplay.Lives < 1:
		return fmt.Errorf("%w: gameplay.lives must be at least 1", ErrInvalid)
	case c.Gameplay.TimeLimit <= 0:
		return fmt.Errorf("%w: gameplay.time_limit must be positive", ErrInvalid)
	case c.Gameplay.WinBannerSeconds < 0 || c.Gameplay.TerminalDisplaySeconds < 0:
		return fmt.Errorf("%w: banner durations must not be negative", ErrInvalid)
	}

	for i, z := range c.Goals.Zones {
		if z.Width <= 0 || z.Height <= 0 {
			return fmt.Errorf("%w: goals.zones[%d] size must be positive", ErrInvalid, i)
		}
		for j := 0; j < i; j++ {
			if zonesOverlap(c.Goals.Zones[j], z) {
				return fmt.Errorf("%w: goals.zones[%d] overlaps goals.zones[%d]", ErrInvalid, i, j)
			}
		}
	}
	return nil
}

func zonesOverlap(a, b ZoneConfig) bool {
	return a.X < b.X+b.Width && a.X+a.Width > b.X &&
		a.Y < b.Y+b.Height && a.Y+a.Height > b.Y
}
