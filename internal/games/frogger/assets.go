package frogger

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-frogger/internal/core"
)

//go:embed assets/sprites.yaml
var defaultSpritesYAML []byte

// SpriteID names a drawable kind.
type SpriteID string

const (
	SpriteFrog             SpriteID = "frog"
	SpriteVehicleFastRight SpriteID = "vehicle_fast_right"
	SpriteVehicleSlowRight SpriteID = "vehicle_slow_right"
	SpriteVehicleSlowLeft  SpriteID = "vehicle_slow_left"
	SpriteVehicleFastLeft  SpriteID = "vehicle_fast_left"
	SpritePlatform         SpriteID = "platform"
	SpriteGoal             SpriteID = "goal"
	SpriteHome             SpriteID = "home"
	SpriteRiver            SpriteID = "river"
	SpriteRoad             SpriteID = "road"
	SpriteVerge            SpriteID = "verge"
)

// RequiredSprites lists every sprite the renderer draws.
var RequiredSprites = []SpriteID{
	SpriteFrog,
	SpriteVehicleFastRight,
	SpriteVehicleSlowRight,
	SpriteVehicleSlowLeft,
	SpriteVehicleFastLeft,
	SpritePlatform,
	SpriteGoal,
	SpriteHome,
	SpriteRiver,
	SpriteRoad,
	SpriteVerge,
}

// fastSpeed separates slow and fast vehicle art.
const fastSpeed = 2.0

// VehicleSprite picks the vehicle art for a speed.
func VehicleSprite(speed float64) SpriteID {
	switch {
	case speed >= fastSpeed:
		return SpriteVehicleFastRight
	case speed > 0:
		return SpriteVehicleSlowRight
	case speed > -fastSpeed && speed < 0:
		return SpriteVehicleSlowLeft
	default:
		return SpriteVehicleFastLeft
	}
}

// Sprite is a glyph pattern and its color.
type Sprite struct {
	Glyph []rune
	Color core.Color
}

// SpriteSheet maps sprite IDs to their art.
type SpriteSheet struct {
	sprites map[SpriteID]Sprite
}

type spriteFile struct {
	Sprites map[string]struct {
		Glyph string `yaml:"glyph"`
		Color string `yaml:"color"`
	} `yaml:"sprites"`
}

// LoadSprites reads the sprite sheet at path, or the embedded sheet when
// path is empty. A sheet missing any required sprite is rejected.
func LoadSprites(path string) (*SpriteSheet, error) {
	data := defaultSpritesYAML
	source := "embedded sprites"
	if path != "" {
		var err error
		data, err = os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("assets: cannot read sprites %s: %w", path, err)
		}
		source = path
	}
	return ParseSprites(data, source)
}

// ParseSprites decodes and validates a sprite sheet.
func ParseSprites(data []byte, source string) (*SpriteSheet, error) {
	var f spriteFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("assets: cannot parse %s: %w", source, err)
	}

	sheet := &SpriteSheet{sprites: make(map[SpriteID]Sprite, len(f.Sprites))}
	for name, raw := range f.Sprites {
		color, ok := core.ParseColor(raw.Color)
		if !ok {
			return nil, fmt.Errorf("assets: %s: sprite %q has unknown color %q", source, name, raw.Color)
		}
		sheet.sprites[SpriteID(name)] = Sprite{Glyph: []rune(raw.Glyph), Color: color}
	}

	for _, id := range RequiredSprites {
		sp, ok := sheet.sprites[id]
		if !ok {
			return nil, fmt.Errorf("assets: %s: missing sprite %q", source, id)
		}
		if len(sp.Glyph) == 0 {
			return nil, fmt.Errorf("assets: %s: sprite %q has an empty glyph", source, id)
		}
	}
	return sheet, nil
}

// Sprite returns the art for id. Sheets are validated on load, so every
// required ID is present.
func (s *SpriteSheet) Sprite(id SpriteID) Sprite {
	return s.sprites[id]
}
