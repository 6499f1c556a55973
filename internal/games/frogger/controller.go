package frogger

import "github.com/vovakirdan/tui-frogger/internal/core"

// Controller applies player input and platform drift to the frog.
type Controller struct {
	LaneHeight float64 // Vertical step per Up/Down
	StepX      float64 // Horizontal step per Left/Right
	MaxX       float64 // Largest legal X
	MaxY       float64 // Largest legal Y (includes the bottom margin)
}

// Apply moves the frog by at most one discrete step, adds the platform drift
// when floating, and clamps the result to the playable area.
func (c Controller) Apply(f *Frog, move core.Action) {
	switch move {
	case core.ActionUp:
		f.Y -= c.LaneHeight
	case core.ActionDown:
		f.Y += c.LaneHeight
	case core.ActionLeft:
		f.X -= c.StepX
	case core.ActionRight:
		f.X += c.StepX
	}

	if f.Floating {
		f.X += f.Drift
	}

	f.X = core.ClampF(f.X, 0, c.MaxX)
	f.Y = core.ClampF(f.Y, 0, c.MaxY)
}
