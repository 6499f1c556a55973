package frogger

import (
	"math/rand"

	"github.com/vovakirdan/tui-frogger/internal/core"
)

// Point is a world-space position.
type Point struct {
	X, Y float64
}

// Frog is the player entity.
type Frog struct {
	X, Y     float64 // Top-left corner in world pixels
	Size     float64
	Floating bool    // Resting on a platform this tick
	Drift    float64 // Pixels per tick imparted by the carrying platform
}

// NewFrog returns a fresh frog at the start position.
// Every death, timeout and crossing replaces the frog with a new value.
func NewFrog(start Point, size float64) Frog {
	return Frog{X: start.X, Y: start.Y, Size: size}
}

// Rect returns the frog's bounding box.
func (f Frog) Rect() core.RectF {
	return core.NewRectF(f.X, f.Y, f.Size, f.Size)
}

// Mover is a horizontally moving entity: a vehicle on the road or a
// platform on the river. The lane Y never changes after construction.
type Mover struct {
	X, Y  float64
	W, H  float64
	Speed float64 // Pixels per tick; the sign is the direction
}

// Advance moves the mover one tick and wraps it around the field.
// Leaving on the right re-enters fully hidden on the left, and vice versa,
// so after every call -W <= X <= fieldW holds.
func (m *Mover) Advance(fieldW float64) {
	m.X += m.Speed
	if m.X > fieldW {
		m.X = -m.W
	}
	if m.X+m.W < 0 {
		m.X = fieldW
	}
}

// Rect returns the mover's bounding box.
func (m Mover) Rect() core.RectF {
	return core.NewRectF(m.X, m.Y, m.W, m.H)
}

// GoalZone is a home slot along the top edge.
type GoalZone struct {
	core.RectF
}

// Reached reports whether a frog at p has arrived in this home.
func (z GoalZone) Reached(p Point) bool {
	return z.ContainsPoint(p.X, p.Y)
}

// Rand is the random source used when placing movers.
type Rand interface {
	// Uniform returns a value in [min, max).
	Uniform(min, max float64) float64
}

type seededRand struct {
	rng *rand.Rand
}

// NewRand returns a deterministic Rand for the given seed.
func NewRand(seed int64) Rand {
	return seededRand{rng: rand.New(rand.NewSource(seed))}
}

func (r seededRand) Uniform(min, max float64) float64 {
	return min + r.rng.Float64()*(max-min)
}
