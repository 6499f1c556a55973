package frogger

// MoverSnapshot is the position and speed of one mover.
type MoverSnapshot struct {
	X, Y  float64
	Speed float64
}

// Snapshot captures the complete game state for determinism testing and
// for anything presenting the game outside the terminal.
type Snapshot struct {
	Tick          uint64
	Phase         Phase
	Score         int
	Lives         int
	TimeRemaining float64
	FrogX         float64
	FrogY         float64
	Floating      bool
	Drift         float64
	Vehicles      []MoverSnapshot
	Platforms     []MoverSnapshot
	Paused        bool
	Banner        string // "YOU WIN!", "GAME OVER", or ""
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	s := g.session
	st := s.State()
	frog := s.Frog()

	banner := ""
	switch {
	case s.Phase() == PhaseGameOver:
		banner = "GAME OVER"
	case g.bannerLeft > 0:
		banner = "YOU WIN!"
	}

	return Snapshot{
		Tick:          s.Ticks(),
		Phase:         s.Phase(),
		Score:         st.Score,
		Lives:         st.Lives,
		TimeRemaining: st.TimeRemaining,
		FrogX:         frog.X,
		FrogY:         frog.Y,
		Floating:      frog.Floating,
		Drift:         frog.Drift,
		Vehicles:      moverSnapshots(s.Vehicles()),
		Platforms:     moverSnapshots(s.Platforms()),
		Paused:        g.paused,
		Banner:        banner,
	}
}

func moverSnapshots(movers []Mover) []MoverSnapshot {
	out := make([]MoverSnapshot, len(movers))
	for i, m := range movers {
		out[i] = MoverSnapshot{X: m.X, Y: m.Y, Speed: m.Speed}
	}
	return out
}
