package frogger

import (
	"strings"

	"github.com/vovakirdan/tui-frogger/internal/config"
	"github.com/vovakirdan/tui-frogger/internal/core"
)

// Phase is the state of the session state machine.
type Phase int

const (
	PhasePlaying  Phase = iota
	PhaseRoundWon       // transient: a crossing completed this tick
	PhaseLifeLost       // transient: a life was lost this tick
	PhaseGameOver       // terminal
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhasePlaying:
		return "playing"
	case PhaseRoundWon:
		return "round_won"
	case PhaseLifeLost:
		return "life_lost"
	case PhaseGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Events is the set of transitions that fired during one tick.
type Events uint8

const (
	EventTimeout Events = 1 << iota
	EventGoal
	EventCollision
	EventDrowned
	EventGameOver
)

// Has reports whether every event in e2 is set.
func (e Events) Has(e2 Events) bool {
	return e&e2 == e2 && e2 != 0
}

// LifeLost reports whether any death event fired.
func (e Events) LifeLost() bool {
	return e&(EventTimeout|EventCollision|EventDrowned) != 0
}

// Cause names the death event, or "" if none fired.
func (e Events) Cause() string {
	switch {
	case e&EventTimeout != 0:
		return "timeout"
	case e&EventCollision != 0:
		return "collision"
	case e&EventDrowned != 0:
		return "drowned"
	}
	return ""
}

// String lists the set events, e.g. "collision|game_over".
func (e Events) String() string {
	names := []struct {
		ev   Events
		name string
	}{
		{EventTimeout, "timeout"},
		{EventGoal, "goal"},
		{EventCollision, "collision"},
		{EventDrowned, "drowned"},
		{EventGameOver, "game_over"},
	}
	var parts []string
	for _, n := range names {
		if e&n.ev != 0 {
			parts = append(parts, n.name)
		}
	}
	if len(parts) == 0 {
		return "none"
	}
	return strings.Join(parts, "|")
}

// TickReport describes what one tick did.
type TickReport struct {
	Tick      uint64
	Events    Events
	Phase     Phase   // Phase the tick ended in
	RoundTime float64 // Seconds the round had run when a reset event fired
}

// SessionState is the scoreboard of a session.
type SessionState struct {
	Score         int
	Lives         int
	TimeRemaining float64 // Seconds left on the round countdown
}

// Session owns every entity of one game and advances them one tick at a time.
type Session struct {
	cfg        config.FroggerConfig
	controller Controller
	start      Point

	frog      Frog
	vehicles  []Mover
	platforms []Mover
	goals     []GoalZone

	state SessionState
	phase Phase
	tick  uint64
}

// NewSession builds a session from cfg. rng places every mover's initial X.
func NewSession(cfg config.FroggerConfig, rng Rand) *Session {
	s := &Session{
		cfg: cfg,
		controller: Controller{
			LaneHeight: cfg.Frog.LaneHeight,
			StepX:      cfg.Frog.StepX,
			MaxX:       cfg.World.Width - cfg.Frog.Size,
			MaxY:       cfg.World.Height - cfg.Frog.Size + cfg.World.BottomMargin,
		},
		start: Point{X: cfg.Frog.StartX, Y: cfg.Frog.StartY},
		state: SessionState{
			Lives:         cfg.Gameplay.Lives,
			TimeRemaining: cfg.Gameplay.TimeLimit,
		},
	}
	s.frog = NewFrog(s.start, cfg.Frog.Size)
	s.vehicles = spawnMovers(cfg.Vehicles, cfg.World.Width, rng)
	s.platforms = spawnMovers(cfg.Platforms, cfg.World.Width, rng)

	s.goals = make([]GoalZone, 0, len(cfg.Goals.Zones))
	for _, z := range cfg.Goals.Zones {
		s.goals = append(s.goals, GoalZone{core.NewRectF(z.X, z.Y, z.Width, z.Height)})
	}
	return s
}

func spawnMovers(mc config.MoverConfig, fieldW float64, rng Rand) []Mover {
	movers := make([]Mover, 0, len(mc.Lanes))
	for _, lane := range mc.Lanes {
		movers = append(movers, Mover{
			X:     rng.Uniform(0, fieldW),
			Y:     lane.Y,
			W:     mc.Width,
			H:     mc.Height,
			Speed: lane.Speed,
		})
	}
	return movers
}

// Tick advances the session by one frame. move is the frame's directional
// edge (ActionNone for none) and dt the elapsed frame time in seconds.
//
// Order: controller, kinematics, then timer, goal, vehicle and river checks.
// The first check that resets the frog ends the checks for the tick; the
// game-over check always runs last. A finished session never changes again.
func (s *Session) Tick(move core.Action, dt float64) TickReport {
	if s.phase == PhaseGameOver {
		return TickReport{Tick: s.tick, Phase: PhaseGameOver}
	}

	s.tick++
	s.phase = PhasePlaying
	report := TickReport{Tick: s.tick}

	s.controller.Apply(&s.frog, move)
	for i := range s.vehicles {
		s.vehicles[i].Advance(s.cfg.World.Width)
	}
	for i := range s.platforms {
		s.platforms[i].Advance(s.cfg.World.Width)
	}

	report.RoundTime = s.roundTime(dt)
	report.Events = s.resolve(dt)

	switch {
	case report.Events.Has(EventGoal):
		s.phase = PhaseRoundWon
	case report.Events.LifeLost():
		s.phase = PhaseLifeLost
	}

	if s.state.Lives <= 0 {
		s.state.Lives = 0
		s.phase = PhaseGameOver
		report.Events |= EventGameOver
	}

	report.Phase = s.phase
	return report
}

// resolve runs the ordered checks and returns the event that fired.
func (s *Session) resolve(dt float64) Events {
	if dt < 0 {
		dt = 0
	}
	if s.state.TimeRemaining > 0 {
		s.state.TimeRemaining -= dt
	}
	if s.state.TimeRemaining <= 0 {
		s.loseLife()
		s.state.TimeRemaining = s.cfg.Gameplay.TimeLimit
		return EventTimeout
	}

	if s.crossed() {
		s.state.Score++
		s.frog = NewFrog(s.start, s.cfg.Frog.Size)
		s.state.TimeRemaining = s.cfg.Gameplay.TimeLimit
		return EventGoal
	}

	frogRect := s.frog.Rect()
	if hitsVehicle(frogRect, s.vehicles) {
		s.loseLife()
		return EventCollision
	}

	if s.inRiver() {
		p, ok := firstPlatform(frogRect, s.platforms)
		if !ok {
			s.loseLife()
			return EventDrowned
		}
		s.frog.Floating = true
		s.frog.Drift = p.Speed
		return 0
	}

	s.frog.Floating = false
	s.frog.Drift = 0
	return 0
}

// crossed reports whether the frog completed a crossing: it is inside a
// home, or above the goal line. Either way the crossing scores once.
func (s *Session) crossed() bool {
	pos := Point{X: s.frog.X, Y: s.frog.Y}
	for _, g := range s.goals {
		if g.Reached(pos) {
			return true
		}
	}
	return s.frog.Y <= s.cfg.Goals.LineY
}

func (s *Session) inRiver() bool {
	return s.frog.Y >= s.cfg.River.Top && s.frog.Y <= s.cfg.River.Bottom
}

func (s *Session) loseLife() {
	s.state.Lives--
	s.frog = NewFrog(s.start, s.cfg.Frog.Size)
}

// roundTime is how long the current round will have run after this tick.
func (s *Session) roundTime(dt float64) float64 {
	return s.cfg.Gameplay.TimeLimit - s.state.TimeRemaining + max(dt, 0)
}

// Frog returns a copy of the frog.
func (s *Session) Frog() Frog { return s.frog }

// Vehicles returns the vehicles in lane order.
func (s *Session) Vehicles() []Mover { return s.vehicles }

// Platforms returns the platforms in lane order.
func (s *Session) Platforms() []Mover { return s.platforms }

// Goals returns the home slots.
func (s *Session) Goals() []GoalZone { return s.goals }

// State returns the scoreboard.
func (s *Session) State() SessionState { return s.state }

// Phase returns the phase the last tick ended in.
func (s *Session) Phase() Phase { return s.phase }

// Ticks returns how many ticks have run.
func (s *Session) Ticks() uint64 { return s.tick }

// Start returns the frog's start position.
func (s *Session) Start() Point { return s.start }
