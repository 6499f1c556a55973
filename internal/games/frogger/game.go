// Package frogger implements a Frogger-style crossing game.
// The player guides a frog across a road of vehicles and a river of
// drifting platforms into one of the homes before the countdown runs out.
package frogger

import (
	"time"

	"github.com/vovakirdan/tui-frogger/internal/config"
	"github.com/vovakirdan/tui-frogger/internal/core"
)

// Game drives a Session once per frame for the terminal runner.
type Game struct {
	cfg     config.FroggerConfig
	sprites *SpriteSheet
	runtime core.RuntimeConfig
	session *Session

	paused     bool
	bannerLeft float64 // Seconds the win banner stays up
	last       TickReport
}

// New creates a game from a validated config and a loaded sprite sheet.
func New(cfg config.FroggerConfig, sprites *SpriteSheet) *Game {
	return &Game{cfg: cfg, sprites: sprites}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "frogger"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Frogger"
}

// Reset starts a new session.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.session = NewSession(g.cfg, NewRand(runtime.Seed))
	g.paused = false
	g.bannerLeft = 0
	g.last = TickReport{}
}

// Step advances the game by one tick of nominal length.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	return g.StepFrame(in, g.runtime.TickInterval())
}

// StepFrame advances the game by one tick that took elapsed wall time.
// Movers advance a fixed step per tick; only the countdown and the
// banners use elapsed.
func (g *Game) StepFrame(in core.InputFrame, elapsed time.Duration) core.StepResult {
	if g.session.Phase() == PhaseGameOver {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	dt := elapsed.Seconds()
	if g.bannerLeft > 0 {
		g.bannerLeft -= dt
	}

	report := g.session.Tick(in.Move(), dt)
	g.last = report

	if report.Events.Has(EventGoal) {
		g.bannerLeft = g.cfg.Gameplay.WinBannerSeconds
	}

	return core.StepResult{
		State:  g.State(),
		Events: g.events(report),
	}
}

// events converts a tick report into platform events.
func (g *Game) events(report TickReport) []core.Event {
	if report.Events == 0 {
		return nil
	}

	st := g.session.State()
	base := core.Event{
		Tick:      report.Tick,
		Score:     st.Score,
		Lives:     st.Lives,
		RoundTime: report.RoundTime,
	}

	var out []core.Event
	if report.Events.Has(EventGoal) {
		ev := base
		ev.Kind = core.EventGoal
		out = append(out, ev)
	}
	if report.Events.LifeLost() {
		ev := base
		ev.Kind = core.EventLifeLost
		ev.Cause = report.Events.Cause()
		out = append(out, ev)
	}
	if report.Events.Has(EventGameOver) {
		ev := base
		ev.Kind = core.EventGameOver
		ev.Cause = report.Events.Cause()
		out = append(out, ev)
	}
	return out
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.session == nil {
		return core.GameState{}
	}
	st := g.session.State()
	return core.GameState{
		Score:    st.Score,
		Lives:    st.Lives,
		GameOver: g.session.Phase() == PhaseGameOver,
		Paused:   g.paused,
	}
}

// LastReport returns the report of the most recent tick.
func (g *Game) LastReport() TickReport {
	return g.last
}

// TerminalDwell is how long the game-over frame should stay on screen.
func (g *Game) TerminalDwell() time.Duration {
	return time.Duration(g.cfg.Gameplay.TerminalDisplaySeconds * float64(time.Second))
}
