package frogger

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-frogger/internal/config"
	"github.com/vovakirdan/tui-frogger/internal/core"
)

type drawCall struct {
	id  SpriteID
	box core.RectF
}

type recordingDrawer struct {
	calls []drawCall
}

func (r *recordingDrawer) Draw(id SpriteID, box core.RectF) {
	r.calls = append(r.calls, drawCall{id, box})
}

func TestDrawWorldOrder(t *testing.T) {
	cfg := config.DefaultFroggerConfig()
	g := newTestGame(t, cfg, 3)

	rec := &recordingDrawer{}
	g.drawWorld(rec)

	expected := 4 + len(cfg.Goals.Zones) + len(cfg.Platforms.Lanes) + len(cfg.Vehicles.Lanes) + 1
	if len(rec.calls) != expected {
		t.Fatalf("got %d draw calls, expected %d", len(rec.calls), expected)
	}

	last := rec.calls[len(rec.calls)-1]
	if last.id != SpriteFrog || last.box != g.session.Frog().Rect() {
		t.Errorf("last draw = %+v, expected the frog on top", last)
	}

	vehicles := rec.calls[len(rec.calls)-1-len(cfg.Vehicles.Lanes) : len(rec.calls)-1]
	for i, call := range vehicles {
		v := g.session.Vehicles()[i]
		if call.id != VehicleSprite(v.Speed) {
			t.Errorf("vehicle %d (speed %v) drawn as %q", i, v.Speed, call.id)
		}
		if call.box != v.Rect() {
			t.Errorf("vehicle %d box = %+v, expected %+v", i, call.box, v.Rect())
		}
	}
}

func TestRenderHUD(t *testing.T) {
	g := newTestGame(t, config.DefaultFroggerConfig(), 1)
	screen := core.NewScreen(80, 24)

	g.Render(screen)

	hud := screenRow(screen, 0)
	for _, want := range []string{"Score: 0", "Lives: 3", "Time: 45.0"} {
		if !strings.Contains(hud, want) {
			t.Errorf("HUD %q missing %q", hud, want)
		}
	}
	if !strings.ContainsRune(screenText(screen), '@') {
		t.Error("frog glyph not drawn")
	}
}

func TestRenderLowTimeIsRed(t *testing.T) {
	g := newTestGame(t, config.DefaultFroggerConfig(), 1)
	g.session.state.TimeRemaining = 5
	screen := core.NewScreen(80, 24)

	g.Render(screen)

	x := strings.Index(screenRow(screen, 0), "Time:")
	if x < 0 {
		t.Fatal("time not drawn")
	}
	if c := screen.GetCell(x, 0).Color; c != core.ColorBrightRed {
		t.Errorf("time color = %v, expected bright red", c)
	}
}

func TestRenderTooSmall(t *testing.T) {
	g := newTestGame(t, config.DefaultFroggerConfig(), 1)
	screen := core.NewScreen(20, 8)

	g.Render(screen)

	if !strings.Contains(screenText(screen), "too small") {
		t.Errorf("expected too-small notice, got:\n%s", screenText(screen))
	}
}

func TestRenderBanners(t *testing.T) {
	cfg := config.DefaultFroggerConfig()

	t.Run("paused", func(t *testing.T) {
		g := newTestGame(t, cfg, 1)
		g.Step(frame(core.ActionPause))
		screen := core.NewScreen(80, 24)
		g.Render(screen)
		if !strings.Contains(screenText(screen), "PAUSED") {
			t.Error("expected PAUSED banner")
		}
	})

	t.Run("win", func(t *testing.T) {
		g := newTestGame(t, cfg, 1)
		g.session.frog.X, g.session.frog.Y = 700, 90
		g.Step(frame())
		screen := core.NewScreen(80, 24)
		g.Render(screen)
		if !strings.Contains(screenText(screen), "YOU WIN!") {
			t.Error("expected YOU WIN! banner")
		}
	})

	t.Run("game over", func(t *testing.T) {
		cfg := cfg
		cfg.Gameplay.Lives = 1
		g := newTestGame(t, cfg, 1)
		g.session.state.TimeRemaining = 0.001
		g.Step(frame())
		screen := core.NewScreen(80, 24)
		g.Render(screen)
		out := screenText(screen)
		if !strings.Contains(out, "GAME OVER") || !strings.Contains(out, "Final score: 0") {
			t.Errorf("expected GAME OVER banner, got:\n%s", out)
		}
	})
}

func screenRow(s *core.Screen, y int) string {
	var sb strings.Builder
	for x := 0; x < s.Width(); x++ {
		sb.WriteRune(s.GetCell(x, y).Rune)
	}
	return sb.String()
}

func screenText(s *core.Screen) string {
	rows := make([]string, s.Height())
	for y := range rows {
		rows[y] = screenRow(s, y)
	}
	return strings.Join(rows, "\n")
}
