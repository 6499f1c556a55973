package frogger

import (
	"fmt"
	"math"

	"github.com/vovakirdan/tui-frogger/internal/core"
)

// Minimum terminal size the playfield is drawn at.
const (
	minScreenW = 32
	minScreenH = 12
	hudRows    = 1
)

// Drawer receives one draw call per visible element, in painter's order.
// It returns nothing the simulation depends on.
type Drawer interface {
	Draw(id SpriteID, box core.RectF)
}

// drawWorld issues the draw calls for the backdrop and every entity.
func (g *Game) drawWorld(d Drawer) {
	cfg := g.cfg
	fieldW := cfg.World.Width
	fieldH := cfg.World.Height + cfg.World.BottomMargin

	riverTop := cfg.River.Top
	riverBottom := cfg.River.Bottom + cfg.Frog.LaneHeight

	d.Draw(SpriteHome, core.NewRectF(0, 0, fieldW, riverTop))
	d.Draw(SpriteRiver, core.NewRectF(0, riverTop, fieldW, riverBottom-riverTop))
	d.Draw(SpriteVerge, core.NewRectF(0, riverBottom, fieldW, fieldH-riverBottom))

	if roadTop, roadBottom, ok := roadBand(g.session.Vehicles()); ok {
		d.Draw(SpriteRoad, core.NewRectF(0, roadTop, fieldW, roadBottom-roadTop))
	}

	for _, z := range g.session.Goals() {
		d.Draw(SpriteGoal, z.RectF)
	}
	for _, p := range g.session.Platforms() {
		d.Draw(SpritePlatform, p.Rect())
	}
	for _, v := range g.session.Vehicles() {
		d.Draw(VehicleSprite(v.Speed), v.Rect())
	}
	d.Draw(SpriteFrog, g.session.Frog().Rect())
}

// roadBand spans every vehicle lane.
func roadBand(vehicles []Mover) (top, bottom float64, ok bool) {
	if len(vehicles) == 0 {
		return 0, 0, false
	}
	top, bottom = math.Inf(1), math.Inf(-1)
	for _, v := range vehicles {
		top = math.Min(top, v.Y)
		bottom = math.Max(bottom, v.Y+v.H)
	}
	return top, bottom, true
}

// screenDrawer projects world boxes onto a terminal screen below the HUD.
type screenDrawer struct {
	dst    *core.Screen
	sheet  *SpriteSheet
	scaleX float64
	scaleY float64
}

func newScreenDrawer(dst *core.Screen, sheet *SpriteSheet, fieldW, fieldH float64) *screenDrawer {
	rows := dst.Height() - hudRows
	return &screenDrawer{
		dst:    dst,
		sheet:  sheet,
		scaleX: float64(dst.Width()) / fieldW,
		scaleY: float64(rows) / fieldH,
	}
}

// cells converts a world box to a cell rectangle at least one cell in size.
func (d *screenDrawer) cells(box core.RectF) core.Rect {
	x0 := int(math.Floor(box.X * d.scaleX))
	x1 := int(math.Floor(box.Right() * d.scaleX))
	y0 := int(math.Floor(box.Y*d.scaleY)) + hudRows
	y1 := int(math.Floor(box.Bottom()*d.scaleY)) + hudRows
	return core.NewRect(x0, y0, core.Max(x1-x0, 1), core.Max(y1-y0, 1))
}

func (d *screenDrawer) Draw(id SpriteID, box core.RectF) {
	sp := d.sheet.Sprite(id)
	if len(sp.Glyph) == 0 {
		return
	}
	r := d.cells(box)
	for y := r.Y; y < r.Bottom(); y++ {
		if y < hudRows {
			continue
		}
		for x := r.X; x < r.Right(); x++ {
			d.dst.SetColored(x, y, sp.Glyph[(x-r.X)%len(sp.Glyph)], sp.Color)
		}
	}
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.session == nil {
		return
	}

	if dst.Width() < minScreenW || dst.Height() < minScreenH {
		dst.DrawTextCentered(dst.Height()/2, "Terminal too small", core.ColorBrightRed)
		dst.DrawTextCentered(dst.Height()/2+1, fmt.Sprintf("need %dx%d", minScreenW, minScreenH), core.ColorGray)
		return
	}

	fieldH := g.cfg.World.Height + g.cfg.World.BottomMargin
	g.drawWorld(newScreenDrawer(dst, g.sprites, g.cfg.World.Width, fieldH))
	g.drawHUD(dst)

	switch {
	case g.session.Phase() == PhaseGameOver:
		g.drawCenteredMessage(dst, "GAME OVER", fmt.Sprintf("Final score: %d", g.session.State().Score), core.ColorBrightRed)
	case g.paused:
		g.drawCenteredMessage(dst, "PAUSED", "Press P to resume", core.ColorBrightWhite)
	case g.bannerLeft > 0:
		g.drawCenteredMessage(dst, "YOU WIN!", fmt.Sprintf("Score: %d", g.session.State().Score), core.ColorBrightYellow)
	}
}

func (g *Game) drawHUD(dst *core.Screen) {
	st := g.session.State()
	dst.DrawHLine(0, 0, dst.Width(), ' ', core.ColorDefault)
	dst.DrawTextColored(1, 0, fmt.Sprintf("Score: %d", st.Score), core.ColorBrightWhite)
	dst.DrawTextColored(14, 0, fmt.Sprintf("Lives: %d", st.Lives), core.ColorBrightGreen)

	timeText := fmt.Sprintf("Time: %.1f", math.Max(st.TimeRemaining, 0))
	timeColor := core.ColorBrightWhite
	if st.TimeRemaining < 10 {
		timeColor = core.ColorBrightRed
	}
	dst.DrawTextColored(dst.Width()-len(timeText)-1, 0, timeText, timeColor)
}

// drawCenteredMessage draws a message box in the center of the screen.
func (g *Game) drawCenteredMessage(dst *core.Screen, title, subtitle string, c core.Color) {
	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (dst.Width() - boxW) / 2
	boxY := (dst.Height() - boxH) / 2
	box := core.NewRect(boxX, boxY, boxW, boxH)

	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, c)
	dst.DrawTextColored(boxX+(boxW-len(title))/2, boxY+1, title, c)
	dst.DrawTextColored(boxX+(boxW-len(subtitle))/2, boxY+3, subtitle, core.ColorWhite)
}
