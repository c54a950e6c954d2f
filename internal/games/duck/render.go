package duck

import (
	"fmt"
	"math"
	"strings"

	"github.com/vovakirdan/duck-arcade/internal/core"
)

// Visual characters for rendering
const (
	GroundChar      = '▒'
	LedgeChar       = '█'
	DuckChar        = '█'
	HostileChar     = '▓'
	CollectibleChar = '●'
	HeartChar       = '♥'
)

// hudRows is the number of screen rows reserved above the arena.
const hudRows = 1

// Render draws the current snapshot into dst. The arena is scaled to fill
// the screen below the HUD line.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	snap := g.world.Snapshot()
	v := newViewport(dst.Width(), dst.Height()-hudRows)

	// The layout is fixed; the first platform is the ground.
	for i, p := range Platforms() {
		if i == 0 {
			dst.DrawRect(v.rect(p), GroundChar, core.ColorGreen)
		} else {
			dst.DrawRect(v.rect(p), LedgeChar, core.ColorOrange)
		}
	}

	for _, c := range snap.Collectibles {
		if c.Collected {
			continue
		}
		r := v.rect(core.NewBox(c.X, c.Y, CollectibleSize, CollectibleSize))
		dst.DrawRect(r, CollectibleChar, core.ColorBrightYellow)
	}

	for _, h := range snap.Hostiles {
		if !h.Alive {
			continue
		}
		r := v.rect(core.NewBox(h.X, h.Y, HostileSize, HostileSize))
		dst.DrawRect(r, HostileChar, core.ColorRed)
	}

	g.drawDuck(dst, v, snap)
	g.drawHUD(dst, snap)

	switch snap.Phase {
	case core.PhaseNotStarted:
		drawCenteredMessage(dst, "DUCK MARIO", "Enter to start  |  arrows/WASD move  |  space jumps")
	case core.PhaseOver:
		drawCenteredMessage(dst, "GAME OVER", fmt.Sprintf("Score: %d  |  Press R to restart", snap.Score))
	}
}

// drawDuck renders the actor with an eye on the side it faces.
func (g *Game) drawDuck(dst *core.Screen, v viewport, snap Snapshot) {
	r := v.rect(core.NewBox(snap.Actor.X, snap.Actor.Y, ActorSize, ActorSize))
	dst.DrawRect(r, DuckChar, core.ColorYellow)

	eye, eyeX := '>', r.Right()-1
	if snap.Facing == core.FacingLeft {
		eye, eyeX = '<', r.X
	}
	dst.SetColored(eyeX, r.Y, eye, core.ColorBrightWhite)
}

// drawHUD renders score, lives and level on the top row.
func (g *Game) drawHUD(dst *core.Screen, snap Snapshot) {
	score := fmt.Sprintf(" Score: %d ", snap.Score)
	dst.DrawTextColored(1, 0, score, core.ColorBrightWhite)

	x := 1 + len(score) + 1
	dst.DrawText(x, 0, "Lives: ")
	dst.DrawTextColored(x+7, 0, strings.Repeat(string(HeartChar), snap.Lives), core.ColorBrightRed)

	level := fmt.Sprintf(" Level: %d ", snap.Level)
	dst.DrawTextColored(dst.Width()-len(level)-1, 0, level, core.ColorGray)
}

// drawCenteredMessage draws a message box in the center of the screen.
func drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	titleW, subW := len([]rune(title)), len([]rune(subtitle))
	boxW := core.Max(titleW, subW) + 4
	boxH := 5
	boxX := (dst.Width() - boxW) / 2
	boxY := (dst.Height() - boxH) / 2

	box := core.NewRect(boxX, boxY, boxW, boxH)
	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box)

	dst.DrawTextColored(boxX+(boxW-titleW)/2, boxY+1, title, core.ColorBrightWhite)
	dst.DrawText(boxX+(boxW-subW)/2, boxY+3, subtitle)
}

// viewport maps arena units onto screen cells below the HUD.
type viewport struct {
	sx, sy float64
}

func newViewport(cols, rows int) viewport {
	return viewport{
		sx: float64(max(cols, 1)) / ArenaWidth,
		sy: float64(max(rows, 1)) / ArenaHeight,
	}
}

// rect converts an arena box to the cells it covers. Every visible box
// covers at least one cell.
func (v viewport) rect(b core.Box) core.Rect {
	x0 := int(math.Floor(b.X * v.sx))
	y0 := int(math.Floor(b.Y * v.sy))
	x1 := int(math.Ceil(b.Right() * v.sx))
	y1 := int(math.Ceil(b.Bottom() * v.sy))
	return core.NewRect(x0, y0+hudRows, max(x1-x0, 1), max(y1-y0, 1))
}
