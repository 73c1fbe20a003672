package breakout

import (
	"fmt"
	"strconv"

	"github.com/vovakirdan/tui-breakout/internal/core"
)

// Overlay and button texts
const (
	TextPlay      = "Click anywhere to play"
	TextPaused    = "Game paused"
	TextResume    = "Click anywhere to resume"
	TextGameOver  = "Game over!"
	TextWin       = "You win!"
	TextPlayAgain = "Click anywhere to play again"
	TextExit      = "Exit Game"
)

// livesLabelInset is the distance of the lives label from the arena's right edge.
const livesLabelInset = 100

// View describes the surface a frame is drawn onto.
type View struct {
	Width  float64
	Height float64
	Skin   core.Skin
}

// Offset returns the x-coordinate of the arena's left edge on the surface.
func (v View) Offset(arenaWidth float64) float64 {
	return (v.Width - arenaWidth) / 2
}

// overlayLines returns the centered texts shown for a state, top line first.
func overlayLines(s State) []string {
	switch s {
	case StateNewGame:
		return []string{TextPlay}
	case StatePaused:
		return []string{TextPaused, TextResume}
	case StateGameOver:
		return []string{TextGameOver, TextPlayAgain}
	case StateWin:
		return []string{TextWin, TextPlayAgain}
	default:
		return nil
	}
}

// Draw renders the current frame. It never mutates the game.
func (g *Game) Draw(dst core.Surface, view View) {
	l := g.layout
	offset := view.Offset(l.Width)
	border := g.hud.BorderThickness

	dst.Clear(core.ColorBlack)
	dst.StrokeRect(
		core.NewRect(offset-border/2, 0, l.Width+border, view.Height),
		border, core.ColorWhite,
	)

	// Paddle
	paddle := g.paddleCollider().Translate(offset, 0)
	dst.FillRect(paddle, core.ColorSkyBlue)

	// Ball
	dst.FillRect(g.ball.Rect(l.BallSize).Translate(offset, 0), core.ColorWhite)

	// Bricks
	for _, b := range g.bricks {
		dst.FillRect(b.Rect(l).Translate(offset, 0), b.Color())
	}

	// HUD
	dst.Label(core.V2(offset+border, g.hud.LabelY), fmt.Sprintf("%03d", g.score), view.Skin.Label)
	dst.Label(core.V2(offset+l.Width-livesLabelInset, g.hud.LabelY), strconv.Itoa(g.lives), view.Skin.Label)

	lines := overlayLines(g.state)
	if len(lines) == 0 {
		return
	}
	top := view.Height/2 - g.hud.OverlaySpacing
	for i, text := range lines {
		y := top + g.hud.OverlaySpacing*float64(i)
		dst.Label(core.V2(view.Width/2-view.Skin.TextCenter(text).X, y), text, view.Skin.Label)
	}

	exit := g.ExitButtonRect(view)
	dst.Button(core.V2(exit.X, exit.Y), TextExit, view.Skin.Button)
}

// ExitButtonRect returns the bounds of the exit button on the surface.
// The button is only drawn, and only clickable, outside active play.
func (g *Game) ExitButtonRect(view View) core.Rect {
	size := view.Skin.TextSize(TextExit)
	x := view.Width/2 - size.X/2
	y := view.Height - g.hud.ExitButtonMargin
	return core.RectFrom(core.V2(x, y), size)
}

// ExitHit reports whether a click at pos lands on the exit button.
func (g *Game) ExitHit(view View, pos core.Vec2) bool {
	if g.state.Playing() {
		return false
	}
	return g.ExitButtonRect(view).Contains(pos.X, pos.Y)
}
