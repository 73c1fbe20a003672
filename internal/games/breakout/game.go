package breakout

import (
	"fmt"

	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/core"
)

// State is the session phase.
type State string

const (
	StateNewGame  State = "new"      // Attract mode, waiting for the first click
	StatePlaying  State = "playing"  // Ball in play
	StatePaused   State = "paused"   // Simulation frozen
	StateGameOver State = "gameover" // No lives left
	StateWin      State = "win"      // Wall cleared
)

// Playing reports whether the session is in active play.
func (s State) Playing() bool {
	return s == StatePlaying
}

// Finished reports whether a click should start a fresh session.
func (s State) Finished() bool {
	return s == StateGameOver || s == StateWin
}

// Input is the per-frame input to Update.
type Input struct {
	PointerX float64 // Pointer x in arena units
	Elapsed  float64 // Wall-clock seconds since the previous frame
}

// Game implements the Breakout session: one wall of bricks, a paddle and a ball.
type Game struct {
	layout  Layout
	hud     config.HUDConfig
	screenH float64

	// Game objects
	paddle Paddle
	ball   Ball
	bricks []Brick

	// Game state
	state    State
	score    int
	lives    int
	restarts int
	frame    uint64

	// Collision and input tracking
	hitPaddle    bool
	lastPointerX float64
	pointerKnown bool
}

// New creates a session in StateNewGame. screenH is the logical height of
// the drawing surface and fixes the paddle line and the ball's home position.
func New(cfg config.BreakoutConfig, screenH float64) *Game {
	g := &Game{
		layout:  LayoutFrom(cfg),
		hud:     cfg.HUD,
		screenH: screenH,
	}
	g.reset()
	return g
}

// reset restores a fresh session. Pointer tracking and the restart
// counter carry over.
func (g *Game) reset() {
	l := g.layout
	g.paddle = Paddle{Pos: core.V2((l.Width-l.PaddleSize().X)/2, g.screenH-l.Padding)}
	g.ball = Ball{Pos: g.ballHome(), Vel: core.V2(l.BaseSpeed, l.BaseSpeed)}
	g.bricks = BuildWall(l)
	g.state = StateNewGame
	g.score = 0
	g.lives = l.Lives
	g.hitPaddle = false
}

// ballHome returns the spawn point at the center of the surface.
func (g *Game) ballHome() core.Vec2 {
	return core.V2(g.layout.Width/2, g.screenH/2)
}

// Resize moves the paddle line for a new surface height. The session keeps
// going; a ball already past the new paddle line is sent home without
// costing a life.
func (g *Game) Resize(screenH float64) {
	if screenH == g.screenH {
		return
	}
	g.screenH = screenH
	g.paddle.Pos.Y = screenH - g.layout.Padding
	if g.ball.Pos.Y >= g.paddle.Pos.Y {
		g.ball.Pos = g.ballHome()
		g.hitPaddle = false
	}
}

// Update advances the simulation by one frame. It does nothing while paused.
func (g *Game) Update(in Input) {
	if g.state == StatePaused {
		return
	}

	g.movePaddle(in.PointerX)
	g.checkWallCollision()
	g.checkPaddleCollision()
	g.checkBrickCollision()
	g.moveBall(in.Elapsed)

	// An empty wall wins even if the last life went in the same frame
	if len(g.bricks) == 0 {
		g.state = StateWin
	}
	g.frame++
}

// Click handles a primary-button press. Outside active play it starts a
// session, restarting first when the previous one has ended.
func (g *Game) Click() {
	if g.state == StatePlaying {
		return
	}
	if g.state.Finished() {
		g.reset()
		g.restarts++
	}
	g.state = StatePlaying
}

// TogglePause flips between Playing and Paused. Other states ignore it.
func (g *Game) TogglePause() {
	switch g.state {
	case StatePlaying:
		g.state = StatePaused
	case StatePaused:
		g.state = StatePlaying
	}
}

// State returns the current session phase.
func (g *Game) State() State {
	return g.state
}

// Score returns the accumulated points.
func (g *Game) Score() int {
	return g.score
}

// Lives returns the remaining balls.
func (g *Game) Lives() int {
	return g.lives
}

// Restarts returns how many times a finished session was restarted.
func (g *Game) Restarts() int {
	return g.restarts
}

// Frame returns the number of simulated frames since construction.
func (g *Game) Frame() uint64 {
	return g.frame
}

// BricksRemaining returns the number of bricks still standing.
func (g *Game) BricksRemaining() int {
	return len(g.bricks)
}

// Bricks returns a copy of the remaining bricks in collection order.
func (g *Game) Bricks() []Brick {
	out := make([]Brick, len(g.bricks))
	copy(out, g.bricks)
	return out
}

// Ball returns the current ball state.
func (g *Game) Ball() Ball {
	return g.ball
}

// Paddle returns the current paddle state.
func (g *Game) Paddle() Paddle {
	return g.paddle
}

// Layout returns the arena geometry.
func (g *Game) Layout() Layout {
	return g.layout
}

// ScreenHeight returns the logical surface height the session was built for.
func (g *Game) ScreenHeight() float64 {
	return g.screenH
}

// String summarizes the session for logging.
func (g *Game) String() string {
	return fmt.Sprintf("state=%s score=%d lives=%d bricks=%d restarts=%d",
		g.state, g.score, g.lives, len(g.bricks), g.restarts)
}
