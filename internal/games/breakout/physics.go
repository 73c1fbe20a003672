package breakout

import (
	"math"

	"github.com/vovakirdan/tui-breakout/internal/core"
)

// Ball represents the ball state. Velocity is in units per simulated millisecond.
type Ball struct {
	Pos core.Vec2
	Vel core.Vec2
}

// Rect returns the ball's bounding box.
func (b *Ball) Rect(size core.Vec2) core.Rect {
	return core.RectFrom(b.Pos, size)
}

// BounceY reverses vertical velocity.
func (b *Ball) BounceY() {
	b.Vel.Y = -b.Vel.Y
}

// Paddle represents the player's paddle. Only X ever changes.
type Paddle struct {
	Pos core.Vec2
}

// movePaddle shifts the paddle by the pointer movement since the last update.
// The first sample only establishes the reference position.
func (g *Game) movePaddle(pointerX float64) {
	if g.pointerKnown {
		delta := pointerX - g.lastPointerX
		maxX := g.layout.Width - g.layout.PaddleSize().X
		g.paddle.Pos.X = core.ClampF(g.paddle.Pos.X+delta, 0, maxX)
	}
	g.lastPointerX = pointerX
	g.pointerKnown = true
}

// checkWallCollision points the velocity back into the arena when the ball
// touches or crosses the side or top walls. There is no bottom wall.
func (g *Game) checkWallCollision() {
	pos := g.ball.Pos
	if pos.X <= 0 {
		g.ball.Vel.X = math.Abs(g.ball.Vel.X)
	} else if pos.X >= g.layout.Width-g.layout.BallSize.X {
		g.ball.Vel.X = -math.Abs(g.ball.Vel.X)
	}
	if pos.Y <= 0 {
		g.ball.Vel.Y = math.Abs(g.ball.Vel.Y)
	}
}

// paddleCollider returns the rectangle the ball bounces off at the paddle line.
// Outside active play it spans the whole arena so the ball keeps bouncing.
func (g *Game) paddleCollider() core.Rect {
	size := g.layout.PaddleSize()
	if g.state == StatePlaying {
		return core.RectFrom(g.paddle.Pos, size)
	}
	return core.NewRect(0, g.paddle.Pos.Y, g.layout.Width, size.Y)
}

// checkPaddleCollision reflects the ball once per contact. The latch stays
// set while the ball overlaps the paddle and clears on separation.
func (g *Game) checkPaddleCollision() {
	if g.ball.Rect(g.layout.BallSize).Intersects(g.paddleCollider()) {
		if !g.hitPaddle {
			g.hitPaddle = true
			g.ball.BounceY()
		}
		return
	}
	g.hitPaddle = false
}

// checkBrickCollision resolves at most one brick per frame: the first one in
// collection order that the ball overlaps.
func (g *Game) checkBrickCollision() {
	ballRect := g.ball.Rect(g.layout.BallSize)
	for i, brick := range g.bricks {
		if !ballRect.Intersects(brick.Rect(g.layout)) {
			continue
		}
		g.ball.BounceY()
		if g.state == StatePlaying {
			g.score += brick.Points()
			g.removeBrick(i)
		}
		return
	}
}

// removeBrick drops the brick at index i, keeping the rest in order.
func (g *Game) removeBrick(i int) {
	copy(g.bricks[i:], g.bricks[i+1:])
	g.bricks = g.bricks[:len(g.bricks)-1]
}

// moveBall integrates the ball position over the frame and handles a drop
// past the paddle line. elapsed is wall-clock seconds and is not capped.
func (g *Game) moveBall(elapsed float64) {
	g.ball.Pos = g.ball.Pos.Add(g.ball.Vel.Scale(elapsed * 1000))

	if g.ball.Pos.Y >= g.paddle.Pos.Y {
		g.ball.Pos = g.ballHome()
		g.loseLife()
	}
}

// loseLife consumes one life. With none left the session is already over.
func (g *Game) loseLife() {
	if g.lives <= 0 {
		return
	}
	g.lives--
	if g.lives == 0 {
		g.state = StateGameOver
	}
}
