package breakout

import "math"

// Snapshot contains the complete session state for replay comparison.
// Uses primitive types only for stable serialization.
type Snapshot struct {
	Frame    uint64
	State    string
	Score    int
	Lives    int
	Restarts int

	BallX  float64
	BallY  float64
	BallVX float64
	BallVY float64

	PaddleX   float64
	HitPaddle bool

	// Remaining bricks in collection order, each encoded as row*Columns + col
	Bricks []int
}

// Snapshot returns the current session state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	bricks := make([]int, len(g.bricks))
	for i, b := range g.bricks {
		bricks[i] = b.Row*g.layout.Columns + b.Col
	}

	return Snapshot{
		Frame:     g.frame,
		State:     string(g.state),
		Score:     g.score,
		Lives:     g.lives,
		Restarts:  g.restarts,
		BallX:     g.ball.Pos.X,
		BallY:     g.ball.Pos.Y,
		BallVX:    g.ball.Vel.X,
		BallVY:    g.ball.Vel.Y,
		PaddleX:   g.paddle.Pos.X,
		HitPaddle: g.hitPaddle,
		Bricks:    bricks,
	}
}

// Hash returns a deterministic hash of the snapshot for comparison.
func (s Snapshot) Hash() uint64 {
	h := uint64(17)
	mix := func(v uint64) {
		h = h*31 + v
	}

	mix(s.Frame)
	for _, c := range s.State {
		mix(uint64(c)) //#nosec G115
	}
	mix(uint64(s.Score))    //#nosec G115
	mix(uint64(s.Lives))    //#nosec G115
	mix(uint64(s.Restarts)) //#nosec G115
	for _, f := range []float64{s.BallX, s.BallY, s.BallVX, s.BallVY, s.PaddleX} {
		mix(math.Float64bits(f))
	}
	if s.HitPaddle {
		mix(1)
	} else {
		mix(0)
	}
	mix(uint64(len(s.Bricks)))
	for _, b := range s.Bricks {
		mix(uint64(b)) //#nosec G115
	}

	return h
}
