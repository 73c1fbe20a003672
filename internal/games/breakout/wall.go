package breakout

import (
	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/core"
)

// Layout holds the fixed arena geometry derived from the config.
type Layout struct {
	Columns   int
	Rows      int
	BrickSize core.Vec2
	Gap       float64
	Padding   float64
	BallSize  core.Vec2
	BaseSpeed float64 // Units per simulated millisecond
	Lives     int
	Width     float64 // Arena width
}

// LayoutFrom derives the arena geometry from a config.
func LayoutFrom(cfg config.BreakoutConfig) Layout {
	return Layout{
		Columns:   cfg.Arena.BrickColumns,
		Rows:      cfg.Arena.BrickRows,
		BrickSize: core.V2(cfg.Arena.BrickWidth, cfg.Arena.BrickHeight),
		Gap:       cfg.Arena.BrickGap,
		Padding:   cfg.Arena.Padding,
		BallSize:  core.V2(cfg.Ball.Size, cfg.Ball.Size),
		BaseSpeed: cfg.Ball.BaseSpeed,
		Lives:     cfg.Gameplay.Lives,
		Width:     cfg.Arena.Width(),
	}
}

// PaddleSize returns the paddle dimensions. The paddle is brick-sized.
func (l Layout) PaddleSize() core.Vec2 {
	return l.BrickSize
}

// WallBottom returns the y-coordinate just below the lowest brick row.
func (l Layout) WallBottom() float64 {
	return l.Padding + float64(l.Rows)*(l.BrickSize.Y+l.Gap) - l.Gap
}

// MinHeight returns the smallest surface height that keeps the ball's
// home, at half the height, below the brick wall and the paddle line
// below the home with room for the ball.
func (l Layout) MinHeight() float64 {
	home := 2 * (l.WallBottom() + l.BallSize.Y)
	return max(home, l.WallBottom()+2*l.BallSize.Y+l.Padding)
}

// Brick is a destructible rectangle. Position, color and points all
// follow from its row and column.
type Brick struct {
	Row int
	Col int
	Pos core.Vec2
}

// NewBrick places a brick in the wall. Row 0 is the bottom row.
func NewBrick(l Layout, row, col int) Brick {
	x := float64(col) * (l.BrickSize.X + l.Gap)
	y := l.Padding + float64(l.Rows-row-1)*(l.BrickSize.Y+l.Gap)
	return Brick{Row: row, Col: col, Pos: core.V2(x, y)}
}

// Rect returns the brick's collision rectangle.
func (b Brick) Rect(l Layout) core.Rect {
	return core.RectFrom(b.Pos, l.BrickSize)
}

// Points returns the score for destroying the brick.
func (b Brick) Points() int {
	return RowPoints(b.Row)
}

// Color returns the brick's tint.
func (b Brick) Color() core.Color {
	return RowColor(b.Row)
}

// RowPoints maps a row to its point value: rows {0,1}=1, {2,3}=3, {4,5}=5, {6,7}=7.
func RowPoints(row int) int {
	return (row/2)*2 + 1
}

// RowColor maps a row to its color tier. Rows past the classic eight
// fall back to the default color.
func RowColor(row int) core.Color {
	switch row {
	case 0, 1:
		return core.ColorYellow
	case 2, 3:
		return core.ColorGreen
	case 4, 5:
		return core.ColorOrange
	case 6, 7:
		return core.ColorRed
	default:
		return core.ColorDefault
	}
}

// BuildWall returns a fresh brick collection in row-major order, row 0 first.
func BuildWall(l Layout) []Brick {
	bricks := make([]Brick, 0, l.Rows*l.Columns)
	for row := 0; row < l.Rows; row++ {
		for col := 0; col < l.Columns; col++ {
			bricks = append(bricks, NewBrick(l, row, col))
		}
	}
	return bricks
}

// WallScore returns the score for clearing a full wall.
func WallScore(l Layout) int {
	total := 0
	for row := 0; row < l.Rows; row++ {
		total += RowPoints(row) * l.Columns
	}
	return total
}
