package tui

import (
	"math"

	"github.com/vovakirdan/tui-breakout/internal/core"
)

// Glyphs used by the rasterizer.
const (
	FillGlyph    = '█'
	PointerGlyph = '+'
)

// Rasterizer is a core.Surface that draws onto a character grid.
// One cell covers CellW x CellH logical units.
type Rasterizer struct {
	screen *core.Screen
	cellW  float64
	cellH  float64
}

// NewRasterizer creates a rasterizer over screen.
func NewRasterizer(screen *core.Screen, cellW, cellH float64) *Rasterizer {
	return &Rasterizer{screen: screen, cellW: cellW, cellH: cellH}
}

// SetCellSize changes the logical size of one cell.
func (r *Rasterizer) SetCellSize(cellW, cellH float64) {
	r.cellW, r.cellH = cellW, cellH
}

// span maps a logical interval to a half-open cell range, at least one cell wide.
func span(pos, size, cell float64) (int, int) {
	start := int(math.Round(pos / cell))
	end := int(math.Round((pos + size) / cell))
	if end <= start {
		end = start + 1
	}
	return start, end
}

// Logical returns the logical point at the center of cell (x, y).
func (r *Rasterizer) Logical(x, y int) core.Vec2 {
	return core.V2((float64(x)+0.5)*r.cellW, (float64(y)+0.5)*r.cellH)
}

// cellOf maps a logical point to the cell it rounds to.
func (r *Rasterizer) cellOf(pos core.Vec2) (int, int) {
	return int(math.Round(pos.X / r.cellW)), int(math.Round(pos.Y / r.cellH))
}

// Clear blanks the grid. The terminal background stands in for c.
func (r *Rasterizer) Clear(core.Color) {
	r.screen.Clear()
}

// FillRect fills every cell the rectangle covers.
func (r *Rasterizer) FillRect(rect core.Rect, c core.Color) {
	x0, x1 := span(rect.X, rect.W, r.cellW)
	y0, y1 := span(rect.Y, rect.H, r.cellH)
	r.screen.FillRect(x0, y0, x1, y1, FillGlyph, c)
}

// StrokeRect draws a one-cell box along the rectangle's outline.
func (r *Rasterizer) StrokeRect(rect core.Rect, _ float64, c core.Color) {
	x0, x1 := span(rect.X, rect.W, r.cellW)
	y0, y1 := span(rect.Y, rect.H, r.cellH)
	r.screen.DrawBox(x0, y0, x1, y1, c)
}

// Label writes text starting at the cell under pos.
func (r *Rasterizer) Label(pos core.Vec2, text string, style core.TextStyle) {
	x, y := r.cellOf(pos)
	r.screen.DrawText(x, y, text, style.Color)
}

// Button writes text in brackets that sit just outside its hit box.
func (r *Rasterizer) Button(pos core.Vec2, text string, style core.TextStyle) {
	x, y := r.cellOf(pos)
	r.screen.DrawText(x-1, y, "["+text+"]", style.Color)
}

// Pointer marks the cell under a logical point.
func (r *Rasterizer) Pointer(pos core.Vec2, c core.Color) {
	x := int(pos.X / r.cellW)
	y := int(pos.Y / r.cellH)
	r.screen.SetCell(x, y, PointerGlyph, c)
}

var _ core.Surface = (*Rasterizer)(nil)
