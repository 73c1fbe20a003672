package core

import (
	"fmt"
	"unicode/utf8"
)

// Surface receives primitive draw commands in logical units.
// Games draw onto a Surface; the platform decides how to present it.
type Surface interface {
	// Clear fills the whole surface with a background color.
	Clear(c Color)

	// FillRect draws a filled rectangle.
	FillRect(r Rect, c Color)

	// StrokeRect draws a rectangle outline of the given thickness.
	StrokeRect(r Rect, thickness float64, c Color)

	// Label draws text with its top-left corner at pos.
	Label(pos Vec2, text string, style TextStyle)

	// Button draws a clickable text label. Hit testing is the caller's job.
	Button(pos Vec2, text string, style TextStyle)
}

// TextStyle describes how a label or button is drawn.
type TextStyle struct {
	FontSize float64
	Color    Color
}

// Skin is the text styling handed to a render projection.
// GlyphWidth is the advance of one character in logical units and
// is what text measurement is based on.
type Skin struct {
	Label      TextStyle
	Button     TextStyle
	GlyphWidth float64
}

// DefaultSkin returns white labels and buttons of the given font size.
func DefaultSkin(fontSize, glyphWidth float64) Skin {
	return Skin{
		Label:      TextStyle{FontSize: fontSize, Color: ColorWhite},
		Button:     TextStyle{FontSize: fontSize, Color: ColorWhite},
		GlyphWidth: glyphWidth,
	}
}

// TextSize returns the logical width and height of text in this skin.
func (s Skin) TextSize(text string) Vec2 {
	return Vec2{
		X: float64(utf8.RuneCountInString(text)) * s.GlyphWidth,
		Y: s.Label.FontSize,
	}
}

// TextCenter returns the offset from a label's top-left corner to its center.
func (s Skin) TextCenter(text string) Vec2 {
	return s.TextSize(text).Scale(0.5)
}

// CmdKind identifies a recorded draw command.
type CmdKind int

const (
	CmdClear CmdKind = iota
	CmdFillRect
	CmdStrokeRect
	CmdLabel
	CmdButton
)

// String returns the command name.
func (k CmdKind) String() string {
	switch k {
	case CmdClear:
		return "clear"
	case CmdFillRect:
		return "fill"
	case CmdStrokeRect:
		return "stroke"
	case CmdLabel:
		return "label"
	case CmdButton:
		return "button"
	default:
		return "unknown"
	}
}

// DrawCmd is a single recorded draw command.
type DrawCmd struct {
	Kind      CmdKind
	Rect      Rect
	Thickness float64
	Pos       Vec2
	Text      string
	Style     TextStyle
	Color     Color
}

// String formats the command compactly for test output.
func (c DrawCmd) String() string {
	switch c.Kind {
	case CmdClear:
		return fmt.Sprintf("clear(%s)", c.Color)
	case CmdFillRect, CmdStrokeRect:
		return fmt.Sprintf("%s(%.1f,%.1f %.1fx%.1f %s)", c.Kind, c.Rect.X, c.Rect.Y, c.Rect.W, c.Rect.H, c.Color)
	default:
		return fmt.Sprintf("%s(%.1f,%.1f %q)", c.Kind, c.Pos.X, c.Pos.Y, c.Text)
	}
}

// Recorder is a Surface that stores every command it receives.
type Recorder struct {
	Cmds []DrawCmd
}

// Reset drops all recorded commands.
func (r *Recorder) Reset() {
	r.Cmds = r.Cmds[:0]
}

func (r *Recorder) Clear(c Color) {
	r.Cmds = append(r.Cmds, DrawCmd{Kind: CmdClear, Color: c})
}

func (r *Recorder) FillRect(rect Rect, c Color) {
	r.Cmds = append(r.Cmds, DrawCmd{Kind: CmdFillRect, Rect: rect, Color: c})
}

func (r *Recorder) StrokeRect(rect Rect, thickness float64, c Color) {
	r.Cmds = append(r.Cmds, DrawCmd{Kind: CmdStrokeRect, Rect: rect, Thickness: thickness, Color: c})
}

func (r *Recorder) Label(pos Vec2, text string, style TextStyle) {
	r.Cmds = append(r.Cmds, DrawCmd{Kind: CmdLabel, Pos: pos, Text: text, Style: style, Color: style.Color})
}

func (r *Recorder) Button(pos Vec2, text string, style TextStyle) {
	r.Cmds = append(r.Cmds, DrawCmd{Kind: CmdButton, Pos: pos, Text: text, Style: style, Color: style.Color})
}

// Texts returns the text of every label and button, in draw order.
func (r *Recorder) Texts() []string {
	var out []string
	for _, c := range r.Cmds {
		if c.Kind == CmdLabel || c.Kind == CmdButton {
			out = append(out, c.Text)
		}
	}
	return out
}

// Count returns how many commands of the given kind were recorded.
func (r *Recorder) Count(kind CmdKind) int {
	n := 0
	for _, c := range r.Cmds {
		if c.Kind == kind {
			n++
		}
	}
	return n
}

var _ Surface = (*Recorder)(nil)
