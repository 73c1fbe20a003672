package core

// Color represents a foreground color for a screen cell or draw command.
// The platform maps each value to an ANSI 256-color code.
type Color uint8

// Predefined colors for game elements.
const (
	ColorDefault Color = iota
	ColorBlack
	ColorWhite
	ColorRed
	ColorGreen
	ColorYellow
	ColorOrange
	ColorSkyBlue
	ColorGray
)

// String returns the color name, used in logs and test failures.
func (c Color) String() string {
	switch c {
	case ColorDefault:
		return "default"
	case ColorBlack:
		return "black"
	case ColorWhite:
		return "white"
	case ColorRed:
		return "red"
	case ColorGreen:
		return "green"
	case ColorYellow:
		return "yellow"
	case ColorOrange:
		return "orange"
	case ColorSkyBlue:
		return "skyblue"
	case ColorGray:
		return "gray"
	default:
		return "unknown"
	}
}
