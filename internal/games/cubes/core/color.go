package core

import "strings"

// Color represents a cube color in the game.
type Color uint8

const (
	ColorBlue Color = iota
	ColorPurple
	ColorRed
	ColorYellow
	ColorGreen
	ColorCount // Sentinel value for iteration
)

// String returns the string representation of a color.
func (c Color) String() string {
	switch c {
	case ColorBlue:
		return "blue"
	case ColorPurple:
		return "purple"
	case ColorRed:
		return "red"
	case ColorYellow:
		return "yellow"
	case ColorGreen:
		return "green"
	default:
		return "unknown"
	}
}

// Char returns a single character representation of the color for ASCII rendering.
func (c Color) Char() rune {
	switch c {
	case ColorBlue:
		return 'B'
	case ColorPurple:
		return 'P'
	case ColorRed:
		return 'R'
	case ColorYellow:
		return 'Y'
	case ColorGreen:
		return 'G'
	default:
		return '?'
	}
}

// Valid reports whether c is part of the palette.
func (c Color) Valid() bool {
	return c < ColorCount
}

// ParseColor converts a string to a Color.
// Returns ColorBlue and false if the string is not recognized.
func ParseColor(s string) (Color, bool) {
	switch strings.ToLower(s) {
	case "blue", "b":
		return ColorBlue, true
	case "purple", "p":
		return ColorPurple, true
	case "red", "r":
		return ColorRed, true
	case "yellow", "y":
		return ColorYellow, true
	case "green", "g":
		return ColorGreen, true
	default:
		return ColorBlue, false
	}
}

// AllColors returns a slice of all palette colors.
func AllColors() []Color {
	return []Color{ColorBlue, ColorPurple, ColorRed, ColorYellow, ColorGreen}
}
