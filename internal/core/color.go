package core

// Color represents a foreground color for a screen cell.
// Uses ANSI 256-color codes for terminal compatibility.
type Color uint8

// Predefined colors for game elements.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightBlue
	ColorBrightMagenta
	ColorBrightCyan
	ColorBrightWhite
	ColorOrange
	ColorGray
)

// figurePalette colors figure ids 1..7 in catalog order (I O T S Z J L).
var figurePalette = []Color{
	ColorBrightCyan,
	ColorBrightYellow,
	ColorMagenta,
	ColorBrightGreen,
	ColorBrightRed,
	ColorBlue,
	ColorOrange,
}

// FigureColor returns the display color for a nonzero figure id.
// Ids beyond the palette wrap around; 0 maps to ColorDefault.
func FigureColor(id int) Color {
	if id <= 0 {
		return ColorDefault
	}
	return figurePalette[(id-1)%len(figurePalette)]
}
