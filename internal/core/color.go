package core

// Color represents a foreground color for a screen cell.
// Values map to ANSI 256-color codes in the platform renderer.
type Color uint8

// Predefined colors. The tile colors follow the tile value ladder.
const (
	ColorDefault Color = iota
	ColorGray
	ColorWhite
	ColorBrightWhite
	ColorYellow
	ColorOrange
	ColorRed
	ColorBrightRed
	ColorMagenta
	ColorBrightMagenta
	ColorGreen
	ColorBrightGreen
	ColorCyan
	ColorBlue
	ColorBrightYellow
)

// tileColors is indexed by log2 of the tile value.
var tileColors = []Color{
	ColorDefault,       // empty
	ColorWhite,         // 2
	ColorBrightWhite,   // 4
	ColorYellow,        // 8
	ColorOrange,        // 16
	ColorRed,           // 32
	ColorBrightRed,     // 64
	ColorMagenta,       // 128
	ColorBrightMagenta, // 256
	ColorGreen,         // 512
	ColorBrightGreen,   // 1024
	ColorBrightYellow,  // 2048
}

// TileColor returns the display color for a tile value.
// Values above 2048 cycle through cyan and blue.
func TileColor(value int) Color {
	if value <= 0 {
		return ColorDefault
	}
	exp := 0
	for v := value; v > 1; v >>= 1 {
		exp++
	}
	if exp < len(tileColors) {
		return tileColors[exp]
	}
	if exp%2 == 0 {
		return ColorCyan
	}
	return ColorBlue
}
