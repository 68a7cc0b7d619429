package core

// Color is a foreground color for a screen cell. The platform layer maps
// each value to an ANSI 256-color code.
type Color uint8

// Palette used by the playfield.
const (
	ColorDefault      Color = iota
	ColorGreen              // Tube bodies
	ColorBrightGreen        // Tube lips, grass
	ColorOrange             // Ground, beak
	ColorBrightYellow       // Bird
	ColorBrightRed          // Crash banner
	ColorWhite
	ColorBrightWhite
	ColorGray
)
