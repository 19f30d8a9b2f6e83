package core

// Color is a palette index for a screen cell.
// The terminal platform maps each entry to an ANSI 256-colour code.
type Color uint8

// Palette entries. ColorDefault leaves the terminal's own colour untouched.
const (
	ColorDefault Color = iota
	ColorBlack
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorGray
	ColorOrange
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightWhite
	ColorSky   // Day background
	ColorNavy  // Night background
	ColorOlive // Night obstacle
)
