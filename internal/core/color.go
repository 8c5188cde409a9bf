package core

// Color is the foreground color of a screen cell. The platform layer
// decides how each value maps to terminal escape codes; core only tags
// cells so simulations stay free of rendering dependencies.
type Color uint8

const (
	ColorDefault Color = iota

	// Standard ANSI colors.
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite

	// Bright variants.
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightBlue
	ColorBrightMagenta
	ColorBrightCyan
	ColorBrightWhite

	// Extended palette entries used by ghost bodies and dimmed cells.
	ColorOrange
	ColorGray
)
