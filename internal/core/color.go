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
	ColorOrange
	ColorGray
)

// cellColors is indexed by cell code.
var cellColors = [CellMax + 1]Color{
	ColorDefault,
	ColorOrange,
	ColorRed,
	ColorGreen,
	ColorYellow,
	ColorBlue,
	ColorMagenta,
	ColorCyan,
}

// CellColor returns the display color for a playfield cell code.
func CellColor(c Cell) Color {
	if !c.Valid() {
		return ColorDefault
	}
	return cellColors[c]
}
