package core

// Color is the foreground color of a screen cell. Front ends map each value
// to a terminal color.
type Color uint8

const (
	ColorDefault Color = iota

	// Block hues.
	ColorRed
	ColorOrange
	ColorYellow
	ColorGreen
	ColorMint
	ColorCyan
	ColorBlue
	ColorPurple
	ColorViolet
	ColorMagenta
	ColorPink
	ColorStone // stage obstacles
	ColorGold  // special blocks

	// Interface roles.
	ColorText
	ColorMuted
	ColorAccent    // selected slot, armed cursor
	ColorWarning   // item targets
	ColorHighlight // cells about to clear

	colorCount
)

// Colors returns every defined color, ColorDefault first.
func Colors() []Color {
	out := make([]Color, 0, colorCount)
	for c := ColorDefault; c < colorCount; c++ {
		out = append(out, c)
	}
	return out
}
