package core

// Color is a foreground color for a screen cell, stored as a hex string
// ("#rrggbb") so theme palettes pass through untouched.
// The zero value means the terminal default.
type Color string

// ColorDefault leaves the cell in the terminal's default color.
const ColorDefault Color = ""

// IsDefault reports whether the color is the terminal default.
func (c Color) IsDefault() bool {
	return c == ColorDefault
}
