package core

import "fmt"

// Color is a 24-bit terminal color. The zero value means "terminal default".
type Color uint32

const colorSet Color = 1 << 24

// ColorDefault leaves the terminal's own color in place.
const ColorDefault Color = 0

// RGB builds a color from 8-bit channels.
func RGB(r, g, b uint8) Color {
	return colorSet | Color(r)<<16 | Color(g)<<8 | Color(b)
}

// RGBF builds a color from [0,1] float channels.
func RGBF(r, g, b float64) Color {
	return RGB(unit8(r), unit8(g), unit8(b))
}

func unit8(f float64) uint8 {
	return uint8(ClampF(f, 0, 1)*255 + 0.5)
}

// IsDefault reports whether the color defers to the terminal.
func (c Color) IsDefault() bool {
	return c&colorSet == 0
}

// Scale darkens or brightens the color by factor f.
func (c Color) Scale(f float64) Color {
	if c.IsDefault() {
		return c
	}
	r := float64(c>>16&0xff) / 255
	g := float64(c>>8&0xff) / 255
	b := float64(c&0xff) / 255
	return RGBF(r*f, g*f, b*f)
}

// Hex returns the color as "#rrggbb", or "" for the default color.
func (c Color) Hex() string {
	if c.IsDefault() {
		return ""
	}
	return fmt.Sprintf("#%06x", uint32(c&0xffffff))
}
