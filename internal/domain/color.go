package domain

import "fmt"

// Color is an RGB triple as pushed to the status pixel
type Color struct {
	R, G, B uint8
}

var (
	Blue   = Color{R: 0, G: 0, B: 255}
	Green  = Color{R: 0, G: 255, B: 0}
	Yellow = Color{R: 255, G: 255, B: 0}
	Off    = Color{}
)

// DefaultBrightness is the global brightness applied once at startup
const DefaultBrightness uint8 = 50

// Scale applies a global brightness the way NeoPixel strips do:
// 255 keeps the color, anything lower multiplies each channel by (b+1)/256.
func (c Color) Scale(brightness uint8) Color {
	if brightness == 255 {
		return c
	}
	scale := uint16(brightness) + 1
	return Color{
		R: uint8(uint16(c.R) * scale >> 8),
		G: uint8(uint16(c.G) * scale >> 8),
		B: uint8(uint16(c.B) * scale >> 8),
	}
}

func (c Color) String() string {
	return fmt.Sprintf("rgb(%d,%d,%d)", c.R, c.G, c.B)
}
