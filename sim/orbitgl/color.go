package orbitgl

import "image/color"

// Color is an RGBA color in 8-bit channels.
type Color struct {
	R, G, B, A uint8
}

func RGB(r, g, b uint8) Color     { return Color{R: r, G: g, B: b, A: 0xFF} }
func RGBA(r, g, b, a uint8) Color { return Color{R: r, G: g, B: b, A: a} }

// StdRGBA converts to the image/color representation used by font and
// display drivers.
func (c Color) StdRGBA() color.RGBA { return color.RGBA{R: c.R, G: c.G, B: c.B, A: c.A} }
