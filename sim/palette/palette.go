// Package palette resolves orbitgl colour keys to RGB colours.
//
// Keys are either hex strings ("#rgb", "#rrggbb") or one of a small set of
// colour names. Translucent colours are flattened against the background with
// Blend, since the RGB565 framebuffer has no alpha channel.
package palette

import (
	"fmt"
	"strings"

	"orrery/sim/orbitgl"

	"github.com/lucasb-eyer/go-colorful"
)

var named = map[string]string{
	"black":     "#000000",
	"white":     "#FFFFFF",
	"gray":      "#808080",
	"lightgray": "#C0C0C0",
	"red":       "#FF0000",
	"orange":    "#FFC800",
	"yellow":    "#FFFF00",
	"blue":      "#0000FF",
	"darkblue":  "#00008B",
	"cyan":      "#00FFFF",
	"burlywood": "#DEB887",
}

// Palette caches resolved keys. It is not safe for concurrent use.
type Palette struct {
	Fallback orbitgl.Color

	cache map[orbitgl.ColorKey]orbitgl.Color
}

// New returns a palette that paints unknown keys magenta.
func New() *Palette {
	return &Palette{
		Fallback: orbitgl.RGB(0xFF, 0x00, 0xFF),
		cache:    make(map[orbitgl.ColorKey]orbitgl.Color),
	}
}

// Lookup parses a key without caching.
func Lookup(k orbitgl.ColorKey) (orbitgl.Color, error) {
	s := strings.TrimSpace(string(k))
	if hex, ok := named[strings.ToLower(s)]; ok {
		s = hex
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return orbitgl.Color{}, fmt.Errorf("palette: colour key %q: %w", k, err)
	}
	r, g, b := c.RGB255()
	return orbitgl.RGB(r, g, b), nil
}

// Resolve returns the colour for k, or Fallback if k does not parse.
func (p *Palette) Resolve(k orbitgl.ColorKey) orbitgl.Color {
	if c, ok := p.cache[k]; ok {
		return c
	}
	c, err := Lookup(k)
	if err != nil {
		c = p.Fallback
	}
	p.cache[k] = c
	return c
}

// Blend composites c over bg using c's alpha and returns an opaque colour.
func Blend(c, bg orbitgl.Color) orbitgl.Color {
	if c.A == 0xFF {
		return c
	}
	top := colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
	under := colorful.Color{R: float64(bg.R) / 255, G: float64(bg.G) / 255, B: float64(bg.B) / 255}
	r, g, b := under.BlendRgb(top, float64(c.A)/255).Clamped().RGB255()
	return orbitgl.RGB(r, g, b)
}
