package app

import (
	"image/color"

	"orrery/hal"
	"orrery/sim/orbitgl"

	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/proggy"
)

var labelColor = orbitgl.RGB(0xB0, 0xB0, 0xB0).StdRGBA()

// Label anchors must fit int16 display coordinates.
const (
	labelMin = -1 << 14
	labelMax = 1 << 14
)

// labeler writes body names next to their discs.
type labeler struct {
	d    drivers.Displayer
	font tinyfont.Fonter
}

func newLabeler(fb hal.Framebuffer) *labeler {
	return &labeler{d: &fbDisplayer{fb: fb}, font: &proggy.TinySZ8pt7b}
}

func (l *labeler) draw(discs []orbitgl.Disc) {
	for _, d := range discs {
		if d.Body == "" {
			continue
		}
		fx := d.X + d.Diameter/2 + 3
		fy := d.Y + 3
		if fx < labelMin || fx > labelMax || fy < labelMin || fy > labelMax {
			continue
		}
		x, y := int16(fx), int16(fy)
		tinyfont.WriteLine(l.d, l.font, x, y, d.Body, labelColor)
	}
}

// fbDisplayer adapts an RGB565 framebuffer to drivers.Displayer.
type fbDisplayer struct {
	fb hal.Framebuffer
}

func (d *fbDisplayer) Size() (x, y int16) {
	if d.fb == nil {
		return 0, 0
	}
	return int16(d.fb.Width()), int16(d.fb.Height())
}

func (d *fbDisplayer) SetPixel(x, y int16, c color.RGBA) {
	if d.fb == nil || d.fb.Format() != hal.PixelFormatRGB565 {
		return
	}
	buf := d.fb.Buffer()
	if buf == nil {
		return
	}

	w := d.fb.Width()
	h := d.fb.Height()
	ix := int(x)
	iy := int(y)
	if ix < 0 || ix >= w || iy < 0 || iy >= h {
		return
	}

	pixel := orbitgl.RGB565(c.R, c.G, c.B)
	off := iy*d.fb.StrideBytes() + ix*2
	if off < 0 || off+1 >= len(buf) {
		return
	}
	buf[off] = byte(pixel)
	buf[off+1] = byte(pixel >> 8)
}

func (d *fbDisplayer) Display() error { return nil }
