package orbitgl

// Painter rasterizes a draw list in order onto a Target.
//
// Rings are drawn as one-pixel polylines in the Ring color. Discs are filled
// with the color returned by Resolve; a nil Resolve paints them white.
// Coordinates and diameters are truncated to whole pixels.
type Painter struct {
	Background Color
	Ring       Color
	Resolve    func(ColorKey) Color
}

// Paint clears t and draws every instruction of frame in sequence.
func (p *Painter) Paint(t Target, frame []Instruction) {
	if p == nil || t == nil {
		return
	}
	w, h := t.Size()
	if w <= 0 || h <= 0 {
		return
	}
	t.Clear(p.Background)
	for _, in := range frame {
		switch in := in.(type) {
		case Polyline:
			p.drawPolyline(t, in)
		case Disc:
			p.fillDisc(t, in)
		}
	}
}

func (p *Painter) drawPolyline(t Target, pl Polyline) {
	n := len(pl.Points)
	if n == 0 {
		return
	}
	w, h := t.Size()
	if n == 1 {
		pt := pl.Points[0]
		if pt.X >= 0 && pt.X < float64(w) && pt.Y >= 0 && pt.Y < float64(h) {
			t.SetPixel(int(pt.X), int(pt.Y), p.Ring)
		}
		return
	}
	for i := 1; i < n; i++ {
		p.drawSegment(t, w, h, pl.Points[i-1], pl.Points[i])
	}
	if pl.Closed {
		p.drawSegment(t, w, h, pl.Points[n-1], pl.Points[0])
	}
}

func (p *Painter) drawSegment(t Target, w, h int, a, b ScreenPoint) {
	x0, y0, x1, y1, ok := clipSegment(a.X, a.Y, b.X, b.Y, -1, -1, float64(w), float64(h))
	if !ok {
		return
	}
	drawLine(t, int(x0), int(y0), int(x1), int(y1), p.Ring)
}

// clipSegment clips a segment to the box [xmin, xmax] x [ymin, ymax]
// (Liang-Barsky). ok is false when nothing of the segment is inside or an
// endpoint is not finite. Segments already inside are returned unchanged.
func clipSegment(x0, y0, x1, y1, xmin, ymin, xmax, ymax float64) (cx0, cy0, cx1, cy1 float64, ok bool) {
	if !finite(x0) || !finite(y0) || !finite(x1) || !finite(y1) {
		return 0, 0, 0, 0, false
	}
	dx := x1 - x0
	dy := y1 - y0
	t0, t1 := 0.0, 1.0
	edges := [4][2]float64{
		{-dx, x0 - xmin},
		{dx, xmax - x0},
		{-dy, y0 - ymin},
		{dy, ymax - y0},
	}
	for _, e := range edges {
		pe, qe := e[0], e[1]
		if pe == 0 {
			if qe < 0 {
				return 0, 0, 0, 0, false
			}
			continue
		}
		r := qe / pe
		if pe < 0 {
			if r > t1 {
				return 0, 0, 0, 0, false
			}
			if r > t0 {
				t0 = r
			}
		} else {
			if r < t0 {
				return 0, 0, 0, 0, false
			}
			if r < t1 {
				t1 = r
			}
		}
	}
	cx0, cy0, cx1, cy1 = x0, y0, x1, y1
	if t0 > 0 {
		cx0, cy0 = x0+t0*dx, y0+t0*dy
	}
	if t1 < 1 {
		cx1, cy1 = x0+t1*dx, y0+t1*dy
	}
	return cx0, cy0, cx1, cy1, true
}

func (p *Painter) fillDisc(t Target, d Disc) {
	w, h := t.Size()
	if !finite(d.X) || !finite(d.Y) || !finite(d.Diameter) {
		return
	}
	// Discs entirely off the target are skipped before any int conversion.
	reach := d.Diameter/2 + 1
	if d.X+reach < 0 || d.X-reach > float64(w) || d.Y+reach < 0 || d.Y-reach > float64(h) {
		return
	}
	size := int(d.Diameter)
	if size <= 0 {
		return
	}
	c := RGB(0xFF, 0xFF, 0xFF)
	if p.Resolve != nil {
		c = p.Resolve(d.Color)
	}
	x0 := int(d.X - float64(size/2))
	y0 := int(d.Y - float64(size/2))
	r := float64(size) / 2
	r2 := r * r
	for py := max(0, -y0); py < min(size, h-y0); py++ {
		dy := float64(py) + 0.5 - r
		for px := max(0, -x0); px < min(size, w-x0); px++ {
			dx := float64(px) + 0.5 - r
			if dx*dx+dy*dy > r2 {
				continue
			}
			t.SetPixel(x0+px, y0+py, c)
		}
	}
}

func drawLine(t Target, x0, y0, x1, y1 int, c Color) {
	dx := absInt(x1 - x0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	dy := -absInt(y1 - y0)
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx + dy
	for {
		t.SetPixel(x0, y0, c)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
