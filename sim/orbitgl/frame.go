package orbitgl

import (
	"cmp"
	"fmt"
	"math"
	"slices"
)

// View holds the fixed camera and ring settings used for every frame.
type View struct {
	CameraDistance float64 // camera distance from the origin along the view axis
	Tilt           float64 // orbital plane elevation, radians
	RingSamples    int
	ClosedRings    bool // mark ring polylines as closed loops
}

// Instruction is one draw primitive. It is either a Polyline or a Disc.
type Instruction interface {
	instruction()
}

// Polyline is an orbit ring outline.
type Polyline struct {
	Body   string
	Points []ScreenPoint
	Closed bool // connect the last point back to the first
}

// Disc is a filled circle for the central body or an orbiting body.
type Disc struct {
	Body     string
	X, Y     float64
	Diameter float64
	Depth    float64
	Color    ColorKey
}

func (Polyline) instruction() {}
func (Disc) instruction()     {}

// Compositor builds depth-ordered draw lists.
//
// It is stateless apart from its View and safe for concurrent use; the scene
// it reads is not.
type Compositor struct {
	view View
}

// NewCompositor validates v and returns a compositor for it.
func NewCompositor(v View) (*Compositor, error) {
	switch {
	case !finite(v.CameraDistance) || v.CameraDistance <= 0:
		return nil, fmt.Errorf("%w: camera distance %v", ErrInvalidConfiguration, v.CameraDistance)
	case !finite(v.Tilt):
		return nil, fmt.Errorf("%w: tilt %v", ErrInvalidConfiguration, v.Tilt)
	case v.RingSamples < MinRingSamples:
		return nil, fmt.Errorf("%w: ring sample count %d < %d", ErrInvalidConfiguration, v.RingSamples, MinRingSamples)
	}
	return &Compositor{view: v}, nil
}

func (c *Compositor) View() View { return c.view }

// Check reports ErrDegenerateProjection if some orbit could come close enough
// to the camera to break the projection. Orbits lie in y = 0, so after the
// tilt the nearest point of an orbit of radius r sits at z = -r·|cos(tilt)|.
func (c *Compositor) Check(s *Scene) error {
	reach := s.MaxOrbitRadius() * math.Abs(math.Cos(c.view.Tilt))
	if c.view.CameraDistance-reach <= MinDepth {
		return fmt.Errorf("%w: camera distance %v does not clear tilted orbit depth %v", ErrDegenerateProjection, c.view.CameraDistance, reach)
	}
	return nil
}

type depthEntry struct {
	name  string
	p     ProjectedPoint
	size  float64
	color ColorKey
}

// BuildFrame returns the draw list for the scene's current state: one ring
// polyline per body in scene order, then one disc per body and the central
// body, farthest first. Any degenerate projection aborts the whole frame.
func (c *Compositor) BuildFrame(s *Scene, centerX, centerY float64) ([]Instruction, error) {
	v := c.view
	out := make([]Instruction, 0, 2*len(s.bodies)+1)

	for i := range s.bodies {
		b := &s.bodies[i]
		pts, err := SampleRing(b.radius, v.RingSamples, v.Tilt, v.CameraDistance, centerX, centerY)
		if err != nil {
			return nil, fmt.Errorf("build frame: %w", err)
		}
		out = append(out, Polyline{Body: b.name, Points: pts, Closed: v.ClosedRings})
	}

	entries := make([]depthEntry, 0, len(s.bodies)+1)

	sun, err := projectWorld(Vec3{}, v, centerX, centerY)
	if err != nil {
		return nil, fmt.Errorf("build frame: central body: %w", err)
	}
	entries = append(entries, depthEntry{name: s.central.Name, p: sun, size: s.central.Size, color: s.central.Color})

	for i := range s.bodies {
		b := &s.bodies[i]
		p, err := projectWorld(b.WorldPosition(), v, centerX, centerY)
		if err != nil {
			return nil, fmt.Errorf("build frame: body %q: %w", b.name, err)
		}
		entries = append(entries, depthEntry{name: b.name, p: p, size: b.size, color: b.color})
	}

	slices.SortStableFunc(entries, func(a, b depthEntry) int {
		return cmp.Compare(b.p.Depth, a.p.Depth)
	})

	for _, e := range entries {
		out = append(out, Disc{
			Body:     e.name,
			X:        e.p.ScreenX,
			Y:        e.p.ScreenY,
			Diameter: e.size * e.p.Scale,
			Depth:    e.p.Depth,
			Color:    e.color,
		})
	}
	return out, nil
}

// Discs returns the discs of a frame in draw order.
func Discs(frame []Instruction) []Disc {
	var out []Disc
	for _, in := range frame {
		if d, ok := in.(Disc); ok {
			out = append(out, d)
		}
	}
	return out
}

// SortedByDepth reports whether discs are in non-increasing depth order.
func SortedByDepth(discs []Disc) bool {
	for i := 1; i < len(discs); i++ {
		if discs[i].Depth > discs[i-1].Depth || math.IsNaN(discs[i].Depth) {
			return false
		}
	}
	return true
}
