package orbitgl

import "fmt"

// CentralParams describes the fixed body at the origin.
type CentralParams struct {
	Name  string
	Size  float64
	Color ColorKey
}

// Scene owns the central body and an ordered set of orbiting bodies.
//
// Body order is stable and only matters for reproducibility and tie breaks.
// A Scene must not be advanced while a frame is being built from it.
type Scene struct {
	central CentralParams
	bodies  []Body
}

// NewScene validates the parameters and builds a scene.
func NewScene(central CentralParams, bodies []BodyParams) (*Scene, error) {
	if !finite(central.Size) || central.Size <= 0 {
		return nil, fmt.Errorf("%w: central body size %v", ErrInvalidConfiguration, central.Size)
	}
	s := &Scene{
		central: central,
		bodies:  make([]Body, 0, len(bodies)),
	}
	for _, p := range bodies {
		if err := p.validate(); err != nil {
			return nil, err
		}
		s.bodies = append(s.bodies, newBody(p))
	}
	return s, nil
}

func (s *Scene) Central() CentralParams { return s.central }

// Len returns the number of orbiting bodies.
func (s *Scene) Len() int { return len(s.bodies) }

// Bodies returns a copy of the bodies in scene order.
func (s *Scene) Bodies() []Body {
	out := make([]Body, len(s.bodies))
	copy(out, s.bodies)
	return out
}

// Body returns the body with the given name.
func (s *Scene) Body(name string) (Body, bool) {
	for _, b := range s.bodies {
		if b.name == name {
			return b, true
		}
	}
	return Body{}, false
}

// MaxOrbitRadius returns the largest orbit radius, or 0 for an empty scene.
func (s *Scene) MaxOrbitRadius() float64 {
	maxR := 0.0
	for i := range s.bodies {
		if r := s.bodies[i].radius; r > maxR {
			maxR = r
		}
	}
	return maxR
}

// Advance advances every body by one tick.
func (s *Scene) Advance() {
	for i := range s.bodies {
		s.bodies[i].Advance()
	}
}
