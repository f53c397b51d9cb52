package orbitgl

import (
	"fmt"
	"math"
)

// MinRingSamples is the smallest sample count that still outlines a ring.
const MinRingSamples = 3

// ScreenPoint is a 2D point in screen space.
type ScreenPoint struct {
	X, Y float64
}

// SampleRing samples a circular orbit of the given radius into exactly n
// projected points, in increasing angle order starting at θ = 0.
func SampleRing(radius float64, n int, tilt, cameraDistance, centerX, centerY float64) ([]ScreenPoint, error) {
	if n < MinRingSamples {
		return nil, fmt.Errorf("%w: ring sample count %d < %d", ErrInvalidConfiguration, n, MinRingSamples)
	}
	v := View{CameraDistance: cameraDistance, Tilt: tilt}
	pts := make([]ScreenPoint, n)
	for i := 0; i < n; i++ {
		theta := 2 * math.Pi * float64(i) / float64(n)
		p, err := projectWorld(orbitPoint(radius, theta), v, centerX, centerY)
		if err != nil {
			return nil, fmt.Errorf("ring r=%v sample %d: %w", radius, i, err)
		}
		pts[i] = ScreenPoint{X: p.ScreenX, Y: p.ScreenY}
	}
	return pts, nil
}
