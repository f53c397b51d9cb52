package orbitgl

import (
	"errors"
	"fmt"
)

var (
	// ErrDegenerateProjection reports a point at or behind the camera, where
	// the perspective scale is undefined or unbounded.
	ErrDegenerateProjection = errors.New("degenerate projection")

	// ErrInvalidConfiguration reports scene or view parameters that can never
	// produce a valid frame.
	ErrInvalidConfiguration = errors.New("invalid configuration")
)

// MinDepth is the smallest depth accepted by Project.
const MinDepth = 1e-9

// ProjectedPoint is a point after perspective projection.
type ProjectedPoint struct {
	ScreenX float64
	ScreenY float64
	Scale   float64 // screen units per world unit at this depth
	Depth   float64 // distance from the camera along the view axis
}

// Tilt rotates p about the X axis by rad. It gives the flat orbital plane
// its apparent elevation.
func Tilt(p Vec3, rad float64) Vec3 {
	return Mat4RotateX(rad).MulPoint(p)
}

// Project applies a perspective divide for a camera at cameraDistance in
// front of the origin. Screen Y grows downwards.
func Project(p Vec3, cameraDistance, centerX, centerY float64) (ProjectedPoint, error) {
	depth := p.Z + cameraDistance
	if !finite(depth) || depth <= MinDepth {
		return ProjectedPoint{}, fmt.Errorf("%w: depth %v (z=%v, camera distance %v)", ErrDegenerateProjection, depth, p.Z, cameraDistance)
	}
	scale := cameraDistance / depth
	if !finite(scale) || scale <= 0 {
		return ProjectedPoint{}, fmt.Errorf("%w: scale %v at depth %v", ErrDegenerateProjection, scale, depth)
	}
	return ProjectedPoint{
		ScreenX: centerX + p.X*scale,
		ScreenY: centerY - p.Y*scale,
		Scale:   scale,
		Depth:   depth,
	}, nil
}

// projectWorld tilts and projects a world-space point.
func projectWorld(p Vec3, v View, centerX, centerY float64) (ProjectedPoint, error) {
	return Project(Tilt(p, v.Tilt), v.CameraDistance, centerX, centerY)
}
