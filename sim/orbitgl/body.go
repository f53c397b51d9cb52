package orbitgl

import (
	"fmt"
	"math"
)

// ColorKey identifies a body colour. The core treats it as opaque; hosts
// resolve it (see package palette).
type ColorKey string

// BodyParams are the static orbital parameters of a body.
type BodyParams struct {
	Name         string
	OrbitRadius  float64 // world units, >= 0
	AngularSpeed float64 // degrees per tick, any sign
	InitialAngle float64 // degrees
	Size         float64 // diameter in world units, > 0
	Color        ColorKey
}

func (p BodyParams) validate() error {
	switch {
	case !finite(p.OrbitRadius) || p.OrbitRadius < 0:
		return fmt.Errorf("%w: body %q orbit radius %v", ErrInvalidConfiguration, p.Name, p.OrbitRadius)
	case !finite(p.Size) || p.Size <= 0:
		return fmt.Errorf("%w: body %q size %v", ErrInvalidConfiguration, p.Name, p.Size)
	case !finite(p.AngularSpeed):
		return fmt.Errorf("%w: body %q angular speed %v", ErrInvalidConfiguration, p.Name, p.AngularSpeed)
	case !finite(p.InitialAngle):
		return fmt.Errorf("%w: body %q initial angle %v", ErrInvalidConfiguration, p.Name, p.InitialAngle)
	}
	return nil
}

// Body is a body on a circular orbit around the origin in the X-Z plane.
//
// Only Advance mutates the angle, which always stays in [0, 360).
type Body struct {
	name   string
	radius float64
	speed  float64
	angle  float64
	size   float64
	color  ColorKey
}

func newBody(p BodyParams) Body {
	return Body{
		name:   p.Name,
		radius: p.OrbitRadius,
		speed:  p.AngularSpeed,
		angle:  NormalizeDegrees(p.InitialAngle),
		size:   p.Size,
		color:  p.Color,
	}
}

func (b Body) Name() string          { return b.name }
func (b Body) OrbitRadius() float64  { return b.radius }
func (b Body) AngularSpeed() float64 { return b.speed }
func (b Body) Angle() float64        { return b.angle }
func (b Body) Size() float64         { return b.size }
func (b Body) Color() ColorKey       { return b.color }

// Params returns the body's parameters with the current angle as InitialAngle.
func (b Body) Params() BodyParams {
	return BodyParams{
		Name:         b.name,
		OrbitRadius:  b.radius,
		AngularSpeed: b.speed,
		InitialAngle: b.angle,
		Size:         b.size,
		Color:        b.color,
	}
}

// Advance moves the body by one tick of angular speed.
func (b *Body) Advance() {
	b.angle = NormalizeDegrees(b.angle + b.speed)
}

// WorldPosition returns (r·cosθ, 0, r·sinθ).
func (b Body) WorldPosition() Vec3 {
	return orbitPoint(b.radius, Radians(b.angle))
}

func orbitPoint(r, theta float64) Vec3 {
	return Vec3{X: r * math.Cos(theta), Y: 0, Z: r * math.Sin(theta)}
}
