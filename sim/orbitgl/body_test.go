package orbitgl

import (
	"math"
	"testing"
)

// angleDist is the shortest distance between two angles in degrees.
func angleDist(a, b float64) float64 {
	d := math.Abs(a - b)
	return math.Min(d, 360-d)
}

func TestBodyAdvanceStaysInRange(t *testing.T) {
	angles := []float64{0, 45, 359.9, -10, 1e6, -1e6}
	speeds := []float64{0, 4.5, -4.5, 359.99, -720.5, 1e-12, -1e-12}
	for _, a := range angles {
		for _, s := range speeds {
			b := newBody(BodyParams{Name: "b", OrbitRadius: 10, AngularSpeed: s, InitialAngle: a, Size: 1})
			for i := 0; i < 5; i++ {
				b.Advance()
				if got := b.Angle(); got < 0 || got >= 360 {
					t.Fatalf("angle %v speed %v: Advance() -> %v, out of [0, 360)", a, s, got)
				}
			}
		}
	}
}

func TestBodyRepeatedAdvanceMatchesSummedSpeed(t *testing.T) {
	for _, s := range []float64{4.5, -3, 1.3, 0.8, -271.25} {
		const ticks = 1000
		b := newBody(BodyParams{Name: "b", OrbitRadius: 10, AngularSpeed: s, InitialAngle: 15, Size: 1})
		for i := 0; i < ticks; i++ {
			b.Advance()
		}
		want := NormalizeDegrees(15 + ticks*s)
		if d := angleDist(b.Angle(), want); d > 1e-6 {
			t.Fatalf("speed %v: angle after %d ticks = %v, want %v", s, ticks, b.Angle(), want)
		}
	}
}

func TestBodyWorldPosition(t *testing.T) {
	b := newBody(BodyParams{Name: "b", OrbitRadius: 100, InitialAngle: 90, Size: 1})
	p := b.WorldPosition()
	if !near(p.X, 0) || p.Y != 0 || !near(p.Z, 100) {
		t.Fatalf("WorldPosition() = %v, want (0, 0, 100)", p)
	}

	b = newBody(BodyParams{Name: "b", OrbitRadius: 100, InitialAngle: 180, Size: 1})
	p = b.WorldPosition()
	if !near(p.X, -100) || p.Y != 0 || !near(p.Z, 0) {
		t.Fatalf("WorldPosition() = %v, want (-100, 0, 0)", p)
	}
}

func TestBodyParamsCarriesCurrentAngle(t *testing.T) {
	b := newBody(BodyParams{Name: "b", OrbitRadius: 1, AngularSpeed: 10, InitialAngle: 355, Size: 2, Color: "#fff"})
	b.Advance()
	p := b.Params()
	if p.InitialAngle != 5 || p.Name != "b" || p.Color != "#fff" {
		t.Fatalf("Params() = %+v, want angle 5", p)
	}
}
