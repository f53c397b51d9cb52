package orbitgl

// Reference scenario: eight planets around a sun, viewed from 4000 units
// with the orbital plane tilted by 30 degrees.
const (
	ReferenceCameraDistance = 4000
	ReferenceTiltDegrees    = 30
	ReferenceRingSamples    = 100
	ReferenceCentralSize    = 50
	ReferenceWidth          = 800
	ReferenceHeight         = 600
)

// ReferenceCentral is the sun.
var ReferenceCentral = CentralParams{Name: "Sun", Size: ReferenceCentralSize, Color: "#FFFF00"}

// ReferenceBodies returns the planets in their reference order.
func ReferenceBodies() []BodyParams {
	return []BodyParams{
		{Name: "Mercury", OrbitRadius: 80, AngularSpeed: 4.5, InitialAngle: 0, Size: 6, Color: "#C0C0C0"},
		{Name: "Venus", OrbitRadius: 120, AngularSpeed: 3.0, InitialAngle: 45, Size: 8, Color: "#FFFF00"},
		{Name: "Earth", OrbitRadius: 160, AngularSpeed: 2.5, InitialAngle: 90, Size: 8, Color: "#0000FF"},
		{Name: "Mars", OrbitRadius: 200, AngularSpeed: 2.0, InitialAngle: 135, Size: 6, Color: "#FF0000"},
		{Name: "Jupiter", OrbitRadius: 260, AngularSpeed: 1.5, InitialAngle: 180, Size: 12, Color: "#FFC800"},
		{Name: "Saturn", OrbitRadius: 320, AngularSpeed: 1.3, InitialAngle: 225, Size: 10, Color: "burlywood"},
		{Name: "Uranus", OrbitRadius: 380, AngularSpeed: 1.0, InitialAngle: 270, Size: 9, Color: "#00FFFF"},
		{Name: "Neptune", OrbitRadius: 440, AngularSpeed: 0.8, InitialAngle: 315, Size: 9, Color: "darkblue"},
	}
}

// ReferenceView returns the reference camera and ring settings.
func ReferenceView() View {
	return View{
		CameraDistance: ReferenceCameraDistance,
		Tilt:           Radians(ReferenceTiltDegrees),
		RingSamples:    ReferenceRingSamples,
	}
}

// ReferenceScene builds the reference scene.
func ReferenceScene() (*Scene, error) {
	return NewScene(ReferenceCentral, ReferenceBodies())
}
