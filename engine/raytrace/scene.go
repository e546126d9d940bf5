package raytrace

import "github.com/fogleman/fauxgl"

// Sphere is an immutable scene primitive: an implicit surface
// ||P - Center||^2 = Radius^2 with a flat base color.
type Sphere struct {
	Center fauxgl.Vector
	Radius float64
	Color  fauxgl.Color
}

// Camera places the eye and the viewport. The viewport is a
// ViewportW x ViewportH physical-unit rectangle at ProjectionDist
// forward (+Z) of the origin; canvas pixels project through it.
type Camera struct {
	Origin         fauxgl.Vector
	ViewportW      float64
	ViewportH      float64
	ProjectionDist float64
}

// Scene is the fixed scene description: ordered sphere and light
// sequences, camera placement and the miss color. It is built once
// and never mutated; a render pass only reads it, so one Scene is
// safe to share across goroutines.
type Scene struct {
	Spheres    []Sphere
	Lights     []Light
	Camera     Camera
	Background fauxgl.Color
}

// DemoScene returns the reference three-sphere scene with one light
// of each kind.
func DemoScene() *Scene {
	return &Scene{
		Spheres: []Sphere{
			{Center: fauxgl.V(0, -1, 3), Radius: 1, Color: fauxgl.Color{R: 1, A: 1}},
			{Center: fauxgl.V(2, 0, 4), Radius: 1, Color: fauxgl.Color{B: 1, A: 1}},
			{Center: fauxgl.V(-2, 0, 4), Radius: 1, Color: fauxgl.Color{G: 1, A: 1}},
		},
		Lights: []Light{
			AmbientLight{Intensity: 0.2},
			PointLight{Position: fauxgl.V(2, 1, 0), Intensity: 0.6},
			DirectionalLight{Direction: fauxgl.V(1, 4, 4), Intensity: 0.2},
		},
		Camera: Camera{
			Origin:         fauxgl.V(0, 0, 0),
			ViewportW:      1.0,
			ViewportH:      1.0,
			ProjectionDist: 1.0,
		},
		Background: fauxgl.Black,
	}
}
