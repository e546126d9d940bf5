package raytrace

import "github.com/fogleman/fauxgl"

// Light is one element of the scene's fixed light sequence.
// Contribution returns the scalar intensity the light adds at a
// surface point with the given outward normal. Neither vector needs
// to be normalized; cosine terms divide by both lengths.
type Light interface {
	Contribution(point, normal fauxgl.Vector) float64
}

// AmbientLight contributes its intensity everywhere, regardless of
// geometry.
type AmbientLight struct {
	Intensity float64
}

func (l AmbientLight) Contribution(point, normal fauxgl.Vector) float64 {
	return l.Intensity
}

// PointLight radiates from a position with no distance falloff.
type PointLight struct {
	Position  fauxgl.Vector
	Intensity float64
}

func (l PointLight) Contribution(point, normal fauxgl.Vector) float64 {
	beam := l.Position.Sub(point)
	return l.Intensity * cosBetween(normal, beam)
}

// DirectionalLight shines along a stored direction (toward the light,
// need not be pre-normalized) from infinitely far away.
type DirectionalLight struct {
	Direction fauxgl.Vector
	Intensity float64
}

func (l DirectionalLight) Contribution(point, normal fauxgl.Vector) float64 {
	return l.Intensity * cosBetween(normal, l.Direction)
}

// cosBetween is the cosine of the angle between two vectors. The
// result is deliberately not clamped at zero: a light behind the
// surface subtracts from the total. Non-physical, but it is the
// reference behavior and callers depend on it.
func cosBetween(a, b fauxgl.Vector) float64 {
	return a.Dot(b) / (a.Length() * b.Length())
}

// ComputeLighting accumulates every light's contribution at a surface
// point on the sphere centered at sphereCenter; the outward normal is
// point - sphereCenter. The sum is unbounded in both directions —
// clamping to [0,1] happens at color-multiply time in TraceRay.
func (s *Scene) ComputeLighting(point, sphereCenter fauxgl.Vector) float64 {
	normal := point.Sub(sphereCenter)

	total := 0.0
	for _, l := range s.Lights {
		total += l.Contribution(point, normal)
	}
	return total
}
