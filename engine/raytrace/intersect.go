package raytrace

import (
	"math"

	"github.com/fogleman/fauxgl"
)

// Ray is origin + t*Direction. Directions are used as-is, never
// normalized: t-values are in units of the direction's length, not
// physical distance. Built fresh per pixel.
type Ray struct {
	Origin    fauxgl.Vector
	Direction fauxgl.Vector
}

// At returns the point at parametric distance t along the ray.
func (r Ray) At(t float64) fauxgl.Vector {
	return r.Origin.Add(r.Direction.MulScalar(t))
}

// RayIntersection holds the two parametric distances where a ray
// meets a sphere. Both are +Inf when the quadratic has no real roots;
// the sentinel is an always-excluded value, not an error. T1 >= T2
// whenever both are finite.
type RayIntersection struct {
	T1, T2 float64
}

// Miss reports whether the intersection carries the no-hit sentinel.
func (ri RayIntersection) Miss() bool {
	return math.IsInf(ri.T1, 1) && math.IsInf(ri.T2, 1)
}

// IntersectRaySphere solves the quadratic formed by substituting the
// ray equation into the sphere's implicit equation. Degenerate input
// (zero-length direction, zero radius) is not guarded; IEEE inf/NaN
// propagate and such rays simply never pass the caller's range check.
func IntersectRaySphere(r Ray, s Sphere) RayIntersection {
	oc := r.Origin.Sub(s.Center)

	a := r.Direction.Dot(r.Direction)
	b := 2 * oc.Dot(r.Direction)
	c := oc.Dot(oc) - s.Radius*s.Radius

	discriminant := b*b - 4*a*c
	if discriminant < 0 {
		return RayIntersection{math.Inf(1), math.Inf(1)}
	}

	sqrtD := math.Sqrt(discriminant)
	return RayIntersection{
		T1: (-b + sqrtD) / (2 * a),
		T2: (-b - sqrtD) / (2 * a),
	}
}
