package raytrace

import (
	"math"

	"github.com/fogleman/fauxgl"
)

// TraceRay scans every sphere in scene order and resolves the nearest
// hit within [tMin, tMax]. Both roots of each intersection are
// candidates; a root is accepted if it is not the Inf sentinel, lies
// in range, and is strictly closer than the best so far (so the first
// sphere in scene order wins exact ties). A miss returns the scene's
// background color; a hit returns the sphere's base color scaled per
// channel by the lighting factor clamped to [0,1], alpha left opaque.
func (s *Scene) TraceRay(r Ray, tMin, tMax float64) fauxgl.Color {
	closestT := math.Inf(1)
	var closest *Sphere

	for i := range s.Spheres {
		sp := &s.Spheres[i]
		hit := IntersectRaySphere(r, *sp)
		if hit.Miss() {
			continue
		}
		if hit.T1 >= tMin && hit.T1 <= tMax && hit.T1 < closestT {
			closestT = hit.T1
			closest = sp
		}
		if hit.T2 >= tMin && hit.T2 <= tMax && hit.T2 < closestT {
			closestT = hit.T2
			closest = sp
		}
	}

	if closest == nil {
		return s.Background
	}

	point := r.At(closestT)
	factor := clamp01(s.ComputeLighting(point, closest.Center))
	lit := closest.Color.MulScalar(factor)
	lit.A = closest.Color.A
	return lit
}

func clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}
