// Package geom implements the ray tracer's geometric kernels: ray/plane,
// ray/triangle, ray/sphere, and ray/AABB intersection. Every kernel is a
// pure function — no state is held between calls, so the BVH can call
// them read-only from concurrent tile workers during rendering.
//
// All kernels follow one contract: a kernel only tightens ray.T and
// writes to hit when it finds a strictly closer, strictly positive-t
// intersection. Returning false leaves ray.T and hit untouched.
package geom

import (
	"math"

	"raytracer/math/lin"
	"raytracer/scene"
)

// Ray is a half-line: origin + t*direction for t in [0, T). Direction is
// not required to be unit length on input; kernels that need a unit
// direction normalize their own local copy.
type Ray struct {
	Origin    lin.Vec3
	Direction lin.Vec3
	T         float32 // nearest hit parameter found so far; starts at +Inf.
}

// NewRay returns a Ray with T initialized to +Infinity, ready to be
// intersected against a scene.
func NewRay(origin, direction lin.Vec3) Ray {
	return Ray{Origin: origin, Direction: direction, T: inf()}
}

func inf() float32 { return float32(math.Inf(1)) }

// At returns the point origin + t*direction for the ray's current T.
func (r Ray) At() lin.Vec3 { return r.Origin.Add(r.Direction.Scale(r.T)) }

// HitInfo describes the surface found at a ray's current T: the
// interpolated (or analytic) shading normal, the material to shade with
// (textures already resolved into Kd when applicable), and, for triangle
// hits, the three world-space vertices of the hit triangle.
type HitInfo struct {
	Normal      lin.Vec3
	UV          lin.Vec2
	Material    scene.Material
	Triangle    [3]lin.Vec3 // valid only when the hit was a triangle.
	HasTriangle bool
}
