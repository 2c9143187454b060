package geom

import "raytracer/math/lin"

// Epsilon is the shadow-ray and self-intersection offset used throughout
// the package: a hit is only accepted at t > Epsilon so that secondary
// rays spawned from a surface do not re-intersect that same surface due
// to floating point rounding.
const Epsilon float32 = 1e-4

// IntersectPlane tests ray against the infinite plane through point with
// the given unit normal. On a closer hit it tightens ray.T and returns
// true; it does not touch hit — callers that need shading data derive it
// themselves (IntersectTriangle does this internally).
func IntersectPlane(ray *Ray, point, normal lin.Vec3) bool {
	denom := normal.Dot(ray.Direction)
	if lin.AeqZ(denom) {
		return false // ray parallel to plane
	}
	t := normal.Dot(point.Sub(ray.Origin)) / denom
	if t <= Epsilon || t >= ray.T {
		return false
	}
	ray.T = t
	return true
}

// IntersectTriangle tests ray against the triangle v0,v1,v2. It follows
// the plane-then-two-barycentric-sign-test method: once the ray is known
// to hit the triangle's plane, only the signs of two barycentric
// coordinates (beta, gamma) and their sum need checking — there is no
// need to also separately verify beta<=1 or gamma<=1, since beta+gamma<=1
// combined with beta>=0, gamma>=0 already implies each stays in [0,1].
//
// On a strictly closer hit, ray.T is tightened, hit.Normal/UV/Triangle
// are filled from the barycentric-interpolated vertex attributes, and
// true is returned.
func IntersectTriangle(ray *Ray, v0, v1, v2 Vertex, hit *HitInfo) bool {
	e1 := v1.Position.Sub(v0.Position)
	e2 := v2.Position.Sub(v0.Position)
	n := e1.Cross(e2)
	nLenSq := n.LenSq()
	if lin.AeqZ(nLenSq) {
		return false // degenerate triangle
	}
	planeNormal := n.Unit()

	denom := planeNormal.Dot(ray.Direction)
	if lin.AeqZ(denom) {
		return false
	}
	t := planeNormal.Dot(v0.Position.Sub(ray.Origin)) / denom
	if t <= Epsilon || t >= ray.T {
		return false
	}

	p := ray.Origin.Add(ray.Direction.Scale(t))
	vp0 := p.Sub(v0.Position)

	// Two-barycentric sign test: beta weights v1, gamma weights v2. Only
	// their signs and beta+gamma<=1 need checking, per the function doc.
	beta := n.Dot(vp0.Cross(e2)) / nLenSq
	gamma := n.Dot(e1.Cross(vp0)) / nLenSq
	alpha := float32(1) - beta - gamma
	if beta < 0 || gamma < 0 || alpha < 0 {
		return false
	}

	ray.T = t
	hit.Normal = v0.Normal.Scale(alpha).Add(v1.Normal.Scale(beta)).Add(v2.Normal.Scale(gamma)).Unit()
	hit.UV = lin.Vec2{
		X: v0.TexCoord.X*alpha + v1.TexCoord.X*beta + v2.TexCoord.X*gamma,
		Y: v0.TexCoord.Y*alpha + v1.TexCoord.Y*beta + v2.TexCoord.Y*gamma,
	}
	hit.Triangle = [3]lin.Vec3{v0.Position, v1.Position, v2.Position}
	hit.HasTriangle = true
	return true
}

// Vertex is the subset of scene.Vertex the triangle kernel interpolates.
// Declared locally so geom does not need to import the full scene.Vertex
// shape for a kernel signature — bvh constructs this from scene.Vertex.
type Vertex struct {
	Position lin.Vec3
	Normal   lin.Vec3
	TexCoord lin.Vec2
}

// IntersectSphere tests ray against a sphere of the given center and
// radius via the standard quadratic. On the nearest t in (Epsilon,
// ray.T) with a non-negative discriminant, ray.T is tightened, hit.Normal is
// set to the outward radial normal at the hit point, and true is
// returned.
func IntersectSphere(ray *Ray, center lin.Vec3, radius float32, hit *HitInfo) bool {
	oc := ray.Origin.Sub(center)
	a := ray.Direction.Dot(ray.Direction)
	if lin.AeqZ(a) {
		return false
	}
	b := 2 * oc.Dot(ray.Direction)
	c := oc.Dot(oc) - radius*radius
	disc := b*b - 4*a*c
	if disc < 0 {
		return false
	}
	sq := lin.Sqrt(disc)
	t0 := (-b - sq) / (2 * a)
	t1 := (-b + sq) / (2 * a)

	t := t0
	if t <= Epsilon {
		t = t1
	}
	if t <= Epsilon || t >= ray.T {
		return false
	}

	ray.T = t
	p := ray.Origin.Add(ray.Direction.Scale(t))
	hit.Normal = p.Sub(center).Scale(1 / radius)
	hit.HasTriangle = false
	return true
}

// IntersectAABB reports whether ray passes through the axis-aligned box
// [lower, upper] before its current T, using the slab method: each axis
// narrows a running [tMin, tMax] interval, and the box is hit iff the
// interval survives non-empty and overlaps [0, ray.T]. A legacy
// 12-triangle box test is deliberately not used here; the slab test is
// the one BVH traversal calls on every internal node, so it needs to be
// the cheap one.
func IntersectAABB(ray *Ray, lower, upper lin.Vec3) bool {
	hit, _ := aabbSlabs(ray, lower, upper)
	return hit
}

// IntersectAABBEntry behaves like IntersectAABB but also reports the near
// slab distance tEntry, and never mutates ray.T. BVH traversal calls it
// to probe child boxes without disturbing the ray's recorded closest
// hit; it ignores tEntry and does not order the children by it.
func IntersectAABBEntry(ray *Ray, lower, upper lin.Vec3) (hit bool, tEntry float32) {
	return aabbSlabs(ray, lower, upper)
}

func aabbSlabs(ray *Ray, lower, upper lin.Vec3) (hit bool, tMin float32) {
	tMin, tMax := float32(0), ray.T

	ox, dx := ray.Origin.X, ray.Direction.X
	if !slab(ox, dx, lower.X, upper.X, &tMin, &tMax) {
		return false, tMin
	}
	oy, dy := ray.Origin.Y, ray.Direction.Y
	if !slab(oy, dy, lower.Y, upper.Y, &tMin, &tMax) {
		return false, tMin
	}
	oz, dz := ray.Origin.Z, ray.Direction.Z
	if !slab(oz, dz, lower.Z, upper.Z, &tMin, &tMax) {
		return false, tMin
	}
	return tMin <= tMax, tMin
}

func slab(origin, dir, lo, hi float32, tMin, tMax *float32) bool {
	if lin.AeqZ(dir) {
		return origin >= lo && origin <= hi
	}
	invD := 1 / dir
	t0 := (lo - origin) * invD
	t1 := (hi - origin) * invD
	if t0 > t1 {
		t0, t1 = t1, t0
	}
	if t0 > *tMin {
		*tMin = t0
	}
	if t1 < *tMax {
		*tMax = t1
	}
	return *tMin <= *tMax
}
