package raytracer

import (
	"math"

	"raytracer/math/lin"
)

// Camera is a pinhole perspective camera: an eye point and an
// orthonormal basis (right, up, forward) derived from eye/center/up/fov,
// following the same basis-vector construction eg/rt.go uses for its
// business-card ray tracer, generalized to an explicit look-at target
// and field of view instead of a single hardcoded direction.
type Camera struct {
	Eye                   lin.Vec3
	right, up, forward    lin.Vec3
	halfWidth, halfHeight float32 // focal-plane half-extents at forward=1
}

// NewCamera builds a Camera looking from eye toward center, with up as
// the approximate up direction (it is re-orthogonalized against the
// view direction) and fovDegrees as the vertical field of view.
func NewCamera(eye, center, up lin.Vec3, fovDegrees, aspect float32) Camera {
	forward := center.Sub(eye).Unit()
	right := forward.Cross(up).Unit()
	trueUp := right.Cross(forward).Unit()

	halfHeight := float32(math.Tan(float64(fovDegrees * 0.5 * degToRad)))
	halfWidth := halfHeight * aspect

	return Camera{
		Eye: eye, right: right, up: trueUp, forward: forward,
		halfWidth: halfWidth, halfHeight: halfHeight,
	}
}

const degToRad = float32(3.14159265358979323846) / 180

// RayThrough returns the world-space ray direction for a sample point
// (u,v) in normalized device coordinates, where u and v each range over
// [-1, 1] with (0,0) at the image center and +v up.
func (c Camera) RayThrough(u, v float32) lin.Vec3 {
	dir := c.forward.
		Add(c.right.Scale(u * c.halfWidth)).
		Add(c.up.Scale(v * c.halfHeight))
	return dir.Unit()
}
