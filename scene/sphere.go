package scene

import "raytracer/math/lin"

// Sphere is an analytic primitive intersected directly, outside the BVH
// (the BVH only ever indexes triangles).
type Sphere struct {
	Center lin.Vec3
	Radius float32
	Material Material
}
