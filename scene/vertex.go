// Package scene holds the ray tracer's immutable scene model: vertices,
// meshes, materials, textures, analytic spheres, lights, and the Scene
// container that owns them all. Nothing in this package traces a ray —
// see package geom for the intersection kernels and package bvh for the
// acceleration structure built over a Scene's triangles.
package scene

import "raytracer/math/lin"

// Vertex is a single mesh vertex: world-space position, world-space
// shading normal, and texture coordinate. The mesh loader (package load)
// is responsible for transforming both position and normal into world
// space before a Mesh is handed to a Scene — by the time rendering starts
// all Vertex data is read-only.
type Vertex struct {
	Position lin.Vec3
	Normal   lin.Vec3
	TexCoord lin.Vec2
}
