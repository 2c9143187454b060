package scene

import "raytracer/math/lin"

// Material describes how a surface responds to light: Lambertian diffuse
// color, Phong specular color and exponent, and an optional transparency
// (carried for completeness; the shading core does not implement
// refraction). An optional diffuse texture overrides Kd per-texel once a
// hit's UV is known.
type Material struct {
	Kd          lin.Vec3
	Ks          lin.Vec3
	Shininess   float32
	Transparency float32
	KdTexture   *Image // nil if untextured
}

// Triangle names three Vertex indices within a Mesh's Vertices slice.
// Indices are 0-based and unique within the triangle.
type Triangle struct {
	I, J, K int
}

// Mesh is an ordered set of vertices and the index-triplets that connect
// them into triangles, plus the single Material every triangle in the mesh
// shares. Meshes are owned by a Scene and are read-only once the Scene is
// built.
type Mesh struct {
	Vertices  []Vertex
	Triangles []Triangle
	Material  Material
}
