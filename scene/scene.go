package scene

// Scene is the full set of renderable content: triangle meshes, analytic
// spheres, and lights. A Scene is immutable from the moment rendering
// starts — the BVH, material data, and texture data are all published
// read-only before the first tile worker is spawned (see package
// raytracer's Render).
type Scene struct {
	Meshes  []Mesh
	Spheres []Sphere
	Lights  []Light
}

// New returns an empty Scene ready to be populated by a loader or by
// literal construction in a test.
func New() *Scene {
	return &Scene{}
}
