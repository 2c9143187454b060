// Package bvh builds and traverses a median-split bounding volume
// hierarchy over a scene's triangles. Spheres are not indexed by the
// tree; they are few enough in practice that Intersect tests them
// directly before descending into the hierarchy.
package bvh

import (
	"math"

	"raytracer/geom"
	"raytracer/math/lin"
	"raytracer/scene"
)

// triangle is one flattened, mesh-independent triangle record. Vertex
// positions are duplicated here rather than referenced through the
// mesh's index buffer so that construction and traversal never need to
// walk back through scene.Mesh once the tree is built.
type triangle struct {
	meshIndex int
	triIndex  int // index of this triangle within its own mesh
	slot      int // stable position in the BVH's flattened triangle list
	v0, v1, v2 geom.Vertex
	material  scene.Material
}

func centroid(t triangle, axis int) float32 {
	switch axis {
	case 0:
		return (t.v0.Position.X + t.v1.Position.X + t.v2.Position.X) / 3
	case 1:
		return (t.v0.Position.Y + t.v1.Position.Y + t.v2.Position.Y) / 3
	default:
		return (t.v0.Position.Z + t.v1.Position.Z + t.v2.Position.Z) / 3
	}
}

func flattenTriangles(sc *scene.Scene) []triangle {
	var out []triangle
	slot := 0
	for mi, mesh := range sc.Meshes {
		for ti, tri := range mesh.Triangles {
			out = append(out, triangle{
				meshIndex: mi,
				triIndex:  ti,
				slot:      slot,
				v0:        toGeomVertex(mesh.Vertices[tri.I]),
				v1:        toGeomVertex(mesh.Vertices[tri.J]),
				v2:        toGeomVertex(mesh.Vertices[tri.K]),
				material:  mesh.Material,
			})
			slot++
		}
	}
	return out
}

func toGeomVertex(v scene.Vertex) geom.Vertex {
	return geom.Vertex{Position: v.Position, Normal: v.Normal, TexCoord: v.TexCoord}
}

func boundsOf(tris []triangle) (lower, upper lin.Vec3) {
	inf := float32(math.Inf(1))
	lower = lin.V3(inf, inf, inf)
	upper = lin.V3(-inf, -inf, -inf)
	for _, t := range tris {
		for _, p := range [3]lin.Vec3{t.v0.Position, t.v1.Position, t.v2.Position} {
			lower = lower.Min(p)
			upper = upper.Max(p)
		}
	}
	return lower, upper
}
