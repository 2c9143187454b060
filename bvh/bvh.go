package bvh

import (
	"raytracer/geom"
	"raytracer/math/lin"
	"raytracer/scene"
)

// BVH is an acceleration structure over one scene's triangles. Spheres
// live outside the tree and are intersected directly.
type BVH struct {
	nodes     []Node
	triangles []triangle
	spheres   []scene.Sphere
}

// New flattens every mesh triangle in sc and builds a median-split tree
// over them. The returned BVH holds its own copy of triangle vertex
// data, so later changes to sc's meshes do not affect it; the sphere
// slice is shared with sc, not copied.
func New(sc *scene.Scene) *BVH {
	tris := flattenTriangles(sc)

	b := &BVH{triangles: tris, spheres: sc.Spheres}
	if len(tris) == 0 {
		lower, upper := lin.V3(0, 0, 0), lin.V3(0, 0, 0)
		b.nodes = []Node{{Lower: lower, Upper: upper, IsLeaf: true}}
		return b
	}
	build(&b.nodes, tris, 0, 0)
	return b
}

// NumLevels reports the fixed maximum tree depth: leaves sit at level
// NumLevels() or above, so DebugDraw's level argument ranges over
// 0..NumLevels() (0 is the root level).
func (b *BVH) NumLevels() int { return maxLevels }

// root returns the index of the tree's root node, always the last
// element of the post-order node array.
func (b *BVH) root() int { return len(b.nodes) - 1 }

// Intersect tests ray against every sphere directly and then, if the
// ray's overall bounds box is hit, descends the triangle hierarchy. It
// reports whether anything closer than ray's incoming T was found, and
// fills hit with the winning surface's shading data.
func (b *BVH) Intersect(ray *geom.Ray, hit *geom.HitInfo) bool {
	found := false
	for i := range b.spheres {
		if geom.IntersectSphere(ray, b.spheres[i].Center, b.spheres[i].Radius, hit) {
			hit.Material = b.spheres[i].Material
			found = true
		}
	}

	if len(b.nodes) == 0 {
		return found
	}
	root := b.nodes[b.root()]
	if !geom.IntersectAABB(ray, root.Lower, root.Upper) {
		return found
	}
	if b.intersectNode(b.root(), ray, hit) {
		found = true
	}
	return found
}

func (b *BVH) intersectNode(nodeIdx int, ray *geom.Ray, hit *geom.HitInfo) bool {
	node := b.nodes[nodeIdx]

	if node.IsLeaf {
		found := false
		for _, slot := range node.Indices {
			tri := b.triangles[slot]
			if geom.IntersectTriangle(ray, tri.v0, tri.v1, tri.v2, hit) {
				hit.Material = tri.material
				if hit.Material.KdTexture != nil {
					hit.Material.Kd = hit.Material.KdTexture.Texel(hit.UV)
				}
				found = true
			}
		}
		return found
	}

	leftIdx, rightIdx := node.Indices[0], node.Indices[1]
	left, right := b.nodes[leftIdx], b.nodes[rightIdx]

	// IntersectAABBEntry never mutates ray.T, so both probes see the
	// same incoming ray regardless of order.
	hitLeft, _ := geom.IntersectAABBEntry(ray, left.Lower, left.Upper)
	hitRight, _ := geom.IntersectAABBEntry(ray, right.Lower, right.Upper)

	switch {
	case hitLeft && hitRight:
		// Both children's boxes are in range; descend both and keep
		// whichever actually lands the closer hit.
		foundLeft := b.intersectNode(leftIdx, ray, hit)
		foundRight := b.intersectNode(rightIdx, ray, hit)
		return foundLeft || foundRight
	case hitLeft:
		return b.intersectNode(leftIdx, ray, hit)
	case hitRight:
		return b.intersectNode(rightIdx, ray, hit)
	default:
		return false
	}
}

// DrawSink receives the axis-aligned boxes DebugDraw reports, one box
// per DrawAABB call, for a caller to render as a wireframe overlay. color alternates so sibling
// boxes at the requested level are visually distinguishable.
type DrawSink interface {
	DrawAABB(lower, upper, color lin.Vec3)
}

// DebugDraw reports every node's bounds at the given tree level (0 is
// the root) to sink, alternating a green/red color per node so adjacent
// siblings are distinguishable.
func (b *BVH) DebugDraw(level int, sink DrawSink) {
	if len(b.nodes) == 0 {
		return
	}
	green, red := lin.V3(0, 1, 0), lin.V3(1, 0, 0)
	colors := []lin.Vec3{green, red}
	i := 0
	b.collectAtLevel(b.root(), 0, level, func(n Node) {
		sink.DrawAABB(n.Lower, n.Upper, colors[i%2])
		i++
	})
}

func (b *BVH) collectAtLevel(nodeIdx, current, target int, visit func(Node)) {
	node := b.nodes[nodeIdx]
	if current == target || node.IsLeaf {
		visit(node)
		return
	}
	b.collectAtLevel(node.Indices[0], current+1, target, visit)
	b.collectAtLevel(node.Indices[1], current+1, target, visit)
}
