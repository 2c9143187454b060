package bvh

import (
	"sort"

	"raytracer/geom"
)

// build appends nodes (post-order) for the subtree rooted at the given
// triangle set and returns the index of the node it appended for that
// subtree's root. level is the current depth (0 at the tree root);
// axis selects the split axis for this level, cycling x,y,z as level
// increases, matching the construction's per-level rotation.
func build(nodes *[]Node, tris []triangle, level, axis int) int {
	lower, upper := boundsOf(tris)

	if level == maxLevels || len(tris) <= 1 {
		*nodes = append(*nodes, Node{Lower: lower, Upper: upper, IsLeaf: true, Indices: leafIndices(tris)})
		return len(*nodes) - 1
	}

	left, right := splitMedian(tris, axis%3)

	leftChild := build(nodes, left, level+1, axis+1)
	rightChild := build(nodes, right, level+1, axis+1)

	*nodes = append(*nodes, Node{
		Lower:   lower,
		Upper:   upper,
		IsLeaf:  false,
		Indices: []int{leftChild, rightChild},
	})
	return len(*nodes) - 1
}

// leafIndices returns the position of each triangle in the BVH's owning
// triangles slice (set by flattenTriangles before build runs, via each
// triangle's slot in the original flattened order). Leaf nodes store
// these positions, not triIndex/meshIndex, so Intersect can index
// straight into the BVH's own triangle storage.
func leafIndices(tris []triangle) []int {
	out := make([]int, len(tris))
	for i, t := range tris {
		out[i] = t.slot
	}
	return out
}

// splitMedian partitions tris into two groups by the construction's
// median-split rule: sort by centroid along axis, find the triangle at
// the median position, and pick that triangle's extreme vertex along
// axis as the splitting plane. A triangle joins the first group only if
// all three of its vertices lie on the near side of that plane; every
// other triangle -- including ones straddling the plane -- goes to the
// second group. This is asymmetric by design: axis 0 uses the maximum
// vertex and a <= predicate, axes 1 and 2 use the minimum vertex and a
// >= predicate.
func splitMedian(tris []triangle, axis int) (first, second []triangle) {
	sorted := make([]triangle, len(tris))
	copy(sorted, tris)
	sort.Slice(sorted, func(i, j int) bool {
		return centroid(sorted[i], axis) < centroid(sorted[j], axis)
	})
	median := sorted[len(sorted)/2]

	var threshold float32
	useMax := axis == 0
	if useMax {
		threshold = maxVertexCoord(median, axis)
	} else {
		threshold = minVertexCoord(median, axis)
	}

	firstSet := make(map[int]bool, len(tris))
	for _, t := range tris {
		c0, c1, c2 := coord(t.v0, axis), coord(t.v1, axis), coord(t.v2, axis)
		var onNearSide bool
		if useMax {
			onNearSide = c0 <= threshold && c1 <= threshold && c2 <= threshold
		} else {
			onNearSide = c0 >= threshold && c1 >= threshold && c2 >= threshold
		}
		if onNearSide {
			first = append(first, t)
			firstSet[t.slot] = true
		}
	}
	for _, t := range tris {
		if !firstSet[t.slot] {
			second = append(second, t)
		}
	}
	return first, second
}

func coord(v geom.Vertex, axis int) float32 {
	switch axis {
	case 0:
		return v.Position.X
	case 1:
		return v.Position.Y
	default:
		return v.Position.Z
	}
}

// maxVertexCoord returns the axis coordinate of whichever of the
// triangle's three vertices has the greatest value along axis, with
// v2 as the tie-break default, matching the reference construction.
func maxVertexCoord(t triangle, axis int) float32 {
	c0, c1, c2 := coord(t.v0, axis), coord(t.v1, axis), coord(t.v2, axis)
	if c0 > c1 && c0 > c2 {
		return c0
	}
	if c1 > c0 && c1 > c2 {
		return c1
	}
	return c2
}

// minVertexCoord is maxVertexCoord's mirror for the y/z split axes.
func minVertexCoord(t triangle, axis int) float32 {
	c0, c1, c2 := coord(t.v0, axis), coord(t.v1, axis), coord(t.v2, axis)
	if c0 < c1 && c0 < c2 {
		return c0
	}
	if c1 < c0 && c1 < c2 {
		return c1
	}
	return c2
}
