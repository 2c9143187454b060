package bvh

import "raytracer/math/lin"

// Node is one entry in the BVH's flat, post-order node array. Leaf nodes
// index into the tree's triangle list; internal nodes index into the
// node array itself, naming their two children. The root is always the
// last element appended during construction.
type Node struct {
	Lower, Upper lin.Vec3
	IsLeaf       bool
	Indices      []int
}

// maxLevels is the fixed tree depth: the root is at level 0 and every
// node at level 4 is forced to be a leaf regardless of how many
// triangles remain, so the tree has at most 2^4 = 16 leaves.
const maxLevels = 4

func boundsContain(lower, upper, p lin.Vec3) bool {
	return p.X >= lower.X && p.X <= upper.X &&
		p.Y >= lower.Y && p.Y <= upper.Y &&
		p.Z >= lower.Z && p.Z <= upper.Z
}
