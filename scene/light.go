package scene

import "raytracer/math/lin"

// Light is a closed sum type over the three supported light shapes. It is
// intentionally not an interface with per-shape behaviour: the shading
// core's per-light loop is hot, and a tagged variant that the shader
// type-switches on beats virtual dispatch through an interface method.
//
// A Light is exactly one of PointLight, SegmentLight, or
// ParallelogramLight — use a type switch on the concrete value, not a
// marker method, to discriminate.
type Light interface {
	isLight()
}

// PointLight is a single point source.
type PointLight struct {
	Position lin.Vec3
	Color    lin.Vec3
}

func (PointLight) isLight() {}

// SegmentLight is a line-segment area light. Color varies linearly
// between the two endpoints.
type SegmentLight struct {
	E0, E1 lin.Vec3
	C0, C1 lin.Vec3
}

func (SegmentLight) isLight() {}

// ParallelogramLight is a planar area light spanned by two edge vectors
// from an anchor corner. Color is bilinearly interpolated across the four
// corners C0..C3 (C0 at V0, C1 at V0+E01, C2 at V0+E02, C3 at
// V0+E01+E02).
type ParallelogramLight struct {
	V0         lin.Vec3
	E01, E02   lin.Vec3
	C0, C1, C2, C3 lin.Vec3
}

func (ParallelogramLight) isLight() {}
