package lin

// Mat4 is a 4x4 transform matrix, row major, used only by the mesh loader
// to compose a glTF node's translation/rotation/scale stack and bake it
// into world-space vertex positions and normals. The ray tracer core
// never multiplies matrices per ray; this type does not appear on any hot
// path.
type Mat4 struct {
	rot   Mat3
	scale Vec3
	pos   Vec3
}

// Mat4Ident returns the identity transform.
func Mat4Ident() Mat4 { return Mat4{rot: Mat3{1, 0, 0, 0, 1, 0, 0, 0, 1}, scale: V3(1, 1, 1)} }

// Mat4TRS composes a transform from a glTF-style translation, rotation
// quaternion, and per-axis scale.
func Mat4TRS(translation Vec3, rotation Quat, scale Vec3) Mat4 {
	return Mat4{rot: rotation.ToMat3(), scale: scale, pos: translation}
}

// MulPoint transforms a vertex position: scale, then rotate, then
// translate.
func (m Mat4) MulPoint(p Vec3) Vec3 {
	scaled := Vec3{p.X * m.scale.X, p.Y * m.scale.Y, p.Z * m.scale.Z}
	return m.rot.MulVec3(scaled).Add(m.pos)
}

// NormalMat3 returns the inverse-transpose of the rotation+scale part of
// m, the matrix that transforms vertex normals correctly under
// non-uniform scaling.
func (m Mat4) NormalMat3() Mat3 {
	rs := Mat3{
		m.rot.M00 * m.scale.X, m.rot.M01 * m.scale.Y, m.rot.M02 * m.scale.Z,
		m.rot.M10 * m.scale.X, m.rot.M11 * m.scale.Y, m.rot.M12 * m.scale.Z,
		m.rot.M20 * m.scale.X, m.rot.M21 * m.scale.Y, m.rot.M22 * m.scale.Z,
	}
	return rs.Inverse().Transpose()
}

// Mul returns the transform that applies a first and then m, so a node's
// world transform is parent.Mul(local).
func (m Mat4) Mul(a Mat4) Mat4 {
	// Combined rotation/scale is not separable in general, so expand to
	// the full 3x3 linear part (rot*scale) before composing.
	ml := Mat3{
		m.rot.M00 * m.scale.X, m.rot.M01 * m.scale.Y, m.rot.M02 * m.scale.Z,
		m.rot.M10 * m.scale.X, m.rot.M11 * m.scale.Y, m.rot.M12 * m.scale.Z,
		m.rot.M20 * m.scale.X, m.rot.M21 * m.scale.Y, m.rot.M22 * m.scale.Z,
	}
	al := Mat3{
		a.rot.M00 * a.scale.X, a.rot.M01 * a.scale.Y, a.rot.M02 * a.scale.Z,
		a.rot.M10 * a.scale.X, a.rot.M11 * a.scale.Y, a.rot.M12 * a.scale.Z,
		a.rot.M20 * a.scale.X, a.rot.M21 * a.scale.Y, a.rot.M22 * a.scale.Z,
	}
	combined := mulMat3(ml, al)
	pos := ml.MulVec3(a.pos).Add(m.pos)
	return Mat4{rot: combined, scale: V3(1, 1, 1), pos: pos}
}

func mulMat3(a, b Mat3) Mat3 {
	return Mat3{
		a.M00*b.M00 + a.M01*b.M10 + a.M02*b.M20,
		a.M00*b.M01 + a.M01*b.M11 + a.M02*b.M21,
		a.M00*b.M02 + a.M01*b.M12 + a.M02*b.M22,

		a.M10*b.M00 + a.M11*b.M10 + a.M12*b.M20,
		a.M10*b.M01 + a.M11*b.M11 + a.M12*b.M21,
		a.M10*b.M02 + a.M11*b.M12 + a.M12*b.M22,

		a.M20*b.M00 + a.M21*b.M10 + a.M22*b.M20,
		a.M20*b.M01 + a.M21*b.M11 + a.M22*b.M21,
		a.M20*b.M02 + a.M21*b.M12 + a.M22*b.M22,
	}
}
