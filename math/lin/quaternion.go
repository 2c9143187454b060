package lin

// Quat is a unit quaternion describing an orientation, used to apply glTF
// node rotations when baking mesh vertices into world space.
type Quat struct {
	X, Y, Z, W float32
}

// QIdent returns the identity quaternion (no rotation).
func QIdent() Quat { return Quat{0, 0, 0, 1} }

// Rotate returns v rotated by the quaternion q.
func (q Quat) Rotate(v Vec3) Vec3 {
	u := Vec3{q.X, q.Y, q.Z}
	s := q.W
	return u.Scale(2 * u.Dot(v)).
		Add(v.Scale(s*s - u.Dot(u))).
		Add(u.Cross(v).Scale(2 * s))
}

// ToMat3 expands q into its equivalent 3x3 rotation matrix, row major.
func (q Quat) ToMat3() Mat3 {
	x, y, z, w := q.X, q.Y, q.Z, q.W
	x2, y2, z2 := x+x, y+y, z+z
	xx, xy, xz := x*x2, x*y2, x*z2
	yy, yz, zz := y*y2, y*z2, z*z2
	wx, wy, wz := w*x2, w*y2, w*z2
	return Mat3{
		1 - (yy + zz), xy - wz, xz + wy,
		xy + wz, 1 - (xx + zz), yz - wx,
		xz - wy, yz + wx, 1 - (xx + yy),
	}
}

// Mat3 is a 3x3 matrix, row major. Used to rotate/scale normals without
// carrying the translation row of a full Mat4.
type Mat3 struct {
	M00, M01, M02 float32
	M10, M11, M12 float32
	M20, M21, M22 float32
}

// MulVec3 returns m*v.
func (m Mat3) MulVec3(v Vec3) Vec3 {
	return Vec3{
		m.M00*v.X + m.M01*v.Y + m.M02*v.Z,
		m.M10*v.X + m.M11*v.Y + m.M12*v.Z,
		m.M20*v.X + m.M21*v.Y + m.M22*v.Z,
	}
}

// Transpose returns the transpose of m.
func (m Mat3) Transpose() Mat3 {
	return Mat3{
		m.M00, m.M10, m.M20,
		m.M01, m.M11, m.M21,
		m.M02, m.M12, m.M22,
	}
}

// Inverse returns the inverse of m, or the identity if m is singular.
// Used to build the normal matrix (inverse-transpose) so non-uniform
// mesh-loader scaling doesn't skew transformed normals.
func (m Mat3) Inverse() Mat3 {
	det := m.M00*(m.M11*m.M22-m.M12*m.M21) -
		m.M01*(m.M10*m.M22-m.M12*m.M20) +
		m.M02*(m.M10*m.M21-m.M11*m.M20)
	if Abs(det) < Epsilon {
		return Mat3{1, 0, 0, 0, 1, 0, 0, 0, 1}
	}
	invDet := 1 / det
	return Mat3{
		(m.M11*m.M22 - m.M12*m.M21) * invDet,
		(m.M02*m.M21 - m.M01*m.M22) * invDet,
		(m.M01*m.M12 - m.M02*m.M11) * invDet,

		(m.M12*m.M20 - m.M10*m.M22) * invDet,
		(m.M00*m.M22 - m.M02*m.M20) * invDet,
		(m.M02*m.M10 - m.M00*m.M12) * invDet,

		(m.M10*m.M21 - m.M11*m.M20) * invDet,
		(m.M01*m.M20 - m.M00*m.M21) * invDet,
		(m.M00*m.M11 - m.M01*m.M10) * invDet,
	}
}
