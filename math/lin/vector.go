package lin

// Vector performs the 2 and 3 element vector math needed for ray tracing:
// positions, directions, normals, and texture coordinates.

// Vec3 is a 3 element vector: a position, direction, normal, or color.
type Vec3 struct {
	X float32
	Y float32
	Z float32
}

// V3 is a convenience constructor for a Vec3 value.
func V3(x, y, z float32) Vec3 { return Vec3{X: x, Y: y, Z: z} }

// Eq (==) returns true if every element of v equals the corresponding
// element of a.
func (v Vec3) Eq(a Vec3) bool { return v.X == a.X && v.Y == a.Y && v.Z == a.Z }

// Aeq (~=) almost-equals returns true if every element of v is close
// enough to the corresponding element of a that the difference doesn't
// matter.
func (v Vec3) Aeq(a Vec3) bool { return Aeq(v.X, a.X) && Aeq(v.Y, a.Y) && Aeq(v.Z, a.Z) }

// Add returns v+a.
func (v Vec3) Add(a Vec3) Vec3 { return Vec3{v.X + a.X, v.Y + a.Y, v.Z + a.Z} }

// Sub returns v-a.
func (v Vec3) Sub(a Vec3) Vec3 { return Vec3{v.X - a.X, v.Y - a.Y, v.Z - a.Z} }

// Scale returns v scaled by s.
func (v Vec3) Scale(s float32) Vec3 { return Vec3{v.X * s, v.Y * s, v.Z * s} }

// Neg returns -v.
func (v Vec3) Neg() Vec3 { return Vec3{-v.X, -v.Y, -v.Z} }

// Mul returns the component-wise (Hadamard) product of v and a. Used
// throughout shading for light-color*material-color terms.
func (v Vec3) Mul(a Vec3) Vec3 { return Vec3{v.X * a.X, v.Y * a.Y, v.Z * a.Z} }

// Dot returns the dot product of v and a.
func (v Vec3) Dot(a Vec3) float32 { return v.X*a.X + v.Y*a.Y + v.Z*a.Z }

// Cross returns the cross product v x a.
func (v Vec3) Cross(a Vec3) Vec3 {
	return Vec3{
		v.Y*a.Z - v.Z*a.Y,
		v.Z*a.X - v.X*a.Z,
		v.X*a.Y - v.Y*a.X,
	}
}

// LenSq returns the squared length of v. Cheaper than Len when only
// relative magnitude matters.
func (v Vec3) LenSq() float32 { return v.Dot(v) }

// Len returns the length of v.
func (v Vec3) Len() float32 { return Sqrt(v.LenSq()) }

// Unit returns v normalized to unit length. The zero vector is returned
// unchanged rather than producing NaNs.
func (v Vec3) Unit() Vec3 {
	l := v.Len()
	if l < Epsilon {
		return v
	}
	return v.Scale(1 / l)
}

// Lerp returns the linear interpolation of v to a by the given ratio.
func (v Vec3) Lerp(a Vec3, ratio float32) Vec3 {
	return Vec3{Lerp(v.X, a.X, ratio), Lerp(v.Y, a.Y, ratio), Lerp(v.Z, a.Z, ratio)}
}

// Min returns the component-wise minimum of v and a.
func (v Vec3) Min(a Vec3) Vec3 { return Vec3{Min(v.X, a.X), Min(v.Y, a.Y), Min(v.Z, a.Z)} }

// Max returns the component-wise maximum of v and a.
func (v Vec3) Max(a Vec3) Vec3 { return Vec3{Max(v.X, a.X), Max(v.Y, a.Y), Max(v.Z, a.Z)} }

// Clamp01 restricts every element of v to [0,1]. Used to keep shaded
// radiance values displayable before quantizing to 8 bits per channel.
func (v Vec3) Clamp01() Vec3 {
	return Vec3{Clamp(v.X, 0, 1), Clamp(v.Y, 0, 1), Clamp(v.Z, 0, 1)}
}

// IsFinite returns false if any element is NaN or +/-Inf.
func (v Vec3) IsFinite() bool {
	return !isNaNorInf(v.X) && !isNaNorInf(v.Y) && !isNaNorInf(v.Z)
}

func isNaNorInf(x float32) bool { return x != x || x > maxFinite || x < -maxFinite }

const maxFinite = 3.40282346638528859811704183484516925440e+38 // largest finite float32

// Vec2 is a 2 element vector: a texture coordinate.
type Vec2 struct {
	X float32
	Y float32
}

// V2 is a convenience constructor for a Vec2 value.
func V2(x, y float32) Vec2 { return Vec2{X: x, Y: y} }

// Add returns v+a.
func (v Vec2) Add(a Vec2) Vec2 { return Vec2{v.X + a.X, v.Y + a.Y} }

// Scale returns v scaled by s.
func (v Vec2) Scale(s float32) Vec2 { return Vec2{v.X * s, v.Y * s} }
