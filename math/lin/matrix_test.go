package lin

import "testing"

func TestMat4IdentIsNoOp(t *testing.T) {
	m := Mat4Ident()
	p := V3(1, 2, 3)
	if got := m.MulPoint(p); !got.Aeq(p) {
		t.Fatalf("identity transform moved point: %v", got)
	}
}

func TestMat4TRSTranslate(t *testing.T) {
	m := Mat4TRS(V3(1, 0, 0), QIdent(), V3(1, 1, 1))
	got := m.MulPoint(V3(0, 0, 0))
	if !got.Aeq(V3(1, 0, 0)) {
		t.Fatalf("translate = %v, want (1,0,0)", got)
	}
}

func TestMat4TRSScale(t *testing.T) {
	m := Mat4TRS(Vec3{}, QIdent(), V3(2, 3, 4))
	got := m.MulPoint(V3(1, 1, 1))
	if !got.Aeq(V3(2, 3, 4)) {
		t.Fatalf("scale = %v, want (2,3,4)", got)
	}
}

func TestMat4NormalMatUniformScaleIsRotationOnly(t *testing.T) {
	m := Mat4TRS(V3(5, 5, 5), QIdent(), V3(2, 2, 2))
	n := m.NormalMat3()
	// uniform scale: inverse-transpose of (rot*2I) is rot*0.5, direction preserved
	got := n.MulVec3(V3(0, 0, 1)).Unit()
	if !got.Aeq(V3(0, 0, 1)) {
		t.Fatalf("normal direction changed under uniform scale: %v", got)
	}
}

func TestMat3InverseOfIdentity(t *testing.T) {
	id := Mat3{1, 0, 0, 0, 1, 0, 0, 0, 1}
	inv := id.Inverse()
	if inv != id {
		t.Fatalf("inverse of identity = %v", inv)
	}
}
