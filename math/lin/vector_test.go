package lin

import "testing"

func TestVec3Add(t *testing.T) {
	got := V3(1, 2, 3).Add(V3(4, 5, 6))
	want := V3(5, 7, 9)
	if !got.Eq(want) {
		t.Fatalf("got %v want %v", got, want)
	}
}

func TestVec3CrossDot(t *testing.T) {
	x := V3(1, 0, 0)
	y := V3(0, 1, 0)
	z := x.Cross(y)
	if !z.Aeq(V3(0, 0, 1)) {
		t.Fatalf("cross(x,y) = %v, want z axis", z)
	}
	if x.Dot(y) != 0 {
		t.Fatalf("dot(x,y) = %v, want 0", x.Dot(y))
	}
	if x.Dot(x) != 1 {
		t.Fatalf("dot(x,x) = %v, want 1", x.Dot(x))
	}
}

func TestVec3Unit(t *testing.T) {
	v := V3(3, 4, 0).Unit()
	if !Aeq(v.Len(), 1) {
		t.Fatalf("unit length = %v, want 1", v.Len())
	}
	zero := Vec3{}.Unit()
	if zero != (Vec3{}) {
		t.Fatalf("unit of zero vector should stay zero, got %v", zero)
	}
}

func TestVec3IsFinite(t *testing.T) {
	if !V3(1, 2, 3).IsFinite() {
		t.Fatal("finite vector reported as non-finite")
	}
	nan := V3(float32(nanF()), 0, 0)
	if nan.IsFinite() {
		t.Fatal("NaN vector reported as finite")
	}
}

func nanF() float64 {
	var zero float64
	return zero / zero
}

func TestVec3Clamp01(t *testing.T) {
	v := V3(-1, 0.5, 2).Clamp01()
	if !v.Aeq(V3(0, 0.5, 1)) {
		t.Fatalf("clamp01 = %v", v)
	}
}
