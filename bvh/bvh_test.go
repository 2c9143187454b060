package bvh

import (
	"math/rand"
	"testing"

	"raytracer/geom"
	"raytracer/math/lin"
	"raytracer/scene"
)

// gridScene returns a scene of n non-overlapping unit quads (two
// triangles each) spread along the x-axis, each with a distinct material
// Kd so a test can identify which quad a ray landed on.
func gridScene(n int) *scene.Scene {
	sc := scene.New()
	for i := 0; i < n; i++ {
		x := float32(i) * 3
		kd := lin.V3(float32(i)/float32(n), 0, 0)
		verts := []scene.Vertex{
			{Position: lin.V3(x-1, 0, -1), Normal: lin.V3(0, 1, 0)},
			{Position: lin.V3(x+1, 0, -1), Normal: lin.V3(0, 1, 0)},
			{Position: lin.V3(x+1, 0, 1), Normal: lin.V3(0, 1, 0)},
			{Position: lin.V3(x-1, 0, 1), Normal: lin.V3(0, 1, 0)},
		}
		mesh := scene.Mesh{
			Vertices: verts,
			Triangles: []scene.Triangle{
				{I: 0, J: 1, K: 2},
				{I: 0, J: 2, K: 3},
			},
			Material: scene.Material{Kd: kd},
		}
		sc.Meshes = append(sc.Meshes, mesh)
	}
	return sc
}

func TestBVHEveryNodeBoundsContainsItsTriangles(t *testing.T) {
	sc := gridScene(20)
	b := New(sc)

	var walk func(idx int)
	walk = func(idx int) {
		n := b.nodes[idx]
		if n.IsLeaf {
			for _, slot := range n.Indices {
				tri := b.triangles[slot]
				for _, p := range [3]lin.Vec3{tri.v0.Position, tri.v1.Position, tri.v2.Position} {
					if !boundsContain(n.Lower, n.Upper, p) {
						t.Fatalf("leaf bounds %v..%v do not contain vertex %v", n.Lower, n.Upper, p)
					}
				}
			}
			return
		}
		left, right := b.nodes[n.Indices[0]], b.nodes[n.Indices[1]]
		for _, child := range []Node{left, right} {
			if !boundsContain(n.Lower, n.Upper, child.Lower) || !boundsContain(n.Lower, n.Upper, child.Upper) {
				t.Fatalf("parent bounds %v..%v do not enclose child bounds %v..%v", n.Lower, n.Upper, child.Lower, child.Upper)
			}
		}
		walk(n.Indices[0])
		walk(n.Indices[1])
	}
	walk(b.root())
}

// bruteForce tests ray against every sphere and triangle in sc, tightening
// ray.T to the nearest hit.
func bruteForce(sc *scene.Scene, ray *geom.Ray) (geom.HitInfo, bool) {
	var hit geom.HitInfo
	found := false
	for _, sphere := range sc.Spheres {
		if geom.IntersectSphere(ray, sphere.Center, sphere.Radius, &hit) {
			hit.Material = sphere.Material
			found = true
		}
	}
	for _, mesh := range sc.Meshes {
		for _, tri := range mesh.Triangles {
			v0 := toGeomVertex(mesh.Vertices[tri.I])
			v1 := toGeomVertex(mesh.Vertices[tri.J])
			v2 := toGeomVertex(mesh.Vertices[tri.K])
			if geom.IntersectTriangle(ray, v0, v1, v2, &hit) {
				hit.Material = mesh.Material
				found = true
			}
		}
	}
	return hit, found
}

func TestBVHTraversalMatchesBruteForce(t *testing.T) {
	sc := gridScene(30)
	b := New(sc)

	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 200; i++ {
		x := float32(rng.Intn(100)-10) * 0.9
		origin := lin.V3(x, 5, float32(rng.Intn(5))-2)
		ray := geom.NewRay(origin, lin.V3(0, -1, 0))
		bvhRay := ray

		wantHit, wantFound := bruteForce(sc, &ray)
		var gotHit geom.HitInfo
		gotFound := b.Intersect(&bvhRay, &gotHit)

		if gotFound != wantFound {
			t.Fatalf("ray from %v: bvh found=%v, brute force found=%v", origin, gotFound, wantFound)
		}
		if wantFound && !lin.Aeq(bvhRay.T, ray.T) {
			t.Errorf("ray from %v: bvh T=%v, brute force T=%v", origin, bvhRay.T, ray.T)
		}
		if wantFound && !gotHit.Material.Kd.Aeq(wantHit.Material.Kd) {
			t.Errorf("ray from %v: bvh material Kd=%v, brute force Kd=%v", origin, gotHit.Material.Kd, wantHit.Material.Kd)
		}
	}
}

func TestBVHEmptySceneMisses(t *testing.T) {
	b := New(scene.New())
	ray := geom.NewRay(lin.V3(0, 5, 0), lin.V3(0, -1, 0))
	var hit geom.HitInfo
	if b.Intersect(&ray, &hit) {
		t.Errorf("empty scene must never report a hit")
	}
}

func TestBVHNumLevelsIsFixed(t *testing.T) {
	b := New(gridScene(5))
	if b.NumLevels() != 4 {
		t.Errorf("NumLevels() = %d, want 4", b.NumLevels())
	}
}

// fakeSink records every box DebugDraw reports.
type fakeSink struct {
	boxes int
}

func (f *fakeSink) DrawAABB(lower, upper, color lin.Vec3) { f.boxes++ }

func TestBVHDebugDrawVisitsLeavesWhenLevelExceedsDepth(t *testing.T) {
	b := New(gridScene(10))
	sink := &fakeSink{}
	b.DebugDraw(10, sink)
	if sink.boxes == 0 {
		t.Errorf("expected DebugDraw to report at least the leaf nodes")
	}
}
