package scene

import (
	"testing"

	"raytracer/math/lin"
)

func TestImageTexelNearestNeighbour(t *testing.T) {
	img := &Image{
		Width:  2,
		Height: 2,
		Pixels: []lin.Vec3{
			lin.V3(1, 0, 0), lin.V3(0, 1, 0), // row 0: (0,0) (1,0)
			lin.V3(0, 0, 1), lin.V3(1, 1, 1), // row 1: (0,1) (1,1)
		},
	}
	cases := []struct {
		uv   lin.Vec2
		want lin.Vec3
	}{
		{lin.V2(0, 0), lin.V3(1, 0, 0)},
		{lin.V2(0.9, 0), lin.V3(0, 1, 0)},
		{lin.V2(0, 0.9), lin.V3(0, 0, 1)},
		{lin.V2(0.9, 0.9), lin.V3(1, 1, 1)},
	}
	for _, c := range cases {
		if got := img.Texel(c.uv); !got.Eq(c.want) {
			t.Errorf("Texel(%v) = %v, want %v", c.uv, got, c.want)
		}
	}
}
