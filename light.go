package raytracer

import (
	"raytracer/math/lin"
	"raytracer/scene"
)

// vpl is one virtual point light generated from an area light for
// shading and shadow-testing purposes.
type vpl struct {
	Position lin.Vec3
	Color    lin.Vec3
}

// virtualPointLights expands a scene.Light into the point lights used to
// approximate it. PointLight expands to itself.
//
// SegmentLight expands to N equally spaced points along its segment,
// where N = floor(|E1-E0| * 10), each weighted by 1/10 so that a fully
// lit segment of unit length matches a single point light of the same
// total color. ParallelogramLight expands to an Nu x Nv grid across the
// parallelogram, where Nu = floor(|E01| * 20) and Nv = floor(|E02| * 20),
// each weighted by 1/400 for the same reason at the higher sample
// density a full-size unit parallelogram produces (20 * 20 = 400). Both
// counts are floored at 1 so that even a vanishingly small area light
// still contributes through a single sample.
func virtualPointLights(light scene.Light) []vpl {
	switch l := light.(type) {
	case scene.PointLight:
		return []vpl{{Position: l.Position, Color: l.Color}}

	case scene.SegmentLight:
		n := areaLightSampleCount(l.E1.Sub(l.E0).Len(), 10)
		out := make([]vpl, 0, n)
		for i := 0; i < n; i++ {
			t := sampleParam(i, n)
			out = append(out, vpl{
				Position: l.E0.Lerp(l.E1, t),
				Color:    l.C0.Lerp(l.C1, t).Scale(1.0 / 10.0),
			})
		}
		return out

	case scene.ParallelogramLight:
		nu := areaLightSampleCount(l.E01.Len(), 20)
		nv := areaLightSampleCount(l.E02.Len(), 20)
		out := make([]vpl, 0, nu*nv)
		for i := 0; i < nu; i++ {
			u := sampleParam(i, nu)
			for j := 0; j < nv; j++ {
				v := sampleParam(j, nv)
				pos := l.V0.Add(l.E01.Scale(u)).Add(l.E02.Scale(v))
				// bilinear color across the four corners, C0 at V0, C1
				// at V0+E01, C2 at V0+E02, C3 at V0+E01+E02.
				top := l.C0.Lerp(l.C1, u)
				bottom := l.C2.Lerp(l.C3, u)
				color := top.Lerp(bottom, v).Scale(1.0 / 400.0)
				out = append(out, vpl{Position: pos, Color: color})
			}
		}
		return out

	default:
		return nil
	}
}

// areaLightSampleCount derives a virtual-point-light count from an edge
// length, floored at 1 so a degenerate or tiny area light still produces
// exactly one sample instead of none.
func areaLightSampleCount(edgeLength float32, samplesPerUnit float32) int {
	n := int(edgeLength * samplesPerUnit)
	if n < 1 {
		n = 1
	}
	return n
}

// sampleParam returns the sample parameter in [0,1] for sample i of n,
// evenly spaced including both endpoints when n > 1, or the segment's
// start when n == 1.
func sampleParam(i, n int) float32 {
	if n <= 1 {
		return 0
	}
	return float32(i) / float32(n-1)
}
