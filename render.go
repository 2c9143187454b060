package raytracer

import (
	"runtime"
	"sync"

	"raytracer/bvh"
	"raytracer/geom"
	"raytracer/math/lin"
	"raytracer/scene"
)

// tile is one square region of the output image assigned as a single
// unit of work to a scheduler worker.
type tile struct {
	x0, y0, x1, y1 int
}

// Render rasterizes sc, accelerated by tree, from camera's point of
// view into a new Screen, applying the given Attr overrides.
func Render(sc *scene.Scene, tree *bvh.BVH, camera Camera, attrs ...Attr) *Screen {
	return RenderTraced(sc, tree, camera, noTrace{}, attrs...)
}

// RenderTraced behaves like Render but forwards every ray cast during
// shading to trace, letting a caller inspect how specific pixels were
// produced. Pass noTrace{} (what Render does) to skip the bookkeeping
// entirely.
//
// Work is partitioned into square tiles and drained by a pool of
// runtime.NumCPU() worker goroutines, matching the one-goroutine-per-
// processor pattern the package's tile scheduler is grounded on.
func RenderTraced(sc *scene.Scene, tree *bvh.BVH, camera Camera, trace DebugTrace, attrs ...Attr) *Screen {
	cfg := defaultConfig
	for _, attr := range attrs {
		attr(&cfg)
	}
	if trace == nil {
		trace = noTrace{}
	}

	screen := NewScreen(cfg.width, cfg.height)
	s := &shader{tree: tree, lights: sc.Lights, cfg: cfg, trace: trace}

	tiles := make(chan tile, 64)
	var wg sync.WaitGroup
	workers := runtime.NumCPU()
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			for t := range tiles {
				renderTile(s, camera, screen, cfg, t)
			}
		}()
	}

	for y0 := 0; y0 < cfg.height; y0 += cfg.tileSize {
		for x0 := 0; x0 < cfg.width; x0 += cfg.tileSize {
			tiles <- tile{
				x0: x0, y0: y0,
				x1: minInt(x0+cfg.tileSize, cfg.width),
				y1: minInt(y0+cfg.tileSize, cfg.height),
			}
		}
	}
	close(tiles)
	wg.Wait()

	return screen
}

// motionOffsetStep is the per-sample world-space camera origin offset
// along x and y used to approximate motion blur: sample i's ray
// originates from camera.Eye + (i*motionOffsetStep, i*motionOffsetStep, 0).
const motionOffsetStep = 0.004

// renderTile shades every pixel of t. When cfg.motionSamples > 1, each
// pixel is sampled that many times with the ray's origin offset in
// world space by i*motionOffsetStep along x and y, and the results
// averaged, approximating the blur a moving camera would produce.
func renderTile(s *shader, camera Camera, screen *Screen, cfg Config, t tile) {
	for y := t.y0; y < t.y1; y++ {
		ndcY := 1 - 2*(float32(y)+0.5)/float32(cfg.height)
		for x := t.x0; x < t.x1; x++ {
			ndcX := 2*(float32(x)+0.5)/float32(cfg.width) - 1
			dir := camera.RayThrough(ndcX, ndcY)

			sum := lin.V3(0, 0, 0)
			for i := 1; i <= cfg.motionSamples; i++ {
				var offset lin.Vec3
				if cfg.motionSamples > 1 {
					offset = lin.V3(float32(i)*motionOffsetStep, float32(i)*motionOffsetStep, 0)
				}
				ray := geom.NewRay(camera.Eye.Add(offset), dir)
				sum = sum.Add(s.Shade(ray, 0, x, y))
			}
			screen.Set(x, y, sum.Scale(1/float32(cfg.motionSamples)))
		}
	}
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
