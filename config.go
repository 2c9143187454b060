// Package raytracer renders a scene.Scene accelerated by a bvh.BVH into
// a Screen framebuffer: recursive Phong shading with hard shadows,
// mirror reflection, and stratified area-light sampling, scheduled
// across a pool of tile-worker goroutines.
package raytracer

// config.go reduces the Render API footprint using functional options.
// See: http://dave.cheney.net/2014/10/17/functional-options-for-friendly-apis

// Config holds the render attributes a caller can override before
// calling Render.
type Config struct {
	width, height int     // output image dimensions, in pixels
	reflectDepth  int     // maximum recursive mirror-reflection depth
	motionSamples int     // world-space origin offset samples for motion blur
	tileSize      int     // pixels per side of one scheduler work unit
	shadowBias    float32 // offset along the outgoing ray direction before casting a shadow or reflection ray
}

// defaultConfig provides reasonable defaults so Render produces a
// usable image even if the caller sets no attributes.
var defaultConfig = Config{
	width:         800,
	height:        600,
	reflectDepth:  5,
	motionSamples: 1,
	tileSize:      32,
	shadowBias:    1e-4,
}

// Attr defines an optional Render configuration override.
//
//	screen := raytracer.Render(sc, tree, camera,
//	   raytracer.Size(1920, 1080),
//	   raytracer.ReflectDepth(3),
//	)
type Attr func(*Config)

// Size sets the output image's width and height in pixels.
func Size(w, h int) Attr {
	return func(c *Config) {
		if w > 0 {
			c.width = w
		}
		if h > 0 {
			c.height = h
		}
	}
}

// ReflectDepth sets the maximum number of recursive mirror-reflection
// bounces a camera ray is allowed to take.
func ReflectDepth(depth int) Attr {
	return func(c *Config) {
		if depth >= 0 {
			c.reflectDepth = depth
		}
	}
}

// MotionSamples sets how many world-space origin offset samples are
// averaged per pixel for motion blur. A value of 1 (the default)
// disables blur.
func MotionSamples(n int) Attr {
	return func(c *Config) {
		if n > 0 {
			c.motionSamples = n
		}
	}
}

// TileSize sets the square tile dimension the scheduler hands to each
// worker goroutine as one unit of work.
func TileSize(n int) Attr {
	return func(c *Config) {
		if n > 0 {
			c.tileSize = n
		}
	}
}
