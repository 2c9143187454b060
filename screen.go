package raytracer

import (
	"fmt"
	"image"
	"image/color"
	"io"
	"math"

	"golang.org/x/image/bmp"

	"raytracer/math/lin"
)

// Screen is a row-major linear-color framebuffer, one lin.Vec3 per
// pixel, filled in by Render and exported through WriteBMP.
type Screen struct {
	Width, Height int
	Pixels        []lin.Vec3
}

// NewScreen allocates a width x height framebuffer, all pixels black.
func NewScreen(width, height int) *Screen {
	return &Screen{Width: width, Height: height, Pixels: make([]lin.Vec3, width*height)}
}

// Set stores the linear color c at pixel (x,y). x and y outside the
// screen's bounds are silently ignored, since a shading sample that
// jitters slightly past an edge pixel should not panic the renderer.
func (s *Screen) Set(x, y int, c lin.Vec3) {
	if x < 0 || x >= s.Width || y < 0 || y >= s.Height {
		return
	}
	s.Pixels[y*s.Width+x] = c
}

// At returns the linear color stored at pixel (x,y).
func (s *Screen) At(x, y int) lin.Vec3 {
	return s.Pixels[y*s.Width+x]
}

// WriteBMP gamma-encodes the framebuffer to sRGB and writes it to w as a
// BMP image.
func (s *Screen) WriteBMP(w io.Writer) error {
	img := image.NewRGBA(image.Rect(0, 0, s.Width, s.Height))
	for y := 0; y < s.Height; y++ {
		for x := 0; x < s.Width; x++ {
			c := s.At(x, y)
			img.SetRGBA(x, y, color.RGBA{
				R: linearToSRGB8(c.X),
				G: linearToSRGB8(c.Y),
				B: linearToSRGB8(c.Z),
				A: 255,
			})
		}
	}
	if err := bmp.Encode(w, img); err != nil {
		return fmt.Errorf("raytracer: write bmp: %w", err)
	}
	return nil
}

func linearToSRGB8(c float32) uint8 {
	c = lin.Clamp(c, 0, 1)
	var srgb float64
	if c <= 0.0031308 {
		srgb = float64(c) * 12.92
	} else {
		srgb = 1.055*math.Pow(float64(c), 1/2.4) - 0.055
	}
	return uint8(lin.Clamp(float32(srgb)*255+0.5, 0, 255))
}
