package load

import (
	"image"
	"image/png"
	"io"

	"raytracer/math/lin"
	"raytracer/scene"
)

// Png decodes a PNG-encoded image and converts it into a scene.Image of
// linear float32 texels, srgb-decoding each channel so the shading core
// never has to reason about gamma.
func Png(r io.Reader) (*scene.Image, error) {
	img, err := png.Decode(r)
	if err != nil {
		return nil, err
	}
	return imageToTexture(img), nil
}

func imageToTexture(img image.Image) *scene.Image {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	tex := &scene.Image{Width: w, Height: h, Pixels: make([]lin.Vec3, w*h)}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			r, g, b, _ := img.At(bounds.Min.X+x, bounds.Min.Y+y).RGBA()
			tex.Pixels[y*w+x] = lin.V3(srgbToLinear(r), srgbToLinear(g), srgbToLinear(b))
		}
	}
	return tex
}

func srgbToLinear(channel16 uint32) float32 {
	c := float32(channel16) / 65535
	if c <= 0.04045 {
		return c / 12.92
	}
	return lin.Pow((c+0.055)/1.055, 2.4)
}
