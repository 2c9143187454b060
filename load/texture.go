package load

import (
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"path/filepath"
	"strings"

	"golang.org/x/image/draw"

	"raytracer/scene"
)

// MaxTextureDimension bounds how large a loaded texture is allowed to be
// before Texture downsamples it. Oversized source textures cost memory
// and cache locality during shading without improving image quality at
// typical render resolutions.
const MaxTextureDimension = 2048

// Texture loads an image file by extension (.png or .jpg/.jpeg) and
// returns it as a scene.Image of linear float32 texels, resizing it down
// to MaxTextureDimension on its longer side if needed.
func Texture(path string, r io.Reader) (*scene.Image, error) {
	var img image.Image
	var err error
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		img, err = png.Decode(r)
	case ".jpg", ".jpeg":
		img, err = jpeg.Decode(r)
	default:
		return nil, fmt.Errorf("load: unsupported texture format %q", path)
	}
	if err != nil {
		return nil, fmt.Errorf("load: decode texture %s: %w", path, err)
	}
	img = downsample(img)
	return imageToTexture(img), nil
}

func downsample(img image.Image) image.Image {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	longer := w
	if h > longer {
		longer = h
	}
	if longer <= MaxTextureDimension {
		return img
	}
	scale := float64(MaxTextureDimension) / float64(longer)
	nw, nh := int(float64(w)*scale), int(float64(h)*scale)
	if nw < 1 {
		nw = 1
	}
	if nh < 1 {
		nh = 1
	}
	dst := image.NewRGBA(image.Rect(0, 0, nw, nh))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, b, draw.Over, nil)
	return dst
}
