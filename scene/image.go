package scene

import "raytracer/math/lin"

// Image is a decoded texture: a flat grid of colors in [0,1]. Package
// load populates one from a PNG or JPEG file; Image itself
// has no notion of file formats.
type Image struct {
	Width, Height int
	Pixels        []lin.Vec3 // row major, pixels[y*Width+x]
}

// Texel samples the image at uv with nearest-neighbour lookup — no
// filtering, no wrap policy. Per the contract, u and v are assumed to be
// in [0,1); behavior outside that range is undefined (callers that load
// meshes with out-of-range UVs are expected to have wrapped them already).
func (img *Image) Texel(uv lin.Vec2) lin.Vec3 {
	x := int(uv.X * float32(img.Width))
	y := int(uv.Y * float32(img.Height))
	return img.Pixels[y*img.Width+x]
}
