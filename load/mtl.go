package load

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"raytracer/math/lin"
	"raytracer/scene"
)

// Mtl reads a Wavefront MTL file, a text representation of one or more
// material descriptions, and returns the first material found.
//    https://en.wikipedia.org/wiki/Wavefront_.obj_file#File_format
func Mtl(r io.Reader) (scene.Material, error) {
	var mat scene.Material
	var f1, f2, f3 float32
	seenMtl := false
	reader := bufio.NewReader(r)
	line, readErr := reader.ReadString('\n')
	for ; readErr == nil; line, readErr = reader.ReadString('\n') {
		line = strings.TrimSpace(line)
		tokens := strings.Split(line, " ")
		if len(tokens) == 0 {
			continue
		}
		switch tokens[0] {
		case "Kd": // diffuse
			if _, e := fmt.Sscanf(line, "Kd %f %f %f", &f1, &f2, &f3); e != nil {
				return mat, fmt.Errorf("load: bad Kd line %q: %w", line, e)
			}
			mat.Kd = lin.V3(f1, f2, f3)
		case "Ks": // specular
			if _, e := fmt.Sscanf(line, "Ks %f %f %f", &f1, &f2, &f3); e != nil {
				return mat, fmt.Errorf("load: bad Ks line %q: %w", line, e)
			}
			mat.Ks = lin.V3(f1, f2, f3)
		case "d": // transparency (dissolve); 1 is fully opaque.
			if len(tokens) > 1 {
				if a, e := strconv.ParseFloat(strings.TrimSpace(tokens[1]), 32); e == nil {
					mat.Transparency = 1 - float32(a)
				}
			}
		case "Ns": // specular exponent
			if len(tokens) > 1 {
				if ns, e := strconv.ParseFloat(strings.TrimSpace(tokens[1]), 32); e == nil {
					mat.Shininess = float32(ns)
				}
			}
		case "newmtl": // start of a material; stop at the second one.
			if seenMtl {
				return mat, nil
			}
			seenMtl = true
		case "Ka", "Ni", "illum", "map_Kd": // ambient, optical density,
			// illumination model, diffuse texture path: either
			// unused by this shading model or resolved by the caller,
			// which knows the material's base directory for map_Kd.
		}
	}
	return mat, nil
}
