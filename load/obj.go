package load

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"raytracer/math/lin"
	"raytracer/scene"
)

// Obj reads a Wavefront OBJ file containing one or more named objects and
// returns the first one as a scene.Mesh. A Wavefront OBJ file is a text
// representation of one or more 3D models; this loader supports a
// limited subset of the format, looking specifically for a single
// triangulated mesh with vertex normals.
//    https://en.wikipedia.org/wiki/Wavefront_.obj_file#File_format
// The Material field of the returned mesh is left at its zero value;
// callers combine it with a separately loaded Mtl (see scene.go).
func Obj(r io.Reader) (scene.Mesh, error) {
	objs := objStringGroups(r)
	if len(objs) == 0 {
		return scene.Mesh{}, fmt.Errorf("load: no objects in .obj file")
	}
	odata := &objData{}
	faces, err := objParseLines(objs[0].lines, odata)
	if err != nil {
		return scene.Mesh{}, fmt.Errorf("load: obj parse: %w", err)
	}
	return objAssemble(odata, faces)
}

type objStrings struct {
	name  string
	lines []string
}

// objData accumulates an .obj file's global vertex/normal/texcoord
// pools, referenced by face records via absolute 1-based indices.
type objData struct {
	v []lin.Vec3
	n []lin.Vec3
	t []lin.Vec2
}

type face struct {
	s [3]string // each entry is a "v/t/n" or "v//n" token.
}

func objStringGroups(r io.Reader) []*objStrings {
	var objs []*objStrings
	var curr *objStrings
	reader := bufio.NewReader(r)
	line, readErr := reader.ReadString('\n')
	for ; readErr == nil; line, readErr = reader.ReadString('\n') {
		line = strings.TrimSpace(line)
		tokens := strings.Split(line, " ")
		if len(tokens) == 2 && tokens[0] == "o" {
			curr = &objStrings{name: strings.TrimSpace(tokens[1])}
			objs = append(objs, curr)
		} else if curr != nil {
			curr.lines = append(curr.lines, line)
		}
	}
	return objs
}

func objParseLines(lines []string, odata *objData) (faces []face, err error) {
	for _, line := range lines {
		tokens := strings.Split(line, " ")
		if len(tokens) == 0 {
			continue
		}
		var f1, f2, f3 float32
		var s1, s2, s3 string
		switch tokens[0] {
		case "v":
			if _, e := fmt.Sscanf(line, "v %f %f %f", &f1, &f2, &f3); e != nil {
				return faces, fmt.Errorf("bad vertex line %q: %w", line, e)
			}
			odata.v = append(odata.v, lin.V3(f1, f2, f3))
		case "vn":
			if _, e := fmt.Sscanf(line, "vn %f %f %f", &f1, &f2, &f3); e != nil {
				return faces, fmt.Errorf("bad normal line %q: %w", line, e)
			}
			odata.n = append(odata.n, lin.V3(f1, f2, f3))
		case "vt":
			if _, e := fmt.Sscanf(line, "vt %f %f", &f1, &f2); e != nil {
				return faces, fmt.Errorf("bad texcoord line %q: %w", line, e)
			}
			odata.t = append(odata.t, lin.V2(f1, 1-f2))
		case "f":
			if _, e := fmt.Sscanf(line, "f %s %s %s", &s1, &s2, &s3); e != nil {
				return faces, fmt.Errorf("bad face line %q: %w", line, e)
			}
			faces = append(faces, face{s: [3]string{s1, s2, s3}})
		}
	}
	return faces, nil
}

// objAssemble turns accumulated face/vertex data into a scene.Mesh,
// deduplicating vertex+texcoord pairs and accumulating normals for
// vertices shared across faces, matching how Wavefront
// files are commonly exported without per-vertex smoothing baked in.
func objAssemble(odata *objData, faces []face) (scene.Mesh, error) {
	var mesh scene.Mesh
	vmap := make(map[string]int)

	for _, f := range faces {
		var triIdx [3]int
		for pi, token := range f.s {
			v, t, n, err := parseFaceIndex(token)
			if err != nil {
				return scene.Mesh{}, err
			}
			key := fmt.Sprintf("%d/%d", v, t)
			idx, seen := vmap[key]
			if !seen {
				idx = len(mesh.Vertices)
				vmap[key] = idx
				vert := scene.Vertex{Position: odata.v[v], Normal: odata.n[n]}
				if t != -1 {
					vert.TexCoord = odata.t[t]
				}
				mesh.Vertices = append(mesh.Vertices, vert)
			} else {
				mesh.Vertices[idx].Normal = mesh.Vertices[idx].Normal.Add(odata.n[n]).Unit()
			}
			triIdx[pi] = idx
		}
		mesh.Triangles = append(mesh.Triangles, scene.Triangle{I: triIdx[0], J: triIdx[1], K: triIdx[2]})
	}
	if len(mesh.Vertices) == 0 || len(mesh.Triangles) == 0 {
		return scene.Mesh{}, fmt.Errorf("load: mesh has no vertex or face data")
	}
	return mesh, nil
}

// parseFaceIndex turns a face index token ("v/t/n" or "v//n") into three
// zero-based indices, returning -1 for a missing texture index.
func parseFaceIndex(token string) (v, t, n int, err error) {
	v, t, n = -1, -1, -1
	if _, err = fmt.Sscanf(token, "%d//%d", &v, &n); err != nil {
		if _, err = fmt.Sscanf(token, "%d/%d/%d", &v, &t, &n); err != nil {
			return -1, -1, -1, fmt.Errorf("bad face index %q", token)
		}
	}
	v--
	n--
	if t != -1 {
		t--
	}
	return v, t, n, nil
}
