package load

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"raytracer/math/lin"
	"raytracer/scene"
)

// SceneFile is the on-disk YAML shape a scene description is authored
// in. Paths inside it (Obj, Mtl, Texture, Gltf) are resolved relative to
// the scene file's own directory, not the process's working directory.
type SceneFile struct {
	Camera CameraSpec   `yaml:"camera"`
	Meshes []MeshSpec   `yaml:"meshes"`
	Spheres []SphereSpec `yaml:"spheres"`
	Lights LightSpec    `yaml:"lights"`
}

// CameraSpec is the eye/center/up/fov description of a pinhole camera,
// independent of the renderer's own Camera type so this package never
// needs to import the root package.
type CameraSpec struct {
	Eye        [3]float32 `yaml:"eye"`
	Center     [3]float32 `yaml:"center"`
	Up         [3]float32 `yaml:"up"`
	FovDegrees float32    `yaml:"fov_degrees"`
}

// MeshSpec names either a Wavefront OBJ+MTL pair or a glTF document. For
// an OBJ entry, an optional diffuse texture supplies the material's
// KdTexture. A glTF entry contributes only the document's first triangle
// primitive, with the material the document gives it; Texture is not
// applied to it.
type MeshSpec struct {
	Obj     string `yaml:"obj"`
	Mtl     string `yaml:"mtl"`
	Gltf    string `yaml:"gltf"`
	Texture string `yaml:"texture"`
}

// SphereSpec is an analytic sphere plus its own inline material.
type SphereSpec struct {
	Center   [3]float32  `yaml:"center"`
	Radius   float32     `yaml:"radius"`
	Material MaterialSpec `yaml:"material"`
}

// MaterialSpec is the inline material shape of a sphere. Meshes take
// their material from their MTL file or glTF document instead.
type MaterialSpec struct {
	Kd           [3]float32 `yaml:"kd"`
	Ks           [3]float32 `yaml:"ks"`
	Shininess    float32    `yaml:"shininess"`
	Transparency float32    `yaml:"transparency"`
}

// LightSpec groups the scene's lights by shape, mirroring scene.Light's
// three concrete variants.
type LightSpec struct {
	Point []struct {
		Position [3]float32 `yaml:"position"`
		Color    [3]float32 `yaml:"color"`
	} `yaml:"point"`
	Segment []struct {
		E0 [3]float32 `yaml:"e0"`
		E1 [3]float32 `yaml:"e1"`
		C0 [3]float32 `yaml:"c0"`
		C1 [3]float32 `yaml:"c1"`
	} `yaml:"segment"`
	Parallelogram []struct {
		V0  [3]float32 `yaml:"v0"`
		E01 [3]float32 `yaml:"e01"`
		E02 [3]float32 `yaml:"e02"`
		C0  [3]float32 `yaml:"c0"`
		C1  [3]float32 `yaml:"c1"`
		C2  [3]float32 `yaml:"c2"`
		C3  [3]float32 `yaml:"c3"`
	} `yaml:"parallelogram"`
}

// Scene parses the YAML scene file at path and resolves every mesh,
// texture, and material it names into a fully populated scene.Scene,
// plus the camera parameters the file specifies.
func Scene(path string) (*scene.Scene, CameraSpec, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, CameraSpec{}, fmt.Errorf("load: read scene file %s: %w", path, err)
	}
	var file SceneFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return nil, CameraSpec{}, fmt.Errorf("load: parse scene file %s: %w", path, err)
	}

	baseDir := filepath.Dir(path)
	sc := scene.New()

	for _, ms := range file.Meshes {
		mesh, err := resolveMesh(baseDir, ms)
		if err != nil {
			return nil, CameraSpec{}, err
		}
		sc.Meshes = append(sc.Meshes, mesh)
	}
	for _, ss := range file.Spheres {
		sc.Spheres = append(sc.Spheres, scene.Sphere{
			Center:   vec3(ss.Center),
			Radius:   ss.Radius,
			Material: materialFromSpec(ss.Material),
		})
	}
	for _, ps := range file.Lights.Point {
		sc.Lights = append(sc.Lights, scene.PointLight{
			Position: vec3(ps.Position),
			Color:    vec3(ps.Color),
		})
	}
	for _, ss := range file.Lights.Segment {
		sc.Lights = append(sc.Lights, scene.SegmentLight{
			E0: vec3(ss.E0), E1: vec3(ss.E1),
			C0: vec3(ss.C0), C1: vec3(ss.C1),
		})
	}
	for _, ps := range file.Lights.Parallelogram {
		sc.Lights = append(sc.Lights, scene.ParallelogramLight{
			V0: vec3(ps.V0), E01: vec3(ps.E01), E02: vec3(ps.E02),
			C0: vec3(ps.C0), C1: vec3(ps.C1), C2: vec3(ps.C2), C3: vec3(ps.C3),
		})
	}

	return sc, file.Camera, nil
}

func resolveMesh(baseDir string, ms MeshSpec) (scene.Mesh, error) {
	if ms.Gltf != "" {
		meshes, err := Gltf(filepath.Join(baseDir, ms.Gltf))
		if err != nil {
			return scene.Mesh{}, err
		}
		if len(meshes) == 0 {
			return scene.Mesh{}, fmt.Errorf("load: %s contains no triangle meshes", ms.Gltf)
		}
		return meshes[0], nil
	}

	objFile, err := os.Open(filepath.Join(baseDir, ms.Obj))
	if err != nil {
		return scene.Mesh{}, fmt.Errorf("load: open %s: %w", ms.Obj, err)
	}
	defer objFile.Close()
	mesh, err := Obj(objFile)
	if err != nil {
		return scene.Mesh{}, err
	}

	if ms.Mtl != "" {
		mtlFile, err := os.Open(filepath.Join(baseDir, ms.Mtl))
		if err != nil {
			return scene.Mesh{}, fmt.Errorf("load: open %s: %w", ms.Mtl, err)
		}
		defer mtlFile.Close()
		mesh.Material, err = Mtl(mtlFile)
		if err != nil {
			return scene.Mesh{}, err
		}
	}

	if ms.Texture != "" {
		texFile, err := os.Open(filepath.Join(baseDir, ms.Texture))
		if err != nil {
			return scene.Mesh{}, fmt.Errorf("load: open %s: %w", ms.Texture, err)
		}
		defer texFile.Close()
		tex, err := Texture(ms.Texture, texFile)
		if err != nil {
			return scene.Mesh{}, err
		}
		mesh.Material.KdTexture = tex
	}

	return mesh, nil
}

func materialFromSpec(m MaterialSpec) scene.Material {
	return scene.Material{
		Kd:           vec3(m.Kd),
		Ks:           vec3(m.Ks),
		Shininess:    m.Shininess,
		Transparency: m.Transparency,
	}
}

func vec3(a [3]float32) lin.Vec3 { return lin.V3(a[0], a[1], a[2]) }
