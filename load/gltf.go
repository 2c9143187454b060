package load

import (
	"fmt"

	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"

	"raytracer/math/lin"
	"raytracer/scene"
)

// Gltf loads every triangle mesh primitive out of a glTF/GLB document at
// path, baking each node's TRS transform into world-space vertex
// positions and normals before returning. Each returned scene.Mesh
// corresponds to one primitive; a document with several mesh nodes
// yields several meshes, matching how the rest of the loader treats one
// mesh per material.
func Gltf(path string) ([]scene.Mesh, error) {
	doc, err := gltf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("load: open gltf %s: %w", path, err)
	}

	var meshes []scene.Mesh
	for _, scn := range doc.Scenes {
		for _, nodeIdx := range scn.Nodes {
			collected, err := gltfWalkNode(doc, nodeIdx, lin.Mat4Ident())
			if err != nil {
				return nil, err
			}
			meshes = append(meshes, collected...)
		}
	}
	return meshes, nil
}

func gltfWalkNode(doc *gltf.Document, nodeIdx uint32, parent lin.Mat4) ([]scene.Mesh, error) {
	node := doc.Nodes[nodeIdx]
	local := gltfNodeTransform(node)
	world := parent.Mul(local)

	var out []scene.Mesh
	if node.Mesh != nil {
		meshes, err := gltfReadMesh(doc, doc.Meshes[*node.Mesh], world)
		if err != nil {
			return nil, err
		}
		out = append(out, meshes...)
	}
	for _, childIdx := range node.Children {
		children, err := gltfWalkNode(doc, childIdx, world)
		if err != nil {
			return nil, err
		}
		out = append(out, children...)
	}
	return out, nil
}

// gltfNodeTransform reads a node's TRS fields through the library's
// OrDefault accessors, which substitute the glTF spec's identity
// defaults (zero translation, identity rotation, unit scale) for any
// field the source document omitted.
func gltfNodeTransform(node *gltf.Node) lin.Mat4 {
	t := node.TranslationOrDefault()
	r := node.RotationOrDefault()
	s := node.ScaleOrDefault()
	translation := lin.V3(float32(t[0]), float32(t[1]), float32(t[2]))
	rotation := lin.Quat{X: float32(r[0]), Y: float32(r[1]), Z: float32(r[2]), W: float32(r[3])}
	scaleV := lin.V3(float32(s[0]), float32(s[1]), float32(s[2]))
	return lin.Mat4TRS(translation, rotation, scaleV)
}

func gltfReadMesh(doc *gltf.Document, m *gltf.Mesh, world lin.Mat4) ([]scene.Mesh, error) {
	normalMat := world.NormalMat3()

	var out []scene.Mesh
	for _, prim := range m.Primitives {
		if prim.Mode != gltf.PrimitiveTriangles && prim.Mode != 0 {
			continue // skip lines/points primitives; zero is the unset default, which means triangles
		}
		posIdx, ok := prim.Attributes[gltf.POSITION]
		if !ok {
			continue
		}
		positions, err := modeler.ReadPosition(doc, doc.Accessors[posIdx], nil)
		if err != nil {
			return nil, fmt.Errorf("load: read gltf positions: %w", err)
		}

		var normals [][3]float32
		if normIdx, ok := prim.Attributes[gltf.NORMAL]; ok {
			normals, err = modeler.ReadNormal(doc, doc.Accessors[normIdx], nil)
			if err != nil {
				return nil, fmt.Errorf("load: read gltf normals: %w", err)
			}
		}

		var uvs [][2]float32
		if uvIdx, ok := prim.Attributes[gltf.TEXCOORD_0]; ok {
			uvs, err = modeler.ReadTextureCoord(doc, doc.Accessors[uvIdx], nil)
			if err != nil {
				return nil, fmt.Errorf("load: read gltf uvs: %w", err)
			}
		}

		var indices []uint32
		if prim.Indices != nil {
			indices, err = modeler.ReadIndices(doc, doc.Accessors[*prim.Indices], nil)
			if err != nil {
				return nil, fmt.Errorf("load: read gltf indices: %w", err)
			}
		}

		mesh := scene.Mesh{Material: gltfReadMaterial(doc, prim.Material)}
		for i, p := range positions {
			worldPos := world.MulPoint(lin.V3(p[0], p[1], p[2]))
			var n lin.Vec3
			if i < len(normals) {
				n = normalMat.MulVec3(lin.V3(normals[i][0], normals[i][1], normals[i][2])).Unit()
			}
			var uv lin.Vec2
			if i < len(uvs) {
				uv = lin.V2(uvs[i][0], 1-uvs[i][1])
			}
			mesh.Vertices = append(mesh.Vertices, scene.Vertex{Position: worldPos, Normal: n, TexCoord: uv})
		}

		if len(indices) > 0 {
			for i := 0; i+2 < len(indices); i += 3 {
				mesh.Triangles = append(mesh.Triangles, scene.Triangle{
					I: int(indices[i]), J: int(indices[i+1]), K: int(indices[i+2]),
				})
			}
		} else {
			for i := 0; i+2 < len(mesh.Vertices); i += 3 {
				mesh.Triangles = append(mesh.Triangles, scene.Triangle{I: i, J: i + 1, K: i + 2})
			}
		}
		out = append(out, mesh)
	}
	return out, nil
}

func gltfReadMaterial(doc *gltf.Document, matIdx *int) scene.Material {
	if matIdx == nil || doc.Materials[*matIdx].PBRMetallicRoughness == nil {
		return scene.Material{Kd: lin.V3(0.8, 0.8, 0.8)}
	}
	pbr := doc.Materials[*matIdx].PBRMetallicRoughness
	base := pbr.BaseColorFactor
	if base == nil {
		return scene.Material{Kd: lin.V3(0.8, 0.8, 0.8)}
	}
	return scene.Material{Kd: lin.V3(base[0], base[1], base[2]), Transparency: 1 - base[3]}
}
