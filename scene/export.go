package scene

import (
	"fmt"

	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"

	"escape-demo/core"
	"escape-demo/math"
)

// Item is one cube instance to draw: its world transform and material.
type Item struct {
	Name     string
	Model    math.Mat4
	Material string
}

// ExportGLB writes items as a binary glTF file. Every item becomes a node
// with its model matrix pointing at a shared unit cube; each material is
// approximated by the average colour of its diffuse texture.
func ExportGLB(path string, items []Item, lib Library) error {
	doc := gltf.NewDocument()
	cube := CreateCube(1)

	positions := make([][3]float32, len(cube.Vertices))
	normals := make([][3]float32, len(cube.Vertices))
	uvs := make([][2]float32, len(cube.Vertices))
	for i, v := range cube.Vertices {
		positions[i] = [3]float32{v.Position.X, v.Position.Y, v.Position.Z}
		normals[i] = [3]float32{v.Normal.X, v.Normal.Y, v.Normal.Z}
		uvs[i] = [2]float32{v.UV.X, v.UV.Y}
	}
	posAcc := modeler.WritePosition(doc, positions)
	nrmAcc := modeler.WriteNormal(doc, normals)
	uvAcc := modeler.WriteTextureCoord(doc, uvs)
	idxAcc := modeler.WriteIndices(doc, cube.Indices)

	// one mesh per material, all sharing the cube accessors
	meshOf := make(map[string]int)
	meshFor := func(name string) int {
		if mi, ok := meshOf[name]; ok {
			return mi
		}
		c := averageColor(lib.Get(name))
		doc.Materials = append(doc.Materials, &gltf.Material{
			Name: name,
			PBRMetallicRoughness: &gltf.PBRMetallicRoughness{
				BaseColorFactor: &[4]float64{float64(c.R), float64(c.G), float64(c.B), 1},
				MetallicFactor:  gltf.Float(0),
				RoughnessFactor: gltf.Float(0.9),
			},
		})
		doc.Meshes = append(doc.Meshes, &gltf.Mesh{
			Name: name,
			Primitives: []*gltf.Primitive{{
				Indices: gltf.Index(idxAcc),
				Attributes: map[string]int{
					"POSITION":   posAcc,
					"NORMAL":     nrmAcc,
					"TEXCOORD_0": uvAcc,
				},
				Material: gltf.Index(len(doc.Materials) - 1),
			}},
		})
		mi := len(doc.Meshes) - 1
		meshOf[name] = mi
		return mi
	}

	for i, it := range items {
		name := it.Name
		if name == "" {
			name = fmt.Sprintf("item_%d", i)
		}
		doc.Nodes = append(doc.Nodes, &gltf.Node{
			Name:   name,
			Mesh:   gltf.Index(meshFor(it.Material)),
			Matrix: flatten(it.Model),
		})
		doc.Scenes[0].Nodes = append(doc.Scenes[0].Nodes, len(doc.Nodes)-1)
	}

	if err := gltf.SaveBinary(doc, path); err != nil {
		return fmt.Errorf("save glb %q: %w", path, err)
	}
	return nil
}

// flatten lays the matrix out column by column, as glTF expects.
func flatten(m math.Mat4) [16]float64 {
	var out [16]float64
	for c := 0; c < 4; c++ {
		for r := 0; r < 4; r++ {
			out[c*4+r] = float64(m[c][r])
		}
	}
	return out
}

func averageColor(m *Material) core.Color {
	t := m.Diffuse
	if t == nil || len(t.Pixels) < 4 {
		return m.Tint
	}
	var sum [3]float64
	n := len(t.Pixels) / 4
	for i := 0; i < n; i++ {
		sum[0] += float64(t.Pixels[i*4])
		sum[1] += float64(t.Pixels[i*4+1])
		sum[2] += float64(t.Pixels[i*4+2])
	}
	scale := 1 / (255 * float64(n))
	return core.Color{R: float32(sum[0] * scale), G: float32(sum[1] * scale), B: float32(sum[2] * scale), A: 1}
}
