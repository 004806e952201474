// Package glb is the built-in mesh exporter: it writes a prototype's
// geometry as a binary glTF file, the format the Defold model component
// consumes directly.
package glb

import (
	"os"

	"github.com/pkg/errors"
	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"

	"github.com/mogaika/blender2defold/scene"
)

type Exporter struct{}

func (Exporter) Ext() string { return "glb" }

// Export writes the mesh with one glTF primitive per material slot
// range. glTF material names must equal the .model material block names
// because the engine joins them by name.
func (Exporter) Export(m *scene.Mesh, slotNames []string, dst string) error {
	doc := gltf.NewDocument()

	materialIndex := buildMaterials(doc, slotNames)

	positions := make([][3]float32, len(m.Positions))
	for i, p := range m.Positions {
		// Z-up to Y-up
		positions[i] = [3]float32{p[0], p[2], -p[1]}
	}
	positionAccessor := modeler.WritePosition(doc, positions)

	var normalsAccessor uint32
	haveNormals := len(m.Normals) == len(m.Positions) && len(m.Normals) > 0
	if haveNormals {
		normals := make([][3]float32, len(m.Normals))
		for i, n := range m.Normals {
			normals[i] = [3]float32{n[0], n[2], -n[1]}
		}
		normalsAccessor = modeler.WriteNormal(doc, normals)
	}

	var uvAccessor uint32
	haveUVs := len(m.UVs) == len(m.Positions) && len(m.UVs) > 0
	if haveUVs {
		uvs := make([][2]float32, len(m.UVs))
		for i, uv := range m.UVs {
			uvs[i] = [2]float32{uv[0], 1.0 - uv[1]}
		}
		uvAccessor = modeler.WriteTextureCoord(doc, uvs)
	}

	gltfMesh := &gltf.Mesh{Name: m.Name}
	for _, prim := range m.Primitives {
		if len(prim.Indices) == 0 {
			continue
		}

		attributes := make(map[string]uint32)
		attributes["POSITION"] = positionAccessor
		if haveNormals {
			attributes["NORMAL"] = normalsAccessor
		}
		if haveUVs {
			attributes["TEXCOORD_0"] = uvAccessor
		}

		indices := make([]uint32, len(prim.Indices))
		copy(indices, prim.Indices)

		gltfPrimitive := &gltf.Primitive{
			Attributes: attributes,
			Indices:    gltf.Index(modeler.WriteIndices(doc, indices)),
		}
		if mi, ok := materialIndex[slotName(slotNames, prim.MaterialIndex)]; ok {
			gltfPrimitive.Material = gltf.Index(mi)
		}
		gltfMesh.Primitives = append(gltfMesh.Primitives, gltfPrimitive)
	}

	if len(gltfMesh.Primitives) == 0 {
		return errors.Errorf("mesh %q has no indexed primitives", m.Name)
	}

	doc.Meshes = append(doc.Meshes, gltfMesh)
	doc.Nodes = append(doc.Nodes, &gltf.Node{
		Name: m.Name,
		Mesh: gltf.Index(uint32(len(doc.Meshes) - 1)),
	})
	doc.Scenes[0].Nodes = append(doc.Scenes[0].Nodes, uint32(len(doc.Nodes)-1))

	f, err := os.Create(dst)
	if err != nil {
		return errors.Wrapf(err, "Failed to create %q", dst)
	}

	encoder := gltf.NewEncoder(f)
	encoder.AsBinary = true
	if err := encoder.Encode(doc); err != nil {
		f.Close()
		return errors.Wrapf(err, "Failed to encode %q", dst)
	}
	return f.Close()
}

// buildMaterials creates one glTF material per unique slot name, in
// first-occurrence order, and returns name -> material index.
func buildMaterials(doc *gltf.Document, slotNames []string) map[string]uint32 {
	index := make(map[string]uint32)
	names := slotNames
	if len(names) == 0 {
		names = []string{"default"}
	}
	for _, name := range names {
		if _, ok := index[name]; ok {
			continue
		}
		index[name] = uint32(len(doc.Materials))
		doc.Materials = append(doc.Materials, &gltf.Material{
			Name:                 name,
			PBRMetallicRoughness: &gltf.PBRMetallicRoughness{},
		})
	}
	return index
}

func slotName(slotNames []string, index int) string {
	if index >= 0 && index < len(slotNames) {
		return slotNames[index]
	}
	return "default"
}
