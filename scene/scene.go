// Package scene holds the normalized scene description produced by the
// host side (the Blender dump script). The exporter never touches the
// host's own object model, only these records.
package scene

import (
	"encoding/json"
	"io"
	"os"
	"strings"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/pkg/errors"
)

const ObjectTypeMesh = "MESH"

type Scene struct {
	Name    string            `json:"name"`
	Objects []*Object         `json:"objects"`
	Meshes  map[string]*Mesh  `json:"meshes"`
	Images  map[string]*Image `json:"images"`
}

type Object struct {
	Name    string `json:"name"`
	Type    string `json:"type"`
	Visible bool   `json:"visible"`
	Mesh    string `json:"mesh"`

	// World transform, row-major as Blender's matrix_world prints it.
	Matrix [4][4]float32 `json:"matrix_world"`

	Properties    map[string]interface{} `json:"properties,omitempty"`
	MaterialSlots []MaterialSlot         `json:"material_slots,omitempty"`
}

// MaterialSlot carries the per-slot data and the per-material overrides
// already read off the host material, plus the result of the host's
// shader-node lookup (base-color image of the principled node, if any).
type MaterialSlot struct {
	Name           string `json:"name"`
	Material       string `json:"material,omitempty"`
	Texture        string `json:"texture,omitempty"`
	BaseColorImage string `json:"base_color_image,omitempty"`
}

type Mesh struct {
	Name       string                 `json:"name"`
	Positions  [][3]float32           `json:"positions"`
	Normals    [][3]float32           `json:"normals,omitempty"`
	UVs        [][2]float32           `json:"uvs,omitempty"`
	Primitives []Primitive            `json:"primitives"`
	Properties map[string]interface{} `json:"properties,omitempty"`
}

// Primitive is one indexed triangle list bound to a material slot.
type Primitive struct {
	MaterialIndex int      `json:"material_index"`
	Indices       []uint32 `json:"indices"`
}

// Image identifies one host image datablock: either a file on disk or
// embedded encoded pixels (packed and baked images have no file).
type Image struct {
	Name string `json:"name"`
	Path string `json:"path,omitempty"`
	Data []byte `json:"data,omitempty"`
}

func Load(path string) (*Scene, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "Failed to open scene dump %q", path)
	}
	defer f.Close()

	sc, err := Decode(f)
	return sc, errors.Wrapf(err, "Failed to load scene dump %q", path)
}

func Decode(r io.Reader) (*Scene, error) {
	var sc Scene
	if err := json.NewDecoder(r).Decode(&sc); err != nil {
		return nil, errors.Wrapf(err, "Failed to decode scene dump")
	}
	if sc.Meshes == nil {
		sc.Meshes = make(map[string]*Mesh)
	}
	if sc.Images == nil {
		sc.Images = make(map[string]*Image)
	}
	return &sc, nil
}

func (sc *Scene) ObjectByName(name string) *Object {
	for _, o := range sc.Objects {
		if o.Name == name {
			return o
		}
	}
	return nil
}

func (o *Object) WorldMatrix() mgl32.Mat4 {
	if o.Matrix == ([4][4]float32{}) {
		return mgl32.Ident4()
	}
	var m mgl32.Mat4
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			m[col*4+row] = o.Matrix[row][col]
		}
	}
	return m
}

// Prop looks a custom property up on the object first, then on its mesh
// datablock, same fallback the host applies.
func (sc *Scene) Prop(o *Object, key string) interface{} {
	if v, ok := o.Properties[key]; ok {
		return v
	}
	if mesh, ok := sc.Meshes[o.Mesh]; ok {
		if v, ok := mesh.Properties[key]; ok {
			return v
		}
	}
	return nil
}

func (sc *Scene) PropString(o *Object, key string) string {
	switch v := sc.Prop(o, key).(type) {
	case string:
		return strings.TrimSpace(v)
	default:
		return ""
	}
}

func (sc *Scene) PropBool(o *Object, key string) bool {
	switch v := sc.Prop(o, key).(type) {
	case bool:
		return v
	case float64:
		return v != 0
	case int:
		return v != 0
	case string:
		return strings.TrimSpace(v) != ""
	default:
		return false
	}
}
