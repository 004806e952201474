package scene

import (
	"strings"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

const sampleDump = `{
	"name": "level01",
	"objects": [
		{
			"name": "Crate",
			"type": "MESH",
			"visible": true,
			"mesh": "crate_mesh",
			"matrix_world": [[1,0,0,4],[0,1,0,5],[0,0,1,6],[0,0,0,1]],
			"properties": {"defold_prototype": "crate", "defold_collision": 1},
			"material_slots": [{"name": "wood", "base_color_image": "wood_albedo"}]
		},
		{
			"name": "Lamp",
			"type": "LIGHT",
			"visible": true
		}
	],
	"meshes": {
		"crate_mesh": {
			"name": "crate_mesh",
			"positions": [[0,0,0],[1,0,0],[0,1,0]],
			"primitives": [{"material_index": 0, "indices": [0,1,2]}],
			"properties": {"collision_group": "level"}
		}
	},
	"images": {
		"wood_albedo": {"name": "wood_albedo", "path": "/tmp/wood.png"}
	}
}`

func decodeSample(t *testing.T) *Scene {
	t.Helper()
	sc, err := Decode(strings.NewReader(sampleDump))
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	return sc
}

func TestDecode(t *testing.T) {
	sc := decodeSample(t)

	if sc.Name != "level01" {
		t.Errorf("name=%q", sc.Name)
	}
	if len(sc.Objects) != 2 {
		t.Fatalf("objects=%d; expected 2", len(sc.Objects))
	}
	if sc.Objects[0].MaterialSlots[0].BaseColorImage != "wood_albedo" {
		t.Errorf("slot image not decoded: %+v", sc.Objects[0].MaterialSlots)
	}
	if sc.Images["wood_albedo"].Path != "/tmp/wood.png" {
		t.Errorf("image path not decoded")
	}
}

func TestWorldMatrix(t *testing.T) {
	sc := decodeSample(t)

	m := sc.Objects[0].WorldMatrix()
	pos := mgl32.Vec3{m.At(0, 3), m.At(1, 3), m.At(2, 3)}
	if !pos.ApproxEqualThreshold(mgl32.Vec3{4, 5, 6}, 1e-6) {
		t.Errorf("translation=%v; expected (4 5 6)", pos)
	}

	// missing matrix decodes as identity
	if sc.Objects[1].WorldMatrix() != mgl32.Ident4() {
		t.Errorf("zero matrix should default to identity")
	}
}

func TestPropFallback(t *testing.T) {
	sc := decodeSample(t)
	crate := sc.Objects[0]

	if got := sc.PropString(crate, "defold_prototype"); got != "crate" {
		t.Errorf("object-level prop: %q", got)
	}
	// collision_group only exists on the mesh datablock
	if got := sc.PropString(crate, "collision_group"); got != "level" {
		t.Errorf("mesh-level fallback: %q", got)
	}
	if !sc.PropBool(crate, "defold_collision") {
		t.Errorf("numeric 1 should be truthy")
	}
	if sc.PropBool(crate, "missing_key") {
		t.Errorf("missing key should be falsy")
	}
}
