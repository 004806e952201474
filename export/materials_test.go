package export

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/mogaika/blender2defold/config"
	"github.com/mogaika/blender2defold/scene"
)

func newResolver(s *config.Settings) (*MaterialResolver, *Paths) {
	paths := NewPaths(s)
	return NewMaterialResolver(s, paths, NewTextureExporter(paths, testLogger())), paths
}

func resolveFor(t *testing.T, s *config.Settings, sc *scene.Scene, o *scene.Object) []string {
	t.Helper()
	r, _ := newResolver(s)
	blocks, err := r.Resolve(sc, &Prototype{Id: "x", Object: o})
	if err != nil {
		t.Fatal(err)
	}
	out := make([]string, 0, len(blocks)*3)
	for _, b := range blocks {
		out = append(out, b.Name, b.Material, b.Texture)
	}
	return out
}

func TestResolveNoSlots(t *testing.T) {
	s := testSettings(t)
	o := meshObject("Crate", "crate", identityMatrix(), nil)
	sc := testScene(o)

	got := resolveFor(t, s, sc, o)
	expected := []string{"default", config.BuiltinDefaultMaterial, config.BuiltinFallbackTexture}
	for i := range expected {
		if got[i] != expected[i] {
			t.Errorf("resolved=%v; expected %v", got, expected)
			break
		}
	}
}

func TestResolveSlotOverrides(t *testing.T) {
	s := testSettings(t)
	o := meshObject("Crate", "crate", identityMatrix(), nil)
	o.MaterialSlots = []scene.MaterialSlot{{
		Name:     "wood",
		Material: "/assets/materials/wood.material",
		Texture:  "/assets/textures/wood.png",
	}}
	sc := testScene(o)

	got := resolveFor(t, s, sc, o)
	expected := []string{"wood", "/assets/materials/wood.material", "/assets/textures/wood.png"}
	for i := range expected {
		if got[i] != expected[i] {
			t.Errorf("resolved=%v; expected %v", got, expected)
			break
		}
	}
}

func TestResolveObjectLevelOverride(t *testing.T) {
	s := testSettings(t)
	o := meshObject("Crate", "crate", identityMatrix(), map[string]interface{}{
		"defold_material": "/assets/materials/object.material",
	})
	o.MaterialSlots = []scene.MaterialSlot{{Name: "wood"}}
	sc := testScene(o)

	got := resolveFor(t, s, sc, o)
	if got[1] != "/assets/materials/object.material" {
		t.Errorf("object-level material override ignored: %v", got)
	}
}

func TestResolveDedupeByName(t *testing.T) {
	s := testSettings(t)
	o := meshObject("Hero", "hero", identityMatrix(), nil)
	o.MaterialSlots = []scene.MaterialSlot{
		{Name: "skin"},
		{Name: "skin", Material: "/assets/materials/other.material"},
		{Name: "cloth"},
	}
	sc := testScene(o)

	r, _ := newResolver(s)
	blocks, err := r.Resolve(sc, &Prototype{Id: "hero", Object: o})
	if err != nil {
		t.Fatal(err)
	}

	if len(blocks) != 2 {
		t.Fatalf("got %d blocks; expected 2 (skin deduped): %+v", len(blocks), blocks)
	}
	if blocks[0].Name != "skin" || blocks[1].Name != "cloth" {
		t.Errorf("block order not first-occurrence: %+v", blocks)
	}
	// first occurrence wins the whole block
	if blocks[0].Material != config.BuiltinDefaultMaterial {
		t.Errorf("second skin slot overrode the first: %+v", blocks[0])
	}
}

func TestResolveNodeGraphTexture(t *testing.T) {
	s := testSettings(t)

	src := filepath.Join(t.TempDir(), "wood_albedo.png")
	if err := os.WriteFile(src, []byte("png-bytes"), 0666); err != nil {
		t.Fatal(err)
	}

	o := meshObject("Crate", "crate", identityMatrix(), nil)
	o.MaterialSlots = []scene.MaterialSlot{{Name: "wood", BaseColorImage: "wood_albedo"}}
	sc := testScene(o)
	sc.Images["wood_albedo"] = &scene.Image{Name: "wood_albedo", Path: src}

	got := resolveFor(t, s, sc, o)
	if got[2] != "/assets/textures/wood_albedo.png" {
		t.Errorf("texture path=%q", got[2])
	}

	copied := filepath.Join(s.ProjectRoot, "assets", "textures", "wood_albedo.png")
	if data, err := os.ReadFile(copied); err != nil || string(data) != "png-bytes" {
		t.Errorf("texture not copied into project: %v", err)
	}
}

func TestResolveNodeGraphTextureNoExport(t *testing.T) {
	s := testSettings(t)
	s.ExportTextures = false

	o := meshObject("Crate", "crate", identityMatrix(), nil)
	o.MaterialSlots = []scene.MaterialSlot{{Name: "wood", BaseColorImage: "wood_albedo"}}
	sc := testScene(o)
	sc.Images["wood_albedo"] = &scene.Image{Name: "wood_albedo", Path: "/elsewhere/wood.png"}

	got := resolveFor(t, s, sc, o)
	if got[2] != "/assets/textures/wood.png" {
		t.Errorf("texture path=%q; expected reference by basename", got[2])
	}

	if _, err := os.Stat(filepath.Join(s.ProjectRoot, "assets", "textures", "wood.png")); !os.IsNotExist(err) {
		t.Errorf("texture should not be copied when export is off")
	}
}

func TestResolveEmbeddedImage(t *testing.T) {
	s := testSettings(t)

	o := meshObject("Crate", "crate", identityMatrix(), nil)
	o.MaterialSlots = []scene.MaterialSlot{{Name: "baked", BaseColorImage: "baked_img"}}
	sc := testScene(o)
	sc.Images["baked_img"] = &scene.Image{Name: "Baked Image", Data: []byte("encoded")}

	got := resolveFor(t, s, sc, o)
	if got[2] != "/assets/textures/Baked_Image.png" {
		t.Errorf("texture path=%q", got[2])
	}

	saved := filepath.Join(s.ProjectRoot, "assets", "textures", "Baked_Image.png")
	if data, err := os.ReadFile(saved); err != nil || string(data) != "encoded" {
		t.Errorf("embedded image not saved: %v", err)
	}
}
