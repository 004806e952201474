package export

import (
	"path/filepath"

	"github.com/mogaika/blender2defold/config"
	"github.com/mogaika/blender2defold/defold"
	"github.com/mogaika/blender2defold/scene"
)

// MaterialResolver turns a prototype's material slots into .model
// material blocks. Resolution never fails: every lookup falls through
// to the configured default material and the builtin fallback texture.
// Slots sharing a material name collapse to one block, keyed by first
// occurrence, since the name is the engine-side join key.
type MaterialResolver struct {
	settings *config.Settings
	paths    *Paths
	textures *TextureExporter
}

func NewMaterialResolver(s *config.Settings, paths *Paths, textures *TextureExporter) *MaterialResolver {
	return &MaterialResolver{settings: s, paths: paths, textures: textures}
}

// Resolve returns the material blocks for a prototype in slot order.
// A texture export failure is the only error path; path resolution
// itself always yields a usable block.
func (r *MaterialResolver) Resolve(sc *scene.Scene, proto *Prototype) ([]defold.MaterialBlock, error) {
	slots := proto.Object.MaterialSlots
	if len(slots) == 0 {
		block, err := r.resolveSlot(sc, proto.Object, &scene.MaterialSlot{})
		if err != nil {
			return nil, err
		}
		return []defold.MaterialBlock{block}, nil
	}

	blocks := make([]defold.MaterialBlock, 0, len(slots))
	seen := make(map[string]bool, len(slots))
	for i := range slots {
		slot := &slots[i]
		name := slot.Name
		if name == "" {
			name = "default"
		}
		if seen[name] {
			continue
		}
		seen[name] = true

		block, err := r.resolveSlot(sc, proto.Object, slot)
		if err != nil {
			return nil, err
		}
		blocks = append(blocks, block)
	}
	return blocks, nil
}

func (r *MaterialResolver) resolveSlot(sc *scene.Scene, o *scene.Object, slot *scene.MaterialSlot) (defold.MaterialBlock, error) {
	block := defold.MaterialBlock{Name: slot.Name}
	if block.Name == "" {
		block.Name = "default"
	}

	block.Material = slot.Material
	if block.Material == "" {
		block.Material = sc.PropString(o, r.settings.MaterialKey)
	}
	if block.Material == "" {
		block.Material = r.settings.DefaultMaterial
	}

	block.Texture = slot.Texture
	if block.Texture == "" {
		block.Texture = sc.PropString(o, r.settings.TextureKey)
	}
	if block.Texture == "" && slot.BaseColorImage != "" {
		if img, ok := sc.Images[slot.BaseColorImage]; ok {
			texture, err := r.resolveImage(img)
			if err != nil {
				return block, err
			}
			block.Texture = texture
		}
	}
	if block.Texture == "" {
		block.Texture = config.BuiltinFallbackTexture
	}

	return block, nil
}

func (r *MaterialResolver) resolveImage(img *scene.Image) (string, error) {
	if r.settings.ExportTextures {
		return r.textures.Export(img)
	}
	// textures are managed by hand: reference by name only
	if img.Path != "" {
		return r.paths.Texture(filepath.Base(img.Path)).Project, nil
	}
	return "", nil
}
