package config

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

const (
	BuiltinDefaultMaterial = "/builtins/materials/model.material"
	BuiltinFallbackTexture = "/builtins/assets/images/logo/logo_256.png"
)

// Settings is the whole configuration surface of the exporter. Folder
// names are project-relative, every one independently overridable.
type Settings struct {
	ProjectRoot    string `yaml:"project_root"`
	CollectionName string `yaml:"collection_name"`

	ExportVisibleOnly bool `yaml:"export_visible_only"`
	ExportTextures    bool `yaml:"export_textures"`

	DefaultMaterial string `yaml:"default_material"`

	ModelsDir     string `yaml:"models_dir"`
	PrefabsDir    string `yaml:"prefabs_dir"`
	ScenesDir     string `yaml:"scenes_dir"`
	TexturesDir   string `yaml:"textures_dir"`
	CollisionsDir string `yaml:"collisions_dir"`

	// Custom property keys looked up on scene objects.
	PrototypeKey      string `yaml:"prototype_key"`
	CollisionKey      string `yaml:"collision_key"`
	CollisionGroupKey string `yaml:"collision_group_key"`
	CollisionMaskKey  string `yaml:"collision_mask_key"`
	MaterialKey       string `yaml:"material_key"`
	TextureKey        string `yaml:"texture_key"`
}

func Default() Settings {
	return Settings{
		CollectionName: "scene_from_blender",

		ExportVisibleOnly: true,
		ExportTextures:    true,

		DefaultMaterial: BuiltinDefaultMaterial,

		ModelsDir:     "assets/models",
		PrefabsDir:    "assets/prefabs",
		ScenesDir:     "assets/scenes",
		TexturesDir:   "assets/textures",
		CollisionsDir: "assets/collisions",

		PrototypeKey:      "defold_prototype",
		CollisionKey:      "defold_collision",
		CollisionGroupKey: "collision_group",
		CollisionMaskKey:  "collision_mask",
		MaterialKey:       "defold_material",
		TextureKey:        "defold_texture",
	}
}

// Load reads a settings YAML over the defaults, so a partial file only
// overrides what it names.
func Load(path string) (Settings, error) {
	s := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return s, errors.Wrapf(err, "Failed to read settings %q", path)
	}

	if err := yaml.Unmarshal(data, &s); err != nil {
		return s, errors.Wrapf(err, "Failed to parse settings %q", path)
	}

	return s, nil
}

func (s *Settings) Validate() error {
	if s.ProjectRoot == "" {
		return errors.New("Project root is empty")
	}
	if fi, err := os.Stat(s.ProjectRoot); err != nil || !fi.IsDir() {
		return errors.Errorf("Project root %q is not a directory", s.ProjectRoot)
	}
	if s.DefaultMaterial == "" {
		s.DefaultMaterial = BuiltinDefaultMaterial
	}
	if s.CollectionName == "" {
		return errors.New("Collection name is empty")
	}
	return nil
}
