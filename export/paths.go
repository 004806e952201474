package export

import (
	"path"
	"path/filepath"

	"github.com/mogaika/blender2defold/config"
)

// AssetPath pairs the absolute on-disk location of an asset with its
// project path, the forward-slash root-relative form Defold files
// reference each other by.
type AssetPath struct {
	Abs     string
	Project string
}

// Paths computes destination paths for every asset kind from the
// project root and the configured subfolder names.
type Paths struct {
	s *config.Settings
}

func NewPaths(s *config.Settings) *Paths {
	return &Paths{s: s}
}

func (p *Paths) resolve(dir, filename string) AssetPath {
	return AssetPath{
		Abs:     filepath.Join(p.s.ProjectRoot, filepath.FromSlash(dir), filename),
		Project: "/" + path.Join(filepath.ToSlash(dir), filename),
	}
}

func (p *Paths) MeshAsset(proto, ext string) AssetPath {
	return p.resolve(p.s.ModelsDir, proto+"."+ext)
}

func (p *Paths) Model(proto string) AssetPath {
	return p.resolve(p.s.ModelsDir, proto+".model")
}

func (p *Paths) Prefab(proto string) AssetPath {
	return p.resolve(p.s.PrefabsDir, proto+".go")
}

func (p *Paths) ConvexShape(proto string) AssetPath {
	return p.resolve(p.s.CollisionsDir, proto+".convexshape")
}

func (p *Paths) CollisionObject(proto string) AssetPath {
	return p.resolve(p.s.CollisionsDir, proto+".collisionobject")
}

func (p *Paths) Texture(filename string) AssetPath {
	return p.resolve(p.s.TexturesDir, filename)
}

func (p *Paths) Collection(name string) AssetPath {
	return p.resolve(p.s.ScenesDir, name+".collection")
}
