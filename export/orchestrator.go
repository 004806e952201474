package export

import (
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/mogaika/blender2defold/config"
	"github.com/mogaika/blender2defold/scene"
)

// Exporter sequences the export pipeline. Runs are synchronous and
// abort on the first fatal error; everything written before the abort
// stays in place and is safe to regenerate by re-running, since every
// write except the prefab is an idempotent overwrite.
type Exporter struct {
	settings *config.Settings
	paths    *Paths
	assets   *AssetExporter
	log      *logrus.Logger
}

// Report sums up one successful run.
type Report struct {
	Prototypes int    `json:"prototypes"`
	Instances  int    `json:"instances"`
	Collection string `json:"collection,omitempty"`
}

func New(s *config.Settings, mesh MeshExporter, log *logrus.Logger) *Exporter {
	if log == nil {
		log = logrus.StandardLogger()
	}
	paths := NewPaths(s)
	textures := NewTextureExporter(paths, log)
	materials := NewMaterialResolver(s, paths, textures)

	return &Exporter{
		settings: s,
		paths:    paths,
		assets:   NewAssetExporter(s, paths, mesh, materials, log),
		log:      log,
	}
}

// ExportScene refreshes every prototype's asset set and rewrites the
// collection file.
func (e *Exporter) ExportScene(sc *scene.Scene) (*Report, error) {
	se, err := e.exportAssets(sc)
	if err != nil {
		return nil, err
	}

	collection, err := BuildCollection(e.settings.CollectionName, se, e.paths)
	if err != nil {
		return nil, err
	}

	collectionPath := e.paths.Collection(e.settings.CollectionName)
	if err := writeAsset(collectionPath.Abs, collection.Write); err != nil {
		return nil, err
	}
	e.log.Infof("[export] collection %v: %d prototypes, %d instances",
		collectionPath.Project, len(se.Order), len(se.Instances))

	return &Report{
		Prototypes: len(se.Order),
		Instances:  len(se.Instances),
		Collection: collectionPath.Project,
	}, nil
}

// ExportAssets refreshes every prototype's asset set without touching
// the collection file.
func (e *Exporter) ExportAssets(sc *scene.Scene) (*Report, error) {
	se, err := e.exportAssets(sc)
	if err != nil {
		return nil, err
	}
	return &Report{Prototypes: len(se.Order), Instances: len(se.Instances)}, nil
}

// ExportObject refreshes the asset set of the single prototype tagged
// on the named object. The collection file is explicitly not written,
// so one asset can be regenerated without disturbing the shared scene.
func (e *Exporter) ExportObject(sc *scene.Scene, objectName string) (*Report, error) {
	if err := e.settings.Validate(); err != nil {
		return nil, err
	}

	o := sc.ObjectByName(objectName)
	if o == nil {
		return nil, errors.Errorf("object %q not found in scene dump", objectName)
	}

	// no visibility filter: an explicitly selected object exports even
	// when hidden
	se, err := BuildPrototypes(sc, []*scene.Object{o}, e.settings, false)
	if err != nil {
		return nil, err
	}

	for _, id := range se.Order {
		if err := e.assets.Export(sc, se.Prototypes[id]); err != nil {
			return nil, err
		}
		e.log.Infof("[export] prototype %v refreshed", id)
	}

	return &Report{Prototypes: len(se.Order), Instances: len(se.Instances)}, nil
}

func (e *Exporter) exportAssets(sc *scene.Scene) (*SceneExport, error) {
	if err := e.settings.Validate(); err != nil {
		return nil, err
	}

	se, err := BuildPrototypes(sc, sc.Objects, e.settings, e.settings.ExportVisibleOnly)
	if err != nil {
		return nil, err
	}

	for _, id := range se.Order {
		if err := e.assets.Export(sc, se.Prototypes[id]); err != nil {
			return nil, err
		}
		e.log.Infof("[export] prototype %v", id)
	}

	return se, nil
}
