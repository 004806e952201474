package export

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/pkg/errors"

	"github.com/mogaika/blender2defold/config"
	"github.com/mogaika/blender2defold/scene"
	"github.com/mogaika/blender2defold/utils"
)

// Prototype is one distinct tag value: the shared mesh, material and
// collision configuration every instance of that tag references.
// Prototype-level fields come from the first tagged object encountered;
// later objects with the same tag only contribute instances.
type Prototype struct {
	Id        string
	Object    *scene.Object
	Mesh      *scene.Mesh
	Collision CollisionConfig
}

type CollisionConfig struct {
	Enabled bool
	Group   string
	Mask    string
}

// Instance is one placement of a prototype, in Defold-space TRS.
type Instance struct {
	Id        string
	Prototype string
	Object    *scene.Object
	Position  mgl32.Vec3
	Rotation  mgl32.Quat
	Scale     mgl32.Vec3
}

// SceneExport is the in-memory result of one grouping pass, alive for
// the duration of a single run.
type SceneExport struct {
	Prototypes map[string]*Prototype
	Order      []string // prototype ids, first-appearance order
	Instances  []*Instance
}

// BuildPrototypes groups tagged mesh objects into prototypes and
// instances. Objects pass through three filters in order: mesh type,
// visibility (when visibleOnly), presence of the prototype tag.
func BuildPrototypes(sc *scene.Scene, objects []*scene.Object, s *config.Settings, visibleOnly bool) (*SceneExport, error) {
	se := &SceneExport{
		Prototypes: make(map[string]*Prototype),
	}
	counters := make(map[string]int)

	for _, o := range objects {
		if o.Type != scene.ObjectTypeMesh {
			continue
		}
		if visibleOnly && !o.Visible {
			continue
		}

		tag := sc.PropString(o, s.PrototypeKey)
		if tag == "" {
			continue
		}
		id := utils.SanitizeID(tag)

		if _, ok := se.Prototypes[id]; !ok {
			mesh, ok := sc.Meshes[o.Mesh]
			if !ok {
				return nil, errors.Errorf("object %q references unknown mesh %q", o.Name, o.Mesh)
			}
			se.Prototypes[id] = &Prototype{
				Id:        id,
				Object:    o,
				Mesh:      mesh,
				Collision: collisionConfig(sc, o, s),
			}
			se.Order = append(se.Order, id)
		}

		counters[id]++
		pos, rot, scl := utils.DecomposeTRS(utils.BlenderToDefold(o.WorldMatrix()))
		se.Instances = append(se.Instances, &Instance{
			Id:        fmt.Sprintf("%s_%03d", id, counters[id]),
			Prototype: id,
			Object:    o,
			Position:  pos,
			Rotation:  rot,
			Scale:     scl,
		})
	}

	if len(se.Prototypes) == 0 {
		return nil, ErrNoMatchingObjects
	}

	return se, nil
}

func collisionConfig(sc *scene.Scene, o *scene.Object, s *config.Settings) CollisionConfig {
	cfg := CollisionConfig{
		Enabled: sc.PropBool(o, s.CollisionKey),
		Group:   sc.PropString(o, s.CollisionGroupKey),
		Mask:    sc.PropString(o, s.CollisionMaskKey),
	}
	if cfg.Group == "" {
		cfg.Group = "default"
	}
	if cfg.Mask == "" {
		cfg.Mask = "default"
	}
	return cfg
}
