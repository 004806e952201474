package export

import (
	"io"
	"os"
	"path/filepath"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/sirupsen/logrus"

	"github.com/mogaika/blender2defold/config"
	"github.com/mogaika/blender2defold/defold"
	"github.com/mogaika/blender2defold/scene"
	"github.com/mogaika/blender2defold/utils"
)

// MeshExporter writes a prototype's geometry into an engine-supported
// format. The built-in implementation lives in the glb package; tests
// plug in fakes.
type MeshExporter interface {
	// Ext is the produced file extension without the dot.
	Ext() string
	// Export writes mesh geometry to dst. slotNames carries the
	// material name of every slot so mesh material names line up with
	// the .model blocks.
	Export(mesh *scene.Mesh, slotNames []string, dst string) error
}

// AssetExporter writes the per-prototype file set. Every step overwrites
// its output except the prefab, which is created once and then left to
// the user (manual edits in the Defold editor survive re-export).
type AssetExporter struct {
	settings  *config.Settings
	paths     *Paths
	mesh      MeshExporter
	materials *MaterialResolver
	log       *logrus.Logger
}

func NewAssetExporter(s *config.Settings, paths *Paths, mesh MeshExporter,
	materials *MaterialResolver, log *logrus.Logger) *AssetExporter {
	return &AssetExporter{
		settings:  s,
		paths:     paths,
		mesh:      mesh,
		materials: materials,
		log:       log,
	}
}

func (e *AssetExporter) Export(sc *scene.Scene, proto *Prototype) error {
	blocks, err := e.materials.Resolve(sc, proto)
	if err != nil {
		return err
	}

	slotNames := make([]string, len(proto.Object.MaterialSlots))
	for i, slot := range proto.Object.MaterialSlots {
		if slot.Name != "" {
			slotNames[i] = slot.Name
		} else {
			slotNames[i] = "default"
		}
	}

	meshPath := e.paths.MeshAsset(proto.Id, e.mesh.Ext())
	if err := os.MkdirAll(filepath.Dir(meshPath.Abs), 0777); err != nil {
		return &AssetWriteError{Path: meshPath.Abs, Err: err}
	}
	if err := e.mesh.Export(proto.Mesh, slotNames, meshPath.Abs); err != nil {
		return &AssetWriteError{Path: meshPath.Abs, Err: err}
	}
	e.log.Debugf("[assets] %v: mesh %v", proto.Id, meshPath.Project)

	model := &defold.Model{
		Mesh:      meshPath.Project,
		Name:      proto.Id,
		Materials: blocks,
	}
	modelPath := e.paths.Model(proto.Id)
	if err := writeAsset(modelPath.Abs, model.Write); err != nil {
		return err
	}

	collisionPath := ""
	if proto.Collision.Enabled {
		var err error
		if collisionPath, err = e.exportCollision(proto); err != nil {
			return err
		}
	}

	return e.writePrefabOnce(proto, modelPath.Project, collisionPath)
}

// exportCollision writes the convex shape and the collision object.
// Hull points are expressed in the collision object's local space:
// rotation and scale of the representative object apply, translation
// does not (the engine positions the body through the instance).
func (e *AssetExporter) exportCollision(proto *Prototype) (string, error) {
	rs := utils.AxisConvert3().Mul3(proto.Object.WorldMatrix().Mat3())

	hull := utils.ConvexHull(vec3Slice(proto.Mesh.Positions))
	points := make([]mgl32.Vec3, len(hull))
	for i, p := range hull {
		points[i] = rs.Mul3x1(p)
	}

	shape := &defold.ConvexShape{Points: points}
	shapePath := e.paths.ConvexShape(proto.Id)
	if err := writeAsset(shapePath.Abs, shape.Write); err != nil {
		return "", err
	}

	colObj := &defold.CollisionObject{
		CollisionShape: shapePath.Project,
		Group:          proto.Collision.Group,
		Mask:           proto.Collision.Mask,
	}
	colObjPath := e.paths.CollisionObject(proto.Id)
	if err := writeAsset(colObjPath.Abs, colObj.Write); err != nil {
		return "", err
	}

	return colObjPath.Project, nil
}

// writePrefabOnce creates the .go prefab only if it does not exist yet.
// An existing prefab is the expected steady state, not an error.
func (e *AssetExporter) writePrefabOnce(proto *Prototype, modelPath, collisionPath string) error {
	prefabPath := e.paths.Prefab(proto.Id)

	if _, err := os.Stat(prefabPath.Abs); err == nil {
		e.log.Debugf("[assets] %v: prefab exists, keeping %v", proto.Id, prefabPath.Project)
		return nil
	}

	prefab := &defold.GameObject{
		Components: []defold.Component{{Id: "model", Component: modelPath}},
	}
	if collisionPath != "" {
		prefab.Components = append(prefab.Components,
			defold.Component{Id: "collision", Component: collisionPath})
	}

	return writeAsset(prefabPath.Abs, prefab.Write)
}

func writeAsset(abs string, write func(io.Writer) error) error {
	if err := os.MkdirAll(filepath.Dir(abs), 0777); err != nil {
		return &AssetWriteError{Path: abs, Err: err}
	}

	f, err := os.Create(abs)
	if err != nil {
		return &AssetWriteError{Path: abs, Err: err}
	}

	if err := write(f); err != nil {
		f.Close()
		return &AssetWriteError{Path: abs, Err: err}
	}
	if err := f.Close(); err != nil {
		return &AssetWriteError{Path: abs, Err: err}
	}
	return nil
}

func vec3Slice(positions [][3]float32) []mgl32.Vec3 {
	result := make([]mgl32.Vec3, len(positions))
	for i, p := range positions {
		result[i] = mgl32.Vec3(p)
	}
	return result
}
