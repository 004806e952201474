package export

import (
	"io"
	"os"
	"testing"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/mogaika/blender2defold/config"
	"github.com/mogaika/blender2defold/scene"
)

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func testSettings(t *testing.T) *config.Settings {
	t.Helper()
	s := config.Default()
	s.ProjectRoot = t.TempDir()
	return &s
}

func identityMatrix() [4][4]float32 {
	return [4][4]float32{{1, 0, 0, 0}, {0, 1, 0, 0}, {0, 0, 1, 0}, {0, 0, 0, 1}}
}

func translateMatrix(x, y, z float32) [4][4]float32 {
	return [4][4]float32{{1, 0, 0, x}, {0, 1, 0, y}, {0, 0, 1, z}, {0, 0, 0, 1}}
}

// rotated 90 degrees around Z, then translated
func rotZ90Matrix(x, y, z float32) [4][4]float32 {
	return [4][4]float32{{0, -1, 0, x}, {1, 0, 0, y}, {0, 0, 1, z}, {0, 0, 0, 1}}
}

func cubeMesh(name string) *scene.Mesh {
	return &scene.Mesh{
		Name: name,
		Positions: [][3]float32{
			{-1, -1, -1}, {1, -1, -1}, {-1, 1, -1}, {1, 1, -1},
			{-1, -1, 1}, {1, -1, 1}, {-1, 1, 1}, {1, 1, 1},
		},
		Primitives: []scene.Primitive{
			{MaterialIndex: 0, Indices: []uint32{0, 1, 2, 1, 3, 2}},
		},
	}
}

func meshObject(name, tag string, matrix [4][4]float32, props map[string]interface{}) *scene.Object {
	if props == nil {
		props = map[string]interface{}{}
	}
	if tag != "" {
		props["defold_prototype"] = tag
	}
	return &scene.Object{
		Name:       name,
		Type:       scene.ObjectTypeMesh,
		Visible:    true,
		Mesh:       name + "_mesh",
		Matrix:     matrix,
		Properties: props,
	}
}

func testScene(objects ...*scene.Object) *scene.Scene {
	sc := &scene.Scene{
		Name:   "test",
		Meshes: make(map[string]*scene.Mesh),
		Images: make(map[string]*scene.Image),
	}
	for _, o := range objects {
		sc.Objects = append(sc.Objects, o)
		sc.Meshes[o.Mesh] = cubeMesh(o.Mesh)
	}
	return sc
}

// fakeMesh stands in for the glb exporter in filesystem tests.
type fakeMesh struct {
	calls []string
	fail  bool
}

func (f *fakeMesh) Ext() string { return "glb" }

func (f *fakeMesh) Export(m *scene.Mesh, slotNames []string, dst string) error {
	if f.fail {
		return errors.New("mesh export failed")
	}
	f.calls = append(f.calls, dst)
	return os.WriteFile(dst, []byte("fake-glb:"+m.Name), 0666)
}
