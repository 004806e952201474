package defold

import (
	"io"
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

const trsEpsilon = 1e-9

// Instance is one referenced-prototype placement inside a collection.
type Instance struct {
	Id        string
	Prototype string
	Position  mgl32.Vec3
	Rotation  mgl32.Quat
	Scale     mgl32.Vec3
}

// InstanceGroup gathers the instances of one prototype under a shared
// parent node named after the prototype.
type InstanceGroup struct {
	Id        string
	Instances []Instance
}

type Collection struct {
	Name   string
	Groups []InstanceGroup
}

// Write emits the collection: all instances flat, then a synthetic root
// embedded instance parenting one embedded instance per group, which in
// turn parents that group's instances. Transform sub-blocks are omitted
// when they hold the default value, matching editor output.
func (c *Collection) Write(w io.Writer) error {
	e := newEmitter(w)

	e.printf("name: %q\n", c.Name)

	for _, g := range c.Groups {
		for _, inst := range g.Instances {
			e.print("instances {\n")
			e.printf("  id: %q\n", inst.Id)
			e.printf("  prototype: %q\n", inst.Prototype)
			writePosition(e, inst.Position)
			writeRotation(e, inst.Rotation)
			writeScale(e, inst.Scale)
			e.print("}\n")
		}
	}

	e.print("scale_along_z: 0\n")

	e.print("embedded_instances {\n")
	e.print("  id: \"root\"\n")
	for _, g := range c.Groups {
		e.printf("  children: %q\n", g.Id)
	}
	e.print("  data: \"\"\n")
	e.print("}\n")

	for _, g := range c.Groups {
		e.print("embedded_instances {\n")
		e.printf("  id: %q\n", g.Id)
		for _, inst := range g.Instances {
			e.printf("  children: %q\n", inst.Id)
		}
		e.print("  data: \"\"\n")
		e.print("}\n")
	}

	return e.flush()
}

func nonDefault(v float32, def float64) bool {
	return math.Abs(float64(v)-def) > trsEpsilon
}

func writePosition(e *emitter, p mgl32.Vec3) {
	if !nonDefault(p.X(), 0) && !nonDefault(p.Y(), 0) && !nonDefault(p.Z(), 0) {
		return
	}
	e.print("  position {\n")
	e.printf("    x: %.6f\n", p.X())
	e.printf("    y: %.6f\n", p.Y())
	e.printf("    z: %.6f\n", p.Z())
	e.print("  }\n")
}

func writeRotation(e *emitter, q mgl32.Quat) {
	if !nonDefault(q.X(), 0) && !nonDefault(q.Y(), 0) && !nonDefault(q.Z(), 0) && !nonDefault(q.W, 1) {
		return
	}
	e.print("  rotation {\n")
	e.printf("    x: %.6f\n", q.X())
	e.printf("    y: %.6f\n", q.Y())
	e.printf("    z: %.6f\n", q.Z())
	e.printf("    w: %.6f\n", q.W)
	e.print("  }\n")
}

func writeScale(e *emitter, s mgl32.Vec3) {
	if !nonDefault(s.X(), 1) && !nonDefault(s.Y(), 1) && !nonDefault(s.Z(), 1) {
		return
	}
	e.print("  scale3 {\n")
	e.printf("    x: %.6f\n", s.X())
	e.printf("    y: %.6f\n", s.Y())
	e.printf("    z: %.6f\n", s.Z())
	e.print("  }\n")
}
