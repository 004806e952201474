package defold

import (
	"io"

	"github.com/go-gl/mathgl/mgl32"
)

// Static collision bodies exported from scenes get fixed physical
// parameters; anything fancier is tuned in the Defold editor afterwards.
const (
	DefaultCollisionFriction    = 0.1
	DefaultCollisionRestitution = 0.5
	DefaultCollisionGroup       = "default"
)

type ConvexShape struct {
	Points []mgl32.Vec3
}

func (s *ConvexShape) Write(w io.Writer) error {
	e := newEmitter(w)

	e.print("shape_type: TYPE_HULL\n")
	for _, p := range s.Points {
		e.printf("data: %s\n", formatFloat(p.X()))
		e.printf("data: %s\n", formatFloat(p.Y()))
		e.printf("data: %s\n", formatFloat(p.Z()))
	}

	return e.flush()
}

type CollisionObject struct {
	CollisionShape string
	Group          string
	Mask           string
}

func (c *CollisionObject) Write(w io.Writer) error {
	group := c.Group
	if group == "" {
		group = DefaultCollisionGroup
	}
	mask := c.Mask
	if mask == "" {
		mask = DefaultCollisionGroup
	}

	e := newEmitter(w)

	e.printf("collision_shape: %q\n", c.CollisionShape)
	e.print("type: COLLISION_OBJECT_TYPE_STATIC\n")
	e.print("mass: 0.0\n")
	e.printf("friction: %.3f\n", DefaultCollisionFriction)
	e.printf("restitution: %.3f\n", DefaultCollisionRestitution)
	e.printf("group: %q\n", group)
	e.printf("mask: %q\n", mask)

	return e.flush()
}
