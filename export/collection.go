package export

import (
	"github.com/mogaika/blender2defold/defold"
)

// BuildCollection groups instances by prototype, in order of first
// appearance among the instances, and checks that every instance's
// prototype was actually built in this run.
func BuildCollection(name string, se *SceneExport, paths *Paths) (*defold.Collection, error) {
	c := &defold.Collection{Name: name}
	groups := make(map[string]int)

	for _, inst := range se.Instances {
		proto, ok := se.Prototypes[inst.Prototype]
		if !ok {
			return nil, &MissingPrototypeError{Instance: inst.Id, Prototype: inst.Prototype}
		}

		gi, ok := groups[proto.Id]
		if !ok {
			gi = len(c.Groups)
			groups[proto.Id] = gi
			c.Groups = append(c.Groups, defold.InstanceGroup{Id: proto.Id})
		}

		c.Groups[gi].Instances = append(c.Groups[gi].Instances, defold.Instance{
			Id:        inst.Id,
			Prototype: paths.Prefab(proto.Id).Project,
			Position:  inst.Position,
			Rotation:  inst.Rotation,
			Scale:     inst.Scale,
		})
	}

	return c, nil
}
