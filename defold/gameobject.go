package defold

import "io"

// GameObject is the prefab (.go file) referencing exported components.
// The exporter only ever creates it once; afterwards it belongs to the
// user, who may add scripts and other components in the Defold editor.
type GameObject struct {
	Components []Component
}

type Component struct {
	Id        string
	Component string
}

func (g *GameObject) Write(w io.Writer) error {
	e := newEmitter(w)

	for _, c := range g.Components {
		e.print("components {\n")
		e.printf("  id: %q\n", c.Id)
		e.printf("  component: %q\n", c.Component)
		e.print("}\n")
	}

	return e.flush()
}
