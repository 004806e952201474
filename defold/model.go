package defold

import "io"

// MaterialBlock is one materials entry of a .model file. Name is the
// join key to the mesh's material names, so it must match what the mesh
// asset carries.
type MaterialBlock struct {
	Name     string
	Material string
	Texture  string
}

type Model struct {
	Mesh      string
	Name      string
	Materials []MaterialBlock
}

func (m *Model) Write(w io.Writer) error {
	e := newEmitter(w)

	e.printf("mesh: %q\n", m.Mesh)
	e.printf("name: %q\n", m.Name)

	for _, mat := range m.Materials {
		e.print("materials {\n")
		e.printf("  name: %q\n", mat.Name)
		e.printf("  material: %q\n", mat.Material)
		e.print("  textures {\n")
		e.print("    sampler: \"tex0\"\n")
		e.printf("    texture: %q\n", mat.Texture)
		e.print("  }\n")
		e.print("}\n")
	}

	return e.flush()
}
