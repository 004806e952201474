package export

import (
	"testing"

	"github.com/pkg/errors"
)

func TestBuildCollectionGrouping(t *testing.T) {
	s := testSettings(t)

	h1 := meshObject("Hero1", "hero", identityMatrix(), nil)
	c1 := meshObject("Crate1", "crate", translateMatrix(1, 0, 0), nil)
	h2 := meshObject("Hero2", "hero", translateMatrix(2, 0, 0), nil)

	sc := testScene(h1, c1, h2)
	se, err := BuildPrototypes(sc, sc.Objects, s, true)
	if err != nil {
		t.Fatal(err)
	}

	c, err := BuildCollection("level01", se, NewPaths(s))
	if err != nil {
		t.Fatal(err)
	}

	if c.Name != "level01" {
		t.Errorf("name=%q", c.Name)
	}
	if len(c.Groups) != 2 {
		t.Fatalf("got %d groups; expected one per distinct prototype", len(c.Groups))
	}
	// first-appearance order among instances
	if c.Groups[0].Id != "hero" || c.Groups[1].Id != "crate" {
		t.Errorf("group order=%v,%v; expected hero,crate", c.Groups[0].Id, c.Groups[1].Id)
	}
	if len(c.Groups[0].Instances) != 2 || len(c.Groups[1].Instances) != 1 {
		t.Errorf("instance grouping wrong: %d/%d", len(c.Groups[0].Instances), len(c.Groups[1].Instances))
	}
	if c.Groups[0].Instances[0].Prototype != "/assets/prefabs/hero.go" {
		t.Errorf("prototype path=%q", c.Groups[0].Instances[0].Prototype)
	}
}

func TestBuildCollectionMissingPrototype(t *testing.T) {
	s := testSettings(t)

	se := &SceneExport{
		Prototypes: map[string]*Prototype{},
		Instances: []*Instance{
			{Id: "ghost_001", Prototype: "ghost"},
		},
	}

	_, err := BuildCollection("level01", se, NewPaths(s))
	var mpe *MissingPrototypeError
	if !errors.As(err, &mpe) {
		t.Fatalf("expected MissingPrototypeError, got %v", err)
	}
	if mpe.Prototype != "ghost" || mpe.Instance != "ghost_001" {
		t.Errorf("error fields: %+v", mpe)
	}
}
