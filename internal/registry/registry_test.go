package registry

import (
	"testing"

	"github.com/vovakirdan/landsim/internal/core"
	"github.com/vovakirdan/landsim/internal/landgen"
)

func boxTemplate() landgen.OutlineTemplate {
	t := landgen.NewOutlineTemplate(core.Sz(64, 32))
	t.Islands = [][]core.Rect{{core.NewRect(4, 30, 1, 1), core.NewRect(50, 30, 1, 1)}}
	t.FillPoints = []core.Point{core.Pt(1, 0)}
	return t
}

func TestRegisterAndCreate(t *testing.T) {
	Register(TemplateInfo{ID: "test-box", Name: "Box"}, boxTemplate)

	if !Exists("test-box") {
		t.Fatal("registered template should exist")
	}

	var found bool
	for _, info := range List() {
		if info.ID == "test-box" {
			found = true
			if info.Size != "64x32" {
				t.Errorf("Size = %q, expected 64x32", info.Size)
			}
		}
	}
	if !found {
		t.Error("List() should include the registered template")
	}

	a, err := Create("test-box")
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	a.Islands[0][0].X = 999
	b, _ := Create("test-box")
	if b.Islands[0][0].X != 4 {
		t.Error("Create() should return independent copies")
	}
}

func TestCreateUnknown(t *testing.T) {
	if _, err := Create("no-such-template"); err == nil {
		t.Error("expected an error for an unknown template")
	}
	if Exists("no-such-template") {
		t.Error("Exists() should be false for an unknown template")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register(TemplateInfo{ID: "test-dup"}, boxTemplate)

	defer func() {
		if recover() == nil {
			t.Error("duplicate registration should panic")
		}
	}()
	Register(TemplateInfo{ID: "test-dup"}, boxTemplate)
}

func TestListSorted(t *testing.T) {
	Register(TemplateInfo{ID: "test-z"}, boxTemplate)
	Register(TemplateInfo{ID: "test-a"}, boxTemplate)

	list := List()
	for i := 1; i < len(list); i++ {
		if list[i-1].ID >= list[i].ID {
			t.Fatalf("List() not sorted at %d: %q >= %q", i, list[i-1].ID, list[i].ID)
		}
	}
}
