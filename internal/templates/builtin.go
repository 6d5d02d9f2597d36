package templates

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"

	"github.com/vovakirdan/landsim/internal/landgen"
	"github.com/vovakirdan/landsim/internal/registry"
)

//go:embed builtin/*.yaml
var builtinFS embed.FS

// Builtin parses the templates compiled into the binary, sorted by ID.
func Builtin() ([]Template, error) {
	entries, err := fs.ReadDir(builtinFS, "builtin")
	if err != nil {
		return nil, fmt.Errorf("templates: read builtin: %w", err)
	}

	list := make([]Template, 0, len(entries))
	for _, e := range entries {
		p := path.Join("builtin", e.Name())
		data, err := builtinFS.ReadFile(p)
		if err != nil {
			return nil, fmt.Errorf("templates: read %s: %w", p, err)
		}
		t, err := ParseYAML(data)
		if err != nil {
			return nil, fmt.Errorf("templates: %s: %w", p, err)
		}
		t.FilePath = p
		list = append(list, t)
	}

	sort.Slice(list, func(i, j int) bool {
		return list[i].ID < list[j].ID
	})
	return list, nil
}

// Register adds t to the global registry.
func Register(t Template) {
	outline := t.Outline.Clone()
	registry.Register(registry.TemplateInfo{
		ID:          t.ID,
		Name:        t.Name,
		Description: t.Description,
	}, func() landgen.OutlineTemplate {
		return outline.Clone()
	})
}

func init() {
	list, err := Builtin()
	if err != nil {
		panic(err)
	}
	for _, t := range list {
		Register(t)
	}
}
