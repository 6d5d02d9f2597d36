// Package templates loads outline templates from YAML files.
//
// Documents are checked against an embedded JSON Schema before they are
// decoded, so structural mistakes are reported with a path into the file.
// The built-in catalog ships inside the binary and registers itself with
// the template registry.
package templates

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/landsim/internal/core"
	"github.com/vovakirdan/landsim/internal/landgen"
)

//go:embed template.schema.json
var schemaJSON string

const schemaURL = "template.schema.json"

// ErrSchema wraps schema validation failures.
var ErrSchema = errors.New("templates: document does not match schema")

var (
	schemaOnce sync.Once
	schema     *jsonschema.Schema
	schemaErr  error
)

func compiledSchema() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		schema, schemaErr = jsonschema.CompileString(schemaURL, schemaJSON)
	})
	return schema, schemaErr
}

// YAMLTemplate represents the YAML structure for a template file.
type YAMLTemplate struct {
	ID          string       `yaml:"id"`
	Name        string       `yaml:"name"`
	Description string       `yaml:"description,omitempty"`
	Size        YAMLSize     `yaml:"size"`
	CanMirror   bool         `yaml:"can_mirror"`
	CanFlip     bool         `yaml:"can_flip"`
	Islands     [][]YAMLRect `yaml:"islands"`
	FillPoints  []YAMLPoint  `yaml:"fill_points"`
}

// YAMLSize represents map dimensions.
type YAMLSize struct {
	W int `yaml:"w"`
	H int `yaml:"h"`
}

// YAMLRect is one island rectangle.
type YAMLRect struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
	W int `yaml:"w"`
	H int `yaml:"h"`
}

// YAMLPoint is one fill point.
type YAMLPoint struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

// Template is a parsed catalog entry.
type Template struct {
	ID          string
	Name        string
	Description string
	Outline     landgen.OutlineTemplate
	FilePath    string
}

// ParseYAML validates and parses a template document.
func ParseYAML(data []byte) (Template, error) {
	if err := validateDocument(data); err != nil {
		return Template{}, err
	}

	var yt YAMLTemplate
	if err := yaml.Unmarshal(data, &yt); err != nil {
		return Template{}, fmt.Errorf("yaml unmarshal: %w", err)
	}

	outline := landgen.NewOutlineTemplate(core.Sz(yt.Size.W, yt.Size.H))
	outline.CanMirror = yt.CanMirror
	outline.CanFlip = yt.CanFlip
	outline.Islands = make([][]core.Rect, len(yt.Islands))
	for i, island := range yt.Islands {
		rects := make([]core.Rect, len(island))
		for j, r := range island {
			rects[j] = core.NewRect(r.X, r.Y, r.W, r.H)
		}
		outline.Islands[i] = rects
	}
	outline.FillPoints = make([]core.Point, len(yt.FillPoints))
	for i, p := range yt.FillPoints {
		outline.FillPoints[i] = core.Pt(p.X, p.Y)
	}

	// The schema cannot check coordinates against the size.
	if err := outline.Validate(); err != nil {
		return Template{}, fmt.Errorf("template %q: %w", yt.ID, err)
	}

	name := yt.Name
	if name == "" {
		name = yt.ID
	}
	return Template{
		ID:          yt.ID,
		Name:        name,
		Description: yt.Description,
		Outline:     outline,
	}, nil
}

// validateDocument decodes YAML generically and runs it through the
// schema. The JSON round trip turns YAML scalars into the types the
// validator expects.
func validateDocument(data []byte) error {
	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("yaml unmarshal: %w", err)
	}
	raw, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrSchema, err)
	}
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return fmt.Errorf("%w: %v", ErrSchema, err)
	}

	s, err := compiledSchema()
	if err != nil {
		return fmt.Errorf("templates: compile schema: %w", err)
	}
	if err := s.Validate(v); err != nil {
		return fmt.Errorf("%w: %v", ErrSchema, err)
	}
	return nil
}
