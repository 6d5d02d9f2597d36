package templates

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Loader handles loading templates from a directory.
type Loader struct {
	Root string
}

// NewLoader creates a new template loader.
func NewLoader(root string) *Loader {
	return &Loader{Root: root}
}

// LoadAll recursively scans and loads all template files.
// Returns templates sorted by ID for deterministic ordering. Files that
// fail to parse are skipped.
func (l *Loader) LoadAll() ([]Template, error) {
	var list []Template

	err := filepath.WalkDir(l.Root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !isSupportedExtension(filepath.Ext(path)) {
			return nil
		}

		t, err := l.LoadFile(path)
		if err != nil {
			// Skip invalid files
			return nil
		}
		list = append(list, t)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking directory %s: %w", l.Root, err)
	}

	sort.Slice(list, func(i, j int) bool {
		return list[i].ID < list[j].ID
	})
	return list, nil
}

// LoadFile loads a single template file.
func (l *Loader) LoadFile(path string) (Template, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Template{}, fmt.Errorf("reading file %s: %w", path, err)
	}

	t, err := ParseYAML(data)
	if err != nil {
		return Template{}, fmt.Errorf("parsing file %s: %w", path, err)
	}
	t.FilePath = path
	return t, nil
}

func isSupportedExtension(ext string) bool {
	switch strings.ToLower(ext) {
	case ".yaml", ".yml":
		return true
	}
	return false
}
