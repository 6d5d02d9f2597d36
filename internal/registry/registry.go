// Package registry provides a global registry of outline templates.
// Template sources register themselves in init() functions, allowing the
// CLI to discover maps without hardcoded dependencies.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/landsim/internal/landgen"
)

// TemplateInfo contains metadata about a registered template.
type TemplateInfo struct {
	ID          string
	Name        string
	Description string
	Size        string // "WxH", for listings
}

// Factory returns a fresh copy of a template. Callers own the result.
type Factory func() landgen.OutlineTemplate

var (
	factories = make(map[string]Factory)
	infos     = make(map[string]TemplateInfo)
	mu        sync.RWMutex
)

// Register adds a template factory to the registry.
// Panics if a template with the same ID is already registered.
func Register(info TemplateInfo, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[info.ID]; exists {
		panic(fmt.Sprintf("registry: template %q already registered", info.ID))
	}

	if info.Size == "" {
		t := f()
		info.Size = fmt.Sprintf("%dx%d", t.Size.W, t.Size.H)
	}
	factories[info.ID] = f
	infos[info.ID] = info
}

// List returns information about all registered templates, sorted by ID.
func List() []TemplateInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]TemplateInfo, 0, len(infos))
	for _, info := range infos {
		result = append(result, info)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create returns a new copy of the template registered under id.
func Create(id string) (landgen.OutlineTemplate, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return landgen.OutlineTemplate{}, fmt.Errorf("registry: unknown template %q", id)
	}

	return f(), nil
}

// Exists checks if a template with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
