package shapes

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/milk9111/hitbox"
)

// Library holds every shape spec found in a directory, keyed by name. Specs
// without a name fall back to their file's basename.
type Library struct {
	dir   string
	specs map[string]*Spec
}

// LoadLibrary reads all yaml shape files in dir.
func LoadLibrary(dir string) (*Library, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("shapes: read dir %s: %w", dir, err)
	}

	lib := &Library{dir: dir, specs: make(map[string]*Spec)}
	for _, entry := range entries {
		if entry.IsDir() || !isShapeFile(entry.Name()) {
			continue
		}
		if err := lib.Reload(filepath.Join(dir, entry.Name())); err != nil {
			return nil, err
		}
	}
	return lib, nil
}

// Reload re-reads a single shape file into the library. Used directly by
// watcher consumers when a file changes on disk.
func (l *Library) Reload(path string) error {
	spec, err := LoadSpec(path)
	if err != nil {
		return err
	}
	if spec.Name == "" {
		spec.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	l.specs[spec.Name] = spec
	return nil
}

// Get builds a fresh hitbox for the named shape. Each call returns an
// independent instance.
func (l *Library) Get(name string) (*hitbox.Hitbox, bool) {
	spec, ok := l.specs[name]
	if !ok {
		return nil, false
	}
	return spec.Hitbox(), true
}

// Spec returns the raw spec for the named shape.
func (l *Library) Spec(name string) (*Spec, bool) {
	spec, ok := l.specs[name]
	return spec, ok
}

// Names returns the loaded shape names, sorted.
func (l *Library) Names() []string {
	names := make([]string, 0, len(l.specs))
	for name := range l.specs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func isShapeFile(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".yaml" || ext == ".yml"
}
