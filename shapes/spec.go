// Package shapes persists hitbox polygons as yaml documents and serves them
// from a directory-backed library with optional hot reload.
package shapes

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/milk9111/hitbox"
)

// PointSpec is one vertex (or a position) in a shape document.
type PointSpec struct {
	X float32 `yaml:"x"`
	Y float32 `yaml:"y"`
}

// Spec is the structural, field-by-field persistence form of a hitbox: a
// name, its local vertices in order, and an optional starting position.
// There is no versioning beyond this structure.
type Spec struct {
	Name     string      `yaml:"name"`
	Points   []PointSpec `yaml:"points"`
	Position *PointSpec  `yaml:"position,omitempty"`
}

// LoadSpec reads and decodes a single shape document.
func LoadSpec(path string) (*Spec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("shapes: load %s: %w", path, err)
	}

	var spec Spec
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return nil, fmt.Errorf("shapes: unmarshal %s: %w", path, err)
	}
	return &spec, nil
}

// Encode renders the spec as yaml.
func (s *Spec) Encode() ([]byte, error) {
	data, err := yaml.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("shapes: marshal %s: %w", s.Name, err)
	}
	return data, nil
}

// Save writes the spec as a yaml file.
func (s *Spec) Save(path string) error {
	data, err := s.Encode()
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("shapes: save %s: %w", path, err)
	}
	return nil
}

// Hitbox builds a fresh hitbox from the spec. Each call returns an
// independent instance; moving one does not affect the others.
func (s *Spec) Hitbox() *hitbox.Hitbox {
	points := make([]hitbox.Point, len(s.Points))
	for i, p := range s.Points {
		points[i] = hitbox.Point{X: p.X, Y: p.Y}
	}

	h := hitbox.New(points)
	if s.Position != nil {
		h.SetPosition(hitbox.Point{X: s.Position.X, Y: s.Position.Y})
	}
	return h
}

// FromHitbox captures a hitbox's local vertices and current position into a
// spec ready for persistence.
func FromHitbox(name string, h *hitbox.Hitbox) *Spec {
	spec := &Spec{Name: name}
	for _, p := range h.Points() {
		spec.Points = append(spec.Points, PointSpec{X: p.X, Y: p.Y})
	}
	if pos := h.Position(); pos != (hitbox.Point{}) {
		spec.Position = &PointSpec{X: pos.X, Y: pos.Y}
	}
	return spec
}
