package tile

import (
	"strings"

	"github.com/google/uuid"
)

// Spec describes a tile as declared in the manifest or supplied by the host.
// The id is optional; one is generated when missing.
type Spec struct {
	ID       string   `yaml:"id,omitempty"`
	Title    string   `yaml:"title"`
	Subtitle string   `yaml:"subtitle,omitempty"`
	Icon     string   `yaml:"icon,omitempty"`
	Command  []string `yaml:"command,omitempty"`
}

// Tile is a single grid entry with a stable identity.
type Tile struct {
	ID       string
	Title    string
	Subtitle string
	Icon     string
	Command  []string
}

// New materialises a Spec into a Tile, generating a collision-resistant id
// when the spec omits one.
func New(spec Spec) Tile {
	id := strings.TrimSpace(spec.ID)
	if id == "" {
		id = uuid.NewString()
	}
	return Tile{
		ID:       id,
		Title:    spec.Title,
		Subtitle: spec.Subtitle,
		Icon:     spec.Icon,
		Command:  append([]string(nil), spec.Command...),
	}
}

// Label returns the display text for the tile's first line.
func (t Tile) Label() string {
	if t.Icon == "" {
		return t.Title
	}
	return t.Icon + " " + t.Title
}
