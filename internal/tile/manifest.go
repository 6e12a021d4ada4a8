package tile

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Manifest is the on-disk tile list.
type Manifest struct {
	Title string `yaml:"title,omitempty"`
	Tiles []Spec `yaml:"tiles"`
}

// LoadManifest reads and parses a YAML manifest from the given path.
func LoadManifest(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read manifest: %w", err)
	}
	manifest, err := ParseManifest(data)
	if err != nil {
		return nil, fmt.Errorf("parse manifest %s: %w", path, err)
	}
	if manifest.Title == "" {
		base := filepath.Base(path)
		manifest.Title = strings.TrimSuffix(base, filepath.Ext(base))
	}
	return manifest, nil
}

// ParseManifest decodes manifest bytes and validates the tile entries.
func ParseManifest(data []byte) (*Manifest, error) {
	var manifest Manifest
	if err := yaml.Unmarshal(data, &manifest); err != nil {
		return nil, err
	}
	for i, spec := range manifest.Tiles {
		if strings.TrimSpace(spec.Title) == "" {
			return nil, fmt.Errorf("tile %d: title is required", i)
		}
	}
	return &manifest, nil
}
