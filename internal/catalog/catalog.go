// Package catalog ships the built-in destination reference data. The catalog
// is small and loaded whole; there is no pagination.
package catalog

import (
	_ "embed"
	"fmt"

	"github.com/ghodss/yaml"

	"github.com/Parindya2/TripRoute/internal/domain"
)

//go:embed destinations.yaml
var destinationsYAML []byte

type catalogFile struct {
	Destinations []domain.Destination `json:"destinations"`
}

// Load parses the embedded catalog. Entries must carry an ID and a name.
func Load() ([]domain.Destination, error) {
	var file catalogFile
	if err := yaml.Unmarshal(destinationsYAML, &file); err != nil {
		return nil, fmt.Errorf("catalog: parse destinations: %w", err)
	}
	if len(file.Destinations) == 0 {
		return nil, fmt.Errorf("catalog: no destinations defined")
	}

	seen := make(map[string]bool, len(file.Destinations))
	for _, d := range file.Destinations {
		if d.ID == "" || d.Name == "" {
			return nil, fmt.Errorf("catalog: destination missing id or name")
		}
		if seen[d.ID] {
			return nil, fmt.Errorf("catalog: duplicate destination id %q", d.ID)
		}
		seen[d.ID] = true
	}
	return file.Destinations, nil
}
