package catalog

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadFromFile reads a plan-year catalog from a YAML file, for refreshing
// the premium and threshold figures without a rebuild. The file must define
// the same three plans the built-in catalog does.
func LoadFromFile(filename string) (*Catalog, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file %s: %w", filename, err)
	}

	var cat Catalog
	if err := yaml.Unmarshal(data, &cat); err != nil {
		return nil, fmt.Errorf("failed to parse catalog YAML: %w", err)
	}

	if err := cat.Validate(); err != nil {
		return nil, fmt.Errorf("catalog validation failed: %w", err)
	}

	return &cat, nil
}
