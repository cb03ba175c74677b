package catalog

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed foods.yaml
var builtinYAML []byte

// LoadBuiltin parses the embedded food table.
func LoadBuiltin() ([]Food, error) {
	return parseFoods(builtinYAML)
}

// Default returns a catalog with the built-in table and no custom foods.
func Default() (*Catalog, error) {
	foods, err := LoadBuiltin()
	if err != nil {
		return nil, err
	}
	return New(foods, nil), nil
}

func parseFoods(data []byte) ([]Food, error) {
	var foods []Food
	if err := yaml.Unmarshal(data, &foods); err != nil {
		return nil, fmt.Errorf("parse food table: %w", err)
	}
	seen := make(map[string]struct{}, len(foods))
	for i, f := range foods {
		if f.ID == "" {
			return nil, fmt.Errorf("food table entry %d: missing id", i)
		}
		if _, dup := seen[f.ID]; dup {
			return nil, fmt.Errorf("food table entry %d: duplicate id %q", i, f.ID)
		}
		seen[f.ID] = struct{}{}
		if !f.Unit.Valid() {
			return nil, fmt.Errorf("food %q: %w", f.ID, ErrInvalidUnit)
		}
	}
	return foods, nil
}
