// Package catalog holds the food reference set: a fixed built-in table plus
// the user's custom foods.
package catalog

import (
	"slices"
	"strings"

	"github.com/google/uuid"
)

const customIDPrefix = "custom-food-"

// newCustomID returns a fresh custom food identifier.
var newCustomID = func() string {
	return customIDPrefix + uuid.NewString()
}

// Catalog is an immutable view over built-in and custom foods. Mutating
// operations return a new Catalog and leave the receiver untouched.
type Catalog struct {
	builtin []Food
	custom  []Food
}

// New creates a catalog. Both slices are copied.
func New(builtin, custom []Food) *Catalog {
	return &Catalog{
		builtin: slices.Clone(builtin),
		custom:  slices.Clone(custom),
	}
}

// FindByID resolves id, checking custom foods before built-in ones so a custom
// food with a colliding identifier shadows the built-in entry.
func (c *Catalog) FindByID(id string) (Food, bool) {
	if i := indexOf(c.custom, id); i >= 0 {
		return c.custom[i], true
	}
	if i := indexOf(c.builtin, id); i >= 0 {
		return c.builtin[i], true
	}
	return Food{}, false
}

// All returns custom foods followed by built-in foods.
func (c *Catalog) All() []Food {
	out := make([]Food, 0, len(c.custom)+len(c.builtin))
	out = append(out, c.custom...)
	return append(out, c.builtin...)
}

// Builtin returns a copy of the built-in foods.
func (c *Catalog) Builtin() []Food {
	return slices.Clone(c.builtin)
}

// Custom returns a copy of the custom foods.
func (c *Catalog) Custom() []Food {
	return slices.Clone(c.custom)
}

// IsCustom reports whether id names a custom food.
func (c *Catalog) IsCustom(id string) bool {
	return indexOf(c.custom, id) >= 0
}

// WithCustom returns a catalog sharing the built-in table with a new custom
// list.
func (c *Catalog) WithCustom(custom []Food) *Catalog {
	return &Catalog{builtin: c.builtin, custom: slices.Clone(custom)}
}

// CreateCustom appends a new custom food with a fresh identifier. Calories are
// derived from the macros.
func (c *Catalog) CreateCustom(fields CustomFields) (*Catalog, Food, error) {
	if err := fields.Validate(); err != nil {
		return c, Food{}, err
	}
	unit := fields.Unit
	if unit == "" {
		unit = Grams
	}
	image := fields.Image
	if image == "" {
		image = DefaultImage
	}
	food := Food{
		ID:              newCustomID(),
		Name:            strings.TrimSpace(fields.Name),
		Category:        fields.Category,
		Image:           image,
		Unit:            unit,
		NutritionalInfo: fields.info(),
	}
	custom := append(slices.Clone(c.custom), food)
	return c.WithCustom(custom), food, nil
}

// UpdateCustom replaces the custom food with the given id. Missing unit and
// image keep the existing record's values. An unknown id is a no-op and
// reports false.
func (c *Catalog) UpdateCustom(id string, fields CustomFields) (*Catalog, Food, bool, error) {
	if err := fields.Validate(); err != nil {
		return c, Food{}, false, err
	}
	i := indexOf(c.custom, id)
	if i < 0 {
		return c, Food{}, false, nil
	}
	existing := c.custom[i]
	unit := fields.Unit
	if unit == "" {
		unit = existing.Unit
	}
	if unit == "" {
		unit = Grams
	}
	image := fields.Image
	if image == "" {
		image = existing.Image
	}
	if image == "" {
		image = DefaultImage
	}
	food := Food{
		ID:              id,
		Name:            strings.TrimSpace(fields.Name),
		Category:        fields.Category,
		Image:           image,
		Unit:            unit,
		NutritionalInfo: fields.info(),
	}
	custom := slices.Clone(c.custom)
	custom[i] = food
	return c.WithCustom(custom), food, true, nil
}

// DeleteCustom removes every custom food with the given id. Absence is a
// no-op.
func (c *Catalog) DeleteCustom(id string) *Catalog {
	custom := slices.DeleteFunc(slices.Clone(c.custom), func(f Food) bool {
		return f.ID == id
	})
	return c.WithCustom(custom)
}

func indexOf(foods []Food, id string) int {
	return slices.IndexFunc(foods, func(f Food) bool {
		return f.ID == id
	})
}
