package catalog

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/janisto/diet-planner/internal/nutrition"
)

// Validation errors for custom food fields.
var (
	ErrEmptyName     = errors.New("food name must not be empty")
	ErrInvalidUnit   = errors.New("unit must be g or unit")
	ErrNegativeMacro = errors.New("nutrient amounts must not be negative")
	ErrNonFinite     = errors.New("nutrient amounts must be finite numbers")
)

// Unit tells how a food's nutritional values are expressed.
type Unit string

// Supported units.
const (
	// Grams: values are per 100 g and quantities are grams.
	Grams Unit = "g"
	// Piece: values are per single item and quantities are counts.
	Piece Unit = "unit"
)

// Valid reports whether u is a known unit.
func (u Unit) Valid() bool {
	return u == Grams || u == Piece
}

// Category of built-in foods. Custom foods may use any text.
type Category string

// Built-in categories.
const (
	Proteins   Category = "proteins"
	Carbs      Category = "carbs"
	Vegetables Category = "vegetables"
	Fruits     Category = "fruits"
	Dairy      Category = "dairy"
	Fats       Category = "fats"
	Beverages  Category = "beverages"
	Other      Category = "other"
)

// Categories lists the fixed category enumeration in display order.
func Categories() []Category {
	return []Category{Proteins, Carbs, Vegetables, Fruits, Dairy, Fats, Beverages, Other}
}

// DefaultImage is the glyph assigned to custom foods without one.
const DefaultImage = "🍽️"

// Food is a catalog entry.
type Food struct {
	ID              string         `json:"id"              yaml:"id"              cbor:"id"`
	Name            string         `json:"name"            yaml:"name"            cbor:"name"`
	Category        string         `json:"category"        yaml:"category"        cbor:"category"`
	Image           string         `json:"image,omitempty" yaml:"image"           cbor:"image,omitempty"`
	Unit            Unit           `json:"unit"            yaml:"unit"            cbor:"unit"`
	NutritionalInfo nutrition.Info `json:"nutritionalInfo" yaml:"nutritionalInfo" cbor:"nutritionalInfo"`
}

// Multiplier converts a quantity of f into a factor applied to its nutritional
// values: grams are divided by 100, item counts are used as is.
func (f Food) Multiplier(quantity float64) float64 {
	if f.Unit == Grams {
		return quantity / 100
	}
	return quantity
}

// Portion returns the nutrients contributed by quantity of f.
func (f Food) Portion(quantity float64) nutrition.Info {
	return f.NutritionalInfo.Scale(f.Multiplier(quantity))
}

// CustomFields describes a user-defined food. Calories are never supplied;
// they are derived from the macros.
type CustomFields struct {
	Name     string
	Category string
	Protein  float64
	Carbs    float64
	Fat      float64
	Fiber    float64
	// Unit and Image are optional. On create they default to grams and
	// DefaultImage; on update they keep the existing record's values.
	Unit  Unit
	Image string
}

// Validate checks the fields before they reach the catalog.
func (f CustomFields) Validate() error {
	if strings.TrimSpace(f.Name) == "" {
		return ErrEmptyName
	}
	if f.Unit != "" && !f.Unit.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidUnit, f.Unit)
	}
	for _, v := range []float64{f.Protein, f.Carbs, f.Fat, f.Fiber} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return ErrNonFinite
		}
		if v < 0 {
			return ErrNegativeMacro
		}
	}
	return nil
}

// CustomCalories is 4 kcal per gram of protein and carbs plus 9 per gram of
// fat. Fiber does not count.
func CustomCalories(protein, carbs, fat float64) float64 {
	return protein*4 + carbs*4 + fat*9
}

func (f CustomFields) info() nutrition.Info {
	return nutrition.Info{
		Calories: CustomCalories(f.Protein, f.Carbs, f.Fat),
		Protein:  f.Protein,
		Fat:      f.Fat,
		Carbs:    f.Carbs,
		Fiber:    f.Fiber,
	}
}
