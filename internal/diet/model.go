// Package diet models profiles, daily diets and meals, and implements the
// copy-on-write mutation protocol over them.
package diet

import (
	"errors"
	"fmt"
	"math"
	"slices"
	"time"

	"github.com/janisto/diet-planner/internal/nutrition"
)

// Precondition errors.
var (
	ErrUnknownMealType     = errors.New("unknown meal type")
	ErrItemIndexOutOfRange = errors.New("meal item index out of range")
	ErrNegativeQuantity    = errors.New("quantity must not be negative")
	ErrNonFiniteQuantity   = errors.New("quantity must be a finite number")
	ErrEmptyFoodID         = errors.New("food id must not be empty")
)

// MealType identifies one of the four daily meals.
type MealType string

// Meal types in canonical order.
const (
	Breakfast MealType = "breakfast"
	Lunch     MealType = "lunch"
	Snack     MealType = "snack"
	Dinner    MealType = "dinner"
)

// MealTypes returns the four meal types in canonical order.
func MealTypes() []MealType {
	return []MealType{Breakfast, Lunch, Snack, Dinner}
}

// ParseMealType validates s as a meal type.
func ParseMealType(s string) (MealType, error) {
	mt := MealType(s)
	if !slices.Contains(MealTypes(), mt) {
		return "", fmt.Errorf("%w: %q", ErrUnknownMealType, s)
	}
	return mt, nil
}

// MealItem references a food and a quantity: grams for foods measured in g,
// a count for foods measured per unit.
type MealItem struct {
	FoodID   string  `json:"foodId"   cbor:"foodId"`
	Quantity float64 `json:"quantity" cbor:"quantity"`
}

// NewMealItem builds a validated MealItem.
func NewMealItem(foodID string, quantity float64) (MealItem, error) {
	item := MealItem{FoodID: foodID, Quantity: quantity}
	if err := item.Validate(); err != nil {
		return MealItem{}, err
	}
	return item, nil
}

// Validate checks the item's preconditions.
func (i MealItem) Validate() error {
	if i.FoodID == "" {
		return ErrEmptyFoodID
	}
	return CheckQuantity(i.Quantity)
}

// CheckQuantity rejects negative, NaN and infinite quantities.
func CheckQuantity(q float64) error {
	if math.IsNaN(q) || math.IsInf(q, 0) {
		return fmt.Errorf("%w: %g", ErrNonFiniteQuantity, q)
	}
	if q < 0 {
		return fmt.Errorf("%w: %g", ErrNegativeQuantity, q)
	}
	return nil
}

// Meal is an ordered list of items for one meal type.
type Meal struct {
	Type  MealType   `json:"type"  cbor:"type"`
	Items []MealItem `json:"items" cbor:"items"`
}

// DailyDiet always holds exactly four meals, one per type, in canonical order.
type DailyDiet struct {
	ID        string    `json:"id"        cbor:"id"`
	Name      string    `json:"name"      cbor:"name"`
	CreatedAt time.Time `json:"createdAt" cbor:"createdAt"`
	Meals     []Meal    `json:"meals"     cbor:"meals"`
}

// NewDiet creates a diet with the four canonical empty meals. The name is not
// validated here.
func NewDiet(id, name string, createdAt time.Time) DailyDiet {
	types := MealTypes()
	meals := make([]Meal, len(types))
	for i, mt := range types {
		meals[i] = Meal{Type: mt, Items: []MealItem{}}
	}
	return DailyDiet{
		ID:        id,
		Name:      name,
		CreatedAt: createdAt.UTC(),
		Meals:     meals,
	}
}

// Meal returns the meal of the given type.
func (d DailyDiet) Meal(mt MealType) (Meal, bool) {
	i := d.mealIndex(mt)
	if i < 0 {
		return Meal{}, false
	}
	return d.Meals[i], true
}

// Items returns every item of every meal, in meal order.
func (d DailyDiet) Items() []MealItem {
	var items []MealItem
	for _, m := range d.Meals {
		items = append(items, m.Items...)
	}
	return items
}

// Clone returns a deep copy of d.
func (d DailyDiet) Clone() DailyDiet {
	out := d
	out.Meals = make([]Meal, len(d.Meals))
	for i, m := range d.Meals {
		out.Meals[i] = Meal{Type: m.Type, Items: slices.Clone(m.Items)}
		if out.Meals[i].Items == nil {
			out.Meals[i].Items = []MealItem{}
		}
	}
	return out
}

// Normalize returns a copy of d holding exactly the four canonical meals:
// items of known meal types are kept in canonical order, unknown types are
// dropped and missing meals are added empty. Replacing a diet goes through
// this so the four-meal invariant survives any caller input.
func (d DailyDiet) Normalize() DailyDiet {
	out := NewDiet(d.ID, d.Name, d.CreatedAt)
	for i, mt := range MealTypes() {
		for _, m := range d.Meals {
			if m.Type == mt {
				out.Meals[i].Items = append(out.Meals[i].Items, m.Items...)
			}
		}
	}
	return out
}

func (d DailyDiet) mealIndex(mt MealType) int {
	return slices.IndexFunc(d.Meals, func(m Meal) bool {
		return m.Type == mt
	})
}

// Profile owns the user's biometrics, the goals derived from them and the
// user's diets.
type Profile struct {
	ID         string             `json:"id"         cbor:"id"`
	UserData   nutrition.UserData `json:"userData"   cbor:"userData"`
	DailyGoals nutrition.Info     `json:"dailyGoals" cbor:"dailyGoals"`
	Diets      []DailyDiet        `json:"diets"      cbor:"diets"`
	CreatedAt  time.Time          `json:"createdAt"  cbor:"createdAt"`
}

// NewProfile creates a profile with goals derived from u.
func NewProfile(id string, u nutrition.UserData, createdAt time.Time) Profile {
	p := Profile{
		ID:        id,
		Diets:     []DailyDiet{},
		CreatedAt: createdAt.UTC(),
	}
	return p.WithUserData(u)
}

// WithUserData returns a copy of p with new user data and goals recomputed in
// the same step. It is the only way user data changes.
func (p Profile) WithUserData(u nutrition.UserData) Profile {
	out := p.Clone()
	out.UserData = u
	out.DailyGoals = nutrition.DailyGoals(u)
	return out
}

// Diet returns the diet with the given id.
func (p Profile) Diet(id string) (DailyDiet, bool) {
	i := p.dietIndex(id)
	if i < 0 {
		return DailyDiet{}, false
	}
	return p.Diets[i], true
}

// Clone returns a deep copy of p.
func (p Profile) Clone() Profile {
	out := p
	out.Diets = make([]DailyDiet, len(p.Diets))
	for i, d := range p.Diets {
		out.Diets[i] = d.Clone()
	}
	return out
}

func (p Profile) dietIndex(id string) int {
	return slices.IndexFunc(p.Diets, func(d DailyDiet) bool {
		return d.ID == id
	})
}
