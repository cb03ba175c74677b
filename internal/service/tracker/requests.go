package tracker

import (
	"fmt"
	"strings"

	"github.com/janisto/diet-planner/internal/catalog"
	"github.com/janisto/diet-planner/internal/diet"
	"github.com/janisto/diet-planner/internal/nutrition"
)

func invalid(err error) error {
	return fmt.Errorf("%w: %w", ErrInvalidInput, err)
}

// UserDataRequest carries the biometrics of a profile.
type UserDataRequest struct {
	Name          string
	Weight        float64
	Height        float64
	Age           float64
	Gender        string
	ActivityLevel int
	Goal          string
}

// UserData validates the request and returns the normalized user data.
func (r UserDataRequest) UserData() (nutrition.UserData, error) {
	u, err := nutrition.NewUserData(
		r.Name,
		r.Weight, r.Height, r.Age,
		nutrition.Gender(r.Gender),
		nutrition.ActivityLevel(r.ActivityLevel),
		nutrition.Goal(r.Goal),
	)
	if err != nil {
		return nutrition.UserData{}, invalid(err)
	}
	return u, nil
}

// Validate checks the request.
func (r UserDataRequest) Validate() error {
	_, err := r.UserData()
	return err
}

// GoalsRequest previews goals without touching any profile.
type GoalsRequest struct {
	UserDataRequest
}

// CreateProfileRequest creates a profile that becomes the current one.
type CreateProfileRequest struct {
	UserDataRequest
}

// UpdateProfileRequest replaces a profile's user data.
type UpdateProfileRequest struct {
	UserDataRequest
}

// CreateDietRequest creates an empty diet.
type CreateDietRequest struct {
	Name string
}

// Validate checks the request.
func (r CreateDietRequest) Validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return invalid(errEmptyDietName)
	}
	return nil
}

// ReplaceDietRequest replaces a whole diet, identified by Diet.ID.
type ReplaceDietRequest struct {
	Diet diet.DailyDiet
}

// Validate checks the request.
func (r ReplaceDietRequest) Validate() error {
	if strings.TrimSpace(r.Diet.Name) == "" {
		return invalid(errEmptyDietName)
	}
	for _, m := range r.Diet.Meals {
		if _, err := diet.ParseMealType(string(m.Type)); err != nil {
			return invalid(err)
		}
		for _, item := range m.Items {
			if err := item.Validate(); err != nil {
				return invalid(err)
			}
		}
	}
	return nil
}

// AddItemRequest adds a food to a meal, merging with an existing entry.
type AddItemRequest struct {
	MealType string
	FoodID   string
	Quantity float64
}

// Validate checks the request.
func (r AddItemRequest) Validate() error {
	if _, err := diet.ParseMealType(r.MealType); err != nil {
		return invalid(err)
	}
	if _, err := diet.NewMealItem(r.FoodID, r.Quantity); err != nil {
		return invalid(err)
	}
	return nil
}

// UpdateItemRequest sets the quantity of the item at Index in a meal.
type UpdateItemRequest struct {
	MealType string
	Index    int
	Quantity float64
}

// Validate checks the request.
func (r UpdateItemRequest) Validate() error {
	if _, err := diet.ParseMealType(r.MealType); err != nil {
		return invalid(err)
	}
	if r.Index < 0 {
		return invalid(diet.ErrItemIndexOutOfRange)
	}
	if err := diet.CheckQuantity(r.Quantity); err != nil {
		return invalid(err)
	}
	return nil
}

// RemoveItemRequest removes the item at Index in a meal.
type RemoveItemRequest struct {
	MealType string
	Index    int
}

// Validate checks the request.
func (r RemoveItemRequest) Validate() error {
	if _, err := diet.ParseMealType(r.MealType); err != nil {
		return invalid(err)
	}
	if r.Index < 0 {
		return invalid(diet.ErrItemIndexOutOfRange)
	}
	return nil
}

// FoodRequest creates or replaces a custom food. Calories are derived from
// the macros.
type FoodRequest struct {
	Name     string
	Category string
	Protein  float64
	Carbs    float64
	Fat      float64
	Fiber    float64
	Unit     string
	Image    string
}

func (r FoodRequest) fields() catalog.CustomFields {
	return catalog.CustomFields{
		Name:     r.Name,
		Category: strings.TrimSpace(r.Category),
		Protein:  r.Protein,
		Carbs:    r.Carbs,
		Fat:      r.Fat,
		Fiber:    r.Fiber,
		Unit:     catalog.Unit(r.Unit),
		Image:    r.Image,
	}
}

// Validate checks the request.
func (r FoodRequest) Validate() error {
	if err := r.fields().Validate(); err != nil {
		return invalid(err)
	}
	return nil
}
