package diet

import (
	"github.com/janisto/diet-planner/internal/catalog"
	"github.com/janisto/diet-planner/internal/nutrition"
)

// Resolver looks foods up by identifier. *catalog.Catalog satisfies it.
type Resolver interface {
	FindByID(id string) (catalog.Food, bool)
}

// Aggregate sums the nutrients of items. Items whose food cannot be resolved
// contribute nothing.
func Aggregate(items []MealItem, r Resolver) nutrition.Info {
	var total nutrition.Info
	for _, item := range items {
		food, ok := r.FindByID(item.FoodID)
		if !ok {
			continue
		}
		total = total.Add(food.Portion(item.Quantity))
	}
	return total
}

// MealTotals aggregates a single meal.
func MealTotals(m Meal, r Resolver) nutrition.Info {
	return Aggregate(m.Items, r)
}

// DietTotals aggregates every item of every meal of d.
func DietTotals(d DailyDiet, r Resolver) nutrition.Info {
	return Aggregate(d.Items(), r)
}

var _ Resolver = (*catalog.Catalog)(nil)
