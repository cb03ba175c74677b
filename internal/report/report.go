// Package report turns a diet and its profile into the goal/consumed summary
// and per-meal tables shown to the user and written to PDF.
package report

import (
	"math"
	"strings"
	"time"

	"github.com/janisto/diet-planner/internal/catalog"
	"github.com/janisto/diet-planner/internal/diet"
	"github.com/janisto/diet-planner/internal/nutrition"
)

// NutrientRow compares goal and consumed amounts of one nutrient. Values are
// rounded to whole numbers.
type NutrientRow struct {
	Nutrient   string  `json:"nutrient"`
	Unit       string  `json:"unit"`
	Goal       float64 `json:"goal"`
	Consumed   float64 `json:"consumed"`
	Difference float64 `json:"difference"`
}

// ItemRow is one meal item with its rounded contribution. Found is false when
// the food no longer exists in the catalog.
type ItemRow struct {
	FoodID   string       `json:"foodId"`
	Name     string       `json:"name"`
	Found    bool         `json:"found"`
	Quantity float64      `json:"quantity"`
	Unit     catalog.Unit `json:"unit,omitempty"`
	Calories float64      `json:"calories"`
	Protein  float64      `json:"protein"`
	Carbs    float64      `json:"carbs"`
	Fat      float64      `json:"fat"`
}

// MealSection holds the rows of one meal and its rounded totals.
type MealSection struct {
	Type   diet.MealType  `json:"type"`
	Items  []ItemRow      `json:"items"`
	Totals nutrition.Info `json:"totals"`
}

// Diet is the full report for one diet of one profile.
type Diet struct {
	Profile     diet.Profile   `json:"-"`
	Diet        diet.DailyDiet `json:"-"`
	Goals       nutrition.Info `json:"goals"`
	Consumed    nutrition.Info `json:"consumed"`
	Nutrients   []NutrientRow  `json:"nutrients"`
	Meals       []MealSection  `json:"meals"`
	GeneratedAt time.Time      `json:"generatedAt"`
}

// Build assembles the report. Consumed totals are the unrounded diet
// aggregate; rows carry rounded values.
func Build(p diet.Profile, d diet.DailyDiet, r diet.Resolver, now time.Time) Diet {
	consumed := diet.DietTotals(d, r)
	rep := Diet{
		Profile:     p,
		Diet:        d,
		Goals:       p.DailyGoals,
		Consumed:    consumed,
		Nutrients:   nutrientRows(p.DailyGoals, consumed),
		Meals:       make([]MealSection, 0, len(d.Meals)),
		GeneratedAt: now.UTC(),
	}
	for _, m := range d.Meals {
		rep.Meals = append(rep.Meals, mealSection(m, r))
	}
	return rep
}

func nutrientRows(goals, consumed nutrition.Info) []NutrientRow {
	row := func(name, unit string, goal, got float64) NutrientRow {
		return NutrientRow{
			Nutrient:   name,
			Unit:       unit,
			Goal:       math.Round(goal),
			Consumed:   math.Round(got),
			Difference: math.Round(got - goal),
		}
	}
	return []NutrientRow{
		row("Calories", "kcal", goals.Calories, consumed.Calories),
		row("Protein", "g", goals.Protein, consumed.Protein),
		row("Carbs", "g", goals.Carbs, consumed.Carbs),
		row("Fat", "g", goals.Fat, consumed.Fat),
		row("Fiber", "g", goals.Fiber, consumed.Fiber),
	}
}

func mealSection(m diet.Meal, r diet.Resolver) MealSection {
	sec := MealSection{
		Type:   m.Type,
		Items:  make([]ItemRow, 0, len(m.Items)),
		Totals: diet.MealTotals(m, r).Round(),
	}
	for _, item := range m.Items {
		food, ok := r.FindByID(item.FoodID)
		if !ok {
			sec.Items = append(sec.Items, ItemRow{FoodID: item.FoodID, Name: "food not found", Quantity: item.Quantity})
			continue
		}
		portion := food.Portion(item.Quantity).Round()
		sec.Items = append(sec.Items, ItemRow{
			FoodID:   food.ID,
			Name:     food.Name,
			Found:    true,
			Quantity: item.Quantity,
			Unit:     food.Unit,
			Calories: portion.Calories,
			Protein:  portion.Protein,
			Carbs:    portion.Carbs,
			Fat:      portion.Fat,
		})
	}
	return sec
}

// FileName returns the download name for a diet export: spaces in the diet
// name become underscores, followed by the export date.
func FileName(dietName string, now time.Time) string {
	name := strings.Join(strings.Fields(dietName), "_")
	if name == "" {
		name = "diet"
	}
	return name + "_" + now.UTC().Format(time.DateOnly) + ".pdf"
}

// GoalLabel describes a goal for display.
func GoalLabel(g nutrition.Goal) string {
	switch g {
	case nutrition.Lose:
		return "Lose weight"
	case nutrition.Gain:
		return "Gain weight"
	default:
		return "Maintain weight"
	}
}

// MealLabel describes a meal type for display.
func MealLabel(mt diet.MealType) string {
	switch mt {
	case diet.Breakfast:
		return "Breakfast"
	case diet.Lunch:
		return "Lunch"
	case diet.Snack:
		return "Snack"
	case diet.Dinner:
		return "Dinner"
	default:
		return string(mt)
	}
}

// UnitLabel is the short quantity suffix for a unit.
func UnitLabel(u catalog.Unit) string {
	if u == catalog.Grams {
		return "g"
	}
	return "unit"
}
