package diets

import (
	"github.com/janisto/diet-planner/internal/diet"
	"github.com/janisto/diet-planner/internal/http/v1/apimodel"
	"github.com/janisto/diet-planner/internal/platform/timeutil"
	"github.com/janisto/diet-planner/internal/report"
)

// MealItem is a food and a quantity.
type MealItem struct {
	FoodID   string  `json:"foodId"   minLength:"1" doc:"Food identifier"          example:"rice"`
	Quantity float64 `json:"quantity" minimum:"0"   doc:"Grams or number of units" example:"150"`
}

// Meal is one of the four daily meals.
type Meal struct {
	Type  string     `json:"type"  enum:"breakfast,lunch,snack,dinner" doc:"Meal type" example:"lunch"`
	Items []MealItem `json:"items" doc:"Items in insertion order"`
}

// Diet represents a diet response.
type Diet struct {
	ID        string        `json:"id"        doc:"Unique identifier"  example:"0b7c6a52-3f1e-4e7a-9c1d-2f3a4b5c6d7e"`
	Name      string        `json:"name"      doc:"Diet name"          example:"Monday plan"`
	CreatedAt timeutil.Time `json:"createdAt" doc:"Creation timestamp" example:"2024-01-15T10:30:00.000Z"`
	Meals     []Meal        `json:"meals"     doc:"Breakfast, lunch, snack and dinner"`
}

// DietListItem is a diet with its rounded nutrient totals.
type DietListItem struct {
	Diet
	Totals apimodel.Nutrients `json:"totals" doc:"Rounded diet totals"`
}

// DietBody is the full replacement of a diet. The creation timestamp is
// kept from the stored diet.
type DietBody struct {
	Name  string `json:"name"  minLength:"1" maxLength:"200" required:"true" doc:"Diet name" example:"Monday plan"`
	Meals []Meal `json:"meals,omitempty" doc:"Meals; missing meal types are added empty"`
}

func (b DietBody) toDiet(id string) diet.DailyDiet {
	meals := make([]diet.Meal, len(b.Meals))
	for i, m := range b.Meals {
		items := make([]diet.MealItem, len(m.Items))
		for j, it := range m.Items {
			items[j] = diet.MealItem{FoodID: it.FoodID, Quantity: it.Quantity}
		}
		meals[i] = diet.Meal{Type: diet.MealType(m.Type), Items: items}
	}
	return diet.DailyDiet{ID: id, Name: b.Name, Meals: meals}
}

func toHTTPDiet(d diet.DailyDiet) Diet {
	meals := make([]Meal, len(d.Meals))
	for i, m := range d.Meals {
		items := make([]MealItem, len(m.Items))
		for j, it := range m.Items {
			items[j] = MealItem{FoodID: it.FoodID, Quantity: it.Quantity}
		}
		meals[i] = Meal{Type: string(m.Type), Items: items}
	}
	return Diet{
		ID:        d.ID,
		Name:      d.Name,
		CreatedAt: timeutil.Time{Time: d.CreatedAt},
		Meals:     meals,
	}
}

// NutrientRow compares goal and consumed amounts of one nutrient.
type NutrientRow struct {
	Nutrient   string  `json:"nutrient"   doc:"Nutrient label"        example:"Calories"`
	Unit       string  `json:"unit"       doc:"kcal or g"             example:"kcal"`
	Goal       float64 `json:"goal"       doc:"Daily goal"            example:"2184"`
	Consumed   float64 `json:"consumed"   doc:"Consumed in this diet" example:"195"`
	Difference float64 `json:"difference" doc:"Consumed minus goal"   example:"-1989"`
}

// ItemRow is one meal item with its rounded contribution.
type ItemRow struct {
	FoodID   string  `json:"foodId"         doc:"Food identifier"                       example:"rice"`
	Name     string  `json:"name"           doc:"Food name"                             example:"White rice"`
	Found    bool    `json:"found"          doc:"False when the food no longer exists"`
	Quantity float64 `json:"quantity"       doc:"Grams or number of units"              example:"150"`
	Unit     string  `json:"unit,omitempty" doc:"Unit of the quantity"                  example:"g"`
	Calories float64 `json:"calories"       doc:"Energy (kcal)"                         example:"195"`
	Protein  float64 `json:"protein"        doc:"Protein (g)"                           example:"4"`
	Carbs    float64 `json:"carbs"          doc:"Carbohydrates (g)"                     example:"42"`
	Fat      float64 `json:"fat"            doc:"Fat (g)"                               example:"0"`
}

// MealSection holds the rows of one meal and its totals.
type MealSection struct {
	Type   string             `json:"type"   doc:"Meal type"     example:"lunch"`
	Label  string             `json:"label"  doc:"Display label" example:"Lunch"`
	Items  []ItemRow          `json:"items"  doc:"Item rows"`
	Totals apimodel.Nutrients `json:"totals" doc:"Rounded meal totals"`
}

// Summary compares a diet with its profile's goals.
type Summary struct {
	DietID      string             `json:"dietId"      doc:"Diet identifier"`
	DietName    string             `json:"dietName"    doc:"Diet name"            example:"Monday plan"`
	Goals       apimodel.Nutrients `json:"goals"       doc:"Profile daily goals"`
	Consumed    apimodel.Nutrients `json:"consumed"    doc:"Unrounded diet totals"`
	Nutrients   []NutrientRow      `json:"nutrients"   doc:"Goal versus consumed per nutrient"`
	Meals       []MealSection      `json:"meals"       doc:"Per-meal breakdown"`
	GeneratedAt timeutil.Time      `json:"generatedAt" doc:"Report timestamp"     example:"2024-01-15T10:30:00.000Z"`
}

func toHTTPSummary(r report.Diet) Summary {
	rows := make([]NutrientRow, len(r.Nutrients))
	for i, n := range r.Nutrients {
		rows[i] = NutrientRow(n)
	}
	meals := make([]MealSection, len(r.Meals))
	for i, m := range r.Meals {
		items := make([]ItemRow, len(m.Items))
		for j, it := range m.Items {
			items[j] = ItemRow{
				FoodID:   it.FoodID,
				Name:     it.Name,
				Found:    it.Found,
				Quantity: it.Quantity,
				Unit:     string(it.Unit),
				Calories: it.Calories,
				Protein:  it.Protein,
				Carbs:    it.Carbs,
				Fat:      it.Fat,
			}
		}
		meals[i] = MealSection{
			Type:   string(m.Type),
			Label:  report.MealLabel(m.Type),
			Items:  items,
			Totals: apimodel.FromInfo(m.Totals),
		}
	}
	return Summary{
		DietID:      r.Diet.ID,
		DietName:    r.Diet.Name,
		Goals:       apimodel.FromInfo(r.Goals),
		Consumed:    apimodel.FromInfo(r.Consumed),
		Nutrients:   rows,
		Meals:       meals,
		GeneratedAt: timeutil.Time{Time: r.GeneratedAt},
	}
}
