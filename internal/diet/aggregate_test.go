package diet

import (
	"math"
	"testing"

	"github.com/janisto/diet-planner/internal/nutrition"
)

func TestAggregateEmpty(t *testing.T) {
	if got := Aggregate(nil, testCatalog()); !got.IsZero() {
		t.Fatalf("expected zero totals, got %+v", got)
	}
	if got := Aggregate([]MealItem{}, testCatalog()); !got.IsZero() {
		t.Fatalf("expected zero totals, got %+v", got)
	}
}

func TestAggregateGramsAndUnits(t *testing.T) {
	items := []MealItem{
		{FoodID: "rice", Quantity: 150},
		{FoodID: "egg", Quantity: 2},
	}
	got := Aggregate(items, testCatalog())
	want := nutrition.Info{
		Calories: 195 + 156,
		Protein:  2.7*1.5 + 12,
		Fat:      0.3*1.5 + 10,
		Carbs:    28*1.5 + 2,
		Fiber:    0.4 * 1.5,
	}
	if !closeInfo(got, want) {
		t.Fatalf("expected %+v, got %+v", want, got)
	}
}

func TestAggregateRiceScenario(t *testing.T) {
	d := NewDiet("diet-1", "Monday", testTime)
	d = mustAdd(t, d, Lunch, "rice", 150)
	lunch, _ := d.Meal(Lunch)
	if got := MealTotals(lunch, testCatalog()).Calories; got != 195 {
		t.Fatalf("expected 195 kcal, got %v", got)
	}
}

func TestAggregateSkipsUnknownFoods(t *testing.T) {
	items := []MealItem{
		{FoodID: "ghost", Quantity: 500},
		{FoodID: "egg", Quantity: 1},
	}
	got := Aggregate(items, testCatalog())
	if got.Calories != 78 {
		t.Fatalf("expected unknown food to contribute nothing, got %v kcal", got.Calories)
	}
}

func TestDietTotalsEqualsSumOfMeals(t *testing.T) {
	d := NewDiet("diet-1", "Monday", testTime)
	d = mustAdd(t, d, Breakfast, "egg", 2)
	d = mustAdd(t, d, Lunch, "rice", 200)
	d = mustAdd(t, d, Dinner, "rice", 80)
	d = mustAdd(t, d, Dinner, "ghost", 10)

	cat := testCatalog()
	var sum nutrition.Info
	for _, m := range d.Meals {
		sum = sum.Add(MealTotals(m, cat))
	}
	if !closeInfo(DietTotals(d, cat), sum) {
		t.Fatalf("expected diet totals %+v to equal sum of meals %+v", DietTotals(d, cat), sum)
	}
}

func TestAggregateOrderIndependent(t *testing.T) {
	a := []MealItem{{FoodID: "rice", Quantity: 33}, {FoodID: "egg", Quantity: 3}, {FoodID: "rice", Quantity: 71}}
	b := []MealItem{a[2], a[0], a[1]}
	if !closeInfo(Aggregate(a, testCatalog()), Aggregate(b, testCatalog())) {
		t.Fatal("expected aggregation to be order independent")
	}
}

func closeInfo(a, b nutrition.Info) bool {
	const eps = 1e-9
	return math.Abs(a.Calories-b.Calories) < eps &&
		math.Abs(a.Protein-b.Protein) < eps &&
		math.Abs(a.Fat-b.Fat) < eps &&
		math.Abs(a.Carbs-b.Carbs) < eps &&
		math.Abs(a.Fiber-b.Fiber) < eps
}
