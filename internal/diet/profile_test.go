package diet

import (
	"reflect"
	"testing"

	"github.com/janisto/diet-planner/internal/nutrition"
)

func testUser() nutrition.UserData {
	return nutrition.UserData{
		Name:          "Alex",
		Weight:        70,
		Height:        170,
		Age:           30,
		Gender:        nutrition.Male,
		ActivityLevel: 3,
		Goal:          nutrition.Maintain,
	}
}

func TestNewProfileDerivesGoals(t *testing.T) {
	p := NewProfile("profile-1", testUser(), testTime)
	want := nutrition.Info{Calories: 2184, Protein: 164, Fat: 73, Carbs: 218, Fiber: 31}
	if p.DailyGoals != want {
		t.Fatalf("expected goals %+v, got %+v", want, p.DailyGoals)
	}
	if p.Diets == nil || len(p.Diets) != 0 {
		t.Fatalf("expected empty non-nil diets, got %v", p.Diets)
	}
}

func TestWithUserDataRecomputesGoals(t *testing.T) {
	p := NewProfile("profile-1", testUser(), testTime)
	u := testUser()
	u.Goal = nutrition.Lose

	next := p.WithUserData(u)
	if next.DailyGoals != nutrition.DailyGoals(u) {
		t.Fatalf("expected goals to follow user data, got %+v", next.DailyGoals)
	}
	if p.UserData.Goal != nutrition.Maintain {
		t.Fatal("expected original profile to be unchanged")
	}
}

func TestReplaceDietRoundTrip(t *testing.T) {
	p := NewProfile("profile-1", testUser(), testTime)
	p = AppendDiet(p, NewDiet("diet-1", "Monday", testTime))
	p = AppendDiet(p, NewDiet("diet-2", "Tuesday", testTime))

	d, _ := p.Diet("diet-1")
	d = mustAdd(t, d, Lunch, "rice", 150)
	d.Name = "Monday v2"

	next, ok := ReplaceDiet(p, d)
	if !ok {
		t.Fatal("expected diet to be replaced")
	}
	got, found := next.Diet("diet-1")
	if !found {
		t.Fatal("expected replaced diet to be present")
	}
	if !reflect.DeepEqual(got, d) {
		t.Fatalf("expected %+v, got %+v", d, got)
	}
	if next.Diets[1].ID != "diet-2" {
		t.Errorf("expected diet order preserved, got %s", next.Diets[1].ID)
	}
	if orig, _ := p.Diet("diet-1"); orig.Name != "Monday" {
		t.Error("expected original profile to be unchanged")
	}
}

func TestReplaceDietUnknownIsNoop(t *testing.T) {
	p := AppendDiet(NewProfile("profile-1", testUser(), testTime), NewDiet("diet-1", "Monday", testTime))
	next, ok := ReplaceDiet(p, NewDiet("missing", "x", testTime))
	if ok {
		t.Fatal("expected replace of unknown diet to report false")
	}
	if !reflect.DeepEqual(next, p) {
		t.Fatal("expected profile unchanged")
	}
}

func TestDeleteDiet(t *testing.T) {
	p := NewProfile("profile-1", testUser(), testTime)
	p = AppendDiet(p, NewDiet("diet-1", "Monday", testTime))
	p = AppendDiet(p, NewDiet("diet-2", "Tuesday", testTime))

	next := DeleteDiet(p, "diet-1")
	if len(next.Diets) != 1 || next.Diets[0].ID != "diet-2" {
		t.Fatalf("expected only diet-2, got %+v", next.Diets)
	}
	if len(p.Diets) != 2 {
		t.Fatal("expected original profile to be unchanged")
	}
	if again := DeleteDiet(next, "missing"); len(again.Diets) != 1 {
		t.Fatal("expected deleting a missing diet to be a no-op")
	}
}
