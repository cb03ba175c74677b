package store

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"

	"github.com/janisto/diet-planner/internal/catalog"
	"github.com/janisto/diet-planner/internal/diet"
	"github.com/janisto/diet-planner/internal/nutrition"
)

var testTime = time.Date(2024, 1, 15, 8, 0, 0, 123000000, time.UTC)

func testState(t *testing.T) State {
	t.Helper()
	u := nutrition.UserData{
		Name:          "Alex",
		Weight:        70,
		Height:        170,
		Age:           30,
		Gender:        nutrition.Male,
		ActivityLevel: 3,
		Goal:          nutrition.Maintain,
	}
	p := diet.NewProfile("profile-1", u, testTime)
	d := diet.NewDiet("diet-1", "Monday", testTime)
	d, err := diet.AddItem(d, diet.Lunch, diet.MealItem{FoodID: "rice", Quantity: 150})
	if err != nil {
		t.Fatalf("AddItem: %v", err)
	}
	p = diet.AppendDiet(p, d)

	return State{
		Profiles:         []diet.Profile{p},
		CurrentProfileID: p.ID,
		CustomFoods: []catalog.Food{{
			ID:              "custom-food-1",
			Name:            "Protein bar",
			Category:        "snacks",
			Image:           catalog.DefaultImage,
			Unit:            catalog.Piece,
			NutritionalInfo: nutrition.Info{Calories: 201, Protein: 20, Carbs: 20, Fat: 5},
		}},
	}
}

func assertSameState(t *testing.T, got, want State) {
	t.Helper()
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("state mismatch\n got: %+v\nwant: %+v", got, want)
	}
}

func TestEmptyStateHasNonNilSlices(t *testing.T) {
	s := EmptyState()
	if s.Profiles == nil || s.CustomFoods == nil {
		t.Fatal("expected non-nil slices")
	}
	if s.CurrentProfileID != "" {
		t.Fatalf("expected no current profile, got %q", s.CurrentProfileID)
	}
}

func TestCloneIsDeep(t *testing.T) {
	s := testState(t)
	c := s.Clone()
	c.Profiles[0].Diets[0].Meals[1].Items[0].Quantity = 999
	c.CustomFoods[0].Name = "changed"
	if s.Profiles[0].Diets[0].Meals[1].Items[0].Quantity != 150 {
		t.Fatal("clone shares meal items with the original")
	}
	if s.CustomFoods[0].Name != "Protein bar" {
		t.Fatal("clone shares custom foods with the original")
	}
}

func TestJSONRoundTrip(t *testing.T) {
	want := testState(t)
	data, err := MarshalJSON(want)
	if err != nil {
		t.Fatalf("MarshalJSON: %v", err)
	}
	got, err := UnmarshalJSON(data)
	if err != nil {
		t.Fatalf("UnmarshalJSON: %v", err)
	}
	assertSameState(t, got, want)
}

func TestCBORRoundTrip(t *testing.T) {
	want := testState(t)
	data, err := MarshalCBOR(want)
	if err != nil {
		t.Fatalf("MarshalCBOR: %v", err)
	}
	got, err := UnmarshalCBOR(data)
	if err != nil {
		t.Fatalf("UnmarshalCBOR: %v", err)
	}
	assertSameState(t, got, want)
}

func TestUnmarshalRejectsCorruptPayloads(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		fn   func([]byte) (State, error)
	}{
		{"json garbage", []byte("{not json"), UnmarshalJSON},
		{"json wrong version", []byte(`{"version":99,"profiles":[]}`), UnmarshalJSON},
		{"json missing version", []byte(`{"profiles":[]}`), UnmarshalJSON},
		{"cbor garbage", []byte{0xff, 0x00, 0x13}, UnmarshalCBOR},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.fn(tt.data)
			if !errors.Is(err, ErrCorruptState) {
				t.Fatalf("expected ErrCorruptState, got %v", err)
			}
		})
	}
}

func TestUnmarshalRestoresMealLayout(t *testing.T) {
	payload := `{"version":1,"profiles":[{"id":"p","diets":[{"id":"d","name":"x","meals":[` +
		`{"type":"dinner","items":[{"foodId":"rice","quantity":100}]}]}]}]}`
	s, err := UnmarshalJSON([]byte(payload))
	if err != nil {
		t.Fatalf("UnmarshalJSON: %v", err)
	}
	d := s.Profiles[0].Diets[0]
	if len(d.Meals) != 4 {
		t.Fatalf("expected 4 meals, got %d", len(d.Meals))
	}
	dinner, _ := d.Meal(diet.Dinner)
	if len(dinner.Items) != 1 {
		t.Fatalf("expected dinner item kept, got %+v", dinner.Items)
	}
	if s.CustomFoods == nil {
		t.Fatal("expected non-nil custom foods")
	}
}

func TestMemoryGateway(t *testing.T) {
	ctx := context.Background()
	g := NewMemoryGateway()

	s, err := g.Load(ctx)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	assertSameState(t, s, EmptyState())

	want := testState(t)
	if err := g.Save(ctx, want); err != nil {
		t.Fatalf("Save: %v", err)
	}
	want.CustomFoods[0].Name = "mutated after save"

	got, err := g.Load(ctx)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got.CustomFoods[0].Name != "Protein bar" {
		t.Fatal("memory gateway kept a reference to the saved state")
	}
	if g.Saves() != 1 {
		t.Fatalf("expected 1 save, got %d", g.Saves())
	}
}

func TestFileGatewayMissingFile(t *testing.T) {
	g := NewFileGateway(filepath.Join(t.TempDir(), "missing.json"))
	s, err := g.Load(context.Background())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	assertSameState(t, s, EmptyState())
}

func TestFileGatewayRoundTrip(t *testing.T) {
	for _, name := range []string{"state.json", "state.cbor", "nested/dir/state.json"} {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			g := NewFileGateway(filepath.Join(t.TempDir(), name))
			want := testState(t)
			if err := g.Save(ctx, want); err != nil {
				t.Fatalf("Save: %v", err)
			}
			got, err := g.Load(ctx)
			if err != nil {
				t.Fatalf("Load: %v", err)
			}
			assertSameState(t, got, want)

			entries, err := os.ReadDir(filepath.Dir(g.Path()))
			if err != nil {
				t.Fatalf("ReadDir: %v", err)
			}
			if len(entries) != 1 {
				t.Fatalf("expected only the state file, found %d entries", len(entries))
			}
		})
	}
}

func TestFileGatewayCBORIsNotJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.cbor")
	g := NewFileGateway(path)
	if err := g.Save(context.Background(), testState(t)); err != nil {
		t.Fatalf("Save: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if data[0] == '{' {
		t.Fatal("expected CBOR payload, got JSON")
	}
}

func TestFileGatewayCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")
	if err := os.WriteFile(path, []byte("not json at all"), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	_, err := NewFileGateway(path).Load(context.Background())
	if !errors.Is(err, ErrCorruptState) {
		t.Fatalf("expected ErrCorruptState, got %v", err)
	}
}
