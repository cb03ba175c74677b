// Package tracker owns the diet tracker state: profiles, their diets, the
// current profile selection and custom foods. Every mutation is applied to a
// copy of the state and saved through a store.Gateway.
package tracker

import (
	"context"
	"errors"

	"github.com/janisto/diet-planner/internal/catalog"
	"github.com/janisto/diet-planner/internal/diet"
	"github.com/janisto/diet-planner/internal/nutrition"
	"github.com/janisto/diet-planner/internal/report"
)

// Service errors.
var (
	ErrNotFound     = errors.New("not found")
	ErrInvalidInput = errors.New("invalid input")
)

// FoodFilter narrows ListFoods. Empty fields match everything.
type FoodFilter struct {
	Category string
	Query    string
	Source   FoodSource
}

// FoodSource restricts a listing to built-in or custom foods.
type FoodSource string

// Food sources.
const (
	SourceAll     FoodSource = ""
	SourceBuiltin FoodSource = "builtin"
	SourceCustom  FoodSource = "custom"
)

// Export is a rendered PDF report.
type Export struct {
	FileName string
	Data     []byte
}

// Service defines tracker operations. Mutations that name an unknown profile,
// diet or custom food are no-ops and report false instead of an error. Only
// reads return ErrNotFound.
type Service interface {
	PreviewGoals(ctx context.Context, req GoalsRequest) (nutrition.Estimate, error)

	ListProfiles(ctx context.Context) []diet.Profile
	GetProfile(ctx context.Context, profileID string) (diet.Profile, error)
	CreateProfile(ctx context.Context, req CreateProfileRequest) (diet.Profile, error)
	UpdateProfile(ctx context.Context, profileID string, req UpdateProfileRequest) (diet.Profile, bool, error)
	DeleteProfile(ctx context.Context, profileID string) error
	CurrentProfile(ctx context.Context) (diet.Profile, error)
	SelectProfile(ctx context.Context, profileID string) (diet.Profile, bool, error)

	ListDiets(ctx context.Context, profileID string) ([]diet.DailyDiet, error)
	GetDiet(ctx context.Context, profileID, dietID string) (diet.DailyDiet, error)
	CreateDiet(ctx context.Context, profileID string, req CreateDietRequest) (diet.DailyDiet, bool, error)
	ReplaceDiet(ctx context.Context, profileID string, req ReplaceDietRequest) (diet.DailyDiet, bool, error)
	DeleteDiet(ctx context.Context, profileID, dietID string) error
	AddItem(ctx context.Context, profileID, dietID string, req AddItemRequest) (diet.DailyDiet, bool, error)
	UpdateItem(ctx context.Context, profileID, dietID string, req UpdateItemRequest) (diet.DailyDiet, bool, error)
	RemoveItem(ctx context.Context, profileID, dietID string, req RemoveItemRequest) (diet.DailyDiet, bool, error)
	DietTotals(ctx context.Context, d diet.DailyDiet) nutrition.Info
	Summary(ctx context.Context, profileID, dietID string) (report.Diet, error)
	ExportPDF(ctx context.Context, profileID, dietID string) (Export, error)

	ListFoods(ctx context.Context, filter FoodFilter) []catalog.Food
	GetFood(ctx context.Context, foodID string) (catalog.Food, error)
	IsCustomFood(ctx context.Context, foodID string) bool
	CreateFood(ctx context.Context, req FoodRequest) (catalog.Food, error)
	UpdateFood(ctx context.Context, foodID string, req FoodRequest) (catalog.Food, bool, error)
	DeleteFood(ctx context.Context, foodID string) error
}
