package diets

import "github.com/janisto/diet-planner/internal/platform/pagination"

// DietListInput for GET /profiles/{profileId}/diets
type DietListInput struct {
	pagination.Params
	ProfileID string `path:"profileId" doc:"Profile identifier"`
}

// DietCreateInput for POST /profiles/{profileId}/diets
type DietCreateInput struct {
	ProfileID string `path:"profileId" doc:"Profile identifier"`
	Body      struct {
		Name string `json:"name" minLength:"1" maxLength:"200" required:"true" doc:"Diet name" example:"Monday plan"`
	}
}

// DietPathInput addresses one diet.
type DietPathInput struct {
	ProfileID string `path:"profileId" doc:"Profile identifier"`
	DietID    string `path:"dietId"    doc:"Diet identifier"`
}

// DietReplaceInput for PUT /profiles/{profileId}/diets/{dietId}
type DietReplaceInput struct {
	ProfileID string `path:"profileId" doc:"Profile identifier"`
	DietID    string `path:"dietId"    doc:"Diet identifier"`
	Body      DietBody
}

// ItemAddInput for POST .../meals/{mealType}/items
type ItemAddInput struct {
	ProfileID string `path:"profileId" doc:"Profile identifier"`
	DietID    string `path:"dietId"    doc:"Diet identifier"`
	MealType  string `path:"mealType"  doc:"Meal" enum:"breakfast,lunch,snack,dinner"`
	Body      struct {
		FoodID   string  `json:"foodId"   minLength:"1" required:"true" doc:"Food identifier"            example:"rice"`
		Quantity float64 `json:"quantity" minimum:"0"   required:"true" doc:"Grams or number of units" example:"150"`
	}
}

// ItemUpdateInput for PATCH .../meals/{mealType}/items/{index}
type ItemUpdateInput struct {
	ProfileID string `path:"profileId" doc:"Profile identifier"`
	DietID    string `path:"dietId"    doc:"Diet identifier"`
	MealType  string `path:"mealType"  doc:"Meal" enum:"breakfast,lunch,snack,dinner"`
	Index     int    `path:"index"     doc:"Zero-based item position" minimum:"0"`
	Body      struct {
		Quantity float64 `json:"quantity" minimum:"0" required:"true" doc:"Grams or number of units" example:"200"`
	}
}

// ItemRemoveInput for DELETE .../meals/{mealType}/items/{index}
type ItemRemoveInput struct {
	ProfileID string `path:"profileId" doc:"Profile identifier"`
	DietID    string `path:"dietId"    doc:"Diet identifier"`
	MealType  string `path:"mealType"  doc:"Meal" enum:"breakfast,lunch,snack,dinner"`
	Index     int    `path:"index"     doc:"Zero-based item position" minimum:"0"`
}
