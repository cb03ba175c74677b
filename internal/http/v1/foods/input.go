package foods

import (
	"github.com/janisto/diet-planner/internal/platform/pagination"
	"github.com/janisto/diet-planner/internal/service/tracker"
)

// FoodListInput defines query parameters for listing foods.
type FoodListInput struct {
	pagination.Params
	Category string `query:"category" doc:"Filter by category (case-insensitive)" example:"fruits"`
	Query    string `query:"q"        doc:"Filter by name substring (case-insensitive)" example:"rice"`
	Source   string `query:"source"   doc:"Restrict to built-in or custom foods" enum:"builtin,custom"`
}

// FoodPathInput addresses one food.
type FoodPathInput struct {
	FoodID string `path:"foodId" doc:"Food identifier"`
}

// FoodBody is a custom food definition. Calories are never supplied.
type FoodBody struct {
	Name     string  `json:"name"               minLength:"1" maxLength:"100" required:"true" doc:"Food name"                    example:"Protein bar"`
	Category string  `json:"category,omitempty" maxLength:"50"                                doc:"Free-form category"           example:"snacks"`
	Protein  float64 `json:"protein,omitempty"  minimum:"0"                                   doc:"Protein (g)"                  example:"20"`
	Carbs    float64 `json:"carbs,omitempty"    minimum:"0"                                   doc:"Carbohydrates (g)"            example:"20"`
	Fat      float64 `json:"fat,omitempty"      minimum:"0"                                   doc:"Fat (g)"                      example:"5"`
	Fiber    float64 `json:"fiber,omitempty"    minimum:"0"                                   doc:"Fiber (g)"                    example:"3"`
	Unit     string  `json:"unit,omitempty"     enum:"g,unit"                                 doc:"Per 100 g or per single unit" example:"unit"`
	Image    string  `json:"image,omitempty"    maxLength:"16"                                doc:"Emoji glyph"                  example:"🍫"`
}

func (b FoodBody) request() tracker.FoodRequest {
	return tracker.FoodRequest{
		Name:     b.Name,
		Category: b.Category,
		Protein:  b.Protein,
		Carbs:    b.Carbs,
		Fat:      b.Fat,
		Fiber:    b.Fiber,
		Unit:     b.Unit,
		Image:    b.Image,
	}
}

// FoodCreateInput for POST /foods
type FoodCreateInput struct {
	Body FoodBody
}

// FoodUpdateInput for PUT /foods/{foodId}
type FoodUpdateInput struct {
	FoodID string `path:"foodId" doc:"Food identifier"`
	Body   FoodBody
}
