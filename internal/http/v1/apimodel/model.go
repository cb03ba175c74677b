// Package apimodel holds the response and request shapes shared by the v1
// handlers, plus the mapping of tracker errors to problem responses.
package apimodel

import (
	"errors"

	"github.com/danielgtaylor/huma/v2"

	"github.com/janisto/diet-planner/internal/nutrition"
	"github.com/janisto/diet-planner/internal/service/tracker"
)

// Nutrients is an amount of the five tracked nutrients.
type Nutrients struct {
	Calories float64 `json:"calories" doc:"Energy (kcal)"     example:"2184"`
	Protein  float64 `json:"protein"  doc:"Protein (g)"       example:"164"`
	Fat      float64 `json:"fat"      doc:"Fat (g)"           example:"73"`
	Carbs    float64 `json:"carbs"    doc:"Carbohydrates (g)" example:"218"`
	Fiber    float64 `json:"fiber"    doc:"Fiber (g)"         example:"31"`
}

// FromInfo converts nutrition.Info.
func FromInfo(i nutrition.Info) Nutrients {
	return Nutrients{
		Calories: i.Calories,
		Protein:  i.Protein,
		Fat:      i.Fat,
		Carbs:    i.Carbs,
		Fiber:    i.Fiber,
	}
}

// UserData is the biometric input goals are derived from. Gender and goal
// match case-insensitively.
type UserData struct {
	Name          string  `json:"name,omitempty" maxLength:"100" doc:"Display name"                           example:"Alex"`
	Weight        float64 `json:"weight"         required:"true" doc:"Body weight (kg)"                       example:"70"`
	Height        float64 `json:"height"         required:"true" doc:"Height (cm)"                            example:"170"`
	Age           float64 `json:"age"            required:"true" doc:"Age (years)"                            example:"30"`
	Gender        string  `json:"gender"         required:"true" doc:"male or female"                         example:"male"`
	ActivityLevel int     `json:"activityLevel"  required:"true" doc:"1 (sedentary) to 7 (extremely active)" example:"3"`
	Goal          string  `json:"goal"           required:"true" doc:"lose, maintain or gain"                 example:"maintain"`
}

// Request converts the body into the tracker request.
func (u UserData) Request() tracker.UserDataRequest {
	return tracker.UserDataRequest{
		Name:          u.Name,
		Weight:        u.Weight,
		Height:        u.Height,
		Age:           u.Age,
		Gender:        u.Gender,
		ActivityLevel: u.ActivityLevel,
		Goal:          u.Goal,
	}
}

// FromUserData converts nutrition.UserData.
func FromUserData(u nutrition.UserData) UserData {
	return UserData{
		Name:          u.Name,
		Weight:        u.Weight,
		Height:        u.Height,
		Age:           u.Age,
		Gender:        string(u.Gender),
		ActivityLevel: int(u.ActivityLevel),
		Goal:          string(u.Goal),
	}
}

// ServiceError maps tracker errors to huma errors. notFound is the detail
// used for ErrNotFound.
func ServiceError(err error, notFound string) error {
	switch {
	case errors.Is(err, tracker.ErrNotFound):
		return huma.Error404NotFound(notFound)
	case errors.Is(err, tracker.ErrInvalidInput):
		return huma.Error422UnprocessableEntity(err.Error())
	default:
		return huma.Error500InternalServerError("internal error")
	}
}
