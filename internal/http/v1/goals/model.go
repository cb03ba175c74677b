package goals

import "github.com/janisto/diet-planner/internal/http/v1/apimodel"

// Estimate exposes every step of the energy model. Goals are rounded; the
// intermediate values are not.
type Estimate struct {
	BMR    float64            `json:"bmr"    doc:"Basal metabolic rate (kcal)"        example:"1617.5"`
	TDEE   float64            `json:"tdee"   doc:"Total daily energy expenditure"     example:"2183.625"`
	Target float64            `json:"target" doc:"Calorie target after goal offset"   example:"2183.625"`
	Goals  apimodel.Nutrients `json:"goals"  doc:"Rounded daily nutrient goals"`
}
