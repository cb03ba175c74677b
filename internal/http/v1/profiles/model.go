package profiles

import (
	"github.com/janisto/diet-planner/internal/http/v1/apimodel"
	"github.com/janisto/diet-planner/internal/platform/timeutil"
)

// Profile represents a profile response. Diets are listed by identifier;
// fetch them through the diets endpoints.
type Profile struct {
	ID         string             `json:"id"         doc:"Unique identifier"          example:"4f9c1d2e-8a7b-4c3d-9e0f-1a2b3c4d5e6f"`
	UserData   apimodel.UserData  `json:"userData"   doc:"Biometrics the goals derive from"`
	DailyGoals apimodel.Nutrients `json:"dailyGoals" doc:"Derived daily nutrient goals"`
	DietIDs    []string           `json:"dietIds"    doc:"Diet identifiers in creation order"`
	CreatedAt  timeutil.Time      `json:"createdAt"  doc:"Creation timestamp"         example:"2024-01-15T10:30:00.000Z"`
}
