package profiles

import "github.com/janisto/diet-planner/internal/http/v1/apimodel"

// ProfileListInput for GET /profiles (no parameters)
type ProfileListInput struct{}

// ProfileCreateInput for POST /profiles
type ProfileCreateInput struct {
	Body apimodel.UserData
}

// ProfileGetInput for GET /profiles/{profileId}
type ProfileGetInput struct {
	ProfileID string `path:"profileId" doc:"Profile identifier"`
}

// ProfileUpdateInput for PUT /profiles/{profileId}
type ProfileUpdateInput struct {
	ProfileID string `path:"profileId" doc:"Profile identifier"`
	Body      apimodel.UserData
}

// ProfileDeleteInput for DELETE /profiles/{profileId}
type ProfileDeleteInput struct {
	ProfileID string `path:"profileId" doc:"Profile identifier"`
}

// CurrentProfileGetInput for GET /current-profile (no parameters)
type CurrentProfileGetInput struct{}

// CurrentProfileSelectInput for PUT /current-profile
type CurrentProfileSelectInput struct {
	Body struct {
		ProfileID string `json:"profileId" minLength:"1" required:"true" doc:"Profile to select" example:"4f9c1d2e-8a7b-4c3d-9e0f-1a2b3c4d5e6f"`
	}
}
