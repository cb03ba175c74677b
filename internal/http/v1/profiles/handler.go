package profiles

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/janisto/diet-planner/internal/diet"
	"github.com/janisto/diet-planner/internal/http/v1/apimodel"
	"github.com/janisto/diet-planner/internal/platform/timeutil"
	"github.com/janisto/diet-planner/internal/service/tracker"
)

const (
	profileNotFound = "profile not found"
	noCurrent       = "no profile selected"
)

// Register registers profile and current-profile endpoints.
func Register(api huma.API, svc tracker.Service, prefix string) {
	huma.Register(api, huma.Operation{
		OperationID: "list-profiles",
		Method:      http.MethodGet,
		Path:        "/profiles",
		Summary:     "List profiles",
		Description: "Returns every profile in creation order.",
		Tags:        []string{"Profiles"},
	}, func(ctx context.Context, _ *ProfileListInput) (*ProfileListOutput, error) {
		profiles := svc.ListProfiles(ctx)
		current, err := svc.CurrentProfile(ctx)
		currentID := ""
		if err == nil {
			currentID = current.ID
		}
		out := make([]Profile, len(profiles))
		for i, p := range profiles {
			out[i] = toHTTPProfile(p)
		}
		return &ProfileListOutput{
			Body: ListData{
				Profiles:         out,
				Total:            len(out),
				CurrentProfileID: currentID,
			},
		}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID:   "create-profile",
		Method:        http.MethodPost,
		Path:          "/profiles",
		Summary:       "Create profile",
		Description:   "Creates a profile with goals derived from the user data and makes it the current profile.",
		Tags:          []string{"Profiles"},
		DefaultStatus: http.StatusCreated,
	}, func(ctx context.Context, input *ProfileCreateInput) (*ProfileCreateOutput, error) {
		p, err := svc.CreateProfile(ctx, tracker.CreateProfileRequest{UserDataRequest: input.Body.Request()})
		if err != nil {
			return nil, apimodel.ServiceError(err, profileNotFound)
		}
		return &ProfileCreateOutput{
			Location: prefix + "/profiles/" + p.ID,
			Body:     toHTTPProfile(p),
		}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "get-profile",
		Method:      http.MethodGet,
		Path:        "/profiles/{profileId}",
		Summary:     "Get profile",
		Tags:        []string{"Profiles"},
	}, func(ctx context.Context, input *ProfileGetInput) (*ProfileOutput, error) {
		p, err := svc.GetProfile(ctx, input.ProfileID)
		if err != nil {
			return nil, apimodel.ServiceError(err, profileNotFound)
		}
		return &ProfileOutput{Body: toHTTPProfile(p)}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "update-profile",
		Method:      http.MethodPut,
		Path:        "/profiles/{profileId}",
		Summary:     "Update profile user data",
		Description: "Replaces the user data of a profile and recomputes its daily goals. " +
			"An unknown profile changes nothing and returns 204.",
		Tags: []string{"Profiles"},
	}, func(ctx context.Context, input *ProfileUpdateInput) (*ProfileMutationOutput, error) {
		p, ok, err := svc.UpdateProfile(ctx, input.ProfileID, tracker.UpdateProfileRequest{
			UserDataRequest: input.Body.Request(),
		})
		return mutationOutput(p, ok, err)
	})

	huma.Register(api, huma.Operation{
		OperationID:   "delete-profile",
		Method:        http.MethodDelete,
		Path:          "/profiles/{profileId}",
		Summary:       "Delete profile",
		Description:   "Deletes a profile and its diets. Deleting the current profile selects the first remaining one.",
		Tags:          []string{"Profiles"},
		DefaultStatus: http.StatusNoContent,
	}, func(ctx context.Context, input *ProfileDeleteInput) (*struct{}, error) {
		if err := svc.DeleteProfile(ctx, input.ProfileID); err != nil {
			return nil, apimodel.ServiceError(err, profileNotFound)
		}
		return nil, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "get-current-profile",
		Method:      http.MethodGet,
		Path:        "/current-profile",
		Summary:     "Get current profile",
		Tags:        []string{"Profiles"},
	}, func(ctx context.Context, _ *CurrentProfileGetInput) (*ProfileOutput, error) {
		p, err := svc.CurrentProfile(ctx)
		if err != nil {
			return nil, apimodel.ServiceError(err, noCurrent)
		}
		return &ProfileOutput{Body: toHTTPProfile(p)}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "select-current-profile",
		Method:      http.MethodPut,
		Path:        "/current-profile",
		Summary:     "Select current profile",
		Description: "Selecting an unknown profile keeps the current selection and returns 204.",
		Tags:        []string{"Profiles"},
	}, func(ctx context.Context, input *CurrentProfileSelectInput) (*ProfileMutationOutput, error) {
		p, ok, err := svc.SelectProfile(ctx, input.Body.ProfileID)
		return mutationOutput(p, ok, err)
	})
}

// mutationOutput renders a profile mutation: 200 with the profile, or 204
// when the profile did not exist.
func mutationOutput(p diet.Profile, ok bool, err error) (*ProfileMutationOutput, error) {
	if err != nil {
		return nil, apimodel.ServiceError(err, profileNotFound)
	}
	if !ok {
		return &ProfileMutationOutput{Status: http.StatusNoContent}, nil
	}
	body := toHTTPProfile(p)
	return &ProfileMutationOutput{Status: http.StatusOK, Body: &body}, nil
}

func toHTTPProfile(p diet.Profile) Profile {
	ids := make([]string, len(p.Diets))
	for i, d := range p.Diets {
		ids[i] = d.ID
	}
	return Profile{
		ID:         p.ID,
		UserData:   apimodel.FromUserData(p.UserData),
		DailyGoals: apimodel.FromInfo(p.DailyGoals),
		DietIDs:    ids,
		CreatedAt:  timeutil.Time{Time: p.CreatedAt},
	}
}
