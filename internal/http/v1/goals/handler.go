package goals

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/janisto/diet-planner/internal/http/v1/apimodel"
	"github.com/janisto/diet-planner/internal/service/tracker"
)

// Register registers the goal preview endpoint.
func Register(api huma.API, svc tracker.Service) {
	huma.Register(api, huma.Operation{
		OperationID: "preview-goals",
		Method:      http.MethodPost,
		Path:        "/goals",
		Summary:     "Preview daily goals",
		Description: "Runs the energy model for the given biometrics without creating a profile.",
		Tags:        []string{"Goals"},
	}, func(ctx context.Context, input *GoalsInput) (*GoalsOutput, error) {
		est, err := svc.PreviewGoals(ctx, tracker.GoalsRequest{UserDataRequest: input.Body.Request()})
		if err != nil {
			return nil, apimodel.ServiceError(err, "not found")
		}
		return &GoalsOutput{
			Body: Estimate{
				BMR:    est.BMR,
				TDEE:   est.TDEE,
				Target: est.Target,
				Goals:  apimodel.FromInfo(est.Goals),
			},
		}, nil
	})
}
