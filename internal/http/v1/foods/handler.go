package foods

import (
	"context"
	"errors"
	"net/http"
	"net/url"

	"github.com/danielgtaylor/huma/v2"

	"github.com/janisto/diet-planner/internal/catalog"
	"github.com/janisto/diet-planner/internal/http/v1/apimodel"
	"github.com/janisto/diet-planner/internal/platform/pagination"
	"github.com/janisto/diet-planner/internal/service/tracker"
)

const (
	cursorType   = "food"
	foodNotFound = "food not found"
)

// Register registers catalog and custom food endpoints.
func Register(api huma.API, svc tracker.Service, prefix string) {
	huma.Register(api, huma.Operation{
		OperationID: "list-foods",
		Method:      http.MethodGet,
		Path:        "/foods",
		Summary:     "List foods",
		Description: "Returns custom foods followed by built-in foods, filtered by category, name and source. " +
			"Use the cursor from the Link header to navigate between pages.",
		Tags: []string{"Foods"},
	}, func(ctx context.Context, input *FoodListInput) (*FoodListOutput, error) {
		foods := svc.ListFoods(ctx, tracker.FoodFilter{
			Category: input.Category,
			Query:    input.Query,
			Source:   tracker.FoodSource(input.Source),
		})

		query := url.Values{}
		if input.Category != "" {
			query.Set("category", input.Category)
		}
		if input.Query != "" {
			query.Set("q", input.Query)
		}
		if input.Source != "" {
			query.Set("source", input.Source)
		}

		result, err := pagination.Paginate(
			foods,
			input.Params,
			cursorType,
			func(f catalog.Food) string { return f.ID },
			prefix+"/foods",
			query,
		)
		if errors.Is(err, pagination.ErrInvalidCursor) {
			return nil, huma.Error400BadRequest("invalid cursor")
		}
		if err != nil {
			return nil, huma.Error500InternalServerError("internal error")
		}
		out := make([]Food, len(result.Items))
		for i, f := range result.Items {
			out[i] = toHTTPFood(f, svc.IsCustomFood(ctx, f.ID))
		}
		return &FoodListOutput{
			Link: result.LinkHeader,
			Body: ListData{Foods: out, Total: result.Total},
		}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "get-food",
		Method:      http.MethodGet,
		Path:        "/foods/{foodId}",
		Summary:     "Get food",
		Description: "Resolves a food by identifier. Custom foods shadow built-in foods with the same identifier.",
		Tags:        []string{"Foods"},
	}, func(ctx context.Context, input *FoodPathInput) (*FoodOutput, error) {
		f, err := svc.GetFood(ctx, input.FoodID)
		if err != nil {
			return nil, apimodel.ServiceError(err, foodNotFound)
		}
		return &FoodOutput{Body: toHTTPFood(f, svc.IsCustomFood(ctx, f.ID))}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID:   "create-food",
		Method:        http.MethodPost,
		Path:          "/foods",
		Summary:       "Create custom food",
		Description:   "Creates a custom food. Calories are derived as 4 kcal per gram of protein and carbs plus 9 per gram of fat.",
		Tags:          []string{"Foods"},
		DefaultStatus: http.StatusCreated,
	}, func(ctx context.Context, input *FoodCreateInput) (*FoodCreateOutput, error) {
		f, err := svc.CreateFood(ctx, input.Body.request())
		if err != nil {
			return nil, apimodel.ServiceError(err, foodNotFound)
		}
		return &FoodCreateOutput{
			Location: prefix + "/foods/" + f.ID,
			Body:     toHTTPFood(f, true),
		}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "update-food",
		Method:      http.MethodPut,
		Path:        "/foods/{foodId}",
		Summary:     "Update custom food",
		Description: "Replaces a custom food. Omitted unit and image keep their previous values. " +
			"Only custom foods are updated; any other id changes nothing and returns 204.",
		Tags: []string{"Foods"},
	}, func(ctx context.Context, input *FoodUpdateInput) (*FoodUpdateOutput, error) {
		f, ok, err := svc.UpdateFood(ctx, input.FoodID, input.Body.request())
		if err != nil {
			return nil, apimodel.ServiceError(err, foodNotFound)
		}
		if !ok {
			return &FoodUpdateOutput{Status: http.StatusNoContent}, nil
		}
		body := toHTTPFood(f, true)
		return &FoodUpdateOutput{Status: http.StatusOK, Body: &body}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID:   "delete-food",
		Method:        http.MethodDelete,
		Path:          "/foods/{foodId}",
		Summary:       "Delete custom food",
		Description:   "Deletes a custom food. Diet items that reference it remain and count as zero. Built-in and unknown ids are a no-op.",
		Tags:          []string{"Foods"},
		DefaultStatus: http.StatusNoContent,
	}, func(ctx context.Context, input *FoodPathInput) (*struct{}, error) {
		if err := svc.DeleteFood(ctx, input.FoodID); err != nil {
			return nil, apimodel.ServiceError(err, foodNotFound)
		}
		return nil, nil
	})
}

func toHTTPFood(f catalog.Food, custom bool) Food {
	return Food{
		ID:              f.ID,
		Name:            f.Name,
		Category:        f.Category,
		Image:           f.Image,
		Unit:            string(f.Unit),
		NutritionalInfo: apimodel.FromInfo(f.NutritionalInfo),
		Custom:          custom,
	}
}
