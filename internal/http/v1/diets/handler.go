package diets

import (
	"context"
	"errors"
	"mime"
	"net/http"
	"net/url"

	"github.com/danielgtaylor/huma/v2"

	"github.com/janisto/diet-planner/internal/diet"
	"github.com/janisto/diet-planner/internal/http/v1/apimodel"
	"github.com/janisto/diet-planner/internal/platform/pagination"
	"github.com/janisto/diet-planner/internal/service/tracker"
)

const (
	cursorType = "diet"
	notFound   = "profile or diet not found"
)

// Register registers diet, meal item, summary and export endpoints.
func Register(api huma.API, svc tracker.Service, prefix string) {
	huma.Register(api, huma.Operation{
		OperationID: "list-diets",
		Method:      http.MethodGet,
		Path:        "/profiles/{profileId}/diets",
		Summary:     "List diets of a profile",
		Description: "Returns a paginated list of diets in creation order. Use the cursor from the Link header to navigate between pages.",
		Tags:        []string{"Diets"},
	}, func(ctx context.Context, input *DietListInput) (*DietListOutput, error) {
		diets, err := svc.ListDiets(ctx, input.ProfileID)
		if err != nil {
			return nil, apimodel.ServiceError(err, "profile not found")
		}
		result, err := pagination.Paginate(
			diets,
			input.Params,
			cursorType,
			func(d diet.DailyDiet) string { return d.ID },
			prefix+"/profiles/"+url.PathEscape(input.ProfileID)+"/diets",
			nil,
		)
		if errors.Is(err, pagination.ErrInvalidCursor) {
			return nil, huma.Error400BadRequest("invalid cursor")
		}
		if err != nil {
			return nil, huma.Error500InternalServerError("internal error")
		}
		out := make([]DietListItem, len(result.Items))
		for i, d := range result.Items {
			out[i] = DietListItem{
				Diet:   toHTTPDiet(d),
				Totals: apimodel.FromInfo(svc.DietTotals(ctx, d).Round()),
			}
		}
		return &DietListOutput{
			Link: result.LinkHeader,
			Body: ListData{Diets: out, Total: result.Total},
		}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID:   "create-diet",
		Method:        http.MethodPost,
		Path:          "/profiles/{profileId}/diets",
		Summary:       "Create diet",
		Description: "Creates an empty diet with breakfast, lunch, snack and dinner. " +
			"Creating a diet for an unknown profile changes nothing and returns 204.",
		Tags:          []string{"Diets"},
		DefaultStatus: http.StatusCreated,
	}, func(ctx context.Context, input *DietCreateInput) (*DietCreateOutput, error) {
		d, ok, err := svc.CreateDiet(ctx, input.ProfileID, tracker.CreateDietRequest{Name: input.Body.Name})
		if err != nil {
			return nil, apimodel.ServiceError(err, "profile not found")
		}
		if !ok {
			return &DietCreateOutput{Status: http.StatusNoContent}, nil
		}
		body := toHTTPDiet(d)
		return &DietCreateOutput{
			Status:   http.StatusCreated,
			Location: prefix + "/profiles/" + url.PathEscape(input.ProfileID) + "/diets/" + d.ID,
			Body:     &body,
		}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "get-diet",
		Method:      http.MethodGet,
		Path:        "/profiles/{profileId}/diets/{dietId}",
		Summary:     "Get diet",
		Tags:        []string{"Diets"},
	}, func(ctx context.Context, input *DietPathInput) (*DietOutput, error) {
		d, err := svc.GetDiet(ctx, input.ProfileID, input.DietID)
		if err != nil {
			return nil, apimodel.ServiceError(err, notFound)
		}
		return &DietOutput{Body: toHTTPDiet(d)}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "replace-diet",
		Method:      http.MethodPut,
		Path:        "/profiles/{profileId}/diets/{dietId}",
		Summary:     "Replace diet",
		Description: "Replaces a diet's name and meals. Missing meals are added empty. " +
			"Replacing a diet of an unknown profile or an unknown diet changes nothing and returns 204.",
		Tags: []string{"Diets"},
	}, func(ctx context.Context, input *DietReplaceInput) (*DietMutationOutput, error) {
		d, ok, err := svc.ReplaceDiet(ctx, input.ProfileID, tracker.ReplaceDietRequest{
			Diet: input.Body.toDiet(input.DietID),
		})
		return mutationOutput(d, ok, err)
	})

	huma.Register(api, huma.Operation{
		OperationID:   "delete-diet",
		Method:        http.MethodDelete,
		Path:          "/profiles/{profileId}/diets/{dietId}",
		Summary:       "Delete diet",
		Tags:          []string{"Diets"},
		DefaultStatus: http.StatusNoContent,
	}, func(ctx context.Context, input *DietPathInput) (*struct{}, error) {
		if err := svc.DeleteDiet(ctx, input.ProfileID, input.DietID); err != nil {
			return nil, apimodel.ServiceError(err, "profile not found")
		}
		return nil, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "add-meal-item",
		Method:      http.MethodPost,
		Path:        "/profiles/{profileId}/diets/{dietId}/meals/{mealType}/items",
		Summary:     "Add meal item",
		Description: "Adds a food to a meal. Adding a food already in the meal sums the quantities. " +
			"An unknown profile or diet changes nothing and returns 204.",
		Tags:        []string{"Meals"},
	}, func(ctx context.Context, input *ItemAddInput) (*DietMutationOutput, error) {
		d, ok, err := svc.AddItem(ctx, input.ProfileID, input.DietID, tracker.AddItemRequest{
			MealType: input.MealType,
			FoodID:   input.Body.FoodID,
			Quantity: input.Body.Quantity,
		})
		return mutationOutput(d, ok, err)
	})

	huma.Register(api, huma.Operation{
		OperationID: "update-meal-item",
		Method:      http.MethodPatch,
		Path:        "/profiles/{profileId}/diets/{dietId}/meals/{mealType}/items/{index}",
		Summary:     "Update meal item quantity",
		Tags:        []string{"Meals"},
	}, func(ctx context.Context, input *ItemUpdateInput) (*DietMutationOutput, error) {
		d, ok, err := svc.UpdateItem(ctx, input.ProfileID, input.DietID, tracker.UpdateItemRequest{
			MealType: input.MealType,
			Index:    input.Index,
			Quantity: input.Body.Quantity,
		})
		return mutationOutput(d, ok, err)
	})

	huma.Register(api, huma.Operation{
		OperationID: "remove-meal-item",
		Method:      http.MethodDelete,
		Path:        "/profiles/{profileId}/diets/{dietId}/meals/{mealType}/items/{index}",
		Summary:     "Remove meal item",
		Description: "Removes the item at the given position. Later items shift down by one.",
		Tags:        []string{"Meals"},
	}, func(ctx context.Context, input *ItemRemoveInput) (*DietMutationOutput, error) {
		d, ok, err := svc.RemoveItem(ctx, input.ProfileID, input.DietID, tracker.RemoveItemRequest{
			MealType: input.MealType,
			Index:    input.Index,
		})
		return mutationOutput(d, ok, err)
	})

	huma.Register(api, huma.Operation{
		OperationID: "get-diet-summary",
		Method:      http.MethodGet,
		Path:        "/profiles/{profileId}/diets/{dietId}/summary",
		Summary:     "Get diet summary",
		Description: "Compares the diet's consumed nutrients with the profile's goals, meal by meal.",
		Tags:        []string{"Diets"},
	}, func(ctx context.Context, input *DietPathInput) (*SummaryOutput, error) {
		rep, err := svc.Summary(ctx, input.ProfileID, input.DietID)
		if err != nil {
			return nil, apimodel.ServiceError(err, notFound)
		}
		return &SummaryOutput{Body: toHTTPSummary(rep)}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "export-diet-pdf",
		Method:      http.MethodGet,
		Path:        "/profiles/{profileId}/diets/{dietId}/export",
		Summary:     "Export diet as PDF",
		Tags:        []string{"Diets"},
		Responses: map[string]*huma.Response{
			"200": {
				Description: "PDF report",
				Content: map[string]*huma.MediaType{
					"application/pdf": {},
				},
			},
		},
	}, func(ctx context.Context, input *DietPathInput) (*ExportOutput, error) {
		exp, err := svc.ExportPDF(ctx, input.ProfileID, input.DietID)
		if err != nil {
			return nil, apimodel.ServiceError(err, notFound)
		}
		return &ExportOutput{
			ContentType:        "application/pdf",
			ContentDisposition: mime.FormatMediaType("attachment", map[string]string{"filename": exp.FileName}),
			Body:               exp.Data,
		}, nil
	})
}

// mutationOutput renders a diet mutation: 200 with the diet, or 204 when the
// profile or diet did not exist.
func mutationOutput(d diet.DailyDiet, ok bool, err error) (*DietMutationOutput, error) {
	if err != nil {
		return nil, apimodel.ServiceError(err, notFound)
	}
	if !ok {
		return &DietMutationOutput{Status: http.StatusNoContent}, nil
	}
	body := toHTTPDiet(d)
	return &DietMutationOutput{Status: http.StatusOK, Body: &body}, nil
}
