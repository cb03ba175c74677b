package routes

import (
	"net/url"

	"github.com/danielgtaylor/huma/v2"

	"github.com/janisto/diet-planner/internal/http/v1/diets"
	"github.com/janisto/diet-planner/internal/http/v1/foods"
	"github.com/janisto/diet-planner/internal/http/v1/goals"
	"github.com/janisto/diet-planner/internal/http/v1/profiles"
	"github.com/janisto/diet-planner/internal/service/tracker"
)

// Register wires all v1 routes into the provided API router.
func Register(api huma.API, svc tracker.Service) {
	prefix := apiPrefix(api)

	goals.Register(api, svc)
	profiles.Register(api, svc, prefix)
	diets.Register(api, svc, prefix)
	foods.Register(api, svc, prefix)
}

func apiPrefix(api huma.API) string {
	for _, s := range api.OpenAPI().Servers {
		if u, err := url.Parse(s.URL); err == nil && u.Path != "" {
			return u.Path
		}
	}
	return ""
}
