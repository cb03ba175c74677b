package routes

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	_ "github.com/danielgtaylor/huma/v2/formats/cbor"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/janisto/diet-planner/internal/catalog"
	applog "github.com/janisto/diet-planner/internal/platform/logging"
	appmiddleware "github.com/janisto/diet-planner/internal/platform/middleware"
	"github.com/janisto/diet-planner/internal/platform/respond"
	"github.com/janisto/diet-planner/internal/service/tracker"
	"github.com/janisto/diet-planner/internal/store"
)

func newTestRouter(t *testing.T) chi.Router {
	t.Helper()
	builtin, err := catalog.Default()
	if err != nil {
		t.Fatalf("catalog.Default: %v", err)
	}
	svc := tracker.New(t.Context(), store.NewMemoryGateway(), builtin)

	router := chi.NewRouter()
	router.Use(
		appmiddleware.RequestID(),
		chimiddleware.RealIP,
		applog.RequestLogger(),
		respond.Recoverer(),
	)
	router.Route("/v1", func(r chi.Router) {
		cfg := huma.DefaultConfig("RoutesTest", "test")
		cfg.Servers = []*huma.Server{{URL: "/v1"}}
		Register(humachi.New(r, cfg), svc)
	})
	return router
}

func TestRegisterRoutes(t *testing.T) {
	router := newTestRouter(t)

	tests := []struct {
		method string
		path   string
		body   string
		status int
	}{
		{http.MethodGet, "/v1/foods", "", http.StatusOK},
		{http.MethodGet, "/v1/foods/rice", "", http.StatusOK},
		{http.MethodGet, "/v1/profiles", "", http.StatusOK},
		{http.MethodGet, "/v1/current-profile", "", http.StatusNotFound},
		{http.MethodGet, "/v1/profiles/missing/diets", "", http.StatusNotFound},
		{http.MethodPost, "/v1/goals",
			`{"weight":70,"height":170,"age":30,"gender":"female","activityLevel":1,"goal":"lose"}`, http.StatusOK},
	}
	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			var req *http.Request
			if tt.body != "" {
				req = httptest.NewRequest(tt.method, tt.path, strings.NewReader(tt.body))
				req.Header.Set("Content-Type", "application/json")
			} else {
				req = httptest.NewRequest(tt.method, tt.path, nil)
			}
			req.Header.Set(chimiddleware.RequestIDHeader, "routes-test")
			resp := httptest.NewRecorder()
			router.ServeHTTP(resp, req)

			if resp.Code != tt.status {
				t.Fatalf("expected %d, got %d: %s", tt.status, resp.Code, resp.Body.String())
			}
		})
	}
}

func TestLocationUsesServerPrefix(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/v1/foods", strings.NewReader(`{"name":"Bar","protein":10}`))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", resp.Code)
	}
	if loc := resp.Header().Get("Location"); !strings.HasPrefix(loc, "/v1/foods/custom-food-") {
		t.Fatalf("unexpected Location %q", loc)
	}
}

func TestAPIPrefix(t *testing.T) {
	cfg := huma.DefaultConfig("PrefixTest", "test")
	if got := apiPrefix(humachi.New(chi.NewRouter(), cfg)); got != "" {
		t.Errorf("expected empty prefix, got %q", got)
	}
	cfg.Servers = []*huma.Server{{URL: "https://api.example.com/v1"}}
	if got := apiPrefix(humachi.New(chi.NewRouter(), cfg)); got != "/v1" {
		t.Errorf("expected /v1, got %q", got)
	}
}
