package health

import (
	"encoding/json"
	"net/http"
)

// Response is the payload for the health endpoint.
type Response struct {
	Status  string `json:"status"`
	Backend string `json:"backend,omitempty"`
}

// NewHandler returns a plain HTTP handler for the health check endpoint that
// also reports the configured storage backend.
func NewHandler(backend string) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(Response{Status: "healthy", Backend: backend})
	}
}
