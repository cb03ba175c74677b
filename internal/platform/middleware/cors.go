package middleware

import (
	"net/http"

	"github.com/go-chi/cors"
)

// CORS allows the listed origins, or any origin when none are given. PDF
// exports expose Content-Disposition so browsers can read the file name.
func CORS(allowedOrigins ...string) func(http.Handler) http.Handler {
	if len(allowedOrigins) == 0 {
		allowedOrigins = []string{"*"}
	}
	return cors.Handler(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{
			http.MethodGet,
			http.MethodHead,
			http.MethodPost,
			http.MethodPut,
			http.MethodPatch,
			http.MethodDelete,
			http.MethodOptions,
		},
		AllowedHeaders: []string{
			"Accept",
			"Content-Type",
			"X-Request-Id",
		},
		ExposedHeaders: []string{"Link", "Location", "X-Request-Id", "Content-Disposition"},
		MaxAge:         300,
	})
}
