// Package respond renders RFC 9457 problem details for failures that happen
// outside huma operations: unknown routes, unsupported methods and panics.
package respond

import (
	"encoding/json"
	"fmt"
	"net/http"
	"runtime/debug"
	"strconv"
	"strings"

	"github.com/danielgtaylor/huma/v2"
	"github.com/fxamacker/cbor/v2"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	applog "github.com/janisto/diet-planner/internal/platform/logging"
)

const (
	contentTypeProblemJSON = "application/problem+json"
	contentTypeProblemCBOR = "application/problem+cbor"
)

var knownMethods = []string{
	http.MethodGet,
	http.MethodHead,
	http.MethodPost,
	http.MethodPut,
	http.MethodPatch,
	http.MethodDelete,
	http.MethodOptions,
}

// NotFoundHandler renders a 404 problem.
func NotFoundHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		WriteProblem(w, r, http.StatusNotFound, "resource not found")
	}
}

// MethodNotAllowedHandler renders a 405 problem and lists the methods the
// matched path supports in the Allow header.
func MethodNotAllowedHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if allowed := allowedMethods(r); len(allowed) > 0 {
			w.Header().Set("Allow", strings.Join(allowed, ", "))
		}
		WriteProblem(w, r, http.StatusMethodNotAllowed, fmt.Sprintf("method %s not allowed", r.Method))
	}
}

func allowedMethods(r *http.Request) []string {
	rctx := chi.RouteContext(r.Context())
	if rctx == nil || rctx.Routes == nil {
		return nil
	}
	path := r.URL.RawPath
	if path == "" {
		path = r.URL.Path
	}
	var allowed []string
	for _, m := range knownMethods {
		if rctx.Routes.Match(chi.NewRouteContext(), m, path) {
			allowed = append(allowed, m)
		}
	}
	return allowed
}

// Recoverer turns panics into a logged 500 problem. http.ErrAbortHandler is
// re-panicked so net/http can abort the connection.
func Recoverer() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			rw := &responseWriter{ResponseWriter: w}
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				if rec == http.ErrAbortHandler { //nolint:errorlint // sentinel compared by identity
					panic(rec)
				}
				applog.LoggerFromContext(r.Context()).Error("panic recovered",
					zap.Any("panic", rec),
					zap.ByteString("stack", debug.Stack()),
				)
				if rw.wroteHeader {
					return
				}
				WriteProblem(rw, r, http.StatusInternalServerError, "internal server error")
			}()
			next.ServeHTTP(rw, r)
		})
	}
}

// WriteProblem writes a problem body as CBOR when the client prefers it,
// JSON otherwise.
func WriteProblem(w http.ResponseWriter, r *http.Request, status int, detail string) {
	problem := huma.ErrorModel{
		Title:  http.StatusText(status),
		Status: status,
		Detail: detail,
	}

	var (
		body []byte
		err  error
	)
	if acceptsCBOR(r) {
		w.Header().Set("Content-Type", contentTypeProblemCBOR)
		body, err = cbor.Marshal(problem)
	} else {
		w.Header().Set("Content-Type", contentTypeProblemJSON)
		body, err = json.Marshal(problem)
	}
	if err != nil {
		applog.LogError(r.Context(), "failed to encode problem", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	w.WriteHeader(status)
	if _, err := w.Write(body); err != nil {
		applog.LogError(r.Context(), "failed to write problem", err)
	}
}

// acceptsCBOR reports whether CBOR has a strictly higher q-value than JSON in
// the Accept header. Wildcards and ties resolve to JSON.
func acceptsCBOR(r *http.Request) bool {
	accept := r.Header.Get("Accept")
	if accept == "" {
		return false
	}
	cborQ, jsonQ := -1.0, -1.0
	for part := range strings.SplitSeq(accept, ",") {
		mediaType, q := parseMediaRange(part)
		switch mediaType {
		case "application/cbor", "application/problem+cbor":
			cborQ = max(cborQ, q)
		case "application/json", "application/problem+json", "application/*", "*/*":
			jsonQ = max(jsonQ, q)
		}
	}
	return cborQ > 0 && cborQ > jsonQ
}

func parseMediaRange(part string) (string, float64) {
	fields := strings.Split(part, ";")
	mediaType := strings.ToLower(strings.TrimSpace(fields[0]))
	q := 1.0
	for _, p := range fields[1:] {
		k, v, ok := strings.Cut(strings.TrimSpace(p), "=")
		if !ok || strings.TrimSpace(k) != "q" {
			continue
		}
		if parsed, err := strconv.ParseFloat(strings.TrimSpace(v), 64); err == nil {
			q = parsed
		}
	}
	return mediaType, q
}

// responseWriter records whether the header has been sent.
type responseWriter struct {
	http.ResponseWriter
	wroteHeader bool
}

func (rw *responseWriter) WriteHeader(status int) {
	rw.wroteHeader = true
	rw.ResponseWriter.WriteHeader(status)
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	rw.wroteHeader = true
	return rw.ResponseWriter.Write(b)
}

func (rw *responseWriter) Unwrap() http.ResponseWriter {
	return rw.ResponseWriter
}
