// Package respond writes JSON responses for the HTTP handlers.
package respond

import (
	"encoding/json"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"

	"github.com/mytheresa/catalogue-browser/internal/logging"
)

type ErrorResponse struct {
	Error string `json:"error"`
}

// JSON writes v with the given status. The header is already sent when
// encoding fails, so the failure is only logged.
func JSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logging.FromContext(r.Context()).Error("encode_response_failed", "status", status, "error", err)
	}
}

func Error(w http.ResponseWriter, r *http.Request, status int, msg string) {
	JSON(w, r, status, ErrorResponse{Error: msg})
}

// PathParam reads a route parameter whether it was set by the router or by
// http.Request.SetPathValue. The value is unescaped only when the request
// path carried escapes, since chi then matched on the raw path.
func PathParam(r *http.Request, name string) string {
	v := r.PathValue(name)
	if v == "" {
		v = chi.URLParam(r, name)
	}
	if r.URL.RawPath == "" {
		return v
	}
	if unescaped, err := url.PathUnescape(v); err == nil {
		return unescaped
	}
	return v
}
