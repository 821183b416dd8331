package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/DidUJustTouchMyButt/Mobile-Supply-Closet/internal/store"
)

// jsonResponse writes a JSON response with the given status code.
func jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			slog.Error("encoding response", "error", err)
		}
	}
}

// jsonError writes a JSON error response.
func jsonError(w http.ResponseWriter, status int, message string) {
	jsonResponse(w, status, map[string]string{"error": message})
}

// decodeJSON decodes a JSON request body into the given target.
func decodeJSON(r *http.Request, target any) error {
	defer r.Body.Close()
	return json.NewDecoder(r.Body).Decode(target)
}

// storeError maps store errors onto response codes. fallback describes the
// operation for the generic 500 case so internals don't leak.
func storeError(w http.ResponseWriter, err error, fallback string) {
	switch {
	case errors.Is(err, store.ErrInvalid):
		jsonError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, store.ErrNotFound):
		jsonError(w, http.StatusNotFound, "not found")
	case errors.Is(err, store.ErrLocationInUse):
		jsonError(w, http.StatusConflict, err.Error())
	default:
		slog.Error(fallback, "error", err)
		jsonError(w, http.StatusInternalServerError, fallback)
	}
}
