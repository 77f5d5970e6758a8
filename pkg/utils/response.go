package utils

import (
	"net/http"

	"artmarket-backend/pkg/apperr"
	"artmarket-backend/pkg/logger"

	"github.com/goccy/go-json"
)

func WriteJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
	}
}

func WriteError(w http.ResponseWriter, status int, message string) {
	WriteJSON(w, status, map[string]string{"error": message})
}

// WriteAppError renders err as JSON. Anything that is not an *apperr.AppError
// becomes a 500 and its text never reaches the client.
func WriteAppError(w http.ResponseWriter, r *http.Request, err error) {
	ae := apperr.As(err)
	if ae == nil {
		ae = apperr.Internal(err)
	}
	if ae.HTTPStatus >= http.StatusInternalServerError {
		logger.WithContext(r.Context()).Error().Err(ae.Cause).
			Str("path", r.URL.Path).
			Msg("request failed")
	}
	WriteJSON(w, ae.HTTPStatus, ae)
}
