package utils

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"

	"biblioteca-api/internal/apperrors"
)

var json = jsoniter.ConfigFastest

// APIError is the error envelope every failed request gets.
type APIError struct {
	Status  int    `json:"status"`
	Error   string `json:"error"`
	Message string `json:"message"`
	Path    string `json:"path"`
}

func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// WriteError maps err to its HTTP status (500 for untyped errors) and writes
// the envelope.
func WriteError(w http.ResponseWriter, r *http.Request, err error) {
	status := apperrors.StatusOf(err)
	JSONError(w, r, err.Error(), status)
}

func JSONError(w http.ResponseWriter, r *http.Request, message string, status int) {
	WriteJSON(w, status, APIError{
		Status:  status,
		Error:   http.StatusText(status),
		Message: message,
		Path:    r.URL.Path,
	})
}
