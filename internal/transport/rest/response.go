package rest

import (
	"encoding/json"
	"fmt"
	"net/http"
	"sort"
)

type APIResponse struct {
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
	Meta    any    `json:"meta,omitempty"`
	Errors  any    `json:"errors,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(payload); err != nil {
		http.Error(w, "internal server error: failed to encode response", http.StatusInternalServerError)
	}
}

func JSONSuccess(w http.ResponseWriter, status int, resp APIResponse) {
	writeJSON(w, status, resp)
}

func JSONError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, APIResponse{Message: message})
}

// JSONValidationError answers 422 with the first error (by field name) as
// the message and every field error under "errors".
func JSONValidationError(w http.ResponseWriter, errors map[string]string) {
	keys := make([]string, 0, len(errors))
	for k := range errors {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	message := "The given data was invalid."
	if len(keys) > 0 {
		message = errors[keys[0]]
		switch rest := len(keys) - 1; rest {
		case 0:
		case 1:
			message = fmt.Sprintf("%s (and 1 more error)", message)
		default:
			message = fmt.Sprintf("%s (and %d more errors)", message, rest)
		}
	}

	writeJSON(w, http.StatusUnprocessableEntity, APIResponse{
		Message: message,
		Errors:  errors,
	})
}
