package service

import (
	"encoding/json"
	"net/http"
)

// ErrorResponse wraps the message returned to the caller
// when a request is rejected before any upstream activity
type ErrorResponse struct {
	Error string `json:"error"`
}

// MarshalJSONResponse marshals an interface into the response body with
// the provided status code and sets JSON content type headers
func MarshalJSONResponse(w http.ResponseWriter, status int, obj interface{}) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(obj); err != nil {
		return err
	}

	return nil
}
