package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/desertthunder/jukebox/internal/shared"
)

// messageBody is the JSON shape of every non-record response.
type messageBody struct {
	Message string `json:"message"`
	ID      string `json:"id,omitempty"`
}

// respondJSON writes v as a JSON response with the given status.
func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// respondMessage writes a {message} body with the given status.
func respondMessage(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, messageBody{Message: message})
}

// respondError converts an error from the gateway into the matching status
// code and {message} body. notFoundMessage is the record-kind wording used
// when the error is a not-found.
func respondError(w http.ResponseWriter, err error, notFoundMessage string) {
	switch {
	case errors.Is(err, shared.ErrInvalidID):
		respondMessage(w, http.StatusBadRequest, "Invalid ID format!")
	case errors.Is(err, shared.ErrUserNotFound), errors.Is(err, shared.ErrSongNotFound):
		respondMessage(w, http.StatusNotFound, notFoundMessage)
	case errors.Is(err, shared.ErrMissingField), errors.Is(err, shared.ErrInvalidInput):
		respondMessage(w, http.StatusBadRequest, err.Error())
	default:
		respondMessage(w, http.StatusInternalServerError, "Internal server error")
	}
}

// decodeBody reads a JSON request body into v. A malformed or empty body is
// an invalid-input error; absent fields are left zero for presence
// validation downstream.
func decodeBody(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return shared.ErrInvalidInput
	}
	return nil
}
