package api

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	httperrors "hallmate/internal/errors"
)

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("Error encoding response: %v", err)
	}
}

// writeError maps service errors to HTTP responses. Anything that is not an
// HTTPError is logged and surfaced as a generic 500 so internals do not leak.
func writeError(w http.ResponseWriter, err error) {
	var httpErr *httperrors.HTTPError
	if errors.As(err, &httpErr) {
		writeJSON(w, httpErr.Code, MessageResponse{Message: httpErr.Message})
		return
	}
	log.Printf("Unexpected error: %v", err)
	writeJSON(w, http.StatusInternalServerError, MessageResponse{Message: "Internal server error"})
}
