package main

import (
	"database/sql"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/farxc/atlas-fiscal/internal/response"
	"github.com/farxc/atlas-fiscal/internal/source"
)

func writeJSON(w http.ResponseWriter, status int, data any) error {
	w.Header().Set("Content-Type", "application/json")

	w.WriteHeader(status)

	return json.NewEncoder(w).Encode(data)
}

func writeJSONError(w http.ResponseWriter, status int, message string) error {
	return writeJSON(w, status, &response.ErrorResponse{Error: message})
}

// writeFetchError maps a fetch failure to the right response. An
// unavailable data source is part of normal operation (the dashboard runs
// without secrets) and answers 503; anything else is a real server error.
func writeFetchError(w http.ResponseWriter, err error) {
	if errors.Is(err, source.ErrUnavailable) {
		writeJSONError(w, http.StatusServiceUnavailable, "data source unavailable")
		return
	}
	if errors.Is(err, sql.ErrNoRows) {
		writeJSONError(w, http.StatusNotFound, "not found")
		return
	}
	writeJSONError(w, http.StatusInternalServerError, "failed to fetch data: "+err.Error())
}
