package main

import "net/http"

// handleGetBoundaries serves the filtered boundary collection for the map
// layer. The file is loaded once at startup; a missing file answers 404
// rather than failing the whole service.
func (app *application) handleGetBoundaries(w http.ResponseWriter, r *http.Request) {
	if app.boundaries == nil {
		writeJSONError(w, http.StatusNotFound, "boundary data not loaded")
		return
	}

	if err := writeJSON(w, http.StatusOK, app.boundaries); err != nil {
		writeJSONError(w, http.StatusInternalServerError, "failed to write response")
	}
}
