package main

import "net/http"

// @Summary		Health check
// @Description	returns the status of the service and its data source
// @Tags			Health
// @Produce		json
// @Success		200	{object}	map[string]string
// @Router			/health [get]
func (app *application) healthCheckHandler(w http.ResponseWriter, r *http.Request) {

	dataSource := "available"
	if !app.source.Available() {
		dataSource = "unavailable"
	}

	data := map[string]string{
		"status":      "available",
		"data_source": dataSource,
		"version":     "0.1.0",
	}

	if err := writeJSON(w, http.StatusOK, data); err != nil {
		writeJSONError(w, http.StatusInternalServerError, err.Error())
	}
}
