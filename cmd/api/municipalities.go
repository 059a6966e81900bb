package main

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/farxc/atlas-fiscal/internal/fiscal"
	"github.com/farxc/atlas-fiscal/internal/response"
)

type ListMunicipalitiesResponse = response.APIResponse[[]fiscal.Municipality]
type ListDocumentsResponse = response.APIResponse[[]fiscal.Document]
type GetMunicipalityResponse = response.APIResponse[MunicipalityDetail]
type GetComparisonResponse = response.APIResponse[fiscal.MunicipalityComparison]

// MunicipalityDetail couples a registry row with its aggregate metrics.
// Metrics is nil when the municipality has loaded no fiscal data, which is
// not the same as having loaded data that sums to zero.
type MunicipalityDetail struct {
	Municipality fiscal.Municipality      `json:"municipality"`
	Metrics      *fiscal.MunicipalMetrics `json:"metrics"`
}

func (app *application) handleListMunicipalities(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	municipalities, err := app.source.Municipalities(ctx)
	if err != nil {
		writeFetchError(w, err)
		return
	}

	resp := &ListMunicipalitiesResponse{
		Success: true,
		Data:    municipalities,
		Message: "Successfully retrieved municipality registry",
	}

	if err := writeJSON(w, http.StatusOK, resp); err != nil {
		writeJSONError(w, http.StatusInternalServerError, "failed to write response")
	}
}

func (app *application) handleGetMunicipality(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := chi.URLParam(r, "id")

	muni, err := app.findMunicipality(ctx, id)
	if err != nil {
		writeFetchError(w, err)
		return
	}
	if muni == nil {
		writeJSONError(w, http.StatusNotFound, "municipality not found")
		return
	}

	aggregate, err := app.aggregate(ctx)
	if err != nil {
		writeFetchError(w, err)
		return
	}

	resp := &GetMunicipalityResponse{
		Success: true,
		Data: MunicipalityDetail{
			Municipality: *muni,
			Metrics:      aggregate.Metrics[muni.ID],
		},
		Message: "Successfully retrieved municipality",
	}

	if err := writeJSON(w, http.StatusOK, resp); err != nil {
		writeJSONError(w, http.StatusInternalServerError, "failed to write response")
	}
}

func (app *application) handleListMunicipalityDocuments(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := chi.URLParam(r, "id")

	documents, err := app.source.MunicipalityDocuments(ctx, id)
	if err != nil {
		writeFetchError(w, err)
		return
	}

	resp := &ListDocumentsResponse{
		Success: true,
		Data:    documents,
		Message: "Successfully retrieved municipality documents",
	}

	if err := writeJSON(w, http.StatusOK, resp); err != nil {
		writeJSONError(w, http.StatusInternalServerError, "failed to write response")
	}
}

func (app *application) handleGetMunicipalityComparison(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := chi.URLParam(r, "id")

	muni, err := app.findMunicipality(ctx, id)
	if err != nil {
		writeFetchError(w, err)
		return
	}
	if muni == nil {
		writeJSONError(w, http.StatusNotFound, "municipality not found")
		return
	}

	municipalities, err := app.source.Municipalities(ctx)
	if err != nil {
		writeFetchError(w, err)
		return
	}
	aggregate, err := app.aggregate(ctx)
	if err != nil {
		writeFetchError(w, err)
		return
	}

	provincial := fiscal.Summarize(municipalities, aggregate.Metrics)
	comparison := fiscal.Compare(*muni, aggregate.Metrics[muni.ID], provincial)

	resp := &GetComparisonResponse{
		Success: true,
		Data:    comparison,
		Message: "Successfully compared municipality against provincial totals",
	}

	if err := writeJSON(w, http.StatusOK, resp); err != nil {
		writeJSONError(w, http.StatusInternalServerError, "failed to write response")
	}
}

// findMunicipality resolves an id or georef against the registry. A nil
// result with nil error means not found.
func (app *application) findMunicipality(ctx context.Context, id string) (*fiscal.Municipality, error) {
	municipalities, err := app.source.Municipalities(ctx)
	if err != nil {
		return nil, err
	}

	georef := fiscal.NormalizeGeoref(id)
	for i := range municipalities {
		if municipalities[i].ID == id || municipalities[i].Georef == georef {
			return &municipalities[i], nil
		}
	}
	return nil, nil
}
