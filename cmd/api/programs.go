package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/farxc/atlas-fiscal/internal/fiscal"
	"github.com/farxc/atlas-fiscal/internal/response"
)

type GetProgramsResponse = response.APIResponse[fiscal.ProgramExplorer]

func (app *application) handleGetPrograms(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	sel := selectionFromRequest(r)

	jurisdictions, err := app.source.Jurisdictions(ctx)
	if err != nil {
		writeFetchError(w, err)
		return
	}
	programs, err := app.source.Programs(ctx)
	if err != nil {
		writeFetchError(w, err)
		return
	}
	goals, err := app.source.Goals(ctx)
	if err != nil {
		writeFetchError(w, err)
		return
	}

	explorer := fiscal.ExplorePrograms(jurisdictions, programs, goals, fiscal.ExploreOptions{
		Jurisdiction: sel.Jurisdiction,
		Program:      sel.Program,
	})

	resp := &GetProgramsResponse{
		Success: true,
		Data:    explorer,
		Message: "Successfully explored programs",
	}

	if err := writeJSON(w, http.StatusOK, resp); err != nil {
		writeJSONError(w, http.StatusInternalServerError, "failed to write response")
	}
}

func (app *application) handleGetDocumentPrograms(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := chi.URLParam(r, "id")
	sel := selectionFromRequest(r)

	jurisdictions, err := app.source.Jurisdictions(ctx)
	if err != nil {
		writeFetchError(w, err)
		return
	}
	programs, err := app.source.ProgramsForDocument(ctx, id)
	if err != nil {
		writeFetchError(w, err)
		return
	}
	goals, err := app.source.Goals(ctx)
	if err != nil {
		writeFetchError(w, err)
		return
	}

	// Narrow jurisdictions to the requested document so the explorer's
	// jurisdiction rows match the program set.
	docJurisdictions := make([]fiscal.Jurisdiction, 0, len(jurisdictions))
	for _, j := range jurisdictions {
		if j.DocumentID == id {
			docJurisdictions = append(docJurisdictions, j)
		}
	}

	explorer := fiscal.ExplorePrograms(docJurisdictions, programs, goals, fiscal.ExploreOptions{
		Jurisdiction: sel.Jurisdiction,
		Program:      sel.Program,
	})

	resp := &GetProgramsResponse{
		Success: true,
		Data:    explorer,
		Message: "Successfully explored document programs",
	}

	if err := writeJSON(w, http.StatusOK, resp); err != nil {
		writeJSONError(w, http.StatusInternalServerError, "failed to write response")
	}
}
