package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/farxc/atlas-fiscal/internal/fiscal"
	"github.com/farxc/atlas-fiscal/internal/response"
)

type GetDocumentSummaryResponse = response.APIResponse[DocumentDetail]
type GetBalanceSheetResponse = response.APIResponse[BalanceSheetDetail]
type GetTreasuryResponse = response.APIResponse[TreasuryDetail]

// DocumentDetail is the per-document drill-down: the summary figures plus
// the underlying line items.
type DocumentDetail struct {
	Document     fiscal.Document          `json:"document"`
	Summary      fiscal.DocumentSummary   `json:"summary"`
	Revenues     []fiscal.RevenueItem     `json:"revenues"`
	Expenditures []fiscal.ExpenditureItem `json:"expenditures"`
}

type BalanceSheetDetail struct {
	Summary fiscal.BalanceSheetSummary `json:"summary"`
	Entries []fiscal.BalanceSheetEntry `json:"entries"`
}

type TreasuryDetail struct {
	Summary   fiscal.TreasurySummary    `json:"summary"`
	Movements []fiscal.TreasuryMovement `json:"movements"`
}

func (app *application) handleGetDocumentSummary(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := chi.URLParam(r, "id")
	projected := parseBoolParam(r.URL.Query().Get("projected"))

	doc, err := app.source.Document(ctx, id)
	if err != nil {
		writeFetchError(w, err)
		return
	}

	revenues, err := app.source.DocumentRevenue(ctx, id)
	if err != nil {
		writeFetchError(w, err)
		return
	}
	expenditures, err := app.source.DocumentExpenditure(ctx, id)
	if err != nil {
		writeFetchError(w, err)
		return
	}

	resp := &GetDocumentSummaryResponse{
		Success: true,
		Data: DocumentDetail{
			Document:     *doc,
			Summary:      fiscal.SummarizeDocument(*doc, revenues, expenditures, projected),
			Revenues:     revenues,
			Expenditures: expenditures,
		},
		Message: "Successfully summarized document",
	}

	if err := writeJSON(w, http.StatusOK, resp); err != nil {
		writeJSONError(w, http.StatusInternalServerError, "failed to write response")
	}
}

func (app *application) handleGetBalanceSheet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := chi.URLParam(r, "id")

	entries, err := app.source.BalanceSheet(ctx, id)
	if err != nil {
		writeFetchError(w, err)
		return
	}

	resp := &GetBalanceSheetResponse{
		Success: true,
		Data: BalanceSheetDetail{
			Summary: fiscal.SummarizeBalanceSheet(id, entries),
			Entries: entries,
		},
		Message: "Successfully summarized balance sheet",
	}

	if err := writeJSON(w, http.StatusOK, resp); err != nil {
		writeJSONError(w, http.StatusInternalServerError, "failed to write response")
	}
}

func (app *application) handleGetTreasury(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := chi.URLParam(r, "id")

	movements, err := app.source.TreasuryMovements(ctx, id)
	if err != nil {
		writeFetchError(w, err)
		return
	}

	resp := &GetTreasuryResponse{
		Success: true,
		Data: TreasuryDetail{
			Summary:   fiscal.SummarizeTreasury(id, movements),
			Movements: movements,
		},
		Message: "Successfully summarized treasury movements",
	}

	if err := writeJSON(w, http.StatusOK, resp); err != nil {
		writeJSONError(w, http.StatusInternalServerError, "failed to write response")
	}
}
