package main

import (
	"context"
	"net/http"

	"github.com/farxc/atlas-fiscal/internal/fiscal"
	"github.com/farxc/atlas-fiscal/internal/response"
)

type GetMetricsResponse = response.APIResponse[MetricsMap]
type GetProvincialResponse = response.APIResponse[fiscal.ProvincialSummary]
type GetTopResponse = response.APIResponse[[]fiscal.RankedMunicipality]
type GetDistributionResponse = response.APIResponse[fiscal.DistributionSummary]

// MetricsMap is one metric resolved for every municipality, the payload
// behind the choropleth. Municipalities with no aggregate row are listed
// with a nil value so the map can paint them as "no data" instead of zero.
type MetricsMap struct {
	Metric fiscal.Metric     `json:"metric"`
	Mode   fiscal.Mode       `json:"mode"`
	Spec   fiscal.MetricSpec `json:"spec"`

	Values []MetricPoint `json:"values"`

	Unclassified fiscal.UnclassifiedTotal `json:"unclassified"`
}

type MetricPoint struct {
	MunicipalityID string   `json:"municipality_id"`
	Georef         string   `json:"georef"`
	Name           string   `json:"name"`
	Value          *float64 `json:"value"`
	Formatted      string   `json:"formatted"`
}

// aggregate fetches the three input tables and runs the aggregation
// pipeline. Inputs are TTL-cached at the source, so recomputing per request
// stays cheap.
func (app *application) aggregate(ctx context.Context) (fiscal.AggregateResult, error) {
	documents, err := app.source.Documents(ctx)
	if err != nil {
		return fiscal.AggregateResult{}, err
	}
	revenues, err := app.source.RevenueItems(ctx)
	if err != nil {
		return fiscal.AggregateResult{}, err
	}
	expenditures, err := app.source.ExpenditureItems(ctx)
	if err != nil {
		return fiscal.AggregateResult{}, err
	}
	return fiscal.Aggregate(documents, revenues, expenditures), nil
}

func (app *application) handleGetMetrics(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	sel := selectionFromRequest(r)

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

	spec := sel.Metric.Spec()
	registryMetric := sel.Metric == fiscal.MetricPopulation || sel.Metric == fiscal.MetricWorkforce

	data := MetricsMap{
		Metric:       sel.Metric,
		Mode:         sel.Mode,
		Spec:         spec,
		Values:       make([]MetricPoint, 0, len(municipalities)),
		Unclassified: aggregate.Unclassified,
	}

	for _, muni := range municipalities {
		point := MetricPoint{
			MunicipalityID: muni.ID,
			Georef:         muni.Georef,
			Name:           muni.Name,
			Formatted:      fiscal.NoData,
		}

		row := aggregate.Metrics[muni.ID]
		if row != nil || registryMetric {
			value := fiscal.MetricValue(sel.Metric, sel.Mode, row, muni)
			point.Value = &value
			point.Formatted = formatMetric(spec, value)
		}

		data.Values = append(data.Values, point)
	}

	resp := &GetMetricsResponse{
		Success: true,
		Data:    data,
		Message: "Successfully resolved metric for every municipality",
	}

	if err := writeJSON(w, http.StatusOK, resp); err != nil {
		writeJSONError(w, http.StatusInternalServerError, "failed to write response")
	}
}

func (app *application) handleGetProvincialSummary(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

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

	resp := &GetProvincialResponse{
		Success: true,
		Data:    fiscal.Summarize(municipalities, aggregate.Metrics),
		Message: "Successfully computed provincial summary",
	}

	if err := writeJSON(w, http.StatusOK, resp); err != nil {
		writeJSONError(w, http.StatusInternalServerError, "failed to write response")
	}
}

func (app *application) handleGetTopMunicipalities(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	sel := selectionFromRequest(r)
	n := parseIntOrDefault(r.URL.Query().Get("n"), 10)

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

	resp := &GetTopResponse{
		Success: true,
		Data:    fiscal.TopByMetric(municipalities, aggregate.Metrics, sel.Metric, sel.Mode, n),
		Message: "Successfully ranked municipalities",
	}

	if err := writeJSON(w, http.StatusOK, resp); err != nil {
		writeJSONError(w, http.StatusInternalServerError, "failed to write response")
	}
}

func (app *application) handleGetDistribution(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	sel := selectionFromRequest(r)

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

	resp := &GetDistributionResponse{
		Success: true,
		Data:    fiscal.Distribution(municipalities, aggregate.Metrics, sel.Metric, sel.Mode),
		Message: "Successfully computed metric distribution",
	}

	if err := writeJSON(w, http.StatusOK, resp); err != nil {
		writeJSONError(w, http.StatusInternalServerError, "failed to write response")
	}
}

func formatMetric(spec fiscal.MetricSpec, value float64) string {
	switch spec.Format {
	case "money":
		return fiscal.FormatMoney(value)
	case "percent":
		return fiscal.FormatPercent(value, true)
	default:
		return fiscal.FormatNumber(value)
	}
}
