package main

import (
	"net/http"
	"strconv"

	"github.com/farxc/atlas-fiscal/internal/fiscal"
	"github.com/farxc/atlas-fiscal/internal/session"
)

// selectionFromRequest builds the request's view state from query
// parameters. Unknown metric or mode names fall back to the defaults rather
// than erroring; the map always renders something.
func selectionFromRequest(r *http.Request) *session.Selection {
	sel := session.NewSelection()
	q := r.URL.Query()

	sel.Metric = fiscal.ParseMetric(q.Get("metric"))
	sel.Mode = fiscal.ParseMode(q.Get("mode"))
	sel.Jurisdiction = q.Get("jurisdiction")
	sel.Program = q.Get("program")
	if doc := q.Get("document_id"); doc != "" {
		sel.SelectDocument(doc)
	}
	return sel
}

func parseIntOrDefault(raw string, fallback int) int {
	if raw == "" {
		return fallback
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return fallback
	}
	return n
}

func parseBoolParam(raw string) bool {
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return false
	}
	return v
}
