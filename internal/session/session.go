package session

import "github.com/farxc/atlas-fiscal/internal/fiscal"

// Selection holds one request's view state: which municipality and document
// the caller is looking at and how the map metric is normalized. It is built
// per request from query parameters and passed by pointer so every handler
// helper reads the same state.
type Selection struct {
	MunicipalityID     string `json:"municipality_id"`
	MunicipalityName   string `json:"municipality_name"`
	MunicipalityGeoref string `json:"municipality_georef"`

	Metric fiscal.Metric `json:"metric"`
	Mode   fiscal.Mode   `json:"mode"`

	DocumentID string `json:"document_id"`

	Jurisdiction string `json:"jurisdiction"`
	Program      string `json:"program"`
}

// NewSelection returns the default view: no municipality picked, collected
// revenue in absolute terms.
func NewSelection() *Selection {
	return &Selection{
		Metric: fiscal.MetricRevenueCollected,
		Mode:   fiscal.ModeAbsolute,
	}
}

// HasMunicipality reports whether a municipality is selected. An empty
// selection means province-wide views only.
func (s *Selection) HasMunicipality() bool {
	return s.MunicipalityID != ""
}

// SelectMunicipality switches the focused municipality. Changing
// municipality always clears the document selection; a document belongs to
// exactly one municipality.
func (s *Selection) SelectMunicipality(m fiscal.Municipality) {
	if s.MunicipalityID == m.ID {
		return
	}
	s.MunicipalityID = m.ID
	s.MunicipalityName = m.Name
	s.MunicipalityGeoref = m.Georef
	s.DocumentID = ""
	s.Jurisdiction = ""
	s.Program = ""
}

// SelectDocument switches the focused document and resets the program
// drill-down, which is scoped to one document.
func (s *Selection) SelectDocument(documentID string) {
	if s.DocumentID == documentID {
		return
	}
	s.DocumentID = documentID
	s.Jurisdiction = ""
	s.Program = ""
}

// Reset clears everything back to the default view.
func (s *Selection) Reset() {
	*s = *NewSelection()
}
