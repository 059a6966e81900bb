package source

import (
	"context"
	"errors"
	"time"

	"github.com/farxc/atlas-fiscal/internal/fiscal"
	"github.com/farxc/atlas-fiscal/internal/logger"
	"github.com/farxc/atlas-fiscal/internal/store"
)

// ErrUnavailable is returned by every fetch when the backing store is not
// configured or not reachable. Callers get an empty (never nil) result
// alongside it and are expected to keep rendering with no data.
var ErrUnavailable = errors.New("data source unavailable")

// Row-count limits per logical query, mirroring the upstream export caps.
const (
	registryLimit    = 200
	documentLimit    = 50_000
	lineItemLimit    = 100_000
	perDocumentLimit = 50_000
)

// Cache TTLs per logical query: the registry barely changes, the aggregate
// inputs refresh a few times an hour, per-document detail is near-live.
const (
	registryTTL = time.Hour
	tableTTL    = 5 * time.Minute
	detailTTL   = time.Minute
)

// Source is the fetch boundary between the dashboard and the backing
// document database. Every method returns an empty slice plus an error
// description on failure; it never panics and never returns nil data.
type Source struct {
	storage *store.Storage
	logger  *logger.Logger

	municipalities *TTLCache[[]fiscal.Municipality]
	documents      *TTLCache[[]fiscal.Document]
	revenues       *TTLCache[[]fiscal.RevenueItem]
	expenditures   *TTLCache[[]fiscal.ExpenditureItem]
	docRevenues    *TTLCache[[]fiscal.RevenueItem]
	docSpending    *TTLCache[[]fiscal.ExpenditureItem]
	balanceSheets  *TTLCache[[]fiscal.BalanceSheetEntry]
	treasury       *TTLCache[[]fiscal.TreasuryMovement]
	jurisdictions  *TTLCache[[]fiscal.Jurisdiction]
	programs       *TTLCache[[]fiscal.Program]
	goals          *TTLCache[[]fiscal.Goal]
}

// New builds a Source over the given storage. A nil storage produces a
// degraded source where every fetch reports ErrUnavailable; this is the
// documented behavior when the connection secrets are absent.
func New(storage *store.Storage, appLogger *logger.Logger) *Source {
	return &Source{
		storage: storage,
		logger:  appLogger,

		municipalities: NewTTLCache[[]fiscal.Municipality](registryTTL),
		documents:      NewTTLCache[[]fiscal.Document](tableTTL),
		revenues:       NewTTLCache[[]fiscal.RevenueItem](tableTTL),
		expenditures:   NewTTLCache[[]fiscal.ExpenditureItem](tableTTL),
		docRevenues:    NewTTLCache[[]fiscal.RevenueItem](detailTTL),
		docSpending:    NewTTLCache[[]fiscal.ExpenditureItem](detailTTL),
		balanceSheets:  NewTTLCache[[]fiscal.BalanceSheetEntry](detailTTL),
		treasury:       NewTTLCache[[]fiscal.TreasuryMovement](detailTTL),
		jurisdictions:  NewTTLCache[[]fiscal.Jurisdiction](tableTTL),
		programs:       NewTTLCache[[]fiscal.Program](tableTTL),
		goals:          NewTTLCache[[]fiscal.Goal](tableTTL),
	}
}

// Available reports whether the backing store is configured.
func (s *Source) Available() bool {
	return s.storage != nil
}

// Municipalities returns the base registry with georefs normalized and
// per-municipality document counts attached.
func (s *Source) Municipalities(ctx context.Context) ([]fiscal.Municipality, error) {
	const component = "Source"
	if !s.Available() {
		return []fiscal.Municipality{}, ErrUnavailable
	}
	if cached, ok := s.municipalities.Get("registry"); ok {
		return cached, nil
	}

	rows, err := s.storage.Municipalities.List(ctx, registryLimit)
	if err != nil {
		s.logger.Error(component, "Registry fetch failed: %v", err)
		return []fiscal.Municipality{}, err
	}

	counts := make(map[string]int)
	countRows, err := s.storage.Documents.CountByMunicipality(ctx)
	if err != nil {
		// Counts are an enrichment; the registry is still usable without them
		s.logger.Warn(component, "Document count fetch failed: %v", err)
	} else {
		for _, c := range countRows {
			counts[c.MunicipalityID] = c.Documents
		}
	}

	result := make([]fiscal.Municipality, 0, len(rows))
	for _, r := range rows {
		result = append(result, fiscal.Municipality{
			ID:              r.ID,
			Georef:          fiscal.NormalizeGeoref(r.Georef),
			Name:            r.Name,
			Population:      r.Population,
			AreaKm2:         r.AreaKm2,
			Workforce:       r.Workforce,
			DocumentsLoaded: counts[r.ID],
		})
	}

	s.municipalities.Set("registry", result)
	return result, nil
}

// Documents returns every document with its municipality and period, the
// join table of the aggregation pipeline.
func (s *Source) Documents(ctx context.Context) ([]fiscal.Document, error) {
	const component = "Source"
	if !s.Available() {
		return []fiscal.Document{}, ErrUnavailable
	}
	if cached, ok := s.documents.Get("all"); ok {
		return cached, nil
	}

	rows, err := s.storage.Documents.ListAll(ctx, documentLimit)
	if err != nil {
		s.logger.Error(component, "Document fetch failed: %v", err)
		return []fiscal.Document{}, err
	}

	result := make([]fiscal.Document, 0, len(rows))
	for _, r := range rows {
		result = append(result, convertDocument(r))
	}
	s.documents.Set("all", result)
	return result, nil
}

// Document returns a single document by id, uncached.
func (s *Source) Document(ctx context.Context, id string) (*fiscal.Document, error) {
	if !s.Available() {
		return nil, ErrUnavailable
	}
	row, err := s.storage.Documents.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	doc := convertDocument(*row)
	return &doc, nil
}

// MunicipalityDocuments lists one municipality's uploads, newest first.
func (s *Source) MunicipalityDocuments(ctx context.Context, municipalityID string) ([]fiscal.Document, error) {
	const component = "Source"
	if !s.Available() {
		return []fiscal.Document{}, ErrUnavailable
	}
	if cached, ok := s.documents.Get("municipality:" + municipalityID); ok {
		return cached, nil
	}

	rows, err := s.storage.Documents.ListByMunicipality(ctx, municipalityID, 100)
	if err != nil {
		s.logger.Error(component, "Municipality document fetch failed: municipality=%s error=%v", municipalityID, err)
		return []fiscal.Document{}, err
	}

	result := make([]fiscal.Document, 0, len(rows))
	for _, r := range rows {
		result = append(result, convertDocument(r))
	}
	s.documents.Set("municipality:"+municipalityID, result)
	return result, nil
}

// RevenueItems returns every revenue line item, amounts parsed with the
// coerce-to-zero policy.
func (s *Source) RevenueItems(ctx context.Context) ([]fiscal.RevenueItem, error) {
	const component = "Source"
	if !s.Available() {
		return []fiscal.RevenueItem{}, ErrUnavailable
	}
	if cached, ok := s.revenues.Get("all"); ok {
		return cached, nil
	}

	rows, err := s.storage.Revenue.ListAll(ctx, lineItemLimit)
	if err != nil {
		s.logger.Error(component, "Revenue fetch failed: %v", err)
		return []fiscal.RevenueItem{}, err
	}

	result := convertRevenue(rows)
	s.revenues.Set("all", result)
	return result, nil
}

// ExpenditureItems returns every expenditure line item.
func (s *Source) ExpenditureItems(ctx context.Context) ([]fiscal.ExpenditureItem, error) {
	const component = "Source"
	if !s.Available() {
		return []fiscal.ExpenditureItem{}, ErrUnavailable
	}
	if cached, ok := s.expenditures.Get("all"); ok {
		return cached, nil
	}

	rows, err := s.storage.Expenditure.ListAll(ctx, lineItemLimit)
	if err != nil {
		s.logger.Error(component, "Expenditure fetch failed: %v", err)
		return []fiscal.ExpenditureItem{}, err
	}

	result := convertExpenditure(rows)
	s.expenditures.Set("all", result)
	return result, nil
}

// DocumentRevenue returns one document's revenue line items.
func (s *Source) DocumentRevenue(ctx context.Context, documentID string) ([]fiscal.RevenueItem, error) {
	const component = "Source"
	if !s.Available() {
		return []fiscal.RevenueItem{}, ErrUnavailable
	}
	if cached, ok := s.docRevenues.Get(documentID); ok {
		return cached, nil
	}

	rows, err := s.storage.Revenue.ListByDocument(ctx, documentID, perDocumentLimit)
	if err != nil {
		s.logger.Error(component, "Document revenue fetch failed: document=%s error=%v", documentID, err)
		return []fiscal.RevenueItem{}, err
	}

	result := convertRevenue(rows)
	s.docRevenues.Set(documentID, result)
	return result, nil
}

// DocumentExpenditure returns one document's expenditure line items.
func (s *Source) DocumentExpenditure(ctx context.Context, documentID string) ([]fiscal.ExpenditureItem, error) {
	const component = "Source"
	if !s.Available() {
		return []fiscal.ExpenditureItem{}, ErrUnavailable
	}
	if cached, ok := s.docSpending.Get(documentID); ok {
		return cached, nil
	}

	rows, err := s.storage.Expenditure.ListByDocument(ctx, documentID, perDocumentLimit)
	if err != nil {
		s.logger.Error(component, "Document expenditure fetch failed: document=%s error=%v", documentID, err)
		return []fiscal.ExpenditureItem{}, err
	}

	result := convertExpenditure(rows)
	s.docSpending.Set(documentID, result)
	return result, nil
}

// BalanceSheet returns one document's asset/liability entries.
func (s *Source) BalanceSheet(ctx context.Context, documentID string) ([]fiscal.BalanceSheetEntry, error) {
	const component = "Source"
	if !s.Available() {
		return []fiscal.BalanceSheetEntry{}, ErrUnavailable
	}
	if cached, ok := s.balanceSheets.Get(documentID); ok {
		return cached, nil
	}

	rows, err := s.storage.Patrimony.BalanceSheet(ctx, documentID, perDocumentLimit)
	if err != nil {
		s.logger.Error(component, "Balance sheet fetch failed: document=%s error=%v", documentID, err)
		return []fiscal.BalanceSheetEntry{}, err
	}

	result := make([]fiscal.BalanceSheetEntry, 0, len(rows))
	for _, r := range rows {
		result = append(result, fiscal.BalanceSheetEntry{
			DocumentID: r.DocumentID,
			Kind:       r.Kind,
			Name:       r.Name,
			Balance:    r.Balance,
		})
	}
	s.balanceSheets.Set(documentID, result)
	return result, nil
}

// TreasuryMovements returns one document's treasury movements.
func (s *Source) TreasuryMovements(ctx context.Context, documentID string) ([]fiscal.TreasuryMovement, error) {
	const component = "Source"
	if !s.Available() {
		return []fiscal.TreasuryMovement{}, ErrUnavailable
	}
	if cached, ok := s.treasury.Get(documentID); ok {
		return cached, nil
	}

	rows, err := s.storage.Patrimony.TreasuryMovements(ctx, documentID, perDocumentLimit)
	if err != nil {
		s.logger.Error(component, "Treasury fetch failed: document=%s error=%v", documentID, err)
		return []fiscal.TreasuryMovement{}, err
	}

	result := make([]fiscal.TreasuryMovement, 0, len(rows))
	for _, r := range rows {
		result = append(result, fiscal.TreasuryMovement{
			DocumentID: r.DocumentID,
			Kind:       r.Kind,
			Amount:     r.Amount,
		})
	}
	s.treasury.Set(documentID, result)
	return result, nil
}

// Jurisdictions returns every jurisdiction row.
func (s *Source) Jurisdictions(ctx context.Context) ([]fiscal.Jurisdiction, error) {
	const component = "Source"
	if !s.Available() {
		return []fiscal.Jurisdiction{}, ErrUnavailable
	}
	if cached, ok := s.jurisdictions.Get("all"); ok {
		return cached, nil
	}

	rows, err := s.storage.Programs.ListJurisdictions(ctx, documentLimit)
	if err != nil {
		s.logger.Error(component, "Jurisdiction fetch failed: %v", err)
		return []fiscal.Jurisdiction{}, err
	}

	result := make([]fiscal.Jurisdiction, 0, len(rows))
	for _, r := range rows {
		result = append(result, fiscal.Jurisdiction{
			ID:         r.ID,
			DocumentID: r.DocumentID,
			Code:       r.Code,
			Name:       r.Name,
		})
	}
	s.jurisdictions.Set("all", result)
	return result, nil
}

// Programs returns every program row.
func (s *Source) Programs(ctx context.Context) ([]fiscal.Program, error) {
	const component = "Source"
	if !s.Available() {
		return []fiscal.Program{}, ErrUnavailable
	}
	if cached, ok := s.programs.Get("all"); ok {
		return cached, nil
	}

	rows, err := s.storage.Programs.ListPrograms(ctx, lineItemLimit)
	if err != nil {
		s.logger.Error(component, "Program fetch failed: %v", err)
		return []fiscal.Program{}, err
	}

	result := convertPrograms(rows)
	s.programs.Set("all", result)
	return result, nil
}

// ProgramsForDocument returns the programs under one document's
// jurisdictions.
func (s *Source) ProgramsForDocument(ctx context.Context, documentID string) ([]fiscal.Program, error) {
	const component = "Source"
	if !s.Available() {
		return []fiscal.Program{}, ErrUnavailable
	}
	if cached, ok := s.programs.Get("document:" + documentID); ok {
		return cached, nil
	}

	jurisdictions, err := s.Jurisdictions(ctx)
	if err != nil {
		return []fiscal.Program{}, err
	}
	ids := make([]string, 0)
	for _, j := range jurisdictions {
		if j.DocumentID == documentID {
			ids = append(ids, j.ID)
		}
	}
	if len(ids) == 0 {
		return []fiscal.Program{}, nil
	}

	rows, err := s.storage.Programs.ListProgramsByJurisdictions(ctx, ids, lineItemLimit)
	if err != nil {
		s.logger.Error(component, "Program fetch failed: document=%s error=%v", documentID, err)
		return []fiscal.Program{}, err
	}

	result := convertPrograms(rows)
	s.programs.Set("document:"+documentID, result)
	return result, nil
}

// Goals returns every goal row.
func (s *Source) Goals(ctx context.Context) ([]fiscal.Goal, error) {
	const component = "Source"
	if !s.Available() {
		return []fiscal.Goal{}, ErrUnavailable
	}
	if cached, ok := s.goals.Get("all"); ok {
		return cached, nil
	}

	rows, err := s.storage.Programs.ListGoals(ctx, lineItemLimit)
	if err != nil {
		s.logger.Error(component, "Goal fetch failed: %v", err)
		return []fiscal.Goal{}, err
	}

	result := make([]fiscal.Goal, 0, len(rows))
	for _, r := range rows {
		result = append(result, fiscal.Goal{
			ID:        r.ID,
			ProgramID: r.ProgramID,
			Name:      r.Name,
			Unit:      r.Unit,
			Annual:    r.Annual,
			Partial:   r.Partial,
			Executed:  r.Executed,
		})
	}
	s.goals.Set("all", result)
	return result, nil
}

func convertDocument(r store.Document) fiscal.Document {
	return fiscal.Document{
		ID:             r.ID,
		MunicipalityID: r.MunicipalityID,
		Name:           r.Name,
		Type:           r.Type,
		Period:         r.Period,
		Year:           r.Year,
		UploadedAt:     r.UploadedAt,
	}
}

func convertRevenue(rows []store.RevenueItem) []fiscal.RevenueItem {
	result := make([]fiscal.RevenueItem, 0, len(rows))
	for _, r := range rows {
		result = append(result, fiscal.RevenueItem{
			DocumentID: r.DocumentID,
			Category:   r.Category,
			Budgeted:   fiscal.ParseAmount(r.Budgeted),
			Accrued:    fiscal.ParseAmount(r.Accrued),
			Collected:  fiscal.ParseAmount(r.Collected),
		})
	}
	return result
}

func convertExpenditure(rows []store.ExpenditureItem) []fiscal.ExpenditureItem {
	result := make([]fiscal.ExpenditureItem, 0, len(rows))
	for _, r := range rows {
		result = append(result, fiscal.ExpenditureItem{
			DocumentID: r.DocumentID,
			Object:     r.Object,
			Category:   r.Category,
			Budgeted:   fiscal.ParseAmount(r.Budgeted),
			Reserved:   fiscal.ParseAmount(r.Reserved),
			Committed:  fiscal.ParseAmount(r.Committed),
			Accrued:    fiscal.ParseAmount(r.Accrued),
			Paid:       fiscal.ParseAmount(r.Paid),
		})
	}
	return result
}

func convertPrograms(rows []store.Program) []fiscal.Program {
	result := make([]fiscal.Program, 0, len(rows))
	for _, r := range rows {
		result = append(result, fiscal.Program{
			ID:             r.ID,
			JurisdictionID: r.JurisdictionID,
			Code:           r.Code,
			Name:           r.Name,
			Budgeted:       r.Budgeted,
			Accrued:        r.Accrued,
			Paid:           r.Paid,
		})
	}
	return result
}
