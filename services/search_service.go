package services

import (
	"context"
	"fmt"
	"log"
	"sort"
	"strings"
	"time"
	"unicode/utf8"

	"legal_archive_go/models"

	"github.com/microcosm-cc/bluemonday"
	"gorm.io/gorm"
)

// Category names, used as JSON keys and for routing
const (
	CategoryFiles         = "files"
	CategoryClients       = "clients"
	CategoryCases         = "cases"
	CategoryPayments      = "payments"
	CategoryAccessHistory = "access_history"
	CategoryComments      = "comments"
)

// SearchResult represents one ranked match in any category. Entity-specific
// fields are omitted from JSON when empty so every category serializes
// cleanly from the same struct.
type SearchResult struct {
	Type           string   `json:"type"`
	ID             string   `json:"id"`
	RelevanceScore float64  `json:"relevance_score"`
	MatchDetails   []string `json:"match_details"`

	// Common display fields
	ReferenceNumber string `json:"reference_number,omitempty"`
	ClientName      string `json:"client_name,omitempty"`
	CaseType        string `json:"case_type,omitempty"`
	Status          string `json:"status,omitempty"`
	Snippet         string `json:"snippet,omitempty"`

	// Client-specific
	Email      string `json:"email,omitempty"`
	Phone      string `json:"phone,omitempty"`
	ClientType string `json:"client_type,omitempty"`

	// Case-specific
	AssignedLawyer string  `json:"assigned_lawyer,omitempty"`
	Priority       string  `json:"priority,omitempty"`
	EstimatedValue float64 `json:"estimated_value,omitempty"`

	// File-specific
	FileType             string `json:"file_type,omitempty"`
	DocumentCategory     string `json:"document_category,omitempty"`
	WarehouseLocation    string `json:"warehouse_location,omitempty"`
	ShelfNumber          string `json:"shelf_number,omitempty"`
	BoxNumber            string `json:"box_number,omitempty"`
	ConfidentialityLevel string `json:"confidentiality_level,omitempty"`
	StorageStatus        string `json:"storage_status,omitempty"`
	Keywords             string `json:"keywords,omitempty"`

	// Payment-specific
	Amount        float64 `json:"amount,omitempty"`
	PaymentMethod string  `json:"payment_method,omitempty"`
	InvoiceNumber string  `json:"invoice_number,omitempty"`

	// Access/comment-specific
	UserName   string `json:"user_name,omitempty"`
	UserRole   string `json:"user_role,omitempty"`
	AccessType string `json:"access_type,omitempty"`
	EntityType string `json:"entity_type,omitempty"`
	EntityID   string `json:"entity_id,omitempty"`
	EntityInfo string `json:"entity_info,omitempty"`

	Timestamp *time.Time `json:"timestamp,omitempty"`

	// sortKey is the natural key used for deterministic tie-breaking
	sortKey string
}

// CategoryCounts holds pre-truncation match counts per category
type CategoryCounts struct {
	Files         int `json:"files"`
	Clients       int `json:"clients"`
	Cases         int `json:"cases"`
	Payments      int `json:"payments"`
	AccessHistory int `json:"access_history"`
	Comments      int `json:"comments"`
}

// UnifiedResult is the full response of a unified search
type UnifiedResult struct {
	Files         []SearchResult `json:"files"`
	Clients       []SearchResult `json:"clients"`
	Cases         []SearchResult `json:"cases"`
	Payments      []SearchResult `json:"payments"`
	AccessHistory []SearchResult `json:"access_history"`
	Comments      []SearchResult `json:"comments"`

	TotalResults   int            `json:"total_results"`
	CategoryCounts CategoryCounts `json:"category_counts"`
	Query          string         `json:"query"`

	FilesTruncated         bool `json:"files_truncated"`
	ClientsTruncated       bool `json:"clients_truncated"`
	CasesTruncated         bool `json:"cases_truncated"`
	PaymentsTruncated      bool `json:"payments_truncated"`
	AccessHistoryTruncated bool `json:"access_history_truncated"`
	CommentsTruncated      bool `json:"comments_truncated"`
}

// FilterOptions lists the distinct values available for each dropdown
type FilterOptions struct {
	CaseTypes             []string `json:"case_types"`
	FileTypes             []string `json:"file_types"`
	ConfidentialityLevels []string `json:"confidentiality_levels"`
	StorageStatuses       []string `json:"storage_statuses"`
	WarehouseLocations    []string `json:"warehouse_locations"`
}

// SearchService runs unified searches across all six record categories
type SearchService struct {
	db        *gorm.DB
	sanitizer *bluemonday.Policy
}

// NewSearchService creates a new search service instance
func NewSearchService(db *gorm.DB) *SearchService {
	return &SearchService{
		db:        db,
		sanitizer: bluemonday.StrictPolicy(),
	}
}

// recordSet is one consistent snapshot of every searchable collection,
// with lookup maps for cross-entity display fields
type recordSet struct {
	clients  []models.Client
	cases    []models.Case
	files    []models.PhysicalFile
	payments []models.Payment
	accesses []models.AccessEvent
	comments []models.Comment

	clientByID map[string]*models.Client
	caseByID   map[string]*models.Case
	fileByID   map[string]*models.PhysicalFile
}

func (s *SearchService) fetchRecords(ctx context.Context) (*recordSet, error) {
	rs := &recordSet{}
	fetches := []struct {
		name string
		dest interface{}
	}{
		{"clients", &rs.clients},
		{"cases", &rs.cases},
		{"files", &rs.files},
		{"payments", &rs.payments},
		{"access events", &rs.accesses},
		{"comments", &rs.comments},
	}
	for _, f := range fetches {
		if err := s.db.WithContext(ctx).Find(f.dest).Error; err != nil {
			return nil, fmt.Errorf("fetching %s: %w", f.name, err)
		}
	}

	rs.clientByID = make(map[string]*models.Client, len(rs.clients))
	for i := range rs.clients {
		rs.clientByID[rs.clients[i].ID] = &rs.clients[i]
	}
	rs.caseByID = make(map[string]*models.Case, len(rs.cases))
	for i := range rs.cases {
		rs.caseByID[rs.cases[i].ID] = &rs.cases[i]
	}
	rs.fileByID = make(map[string]*models.PhysicalFile, len(rs.files))
	for i := range rs.files {
		rs.fileByID[rs.files[i].ID] = &rs.files[i]
	}
	return rs, nil
}

func (rs *recordSet) clientName(clientID string) string {
	if c, ok := rs.clientByID[clientID]; ok {
		return c.FullName()
	}
	return ""
}

func (rs *recordSet) caseType(caseID string) string {
	if c, ok := rs.caseByID[caseID]; ok {
		return c.CaseType
	}
	return ""
}

// UnifiedSearch runs the query against all six categories, ranks each
// category by (score desc, natural key asc) and truncates it to
// perCategoryLimit (0 or negative means unbounded). An empty query with no
// active filters returns an empty result rather than browsing everything.
// A storage fetch failure is returned as an error; it is a different fact
// from "zero matches".
func (s *SearchService) UnifiedSearch(ctx context.Context, query string, filters SearchFilters, perCategoryLimit int, includePrivate bool) (*UnifiedResult, error) {
	result := &UnifiedResult{
		Files:         []SearchResult{},
		Clients:       []SearchResult{},
		Cases:         []SearchResult{},
		Payments:      []SearchResult{},
		AccessHistory: []SearchResult{},
		Comments:      []SearchResult{},
		Query:         query,
	}

	tokens := NormalizeQuery(query)
	if len(tokens) == 0 && !filters.Active() {
		return result, nil
	}

	rs, err := s.fetchRecords(ctx)
	if err != nil {
		return nil, fmt.Errorf("unified search: %w", err)
	}

	now := time.Now()

	for i := range rs.clients {
		c := &rs.clients[i]
		if c.ID == "" {
			log.Printf("[SEARCH] Skipping malformed client row (empty ID)")
			continue
		}
		if m := matchClient(c, tokens, filters); m != nil {
			result.Clients = append(result.Clients, s.clientResult(c, m))
		}
	}

	for i := range rs.cases {
		cs := &rs.cases[i]
		if cs.ID == "" {
			log.Printf("[SEARCH] Skipping malformed case row (empty ID)")
			continue
		}
		clientName := rs.clientName(cs.ClientID)
		if m := matchCase(cs, clientName, tokens, filters); m != nil {
			result.Cases = append(result.Cases, s.caseResult(cs, clientName, m))
		}
	}

	for i := range rs.files {
		file := &rs.files[i]
		if file.ID == "" {
			log.Printf("[SEARCH] Skipping malformed file row (empty ID)")
			continue
		}
		clientName := rs.clientName(file.ClientID)
		caseType := rs.caseType(file.CaseID)
		if m := matchFile(file, clientName, caseType, tokens, filters); m != nil {
			result.Files = append(result.Files, s.fileResult(file, clientName, caseType, m))
		}
	}

	for i := range rs.payments {
		p := &rs.payments[i]
		if p.ID == "" {
			log.Printf("[SEARCH] Skipping malformed payment row (empty ID)")
			continue
		}
		clientName := rs.clientName(p.ClientID)
		caseType := rs.caseType(p.CaseID)
		if m := matchPayment(p, clientName, caseType, tokens, filters); m != nil {
			result.Payments = append(result.Payments, s.paymentResult(p, clientName, caseType, m))
		}
	}

	for i := range rs.accesses {
		a := &rs.accesses[i]
		if a.ID == "" {
			log.Printf("[SEARCH] Skipping malformed access event row (empty ID)")
			continue
		}
		file := rs.fileByID[a.FileID]
		clientName := ""
		if file != nil {
			clientName = rs.clientName(file.ClientID)
		}
		if m := matchAccessEvent(a, file, clientName, tokens, filters, now); m != nil {
			result.AccessHistory = append(result.AccessHistory, s.accessResult(a, file, clientName, m))
		}
	}

	for i := range rs.comments {
		cm := &rs.comments[i]
		if cm.ID == "" {
			log.Printf("[SEARCH] Skipping malformed comment row (empty ID)")
			continue
		}
		if cm.IsPrivate && !includePrivate {
			continue
		}
		entityInfo := rs.commentEntityInfo(cm)
		if m := matchComment(cm, entityInfo, tokens, filters, now); m != nil {
			result.Comments = append(result.Comments, s.commentResult(cm, entityInfo, m))
		}
	}

	categories := []*[]SearchResult{
		&result.Files, &result.Clients, &result.Cases,
		&result.Payments, &result.AccessHistory, &result.Comments,
	}
	counts := []*int{
		&result.CategoryCounts.Files, &result.CategoryCounts.Clients,
		&result.CategoryCounts.Cases, &result.CategoryCounts.Payments,
		&result.CategoryCounts.AccessHistory, &result.CategoryCounts.Comments,
	}
	truncated := []*bool{
		&result.FilesTruncated, &result.ClientsTruncated, &result.CasesTruncated,
		&result.PaymentsTruncated, &result.AccessHistoryTruncated, &result.CommentsTruncated,
	}

	for i, cat := range categories {
		sortResults(*cat)
		*counts[i] = len(*cat)
		result.TotalResults += len(*cat)
		if perCategoryLimit > 0 && len(*cat) > perCategoryLimit {
			*cat = (*cat)[:perCategoryLimit]
			*truncated[i] = true
		}
	}

	return result, nil
}

// sortResults orders matches by score descending, natural key ascending
func sortResults(results []SearchResult) {
	sort.SliceStable(results, func(i, j int) bool {
		if results[i].RelevanceScore != results[j].RelevanceScore {
			return results[i].RelevanceScore > results[j].RelevanceScore
		}
		return results[i].sortKey < results[j].sortKey
	})
}

// FilterOptions returns the distinct values available for each filter
// dropdown
func (s *SearchService) FilterOptions(ctx context.Context) (*FilterOptions, error) {
	opts := &FilterOptions{}
	plucks := []struct {
		column string
		model  interface{}
		dest   *[]string
	}{
		{"case_type", &models.Case{}, &opts.CaseTypes},
		{"file_type", &models.PhysicalFile{}, &opts.FileTypes},
		{"confidentiality_level", &models.PhysicalFile{}, &opts.ConfidentialityLevels},
		{"storage_status", &models.PhysicalFile{}, &opts.StorageStatuses},
		{"warehouse_location", &models.PhysicalFile{}, &opts.WarehouseLocations},
	}
	for _, p := range plucks {
		err := s.db.WithContext(ctx).Model(p.model).Distinct(p.column).Order(p.column).Pluck(p.column, p.dest).Error
		if err != nil {
			return nil, fmt.Errorf("loading filter options for %s: %w", p.column, err)
		}
	}
	orderCaseTypes(opts.CaseTypes)
	orderConfidentiality(opts.ConfidentialityLevels)
	return opts, nil
}

// orderCaseTypes presents the enumerated practice areas in their canonical
// order; ad-hoc values found in the data sort after them alphabetically
func orderCaseTypes(types []string) {
	canonical := make(map[string]int, len(models.CaseTypes))
	for i, ct := range models.CaseTypes {
		canonical[ct] = i
	}
	sort.SliceStable(types, func(i, j int) bool {
		vi, vj := models.IsValidCaseType(types[i]), models.IsValidCaseType(types[j])
		if vi != vj {
			return vi
		}
		if vi {
			return canonical[types[i]] < canonical[types[j]]
		}
		return types[i] < types[j]
	})
}

// orderConfidentiality sorts levels from least to most sensitive; unknown
// values sort last alphabetically
func orderConfidentiality(levels []string) {
	sort.SliceStable(levels, func(i, j int) bool {
		ri, iKnown := models.ConfidentialityRank[levels[i]]
		rj, jKnown := models.ConfidentialityRank[levels[j]]
		if iKnown != jKnown {
			return iKnown
		}
		if iKnown {
			return ri < rj
		}
		return levels[i] < levels[j]
	})
}

func (rs *recordSet) commentEntityInfo(cm *models.Comment) string {
	switch cm.EntityType {
	case models.CommentEntityFile:
		if f, ok := rs.fileByID[cm.EntityID]; ok {
			return "File: " + f.ReferenceNumber
		}
	case models.CommentEntityClient:
		if c, ok := rs.clientByID[cm.EntityID]; ok {
			return "Client: " + c.FullName()
		}
	case models.CommentEntityCase:
		if c, ok := rs.caseByID[cm.EntityID]; ok {
			return "Case: " + c.ReferenceNumber
		}
	}
	return ""
}

// snippet sanitizes user-authored text and trims it for display. The cut
// backs up to a rune boundary so multibyte text never yields invalid UTF-8.
func (s *SearchService) snippet(text string, max int) string {
	text = s.sanitizer.Sanitize(text)
	if max <= 0 || len(text) <= max {
		return text
	}
	cut := max
	for cut > 0 && !utf8.RuneStart(text[cut]) {
		cut--
	}
	return strings.TrimSpace(text[:cut]) + "..."
}

func (s *SearchService) clientResult(c *models.Client, m *MatchResult) SearchResult {
	return SearchResult{
		Type:           "client",
		ID:             c.ID,
		RelevanceScore: m.Score,
		MatchDetails:   m.Details,
		ClientName:     c.FullName(),
		Email:          c.Email,
		Phone:          c.Phone,
		ClientType:     c.ClientType,
		Status:         c.Status,
		Timestamp:      &c.RegistrationDate,
		sortKey:        c.ID,
	}
}

func (s *SearchService) caseResult(cs *models.Case, clientName string, m *MatchResult) SearchResult {
	return SearchResult{
		Type:            "case",
		ID:              cs.ID,
		RelevanceScore:  m.Score,
		MatchDetails:    m.Details,
		ReferenceNumber: cs.ReferenceNumber,
		ClientName:      clientName,
		CaseType:        cs.CaseType,
		Status:          cs.Status,
		Priority:        cs.Priority,
		AssignedLawyer:  cs.AssignedLawyer,
		EstimatedValue:  cs.EstimatedValue,
		Snippet:         s.snippet(cs.Description, 150),
		sortKey:         cs.ReferenceNumber,
	}
}

func (s *SearchService) fileResult(f *models.PhysicalFile, clientName, caseType string, m *MatchResult) SearchResult {
	return SearchResult{
		Type:                 "file",
		ID:                   f.ID,
		RelevanceScore:       m.Score,
		MatchDetails:         m.Details,
		ReferenceNumber:      f.ReferenceNumber,
		ClientName:           clientName,
		CaseType:             caseType,
		FileType:             f.FileType,
		DocumentCategory:     f.DocumentCategory,
		WarehouseLocation:    f.WarehouseLocation,
		ShelfNumber:          f.ShelfNumber,
		BoxNumber:            f.BoxNumber,
		ConfidentialityLevel: f.ConfidentialityLevel,
		StorageStatus:        f.StorageStatus,
		Keywords:             f.Keywords,
		Snippet:              s.snippet(f.FileDescription, 150),
		Timestamp:            &f.LastAccessed,
		sortKey:              f.ReferenceNumber,
	}
}

func (s *SearchService) paymentResult(p *models.Payment, clientName, caseType string, m *MatchResult) SearchResult {
	return SearchResult{
		Type:           "payment",
		ID:             p.ID,
		RelevanceScore: m.Score,
		MatchDetails:   m.Details,
		ClientName:     clientName,
		CaseType:       caseType,
		Status:         p.Status,
		Amount:         p.Amount,
		PaymentMethod:  p.PaymentMethod,
		InvoiceNumber:  p.InvoiceNumber,
		Snippet:        s.snippet(p.Description, 150),
		Timestamp:      &p.PaymentDate,
		sortKey:        p.ID,
	}
}

func (s *SearchService) accessResult(a *models.AccessEvent, file *models.PhysicalFile, clientName string, m *MatchResult) SearchResult {
	r := SearchResult{
		Type:           "access_event",
		ID:             a.ID,
		RelevanceScore: m.Score,
		MatchDetails:   m.Details,
		ClientName:     clientName,
		UserName:       a.UserName,
		UserRole:       a.UserRole,
		AccessType:     a.AccessType,
		EntityID:       a.FileID,
		Timestamp:      &a.AccessTimestamp,
		sortKey:        a.ID,
	}
	if file != nil {
		r.ReferenceNumber = file.ReferenceNumber
	}
	return r
}

func (s *SearchService) commentResult(cm *models.Comment, entityInfo string, m *MatchResult) SearchResult {
	return SearchResult{
		Type:           "comment",
		ID:             cm.ID,
		RelevanceScore: m.Score,
		MatchDetails:   m.Details,
		UserName:       cm.UserName,
		UserRole:       cm.UserRole,
		EntityType:     cm.EntityType,
		EntityID:       cm.EntityID,
		EntityInfo:     entityInfo,
		Snippet:        s.snippet(cm.CommentText, 150),
		Timestamp:      &cm.CreatedAt,
		sortKey:        cm.ID,
	}
}
