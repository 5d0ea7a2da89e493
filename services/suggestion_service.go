package services

import (
	"context"
	"fmt"
	"regexp"
	"sort"
	"strings"

	"legal_archive_go/models"

	"gorm.io/gorm"
)

// Suggestion types, used by callers to route a picked suggestion
const (
	SuggestionContextual         = "contextual"
	SuggestionClient             = "client"
	SuggestionCaseReference      = "case_reference"
	SuggestionCaseType           = "case_type"
	SuggestionFileReference      = "file_reference"
	SuggestionFileType           = "file_type"
	SuggestionDocumentCategory   = "document_category"
	SuggestionKeyword            = "keyword"
	SuggestionPaymentAmount      = "payment_amount"
	SuggestionPaymentMethod      = "payment_method"
	SuggestionRecentSearch       = "recent_search"
	SuggestionPopularSearch      = "popular_search"
	SuggestionNameCompletion     = "name_completion"
	SuggestionCaseTypeCompletion = "case_type_completion"
	SuggestionFileTypeCompletion = "file_type_completion"
	SuggestionTypoCorrection     = "typo_correction"
)

// Suggestion is one candidate the user can pick while typing
type Suggestion struct {
	Text string `json:"text"`
	Type string `json:"type"`

	// Optional metadata, populated per type
	Email    string  `json:"email,omitempty"`
	Status   string  `json:"status,omitempty"`
	CaseType string  `json:"case_type,omitempty"`
	FileType string  `json:"file_type,omitempty"`
	Client   string  `json:"client,omitempty"`
	ClientID string  `json:"client_id,omitempty"`
	Context  string  `json:"context,omitempty"`
	Keyword  string  `json:"keyword,omitempty"`
	Amount   float64 `json:"amount,omitempty"`
	Count    int     `json:"count,omitempty"`
	Original string  `json:"original,omitempty"` // misspelled input, for corrections
	URL      string  `json:"url,omitempty"`      // direct navigation target
}

// SuggestionResult is the full response of a suggestion request
type SuggestionResult struct {
	Suggestions     []Suggestion            `json:"suggestions"`
	Categories      map[string][]Suggestion `json:"categories,omitempty"`
	RecentSearches  []string                `json:"recent_searches"`
	PopularSearches []PopularSearch         `json:"popular_searches"`
	Query           string                  `json:"query"`
}

// SuggestionService produces categorized autocomplete suggestions for a
// partial query. All list caps are injected so callers stay in control of
// response sizes.
type SuggestionService struct {
	db          *gorm.DB
	history     *SearchHistory
	sectionCap  int // items kept per suggestion section
	maxDistance int // edit distance threshold for corrections
	surfaced    int // recent/popular entries echoed in every response
}

// NewSuggestionService creates a suggestion service. Non-positive caps
// fall back to the defaults the UI was designed around.
func NewSuggestionService(db *gorm.DB, history *SearchHistory, sectionCap, maxDistance, surfaced int) *SuggestionService {
	if sectionCap <= 0 {
		sectionCap = 4
	}
	if maxDistance <= 0 {
		maxDistance = 2
	}
	if surfaced <= 0 {
		surfaced = 5
	}
	return &SuggestionService{
		db:          db,
		history:     history,
		sectionCap:  sectionCap,
		maxDistance: maxDistance,
		surfaced:    surfaced,
	}
}

// referencePattern recognizes queries shaped like reference numbers
// (e.g. "REF-104", "FILE2041")
var referencePattern = regexp.MustCompile(`^[a-z]{2,5}-?\d+`)

// Suggest runs the suggestion pipeline for a partial query. Query length
// drives how much work is done: empty queries get history only, single
// characters get contextual hints only, two or more characters run the
// full pipeline including entity lookups and typo correction.
func (s *SuggestionService) Suggest(ctx context.Context, query string, limit int, includeCategories bool) (*SuggestionResult, error) {
	if limit <= 0 {
		limit = 10
	}

	result := &SuggestionResult{
		Suggestions:     []Suggestion{},
		RecentSearches:  s.history.Recent(s.surfaced),
		PopularSearches: s.history.Popular(s.surfaced),
		Query:           query,
	}

	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return result, nil
	}

	sections := map[string][]Suggestion{}
	sections["contextual"] = s.contextualSuggestions(q)

	if len(q) >= 2 {
		vocab, err := s.loadVocabulary(ctx)
		if err != nil {
			return nil, fmt.Errorf("suggestions: %w", err)
		}

		sections["recent"] = s.recentMatches(q)
		sections["completions"] = s.completions(q, vocab)
		sections["clients"] = vocab.clientMatches(q)
		sections["cases"] = vocab.caseMatches(q)
		sections["files"] = vocab.fileMatches(q)
		sections["payments"] = vocab.paymentMatches(q)
		sections["popular"] = s.popularMatches(q)

		// Corrections kick in only when the direct stages came up sparse
		direct := len(sections["completions"]) + len(sections["clients"]) +
			len(sections["cases"]) + len(sections["files"]) + len(sections["payments"])
		if direct < 3 {
			sections["corrections"] = s.corrections(query, q, vocab)
		}
	}

	// Fixed section priority; each section capped, overall result capped
	priority := []string{"contextual", "recent", "completions", "corrections", "clients", "cases", "files", "payments", "popular"}
	seen := map[string]bool{}
	for _, name := range priority {
		section := sections[name]
		if len(section) > s.sectionCap {
			section = section[:s.sectionCap]
		}
		for _, sug := range section {
			key := strings.ToLower(sug.Text) + "|" + sug.Type
			if seen[key] {
				continue
			}
			seen[key] = true
			result.Suggestions = append(result.Suggestions, sug)
		}
	}
	if len(result.Suggestions) > limit {
		result.Suggestions = result.Suggestions[:limit]
	}

	if includeCategories {
		result.Categories = map[string][]Suggestion{}
		for name, section := range sections {
			if len(section) > 0 {
				result.Categories[name] = section
			}
		}
	}

	return result, nil
}

// contextualSuggestions maps recognizable query intents to static hints
func (s *SuggestionService) contextualSuggestions(q string) []Suggestion {
	var suggestions []Suggestion

	hint := func(text, context string) {
		suggestions = append(suggestions, Suggestion{Text: text, Type: SuggestionContextual, Context: context})
	}

	if referencePattern.MatchString(q) {
		hint("search by reference number", "reference")
	}
	if containsAny(q, "contract", "agreement", "legal") {
		hint("contract documents", "legal_docs")
		hint("legal agreements", "legal_docs")
		hint("confidential contracts", "legal_docs")
	}
	if containsAny(q, "injury", "accident", "personal") {
		hint("Personal Injury cases", "case_type")
		hint("accident reports", "documents")
	}
	if containsAny(q, "payment", "money", "billing", "invoice") {
		hint("overdue payments", "payments")
		hint("pending invoices", "payments")
		hint("payment history", "payments")
	}
	if containsAny(q, "warehouse", "location", "storage") {
		hint("Warehouse A files", "location")
		hint("Warehouse B files", "location")
		hint("archived documents", "storage")
	}
	if containsAny(q, "active", "closed", "pending") {
		hint("active cases", "status")
		hint("closed files", "status")
		hint("pending reviews", "status")
	}

	return suggestions
}

func containsAny(q string, words ...string) bool {
	for _, w := range words {
		if strings.Contains(q, w) {
			return true
		}
	}
	return false
}

// recentMatches surfaces recent queries the partial query is a prefix or
// fragment of
func (s *SuggestionService) recentMatches(q string) []Suggestion {
	var out []Suggestion
	for _, recent := range s.history.Recent(s.surfaced) {
		if recent != q && strings.Contains(recent, q) {
			out = append(out, Suggestion{Text: recent, Type: SuggestionRecentSearch})
		}
	}
	return out
}

func (s *SuggestionService) popularMatches(q string) []Suggestion {
	var out []Suggestion
	for _, popular := range s.history.Popular(s.surfaced) {
		if popular.Query != q && strings.Contains(popular.Query, q) {
			out = append(out, Suggestion{Text: popular.Query, Type: SuggestionPopularSearch, Count: popular.Count})
		}
	}
	return out
}

// completions offers whole values the partial query is a prefix of
func (s *SuggestionService) completions(q string, vocab *suggestionVocabulary) []Suggestion {
	var out []Suggestion
	for _, c := range vocab.clients {
		if strings.HasPrefix(strings.ToLower(c.name), q) {
			out = append(out, Suggestion{
				Text:     c.name,
				Type:     SuggestionNameCompletion,
				ClientID: c.id,
				Email:    c.email,
				URL:      "/api/clients/" + c.id,
			})
		}
	}
	for _, ct := range vocab.caseTypes {
		if strings.HasPrefix(strings.ToLower(ct), q) {
			out = append(out, Suggestion{Text: ct, Type: SuggestionCaseTypeCompletion, CaseType: ct})
		}
	}
	for _, ft := range vocab.fileTypes {
		if strings.HasPrefix(strings.ToLower(ft), q) {
			out = append(out, Suggestion{Text: ft, Type: SuggestionFileTypeCompletion, FileType: ft})
		}
	}
	return out
}

// corrections finds known terms within edit distance of the query and
// offers them as "did you mean", tagging the original input
func (s *SuggestionService) corrections(original, q string, vocab *suggestionVocabulary) []Suggestion {
	if len(q) < 3 {
		return nil
	}

	type candidate struct {
		term     string
		distance int
	}
	var candidates []candidate
	seen := map[string]bool{}

	consider := func(term string) {
		lower := strings.ToLower(term)
		if term == "" || seen[lower] || strings.Contains(lower, q) {
			return
		}
		seen[lower] = true
		// Compare against the candidate's prefix so partial input can be
		// corrected before the word is fully typed
		prefix := lower
		if len(prefix) > len(q) {
			prefix = prefix[:len(q)]
		}
		if d := levenshtein(q, prefix); d <= s.maxDistance {
			candidates = append(candidates, candidate{term: term, distance: d})
		}
	}

	for _, c := range vocab.clients {
		consider(c.name)
	}
	for _, ct := range vocab.caseTypes {
		consider(ct)
	}
	for _, ft := range vocab.fileTypes {
		consider(ft)
	}
	for _, dc := range vocab.docCategories {
		consider(dc)
	}
	for _, kw := range vocab.keywords {
		consider(kw)
	}
	for _, p := range s.history.Popular(s.surfaced) {
		consider(p.Query)
	}

	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].distance != candidates[j].distance {
			return candidates[i].distance < candidates[j].distance
		}
		return candidates[i].term < candidates[j].term
	})

	var out []Suggestion
	for _, c := range candidates {
		out = append(out, Suggestion{Text: c.term, Type: SuggestionTypoCorrection, Original: original})
	}
	return out
}

// levenshtein computes the edit distance between two strings using the
// two-row dynamic programming formulation
func levenshtein(a, b string) int {
	if len(a) == 0 {
		return len(b)
	}
	if len(b) == 0 {
		return len(a)
	}

	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)
	for j := 0; j <= len(b); j++ {
		prev[j] = j
	}
	for i := 1; i <= len(a); i++ {
		curr[0] = i
		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			curr[j] = min3(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}
	return prev[len(b)]
}

func min3(a, b, c int) int {
	if b < a {
		a = b
	}
	if c < a {
		a = c
	}
	return a
}

// suggestionVocabulary is the known-terms snapshot the pipeline matches
// the partial query against
type suggestionVocabulary struct {
	clients       []vocabClient
	caseTypes     []string
	caseRefs      []vocabCaseRef
	fileTypes     []string
	docCategories []string
	fileRefs      []vocabFileRef
	keywords      []string
	methods       []string
	amounts       []float64
}

type vocabClient struct {
	id     string
	name   string
	email  string
	status string
}

type vocabCaseRef struct {
	ref      string
	caseType string
	status   string
}

type vocabFileRef struct {
	ref      string
	fileType string
	client   string
}

func (s *SuggestionService) loadVocabulary(ctx context.Context) (*suggestionVocabulary, error) {
	vocab := &suggestionVocabulary{}

	var clients []models.Client
	if err := s.db.WithContext(ctx).Find(&clients).Error; err != nil {
		return nil, fmt.Errorf("loading clients: %w", err)
	}
	clientNames := make(map[string]string, len(clients))
	for i := range clients {
		c := &clients[i]
		clientNames[c.ID] = c.FullName()
		vocab.clients = append(vocab.clients, vocabClient{
			id:     c.ID,
			name:   c.FullName(),
			email:  c.Email,
			status: c.Status,
		})
	}

	var cases []models.Case
	if err := s.db.WithContext(ctx).Find(&cases).Error; err != nil {
		return nil, fmt.Errorf("loading cases: %w", err)
	}
	caseTypeSet := map[string]bool{}
	for i := range cases {
		cs := &cases[i]
		if !caseTypeSet[cs.CaseType] && cs.CaseType != "" {
			caseTypeSet[cs.CaseType] = true
			vocab.caseTypes = append(vocab.caseTypes, cs.CaseType)
		}
		vocab.caseRefs = append(vocab.caseRefs, vocabCaseRef{ref: cs.ReferenceNumber, caseType: cs.CaseType, status: cs.Status})
	}
	sort.Strings(vocab.caseTypes)

	var files []models.PhysicalFile
	if err := s.db.WithContext(ctx).Find(&files).Error; err != nil {
		return nil, fmt.Errorf("loading files: %w", err)
	}
	fileTypeSet := map[string]bool{}
	categorySet := map[string]bool{}
	keywordSet := map[string]bool{}
	for i := range files {
		f := &files[i]
		if !fileTypeSet[f.FileType] && f.FileType != "" {
			fileTypeSet[f.FileType] = true
			vocab.fileTypes = append(vocab.fileTypes, f.FileType)
		}
		if !categorySet[f.DocumentCategory] && f.DocumentCategory != "" {
			categorySet[f.DocumentCategory] = true
			vocab.docCategories = append(vocab.docCategories, f.DocumentCategory)
		}
		for _, kw := range f.KeywordList() {
			if !keywordSet[kw] {
				keywordSet[kw] = true
				vocab.keywords = append(vocab.keywords, kw)
			}
		}
		vocab.fileRefs = append(vocab.fileRefs, vocabFileRef{
			ref:      f.ReferenceNumber,
			fileType: f.FileType,
			client:   clientNames[f.ClientID],
		})
	}
	sort.Strings(vocab.fileTypes)
	sort.Strings(vocab.docCategories)
	sort.Strings(vocab.keywords)

	var payments []models.Payment
	if err := s.db.WithContext(ctx).Find(&payments).Error; err != nil {
		return nil, fmt.Errorf("loading payments: %w", err)
	}
	methodSet := map[string]bool{}
	for i := range payments {
		p := &payments[i]
		if !methodSet[p.PaymentMethod] && p.PaymentMethod != "" {
			methodSet[p.PaymentMethod] = true
			vocab.methods = append(vocab.methods, p.PaymentMethod)
		}
		vocab.amounts = append(vocab.amounts, p.Amount)
	}
	sort.Strings(vocab.methods)

	return vocab, nil
}

// clientMatches finds clients whose name or email contains the query
func (v *suggestionVocabulary) clientMatches(q string) []Suggestion {
	var out []Suggestion
	for _, c := range v.clients {
		if strings.Contains(strings.ToLower(c.name), q) || strings.Contains(strings.ToLower(c.email), q) {
			out = append(out, Suggestion{
				Text:     c.name,
				Type:     SuggestionClient,
				Email:    c.email,
				Status:   c.status,
				ClientID: c.id,
				URL:      "/api/clients/" + c.id,
			})
		}
	}
	return out
}

// caseMatches finds case references and case types containing the query
func (v *suggestionVocabulary) caseMatches(q string) []Suggestion {
	var out []Suggestion
	for _, cr := range v.caseRefs {
		if strings.Contains(strings.ToLower(cr.ref), q) {
			out = append(out, Suggestion{Text: cr.ref, Type: SuggestionCaseReference, CaseType: cr.caseType, Status: cr.status})
		}
	}
	for _, ct := range v.caseTypes {
		if strings.Contains(strings.ToLower(ct), q) {
			out = append(out, Suggestion{Text: ct, Type: SuggestionCaseType, CaseType: ct})
		}
	}
	return out
}

// fileMatches finds keywords, file types, categories and file references
// containing the query
func (v *suggestionVocabulary) fileMatches(q string) []Suggestion {
	var out []Suggestion
	for _, kw := range v.keywords {
		if strings.Contains(strings.ToLower(kw), q) {
			out = append(out, Suggestion{Text: kw, Type: SuggestionKeyword, Keyword: kw})
		}
	}
	for _, ft := range v.fileTypes {
		if strings.Contains(strings.ToLower(ft), q) {
			out = append(out, Suggestion{Text: ft, Type: SuggestionFileType, FileType: ft})
		}
	}
	for _, dc := range v.docCategories {
		if strings.Contains(strings.ToLower(dc), q) {
			out = append(out, Suggestion{Text: dc, Type: SuggestionDocumentCategory})
		}
	}
	for _, fr := range v.fileRefs {
		if strings.Contains(strings.ToLower(fr.ref), q) {
			out = append(out, Suggestion{Text: fr.ref, Type: SuggestionFileReference, FileType: fr.fileType, Client: fr.client})
		}
	}
	return out
}

// paymentMatches finds amounts and payment methods containing the query
func (v *suggestionVocabulary) paymentMatches(q string) []Suggestion {
	var out []Suggestion
	seenAmounts := map[string]bool{}
	for _, amount := range v.amounts {
		text := fmt.Sprintf("%.2f", amount)
		if strings.Contains(text, q) && !seenAmounts[text] {
			seenAmounts[text] = true
			out = append(out, Suggestion{Text: "$" + text, Type: SuggestionPaymentAmount, Amount: amount})
		}
	}
	for _, m := range v.methods {
		if strings.Contains(strings.ToLower(m), q) {
			out = append(out, Suggestion{Text: m, Type: SuggestionPaymentMethod})
		}
	}
	return out
}
