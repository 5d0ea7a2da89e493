package services

import (
	"fmt"
	"strings"
	"time"

	"legal_archive_go/models"
)

// Relevance weights, uniform across all six matchers
const (
	scoreExactPrimary     = 10.0 // full token equals a primary identifier field
	scoreSubstringPrimary = 5.0  // token found inside a primary field
	scoreSecondary        = 2.0  // token found in a secondary field
	scoreFilterBonus      = 1.0  // per satisfied structured filter
)

// Recency bonus for time-ordered entities: linear decay, 3 points at age
// zero falling to 0 over 90 days, computed at day granularity so repeated
// calls within a request window stay deterministic. Any monotonic decay
// satisfies "newer ranks higher on ties"; linear is the simplest.
const (
	recencyMaxBonus  = 3.0
	recencyDecayDays = 30.0
)

// MatchResult is the outcome of testing one record against a query
type MatchResult struct {
	Score   float64
	Details []string
}

// searchField is one searchable field of an entity. Primary fields are
// identifiers and names; everything else is secondary.
type searchField struct {
	name    string
	value   string
	primary bool
}

// scoreTextMatch scores tokens against fields in field order, collecting a
// human-readable detail (field name + matched token) per hit
func scoreTextMatch(fields []searchField, tokens []string) (float64, []string) {
	score := 0.0
	var details []string
	for _, f := range fields {
		if f.value == "" {
			continue
		}
		value := strings.ToLower(f.value)
		for _, tok := range tokens {
			switch {
			case f.primary && value == tok:
				score += scoreExactPrimary
			case f.primary && strings.Contains(value, tok):
				score += scoreSubstringPrimary
			case !f.primary && strings.Contains(value, tok):
				score += scoreSecondary
			default:
				continue
			}
			details = append(details, f.name+": "+tok)
		}
	}
	return score, details
}

// finishMatch applies the shared tail of every matcher: reject on filter
// failure, require a text hit when tokens were supplied, then add the
// filter bonus. Returns nil when the record does not match.
func finishMatch(fields []searchField, tokens []string, pass bool, satisfied int) *MatchResult {
	if !pass {
		return nil
	}
	score, details := scoreTextMatch(fields, tokens)
	if len(tokens) > 0 && score == 0 {
		return nil
	}
	if len(tokens) == 0 && satisfied == 0 {
		return nil
	}
	score += float64(satisfied) * scoreFilterBonus
	return &MatchResult{Score: score, Details: details}
}

func recencyBonus(ts, now time.Time) float64 {
	if ts.IsZero() {
		return 0
	}
	if ts.After(now) {
		return recencyMaxBonus
	}
	ageDays := int(now.Sub(ts).Hours() / 24)
	bonus := recencyMaxBonus - float64(ageDays)/recencyDecayDays
	if bonus < 0 {
		return 0
	}
	return bonus
}

// matchClient tests one client against the query
func matchClient(c *models.Client, tokens []string, f SearchFilters) *MatchResult {
	if f.Invalid {
		return nil
	}
	checks := []filterCheck{
		equalsFilter(f.ClientType, c.ClientType),
		dateFilter(f.DateFrom, f.DateTo, c.RegistrationDate),
	}
	checks = append(checks, unsupportedFilters(
		f.CaseType, f.FileType, f.ConfidentialityLevel,
		f.WarehouseLocation, f.StorageStatus, f.PaymentStatus)...)
	pass, satisfied := evaluate(checks...)

	fields := []searchField{
		{name: "Name", value: c.FullName(), primary: true},
		{name: "Email", value: c.Email, primary: true},
		{name: "Phone", value: c.Phone},
		{name: "Address", value: c.Address},
		{name: "Client Type", value: c.ClientType},
		{name: "Status", value: c.Status},
	}
	return finishMatch(fields, tokens, pass, satisfied)
}

// matchCase tests one case against the query. clientName is resolved by
// the orchestrator so the matcher stays a pure function of its inputs.
func matchCase(cs *models.Case, clientName string, tokens []string, f SearchFilters) *MatchResult {
	if f.Invalid {
		return nil
	}
	checks := []filterCheck{
		equalsFilter(f.CaseType, cs.CaseType),
		dateFilter(f.DateFrom, f.DateTo, cs.CreatedAt),
	}
	checks = append(checks, unsupportedFilters(
		f.FileType, f.ConfidentialityLevel, f.WarehouseLocation,
		f.StorageStatus, f.ClientType, f.PaymentStatus)...)
	pass, satisfied := evaluate(checks...)

	fields := []searchField{
		{name: "Reference", value: cs.ReferenceNumber, primary: true},
		{name: "Client", value: clientName, primary: true},
		{name: "Lawyer", value: cs.AssignedLawyer, primary: true},
		{name: "Case Type", value: cs.CaseType},
		{name: "Description", value: cs.Description},
		{name: "Status", value: cs.Status},
		{name: "Priority", value: cs.Priority},
	}
	return finishMatch(fields, tokens, pass, satisfied)
}

// matchFile tests one physical file against the query
func matchFile(file *models.PhysicalFile, clientName, caseType string, tokens []string, f SearchFilters) *MatchResult {
	if f.Invalid {
		return nil
	}
	checks := []filterCheck{
		equalsFilter(f.FileType, file.FileType),
		equalsFilter(f.ConfidentialityLevel, file.ConfidentialityLevel),
		equalsFilter(f.WarehouseLocation, file.WarehouseLocation),
		equalsFilter(f.StorageStatus, file.StorageStatus),
		dateFilter(f.DateFrom, f.DateTo, file.CreatedAt),
	}
	checks = append(checks, unsupportedFilters(
		f.CaseType, f.ClientType, f.PaymentStatus)...)
	pass, satisfied := evaluate(checks...)

	fields := []searchField{
		{name: "Reference", value: file.ReferenceNumber, primary: true},
		{name: "Client", value: clientName, primary: true},
		{name: "File Type", value: file.FileType},
		{name: "Category", value: file.DocumentCategory},
		{name: "Description", value: file.FileDescription},
	}
	for _, kw := range file.KeywordList() {
		fields = append(fields, searchField{name: "Keywords", value: kw})
	}
	fields = append(fields,
		searchField{name: "Case Type", value: caseType},
		searchField{name: "Location", value: file.WarehouseLocation},
	)
	return finishMatch(fields, tokens, pass, satisfied)
}

// matchPayment tests one payment against the query
func matchPayment(p *models.Payment, clientName, caseType string, tokens []string, f SearchFilters) *MatchResult {
	if f.Invalid {
		return nil
	}
	checks := []filterCheck{
		equalsFilter(f.PaymentStatus, p.Status),
		dateFilter(f.DateFrom, f.DateTo, p.PaymentDate),
	}
	checks = append(checks, unsupportedFilters(
		f.CaseType, f.FileType, f.ConfidentialityLevel,
		f.WarehouseLocation, f.StorageStatus, f.ClientType)...)
	pass, satisfied := evaluate(checks...)

	fields := []searchField{
		{name: "Invoice", value: p.InvoiceNumber, primary: true},
		{name: "Client", value: clientName, primary: true},
		{name: "Description", value: p.Description},
		{name: "Payment Method", value: p.PaymentMethod},
		{name: "Status", value: p.Status},
		{name: "Case Type", value: caseType},
		{name: "Amount", value: fmt.Sprintf("%.2f", p.Amount)},
	}
	return finishMatch(fields, tokens, pass, satisfied)
}

// matchAccessEvent tests one access log entry against the query. file may
// be nil when the referenced file row is missing; the event still matches
// on its own fields.
func matchAccessEvent(a *models.AccessEvent, file *models.PhysicalFile, clientName string, tokens []string, f SearchFilters, now time.Time) *MatchResult {
	if f.Invalid {
		return nil
	}
	checks := []filterCheck{
		dateFilter(f.DateFrom, f.DateTo, a.AccessTimestamp),
	}
	checks = append(checks, unsupportedFilters(
		f.CaseType, f.FileType, f.ConfidentialityLevel, f.WarehouseLocation,
		f.StorageStatus, f.ClientType, f.PaymentStatus)...)
	pass, satisfied := evaluate(checks...)

	fields := []searchField{
		{name: "User", value: a.UserName, primary: true},
	}
	if file != nil {
		fields = append(fields,
			searchField{name: "File Reference", value: file.ReferenceNumber, primary: true},
			searchField{name: "Client", value: clientName, primary: true},
		)
	}
	fields = append(fields,
		searchField{name: "Role", value: a.UserRole},
		searchField{name: "Access Type", value: a.AccessType},
		searchField{name: "IP", value: a.IPAddress},
	)

	result := finishMatch(fields, tokens, pass, satisfied)
	if result != nil {
		result.Score += recencyBonus(a.AccessTimestamp, now)
	}
	return result
}

// matchComment tests one comment against the query. entityRef is the
// human-readable reference of the commented record ("" when unresolved).
func matchComment(cm *models.Comment, entityRef string, tokens []string, f SearchFilters, now time.Time) *MatchResult {
	if f.Invalid {
		return nil
	}
	checks := []filterCheck{
		dateFilter(f.DateFrom, f.DateTo, cm.CreatedAt),
	}
	checks = append(checks, unsupportedFilters(
		f.CaseType, f.FileType, f.ConfidentialityLevel, f.WarehouseLocation,
		f.StorageStatus, f.ClientType, f.PaymentStatus)...)
	pass, satisfied := evaluate(checks...)

	fields := []searchField{
		{name: "User", value: cm.UserName, primary: true},
		{name: "Entity Reference", value: entityRef, primary: true},
		{name: "Comment", value: cm.CommentText},
		{name: "Role", value: cm.UserRole},
		{name: "Entity Type", value: cm.EntityType},
	}

	result := finishMatch(fields, tokens, pass, satisfied)
	if result != nil {
		result.Score += recencyBonus(cm.CreatedAt, now)
	}
	return result
}
