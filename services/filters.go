package services

import (
	"time"
)

// SearchFilters holds the structured constraints of a search request.
// Zero-valued fields are treated as "not supplied" and pass trivially;
// supplied filters combine with AND semantics.
type SearchFilters struct {
	CaseType             string
	FileType             string
	ConfidentialityLevel string
	WarehouseLocation    string
	StorageStatus        string
	ClientType           string
	PaymentStatus        string
	DateFrom             *time.Time
	DateTo               *time.Time

	// Invalid marks a filter value that failed to parse. The contract is
	// "always return a valid, possibly-empty result set", so malformed
	// input yields zero matches instead of an error.
	Invalid bool
}

// Active reports whether any filter was supplied
func (f SearchFilters) Active() bool {
	return f.CaseType != "" || f.FileType != "" || f.ConfidentialityLevel != "" ||
		f.WarehouseLocation != "" || f.StorageStatus != "" || f.ClientType != "" ||
		f.PaymentStatus != "" || f.DateFrom != nil || f.DateTo != nil || f.Invalid
}

// filterCheck pairs a supplied filter with whether the current record
// satisfies it. Entities evaluate only the filter keys they define; any
// supplied filter outside that key set is reported as failed, which keeps
// AND semantics strict and stops filters from cascading into categories
// that cannot evaluate them.
type filterCheck struct {
	supplied  bool
	satisfied bool
}

// evaluate folds a set of checks into (pass, satisfiedCount). A record
// passes when every supplied check is satisfied. satisfiedCount feeds the
// +1-per-filter relevance bonus.
func evaluate(checks ...filterCheck) (bool, int) {
	satisfied := 0
	for _, c := range checks {
		if !c.supplied {
			continue
		}
		if !c.satisfied {
			return false, 0
		}
		satisfied++
	}
	return true, satisfied
}

// equalsFilter builds a check for a string filter against a record value
func equalsFilter(filterValue, recordValue string) filterCheck {
	return filterCheck{
		supplied:  filterValue != "",
		satisfied: filterValue == recordValue,
	}
}

// calendarDay maps a timestamp to its calendar date in the timestamp's own
// zone, normalized to UTC midnight so dates from different zones compare
// by what the calendar said where the event happened
func calendarDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// dateFilter builds a check for the inclusive date range against the
// entity's relevant timestamp. An inverted range (from after to) can never
// be satisfied, so it yields zero matches rather than an error.
func dateFilter(from, to *time.Time, ts time.Time) filterCheck {
	if from == nil && to == nil {
		return filterCheck{}
	}
	check := filterCheck{supplied: true, satisfied: true}
	if from != nil && to != nil && from.After(*to) {
		check.satisfied = false
		return check
	}
	day := calendarDay(ts)
	if from != nil && day.Before(calendarDay(*from)) {
		check.satisfied = false
	}
	if to != nil && day.After(calendarDay(*to)) {
		check.satisfied = false
	}
	return check
}

// unsupportedFilters builds failing checks for every supplied filter in
// the given list. Matchers use it to reject records when a filter key
// outside their own key set was supplied.
func unsupportedFilters(values ...string) []filterCheck {
	checks := make([]filterCheck, 0, len(values))
	for _, v := range values {
		if v != "" {
			checks = append(checks, filterCheck{supplied: true, satisfied: false})
		}
	}
	return checks
}

// ParseFilterDate parses a date filter value. Both plain dates and full
// timestamps are accepted. ok is false for a non-empty value that parses
// as neither, which callers translate into SearchFilters.Invalid.
func ParseFilterDate(value string) (*time.Time, bool) {
	if value == "" {
		return nil, true
	}
	for _, layout := range []string{"2006-01-02", time.RFC3339} {
		if t, err := time.Parse(layout, value); err == nil {
			return &t, true
		}
	}
	return nil, false
}
