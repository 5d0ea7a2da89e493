package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDateFilter(t *testing.T) {
	day := func(s string) time.Time {
		d, err := time.Parse("2006-01-02", s)
		assert.NoError(t, err)
		return d
	}
	ptr := func(t time.Time) *time.Time { return &t }

	tests := []struct {
		name      string
		from, to  *time.Time
		ts        time.Time
		supplied  bool
		satisfied bool
	}{
		{
			name:      "no range supplied",
			ts:        day("2024-06-01"),
			supplied:  false,
			satisfied: false,
		},
		{
			name:      "inside inclusive range",
			from:      ptr(day("2024-01-01")),
			to:        ptr(day("2024-12-31")),
			ts:        day("2024-06-01"),
			supplied:  true,
			satisfied: true,
		},
		{
			name:      "boundary dates are inclusive",
			from:      ptr(day("2024-06-01")),
			to:        ptr(day("2024-06-01")),
			ts:        day("2024-06-01"),
			supplied:  true,
			satisfied: true,
		},
		{
			name:      "before range",
			from:      ptr(day("2024-06-02")),
			ts:        day("2024-06-01"),
			supplied:  true,
			satisfied: false,
		},
		{
			name:      "after range",
			to:        ptr(day("2024-05-31")),
			ts:        day("2024-06-01"),
			supplied:  true,
			satisfied: false,
		},
		{
			name:      "inverted range never matches",
			from:      ptr(day("2024-12-31")),
			to:        ptr(day("2024-01-01")),
			ts:        day("2024-06-01"),
			supplied:  true,
			satisfied: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			check := dateFilter(tt.from, tt.to, tt.ts)
			assert.Equal(t, tt.supplied, check.supplied)
			assert.Equal(t, tt.satisfied, check.satisfied)
		})
	}
}

func TestDateFilterUsesLocalCalendarDate(t *testing.T) {
	// 22:00 on June 1st in UTC-5 is 03:00 June 2nd in UTC; the record was
	// still created on the 1st where it happened, so a range ending on the
	// 1st must include it
	est := time.FixedZone("UTC-5", -5*3600)
	ts := time.Date(2024, 6, 1, 22, 0, 0, 0, est)

	boundary, err := time.Parse("2006-01-02", "2024-06-01")
	assert.NoError(t, err)

	check := dateFilter(&boundary, &boundary, ts)
	assert.True(t, check.supplied)
	assert.True(t, check.satisfied)

	// And the following calendar day must not match it
	next := boundary.AddDate(0, 0, 1)
	check = dateFilter(&next, &next, ts)
	assert.False(t, check.satisfied)
}

func TestEvaluate(t *testing.T) {
	pass, satisfied := evaluate(
		filterCheck{supplied: true, satisfied: true},
		filterCheck{}, // not supplied, ignored
		filterCheck{supplied: true, satisfied: true},
	)
	assert.True(t, pass)
	assert.Equal(t, 2, satisfied)

	pass, satisfied = evaluate(
		filterCheck{supplied: true, satisfied: true},
		filterCheck{supplied: true, satisfied: false},
	)
	assert.False(t, pass)
	assert.Equal(t, 0, satisfied)

	pass, satisfied = evaluate()
	assert.True(t, pass)
	assert.Equal(t, 0, satisfied)
}

func TestUnsupportedFilters(t *testing.T) {
	checks := unsupportedFilters("", "Family Law", "")
	assert.Len(t, checks, 1)
	assert.True(t, checks[0].supplied)
	assert.False(t, checks[0].satisfied)

	assert.Empty(t, unsupportedFilters("", "", ""))
}

func TestParseFilterDate(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		ok     bool
		parsed bool
	}{
		{name: "empty", input: "", ok: true, parsed: false},
		{name: "plain date", input: "2024-06-01", ok: true, parsed: true},
		{name: "rfc3339", input: "2024-06-01T12:30:00Z", ok: true, parsed: true},
		{name: "garbage", input: "not-a-date", ok: false, parsed: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseFilterDate(tt.input)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.parsed, got != nil)
		})
	}
}

func TestSearchFiltersActive(t *testing.T) {
	assert.False(t, SearchFilters{}.Active())
	assert.True(t, SearchFilters{CaseType: "Family Law"}.Active())
	assert.True(t, SearchFilters{Invalid: true}.Active())
	now := time.Now()
	assert.True(t, SearchFilters{DateFrom: &now}.Active())
}
