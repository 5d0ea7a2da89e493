package services

import (
	"testing"
	"time"

	"legal_archive_go/models"

	"github.com/stretchr/testify/assert"
)

func TestScoreTextMatch(t *testing.T) {
	fields := []searchField{
		{name: "Reference", value: "REF-104233", primary: true},
		{name: "Description", value: "custody dispute settlement"},
	}

	tests := []struct {
		name          string
		tokens        []string
		expectedScore float64
		expectedHits  []string
	}{
		{
			name:          "exact primary match",
			tokens:        []string{"ref-104233"},
			expectedScore: scoreExactPrimary,
			expectedHits:  []string{"Reference: ref-104233"},
		},
		{
			name:          "substring primary match",
			tokens:        []string{"104233"},
			expectedScore: scoreSubstringPrimary,
			expectedHits:  []string{"Reference: 104233"},
		},
		{
			name:          "secondary match",
			tokens:        []string{"custody"},
			expectedScore: scoreSecondary,
			expectedHits:  []string{"Description: custody"},
		},
		{
			name:          "two tokens accumulate",
			tokens:        []string{"custody", "settlement"},
			expectedScore: 2 * scoreSecondary,
			expectedHits:  []string{"Description: custody", "Description: settlement"},
		},
		{
			name:          "no match",
			tokens:        []string{"bankruptcy"},
			expectedScore: 0,
			expectedHits:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			score, details := scoreTextMatch(fields, tt.tokens)
			assert.Equal(t, tt.expectedScore, score)
			assert.Equal(t, tt.expectedHits, details)
		})
	}
}

func TestScoreTextMatchSkipsEmptyFields(t *testing.T) {
	fields := []searchField{
		{name: "Reference", value: "", primary: true},
		{name: "Description", value: ""},
	}
	score, details := scoreTextMatch(fields, []string{"anything"})
	assert.Zero(t, score)
	assert.Empty(t, details)
}

func TestRecencyBonus(t *testing.T) {
	now := time.Now()

	fresh := recencyBonus(now, now)
	monthOld := recencyBonus(now.AddDate(0, 0, -30), now)
	ancient := recencyBonus(now.AddDate(-2, 0, 0), now)

	assert.Equal(t, recencyMaxBonus, fresh)
	assert.Greater(t, fresh, monthOld)
	assert.Greater(t, monthOld, ancient)
	assert.Zero(t, ancient)
	assert.Zero(t, recencyBonus(time.Time{}, now))
}

func TestMatchClient(t *testing.T) {
	client := &models.Client{
		ID:               "c1",
		FirstName:        "Jane",
		LastName:         "Doe",
		Email:            "j.d@example.com",
		ClientType:       models.ClientTypeIndividual,
		Status:           models.ClientStatusActive,
		RegistrationDate: time.Now().AddDate(-1, 0, 0),
	}

	t.Run("name substring match", func(t *testing.T) {
		m := matchClient(client, []string{"jane"}, SearchFilters{})
		assert.NotNil(t, m)
		assert.Equal(t, scoreSubstringPrimary, m.Score)
		assert.Contains(t, m.Details, "Name: jane")
	})

	t.Run("exact name match outranks substring", func(t *testing.T) {
		org := &models.Client{
			ID:               "c2",
			ClientType:       models.ClientTypeCorporation,
			OrganizationName: "Acme",
		}
		m := matchClient(org, []string{"acme"}, SearchFilters{})
		assert.NotNil(t, m)
		assert.Equal(t, scoreExactPrimary, m.Score)
	})

	t.Run("satisfied filter adds bonus", func(t *testing.T) {
		m := matchClient(client, []string{"jane"}, SearchFilters{ClientType: models.ClientTypeIndividual})
		assert.NotNil(t, m)
		assert.Equal(t, scoreSubstringPrimary+scoreFilterBonus, m.Score)
	})

	t.Run("failing filter rejects despite text hit", func(t *testing.T) {
		m := matchClient(client, []string{"jane"}, SearchFilters{ClientType: models.ClientTypeCorporation})
		assert.Nil(t, m)
	})

	t.Run("foreign filter key rejects", func(t *testing.T) {
		m := matchClient(client, []string{"jane"}, SearchFilters{CaseType: "Family Law"})
		assert.Nil(t, m)
	})

	t.Run("filter only match without tokens", func(t *testing.T) {
		m := matchClient(client, nil, SearchFilters{ClientType: models.ClientTypeIndividual})
		assert.NotNil(t, m)
		assert.Equal(t, scoreFilterBonus, m.Score)
	})

	t.Run("no tokens and no filters never matches", func(t *testing.T) {
		assert.Nil(t, matchClient(client, nil, SearchFilters{}))
	})

	t.Run("invalid filters short-circuit", func(t *testing.T) {
		assert.Nil(t, matchClient(client, []string{"jane"}, SearchFilters{Invalid: true}))
	})
}

func TestMatchFileKeywords(t *testing.T) {
	file := &models.PhysicalFile{
		ID:              "f1",
		ReferenceNumber: "FILE-00001",
		FileType:        "Evidence",
		CreatedAt:       time.Now(),
	}
	file.SetKeywords([]string{"custody", "settlement"})

	m := matchFile(file, "", "", []string{"custody"}, SearchFilters{})
	assert.NotNil(t, m)
	assert.Equal(t, scoreSecondary, m.Score)
	assert.Contains(t, m.Details, "Keywords: custody")
}

func TestMatchAccessEventRecency(t *testing.T) {
	now := time.Now()
	newer := &models.AccessEvent{ID: "a1", UserName: "John Smith", AccessTimestamp: now}
	older := &models.AccessEvent{ID: "a2", UserName: "John Smith", AccessTimestamp: now.AddDate(0, -2, 0)}

	mNewer := matchAccessEvent(newer, nil, "", []string{"smith"}, SearchFilters{}, now)
	mOlder := matchAccessEvent(older, nil, "", []string{"smith"}, SearchFilters{}, now)

	assert.NotNil(t, mNewer)
	assert.NotNil(t, mOlder)
	assert.Greater(t, mNewer.Score, mOlder.Score, "equal text hits must rank the newer event higher")
}

func TestMatchCommentPrivateHandledByCaller(t *testing.T) {
	// The matcher itself scores private comments; visibility is the
	// orchestrator's decision
	now := time.Now()
	comment := &models.Comment{
		ID:          "cm1",
		EntityType:  models.CommentEntityFile,
		UserName:    "Sarah Johnson",
		CommentText: "urgent follow up required",
		IsPrivate:   true,
		CreatedAt:   now,
	}
	m := matchComment(comment, "File: FILE-00001", []string{"urgent"}, SearchFilters{}, now)
	assert.NotNil(t, m)
	assert.Greater(t, m.Score, 0.0)
}
