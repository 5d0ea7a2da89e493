package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"legal_archive_go/services"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSuggestionsHandler(t *testing.T) {
	testDB := setupTestDB(t)
	fx := seedHandlerFixture(t, testDB)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/suggestions?q=jan", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, SuggestionsHandler(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var result services.SuggestionResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))

	assert.Equal(t, "jan", result.Query)
	require.NotEmpty(t, result.Suggestions)

	var completion *services.Suggestion
	for i := range result.Suggestions {
		if result.Suggestions[i].Type == services.SuggestionNameCompletion {
			completion = &result.Suggestions[i]
			break
		}
	}
	require.NotNil(t, completion)
	assert.Equal(t, "Jane Doe", completion.Text)
	assert.Equal(t, "/api/clients/"+fx.client.ID, completion.URL)

	// Categories are included by default
	assert.NotEmpty(t, result.Categories)
}

func TestSuggestionsHandlerWithoutCategories(t *testing.T) {
	testDB := setupTestDB(t)
	seedHandlerFixture(t, testDB)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/suggestions?q=jan&categories=false", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, SuggestionsHandler(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var result services.SuggestionResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.Empty(t, result.Categories)
}

func TestSuggestionsHandlerSurfacesHistory(t *testing.T) {
	testDB := setupTestDB(t)
	seedHandlerFixture(t, testDB)
	SearchHistoryStore().Record("family law")

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/suggestions", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, SuggestionsHandler(c))

	var result services.SuggestionResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.Empty(t, result.Suggestions)
	assert.Equal(t, []string{"family law"}, result.RecentSearches)
	require.Len(t, result.PopularSearches, 1)
	assert.Equal(t, 1, result.PopularSearches[0].Count)
}
