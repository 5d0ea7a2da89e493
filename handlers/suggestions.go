package handlers

import (
	"net/http"

	"legal_archive_go/config"
	"legal_archive_go/db"
	"legal_archive_go/services"

	"github.com/labstack/echo/v4"
)

var suggestionService *services.SuggestionService

// InitSuggestionService initializes the suggestion service against the
// shared query history store. InitSearchServices must run first.
func InitSuggestionService(cfg *config.Config) {
	suggestionService = services.NewSuggestionService(
		db.DB,
		searchHistory,
		cfg.SuggestionSectionCap,
		cfg.CorrectionMaxDistance,
		cfg.SurfacedHistoryCount,
	)
}

// SuggestionsHandler produces categorized autocomplete suggestions
// GET /api/suggestions?q=partial&limit=10&categories=true
func SuggestionsHandler(c echo.Context) error {
	query := c.QueryParam("q")
	limit := parseLimit(c, "limit", searchCfg.SuggestionLimit)
	includeCategories := c.QueryParam("categories") != "false"

	result, err := suggestionService.Suggest(c.Request().Context(), query, limit, includeCategories)
	if err != nil {
		c.Logger().Error("Suggestions failed: ", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Suggestions failed")
	}
	return c.JSON(http.StatusOK, result)
}
