package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"legal_archive_go/config"
	"legal_archive_go/db"
	"legal_archive_go/services"

	"github.com/labstack/echo/v4"
)

var (
	searchService *services.SearchService
	searchHistory *services.SearchHistory
	searchCfg     *config.Config
)

// InitSearchServices initializes the search service and the process-wide
// query history store. Must run before InitSuggestionService.
func InitSearchServices(cfg *config.Config) {
	searchCfg = cfg
	searchService = services.NewSearchService(db.DB)
	searchHistory = services.NewSearchHistory(cfg.RecentSearchRetention)
}

// SearchHistoryStore exposes the shared history store to other handlers
// and to the seed CLI
func SearchHistoryStore() *services.SearchHistory {
	return searchHistory
}

// parseSearchFilters extracts the structured filters from query params.
// Malformed date values mark the filter set invalid, which yields zero
// matches instead of an error response.
func parseSearchFilters(c echo.Context) services.SearchFilters {
	filters := services.SearchFilters{
		CaseType:             c.QueryParam("case_type"),
		FileType:             c.QueryParam("file_type"),
		ConfidentialityLevel: c.QueryParam("confidentiality_level"),
		WarehouseLocation:    c.QueryParam("warehouse_location"),
		StorageStatus:        c.QueryParam("storage_status"),
		ClientType:           c.QueryParam("client_type"),
		PaymentStatus:        c.QueryParam("payment_status"),
	}

	var ok bool
	if filters.DateFrom, ok = services.ParseFilterDate(c.QueryParam("date_from")); !ok {
		filters.Invalid = true
	}
	if filters.DateTo, ok = services.ParseFilterDate(c.QueryParam("date_to")); !ok {
		filters.Invalid = true
	}
	return filters
}

func parseLimit(c echo.Context, name string, fallback int) int {
	if param := c.QueryParam(name); param != "" {
		if n, err := strconv.Atoi(param); err == nil && n > 0 {
			return n
		}
	}
	return fallback
}

// capMatchDetails trims match explanations to the configured display cap.
// The core produces the full list; truncation is this caller's concern.
func capMatchDetails(results []services.SearchResult, max int) {
	if max <= 0 {
		return
	}
	for i := range results {
		if len(results[i].MatchDetails) > max {
			results[i].MatchDetails = results[i].MatchDetails[:max]
		}
	}
}

// UnifiedSearchHandler handles unified searches across all six categories
// GET /api/search?q=keyword&case_type=...&limit=10
func UnifiedSearchHandler(c echo.Context) error {
	query := c.QueryParam("q")
	filters := parseSearchFilters(c)
	limit := parseLimit(c, "limit", searchCfg.SearchResultLimit)
	includePrivate := c.QueryParam("include_private") == "true"

	// Record the query for intelligent suggestions
	if strings.TrimSpace(query) != "" {
		searchHistory.Record(query)
	}

	result, err := searchService.UnifiedSearch(c.Request().Context(), query, filters, limit, includePrivate)
	if err != nil {
		c.Logger().Error("Unified search failed: ", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Search failed")
	}

	for _, category := range [][]services.SearchResult{
		result.Files, result.Clients, result.Cases,
		result.Payments, result.AccessHistory, result.Comments,
	} {
		capMatchDetails(category, searchCfg.MatchDetailLimit)
	}

	return c.JSON(http.StatusOK, result)
}

// SearchExportHandler exports unified search results as an Excel workbook
// GET /api/search/export?q=keyword&...
func SearchExportHandler(c echo.Context) error {
	query := c.QueryParam("q")
	filters := parseSearchFilters(c)
	limit := parseLimit(c, "limit", 0) // unbounded by default for exports
	includePrivate := c.QueryParam("include_private") == "true"

	result, err := searchService.UnifiedSearch(c.Request().Context(), query, filters, limit, includePrivate)
	if err != nil {
		c.Logger().Error("Search export failed: ", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Export failed")
	}

	workbook, err := services.ExportSearchResults(result)
	if err != nil {
		c.Logger().Error("Workbook generation failed: ", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Export failed")
	}
	defer workbook.Close()

	buf, err := workbook.WriteToBuffer()
	if err != nil {
		c.Logger().Error("Workbook serialization failed: ", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Export failed")
	}

	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="search_results.xlsx"`)
	return c.Blob(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", buf.Bytes())
}

// FilterOptionsHandler returns the distinct values for filter dropdowns
// GET /api/filter-options
func FilterOptionsHandler(c echo.Context) error {
	options, err := searchService.FilterOptions(c.Request().Context())
	if err != nil {
		c.Logger().Error("Loading filter options failed: ", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to load filter options")
	}
	return c.JSON(http.StatusOK, options)
}
