package handlers

import (
	"errors"
	"net/http"

	"legal_archive_go/db"
	"legal_archive_go/models"
	"legal_archive_go/services"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

var accessLogService *services.AccessLogService

// InitAccessLogService initializes the file access log service
func InitAccessLogService() {
	accessLogService = services.NewAccessLogService(db.DB)
}

func accessContextFromRequest(c echo.Context) services.AccessContext {
	return services.AccessContext{
		UserName:  c.QueryParam("user_name"),
		UserRole:  c.QueryParam("user_role"),
		IPAddress: c.RealIP(),
		UserAgent: c.Request().UserAgent(),
	}
}

// FileDetailHandler returns one physical file with its access history and
// stats, logging the consultation as a view access event
// GET /api/files/:id
func FileDetailHandler(c echo.Context) error {
	fileID := c.Param("id")

	var file models.PhysicalFile
	if err := db.DB.WithContext(c.Request().Context()).First(&file, "id = ?", fileID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "File not found")
		}
		c.Logger().Error("Loading file failed: ", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to load file")
	}

	if _, err := accessLogService.RecordAccess(c.Request().Context(), fileID, models.AccessTypeView, accessContextFromRequest(c)); err != nil {
		// A failed log entry should not block the detail view
		c.Logger().Warn("Recording file access failed: ", err)
	}

	history, err := accessLogService.FileAccessHistory(c.Request().Context(), fileID)
	if err != nil {
		c.Logger().Error("Loading access history failed: ", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to load access history")
	}
	stats, err := accessLogService.FileAccessStats(c.Request().Context(), fileID)
	if err != nil {
		c.Logger().Error("Loading access stats failed: ", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to load access stats")
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"file":           file,
		"access_history": history,
		"access_stats":   stats,
	})
}

// FileAccessHistoryHandler returns the access history and stats for a file
// GET /api/files/:id/access-history
func FileAccessHistoryHandler(c echo.Context) error {
	fileID := c.Param("id")

	history, err := accessLogService.FileAccessHistory(c.Request().Context(), fileID)
	if err != nil {
		c.Logger().Error("Loading access history failed: ", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to load access history")
	}
	stats, err := accessLogService.FileAccessStats(c.Request().Context(), fileID)
	if err != nil {
		c.Logger().Error("Loading access stats failed: ", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to load access stats")
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"file_id":        fileID,
		"access_history": history,
		"access_stats":   stats,
	})
}

// RecentActivityHandler returns the latest file access events
// GET /api/recent-activity?limit=20
func RecentActivityHandler(c echo.Context) error {
	limit := parseLimit(c, "limit", 20)

	events, err := accessLogService.RecentAccesses(c.Request().Context(), limit)
	if err != nil {
		c.Logger().Error("Loading recent activity failed: ", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to load recent activity")
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"recent_accesses": events,
		"count":           len(events),
	})
}
