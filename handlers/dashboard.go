package handlers

import (
	"net/http"

	"legal_archive_go/db"
	"legal_archive_go/models"

	"github.com/labstack/echo/v4"
)

// DashboardHandler returns the record totals and recent activity the
// dashboard renders
// GET /api/dashboard
func DashboardHandler(c echo.Context) error {
	ctx := c.Request().Context()

	var totalFiles, totalClients, totalCases, totalPayments, activeCases int64
	counts := []struct {
		model interface{}
		dest  *int64
	}{
		{&models.PhysicalFile{}, &totalFiles},
		{&models.Client{}, &totalClients},
		{&models.Case{}, &totalCases},
		{&models.Payment{}, &totalPayments},
	}
	for _, count := range counts {
		if err := db.DB.WithContext(ctx).Model(count.model).Count(count.dest).Error; err != nil {
			c.Logger().Error("Dashboard count failed: ", err)
			return echo.NewHTTPError(http.StatusInternalServerError, "Failed to load dashboard")
		}
	}
	if err := db.DB.WithContext(ctx).Model(&models.Case{}).
		Where("status = ?", models.CaseStatusOpen).
		Count(&activeCases).Error; err != nil {
		c.Logger().Error("Dashboard count failed: ", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to load dashboard")
	}

	var recentFiles []models.PhysicalFile
	if err := db.DB.WithContext(ctx).
		Order("last_accessed DESC").
		Limit(10).
		Find(&recentFiles).Error; err != nil {
		c.Logger().Error("Loading recent files failed: ", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to load dashboard")
	}

	recentAccesses, err := accessLogService.RecentAccesses(ctx, 15)
	if err != nil {
		c.Logger().Error("Loading recent accesses failed: ", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to load dashboard")
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"total_files":     totalFiles,
		"total_clients":   totalClients,
		"total_cases":     totalCases,
		"total_payments":  totalPayments,
		"active_cases":    activeCases,
		"recent_files":    recentFiles,
		"recent_accesses": recentAccesses,
	})
}
