package handlers

import (
	"errors"
	"net/http"

	"legal_archive_go/db"
	"legal_archive_go/services"

	"github.com/labstack/echo/v4"
)

var recommendationService *services.RecommendationService

// InitRecommendationService initializes the recommendation service
func InitRecommendationService() {
	recommendationService = services.NewRecommendationService(db.DB)
}

// ClientDetailHandler returns a client with their cases, payment summary
// and recent files
// GET /api/clients/:id
func ClientDetailHandler(c echo.Context) error {
	overview, err := recommendationService.ClientOverview(c.Request().Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, services.ErrClientNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "Client not found")
		}
		c.Logger().Error("Loading client overview failed: ", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to load client")
	}
	return c.JSON(http.StatusOK, overview)
}
