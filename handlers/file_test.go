package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"legal_archive_go/models"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileDetailHandler(t *testing.T) {
	testDB := setupTestDB(t)
	fx := seedHandlerFixture(t, testDB)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/?user_name=Sarah+Johnson&user_role=Attorney", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/api/files/:id")
	c.SetParamNames("id")
	c.SetParamValues(fx.file.ID)

	require.NoError(t, FileDetailHandler(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		File          models.PhysicalFile  `json:"file"`
		AccessHistory []models.AccessEvent `json:"access_history"`
		AccessStats   struct {
			TotalAccesses int `json:"total_accesses"`
		} `json:"access_stats"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	assert.Equal(t, fx.file.ID, body.File.ID)
	// Viewing the detail logged an access event
	require.NotEmpty(t, body.AccessHistory)
	assert.Equal(t, "Sarah Johnson", body.AccessHistory[0].UserName)
	assert.Equal(t, models.AccessTypeView, body.AccessHistory[0].AccessType)
	assert.GreaterOrEqual(t, body.AccessStats.TotalAccesses, 1)
}

func TestFileDetailHandlerNotFound(t *testing.T) {
	testDB := setupTestDB(t)
	seedHandlerFixture(t, testDB)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/api/files/:id")
	c.SetParamNames("id")
	c.SetParamValues(uuid.New().String())

	err := FileDetailHandler(c)
	require.Error(t, err)
	httpErr, ok := err.(*echo.HTTPError)
	require.True(t, ok)
	assert.Equal(t, http.StatusNotFound, httpErr.Code)
}

func TestFileAccessHistoryHandler(t *testing.T) {
	testDB := setupTestDB(t)
	fx := seedHandlerFixture(t, testDB)

	event := models.AccessEvent{
		ID:              uuid.New().String(),
		FileID:          fx.file.ID,
		UserName:        "John Smith",
		UserRole:        "Paralegal",
		AccessType:      models.AccessTypeDownload,
		AccessTimestamp: fx.file.LastAccessed,
	}
	require.NoError(t, testDB.Create(&event).Error)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/api/files/:id/access-history")
	c.SetParamNames("id")
	c.SetParamValues(fx.file.ID)

	require.NoError(t, FileAccessHistoryHandler(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		FileID        string               `json:"file_id"`
		AccessHistory []models.AccessEvent `json:"access_history"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, fx.file.ID, body.FileID)
	require.Len(t, body.AccessHistory, 1)
	assert.Equal(t, "John Smith", body.AccessHistory[0].UserName)
}

func TestRecentActivityHandler(t *testing.T) {
	testDB := setupTestDB(t)
	fx := seedHandlerFixture(t, testDB)

	for i := 0; i < 3; i++ {
		event := models.AccessEvent{
			ID:              uuid.New().String(),
			FileID:          fx.file.ID,
			UserName:        "John Smith",
			UserRole:        "Paralegal",
			AccessType:      models.AccessTypeView,
			AccessTimestamp: fx.file.LastAccessed,
		}
		require.NoError(t, testDB.Create(&event).Error)
	}

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/recent-activity?limit=2", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, RecentActivityHandler(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		RecentAccesses []models.AccessEvent `json:"recent_accesses"`
		Count          int                  `json:"count"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, 2, body.Count)
	assert.Len(t, body.RecentAccesses, 2)
}
