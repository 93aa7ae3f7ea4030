package client

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/AloysioLvy/ReportTracker/backend/internal/config"
	"github.com/AloysioLvy/ReportTracker/backend/internal/controllers"
	"github.com/AloysioLvy/ReportTracker/backend/internal/database"
	"github.com/AloysioLvy/ReportTracker/backend/internal/models"
	"github.com/AloysioLvy/ReportTracker/backend/internal/services"
	"github.com/AloysioLvy/ReportTracker/backend/internal/validation"
)

// newTestClient runs the full RPC stack over an in-memory SQLite.
func newTestClient(t *testing.T) *Client {
	t.Helper()
	db, err := database.Connect(&config.Config{DBDriver: config.DriverSQLite, DBPath: ":memory:", DBLogLevel: "silent"})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	e := echo.New()
	e.Validator = validation.New()
	controllers.NewRPCController(zap.NewNop(),
		controllers.NewHealthController(),
		controllers.NewReportController(services.NewReportService(db)),
		controllers.NewFollowUpActionController(services.NewFollowUpActionService(db)),
		controllers.NewDashboardController(services.NewDashboardService(db)),
	).Register(e.Group("/api/v1"))

	srv := httptest.NewServer(e)
	c := New(srv.URL + "/api/v1/rpc")
	t.Cleanup(func() {
		c.http.CloseIdleConnections()
		srv.Close()
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return c
}

func TestClient_ReportLifecycle(t *testing.T) {
	c := newTestClient(t)
	ctx := t.Context()

	status, err := c.Healthcheck(ctx)
	require.NoError(t, err)
	assert.Equal(t, "ok", status)

	r, err := c.CreateReport(ctx, &models.CreateReportInput{
		Title: "Audit Sistem IT Internal", ReportType: models.ReportTypeAudit, UploadedBy: "Sari Indah",
	})
	require.NoError(t, err)
	assert.Equal(t, models.ReportStatusPending, r.Status)

	updated, err := c.UpdateReport(ctx, &models.UpdateReportInput{ID: r.ID, Status: models.Some(models.ReportStatusInProgress)})
	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, models.ReportStatusInProgress, updated.Status)

	due := time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC)
	a, err := c.CreateFollowUpAction(ctx, &models.CreateFollowUpActionInput{ReportID: r.ID, ActionDescription: "Update antivirus", DueDate: &due})
	require.NoError(t, err)

	full, err := c.GetReportByID(ctx, r.ID)
	require.NoError(t, err)
	require.NotNil(t, full)
	require.Len(t, full.FollowUpActions, 1)
	assert.Equal(t, a.ID, full.FollowUpActions[0].ID)

	pending, err := c.GetPendingFollowUpActions(ctx)
	require.NoError(t, err)
	assert.Len(t, pending, 1)

	stats, err := c.GetDashboardStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, stats.Reports.InProgress)
	assert.Equal(t, 1, stats.Actions.NotStarted)

	ok, err := c.DeleteReport(ctx, r.ID)
	require.NoError(t, err)
	assert.True(t, ok)

	all, err := c.GetFollowUpActions(ctx)
	require.NoError(t, err)
	assert.NotNil(t, all)
	assert.Empty(t, all)
}

func TestClient_NotFoundIsNil(t *testing.T) {
	c := newTestClient(t)

	r, err := c.GetReportByID(t.Context(), 12)
	require.NoError(t, err)
	assert.Nil(t, r)

	a, err := c.UpdateFollowUpAction(t.Context(), &models.UpdateFollowUpActionInput{ID: 3, Notes: models.Some("x")})
	require.NoError(t, err)
	assert.Nil(t, a)

	ok, err := c.DeleteFollowUpAction(t.Context(), 3)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestClient_ServerErrors(t *testing.T) {
	c := newTestClient(t)

	_, err := c.CreateFollowUpAction(t.Context(), &models.CreateFollowUpActionInput{ReportID: 9, ActionDescription: "x"})
	var rerr *Error
	require.True(t, errors.As(err, &rerr))
	assert.Equal(t, "NOT_FOUND", rerr.Code)
	assert.Equal(t, http.StatusNotFound, rerr.Status)

	_, err = c.CreateReport(t.Context(), &models.CreateReportInput{Title: "t"})
	require.True(t, errors.As(err, &rerr))
	assert.Equal(t, "BAD_REQUEST", rerr.Code)
	assert.NotEmpty(t, rerr.Fields)
}

func TestClient_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	c := New(url)
	ctx, cancel := context.WithTimeout(t.Context(), 2*time.Second)
	defer cancel()

	_, err := c.GetReports(ctx, nil)
	assert.Error(t, err)
}
