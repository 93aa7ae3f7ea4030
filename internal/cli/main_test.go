package cli

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/AloysioLvy/ReportTracker/backend/internal/config"
	"github.com/AloysioLvy/ReportTracker/backend/internal/controllers"
	"github.com/AloysioLvy/ReportTracker/backend/internal/database"
	"github.com/AloysioLvy/ReportTracker/backend/internal/services"
	"github.com/AloysioLvy/ReportTracker/backend/internal/validation"
)

// startServer serves the RPC API over an in-memory SQLite and returns its
// endpoint URL.
func startServer(t *testing.T) string {
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
	t.Cleanup(func() {
		srv.Close()
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return srv.URL + "/api/v1/rpc"
}

// deadEndpoint returns the URL of a server that is no longer listening.
func deadEndpoint(t *testing.T) string {
	t.Helper()
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL + "/api/v1/rpc"
	srv.Close()
	return url
}

// run executes reportctl with args against endpoint.
func run(t *testing.T, endpoint string, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	var out, errOut bytes.Buffer
	root := NewRootCmd()
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(append([]string{"--endpoint", endpoint}, args...))
	err = root.ExecuteContext(t.Context())
	return out.String(), errOut.String(), err
}

func mustRun(t *testing.T, endpoint string, args ...string) string {
	t.Helper()
	out, errOut, err := run(t, endpoint, args...)
	require.NoError(t, err, "reportctl %v: %s", args, errOut)
	return out
}

var demoNow = time.Date(2024, 4, 18, 12, 0, 0, 0, time.UTC)
