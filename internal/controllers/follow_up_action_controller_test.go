package controllers

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AloysioLvy/ReportTracker/backend/internal/dashboard"
	"github.com/AloysioLvy/ReportTracker/backend/internal/models"
)

func TestCreateFollowUpAction(t *testing.T) {
	e := newTestServer(t)
	r := createReport(t, e, "parent", models.ReportTypeAudit, "u1")

	var a models.FollowUpAction
	callOK(t, e, "createFollowUpAction", map[string]interface{}{
		"report_id":          r.ID,
		"action_description": "Perbaikan sistem pencatatan",
		"assigned_to":        "Tim Keuangan",
		"due_date":           "2024-04-15T00:00:00Z",
	}, &a)

	assert.NotZero(t, a.ID)
	assert.Equal(t, models.FollowUpStatusNotStarted, a.Status)
	assert.Nil(t, a.CompletionDate)
	require.NotNil(t, a.DueDate)
	assert.True(t, a.DueDate.Equal(time.Date(2024, 4, 15, 0, 0, 0, 0, time.UTC)))
}

func TestCreateFollowUpAction_UnknownReport(t *testing.T) {
	e := newTestServer(t)

	code, resp := call(t, e, "createFollowUpAction", map[string]interface{}{
		"report_id":          42,
		"action_description": "orphan",
	})
	assert.Equal(t, http.StatusNotFound, code)
	require.NotNil(t, resp.Error)
	assert.Equal(t, CodeNotFound, resp.Error.Code)
	assert.Contains(t, resp.Error.Message, "42")
}

func TestCreateFollowUpAction_Validation(t *testing.T) {
	e := newTestServer(t)

	code, resp := call(t, e, "createFollowUpAction", map[string]interface{}{"report_id": 1})
	assert.Equal(t, http.StatusBadRequest, code)
	require.NotNil(t, resp.Error)
	require.Len(t, resp.Error.Fields, 1)
	assert.Equal(t, "action_description", resp.Error.Fields[0].Field)
}

func TestGetFollowUpActionsByReportID(t *testing.T) {
	e := newTestServer(t)
	r := createReport(t, e, "parent", models.ReportTypeAudit, "u1")
	other := createReport(t, e, "other", models.ReportTypeAudit, "u1")

	for _, id := range []uint{r.ID, r.ID, other.ID} {
		callOK(t, e, "createFollowUpAction", map[string]interface{}{
			"report_id": id, "action_description": "x",
		}, nil)
	}

	var got []models.FollowUpAction
	callOK(t, e, "getFollowUpActionsByReportId", map[string]uint{"reportId": r.ID}, &got)
	assert.Len(t, got, 2)

	callOK(t, e, "getFollowUpActionsByReportId", map[string]uint{"reportId": 777}, &got)
	assert.Empty(t, got)

	callOK(t, e, "getFollowUpActions", nil, &got)
	assert.Len(t, got, 3)
}

func TestGetPendingFollowUpActions(t *testing.T) {
	e := newTestServer(t)
	r := createReport(t, e, "parent", models.ReportTypeAudit, "u1")

	var late, undated, early, done models.FollowUpAction
	callOK(t, e, "createFollowUpAction", map[string]interface{}{"report_id": r.ID, "action_description": "late", "due_date": "2024-06-01T00:00:00Z"}, &late)
	callOK(t, e, "createFollowUpAction", map[string]interface{}{"report_id": r.ID, "action_description": "undated"}, &undated)
	callOK(t, e, "createFollowUpAction", map[string]interface{}{"report_id": r.ID, "action_description": "early", "due_date": "2024-05-01T00:00:00Z"}, &early)
	callOK(t, e, "createFollowUpAction", map[string]interface{}{"report_id": r.ID, "action_description": "done", "due_date": "2024-04-01T00:00:00Z"}, &done)
	callOK(t, e, "updateFollowUpAction", map[string]interface{}{"id": done.ID, "status": "completed"}, nil)

	var pending []models.FollowUpAction
	callOK(t, e, "getPendingFollowUpActions", nil, &pending)

	var ids []uint
	for _, a := range pending {
		ids = append(ids, a.ID)
	}
	assert.Equal(t, []uint{early.ID, late.ID, undated.ID}, ids)
}

func TestUpdateFollowUpAction_CompletionStamp(t *testing.T) {
	e := newTestServer(t)
	r := createReport(t, e, "parent", models.ReportTypeAudit, "u1")

	var a models.FollowUpAction
	callOK(t, e, "createFollowUpAction", map[string]interface{}{"report_id": r.ID, "action_description": "x"}, &a)

	var got models.FollowUpAction
	callOK(t, e, "updateFollowUpAction", map[string]interface{}{
		"id":              a.ID,
		"status":          "completed",
		"completion_date": "2001-01-01T00:00:00Z",
	}, &got)

	assert.Equal(t, models.FollowUpStatusCompleted, got.Status)
	require.NotNil(t, got.CompletionDate)
	assert.WithinDuration(t, time.Now(), *got.CompletionDate, time.Minute)
}

func TestUpdateFollowUpAction_MissingIsNull(t *testing.T) {
	e := newTestServer(t)

	code, resp := call(t, e, "updateFollowUpAction", map[string]interface{}{"id": 3, "notes": "x"})
	assert.Equal(t, http.StatusOK, code)
	assert.Nil(t, resp.Error)
	assert.JSONEq(t, `null`, string(resp.Result))
}

func TestUpdateFollowUpAction_InvalidStatus(t *testing.T) {
	e := newTestServer(t)

	code, resp := call(t, e, "updateFollowUpAction", map[string]interface{}{"id": 3, "status": "pending"})
	assert.Equal(t, http.StatusBadRequest, code)
	require.NotNil(t, resp.Error)
	assert.Equal(t, CodeBadRequest, resp.Error.Code)
}

func TestDeleteFollowUpAction(t *testing.T) {
	e := newTestServer(t)
	r := createReport(t, e, "parent", models.ReportTypeAudit, "u1")

	var a models.FollowUpAction
	callOK(t, e, "createFollowUpAction", map[string]interface{}{"report_id": r.ID, "action_description": "x"}, &a)

	var ok bool
	callOK(t, e, "deleteFollowUpAction", map[string]uint{"id": a.ID}, &ok)
	assert.True(t, ok)
	callOK(t, e, "deleteFollowUpAction", map[string]uint{"id": a.ID}, &ok)
	assert.False(t, ok)
}

func TestGetDashboardStats(t *testing.T) {
	e := newTestServer(t)
	r := createReport(t, e, "a", models.ReportTypeAudit, "u1")
	createReport(t, e, "b", models.ReportTypeReview, "u1")

	var a models.FollowUpAction
	callOK(t, e, "createFollowUpAction", map[string]interface{}{"report_id": r.ID, "action_description": "x", "due_date": "2001-01-01T00:00:00Z"}, &a)
	callOK(t, e, "createFollowUpAction", map[string]interface{}{"report_id": r.ID, "action_description": "y"}, nil)

	var stats dashboard.Stats
	callOK(t, e, "getDashboardStats", nil, &stats)
	assert.Equal(t, 2, stats.Reports.Total)
	assert.Equal(t, 1, stats.Reports.Audit)
	assert.Equal(t, 1, stats.Reports.Review)
	assert.Equal(t, 2, stats.Actions.Total)
	assert.Equal(t, 1, stats.Actions.Overdue)
}
