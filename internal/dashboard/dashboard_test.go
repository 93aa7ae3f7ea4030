package dashboard

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/AloysioLvy/ReportTracker/backend/internal/models"
)

var now = time.Date(2024, 4, 20, 12, 0, 0, 0, time.UTC)

func at(t time.Time) *time.Time { return &t }

func TestIsOverdue(t *testing.T) {
	tests := []struct {
		name   string
		action models.FollowUpAction
		want   bool
	}{
		{"no due date", models.FollowUpAction{Status: models.FollowUpStatusNotStarted}, false},
		{"past and open", models.FollowUpAction{Status: models.FollowUpStatusInProgress, DueDate: at(now.Add(-time.Hour))}, true},
		{"past but completed", models.FollowUpAction{Status: models.FollowUpStatusCompleted, DueDate: at(now.Add(-time.Hour))}, false},
		{"due exactly now", models.FollowUpAction{Status: models.FollowUpStatusNotStarted, DueDate: at(now)}, false},
		{"future", models.FollowUpAction{Status: models.FollowUpStatusNotStarted, DueDate: at(now.Add(time.Hour))}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsOverdue(tt.action, now))
		})
	}
}

func TestIsOverdue_DependsOnClock(t *testing.T) {
	a := models.FollowUpAction{Status: models.FollowUpStatusNotStarted, DueDate: at(now)}
	assert.False(t, IsOverdue(a, now.Add(-time.Second)))
	assert.True(t, IsOverdue(a, now.Add(time.Second)))
}

func TestCompletionRate(t *testing.T) {
	assert.Equal(t, 0, CompletionRate(0, 0))
	assert.Equal(t, 0, CompletionRate(0, 5))
	assert.Equal(t, 33, CompletionRate(1, 3))
	assert.Equal(t, 67, CompletionRate(2, 3))
	assert.Equal(t, 50, CompletionRate(1, 2))
	assert.Equal(t, 13, CompletionRate(1, 8)) // 12.5 rounds up
	assert.Equal(t, 100, CompletionRate(4, 4))
}

func TestCompute(t *testing.T) {
	reports := []models.Report{
		{ID: 1, ReportType: models.ReportTypeOversight, Status: models.ReportStatusCompleted},
		{ID: 2, ReportType: models.ReportTypeAudit, Status: models.ReportStatusInProgress},
		{ID: 3, ReportType: models.ReportTypeReview, Status: models.ReportStatusPending},
		{ID: 4, ReportType: models.ReportTypeAudit, Status: models.ReportStatusPending},
	}
	actions := []models.FollowUpAction{
		{ID: 1, Status: models.FollowUpStatusInProgress, DueDate: at(now.AddDate(0, 0, -5))},
		{ID: 2, Status: models.FollowUpStatusNotStarted, DueDate: at(now.AddDate(0, 0, 10))},
		{ID: 3, Status: models.FollowUpStatusCompleted, DueDate: at(now.AddDate(0, 0, -30))},
	}

	s := Compute(reports, actions, now)

	assert.Equal(t, ReportStats{
		Total: 4, Pending: 2, InProgress: 1, Completed: 1,
		Oversight: 1, Audit: 2, Review: 1, CompletionRate: 25,
	}, s.Reports)
	assert.Equal(t, ActionStats{
		Total: 3, NotStarted: 1, InProgress: 1, Completed: 1, Overdue: 1, CompletionRate: 33,
	}, s.Actions)
	assert.Equal(t, now, s.GeneratedAt)
}

func TestCompute_Empty(t *testing.T) {
	s := Compute(nil, nil, now)
	assert.Zero(t, s.Reports.CompletionRate)
	assert.Zero(t, s.Actions.CompletionRate)
	assert.Zero(t, s.Actions.Overdue)
}

func TestGroup(t *testing.T) {
	actions := []models.FollowUpAction{
		{ID: 1, Status: models.FollowUpStatusInProgress, DueDate: at(now.AddDate(0, 0, -1))},
		{ID: 2, Status: models.FollowUpStatusNotStarted},
		{ID: 3, Status: models.FollowUpStatusCompleted, DueDate: at(now.AddDate(0, 0, -1))},
		{ID: 4, Status: models.FollowUpStatusInProgress},
	}

	g := Group(actions, now)

	ids := func(as []models.FollowUpAction) []uint {
		var out []uint
		for _, a := range as {
			out = append(out, a.ID)
		}
		return out
	}
	assert.Equal(t, []uint{1}, ids(g.Overdue))
	assert.Equal(t, []uint{1, 4}, ids(g.InProgress))
	assert.Equal(t, []uint{2}, ids(g.NotStarted))
	assert.Equal(t, []uint{3}, ids(g.Completed))
}
