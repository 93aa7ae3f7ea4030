// Package dashboard derives the summary figures shown on the dashboard
// from full report and follow-up action lists. Nothing here is persisted:
// overdue in particular depends on the clock and is recomputed per call.
package dashboard

import (
	"math"
	"time"

	"github.com/AloysioLvy/ReportTracker/backend/internal/models"
)

// ReportStats counts reports per status and type.
type ReportStats struct {
	Total          int `json:"total"`
	Pending        int `json:"pending"`
	InProgress     int `json:"in_progress"`
	Completed      int `json:"completed"`
	Oversight      int `json:"oversight"`
	Audit          int `json:"audit"`
	Review         int `json:"review"`
	CompletionRate int `json:"completion_rate"`
}

// ActionStats counts follow-up actions per status. Overdue actions are
// also counted under their own status.
type ActionStats struct {
	Total          int `json:"total"`
	NotStarted     int `json:"not_started"`
	InProgress     int `json:"in_progress"`
	Completed      int `json:"completed"`
	Overdue        int `json:"overdue"`
	CompletionRate int `json:"completion_rate"`
}

// Stats is the payload of getDashboardStats.
type Stats struct {
	Reports     ReportStats `json:"reports"`
	Actions     ActionStats `json:"follow_up_actions"`
	GeneratedAt time.Time   `json:"generated_at"`
}

// Groups buckets follow-up actions the way the follow-up view lists them.
type Groups struct {
	Overdue    []models.FollowUpAction `json:"overdue"`
	InProgress []models.FollowUpAction `json:"in_progress"`
	NotStarted []models.FollowUpAction `json:"not_started"`
	Completed  []models.FollowUpAction `json:"completed"`
}

// IsOverdue reports whether a has a due date strictly before now and is
// not completed.
func IsOverdue(a models.FollowUpAction, now time.Time) bool {
	return a.DueDate != nil && a.DueDate.Before(now) && a.Status != models.FollowUpStatusCompleted
}

// CompletionRate returns completed/total as a whole percentage, rounding
// halves up. It is 0 when total is 0.
func CompletionRate(completed, total int) int {
	if total <= 0 {
		return 0
	}
	return int(math.Round(float64(completed) * 100 / float64(total)))
}

// Compute summarizes reports and actions as of now.
func Compute(reports []models.Report, actions []models.FollowUpAction, now time.Time) Stats {
	var s Stats
	s.GeneratedAt = now

	s.Reports.Total = len(reports)
	for _, r := range reports {
		switch r.Status {
		case models.ReportStatusPending:
			s.Reports.Pending++
		case models.ReportStatusInProgress:
			s.Reports.InProgress++
		case models.ReportStatusCompleted:
			s.Reports.Completed++
		}
		switch r.ReportType {
		case models.ReportTypeOversight:
			s.Reports.Oversight++
		case models.ReportTypeAudit:
			s.Reports.Audit++
		case models.ReportTypeReview:
			s.Reports.Review++
		}
	}
	s.Reports.CompletionRate = CompletionRate(s.Reports.Completed, s.Reports.Total)

	s.Actions.Total = len(actions)
	for _, a := range actions {
		switch a.Status {
		case models.FollowUpStatusNotStarted:
			s.Actions.NotStarted++
		case models.FollowUpStatusInProgress:
			s.Actions.InProgress++
		case models.FollowUpStatusCompleted:
			s.Actions.Completed++
		}
		if IsOverdue(a, now) {
			s.Actions.Overdue++
		}
	}
	s.Actions.CompletionRate = CompletionRate(s.Actions.Completed, s.Actions.Total)

	return s
}

// Group splits actions into overdue and per-status buckets, keeping the
// input order inside each bucket.
func Group(actions []models.FollowUpAction, now time.Time) Groups {
	var g Groups
	for _, a := range actions {
		if IsOverdue(a, now) {
			g.Overdue = append(g.Overdue, a)
		}
		switch a.Status {
		case models.FollowUpStatusInProgress:
			g.InProgress = append(g.InProgress, a)
		case models.FollowUpStatusNotStarted:
			g.NotStarted = append(g.NotStarted, a)
		case models.FollowUpStatusCompleted:
			g.Completed = append(g.Completed, a)
		}
	}
	return g
}
