package cli

import (
	"strings"

	"github.com/AloysioLvy/ReportTracker/backend/internal/models"
)

func containsFold(s, term string) bool {
	return strings.Contains(strings.ToLower(s), term)
}

func containsFoldPtr(s *string, term string) bool {
	return s != nil && containsFold(*s, term)
}

// searchReports keeps reports whose title, uploader or description contain
// term, ignoring case. An empty term keeps everything.
func searchReports(reports []models.Report, term string) []models.Report {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return reports
	}
	out := []models.Report{}
	for _, r := range reports {
		if containsFold(r.Title, term) || containsFold(r.UploadedBy, term) || containsFoldPtr(r.Description, term) {
			out = append(out, r)
		}
	}
	return out
}

// searchActions matches the description, assignee or parent report title.
func searchActions(actions []models.FollowUpAction, titles map[uint]string, term string) []models.FollowUpAction {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return actions
	}
	out := []models.FollowUpAction{}
	for _, a := range actions {
		if containsFold(a.ActionDescription, term) || containsFoldPtr(a.AssignedTo, term) || containsFold(titles[a.ReportID], term) {
			out = append(out, a)
		}
	}
	return out
}

// filterReports applies the getReports filters locally, for demo data.
func filterReports(reports []models.Report, f *models.GetReportsInput) []models.Report {
	out := []models.Report{}
	for _, r := range reports {
		if f.ReportType != "" && r.ReportType != f.ReportType {
			continue
		}
		if f.Status != "" && r.Status != f.Status {
			continue
		}
		if f.UploadedBy != "" && r.UploadedBy != f.UploadedBy {
			continue
		}
		out = append(out, r)
	}
	return out
}

func filterActions(actions []models.FollowUpAction, reportID uint, status models.FollowUpStatus) []models.FollowUpAction {
	out := []models.FollowUpAction{}
	for _, a := range actions {
		if reportID != 0 && a.ReportID != reportID {
			continue
		}
		if status != "" && a.Status != status {
			continue
		}
		out = append(out, a)
	}
	return out
}

func reportTitles(reports []models.Report) map[uint]string {
	titles := make(map[uint]string, len(reports))
	for _, r := range reports {
		titles[r.ID] = r.Title
	}
	return titles
}
