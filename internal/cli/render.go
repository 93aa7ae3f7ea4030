package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/AloysioLvy/ReportTracker/backend/internal/dashboard"
	"github.com/AloysioLvy/ReportTracker/backend/internal/models"
)

var (
	colorAccent  = lipgloss.Color("#2563EB")
	colorSuccess = lipgloss.Color("#16A34A")
	colorWarning = lipgloss.Color("#D97706")
	colorDanger  = lipgloss.Color("#DC2626")
	colorMuted   = lipgloss.Color("#6B7280")
)

var styles = struct {
	Title      lipgloss.Style
	Section    lipgloss.Style
	Muted      lipgloss.Style
	Header     lipgloss.Style
	Cell       lipgloss.Style
	Border     lipgloss.Style
	WarningBox lipgloss.Style
	Success    lipgloss.Style
	Warning    lipgloss.Style
	Danger     lipgloss.Style
}{
	Title:   lipgloss.NewStyle().Bold(true).Foreground(colorAccent),
	Section: lipgloss.NewStyle().Bold(true).MarginTop(1),
	Muted:   lipgloss.NewStyle().Foreground(colorMuted),
	Header:  lipgloss.NewStyle().Bold(true).Padding(0, 1),
	Cell:    lipgloss.NewStyle().Padding(0, 1),
	Border:  lipgloss.NewStyle().Foreground(colorMuted),
	WarningBox: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorWarning).
		Foreground(colorWarning).
		Padding(0, 1),
	Success: lipgloss.NewStyle().Foreground(colorSuccess),
	Warning: lipgloss.NewStyle().Foreground(colorWarning),
	Danger:  lipgloss.NewStyle().Foreground(colorDanger).Bold(true),
}

const dateLayout = "2006-01-02"

// renderBanner prints the notice shown above demo data.
func renderBanner(w io.Writer, what string, err error) {
	msg := fmt.Sprintf("Could not load %s from the API. Showing demo data.\n%v", what, err)
	fmt.Fprintln(w, styles.WarningBox.Render(msg))
}

func newTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(styles.Border).
		Headers(headers...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return styles.Header
			}
			return styles.Cell
		})
}

func orDash(s *string) string {
	if s == nil || *s == "" {
		return "-"
	}
	return *s
}

func fmtDate(t *time.Time) string {
	if t == nil {
		return "-"
	}
	return t.UTC().Format(dateLayout)
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}

func humanize(s string) string {
	return strings.ReplaceAll(s, "_", " ")
}

func reportStatusText(s models.ReportStatus) string {
	switch s {
	case models.ReportStatusCompleted:
		return styles.Success.Render(humanize(string(s)))
	case models.ReportStatusInProgress:
		return styles.Warning.Render(humanize(string(s)))
	default:
		return styles.Muted.Render(humanize(string(s)))
	}
}

func actionStatusText(a models.FollowUpAction, now time.Time) string {
	if dashboard.IsOverdue(a, now) {
		return styles.Danger.Render("overdue")
	}
	switch a.Status {
	case models.FollowUpStatusCompleted:
		return styles.Success.Render(humanize(string(a.Status)))
	case models.FollowUpStatusInProgress:
		return styles.Warning.Render(humanize(string(a.Status)))
	default:
		return styles.Muted.Render(humanize(string(a.Status)))
	}
}

func renderReports(w io.Writer, reports []models.Report) {
	if len(reports) == 0 {
		fmt.Fprintln(w, styles.Muted.Render("No reports found."))
		return
	}
	t := newTable("ID", "TITLE", "TYPE", "STATUS", "UPLOADED BY", "FILE", "CREATED")
	for _, r := range reports {
		t.Row(
			strconv.FormatUint(uint64(r.ID), 10),
			truncate(r.Title, 48),
			string(r.ReportType),
			reportStatusText(r.Status),
			r.UploadedBy,
			orDash(r.FileName),
			r.CreatedAt.UTC().Format(dateLayout),
		)
	}
	fmt.Fprintln(w, t.Render())
}

func renderReportDetail(w io.Writer, r *models.ReportWithFollowUps, now time.Time) {
	fmt.Fprintln(w, styles.Title.Render(fmt.Sprintf("#%d %s", r.ID, r.Title)))
	fmt.Fprintf(w, "Type:        %s\n", r.ReportType)
	fmt.Fprintf(w, "Status:      %s\n", reportStatusText(r.Status))
	fmt.Fprintf(w, "Uploaded by: %s\n", r.UploadedBy)
	fmt.Fprintf(w, "File:        %s %s\n", orDash(r.FileName), styles.Muted.Render(orDash(r.FileURL)))
	fmt.Fprintf(w, "Created:     %s\n", r.CreatedAt.UTC().Format(time.RFC3339))
	if !r.UpdatedAt.Equal(r.CreatedAt) {
		fmt.Fprintf(w, "Updated:     %s\n", r.UpdatedAt.UTC().Format(time.RFC3339))
	}
	if r.Description != nil {
		fmt.Fprintf(w, "\n%s\n", *r.Description)
	}

	fmt.Fprintln(w, styles.Section.Render(fmt.Sprintf("Follow-up actions (%d)", len(r.FollowUpActions))))
	renderActions(w, r.FollowUpActions, nil, now)
}

// renderActions prints actions as a table; titles, when given, adds the
// parent report column.
func renderActions(w io.Writer, actions []models.FollowUpAction, titles map[uint]string, now time.Time) {
	if len(actions) == 0 {
		fmt.Fprintln(w, styles.Muted.Render("No follow-up actions."))
		return
	}

	headers := []string{"ID", "REPORT", "ACTION", "ASSIGNED TO", "STATUS", "DUE", "COMPLETED"}
	t := newTable(headers...)
	for _, a := range actions {
		report := "#" + strconv.FormatUint(uint64(a.ReportID), 10)
		if title, ok := titles[a.ReportID]; ok {
			report += " " + truncate(title, 28)
		}
		t.Row(
			strconv.FormatUint(uint64(a.ID), 10),
			report,
			truncate(a.ActionDescription, 56),
			orDash(a.AssignedTo),
			actionStatusText(a, now),
			fmtDate(a.DueDate),
			fmtDate(a.CompletionDate),
		)
	}
	fmt.Fprintln(w, t.Render())
}

// renderGroups prints the overdue bucket first, then one section per status.
func renderGroups(w io.Writer, g dashboard.Groups, titles map[uint]string, now time.Time) {
	sections := []struct {
		name    string
		actions []models.FollowUpAction
	}{
		{"Overdue", g.Overdue},
		{"In progress", g.InProgress},
		{"Not started", g.NotStarted},
		{"Completed", g.Completed},
	}
	for _, s := range sections {
		if len(s.actions) == 0 {
			continue
		}
		fmt.Fprintln(w, styles.Section.Render(fmt.Sprintf("%s (%d)", s.name, len(s.actions))))
		renderActions(w, s.actions, titles, now)
	}
}

func renderStats(w io.Writer, s *dashboard.Stats) {
	fmt.Fprintln(w, styles.Title.Render("Report tracker dashboard"))

	reports := newTable("REPORTS", "COUNT")
	reports.Row("Total", strconv.Itoa(s.Reports.Total))
	reports.Row("Pending", strconv.Itoa(s.Reports.Pending))
	reports.Row("In progress", strconv.Itoa(s.Reports.InProgress))
	reports.Row("Completed", strconv.Itoa(s.Reports.Completed))
	reports.Row("Oversight", strconv.Itoa(s.Reports.Oversight))
	reports.Row("Audit", strconv.Itoa(s.Reports.Audit))
	reports.Row("Review", strconv.Itoa(s.Reports.Review))
	reports.Row("Completion rate", fmt.Sprintf("%d%%", s.Reports.CompletionRate))

	actions := newTable("FOLLOW-UP ACTIONS", "COUNT")
	actions.Row("Total", strconv.Itoa(s.Actions.Total))
	actions.Row("Not started", strconv.Itoa(s.Actions.NotStarted))
	actions.Row("In progress", strconv.Itoa(s.Actions.InProgress))
	actions.Row("Completed", strconv.Itoa(s.Actions.Completed))
	actions.Row("Overdue", strconv.Itoa(s.Actions.Overdue))
	actions.Row("Completion rate", fmt.Sprintf("%d%%", s.Actions.CompletionRate))

	fmt.Fprintln(w, lipgloss.JoinHorizontal(lipgloss.Top, reports.Render(), "  ", actions.Render()))
}
