package cli

import (
	"context"
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/AloysioLvy/ReportTracker/backend/internal/dashboard"
	"github.com/AloysioLvy/ReportTracker/backend/internal/models"
)

const recentReports = 5

func (a *app) dashboardCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dashboard",
		Short: "Show report and follow-up action statistics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			stats, reports, pending, err := a.loadDashboard(cmd.Context())
			if err != nil {
				if !fallback(err) {
					return err
				}
				renderBanner(a.errOut, "the dashboard", err)
				reports = demoReports()
				actions := demoFollowUpActions()
				s := dashboard.Compute(reports, actions, a.now())
				stats, pending = &s, pendingOf(actions)
			}

			renderStats(a.out, stats)

			fmt.Fprintln(a.out, styles.Section.Render("Recent reports"))
			renderReports(a.out, newest(reports, recentReports))

			fmt.Fprintln(a.out, styles.Section.Render(fmt.Sprintf("Pending follow-up actions (%d)", len(pending))))
			renderActions(a.out, pending, reportTitles(reports), a.now())
			return nil
		},
	}
}

func (a *app) loadDashboard(ctx context.Context) (*dashboard.Stats, []models.Report, []models.FollowUpAction, error) {
	stats, err := a.client.GetDashboardStats(ctx)
	if err != nil {
		return nil, nil, nil, err
	}
	reports, err := a.client.GetReports(ctx, nil)
	if err != nil {
		return nil, nil, nil, err
	}
	pending, err := a.client.GetPendingFollowUpActions(ctx)
	if err != nil {
		return nil, nil, nil, err
	}
	return stats, reports, pending, nil
}

// newest returns up to n reports, most recently created first.
func newest(reports []models.Report, n int) []models.Report {
	sorted := append([]models.Report(nil), reports...)
	sort.SliceStable(sorted, func(i, j int) bool {
		if !sorted[i].CreatedAt.Equal(sorted[j].CreatedAt) {
			return sorted[i].CreatedAt.After(sorted[j].CreatedAt)
		}
		return sorted[i].ID > sorted[j].ID
	})
	if len(sorted) > n {
		sorted = sorted[:n]
	}
	return sorted
}
