package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/AloysioLvy/ReportTracker/backend/internal/dashboard"
	"github.com/AloysioLvy/ReportTracker/backend/internal/models"
)

func (a *app) actionsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "actions",
		Aliases: []string{"action"},
		Short:   "List and manage follow-up actions",
	}
	cmd.AddCommand(
		a.actionsListCmd(),
		a.actionsPendingCmd(),
		a.actionsCreateCmd(),
		a.actionsUpdateCmd(),
		a.actionsDeleteCmd(),
	)
	return cmd
}

// titles fetches report titles for display. A failure only costs the column.
func (a *app) titles(ctx context.Context) map[uint]string {
	reports, err := a.client.GetReports(ctx, nil)
	if err != nil {
		return nil
	}
	return reportTitles(reports)
}

func (a *app) actionsListCmd() *cobra.Command {
	var (
		reportID uint
		status   string
		search   string
	)
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List follow-up actions grouped into overdue, in progress, not started and completed",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			st := models.FollowUpStatus(status)
			if st != "" && !st.Valid() {
				return fmt.Errorf("invalid status %q", status)
			}

			var (
				actions []models.FollowUpAction
				err     error
			)
			if reportID != 0 {
				actions, err = a.client.GetFollowUpActionsByReportID(cmd.Context(), reportID)
			} else {
				actions, err = a.client.GetFollowUpActions(cmd.Context())
			}

			var titles map[uint]string
			if err != nil {
				if !fallback(err) {
					return err
				}
				renderBanner(a.errOut, "follow-up actions", err)
				actions = demoFollowUpActions()
				titles = reportTitles(demoReports())
			} else {
				titles = a.titles(cmd.Context())
			}

			actions = searchActions(filterActions(actions, reportID, st), titles, search)
			if len(actions) == 0 {
				renderActions(a.out, actions, titles, a.now())
				return nil
			}
			renderGroups(a.out, dashboard.Group(actions, a.now()), titles, a.now())
			return nil
		},
	}
	cmd.Flags().UintVar(&reportID, "report", 0, "only actions of this report")
	cmd.Flags().StringVar(&status, "status", "", "filter by status (not_started, in_progress, completed)")
	cmd.Flags().StringVarP(&search, "search", "s", "", "case-insensitive text search over description, assignee and report title")
	return cmd
}

func (a *app) actionsPendingCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "pending",
		Short: "List open follow-up actions by due date",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var titles map[uint]string
			actions, err := a.client.GetPendingFollowUpActions(cmd.Context())
			if err != nil {
				if !fallback(err) {
					return err
				}
				renderBanner(a.errOut, "pending follow-up actions", err)
				actions = pendingOf(demoFollowUpActions())
				titles = reportTitles(demoReports())
			} else {
				titles = a.titles(cmd.Context())
			}
			renderActions(a.out, actions, titles, a.now())
			return nil
		},
	}
}

func (a *app) actionsCreateCmd() *cobra.Command {
	var in models.CreateFollowUpActionInput
	var assignedTo, due, notes string
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Add a follow-up action to a report",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if assignedTo != "" {
				in.AssignedTo = &assignedTo
			}
			if notes != "" {
				in.Notes = &notes
			}
			if due != "" {
				t, err := parseDate(due)
				if err != nil {
					return err
				}
				in.DueDate = &t
			}

			created, err := a.client.CreateFollowUpAction(cmd.Context(), &in)
			if err != nil {
				return err
			}
			fmt.Fprintf(a.out, "Created follow-up action #%d\n", created.ID)
			renderActions(a.out, []models.FollowUpAction{*created}, nil, a.now())
			return nil
		},
	}
	cmd.Flags().UintVar(&in.ReportID, "report", 0, "id of the parent report")
	cmd.Flags().StringVar(&in.ActionDescription, "description", "", "what has to be done")
	cmd.Flags().StringVar(&assignedTo, "assigned-to", "", "person or team responsible")
	cmd.Flags().StringVar(&due, "due", "", "due date, YYYY-MM-DD")
	cmd.Flags().StringVar(&notes, "notes", "", "free-text notes")
	_ = cmd.MarkFlagRequired("report")
	_ = cmd.MarkFlagRequired("description")
	return cmd
}

func (a *app) actionsUpdateCmd() *cobra.Command {
	var desc, assignedTo, status, due, completed, notes string
	cmd := &cobra.Command{
		Use:   "update ID",
		Short: "Change fields of a follow-up action; pass an empty value to clear a nullable field",
		Long: `Change fields of a follow-up action.

Setting --status completed stamps the completion date with the current time,
overriding --completed. Moving away from completed keeps the date; clear it
with --completed "".`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			in := &models.UpdateFollowUpActionInput{
				ID:         id,
				AssignedTo: nullableString(cmd, "assigned-to", assignedTo),
				Notes:      nullableString(cmd, "notes", notes),
			}
			if cmd.Flags().Changed("description") {
				in.ActionDescription = models.Some(desc)
			}
			if cmd.Flags().Changed("status") {
				in.Status = models.Some(models.FollowUpStatus(status))
			}
			if in.DueDate, err = nullableDate(cmd, "due", due); err != nil {
				return err
			}
			if in.CompletionDate, err = nullableDate(cmd, "completed", completed); err != nil {
				return err
			}

			updated, err := a.client.UpdateFollowUpAction(cmd.Context(), in)
			if err != nil {
				return err
			}
			if updated == nil {
				return fmt.Errorf("follow-up action %d not found", id)
			}
			fmt.Fprintf(a.out, "Updated follow-up action #%d\n", updated.ID)
			renderActions(a.out, []models.FollowUpAction{*updated}, nil, a.now())
			return nil
		},
	}
	cmd.Flags().StringVar(&desc, "description", "", "new description")
	cmd.Flags().StringVar(&assignedTo, "assigned-to", "", "person or team responsible")
	cmd.Flags().StringVar(&status, "status", "", "not_started, in_progress or completed")
	cmd.Flags().StringVar(&due, "due", "", "due date, YYYY-MM-DD")
	cmd.Flags().StringVar(&completed, "completed", "", "completion date, YYYY-MM-DD")
	cmd.Flags().StringVar(&notes, "notes", "", "free-text notes")
	return cmd
}

func (a *app) actionsDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete ID",
		Short: "Delete a follow-up action",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			ok, err := a.client.DeleteFollowUpAction(cmd.Context(), id)
			if err != nil {
				return err
			}
			if !ok {
				return fmt.Errorf("follow-up action %d not found", id)
			}
			fmt.Fprintf(a.out, "Deleted follow-up action #%d\n", id)
			return nil
		},
	}
}
