package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/AloysioLvy/ReportTracker/backend/internal/models"
)

func (a *app) reportsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "reports",
		Aliases: []string{"report"},
		Short:   "List and manage reports",
	}
	cmd.AddCommand(
		a.reportsListCmd(),
		a.reportsShowCmd(),
		a.reportsCreateCmd(),
		a.reportsUpdateCmd(),
		a.reportsDeleteCmd(),
	)
	return cmd
}

func (a *app) reportsListCmd() *cobra.Command {
	var reportType, status, uploadedBy, search string
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List reports, optionally filtered",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			filter := &models.GetReportsInput{
				ReportType: models.ReportType(reportType),
				Status:     models.ReportStatus(status),
				UploadedBy: uploadedBy,
			}
			reports, err := a.client.GetReports(cmd.Context(), filter)
			if err != nil {
				if !fallback(err) {
					return err
				}
				renderBanner(a.errOut, "reports", err)
				reports = filterReports(demoReports(), filter)
			}
			renderReports(a.out, searchReports(reports, search))
			return nil
		},
	}
	cmd.Flags().StringVar(&reportType, "type", "", "filter by type (oversight, audit, review)")
	cmd.Flags().StringVar(&status, "status", "", "filter by status (pending, in_progress, completed)")
	cmd.Flags().StringVar(&uploadedBy, "uploaded-by", "", "filter by uploader, exact match")
	cmd.Flags().StringVarP(&search, "search", "s", "", "case-insensitive text search over title, uploader and description")
	return cmd
}

func (a *app) reportsShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show ID",
		Short: "Show a report with its follow-up actions",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			report, err := a.client.GetReportByID(cmd.Context(), id)
			if err != nil {
				if !fallback(err) {
					return err
				}
				renderBanner(a.errOut, "the report", err)
				report = demoReport(id)
			}
			if report == nil {
				return fmt.Errorf("report %d not found", id)
			}
			renderReportDetail(a.out, report, a.now())
			return nil
		},
	}
}

func demoReport(id uint) *models.ReportWithFollowUps {
	for _, r := range demoReports() {
		if r.ID == id {
			return &models.ReportWithFollowUps{
				Report:          r,
				FollowUpActions: filterActions(demoFollowUpActions(), id, ""),
			}
		}
	}
	return nil
}

func (a *app) reportsCreateCmd() *cobra.Command {
	var (
		in   models.CreateReportInput
		desc string
		file string
	)
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a report; it starts as pending",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if desc != "" {
				in.Description = &desc
			}
			if file != "" {
				name, url := fileRef(file)
				in.FileName, in.FileURL = &name, &url
			}
			r, err := a.client.CreateReport(cmd.Context(), &in)
			if err != nil {
				return err
			}
			fmt.Fprintf(a.out, "Created report #%d\n", r.ID)
			renderReports(a.out, []models.Report{*r})
			return nil
		},
	}
	cmd.Flags().StringVar(&in.Title, "title", "", "report title")
	cmd.Flags().StringVar((*string)(&in.ReportType), "type", "", "oversight, audit or review")
	cmd.Flags().StringVar(&in.UploadedBy, "uploaded-by", "", "name of the uploader")
	cmd.Flags().StringVar(&desc, "description", "", "free-text description")
	cmd.Flags().StringVar(&file, "file", "", "attachment to reference (only its name is recorded)")
	_ = cmd.MarkFlagRequired("title")
	_ = cmd.MarkFlagRequired("type")
	_ = cmd.MarkFlagRequired("uploaded-by")
	return cmd
}

func (a *app) reportsUpdateCmd() *cobra.Command {
	var title, desc, reportType, status, file string
	cmd := &cobra.Command{
		Use:   "update ID",
		Short: "Change fields of a report; pass an empty value to clear a nullable field",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			in := &models.UpdateReportInput{
				ID:          id,
				Description: nullableString(cmd, "description", desc),
			}
			if cmd.Flags().Changed("title") {
				in.Title = models.Some(title)
			}
			if cmd.Flags().Changed("type") {
				in.ReportType = models.Some(models.ReportType(reportType))
			}
			if cmd.Flags().Changed("status") {
				in.Status = models.Some(models.ReportStatus(status))
			}
			if cmd.Flags().Changed("file") {
				if file == "" {
					in.FileName, in.FileURL = models.Null[string](), models.Null[string]()
				} else {
					name, url := fileRef(file)
					in.FileName, in.FileURL = models.Some(name), models.Some(url)
				}
			}

			r, err := a.client.UpdateReport(cmd.Context(), in)
			if err != nil {
				return err
			}
			if r == nil {
				return fmt.Errorf("report %d not found", id)
			}
			fmt.Fprintf(a.out, "Updated report #%d\n", r.ID)
			renderReports(a.out, []models.Report{*r})
			return nil
		},
	}
	cmd.Flags().StringVar(&title, "title", "", "new title")
	cmd.Flags().StringVar(&desc, "description", "", "new description")
	cmd.Flags().StringVar(&reportType, "type", "", "oversight, audit or review")
	cmd.Flags().StringVar(&status, "status", "", "pending, in_progress or completed")
	cmd.Flags().StringVar(&file, "file", "", "attachment to reference")
	return cmd
}

func (a *app) reportsDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete ID",
		Short: "Delete a report and all of its follow-up actions",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			ok, err := a.client.DeleteReport(cmd.Context(), id)
			if err != nil {
				return err
			}
			if !ok {
				return fmt.Errorf("report %d not found", id)
			}
			fmt.Fprintf(a.out, "Deleted report #%d\n", id)
			return nil
		},
	}
}
