// Package cli implements reportctl, the terminal front end of the report
// tracker.
package cli

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"sort"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/AloysioLvy/ReportTracker/backend/internal/client"
	"github.com/AloysioLvy/ReportTracker/backend/internal/config"
	"github.com/AloysioLvy/ReportTracker/backend/internal/models"
)

type app struct {
	client *client.Client
	out    io.Writer
	errOut io.Writer
	now    func() time.Time
}

// NewRootCmd builds the reportctl command tree.
func NewRootCmd() *cobra.Command {
	a := &app{now: time.Now}
	var endpoint string

	root := &cobra.Command{
		Use:   "reportctl",
		Short: "Track oversight, audit and review reports and their follow-up actions",
		Long: `reportctl talks to the report tracker RPC API.

Read commands fall back to a built-in demo dataset, with a warning, when the
API cannot be reached. Write commands never do.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			a.client = client.New(endpoint)
			a.out = cmd.OutOrStdout()
			a.errOut = cmd.ErrOrStderr()
		},
	}
	root.PersistentFlags().StringVar(&endpoint, "endpoint",
		config.GetEnv("REPORTCTL_ENDPOINT", client.DefaultEndpoint), "RPC endpoint URL (env REPORTCTL_ENDPOINT)")

	root.AddCommand(
		a.healthCmd(),
		a.dashboardCmd(),
		a.reportsCmd(),
		a.actionsCmd(),
	)
	return root
}

func (a *app) healthCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "health",
		Short: "Check that the API is up",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			status, err := a.client.Healthcheck(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintln(a.out, styles.Success.Render(status))
			return nil
		},
	}
}

// fallback reports whether a failed read should be answered with demo data.
// Rejections of the caller's own input are shown as errors instead.
func fallback(err error) bool {
	var rerr *client.Error
	if errors.As(err, &rerr) {
		return rerr.Code != "BAD_REQUEST" && rerr.Code != "PARSE_ERROR"
	}
	return err != nil
}

func parseID(s string) (uint, error) {
	id, err := strconv.ParseUint(s, 10, 32)
	if err != nil || id == 0 {
		return 0, fmt.Errorf("invalid id %q", s)
	}
	return uint(id), nil
}

// parseDate accepts YYYY-MM-DD (midnight UTC) or RFC 3339.
func parseDate(s string) (time.Time, error) {
	if t, err := time.Parse(dateLayout, s); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, want YYYY-MM-DD", s)
	}
	return t, nil
}

// nullableString turns a changed flag into a patch field; an empty value
// clears the column.
func nullableString(cmd *cobra.Command, name, value string) models.Optional[string] {
	if !cmd.Flags().Changed(name) {
		return models.Optional[string]{}
	}
	if value == "" {
		return models.Null[string]()
	}
	return models.Some(value)
}

func nullableDate(cmd *cobra.Command, name, value string) (models.Optional[time.Time], error) {
	if !cmd.Flags().Changed(name) {
		return models.Optional[time.Time]{}, nil
	}
	if value == "" {
		return models.Null[time.Time](), nil
	}
	t, err := parseDate(value)
	if err != nil {
		return models.Optional[time.Time]{}, err
	}
	return models.Some(t), nil
}

// fileRef records an attachment by name only; the file itself is not sent.
func fileRef(path string) (name, url string) {
	name = filepath.Base(path)
	return name, "/uploads/" + name
}

// pendingOf mirrors getPendingFollowUpActions for demo data.
func pendingOf(actions []models.FollowUpAction) []models.FollowUpAction {
	out := []models.FollowUpAction{}
	for _, a := range actions {
		if a.Status != models.FollowUpStatusCompleted {
			out = append(out, a)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		di, dj := out[i].DueDate, out[j].DueDate
		switch {
		case di == nil && dj == nil:
			return out[i].ID < out[j].ID
		case di == nil:
			return false
		case dj == nil:
			return true
		case !di.Equal(*dj):
			return di.Before(*dj)
		default:
			return out[i].ID < out[j].ID
		}
	})
	return out
}
