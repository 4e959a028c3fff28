package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/alexanderramin/stint/internal/cli/formatter"
	"github.com/alexanderramin/stint/internal/domain"
	"github.com/alexanderramin/stint/internal/repository"
	"github.com/alexanderramin/stint/internal/service"
	"github.com/spf13/cobra"
)

func newRequestCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "requests",
		Aliases: []string{"request", "req"},
		Short:   "Review pending backfill approval requests",
	}

	cmd.AddCommand(
		newRequestListCmd(app),
		newRequestApproveCmd(app),
		newRequestRejectCmd(app),
	)

	// Bare "stint requests" lists.
	cmd.RunE = newRequestListCmd(app).RunE

	return cmd
}

func newRequestListCmd(app *App) *cobra.Command {
	var statusFlag string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List approval requests",
		RunE: func(cmd *cobra.Command, args []string) error {
			status, err := parseStatusFilter(statusFlag)
			if err != nil {
				return err
			}

			reqs, err := app.Entries.ListRequests(context.Background(), app.Workspace, status)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(reqs) == 0 {
				fmt.Fprintln(out, formatter.Dim("No approval requests."))
				return nil
			}

			rows := make([][]string, 0, len(reqs))
			for _, r := range reqs {
				rows = append(rows, []string{
					formatter.TruncID(r.ID),
					r.Title,
					formatter.TimeRange(r.StartTime, &r.EndTime, app.loc()),
					formatter.HumanDate(r.StartTime.In(app.loc())),
					fmt.Sprintf("%d", len(r.ProofPaths)),
					formatter.StatusPill(r.Status),
				})
			}
			fmt.Fprint(out, formatter.RenderTable(
				[]string{"ID", "Title", "Time", "Date", "Proof", "Status"}, rows))
			return nil
		},
	}

	cmd.Flags().StringVar(&statusFlag, "status", "", "Filter by status: pending, approved, or rejected")

	return cmd
}

func newRequestApproveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "approve ID",
		Short: "Approve a pending request and record its session",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := app.Entries.Approve(context.Background(), args[0])
			if errors.Is(err, repository.ErrNotFound) {
				return fmt.Errorf("no request with ID '%s'", args[0])
			}
			if errors.Is(err, service.ErrRequestNotPending) {
				return fmt.Errorf("request '%s' has already been resolved", args[0])
			}
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Approved. Recorded %s, %s on %s\n",
				formatter.Bold(s.Title),
				formatter.FormatSeconds(*s.DurationSeconds),
				formatter.HumanDate(s.StartTime.In(app.loc())))
			return nil
		},
	}
}

func newRequestRejectCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "reject ID",
		Short: "Reject a pending request",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			err := app.Entries.Reject(context.Background(), args[0])
			if errors.Is(err, repository.ErrNotFound) {
				return fmt.Errorf("no request with ID '%s'", args[0])
			}
			if errors.Is(err, service.ErrRequestNotPending) {
				return fmt.Errorf("request '%s' has already been resolved", args[0])
			}
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Rejected request %s\n", formatter.TruncID(args[0]))
			return nil
		},
	}
}

func parseStatusFilter(s string) (string, error) {
	if s == "" {
		return "", nil
	}
	status := strings.ToLower(strings.TrimSpace(s))
	switch domain.RequestStatus(status) {
	case domain.RequestPending, domain.RequestApproved, domain.RequestRejected:
		return status, nil
	}
	return "", fmt.Errorf("invalid status '%s': must be pending, approved, or rejected", s)
}
