package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/alexanderramin/stint/internal/approval"
	"github.com/alexanderramin/stint/internal/cli/formatter"
	"github.com/alexanderramin/stint/internal/repository"
	"github.com/alexanderramin/stint/internal/service"
	"github.com/spf13/cobra"
)

func newBackfillCmd(app *App) *cobra.Command {
	var (
		title, description, categoryID, taskID string
		startStr, endStr                       string
		proofs                                 []string
		discardRunning                         bool
	)

	cmd := &cobra.Command{
		Use:   "backfill",
		Short: "Record a past session, subject to the approval threshold",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			start, err := parseTimestamp(startStr, app.loc())
			if err != nil {
				return err
			}
			end, err := parseTimestamp(endStr, app.loc())
			if err != nil {
				return err
			}

			in := service.BackfillInput{
				Title:      title,
				StartTime:  start,
				EndTime:    end,
				ProofPaths: proofs,
			}
			if description != "" {
				in.Description = &description
			}
			if categoryID != "" {
				in.CategoryID = &categoryID
			}
			if taskID != "" {
				in.TaskID = &taskID
			}

			if discardRunning {
				running, err := app.Tracker.Current(ctx, app.Workspace)
				if errors.Is(err, repository.ErrNotFound) {
					return fmt.Errorf("no session is running to discard")
				}
				if err != nil {
					return err
				}
				if app.interactive() {
					var confirmed bool
					if err := confirmDiscardForm(running.Title, &confirmed).Run(); err != nil {
						return err
					}
					if !confirmed {
						fmt.Fprintln(cmd.OutOrStdout(), formatter.Dim("Kept the running session."))
						return nil
					}
				}
				in.DiscardRunning = running
			}

			res, err := app.Entries.Backfill(ctx, app.Workspace, in)
			if errors.Is(err, approval.ErrProofRequired) && app.interactive() {
				var raw string
				if ferr := proofForm(&raw).Run(); ferr != nil {
					return ferr
				}
				in.ProofPaths = splitProofPaths(raw)
				res, err = app.Entries.Backfill(ctx, app.Workspace, in)
			}
			if errors.Is(err, approval.ErrProofRequired) {
				return fmt.Errorf("this entry needs review; attach proof with --proof FILE")
			}
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if res.ApprovalRequired {
				fmt.Fprintf(out, "Filed approval request %s for %s %s\n",
					formatter.TruncID(res.Request.ID),
					formatter.Bold(res.Request.Title),
					formatter.StatusPill(res.Request.Status))
				fmt.Fprintln(out, formatter.Dim("Review it with 'stint requests'."))
				return nil
			}

			fmt.Fprintf(out, "Recorded %s, %s on %s\n",
				formatter.Bold(res.Session.Title),
				formatter.FormatSeconds(*res.Session.DurationSeconds),
				formatter.HumanDate(res.Session.StartTime.In(app.loc())))
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "Session title")
	cmd.Flags().StringVar(&startStr, "start", "", "Start time (YYYY-MM-DD HH:MM)")
	cmd.Flags().StringVar(&endStr, "end", "", "End time (YYYY-MM-DD HH:MM)")
	cmd.Flags().StringVar(&description, "description", "", "Session description")
	cmd.Flags().StringVar(&categoryID, "category", "", "Category ID")
	cmd.Flags().StringVar(&taskID, "task", "", "Task ID")
	cmd.Flags().StringArrayVar(&proofs, "proof", nil, "Proof artifact path (repeatable)")
	cmd.Flags().BoolVar(&discardRunning, "discard-running", false, "Discard the exceeded running session in favor of this entry")
	_ = cmd.MarkFlagRequired("title")
	_ = cmd.MarkFlagRequired("start")
	_ = cmd.MarkFlagRequired("end")

	return cmd
}
