package cli

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/stint/internal/cli/formatter"
	"github.com/alexanderramin/stint/internal/repository"
	"github.com/alexanderramin/stint/internal/service"
	"github.com/spf13/cobra"
)

func newStartCmd(app *App) *cobra.Command {
	var description, categoryID, taskID string

	cmd := &cobra.Command{
		Use:   "start TITLE",
		Short: "Start tracking a session",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			draft := service.StartDraft{Title: args[0]}
			if description != "" {
				draft.Description = &description
			}
			if categoryID != "" {
				draft.CategoryID = &categoryID
			}
			if taskID != "" {
				draft.TaskID = &taskID
			}

			s, err := app.Tracker.Start(context.Background(), app.Workspace, draft)
			if errors.Is(err, repository.ErrRunningSessionExists) {
				return fmt.Errorf("a session is already running; stop it first with 'stint stop'")
			}
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Started %s at %s (%s)\n",
				formatter.Bold(s.Title),
				s.StartTime.In(app.loc()).Format("15:04"),
				formatter.TruncID(s.ID))
			return nil
		},
	}

	cmd.Flags().StringVar(&description, "description", "", "Session description")
	cmd.Flags().StringVar(&categoryID, "category", "", "Category ID")
	cmd.Flags().StringVar(&taskID, "task", "", "Task ID")

	return cmd
}

func newStopCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "stop",
		Short: "Stop the running session",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := app.Tracker.Stop(context.Background(), app.Workspace)
			if errors.Is(err, repository.ErrNotFound) {
				return fmt.Errorf("no session is running")
			}
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Stopped %s after %s\n",
				formatter.Bold(s.Title),
				formatter.FormatSeconds(*s.DurationSeconds))
			return nil
		},
	}
}

func newStatusCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the running session, if any",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			s, err := app.Tracker.Current(ctx, app.Workspace)
			if errors.Is(err, repository.ErrNotFound) {
				fmt.Fprintln(cmd.OutOrStdout(), formatter.Dim("No session is running."))
				return nil
			}
			if err != nil {
				return err
			}

			elapsed := int(time.Since(s.StartTime).Seconds())
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s  started %s  elapsed %s\n",
				formatter.StyleGreen.Render("●"),
				formatter.Bold(s.Title),
				formatter.HumanTimestamp(s.StartTime),
				formatter.FormatSeconds(elapsed))

			if exceeded, checkErr := app.Tracker.CheckExceeded(ctx, app.Workspace); checkErr == nil && exceeded != nil {
				fmt.Fprintln(cmd.OutOrStdout(), formatter.StyleYellow.Render(
					"This session has outlived the approval window; 'stint backfill --discard-running' converts it into a request."))
			}
			return nil
		},
	}
}

func newResumeCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "resume",
		Short: "Start a new session copying the last one",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := app.Tracker.Resume(context.Background(), app.Workspace)
			if errors.Is(err, repository.ErrRunningSessionExists) {
				return fmt.Errorf("a session is already running; stop it first with 'stint stop'")
			}
			if errors.Is(err, repository.ErrNotFound) {
				return fmt.Errorf("nothing to resume: no previous session")
			}
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Resumed %s (%s)\n",
				formatter.Bold(s.Title), formatter.TruncID(s.ID))
			return nil
		},
	}
}
