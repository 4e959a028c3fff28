package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/alexanderramin/stint/internal/cli/formatter"
	"github.com/alexanderramin/stint/internal/domain"
	"github.com/spf13/cobra"
)

func newThresholdCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "threshold",
		Short: "Show or change the workspace approval threshold",
		RunE: func(cmd *cobra.Command, args []string) error {
			policy, err := app.Entries.Policy(context.Background(), app.Workspace)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), describePolicy(policy))
			return nil
		},
	}

	cmd.AddCommand(newThresholdSetCmd(app), newThresholdClearCmd(app))

	return cmd
}

func newThresholdSetCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "set DAYS",
		Short: "Require approval for entries older than DAYS (0 for all)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			days, err := strconv.Atoi(args[0])
			if err != nil || days < 0 {
				return fmt.Errorf("invalid threshold '%s': expected a non-negative day count", args[0])
			}

			if err := app.Entries.SetThreshold(context.Background(), app.Workspace, &days); err != nil {
				return err
			}

			policy, err := app.Entries.Policy(context.Background(), app.Workspace)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), describePolicy(policy))
			return nil
		},
	}
}

func newThresholdClearCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Disable approval for backdated entries",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Entries.SetThreshold(context.Background(), app.Workspace, nil); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Threshold cleared. Backdated entries commit directly.")
			return nil
		},
	}
}

func describePolicy(p domain.ThresholdPolicy) string {
	switch p.Kind {
	case domain.ThresholdNoApproval:
		return formatter.Dim("No approval threshold. Backdated entries commit directly.")
	case domain.ThresholdImmediate:
		return "Every backdated entry requires approval."
	case domain.ThresholdAfterDays:
		unit := "days"
		if p.Days == 1 {
			unit = "day"
		}
		return fmt.Sprintf("Entries older than %s require approval.",
			formatter.Bold(fmt.Sprintf("%d %s", p.Days, unit)))
	default:
		return formatter.Dim("Threshold not resolved yet.")
	}
}
