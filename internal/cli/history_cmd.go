package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/stint/internal/cli/formatter"
	"github.com/alexanderramin/stint/internal/domain"
	"github.com/alexanderramin/stint/internal/interval"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// addPeriodFlags registers the shared period-selection flags.
func addPeriodFlags(fs *pflag.FlagSet, viewFlag, dateFlag *string) {
	fs.StringVar(viewFlag, "view", "day", "View mode: day, week, or month")
	fs.StringVar(dateFlag, "date", "", "Anchor date (YYYY-MM-DD, default today)")
}

func newHistoryCmd(app *App) *cobra.Command {
	var viewFlag, dateFlag string

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show stacked sessions for a day, week, or month",
		RunE: func(cmd *cobra.Command, args []string) error {
			mode, err := parseViewMode(viewFlag)
			if err != nil {
				return err
			}
			ref, err := parseRefDate(dateFlag, app.loc())
			if err != nil {
				return err
			}

			view, err := app.History.Timeline(context.Background(), app.Workspace, mode, ref)
			if err != nil {
				return err
			}

			title := fmt.Sprintf("%s view · %s",
				mode,
				view.Period.Start.In(app.loc()).Format("Jan 2, 2006"))
			fmt.Fprint(cmd.OutOrStdout(), formatter.RenderBox(title,
				formatter.FormatTimeline(view.Groups, app.loc())))
			fmt.Fprintln(cmd.OutOrStdout())
			return nil
		},
	}

	addPeriodFlags(cmd.Flags(), &viewFlag, &dateFlag)

	return cmd
}

func newStatsCmd(app *App) *cobra.Command {
	var viewFlag, dateFlag string
	var totals bool

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Summarize tracked time",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			if totals {
				ts, err := app.History.TrackerStats(ctx, app.Workspace)
				if err != nil {
					return err
				}
				fmt.Fprint(cmd.OutOrStdout(), formatter.FormatTrackerStats(ts))
				return nil
			}

			mode, err := parseViewMode(viewFlag)
			if err != nil {
				return err
			}
			ref, err := parseRefDate(dateFlag, app.loc())
			if err != nil {
				return err
			}

			view, err := app.History.Timeline(ctx, app.Workspace, mode, ref)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatPeriodStats(view.Stats, 20))
			return nil
		},
	}

	addPeriodFlags(cmd.Flags(), &viewFlag, &dateFlag)
	cmd.Flags().BoolVar(&totals, "totals", false, "Show rolling today/week/month totals and streak")

	return cmd
}

func parseViewMode(s string) (domain.ViewMode, error) {
	if !domain.ValidViewModes[s] {
		return "", fmt.Errorf("invalid view '%s': must be day, week, or month", s)
	}
	return domain.ViewMode(s), nil
}

func parseRefDate(s string, loc *time.Location) (time.Time, error) {
	if s == "" {
		return time.Now(), nil
	}
	t, err := time.ParseInLocation(interval.DateLayout, s, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date '%s': expected YYYY-MM-DD", s)
	}
	return t, nil
}
