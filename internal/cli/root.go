package cli

import (
	"time"

	"github.com/alexanderramin/stint/internal/service"
	"github.com/spf13/cobra"
)

// App holds references to all service interfaces used by CLI commands,
// plus the ambient workspace and timezone every command operates in.
type App struct {
	Tracker    service.TrackerService
	History    service.HistoryService
	Entries    service.EntryService
	Categories service.CategoryService

	Workspace string
	Location  *time.Location

	// IsInteractive gates the huh/bubbletea surfaces; nil means never.
	IsInteractive func() bool
}

func (a *App) loc() *time.Location {
	if a.Location == nil {
		return time.Local
	}
	return a.Location
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

// NewRootCmd creates the top-level "stint" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "stint",
		Short: "Track work sessions and review where the time went",
	}

	root.AddCommand(
		newStartCmd(app),
		newStopCmd(app),
		newStatusCmd(app),
		newResumeCmd(app),
		newHistoryCmd(app),
		newStatsCmd(app),
		newBackfillCmd(app),
		newCategoryCmd(app),
		newThresholdCmd(app),
		newRequestCmd(app),
		newWatchCmd(app),
	)

	return root
}
