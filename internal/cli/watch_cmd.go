package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/stint/internal/cli/formatter"
	"github.com/alexanderramin/stint/internal/domain"
	"github.com/alexanderramin/stint/internal/repository"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

func newWatchCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Watch the running session tick in real time",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !app.interactive() {
				return fmt.Errorf("watch needs an interactive terminal")
			}

			ctx := context.Background()
			s, err := app.Tracker.Current(ctx, app.Workspace)
			if errors.Is(err, repository.ErrNotFound) {
				return fmt.Errorf("no session is running; start one with 'stint start'")
			}
			if err != nil {
				return err
			}

			exceeded, err := app.Tracker.CheckExceeded(ctx, app.Workspace)
			if err != nil {
				return err
			}

			m := newWatchModel(app, s, exceeded != nil)
			final, err := tea.NewProgram(m, tea.WithOutput(cmd.OutOrStdout())).Run()
			if err != nil {
				return err
			}

			if wm, ok := final.(watchModel); ok && wm.stopped != nil {
				fmt.Fprintf(cmd.OutOrStdout(), "Stopped %s after %s\n",
					formatter.Bold(wm.stopped.Title),
					formatter.FormatSeconds(*wm.stopped.DurationSeconds))
			}
			return nil
		},
	}
}

type watchKeyMap struct {
	Stop key.Binding
	Quit key.Binding
}

var watchKeys = watchKeyMap{
	Stop: key.NewBinding(
		key.WithKeys("s"),
		key.WithHelp("s", "stop session"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "esc", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

type watchTickMsg time.Time

func watchTick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return watchTickMsg(t)
	})
}

// watchModel renders one running session with a per-second clock. It
// never mutates the session except through TrackerService.Stop.
type watchModel struct {
	app      *App
	session  *domain.Session
	exceeded bool
	now      time.Time

	// stopped holds the closed session after the stop key is pressed.
	stopped *domain.Session
	err     error
}

func newWatchModel(app *App, s *domain.Session, exceeded bool) watchModel {
	return watchModel{app: app, session: s, exceeded: exceeded, now: time.Now()}
}

func (m watchModel) Init() tea.Cmd {
	return watchTick()
}

func (m watchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case watchTickMsg:
		m.now = time.Time(msg)
		return m, watchTick()

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, watchKeys.Stop):
			s, err := m.app.Tracker.Stop(context.Background(), m.app.Workspace)
			if err != nil {
				m.err = err
			} else {
				m.stopped = s
			}
			return m, tea.Quit

		case key.Matches(msg, watchKeys.Quit):
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m watchModel) View() string {
	if m.err != nil {
		return formatter.StyleRed.Render("Error: "+m.err.Error()) + "\n"
	}
	if m.stopped != nil {
		return ""
	}

	elapsed := int(m.now.Sub(m.session.StartTime) / time.Second)
	if elapsed < 0 {
		elapsed = 0
	}

	var b strings.Builder
	b.WriteString(formatter.Bold(m.session.Title))
	b.WriteString("\n\n")
	b.WriteString(formatter.StyleGreen.Render(formatter.FormatClock(elapsed)))
	b.WriteString("\n")
	b.WriteString(formatter.Dim("since " + m.session.StartTime.In(m.app.loc()).Format("15:04")))
	if m.exceeded {
		b.WriteString("\n\n")
		b.WriteString(formatter.StyleYellow.Render("This session has outgrown the approval window."))
		b.WriteString("\n")
		b.WriteString(formatter.Dim("Convert it with 'stint backfill --discard-running'."))
	}
	b.WriteString("\n\n")
	b.WriteString(formatter.Dim(fmt.Sprintf("%s · %s",
		watchKeys.Stop.Help().Key+" "+watchKeys.Stop.Help().Desc,
		watchKeys.Quit.Help().Key+" "+watchKeys.Quit.Help().Desc)))
	b.WriteString("\n")

	return formatter.RenderBox("Watching", b.String())
}
