package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/stint/internal/cli/formatter"
	"github.com/alexanderramin/stint/internal/interval"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// stintHuhTheme returns a custom huh theme using the existing Gruvbox palette.
func stintHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	// Focused state: orange accent
	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	// Blurred state: dimmed
	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

// proofForm collects a comma-separated list of proof artifact paths.
// The raw value is split by splitProofPaths afterwards.
func proofForm(value *string) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Proof artifacts (comma-separated file paths)").
				Description("This entry needs review. Attach at least one proof file.").
				Placeholder("screenshot.png, report.pdf").
				Value(value).
				Validate(validateNonEmpty),
		),
	).WithTheme(stintHuhTheme()).WithShowHelp(false)
}

// confirmDiscardForm asks whether the exceeded running session should be
// discarded in favor of the backfilled entry.
func confirmDiscardForm(title string, value *bool) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(fmt.Sprintf("Discard running session '%s'?", title)).
				Description("Its tracked time will be replaced by this entry.").
				Affirmative("Discard").
				Negative("Keep").
				Value(value),
		),
	).WithTheme(stintHuhTheme()).WithShowHelp(false)
}

func splitProofPaths(raw string) []string {
	var paths []string
	for _, p := range strings.Split(raw, ",") {
		if p = strings.TrimSpace(p); p != "" {
			paths = append(paths, p)
		}
	}
	return paths
}

func validateNonEmpty(s string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("required")
	}
	return nil
}

// parseTimestamp accepts either a full RFC 3339 timestamp or a local
// "YYYY-MM-DD HH:MM" form.
func parseTimestamp(s string, loc *time.Location) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	if t, err := time.ParseInLocation(interval.DateLayout+" 15:04", s, loc); err == nil {
		return t, nil
	}
	return time.Time{}, fmt.Errorf("invalid time '%s': expected YYYY-MM-DD HH:MM or RFC 3339", s)
}
