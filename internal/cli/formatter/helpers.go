package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/stint/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// RenderBox wraps content in a rounded-border box with an optional title.
func RenderBox(title string, content string) string {
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorDim).
		PaddingLeft(2).
		PaddingRight(2).
		PaddingTop(1).
		PaddingBottom(1)

	if title != "" {
		titleRendered := StyleHeader.Render(strings.ToUpper(title))
		inner := titleRendered + "\n\n" + content
		return boxStyle.Render(inner)
	}

	return boxStyle.Render(content)
}

// FormatSeconds converts raw seconds into human-friendly format like
// "2h 15m" or "45m" or "30s".
func FormatSeconds(secs int) string {
	if secs <= 0 {
		return "0s"
	}
	h := secs / 3600
	m := (secs % 3600) / 60
	s := secs % 60
	switch {
	case h > 0 && m > 0:
		return fmt.Sprintf("%dh %dm", h, m)
	case h > 0:
		return fmt.Sprintf("%dh", h)
	case m > 0:
		return fmt.Sprintf("%dm", m)
	default:
		return fmt.Sprintf("%ds", s)
	}
}

// FormatClock renders seconds as hh:mm:ss for the live watch view.
func FormatClock(secs int) string {
	if secs < 0 {
		secs = 0
	}
	return fmt.Sprintf("%02d:%02d:%02d", secs/3600, (secs%3600)/60, secs%60)
}

// TimeRange renders a local start-end range like "09:00 - 11:30". An
// open end renders as "09:00 - now".
func TimeRange(start time.Time, end *time.Time, loc *time.Location) string {
	from := start.In(loc).Format("15:04")
	if end == nil {
		return from + " - " + StyleGreen.Render("now")
	}
	return from + " - " + end.In(loc).Format("15:04")
}

// HumanDate returns a human-friendly absolute date string.
func HumanDate(t time.Time) string {
	now := time.Now()
	y1, m1, d1 := now.Date()
	y2, m2, d2 := t.Date()

	if y1 == y2 && m1 == m2 && d1 == d2 {
		return "Today"
	}
	yesterday := now.AddDate(0, 0, -1)
	y3, m3, d3 := yesterday.Date()
	if y2 == y3 && m2 == m3 && d2 == d3 {
		return "Yesterday"
	}
	return t.Format("Jan 2, 2006")
}

// HumanTimestamp returns a human-friendly relative timestamp string.
func HumanTimestamp(t time.Time) string {
	now := time.Now()
	diff := now.Sub(t)

	switch {
	case diff < 0:
		return HumanDate(t)
	case diff < time.Minute:
		return "Just now"
	case diff < time.Hour:
		return fmt.Sprintf("%dm ago", int(diff.Minutes()))
	case diff < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(diff.Hours()))
	default:
		return HumanDate(t)
	}
}

// StatusPill returns a colored indicator for an approval request status.
func StatusPill(status domain.RequestStatus) string {
	switch status {
	case domain.RequestPending:
		return StyleYellow.Render("○ Pending")
	case domain.RequestApproved:
		return StyleGreen.Render("✔ Approved")
	case domain.RequestRejected:
		return StyleRed.Render("✖ Rejected")
	default:
		return StyleDim.Render(string(status))
	}
}

// TruncID returns the first 8 characters of an ID, dimmed.
func TruncID(id string) string {
	if len(id) > 8 {
		id = id[:8]
	}
	return StyleDim.Render(id)
}
