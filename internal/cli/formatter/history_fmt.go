package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/stint/internal/domain"
	"github.com/alexanderramin/stint/internal/stacking"
)

// FormatTimeline renders the display groups of one history period:
// each heading, then one line per stack with its time range, duration,
// category, and collapsed-session count.
func FormatTimeline(groups []stacking.DisplayGroup, loc *time.Location) string {
	if len(groups) == 0 {
		return Dim("No sessions in this period.")
	}

	var b strings.Builder
	for gi, g := range groups {
		b.WriteString(Header(g.Heading))
		b.WriteString("\n")
		for _, st := range g.Stacks {
			b.WriteString(formatStackLine(st, loc))
			b.WriteString("\n")
		}
		if gi < len(groups)-1 {
			b.WriteString("\n")
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

func formatStackLine(st domain.StackedSession, loc *time.Location) string {
	var parts []string

	title := Bold(st.Title)
	if st.IsActive() {
		title += " " + StyleGreen.Render("● running")
	}
	parts = append(parts, title)

	parts = append(parts, Dim(TimeRange(st.FirstStartTime, st.LastEndTime, loc)))
	parts = append(parts, FormatSeconds(st.PeriodDuration))
	parts = append(parts, CategoryDot(st.Category))

	if n := st.SessionCount(); n > 1 {
		parts = append(parts, Dim(fmt.Sprintf("×%d", n)))
	}
	if st.Task != nil {
		parts = append(parts, StylePurple.Render("◆ "+st.Task.Name))
	}

	return "  " + strings.Join(parts, "  ")
}
