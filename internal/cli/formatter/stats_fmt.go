package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/stint/internal/domain"
)

// timeOfDayLabels gives the display order and captions of the start-hour
// buckets.
var timeOfDayLabels = []struct {
	tod   domain.TimeOfDay
	label string
}{
	{domain.TimeOfDayMorning, "Morning (6-12)"},
	{domain.TimeOfDayAfternoon, "Afternoon (12-18)"},
	{domain.TimeOfDayEvening, "Evening (18-24)"},
	{domain.TimeOfDayNight, "Night (0-6)"},
}

// FormatPeriodStats renders the summary block shown under a history view.
func FormatPeriodStats(st domain.PeriodStats, barWidth int) string {
	var b strings.Builder

	b.WriteString(Header("Summary"))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("  %s  %s across %d sessions\n",
		Bold("Total"), FormatSeconds(st.TotalDuration), st.SessionCount))

	b.WriteString("\n")
	b.WriteString(Header("By category"))
	b.WriteString("\n")
	b.WriteString(indent(RenderBreakdown(st.Breakdown, st.TotalDuration, barWidth)))
	b.WriteString("\n")

	b.WriteString("\n")
	b.WriteString(Header("Rhythm"))
	b.WriteString("\n")
	for _, entry := range timeOfDayLabels {
		count := st.TimeOfDayBreakdown[entry.tod]
		line := fmt.Sprintf("  %-18s %d", entry.label, count)
		if entry.tod == st.BestTimeOfDay && count > 0 {
			line += "  " + StyleGreen.Render("★ best")
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	b.WriteString(fmt.Sprintf("  %s short · %s medium · %s long\n",
		Bold(fmt.Sprintf("%d", st.ShortSessions)),
		Bold(fmt.Sprintf("%d", st.MediumSessions)),
		Bold(fmt.Sprintf("%d", st.LongSessions))))

	if st.LongestSession != nil {
		b.WriteString(fmt.Sprintf("  Longest: %s %s\n",
			Bold(st.LongestSession.Title),
			Dim(fmt.Sprintf("(%s)", durationOf(st.LongestSession)))))
	}

	return strings.TrimRight(b.String(), "\n")
}

// FormatTrackerStats renders the rolling today/week/month totals and
// the active-day streak.
func FormatTrackerStats(ts domain.TrackerStats) string {
	rows := [][]string{
		{"Today", FormatSeconds(ts.TodaySeconds)},
		{"This week", FormatSeconds(ts.WeekSeconds)},
		{"This month", FormatSeconds(ts.MonthSeconds)},
		{"Streak", fmt.Sprintf("%d day(s)", ts.StreakDays)},
	}
	return RenderTable([]string{"PERIOD", "TRACKED"}, rows)
}

func durationOf(s *domain.Session) string {
	if s.DurationSeconds != nil {
		return FormatSeconds(*s.DurationSeconds)
	}
	return "still running"
}

func indent(s string) string {
	lines := strings.Split(s, "\n")
	for i := range lines {
		lines[i] = "  " + lines[i]
	}
	return strings.Join(lines, "\n")
}
