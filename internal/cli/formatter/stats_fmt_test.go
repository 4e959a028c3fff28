package formatter

import (
	"testing"

	"github.com/alexanderramin/stint/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestFormatPeriodStats(t *testing.T) {
	secs := 5400
	st := domain.PeriodStats{
		TotalDuration: 9000,
		SessionCount:  3,
		Breakdown: []domain.CategoryDuration{
			{Name: "Focus", Duration: 7200, Color: domain.ColorGreen},
			{Name: "Email", Duration: 1800, Color: domain.ColorGray},
		},
		TimeOfDayBreakdown: map[domain.TimeOfDay]int{
			domain.TimeOfDayMorning:   2,
			domain.TimeOfDayAfternoon: 1,
		},
		BestTimeOfDay:  domain.TimeOfDayMorning,
		ShortSessions:  1,
		MediumSessions: 2,
		LongestSession: &domain.Session{Title: "Deep work", DurationSeconds: &secs},
	}

	out := stripANSI(FormatPeriodStats(st, 10))
	assert.Contains(t, out, "2h 30m across 3 sessions")
	assert.Contains(t, out, "Focus")
	assert.Contains(t, out, "80%")
	assert.Contains(t, out, "Morning (6-12)")
	assert.Contains(t, out, "★ best")
	assert.Contains(t, out, "1 short")
	assert.Contains(t, out, "Deep work")
	assert.Contains(t, out, "1h 30m")
}

func TestFormatPeriodStats_Empty(t *testing.T) {
	st := domain.PeriodStats{
		BestTimeOfDay:      domain.TimeOfDayNone,
		TimeOfDayBreakdown: map[domain.TimeOfDay]int{},
	}
	out := stripANSI(FormatPeriodStats(st, 10))
	assert.Contains(t, out, "0s across 0 sessions")
	assert.Contains(t, out, "No tracked time")
	assert.NotContains(t, out, "★ best")
}

func TestFormatTrackerStats(t *testing.T) {
	out := stripANSI(FormatTrackerStats(domain.TrackerStats{
		TodaySeconds: 3600,
		WeekSeconds:  7200,
		MonthSeconds: 10800,
		StreakDays:   4,
	}))
	assert.Contains(t, out, "Today")
	assert.Contains(t, out, "1h")
	assert.Contains(t, out, "4 day(s)")
}

func TestRenderBreakdown_SharesSumVisibly(t *testing.T) {
	out := stripANSI(RenderBreakdown([]domain.CategoryDuration{
		{Name: "A", Duration: 3000, Color: domain.ColorBlue},
		{Name: "B", Duration: 1000, Color: domain.ColorRed},
	}, 4000, 8))
	assert.Contains(t, out, "75%")
	assert.Contains(t, out, "25%")
}
