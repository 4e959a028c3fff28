package formatter

import (
	"testing"
	"time"

	"github.com/alexanderramin/stint/internal/domain"
	"github.com/alexanderramin/stint/internal/stacking"
	"github.com/stretchr/testify/assert"
)

func TestFormatTimeline_Empty(t *testing.T) {
	out := stripANSI(FormatTimeline(nil, time.UTC))
	assert.Contains(t, out, "No sessions")
}

func TestFormatTimeline_RendersGroupsAndStacks(t *testing.T) {
	start := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	end := start.Add(2 * time.Hour)
	cat := domain.Category{Name: "Focus", Color: domain.ColorGreen}

	groups := []stacking.DisplayGroup{
		{
			Heading: "Tuesday, March 10, 2026",
			Stacks: []domain.StackedSession{
				{
					Title:          "Coding",
					Category:       &cat,
					Sessions:       []domain.Session{{ID: "a"}, {ID: "b"}},
					PeriodDuration: 7200,
					FirstStartTime: start,
					LastEndTime:    &end,
				},
			},
		},
	}

	out := stripANSI(FormatTimeline(groups, time.UTC))
	assert.Contains(t, out, "TUESDAY, MARCH 10, 2026")
	assert.Contains(t, out, "Coding")
	assert.Contains(t, out, "09:00 - 11:00")
	assert.Contains(t, out, "2h")
	assert.Contains(t, out, "Focus")
	assert.Contains(t, out, "×2")
}

func TestFormatTimeline_RunningStack(t *testing.T) {
	groups := []stacking.DisplayGroup{
		{
			Heading: "Sessions",
			Stacks: []domain.StackedSession{
				{
					Title:          "Live",
					Sessions:       []domain.Session{{ID: "a", IsRunning: true}},
					PeriodDuration: 600,
					FirstStartTime: time.Now(),
				},
			},
		},
	}

	out := stripANSI(FormatTimeline(groups, time.UTC))
	assert.Contains(t, out, "running")
	assert.Contains(t, out, "Uncategorized")
}
