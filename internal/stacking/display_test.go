package stacking

import (
	"testing"
	"time"

	"github.com/alexanderramin/stint/internal/domain"
	"github.com/alexanderramin/stint/internal/interval"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGroupForDisplay_DayViewSingleHeading(t *testing.T) {
	loc := time.UTC
	s := makeSession("s-1", "Writing",
		time.Date(2025, 3, 10, 9, 0, 0, 0, loc),
		time.Date(2025, 3, 10, 10, 0, 0, 0, loc))
	asOf := time.Date(2025, 3, 11, 0, 0, 0, 0, loc)
	day, err := interval.Day("2025-03-10", loc)
	require.NoError(t, err)

	stacks := Stack([]domain.Session{s}, domain.ViewDay, day, Lookup{}, loc, asOf)
	groups := GroupForDisplay(stacks, domain.ViewDay, loc)

	require.Len(t, groups, 1)
	assert.Equal(t, "Sessions", groups[0].Heading)
}

func TestGroupForDisplay_WeekViewHeadingPerDay(t *testing.T) {
	loc := time.UTC
	mon := makeSession("s-1", "Writing",
		time.Date(2025, 3, 10, 9, 0, 0, 0, loc),
		time.Date(2025, 3, 10, 10, 0, 0, 0, loc))
	tue := makeSession("s-2", "Writing",
		time.Date(2025, 3, 11, 9, 0, 0, 0, loc),
		time.Date(2025, 3, 11, 10, 0, 0, 0, loc))
	asOf := time.Date(2025, 3, 12, 0, 0, 0, 0, loc)

	stacks := Stack([]domain.Session{mon, tue}, domain.ViewWeek,
		weekOf(t, "2025-03-10", loc), Lookup{}, loc, asOf)
	groups := GroupForDisplay(stacks, domain.ViewWeek, loc)

	require.Len(t, groups, 2)
	assert.Equal(t, "Tuesday, March 11, 2025", groups[0].Heading)
	assert.Equal(t, "Monday, March 10, 2025", groups[1].Heading)
}

func TestGroupForDisplay_MonthViewHeadingPerISOWeek(t *testing.T) {
	loc := time.UTC
	w1 := makeSession("s-1", "Writing",
		time.Date(2025, 3, 4, 9, 0, 0, 0, loc),
		time.Date(2025, 3, 4, 10, 0, 0, 0, loc))
	w2 := makeSession("s-2", "Review",
		time.Date(2025, 3, 12, 9, 0, 0, 0, loc),
		time.Date(2025, 3, 12, 10, 0, 0, 0, loc))
	asOf := time.Date(2025, 3, 13, 0, 0, 0, 0, loc)

	stacks := Stack([]domain.Session{w1, w2}, domain.ViewMonth,
		interval.Month(w1.StartTime, loc), Lookup{}, loc, asOf)
	groups := GroupForDisplay(stacks, domain.ViewMonth, loc)

	require.Len(t, groups, 2)
	assert.Equal(t, "Week Mar 10 - Mar 16", groups[0].Heading)
	assert.Equal(t, "Week Mar 3 - Mar 9", groups[1].Heading)
}
