package stacking

import (
	"testing"
	"time"

	"github.com/alexanderramin/stint/internal/domain"
	"github.com/alexanderramin/stint/internal/interval"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func makeSession(id, title string, start, end time.Time) domain.Session {
	dur := int(end.Sub(start) / time.Second)
	return domain.Session{
		ID:              id,
		Title:           title,
		StartTime:       start,
		EndTime:         &end,
		DurationSeconds: &dur,
	}
}

func weekOf(t *testing.T, date string, loc *time.Location) interval.Period {
	t.Helper()
	day, err := time.ParseInLocation(interval.DateLayout, date, loc)
	require.NoError(t, err)
	return interval.Week(day, loc)
}

func TestStack_SameDaySameKeyCollapses(t *testing.T) {
	loc := time.UTC
	s1 := makeSession("s-1", "Writing",
		time.Date(2025, 3, 10, 9, 0, 0, 0, loc),
		time.Date(2025, 3, 10, 10, 0, 0, 0, loc))
	s2 := makeSession("s-2", "Writing",
		time.Date(2025, 3, 10, 14, 0, 0, 0, loc),
		time.Date(2025, 3, 10, 15, 30, 0, 0, loc))
	asOf := time.Date(2025, 3, 11, 0, 0, 0, 0, loc)

	stacks := Stack([]domain.Session{s2, s1}, domain.ViewWeek,
		weekOf(t, "2025-03-10", loc), Lookup{}, loc, asOf)

	require.Len(t, stacks, 1)
	st := stacks[0]
	assert.Equal(t, "s-1", st.ID, "earliest member supplies the id")
	assert.Equal(t, "2025-03-10", st.DisplayDate)
	assert.Equal(t, []string{"s-1", "s-2"},
		[]string{st.Sessions[0].ID, st.Sessions[1].ID},
		"members sorted ascending by start time")
	assert.Equal(t, 3600+5400, st.TotalDuration)
	assert.Equal(t, st.TotalDuration, st.PeriodDuration)
	assert.Equal(t, s1.StartTime, st.FirstStartTime)
	require.NotNil(t, st.LastEndTime)
	assert.Equal(t, *s2.EndTime, *st.LastEndTime)
}

func TestStack_DifferentTitlesStaySeparate(t *testing.T) {
	loc := time.UTC
	s1 := makeSession("s-1", "Writing",
		time.Date(2025, 3, 10, 9, 0, 0, 0, loc),
		time.Date(2025, 3, 10, 10, 0, 0, 0, loc))
	s2 := makeSession("s-2", "Review",
		time.Date(2025, 3, 10, 10, 0, 0, 0, loc),
		time.Date(2025, 3, 10, 11, 0, 0, 0, loc))
	asOf := time.Date(2025, 3, 11, 0, 0, 0, 0, loc)

	stacks := Stack([]domain.Session{s1, s2}, domain.ViewWeek,
		weekOf(t, "2025-03-10", loc), Lookup{}, loc, asOf)

	assert.Len(t, stacks, 2)
}

func TestStack_CategoryDistinguishesGroups(t *testing.T) {
	loc := time.UTC
	s1 := makeSession("s-1", "Calls",
		time.Date(2025, 3, 10, 9, 0, 0, 0, loc),
		time.Date(2025, 3, 10, 10, 0, 0, 0, loc))
	s1.CategoryID = strPtr("cat-work")
	s2 := makeSession("s-2", "Calls",
		time.Date(2025, 3, 10, 11, 0, 0, 0, loc),
		time.Date(2025, 3, 10, 12, 0, 0, 0, loc))
	asOf := time.Date(2025, 3, 11, 0, 0, 0, 0, loc)

	lookup := Lookup{Categories: map[string]domain.Category{
		"cat-work": {ID: "cat-work", Name: "Work", Color: domain.ColorGreen},
	}}

	stacks := Stack([]domain.Session{s1, s2}, domain.ViewWeek,
		weekOf(t, "2025-03-10", loc), lookup, loc, asOf)

	require.Len(t, stacks, 2)
	var tagged *domain.StackedSession
	for i := range stacks {
		if stacks[i].ID == "s-1" {
			tagged = &stacks[i]
		}
	}
	require.NotNil(t, tagged)
	require.NotNil(t, tagged.Category)
	assert.Equal(t, "Work", tagged.Category.Name)
}

func TestStack_OvernightSplitsAcrossBothDays(t *testing.T) {
	loc := mustLoc(t, "Asia/Ho_Chi_Minh")
	s := makeSession("s-night", "Late shift",
		time.Date(2025, 3, 10, 22, 0, 0, 0, loc),
		time.Date(2025, 3, 11, 2, 0, 0, 0, loc))
	asOf := time.Date(2025, 3, 12, 0, 0, 0, 0, loc)

	stacks := Stack([]domain.Session{s}, domain.ViewWeek,
		weekOf(t, "2025-03-10", loc), Lookup{}, loc, asOf)

	require.Len(t, stacks, 2, "session spanning two days yields two stacks")
	// Output is firstStartTime descending; same session, so order by date.
	byDate := map[string]domain.StackedSession{}
	total := 0
	for _, st := range stacks {
		byDate[st.DisplayDate] = st
		total += st.PeriodDuration
		assert.Equal(t, 14400, st.TotalDuration)
	}
	assert.Equal(t, 7200, byDate["2025-03-10"].PeriodDuration)
	assert.Equal(t, 7200, byDate["2025-03-11"].PeriodDuration)
	assert.Equal(t, 14400, total, "period durations sum to the full duration")
}

func TestStack_MonthModeNeverSplits(t *testing.T) {
	loc := time.UTC
	s := makeSession("s-night", "Late shift",
		time.Date(2025, 3, 10, 22, 0, 0, 0, loc),
		time.Date(2025, 3, 11, 2, 0, 0, 0, loc))
	asOf := time.Date(2025, 3, 12, 0, 0, 0, 0, loc)

	stacks := Stack([]domain.Session{s}, domain.ViewMonth,
		interval.Month(s.StartTime, loc), Lookup{}, loc, asOf)

	require.Len(t, stacks, 1)
	assert.Empty(t, stacks[0].DisplayDate)
	assert.Equal(t, 14400, stacks[0].TotalDuration)
	assert.Equal(t, 14400, stacks[0].PeriodDuration,
		"no display date means periodDuration equals totalDuration")
}

func TestStack_DaysOutsidePeriodDropped(t *testing.T) {
	loc := time.UTC
	// Sunday 22:00 -> Monday 02:00 crosses an ISO week boundary.
	s := makeSession("s-1", "Late shift",
		time.Date(2025, 3, 9, 22, 0, 0, 0, loc),
		time.Date(2025, 3, 10, 2, 0, 0, 0, loc))
	asOf := time.Date(2025, 3, 11, 0, 0, 0, 0, loc)

	week := weekOf(t, "2025-03-10", loc) // Mon Mar 10 .. Sun Mar 16
	stacks := Stack([]domain.Session{s}, domain.ViewWeek, week, Lookup{}, loc, asOf)

	require.Len(t, stacks, 1, "the Sunday half falls outside the week")
	assert.Equal(t, "2025-03-10", stacks[0].DisplayDate)
	assert.Equal(t, 7200, stacks[0].PeriodDuration)
	assert.Equal(t, 14400, stacks[0].TotalDuration)
}

func TestStack_MidnightEndContributesNothingToNextDay(t *testing.T) {
	loc := time.UTC
	s := makeSession("s-1", "Evening",
		time.Date(2025, 3, 10, 22, 0, 0, 0, loc),
		time.Date(2025, 3, 11, 0, 0, 0, 0, loc))
	asOf := time.Date(2025, 3, 12, 0, 0, 0, 0, loc)

	stacks := Stack([]domain.Session{s}, domain.ViewWeek,
		weekOf(t, "2025-03-10", loc), Lookup{}, loc, asOf)

	require.Len(t, stacks, 1, "zero-overlap day must not produce a stack")
	assert.Equal(t, "2025-03-10", stacks[0].DisplayDate)
	assert.Equal(t, 7200, stacks[0].PeriodDuration)
}

func TestStack_IdempotentMembership(t *testing.T) {
	loc := time.UTC
	s := makeSession("s-1", "Writing",
		time.Date(2025, 3, 10, 9, 0, 0, 0, loc),
		time.Date(2025, 3, 10, 10, 0, 0, 0, loc))
	asOf := time.Date(2025, 3, 11, 0, 0, 0, 0, loc)

	// Same session supplied twice must not be counted twice.
	stacks := Stack([]domain.Session{s, s}, domain.ViewWeek,
		weekOf(t, "2025-03-10", loc), Lookup{}, loc, asOf)

	require.Len(t, stacks, 1)
	assert.Len(t, stacks[0].Sessions, 1)
	assert.Equal(t, 3600, stacks[0].TotalDuration)
}

func TestStack_RunningSessionHasNoLastEndTime(t *testing.T) {
	loc := time.UTC
	done := makeSession("s-1", "Writing",
		time.Date(2025, 3, 10, 9, 0, 0, 0, loc),
		time.Date(2025, 3, 10, 10, 0, 0, 0, loc))
	running := domain.Session{
		ID:        "s-2",
		Title:     "Writing",
		StartTime: time.Date(2025, 3, 10, 11, 0, 0, 0, loc),
		IsRunning: true,
	}
	asOf := time.Date(2025, 3, 10, 11, 30, 0, 0, loc)

	stacks := Stack([]domain.Session{done, running}, domain.ViewWeek,
		weekOf(t, "2025-03-10", loc), Lookup{}, loc, asOf)

	require.Len(t, stacks, 1)
	st := stacks[0]
	assert.Nil(t, st.LastEndTime)
	assert.True(t, st.IsActive())
	assert.Equal(t, 3600+1800, st.TotalDuration)
}

func TestStack_OutputOrderedByFirstStartDescending(t *testing.T) {
	loc := time.UTC
	early := makeSession("s-1", "Morning",
		time.Date(2025, 3, 10, 8, 0, 0, 0, loc),
		time.Date(2025, 3, 10, 9, 0, 0, 0, loc))
	late := makeSession("s-2", "Afternoon",
		time.Date(2025, 3, 10, 15, 0, 0, 0, loc),
		time.Date(2025, 3, 10, 16, 0, 0, 0, loc))
	asOf := time.Date(2025, 3, 11, 0, 0, 0, 0, loc)

	stacks := Stack([]domain.Session{early, late}, domain.ViewWeek,
		weekOf(t, "2025-03-10", loc), Lookup{}, loc, asOf)

	require.Len(t, stacks, 2)
	assert.Equal(t, "s-2", stacks[0].ID)
	assert.Equal(t, "s-1", stacks[1].ID)
}

func TestStack_EmptyInputYieldsNoStacks(t *testing.T) {
	loc := time.UTC
	stacks := Stack(nil, domain.ViewWeek, weekOf(t, "2025-03-10", loc),
		Lookup{}, loc, time.Date(2025, 3, 11, 0, 0, 0, 0, loc))
	assert.Empty(t, stacks)
}

func TestNewStack_EmptyMembersPanics(t *testing.T) {
	assert.Panics(t, func() {
		newStack(groupKey{date: "2025-03-10"}, nil, Lookup{}, time.UTC, time.Now())
	})
}

func mustLoc(t *testing.T, name string) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation(name)
	require.NoError(t, err)
	return loc
}
