// Package stats reduces the sessions overlapping one period into the
// summary numbers the history and tracker views show. All functions are
// pure; the reference instant and timezone arrive as parameters.
package stats

import (
	"sort"
	"time"

	"github.com/alexanderramin/stint/internal/domain"
	"github.com/alexanderramin/stint/internal/interval"
)

// uncategorizedKey accumulates time for sessions without a category.
const uncategorizedKey = "uncategorized"

// timeOfDayPriority is the fixed tie-break order for BestTimeOfDay:
// when two buckets hold the same count, the earlier entry wins.
var timeOfDayPriority = []domain.TimeOfDay{
	domain.TimeOfDayMorning,
	domain.TimeOfDayAfternoon,
	domain.TimeOfDayEvening,
	domain.TimeOfDayNight,
}

// Compute summarizes the given sessions against p. Callers normally
// pre-filter with interval.Overlaps; sessions with zero in-period
// seconds still count toward SessionCount and the time-of-day buckets
// but contribute nothing to durations. An empty input yields zero
// values, never an error.
func Compute(
	sessions []domain.Session,
	p interval.Period,
	categories map[string]domain.Category,
	loc *time.Location,
	asOf time.Time,
) domain.PeriodStats {
	st := domain.PeriodStats{
		BestTimeOfDay:      domain.TimeOfDayNone,
		TimeOfDayBreakdown: make(map[domain.TimeOfDay]int),
		SessionCount:       len(sessions),
	}

	type bucket struct {
		name     string
		duration int
		color    domain.CategoryColor
	}
	byCategory := make(map[string]*bucket)

	for i := range sessions {
		s := sessions[i]
		overlap := interval.OverlapSeconds(s, p, asOf)
		st.TotalDuration += overlap

		key := uncategorizedKey
		name := "Uncategorized"
		color := domain.ColorGray
		if s.CategoryID != nil && *s.CategoryID != "" {
			key = *s.CategoryID
			if c, ok := categories[key]; ok {
				name = c.Name
				color = c.Color
			} else {
				name = key
				color = domain.DefaultCategoryColor
			}
		}
		b, ok := byCategory[key]
		if !ok {
			b = &bucket{name: name, color: color}
			byCategory[key] = b
		}
		b.duration += overlap

		st.TimeOfDayBreakdown[domain.ClassifyHour(s.StartTime.In(loc).Hour())]++

		if db, ok := domain.ClassifyDuration(overlap); ok {
			switch db {
			case domain.DurationShort:
				st.ShortSessions++
			case domain.DurationMedium:
				st.MediumSessions++
			case domain.DurationLong:
				st.LongSessions++
			}
		}

		// First-encountered session wins ties on full duration.
		if st.LongestSession == nil ||
			s.FullDurationSeconds(asOf) > st.LongestSession.FullDurationSeconds(asOf) {
			st.LongestSession = &sessions[i]
		}
	}

	for _, b := range byCategory {
		if b.duration == 0 {
			continue
		}
		st.Breakdown = append(st.Breakdown, domain.CategoryDuration{
			Name:     b.name,
			Duration: b.duration,
			Color:    b.color,
		})
	}
	sort.Slice(st.Breakdown, func(i, j int) bool {
		if st.Breakdown[i].Duration != st.Breakdown[j].Duration {
			return st.Breakdown[i].Duration > st.Breakdown[j].Duration
		}
		return st.Breakdown[i].Name < st.Breakdown[j].Name
	})

	if len(sessions) > 0 {
		best := timeOfDayPriority[0]
		for _, tod := range timeOfDayPriority[1:] {
			if st.TimeOfDayBreakdown[tod] > st.TimeOfDayBreakdown[best] {
				best = tod
			}
		}
		st.BestTimeOfDay = best
	}

	return st
}

// ComputeTrackerStats rolls up full session durations into today, this
// ISO week, and this month, attributing each session to the day it
// started, and counts the streak of consecutive active days ending at
// asOf (or yesterday when today has no activity yet).
func ComputeTrackerStats(
	sessions []domain.Session,
	loc *time.Location,
	asOf time.Time,
) domain.TrackerStats {
	var ts domain.TrackerStats

	today := interval.StartOfDay(asOf, loc)
	weekStart := interval.StartOfWeek(asOf, loc)
	local := asOf.In(loc)
	monthStart := time.Date(local.Year(), local.Month(), 1, 0, 0, 0, 0, loc)

	activeDays := make(map[string]bool)
	for _, s := range sessions {
		dur := s.FullDurationSeconds(asOf)
		start := s.StartTime.In(loc)

		if !start.Before(today) {
			ts.TodaySeconds += dur
		}
		if !start.Before(weekStart) {
			ts.WeekSeconds += dur
		}
		if !start.Before(monthStart) {
			ts.MonthSeconds += dur
		}
		activeDays[start.Format(interval.DateLayout)] = true
	}

	cursor := today
	if !activeDays[cursor.Format(interval.DateLayout)] {
		cursor = cursor.AddDate(0, 0, -1)
	}
	for activeDays[cursor.Format(interval.DateLayout)] {
		ts.StreakDays++
		cursor = cursor.AddDate(0, 0, -1)
	}

	return ts
}
