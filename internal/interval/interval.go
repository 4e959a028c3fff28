// Package interval provides the pure temporal primitives the stacking
// engine and statistics calculator are built on: clipping a session
// against a bounded period and enumerating the calendar days a session
// touches. Every function takes the reference instant and timezone
// explicitly; nothing here reads the ambient clock.
package interval

import (
	"fmt"
	"time"

	"github.com/alexanderramin/stint/internal/domain"
)

// DateLayout is the calendar-date form used for day keys and display
// dates throughout the engine.
const DateLayout = "2006-01-02"

// Period is a bounded time range durations are clipped against.
// End is treated as the exclusive upper midnight for day periods, so a
// 22:00-24:00 session contributes exactly 7200 seconds to its day.
type Period struct {
	Start time.Time
	End   time.Time
}

// Day returns the period covering one calendar date in loc, from
// midnight to the following midnight.
func Day(date string, loc *time.Location) (Period, error) {
	t, err := time.ParseInLocation(DateLayout, date, loc)
	if err != nil {
		return Period{}, fmt.Errorf("parsing calendar date %q: %w", date, err)
	}
	start := StartOfDay(t, loc)
	return Period{Start: start, End: nextDay(start, loc)}, nil
}

// Week returns the ISO (Monday-based) week period containing t in loc.
func Week(t time.Time, loc *time.Location) Period {
	start := StartOfWeek(t, loc)
	return Period{Start: start, End: start.AddDate(0, 0, 7)}
}

// Month returns the calendar-month period containing t in loc.
func Month(t time.Time, loc *time.Location) Period {
	local := t.In(loc)
	start := time.Date(local.Year(), local.Month(), 1, 0, 0, 0, 0, loc)
	return Period{Start: start, End: start.AddDate(0, 1, 0)}
}

// StartOfDay returns midnight of the calendar day containing t in loc.
func StartOfDay(t time.Time, loc *time.Location) time.Time {
	local := t.In(loc)
	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc)
}

// StartOfWeek returns midnight of the Monday of the ISO week containing
// t in loc.
func StartOfWeek(t time.Time, loc *time.Location) time.Time {
	day := StartOfDay(t, loc)
	offset := int(day.Weekday()-time.Monday+7) % 7
	return day.AddDate(0, 0, -offset)
}

func nextDay(dayStart time.Time, loc *time.Location) time.Time {
	local := dayStart.In(loc)
	return time.Date(local.Year(), local.Month(), local.Day()+1, 0, 0, 0, 0, loc)
}

// OverlapSeconds computes the whole seconds of the session's
// [start, effective end) interval that fall inside p. A session whose
// end is missing is clipped at asOf. Never negative.
func OverlapSeconds(s domain.Session, p Period, asOf time.Time) int {
	end := s.EffectiveEnd(asOf)
	if end.Before(p.Start) || s.StartTime.After(p.End) {
		return 0
	}

	clampedStart := s.StartTime
	if clampedStart.Before(p.Start) {
		clampedStart = p.Start
	}
	clampedEnd := end
	if clampedEnd.After(p.End) {
		clampedEnd = p.End
	}

	secs := int(clampedEnd.Sub(clampedStart) / time.Second)
	if secs < 0 {
		return 0
	}
	return secs
}

// Overlaps reports whether the session's interval intersects p. The
// comparison is strict on both edges: a session ending exactly at
// p.Start (or starting exactly at p.End) does not overlap. Callers rely
// on this exact predicate, so it is not derived from OverlapSeconds.
func Overlaps(s domain.Session, p Period, asOf time.Time) bool {
	return s.StartTime.Before(p.End) && s.EffectiveEnd(asOf).After(p.Start)
}

// TouchedDays returns the ordered calendar dates (in loc) the session's
// interval touches, from its start day through its effective end day
// inclusive. A session contained within one day yields a single date.
func TouchedDays(s domain.Session, loc *time.Location, asOf time.Time) []string {
	startDay := StartOfDay(s.StartTime, loc)
	endDay := StartOfDay(s.EffectiveEnd(asOf), loc)

	var days []string
	for d := startDay; !d.After(endDay); d = nextDay(d, loc) {
		days = append(days, d.Format(DateLayout))
	}
	return days
}
