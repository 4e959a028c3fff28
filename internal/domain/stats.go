package domain

// CategoryDuration is one entry of a per-category time breakdown.
type CategoryDuration struct {
	Name     string
	Duration int
	Color    CategoryColor
}

// PeriodStats summarizes the sessions overlapping one bounded period.
// Zero values throughout mean "no data", not an error.
type PeriodStats struct {
	TotalDuration int

	// Breakdown is sorted descending by duration; categories with zero
	// in-period time never appear.
	Breakdown []CategoryDuration

	// TimeOfDayBreakdown counts sessions (not seconds) per bucket.
	TimeOfDayBreakdown map[TimeOfDay]int

	BestTimeOfDay TimeOfDay

	// LongestSession is the member with the greatest full duration,
	// nil when the period has no sessions.
	LongestSession *Session

	ShortSessions  int
	MediumSessions int
	LongSessions   int

	SessionCount int
}

// TrackerStats are the rolled-up numbers shown on the tracker overview:
// full-duration totals attributed to the day/week/month the session
// started in, plus the streak of consecutive active days.
type TrackerStats struct {
	TodaySeconds int
	WeekSeconds  int
	MonthSeconds int
	StreakDays   int
}
