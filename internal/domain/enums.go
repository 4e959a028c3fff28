package domain

type ViewMode string

const (
	ViewDay   ViewMode = "day"
	ViewWeek  ViewMode = "week"
	ViewMonth ViewMode = "month"
)

// ValidViewModes is the canonical set of accepted view mode strings.
var ValidViewModes = map[string]bool{
	"day": true, "week": true, "month": true,
}

type CategoryColor string

const (
	ColorRed    CategoryColor = "RED"
	ColorBlue   CategoryColor = "BLUE"
	ColorGreen  CategoryColor = "GREEN"
	ColorYellow CategoryColor = "YELLOW"
	ColorOrange CategoryColor = "ORANGE"
	ColorPurple CategoryColor = "PURPLE"
	ColorPink   CategoryColor = "PINK"
	ColorIndigo CategoryColor = "INDIGO"
	ColorCyan   CategoryColor = "CYAN"
	ColorGray   CategoryColor = "GRAY"
)

// DefaultCategoryColor is the fallback for unknown or missing color tokens.
const DefaultCategoryColor = ColorBlue

var validCategoryColors = map[CategoryColor]bool{
	ColorRed: true, ColorBlue: true, ColorGreen: true, ColorYellow: true,
	ColorOrange: true, ColorPurple: true, ColorPink: true, ColorIndigo: true,
	ColorCyan: true, ColorGray: true,
}

// ParseCategoryColor maps a stored color token to a CategoryColor,
// falling back to DefaultCategoryColor for anything unrecognized.
func ParseCategoryColor(s string) CategoryColor {
	c := CategoryColor(s)
	if validCategoryColors[c] {
		return c
	}
	return DefaultCategoryColor
}

// TimeOfDay buckets a session by the local hour of its start time.
type TimeOfDay string

const (
	TimeOfDayMorning   TimeOfDay = "morning"   // [06:00, 12:00)
	TimeOfDayAfternoon TimeOfDay = "afternoon" // [12:00, 18:00)
	TimeOfDayEvening   TimeOfDay = "evening"   // [18:00, 24:00)
	TimeOfDayNight     TimeOfDay = "night"     // [00:00, 06:00)

	// TimeOfDayNone is the sentinel for an empty session set.
	TimeOfDayNone TimeOfDay = "none"
)

// ClassifyHour maps a local hour of day to its TimeOfDay bucket.
func ClassifyHour(hour int) TimeOfDay {
	switch {
	case hour >= 6 && hour < 12:
		return TimeOfDayMorning
	case hour >= 12 && hour < 18:
		return TimeOfDayAfternoon
	case hour >= 18:
		return TimeOfDayEvening
	default:
		return TimeOfDayNight
	}
}

// DurationBucket classifies a session by the seconds it contributes to a
// period: short (0, 30m), medium [30m, 2h), long [2h, inf).
type DurationBucket string

const (
	DurationShort  DurationBucket = "short"
	DurationMedium DurationBucket = "medium"
	DurationLong   DurationBucket = "long"
)

// ClassifyDuration maps in-period seconds to a duration bucket. Returns
// ok=false for zero (or negative) seconds, which belong to no bucket.
func ClassifyDuration(seconds int) (DurationBucket, bool) {
	switch {
	case seconds <= 0:
		return "", false
	case seconds < 1800:
		return DurationShort, true
	case seconds < 7200:
		return DurationMedium, true
	default:
		return DurationLong, true
	}
}
