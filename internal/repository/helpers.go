package repository

import (
	"database/sql"
	"encoding/json"
	"time"
)

// timeLayout is the storage form for all instants: RFC3339 in UTC, so
// lexicographic comparison in SQL matches chronological order.
const timeLayout = time.RFC3339

func formatTime(t time.Time) string {
	return t.UTC().Format(timeLayout)
}

// parseNullableTime converts a nullable column to *time.Time. NULL,
// empty, and unparseable values all map to nil; timestamps are
// validated before they reach storage.
func parseNullableTime(s sql.NullString) *time.Time {
	if !s.Valid || s.String == "" {
		return nil
	}
	t, err := time.Parse(timeLayout, s.String)
	if err != nil {
		return nil
	}
	return &t
}

func nullableTimeValue(t *time.Time) any {
	if t == nil {
		return nil
	}
	return formatTime(*t)
}

func nullableStr(s sql.NullString) *string {
	if !s.Valid {
		return nil
	}
	v := s.String
	return &v
}

func nullableStrValue(s *string) any {
	if s == nil {
		return nil
	}
	return *s
}

func nullableInt(n sql.NullInt64) *int {
	if !n.Valid {
		return nil
	}
	v := int(n.Int64)
	return &v
}

func nullableIntValue(v *int) any {
	if v == nil {
		return nil
	}
	return *v
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

// encodeStrings stores a string slice as a JSON array column.
func encodeStrings(ss []string) string {
	if len(ss) == 0 {
		return "[]"
	}
	b, err := json.Marshal(ss)
	if err != nil {
		return "[]"
	}
	return string(b)
}

func decodeStrings(raw string) []string {
	if raw == "" {
		return nil
	}
	var ss []string
	if err := json.Unmarshal([]byte(raw), &ss); err != nil {
		return nil
	}
	if len(ss) == 0 {
		return nil
	}
	return ss
}
