package stacking

import (
	"fmt"
	"time"

	"github.com/alexanderramin/stint/internal/domain"
	"github.com/alexanderramin/stint/internal/interval"
)

// DisplayGroup is a run of stacks rendered under one heading: a single
// "Sessions" heading in day view, one weekday per heading in week view,
// and one ISO week range per heading in month view.
type DisplayGroup struct {
	Heading string
	Stacks  []domain.StackedSession
}

// GroupForDisplay buckets already-stacked sessions under view-specific
// headings, preserving the stacks' relative order. Heading order follows
// first appearance, which matches the firstStartTime-descending order
// Stack produces.
func GroupForDisplay(
	stacks []domain.StackedSession,
	mode domain.ViewMode,
	loc *time.Location,
) []DisplayGroup {
	var ordered []string
	byHeading := make(map[string][]domain.StackedSession)

	for _, st := range stacks {
		h := headingFor(st, mode, loc)
		if _, ok := byHeading[h]; !ok {
			ordered = append(ordered, h)
		}
		byHeading[h] = append(byHeading[h], st)
	}

	groups := make([]DisplayGroup, 0, len(ordered))
	for _, h := range ordered {
		groups = append(groups, DisplayGroup{Heading: h, Stacks: byHeading[h]})
	}
	return groups
}

func headingFor(st domain.StackedSession, mode domain.ViewMode, loc *time.Location) string {
	anchor := st.FirstStartTime.In(loc)
	if st.DisplayDate != "" {
		if t, err := time.ParseInLocation(interval.DateLayout, st.DisplayDate, loc); err == nil {
			anchor = t
		}
	}

	switch mode {
	case domain.ViewDay:
		return "Sessions"
	case domain.ViewWeek:
		return anchor.Format("Monday, January 2, 2006")
	default:
		week := interval.Week(anchor, loc)
		return fmt.Sprintf("Week %s - %s",
			week.Start.Format("Jan 2"),
			week.End.AddDate(0, 0, -1).Format("Jan 2"))
	}
}
