// Package stacking groups raw sessions into the aggregate entries the
// day, week, and month history views render. Overnight sessions are
// split across every calendar day they touch; month view keeps each
// session in exactly one stack.
package stacking

import (
	"sort"
	"time"

	"github.com/alexanderramin/stint/internal/domain"
	"github.com/alexanderramin/stint/internal/interval"
)

// noneKey stands in for an absent category or task in grouping keys so
// that untagged sessions still collapse together.
const noneKey = "none"

// groupKey identifies one stack. It is a comparable struct rather than
// a delimiter-joined string so titles containing any separator cannot
// collide with another group.
type groupKey struct {
	date       string // empty in month mode
	title      string
	categoryID string
	taskID     string
}

type group struct {
	key     groupKey
	members []domain.Session
	seen    map[string]bool
}

// add inserts the session into the group unless a session with the same
// id is already a member, making repeated insertion a no-op.
func (g *group) add(s domain.Session) {
	if g.seen[s.ID] {
		return
	}
	g.seen[s.ID] = true
	g.members = append(g.members, s)
}

// Lookup resolves category and task ids on stacked sessions. Missing
// entries simply leave the corresponding field nil.
type Lookup struct {
	Categories map[string]domain.Category
	Tasks      map[string]domain.Task
}

// Stack groups sessions for the given view mode. In month mode the
// calendar date is ignored and every session lands in exactly one
// stack. In day and week mode each session is inserted into one group
// per touched day inside p; days outside p, and days the session
// contributes zero seconds to, are dropped. Output is ordered by
// FirstStartTime descending (ties broken by stack id) for display.
func Stack(
	sessions []domain.Session,
	mode domain.ViewMode,
	p interval.Period,
	lookup Lookup,
	loc *time.Location,
	asOf time.Time,
) []domain.StackedSession {
	groups := make(map[groupKey]*group)

	insert := func(key groupKey, s domain.Session) {
		g, ok := groups[key]
		if !ok {
			g = &group{key: key, seen: make(map[string]bool)}
			groups[key] = g
		}
		g.add(s)
	}

	for _, s := range sessions {
		base := groupKey{
			title:      s.Title,
			categoryID: keyOrNone(s.CategoryID),
			taskID:     keyOrNone(s.TaskID),
		}

		if mode == domain.ViewMonth {
			insert(base, s)
			continue
		}

		for _, date := range interval.TouchedDays(s, loc, asOf) {
			day, err := interval.Day(date, loc)
			if err != nil {
				// TouchedDays emits DateLayout strings; unreachable.
				continue
			}
			if day.Start.Before(p.Start) || !day.Start.Before(p.End) {
				continue
			}
			if interval.OverlapSeconds(s, day, asOf) <= 0 {
				continue
			}
			key := base
			key.date = date
			insert(key, s)
		}
	}

	stacks := make([]domain.StackedSession, 0, len(groups))
	for _, g := range groups {
		stacks = append(stacks, newStack(g.key, g.members, lookup, loc, asOf))
	}

	sort.Slice(stacks, func(i, j int) bool {
		if !stacks[i].FirstStartTime.Equal(stacks[j].FirstStartTime) {
			return stacks[i].FirstStartTime.After(stacks[j].FirstStartTime)
		}
		return stacks[i].ID < stacks[j].ID
	})
	return stacks
}

// newStack builds one StackedSession from a non-empty member list.
// Calling it with no members is a programming error: grouping must
// never produce an empty group, so this fails loudly instead of
// returning a default stack.
func newStack(
	key groupKey,
	members []domain.Session,
	lookup Lookup,
	loc *time.Location,
	asOf time.Time,
) domain.StackedSession {
	if len(members) == 0 {
		panic("stacking: stack constructed from empty member list")
	}

	sorted := make([]domain.Session, len(members))
	copy(sorted, members)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].StartTime.Before(sorted[j].StartTime)
	})

	earliest := sorted[0]
	last := sorted[len(sorted)-1]

	st := domain.StackedSession{
		ID:             earliest.ID,
		Title:          earliest.Title,
		Description:    earliest.Description,
		Sessions:       sorted,
		FirstStartTime: earliest.StartTime,
		LastEndTime:    last.EndTime,
		DisplayDate:    key.date,
	}

	if earliest.CategoryID != nil {
		if c, ok := lookup.Categories[*earliest.CategoryID]; ok {
			st.Category = &c
		}
	}
	if earliest.TaskID != nil {
		if t, ok := lookup.Tasks[*earliest.TaskID]; ok {
			st.Task = &t
		}
	}

	for _, m := range sorted {
		st.TotalDuration += m.FullDurationSeconds(asOf)
	}

	if key.date == "" {
		st.PeriodDuration = st.TotalDuration
		return st
	}

	day, err := interval.Day(key.date, loc)
	if err != nil {
		panic("stacking: stack carries unparsable display date " + key.date)
	}
	for _, m := range sorted {
		st.PeriodDuration += interval.OverlapSeconds(m, day, asOf)
	}
	return st
}

func keyOrNone(id *string) string {
	if id == nil || *id == "" {
		return noneKey
	}
	return *id
}
