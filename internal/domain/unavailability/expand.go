package unavailability

import (
	"time"

	"resource-scheduler/internal/domain/schedule"

	"github.com/google/uuid"
	"github.com/teambition/rrule-go"
)

// Occurrence is one concrete, never persisted, instance of a RecurringRule.
type Occurrence struct {
	RuleID     uuid.UUID
	ResourceID uuid.UUID
	TimeSpan   schedule.TimeSpan
	Reason     string
}

func (o Occurrence) Span() schedule.Span {
	return schedule.OccurrenceSpan(o.RuleID, o.ResourceID, o.TimeSpan, o.Reason)
}

var rruleWeekdays = [...]rrule.Weekday{rrule.MO, rrule.TU, rrule.WE, rrule.TH, rrule.FR, rrule.SA, rrule.SU}

// Expander turns recurring rules into occurrences. Rule times of day are wall-clock
// times in the expander's location, whatever offset the window bounds carry.
// The zero value expands in UTC.
type Expander struct {
	loc *time.Location
}

func NewExpander(loc *time.Location) Expander {
	return Expander{loc: loc}
}

func (e Expander) Location() *time.Location {
	if e.loc == nil {
		return time.UTC
	}
	return e.loc
}

// Expand returns every occurrence of rule whose span intersects [from, to).
//
// Candidate dates start one day before from's date in the expander's location and
// step a week at a time until a candidate starts at or after to.
func (e Expander) Expand(rule *RecurringRule, from, to time.Time) []Occurrence {
	window, err := schedule.NewTimeSpan(from, to)
	if err != nil {
		return nil
	}

	loc := e.Location()
	local := from.In(loc)
	dtstart := time.Date(local.Year(), local.Month(), local.Day()-1, 0, 0, 0, 0, loc)
	weekly, err := rrule.NewRRule(rrule.ROption{
		Freq:      rrule.WEEKLY,
		Dtstart:   dtstart,
		Byweekday: []rrule.Weekday{rruleWeekdays[rule.dayOfWeek-1]},
	})
	if err != nil {
		return nil
	}

	var out []Occurrence
	for _, day := range weekly.Between(dtstart, to.In(loc), true) {
		start := rule.startTime.On(day)
		if !start.Before(to) {
			break
		}
		// A DST gap can push start past end on the changeover day; skip that date.
		ts, err := schedule.NewTimeSpan(start, rule.endTime.On(day))
		if err == nil && ts.Overlaps(window) {
			out = append(out, Occurrence{
				RuleID:     rule.id,
				ResourceID: rule.resourceID,
				TimeSpan:   ts,
				Reason:     rule.reason,
			})
		}
	}
	return out
}

// ExpandAll expands rules in order and concatenates the results.
func (e Expander) ExpandAll(rules []*RecurringRule, from, to time.Time) []Occurrence {
	var out []Occurrence
	for _, r := range rules {
		out = append(out, e.Expand(r, from, to)...)
	}
	return out
}
