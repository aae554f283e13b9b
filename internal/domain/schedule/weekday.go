package schedule

import (
	"time"

	"resource-scheduler/internal/pkg/errs"
)

var ErrInvalidWeekday = errs.Validation("day of week must be between 1 (Monday) and 7 (Sunday)")

// Weekday is an ISO-8601 day of week: 1 = Monday ... 7 = Sunday.
type Weekday int

const (
	Monday Weekday = iota + 1
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
)

func NewWeekday(v int) (Weekday, error) {
	w := Weekday(v)
	if !w.IsValid() {
		return 0, ErrInvalidWeekday
	}
	return w, nil
}

func WeekdayOf(t time.Time) Weekday {
	if t.Weekday() == time.Sunday {
		return Sunday
	}
	return Weekday(t.Weekday())
}

func (w Weekday) IsValid() bool {
	return w >= Monday && w <= Sunday
}

func (w Weekday) Int() int { return int(w) }

func (w Weekday) String() string {
	if !w.IsValid() {
		return "invalid"
	}
	if w == Sunday {
		return time.Sunday.String()
	}
	return time.Weekday(w).String()
}
