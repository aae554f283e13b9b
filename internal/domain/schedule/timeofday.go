package schedule

import (
	"fmt"
	"time"

	"resource-scheduler/internal/pkg/errs"
)

var ErrInvalidTimeOfDay = errs.Validation("time of day must be within 00:00:00 and 23:59:59")

const day = 24 * time.Hour

// TimeOfDay is a wall-clock time without a date, stored as the offset from midnight.
type TimeOfDay struct {
	offset time.Duration
}

func NewTimeOfDay(hour, minute, second int) (TimeOfDay, error) {
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 || second < 0 || second > 59 {
		return TimeOfDay{}, ErrInvalidTimeOfDay
	}
	return TimeOfDay{
		offset: time.Duration(hour)*time.Hour + time.Duration(minute)*time.Minute + time.Duration(second)*time.Second,
	}, nil
}

// ParseTimeOfDay accepts "15:04" and "15:04:05".
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	for _, layout := range []string{"15:04:05", "15:04"} {
		if t, err := time.Parse(layout, s); err == nil {
			return NewTimeOfDay(t.Hour(), t.Minute(), t.Second())
		}
	}
	return TimeOfDay{}, errs.Mark(errs.Newf("invalid time of day %q", s), errs.ErrValidation)
}

func TimeOfDayFromOffset(offset time.Duration) (TimeOfDay, error) {
	if offset < 0 || offset >= day {
		return TimeOfDay{}, ErrInvalidTimeOfDay
	}
	return TimeOfDay{offset: offset.Truncate(time.Second)}, nil
}

func (t TimeOfDay) Offset() time.Duration { return t.offset }
func (t TimeOfDay) Hour() int             { return int(t.offset / time.Hour) }
func (t TimeOfDay) Minute() int           { return int(t.offset % time.Hour / time.Minute) }
func (t TimeOfDay) Second() int           { return int(t.offset % time.Minute / time.Second) }

func (t TimeOfDay) Before(other TimeOfDay) bool {
	return t.offset < other.offset
}

// On combines the calendar date of d (in d's location) with this time of day.
func (t TimeOfDay) On(d time.Time) time.Time {
	return time.Date(d.Year(), d.Month(), d.Day(), t.Hour(), t.Minute(), t.Second(), 0, d.Location())
}

func (t TimeOfDay) String() string {
	if t.Second() != 0 {
		return fmt.Sprintf("%02d:%02d:%02d", t.Hour(), t.Minute(), t.Second())
	}
	return fmt.Sprintf("%02d:%02d", t.Hour(), t.Minute())
}
