package schedule

import (
	"fmt"
	"time"

	"resource-scheduler/internal/pkg/errs"
)

var ErrInvalidTimeSpan = errs.Validation("start time must be before end time")

// TimeSpan is a half-open interval [start, end). Both instants keep the offset
// they were created with.
type TimeSpan struct {
	start time.Time
	end   time.Time
}

func NewTimeSpan(start, end time.Time) (TimeSpan, error) {
	if !start.Before(end) {
		return TimeSpan{}, ErrInvalidTimeSpan
	}
	return TimeSpan{start: start, end: end}, nil
}

func (ts TimeSpan) Start() time.Time { return ts.start }
func (ts TimeSpan) End() time.Time   { return ts.end }

func (ts TimeSpan) Duration() time.Duration {
	return ts.end.Sub(ts.start)
}

func (ts TimeSpan) IsZero() bool {
	return ts.start.IsZero() && ts.end.IsZero()
}

// Overlaps reports whether the spans share at least one instant.
// Touching endpoints do not overlap.
func (ts TimeSpan) Overlaps(other TimeSpan) bool {
	return ts.start.Before(other.end) && other.start.Before(ts.end)
}

func (ts TimeSpan) Contains(t time.Time) bool {
	return !t.Before(ts.start) && t.Before(ts.end)
}

func (ts TimeSpan) Equal(other TimeSpan) bool {
	return ts.start.Equal(other.start) && ts.end.Equal(other.end)
}

// Identical reports whether both spans cover the same instants written with the same UTC offsets.
func (ts TimeSpan) Identical(other TimeSpan) bool {
	return ts.Equal(other) && sameOffset(ts.start, other.start) && sameOffset(ts.end, other.end)
}

func sameOffset(a, b time.Time) bool {
	_, ao := a.Zone()
	_, bo := b.Zone()
	return ao == bo
}

func (ts TimeSpan) ToTstzrange() string {
	return fmt.Sprintf("[%s,%s)", ts.start.Format(time.RFC3339), ts.end.Format(time.RFC3339))
}

func (ts TimeSpan) String() string {
	return ts.ToTstzrange()
}

// Overlaps is the package-level form of TimeSpan.Overlaps.
func Overlaps(a, b TimeSpan) bool {
	return a.Overlaps(b)
}

func DurationOf(ts TimeSpan) time.Duration {
	return ts.Duration()
}
