// Package planning holds the client-side model of a resource timeline: it maps
// between pixels and instants, snaps dragged edges to a grid and predicts conflicts
// before anything is sent to the server.
package planning

import (
	"math"
	"time"

	"resource-scheduler/internal/domain/schedule"
	"resource-scheduler/internal/pkg/errs"

	"github.com/google/uuid"
)

const DefaultSnap = 15 * time.Minute

var (
	ErrInvalidWidth = errs.Validation("timeline width must be positive")
	ErrInvalidSnap  = errs.Validation("snap step must be positive")
)

// Model is immutable; every operation returns new values.
type Model struct {
	from  time.Time
	to    time.Time
	width float64
	snap  time.Duration
	epoch time.Time
}

type Option func(*Model)

func WithSnap(d time.Duration) Option {
	return func(m *Model) { m.snap = d }
}

// NewModel maps the window [from, to) onto widthPx pixels.
func NewModel(from, to time.Time, widthPx float64, opts ...Option) (*Model, error) {
	if !from.Before(to) {
		return nil, schedule.ErrInvalidTimeSpan
	}
	if !(widthPx > 0) || math.IsInf(widthPx, 0) {
		return nil, ErrInvalidWidth
	}
	m := &Model{from: from, to: to, width: widthPx, snap: DefaultSnap}
	for _, opt := range opts {
		opt(m)
	}
	if m.snap <= 0 {
		return nil, ErrInvalidSnap
	}
	y, mo, d := from.Date()
	m.epoch = time.Date(y, mo, d, 0, 0, 0, 0, from.Location())
	return m, nil
}

func (m *Model) From() time.Time             { return m.from }
func (m *Model) To() time.Time               { return m.to }
func (m *Model) Width() float64              { return m.width }
func (m *Model) SnapStep() time.Duration     { return m.snap }
func (m *Model) windowLength() time.Duration { return m.to.Sub(m.from) }

// TimeToPixel is affine; instants outside the window extrapolate linearly.
func (m *Model) TimeToPixel(t time.Time) float64 {
	return float64(t.Sub(m.from)) / float64(m.windowLength()) * m.width
}

func (m *Model) PixelToTime(px float64) time.Time {
	return m.from.Add(m.PixelDelta(px))
}

// PixelDelta converts a horizontal distance into a duration.
func (m *Model) PixelDelta(px float64) time.Duration {
	return time.Duration(math.Round(px / m.width * float64(m.windowLength())))
}

// Snap rounds t to the nearest grid line counted from midnight of the window start day.
// Exact halves go to the later line.
func (m *Model) Snap(t time.Time) time.Time {
	d := t.Sub(m.epoch)
	q := d / m.snap
	r := d % m.snap
	if r < 0 {
		q--
		r += m.snap
	}
	if 2*r >= m.snap {
		q++
	}
	return m.epoch.Add(q * m.snap).In(t.Location())
}

// Move shifts span by delta, snapping the start and keeping the duration exactly.
func (m *Model) Move(span schedule.TimeSpan, delta time.Duration) (schedule.TimeSpan, error) {
	start := m.Snap(span.Start().Add(delta))
	return schedule.NewTimeSpan(start, start.Add(span.Duration()))
}

// ResizeEnd moves the end edge by delta; the result is never shorter than one snap step.
func (m *Model) ResizeEnd(span schedule.TimeSpan, delta time.Duration) (schedule.TimeSpan, error) {
	end := m.Snap(span.End().Add(delta))
	if end.Sub(span.Start()) < m.snap {
		end = span.Start().Add(m.snap)
	}
	return schedule.NewTimeSpan(span.Start(), end)
}

func (m *Model) ResizeStart(span schedule.TimeSpan, delta time.Duration) (schedule.TimeSpan, error) {
	start := m.Snap(span.Start().Add(delta))
	if span.End().Sub(start) < m.snap {
		start = span.End().Add(-m.snap)
	}
	return schedule.NewTimeSpan(start, span.End())
}

func (m *Model) Overlaps(a, b schedule.TimeSpan) bool {
	return a.Overlaps(b)
}

// HasConflict scans spans once. It must agree with the server-side availability check.
func (m *Model) HasConflict(resourceID uuid.UUID, candidate schedule.TimeSpan, spans []schedule.Span, excludeID uuid.UUID) bool {
	for _, s := range spans {
		if s.ResourceID() != resourceID {
			continue
		}
		if excludeID != uuid.Nil && s.ID() == excludeID {
			continue
		}
		if m.Overlaps(candidate, s.TimeSpan()) {
			return true
		}
	}
	return false
}
