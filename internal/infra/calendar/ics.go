package calendar

import (
	"fmt"
	"io"
	"time"

	"resource-scheduler/internal/domain/schedule"
	"resource-scheduler/internal/pkg/errs"

	ical "github.com/arran4/golang-ical"
	"github.com/google/uuid"
)

const productID = "-//resource-scheduler//occupancy//EN"

// Feed describes one exported occupancy window of a resource.
type Feed struct {
	ResourceID   uuid.UUID
	ResourceName string
	Spans        []schedule.Span
	GeneratedAt  time.Time
}

// Exporter renders occupancy spans as an iCalendar document.
type Exporter struct{}

func NewExporter() *Exporter {
	return &Exporter{}
}

func (e *Exporter) Build(feed Feed) *ical.Calendar {
	cal := ical.NewCalendar()
	cal.SetMethod(ical.MethodPublish)
	cal.SetProductId(productID)
	cal.SetName(feed.ResourceName)
	cal.SetXWRCalName(feed.ResourceName)
	cal.SetXWRCalID(feed.ResourceID.String())

	stamp := feed.GeneratedAt.UTC()
	for _, s := range feed.Spans {
		ev := cal.AddEvent(EventUID(s))
		ev.SetDtStampTime(stamp)
		ev.SetStartAt(s.TimeSpan().Start())
		ev.SetEndAt(s.TimeSpan().End())
		ev.SetSummary(summaryOf(s))
		ev.SetStatus(ical.ObjectStatusConfirmed)
		ev.SetProperty(ical.ComponentPropertyCategories, s.Kind().String())
		if s.Label() != "" {
			ev.SetDescription(s.Label())
		}
	}
	return cal
}

func (e *Exporter) Write(w io.Writer, feed Feed) error {
	if err := e.Build(feed).SerializeTo(w); err != nil {
		return errs.Wrap(err, "serialize calendar")
	}
	return nil
}

// EventUID is unique per occurrence: recurring occurrences share the rule id,
// so the start instant is part of the uid.
func EventUID(s schedule.Span) string {
	return fmt.Sprintf("%s-%s-%d@resource-scheduler", s.Kind(), s.ID(), s.TimeSpan().Start().Unix())
}

func summaryOf(s schedule.Span) string {
	switch s.Kind() {
	case schedule.KindIntervention:
		if s.Label() != "" {
			return s.Label()
		}
		return "Intervention"
	case schedule.KindUnavailability:
		return "Unavailable"
	default:
		return "Unavailable (recurring)"
	}
}
