package queries

import (
	"time"

	"resource-scheduler/internal/domain/intervention"
	"resource-scheduler/internal/domain/resource"
	"resource-scheduler/internal/domain/schedule"
	"resource-scheduler/internal/domain/unavailability"

	"github.com/google/uuid"
)

// ResourceView represents read-optimized resource data
type ResourceView struct {
	ID        uuid.UUID `json:"id"`
	AgencyID  uuid.UUID `json:"agency_id"`
	Name      string    `json:"name"`
	Kind      string    `json:"kind"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type InterventionView struct {
	ID         uuid.UUID  `json:"id"`
	AgencyID   uuid.UUID  `json:"agency_id"`
	ResourceID uuid.UUID  `json:"resource_id"`
	ClientID   uuid.UUID  `json:"client_id"`
	DriverID   *uuid.UUID `json:"driver_id,omitempty"`
	Title      string     `json:"title"`
	Start      time.Time  `json:"start"`
	End        time.Time  `json:"end"`
	Notes      string     `json:"notes"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}

type UnavailabilityView struct {
	ID         uuid.UUID `json:"id"`
	ResourceID uuid.UUID `json:"resource_id"`
	Start      time.Time `json:"start"`
	End        time.Time `json:"end"`
	Reason     string    `json:"reason"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

type RecurringRuleView struct {
	ID         uuid.UUID `json:"id"`
	ResourceID uuid.UUID `json:"resource_id"`
	DayOfWeek  int       `json:"day_of_week"`
	StartTime  string    `json:"start_time"`
	EndTime    string    `json:"end_time"`
	Reason     string    `json:"reason"`
	CreatedAt  time.Time `json:"created_at"`
}

// SpanView is one entry of an occupancy listing. For recurring occurrences ID is the rule id.
type SpanView struct {
	ID         uuid.UUID `json:"id"`
	Kind       string    `json:"kind"`
	ResourceID uuid.UUID `json:"resource_id"`
	Label      string    `json:"label"`
	Start      time.Time `json:"start"`
	End        time.Time `json:"end"`
}

type OccupancyView struct {
	ResourceID uuid.UUID  `json:"resource_id"`
	From       time.Time  `json:"from"`
	To         time.Time  `json:"to"`
	Spans      []SpanView `json:"spans"`
}

func NewResourceView(r *resource.Resource) *ResourceView {
	return &ResourceView{
		ID:        r.ID(),
		AgencyID:  r.AgencyID(),
		Name:      r.Name(),
		Kind:      r.Kind().String(),
		CreatedAt: r.CreatedAt(),
		UpdatedAt: r.UpdatedAt(),
	}
}

func NewInterventionView(iv *intervention.Intervention) *InterventionView {
	return &InterventionView{
		ID:         iv.ID(),
		AgencyID:   iv.AgencyID(),
		ResourceID: iv.ResourceID(),
		ClientID:   iv.ClientID(),
		DriverID:   iv.DriverID(),
		Title:      iv.Title(),
		Start:      iv.TimeSpan().Start(),
		End:        iv.TimeSpan().End(),
		Notes:      iv.Notes(),
		CreatedAt:  iv.CreatedAt(),
		UpdatedAt:  iv.UpdatedAt(),
	}
}

func NewUnavailabilityView(u *unavailability.Unavailability) *UnavailabilityView {
	return &UnavailabilityView{
		ID:         u.ID(),
		ResourceID: u.ResourceID(),
		Start:      u.TimeSpan().Start(),
		End:        u.TimeSpan().End(),
		Reason:     u.Reason(),
		CreatedAt:  u.CreatedAt(),
		UpdatedAt:  u.UpdatedAt(),
	}
}

func NewRecurringRuleView(r *unavailability.RecurringRule) *RecurringRuleView {
	return &RecurringRuleView{
		ID:         r.ID(),
		ResourceID: r.ResourceID(),
		DayOfWeek:  int(r.DayOfWeek()),
		StartTime:  r.StartTime().String(),
		EndTime:    r.EndTime().String(),
		Reason:     r.Reason(),
		CreatedAt:  r.CreatedAt(),
	}
}

func NewSpanView(s schedule.Span) SpanView {
	return SpanView{
		ID:         s.ID(),
		Kind:       s.Kind().String(),
		ResourceID: s.ResourceID(),
		Label:      s.Label(),
		Start:      s.TimeSpan().Start(),
		End:        s.TimeSpan().End(),
	}
}

func NewSpanViews(spans []schedule.Span) []SpanView {
	out := make([]SpanView, 0, len(spans))
	for _, s := range spans {
		out = append(out, NewSpanView(s))
	}
	return out
}
